// internal/services/asset_service.go
package services

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

const maxImageBytes = 20 * 1024 * 1024

// Uploader is the slice of StorageService the relocator needs.
type Uploader interface {
	Upload(key string, data []byte, contentType string) (*UploadResult, error)
}

// AssetService copies externally-hosted images into durable storage. Images
// are processed one at a time to bound load on the source site; a failure on
// one image never aborts the batch.
type AssetService struct {
	uploader Uploader
	client   *http.Client
}

func NewAssetService(uploader Uploader, imageTimeout time.Duration) *AssetService {
	return &AssetService{
		uploader: uploader,
		client:   &http.Client{Timeout: imageTimeout},
	}
}

// Relocate fetches each source URL and re-uploads it, returning the durable
// URLs of the subset that succeeded, in original relative order. Re-invoking
// after a partial run is always safe: destination keys are freshly generated
// every time, so prior attempts are never overwritten.
func (s *AssetService) Relocate(ctx context.Context, sourceURLs []string) []string {
	relocated := make([]string, 0, len(sourceURLs))

	for _, src := range sourceURLs {
		url, err := s.relocateOne(ctx, src)
		if err != nil {
			logrus.WithError(err).WithField("image_url", src).Warn("Image relocation failed")
			continue
		}
		relocated = append(relocated, url)
	}

	return relocated
}

func (s *AssetService) relocateOne(ctx context.Context, src string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch image: status %d", resp.StatusCode)
	}

	// Read one byte past the cap so an oversized image is detected and
	// rejected instead of uploaded as a truncated prefix.
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes+1))
	if err != nil {
		return "", fmt.Errorf("read image body: %w", err)
	}
	if len(data) > maxImageBytes {
		return "", fmt.Errorf("image exceeds %d bytes", maxImageBytes)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}

	// Fixed .jpg extension regardless of the actual content type; the
	// upstream Content-Type is preserved on the stored object.
	result, err := s.uploader.Upload(generateImageKey(), data, contentType)
	if err != nil {
		return "", fmt.Errorf("upload image: %w", err)
	}

	return result.URL, nil
}

const keySuffixAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

func generateImageKey() string {
	suffix := make([]byte, 6)
	for i := range suffix {
		suffix[i] = keySuffixAlphabet[rand.Intn(len(keySuffixAlphabet))]
	}
	return fmt.Sprintf("images/%d-%s.jpg", time.Now().UnixMilli(), suffix)
}
