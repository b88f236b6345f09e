// internal/services/asset_service_test.go
package services

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUploader struct {
	uploads []fakeUpload
	err     error
}

type fakeUpload struct {
	key         string
	size        int
	contentType string
}

func (f *fakeUploader) Upload(key string, data []byte, contentType string) (*UploadResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.uploads = append(f.uploads, fakeUpload{key: key, size: len(data), contentType: contentType})
	return &UploadResult{
		URL:      "https://assets.example.com/" + key,
		Key:      key,
		Size:     int64(len(data)),
		MimeType: contentType,
	}, nil
}

func TestRelocate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/good.jpg":
			w.Header().Set("Content-Type", "image/jpeg")
			w.Write([]byte("jpeg-bytes"))
		case "/photo.png":
			w.Header().Set("Content-Type", "image/png")
			w.Write([]byte("png-bytes"))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	uploader := &fakeUploader{}
	svc := NewAssetService(uploader, 2*time.Second)

	urls := svc.Relocate(context.Background(), []string{
		server.URL + "/good.jpg",
		server.URL + "/missing.jpg",
		server.URL + "/photo.png",
	})

	// The dead URL is skipped, survivors keep their relative order.
	require.Len(t, urls, 2)
	require.Len(t, uploader.uploads, 2)
	assert.Equal(t, "https://assets.example.com/"+uploader.uploads[0].key, urls[0])
	assert.Equal(t, "image/jpeg", uploader.uploads[0].contentType)
	assert.Equal(t, "image/png", uploader.uploads[1].contentType)

	// Keys are fresh timestamped .jpg names regardless of source type.
	keyPattern := regexp.MustCompile(`^images/\d+-[a-z0-9]{6}\.jpg$`)
	for _, u := range uploader.uploads {
		assert.Regexp(t, keyPattern, u.key)
	}
}

func TestRelocateDefaultsContentType(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header()["Content-Type"] = nil // suppress sniffing
		fmt.Fprint(w, "raw-bytes")
	}))
	defer server.Close()

	uploader := &fakeUploader{}
	svc := NewAssetService(uploader, 2*time.Second)

	urls := svc.Relocate(context.Background(), []string{server.URL + "/img"})
	require.Len(t, urls, 1)
	assert.Equal(t, "image/jpeg", uploader.uploads[0].contentType)
}

func TestRelocateAllFail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	svc := NewAssetService(&fakeUploader{}, 2*time.Second)

	urls := svc.Relocate(context.Background(), []string{
		server.URL + "/a.jpg",
		server.URL + "/b.jpg",
	})
	assert.Empty(t, urls)
}

func TestRelocateUploadFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("jpeg-bytes"))
	}))
	defer server.Close()

	svc := NewAssetService(&fakeUploader{err: fmt.Errorf("bucket unavailable")}, 2*time.Second)

	urls := svc.Relocate(context.Background(), []string{server.URL + "/a.jpg"})
	assert.Empty(t, urls)
}

func TestRelocateRejectsOversizedImage(t *testing.T) {
	huge := bytes.Repeat([]byte("x"), maxImageBytes+1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/huge.jpg" {
			w.Write(huge)
			return
		}
		w.Write([]byte("jpeg-bytes"))
	}))
	defer server.Close()

	uploader := &fakeUploader{}
	svc := NewAssetService(uploader, 10*time.Second)

	// The oversized image fails like any other per-image error; nothing of
	// it is uploaded, and the rest of the batch survives.
	urls := svc.Relocate(context.Background(), []string{
		server.URL + "/huge.jpg",
		server.URL + "/ok.jpg",
	})
	require.Len(t, urls, 1)
	require.Len(t, uploader.uploads, 1)
	assert.Equal(t, len("jpeg-bytes"), uploader.uploads[0].size)
}

func TestGenerateImageKeyUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		key := generateImageKey()
		assert.False(t, seen[key], "duplicate key %s", key)
		seen[key] = true
	}
}
