// internal/services/ingest_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/troveworks/trove-backend/internal/models"
	"github.com/troveworks/trove-backend/internal/scraper"
)

// Failure reasons the operator needs to tell apart to decide on a manual
// retry: source site down, page has no title, page has no images, or every
// image died in relocation.
var (
	ErrUnsupportedSource = errors.New("url does not belong to the supported source domain")
	ErrSourceUnavailable = errors.New("failed to fetch the source page")
	ErrNoTitle           = errors.New("no product title found on the page")
	ErrNoImages          = errors.New("no product images found on the page")
	ErrAllImagesFailed   = errors.New("no images survived relocation")
)

// PageExtractor pulls title, images and raw spec rows out of a source page.
type PageExtractor interface {
	Extract(ctx context.Context, pageURL string) (*scraper.Extraction, error)
}

// Relocator copies source images into durable storage, returning the subset
// that made it.
type Relocator interface {
	Relocate(ctx context.Context, sourceURLs []string) []string
}

// IngestService orchestrates fetch, extraction, image relocation and
// normalization, and persists the result as a pending submission. Nothing is
// retried automatically; a failed ingest surfaces one error and the operator
// re-submits.
type IngestService struct {
	extractor    PageExtractor
	relocator    Relocator
	submissions  SubmissionRepository
	sourceDomain string
}

func NewIngestService(extractor PageExtractor, relocator Relocator, submissions SubmissionRepository, sourceDomain string) *IngestService {
	return &IngestService{
		extractor:    extractor,
		relocator:    relocator,
		submissions:  submissions,
		sourceDomain: sourceDomain,
	}
}

// Ingest scrapes sourceURL and, if the page yields a complete record, stores
// it as a pending submission attributed to actorID. A validation failure
// anywhere means no store write at all: partially-scraped junk must never
// become a persisted pending record.
func (s *IngestService) Ingest(ctx context.Context, sourceURL string, actorID uuid.UUID) (*models.Submission, error) {
	// Defense in depth: the API boundary already gates on the source domain.
	if !strings.Contains(sourceURL, s.sourceDomain) {
		return nil, ErrUnsupportedSource
	}

	extraction, err := s.extractor.Extract(ctx, sourceURL)
	if err != nil {
		logrus.WithError(err).WithField("source_url", sourceURL).Error("Scrape failed")
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}

	if extraction.Title == "" {
		return nil, ErrNoTitle
	}
	if len(extraction.ImageURLs) == 0 {
		return nil, ErrNoImages
	}

	relocated := s.relocator.Relocate(ctx, extraction.ImageURLs)
	if len(relocated) == 0 {
		// Extraction found images but none survived relocation. Distinct
		// from "page has no images": re-submitting may well succeed.
		return nil, ErrAllImagesFailed
	}

	normalized := scraper.Normalize(extraction.RawFields)

	sub := &models.Submission{
		SourceURL:  sourceURL,
		Title:      extraction.Title,
		Category:   "Phones",
		ImageURLs:  relocated,
		Status:     models.SubmissionStatusPending,
		AddedBy:    actorID,
		SpecFields: normalized.Fields,
	}
	if len(normalized.Extras) > 0 {
		sub.ExtraFields = make(models.JSONB, len(normalized.Extras))
		for k, v := range normalized.Extras {
			sub.ExtraFields[k] = v
		}
	}

	if err := s.submissions.Create(sub); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"submission_id": sub.ID,
		"title":         sub.Title,
		"images":        len(sub.ImageURLs),
		"added_by":      actorID,
	}).Info("Submission ingested")

	return sub, nil
}
