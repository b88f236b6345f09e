// internal/services/review_service.go
package services

import (
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/troveworks/trove-backend/internal/models"
)

// GadgetFinder is the catalog read surface the reconciliation sweep needs.
type GadgetFinder interface {
	ListAll() ([]models.Gadget, error)
}

// ReviewService presents the pending-review queue and promotes approved
// submissions into the catalog.
type ReviewService struct {
	submissions SubmissionRepository
	gadgets     GadgetFinder
}

// ApproveRequest carries the reviewer's edits. Empty fields fall back to the
// stored submission values; only canonical catalog fields are accepted, so
// submission bookkeeping (source_url, status, added_by, extras) can never
// leak into the catalog.
type ApproveRequest struct {
	Title       string `json:"title,omitempty"`
	Category    string `json:"category,omitempty"`
	ShortReview string `json:"short_review,omitempty"`
	BuyLink1    string `json:"buy_link_1,omitempty"`
	BuyLink2    string `json:"buy_link_2,omitempty"`

	models.SpecFields
}

// StuckSubmission is a submission whose title already exists in the catalog
// while its status still reads pending. With promotion running in one
// transaction these only arise from pre-transactional history.
type StuckSubmission struct {
	SubmissionID uuid.UUID `json:"submission_id"`
	GadgetID     uuid.UUID `json:"gadget_id"`
	Title        string    `json:"title"`
}

func NewReviewService(submissions SubmissionRepository, gadgets GadgetFinder) *ReviewService {
	return &ReviewService{
		submissions: submissions,
		gadgets:     gadgets,
	}
}

// LoadQueue returns all submissions with near-duplicate titles consolidated.
// For every pending submission the freshest other record with the same
// trimmed, case-insensitive title is merged in, preserving the pending
// record's identity and status; newer pending duplicates of an already-listed
// title are dropped from the queue. The merge is a display/edit buffer only,
// nothing is written back to the store.
func (s *ReviewService) LoadQueue() ([]models.Submission, error) {
	subs, err := s.submissions.List()
	if err != nil {
		return nil, err
	}

	merged := make([]models.Submission, 0, len(subs))
	seenPending := make(map[string]bool)

	for _, sub := range subs {
		if sub.Status != models.SubmissionStatusPending {
			merged = append(merged, sub)
			continue
		}

		key := normalizeTitle(sub.Title)
		if seenPending[key] {
			// An older pending entry already carries this product; repeated
			// scrapes must not create duplicate queue entries.
			continue
		}
		seenPending[key] = true

		if latest := findLatestMatch(subs, sub); latest != nil {
			sub = mergeSubmission(sub, *latest)
		}
		merged = append(merged, sub)
	}

	return merged, nil
}

// findLatestMatch returns the freshest other submission (any status) whose
// title matches sub's, or nil.
func findLatestMatch(subs []models.Submission, sub models.Submission) *models.Submission {
	key := normalizeTitle(sub.Title)

	var latest *models.Submission
	for i := range subs {
		other := &subs[i]
		if other.ID == sub.ID || normalizeTitle(other.Title) != key {
			continue
		}
		if latest == nil || other.CreatedAt.After(latest.CreatedAt) {
			latest = other
		}
	}
	return latest
}

// mergeSubmission overlays the freshest record's data onto the pending one
// while keeping the pending record's identity, status and attribution. The
// pending title also stays: the duplicate matched on a trimmed lowercased
// variant of it, and that variant must not replace the clean display title.
func mergeSubmission(pending, latest models.Submission) models.Submission {
	merged := latest
	merged.BaseModel = pending.BaseModel
	merged.Status = pending.Status
	merged.AddedBy = pending.AddedBy
	merged.SourceURL = pending.SourceURL
	merged.Title = pending.Title
	return merged
}

// Approve promotes the submission into the catalog, applying the reviewer's
// edits, and flips its status. The catalog insert and the status flip commit
// together; approving twice fails with ErrAlreadyApproved.
func (s *ReviewService) Approve(id uuid.UUID, req *ApproveRequest) (*models.Gadget, error) {
	sub, err := s.submissions.Get(id)
	if err != nil {
		return nil, err
	}

	if sub.Status != models.SubmissionStatusPending {
		return nil, ErrAlreadyApproved
	}

	gadget := buildGadget(sub, req)

	if err := s.submissions.Promote(id, gadget); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"submission_id": id,
		"gadget_id":     gadget.ID,
		"title":         gadget.Title,
	}).Info("Submission approved")

	return gadget, nil
}

// buildGadget constructs the catalog entry: canonical fields only, the
// reviewer's non-empty edits winning over stored values, image_urls collapsed
// to the first element, created_by copied from the submission's added_by.
func buildGadget(sub *models.Submission, req *ApproveRequest) *models.Gadget {
	gadget := &models.Gadget{
		Title:      sub.Title,
		Category:   sub.Category,
		SpecFields: sub.SpecFields,
		CreatedBy:  sub.AddedBy,
	}

	if len(sub.ImageURLs) > 0 {
		gadget.ImageURL = sub.ImageURLs[0]
	}

	if req == nil {
		return gadget
	}

	if req.Title != "" {
		gadget.Title = req.Title
	}
	if req.Category != "" {
		gadget.Category = req.Category
	}
	gadget.ShortReview = req.ShortReview
	gadget.BuyLink1 = req.BuyLink1
	gadget.BuyLink2 = req.BuyLink2

	for _, name := range models.CanonicalFieldNames() {
		if v := req.SpecFields.Get(name); v != "" {
			gadget.SpecFields.Set(name, v)
		}
	}

	return gadget
}

// Delete discards a submission the reviewer rejected.
func (s *ReviewService) Delete(id uuid.UUID) error {
	return s.submissions.Delete(id)
}

// ReconcileOrphans reports submissions still pending even though a catalog
// entry with the same title exists.
func (s *ReviewService) ReconcileOrphans() ([]StuckSubmission, error) {
	subs, err := s.submissions.List()
	if err != nil {
		return nil, err
	}

	gadgets, err := s.gadgets.ListAll()
	if err != nil {
		return nil, err
	}

	byTitle := make(map[string]*models.Gadget, len(gadgets))
	for i := range gadgets {
		byTitle[normalizeTitle(gadgets[i].Title)] = &gadgets[i]
	}

	var stuck []StuckSubmission
	for _, sub := range subs {
		if sub.Status != models.SubmissionStatusPending {
			continue
		}
		if gadget, ok := byTitle[normalizeTitle(sub.Title)]; ok {
			stuck = append(stuck, StuckSubmission{
				SubmissionID: sub.ID,
				GadgetID:     gadget.ID,
				Title:        sub.Title,
			})
		}
	}

	return stuck, nil
}

func normalizeTitle(title string) string {
	return strings.ToLower(strings.TrimSpace(title))
}
