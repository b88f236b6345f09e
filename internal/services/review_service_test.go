// internal/services/review_service_test.go
package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/troveworks/trove-backend/internal/models"
)

type fakeGadgetFinder struct {
	gadgets []models.Gadget
}

func (f *fakeGadgetFinder) ListAll() ([]models.Gadget, error) {
	return f.gadgets, nil
}

func newSubmission(title string, createdAt time.Time) *models.Submission {
	sub := &models.Submission{
		SourceURL: "https://www.gsmarena.com/" + title + ".php",
		Title:     title,
		Category:  "Phones",
		ImageURLs: []string{"https://assets.example.com/images/1-aaaaaa.jpg"},
		Status:    models.SubmissionStatusPending,
		AddedBy:   uuid.New(),
	}
	sub.ID = uuid.New()
	sub.CreatedAt = createdAt
	return sub
}

func TestApprove(t *testing.T) {
	repo := &memorySubmissionRepo{}
	sub := newSubmission("Acme Phone X1", time.Now())
	sub.PlatformChipset = "Dimensity 9300"
	sub.BatteryType = "Li-Po 5000 mAh"
	sub.ImageURLs = []string{
		"https://assets.example.com/images/1-aaaaaa.jpg",
		"https://assets.example.com/images/2-bbbbbb.jpg",
	}
	repo.subs = append(repo.subs, sub)

	svc := NewReviewService(repo, &fakeGadgetFinder{})

	req := &ApproveRequest{ShortReview: "Solid flagship", BuyLink1: "https://shop.example.com/x1"}
	req.BatteryType = "Li-Po 5100 mAh"

	gadget, err := svc.Approve(sub.ID, req)
	require.NoError(t, err)

	// Exactly one catalog entry, attributed to the original submitter.
	require.Len(t, repo.gadgets, 1)
	assert.Equal(t, sub.AddedBy, gadget.CreatedBy)
	assert.Equal(t, "Acme Phone X1", gadget.Title)
	assert.Equal(t, "Phones", gadget.Category)
	assert.Equal(t, "Solid flagship", gadget.ShortReview)
	assert.Equal(t, "https://shop.example.com/x1", gadget.BuyLink1)

	// First image becomes the catalog image.
	assert.Equal(t, "https://assets.example.com/images/1-aaaaaa.jpg", gadget.ImageURL)

	// Reviewer edits win over scraped values; untouched fields carry over.
	assert.Equal(t, "Li-Po 5100 mAh", gadget.BatteryType)
	assert.Equal(t, "Dimensity 9300", gadget.PlatformChipset)

	// The submission flipped and stays behind as the audit trail.
	stored, err := repo.Get(sub.ID)
	require.NoError(t, err)
	assert.Equal(t, models.SubmissionStatusApproved, stored.Status)
}

func TestApproveTwiceRejected(t *testing.T) {
	repo := &memorySubmissionRepo{}
	sub := newSubmission("Acme Phone X1", time.Now())
	repo.subs = append(repo.subs, sub)

	svc := NewReviewService(repo, &fakeGadgetFinder{})

	_, err := svc.Approve(sub.ID, &ApproveRequest{})
	require.NoError(t, err)

	_, err = svc.Approve(sub.ID, &ApproveRequest{})
	assert.ErrorIs(t, err, ErrAlreadyApproved)
	assert.Len(t, repo.gadgets, 1)
}

func TestApproveUnknownSubmission(t *testing.T) {
	svc := NewReviewService(&memorySubmissionRepo{}, &fakeGadgetFinder{})

	_, err := svc.Approve(uuid.New(), &ApproveRequest{})
	assert.ErrorIs(t, err, ErrSubmissionNotFound)
}

func TestApproveExtrasNeverReachCatalog(t *testing.T) {
	repo := &memorySubmissionRepo{}
	sub := newSubmission("Acme Phone X1", time.Now())
	sub.ExtraFields = models.JSONB{"misc: sar": "1.17 W/kg"}
	repo.subs = append(repo.subs, sub)

	svc := NewReviewService(repo, &fakeGadgetFinder{})

	gadget, err := svc.Approve(sub.ID, &ApproveRequest{})
	require.NoError(t, err)

	// Only canonical columns cross over; extras stay on the submission.
	for _, name := range models.CanonicalFieldNames() {
		assert.Equal(t, sub.SpecFields.Get(name), gadget.SpecFields.Get(name))
	}
}

func TestLoadQueueMergesFreshestDuplicate(t *testing.T) {
	repo := &memorySubmissionRepo{}

	older := newSubmission("Acme Phone X1", time.Now().Add(-time.Hour))
	older.BatteryType = "Li-Po 4800 mAh"

	// A rescrape of the same page, newer and with corrected data.
	newer := newSubmission("acme phone x1 ", time.Now())
	newer.BatteryType = "Li-Po 5000 mAh"

	repo.subs = append(repo.subs, older, newer)

	svc := NewReviewService(repo, &fakeGadgetFinder{})

	queue, err := svc.LoadQueue()
	require.NoError(t, err)

	// One consolidated entry, keeping the older record's identity but the
	// newer record's data.
	require.Len(t, queue, 1)
	assert.Equal(t, older.ID, queue[0].ID)
	assert.Equal(t, older.AddedBy, queue[0].AddedBy)
	assert.Equal(t, older.SourceURL, queue[0].SourceURL)
	assert.Equal(t, models.SubmissionStatusPending, queue[0].Status)
	assert.Equal(t, "Li-Po 5000 mAh", queue[0].BatteryType)

	// The rescrape's whitespace/case-variant title must not displace the
	// clean one the reviewer already sees.
	assert.Equal(t, "Acme Phone X1", queue[0].Title)
}

func TestLoadQueueKeepsDistinctTitles(t *testing.T) {
	repo := &memorySubmissionRepo{}
	repo.subs = append(repo.subs,
		newSubmission("Acme Phone X1", time.Now().Add(-time.Minute)),
		newSubmission("Acme Phone X2", time.Now()),
	)

	svc := NewReviewService(repo, &fakeGadgetFinder{})

	queue, err := svc.LoadQueue()
	require.NoError(t, err)
	assert.Len(t, queue, 2)
}

func TestLoadQueueRefreshesFromApprovedHistory(t *testing.T) {
	repo := &memorySubmissionRepo{}

	pending := newSubmission("Acme Phone X1", time.Now().Add(-2*time.Hour))
	pending.MiscPrice = "$ 799"

	approved := newSubmission("Acme Phone X1", time.Now().Add(-time.Hour))
	approved.Status = models.SubmissionStatusApproved
	approved.MiscPrice = "$ 749"

	repo.subs = append(repo.subs, pending, approved)

	svc := NewReviewService(repo, &fakeGadgetFinder{})

	queue, err := svc.LoadQueue()
	require.NoError(t, err)

	// The approved record stays listed; the pending one picks up its data
	// but must remain pending.
	require.Len(t, queue, 2)
	var got *models.Submission
	for i := range queue {
		if queue[i].ID == pending.ID {
			got = &queue[i]
		}
	}
	require.NotNil(t, got)
	assert.Equal(t, models.SubmissionStatusPending, got.Status)
	assert.Equal(t, "$ 749", got.MiscPrice)
}

func TestDelete(t *testing.T) {
	repo := &memorySubmissionRepo{}
	sub := newSubmission("Acme Phone X1", time.Now())
	repo.subs = append(repo.subs, sub)

	svc := NewReviewService(repo, &fakeGadgetFinder{})

	require.NoError(t, svc.Delete(sub.ID))
	assert.ErrorIs(t, svc.Delete(sub.ID), ErrSubmissionNotFound)
}

func TestReconcileOrphans(t *testing.T) {
	repo := &memorySubmissionRepo{}

	stuck := newSubmission("Acme Phone X1", time.Now())
	clean := newSubmission("Acme Phone X2", time.Now())
	repo.subs = append(repo.subs, stuck, clean)

	gadget := models.Gadget{Title: "acme phone x1"}
	gadget.ID = uuid.New()

	svc := NewReviewService(repo, &fakeGadgetFinder{gadgets: []models.Gadget{gadget}})

	report, err := svc.ReconcileOrphans()
	require.NoError(t, err)

	require.Len(t, report, 1)
	assert.Equal(t, stuck.ID, report[0].SubmissionID)
	assert.Equal(t, gadget.ID, report[0].GadgetID)
	assert.Equal(t, "Acme Phone X1", report[0].Title)
}
