// internal/services/repository.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/troveworks/trove-backend/internal/models"
)

var (
	ErrSubmissionNotFound = errors.New("submission not found")

	// Returned when approving a submission that already left pending.
	// Promotion is one-directional; a second approve must never mint a
	// second catalog entry.
	ErrAlreadyApproved = errors.New("submission is already approved")
)

// SubmissionRepository is the narrow persistence surface the ingestion and
// review services depend on. The gorm implementation below is the production
// one; tests substitute fakes.
type SubmissionRepository interface {
	Create(sub *models.Submission) error
	List() ([]models.Submission, error)
	Get(id uuid.UUID) (*models.Submission, error)
	Delete(id uuid.UUID) error

	// Promote inserts the catalog entry and flips the submission to approved
	// in one transaction. Fails with ErrAlreadyApproved unless the submission
	// still reads pending at commit time.
	Promote(id uuid.UUID, gadget *models.Gadget) error
}

type gormSubmissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) SubmissionRepository {
	return &gormSubmissionRepository{db: db}
}

func (r *gormSubmissionRepository) Create(sub *models.Submission) error {
	if err := r.db.Create(sub).Error; err != nil {
		return fmt.Errorf("failed to create submission: %w", err)
	}
	return nil
}

func (r *gormSubmissionRepository) List() ([]models.Submission, error) {
	var subs []models.Submission
	if err := r.db.Order("created_at ASC").Find(&subs).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch submissions: %w", err)
	}
	return subs, nil
}

func (r *gormSubmissionRepository) Get(id uuid.UUID) (*models.Submission, error) {
	var sub models.Submission
	if err := r.db.First(&sub, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubmissionNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &sub, nil
}

func (r *gormSubmissionRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Submission{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete submission: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrSubmissionNotFound
	}
	return nil
}

func (r *gormSubmissionRepository) Promote(id uuid.UUID, gadget *models.Gadget) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var sub models.Submission
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&sub, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSubmissionNotFound
			}
			return fmt.Errorf("database error: %w", err)
		}

		if sub.Status != models.SubmissionStatusPending {
			return ErrAlreadyApproved
		}

		if err := tx.Create(gadget).Error; err != nil {
			return fmt.Errorf("failed to create catalog entry: %w", err)
		}

		if err := tx.Model(&sub).
			Update("status", models.SubmissionStatusApproved).Error; err != nil {
			return fmt.Errorf("failed to update submission status: %w", err)
		}

		return nil
	})
}
