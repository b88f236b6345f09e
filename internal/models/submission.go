// internal/models/submission.go
package models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Submission is a scraped product awaiting review. Created only by the
// ingestion pipeline, always as pending; the status flips to approved exactly
// once and never reverts. Approved submissions are retained as an audit trail.
type Submission struct {
	BaseModel
	SourceURL string           `json:"source_url" gorm:"type:text;not null"`
	Title     string           `json:"title" gorm:"size:255;not null;index"`
	Category  string           `json:"category" gorm:"size:100;index"`
	ImageURLs pq.StringArray   `json:"image_urls" gorm:"type:text[]"`
	Status    SubmissionStatus `json:"status" gorm:"type:varchar(20);default:'pending';index"`
	AddedBy   uuid.UUID        `json:"added_by" gorm:"type:uuid;not null;index"`

	SpecFields

	// Source labels the mapper has no entry for. Kept for operator reference
	// only; never copied into a catalog entry.
	ExtraFields JSONB `json:"extra_fields,omitempty" gorm:"type:jsonb"`

	// Relationships
	Submitter *User `json:"submitter,omitempty" gorm:"foreignKey:AddedBy"`
}

func (Submission) TableName() string {
	return "scraped_data"
}
