// internal/models/gadget.go
package models

import (
	"github.com/google/uuid"
)

// Gadget is a promoted catalog entry. Created only when a submission is
// approved; owns its own identity distinct from the submission it came from.
type Gadget struct {
	BaseModel
	Title       string `json:"title" gorm:"size:255;not null;index"`
	Category    string `json:"category" gorm:"size:100;index"`
	ShortReview string `json:"short_review,omitempty" gorm:"type:text"`
	BuyLink1    string `json:"buy_link_1,omitempty" gorm:"type:text"`
	BuyLink2    string `json:"buy_link_2,omitempty" gorm:"type:text"`

	// Single primary image, collapsed from the submission's relocated set
	// (first element wins).
	ImageURL string `json:"image_url,omitempty" gorm:"type:text"`

	SpecFields

	CreatedBy uuid.UUID `json:"created_by" gorm:"type:uuid;index"`
	ViewCount int64     `json:"view_count" gorm:"default:0"`

	// Relationships
	Creator *User `json:"creator,omitempty" gorm:"foreignKey:CreatedBy"`
}
