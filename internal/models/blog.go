// internal/models/blog.go
package models

import (
	"time"

	"github.com/google/uuid"
)

// BlogPost is an editorial article published alongside the catalog. Written
// by admins, independent of the scrape/review pipeline.
type BlogPost struct {
	BaseModel
	Title       string    `json:"title" gorm:"size:255;not null;index"`
	Content     string    `json:"content" gorm:"type:text;not null"`
	Category    string    `json:"category" gorm:"size:100;index"`
	ImageURL    string    `json:"image_url,omitempty" gorm:"type:text"`
	PublishedAt time.Time `json:"published_at" gorm:"index"`
	CreatedBy   uuid.UUID `json:"created_by" gorm:"type:uuid;index"`

	// Relationships
	Author *User `json:"author,omitempty" gorm:"foreignKey:CreatedBy"`
}

func (BlogPost) TableName() string {
	return "blog_posts"
}
