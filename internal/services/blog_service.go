// internal/services/blog_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/troveworks/trove-backend/internal/models"
	"github.com/troveworks/trove-backend/internal/utils"
)

var ErrBlogPostNotFound = errors.New("blog post not found")

// BlogService manages editorial posts published next to the catalog.
type BlogService struct {
	db *gorm.DB
}

type CreateBlogPostRequest struct {
	Title    string `json:"title" validate:"required,min=2,max=255"`
	Content  string `json:"content" validate:"required"`
	Category string `json:"category" validate:"required"`
	ImageURL string `json:"image_url,omitempty" validate:"omitempty,url"`
}

type UpdateBlogPostRequest struct {
	Title    string `json:"title,omitempty" validate:"omitempty,min=2,max=255"`
	Content  string `json:"content,omitempty"`
	Category string `json:"category,omitempty"`
	ImageURL string `json:"image_url,omitempty" validate:"omitempty,url"`
}

func NewBlogService(db *gorm.DB) *BlogService {
	return &BlogService{db: db}
}

// List returns all posts, newest publication first.
func (s *BlogService) List() ([]models.BlogPost, error) {
	var posts []models.BlogPost
	if err := s.db.Order("published_at DESC").Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch blog posts: %w", err)
	}
	return posts, nil
}

func (s *BlogService) Get(id uuid.UUID) (*models.BlogPost, error) {
	var post models.BlogPost
	if err := s.db.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBlogPostNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &post, nil
}

func (s *BlogService) Create(creatorID uuid.UUID, req *CreateBlogPostRequest) (*models.BlogPost, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	post := &models.BlogPost{
		Title:       req.Title,
		Content:     req.Content,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		PublishedAt: time.Now(),
		CreatedBy:   creatorID,
	}

	if err := s.db.Create(post).Error; err != nil {
		return nil, fmt.Errorf("failed to create blog post: %w", err)
	}

	return post, nil
}

func (s *BlogService) Update(id uuid.UUID, req *UpdateBlogPostRequest) (*models.BlogPost, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var post models.BlogPost
	if err := s.db.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBlogPostNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if req.Title != "" {
		post.Title = req.Title
	}
	if req.Content != "" {
		post.Content = req.Content
	}
	if req.Category != "" {
		post.Category = req.Category
	}
	if req.ImageURL != "" {
		post.ImageURL = req.ImageURL
	}

	if err := s.db.Save(&post).Error; err != nil {
		return nil, fmt.Errorf("failed to update blog post: %w", err)
	}

	return &post, nil
}

func (s *BlogService) Delete(id uuid.UUID) error {
	result := s.db.Delete(&models.BlogPost{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete blog post: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrBlogPostNotFound
	}
	return nil
}
