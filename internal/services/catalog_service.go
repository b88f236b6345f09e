// internal/services/catalog_service.go
package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/troveworks/trove-backend/internal/models"
	"github.com/troveworks/trove-backend/internal/utils"
)

var ErrGadgetNotFound = errors.New("gadget not found")

// CatalogService manages promoted catalog entries. Creation normally happens
// through review approval; the direct create path exists for manual admin
// additions.
type CatalogService struct {
	db *gorm.DB
}

type CreateGadgetRequest struct {
	Title       string `json:"title" validate:"required,min=2,max=255"`
	Category    string `json:"category" validate:"required"`
	ShortReview string `json:"short_review,omitempty"`
	BuyLink1    string `json:"buy_link_1,omitempty" validate:"omitempty,url"`
	BuyLink2    string `json:"buy_link_2,omitempty" validate:"omitempty,url"`
	ImageURL    string `json:"image_url,omitempty" validate:"omitempty,url"`

	models.SpecFields
}

type UpdateGadgetRequest struct {
	Title       string `json:"title,omitempty" validate:"omitempty,min=2,max=255"`
	Category    string `json:"category,omitempty"`
	ShortReview string `json:"short_review,omitempty"`
	BuyLink1    string `json:"buy_link_1,omitempty" validate:"omitempty,url"`
	BuyLink2    string `json:"buy_link_2,omitempty" validate:"omitempty,url"`
	ImageURL    string `json:"image_url,omitempty" validate:"omitempty,url"`

	models.SpecFields
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

// ListAll satisfies GadgetFinder for the review reconciliation sweep.
func (s *CatalogService) ListAll() ([]models.Gadget, error) {
	var gadgets []models.Gadget
	if err := s.db.Find(&gadgets).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch gadgets: %w", err)
	}
	return gadgets, nil
}

func (s *CatalogService) Search(params utils.PaginationParams) ([]models.Gadget, int64, error) {
	query := s.db.Model(&models.Gadget{})

	if params.Category != "" {
		query = query.Where("category = ?", params.Category)
	}

	if params.Search != "" {
		searchTerm := "%" + strings.ToLower(params.Search) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(short_review) LIKE ?", searchTerm, searchTerm)
	}

	// Get total count
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count gadgets: %w", err)
	}

	// Apply sorting and pagination
	allowedSortFields := []string{"created_at", "updated_at", "title", "category", "view_count"}
	query = utils.ApplySort(query, params, allowedSortFields)
	query = utils.ApplyPagination(query, params)

	var gadgets []models.Gadget
	if err := query.Find(&gadgets).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch gadgets: %w", err)
	}

	return gadgets, total, nil
}

func (s *CatalogService) Get(id uuid.UUID) (*models.Gadget, error) {
	var gadget models.Gadget
	if err := s.db.First(&gadget, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGadgetNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	go s.incrementViewCount(id)

	return &gadget, nil
}

// GetRelated returns other catalog entries in the same category.
func (s *CatalogService) GetRelated(id uuid.UUID, limit int) ([]models.Gadget, error) {
	var gadget models.Gadget
	if err := s.db.First(&gadget, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGadgetNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	var related []models.Gadget
	if err := s.db.Where("category = ? AND id <> ?", gadget.Category, id).
		Order("created_at DESC").
		Limit(limit).
		Find(&related).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch related gadgets: %w", err)
	}

	return related, nil
}

func (s *CatalogService) Create(creatorID uuid.UUID, req *CreateGadgetRequest) (*models.Gadget, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	gadget := &models.Gadget{
		Title:       req.Title,
		Category:    req.Category,
		ShortReview: req.ShortReview,
		BuyLink1:    req.BuyLink1,
		BuyLink2:    req.BuyLink2,
		ImageURL:    req.ImageURL,
		SpecFields:  req.SpecFields,
		CreatedBy:   creatorID,
	}

	if err := s.db.Create(gadget).Error; err != nil {
		return nil, fmt.Errorf("failed to create gadget: %w", err)
	}

	return gadget, nil
}

func (s *CatalogService) Update(id uuid.UUID, req *UpdateGadgetRequest) (*models.Gadget, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var gadget models.Gadget
	if err := s.db.First(&gadget, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGadgetNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if req.Title != "" {
		gadget.Title = req.Title
	}
	if req.Category != "" {
		gadget.Category = req.Category
	}
	if req.ShortReview != "" {
		gadget.ShortReview = req.ShortReview
	}
	if req.BuyLink1 != "" {
		gadget.BuyLink1 = req.BuyLink1
	}
	if req.BuyLink2 != "" {
		gadget.BuyLink2 = req.BuyLink2
	}
	if req.ImageURL != "" {
		gadget.ImageURL = req.ImageURL
	}
	for _, name := range models.CanonicalFieldNames() {
		if v := req.SpecFields.Get(name); v != "" {
			gadget.SpecFields.Set(name, v)
		}
	}

	if err := s.db.Save(&gadget).Error; err != nil {
		return nil, fmt.Errorf("failed to update gadget: %w", err)
	}

	return &gadget, nil
}

func (s *CatalogService) Delete(id uuid.UUID) error {
	result := s.db.Delete(&models.Gadget{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete gadget: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrGadgetNotFound
	}
	return nil
}

func (s *CatalogService) incrementViewCount(id uuid.UUID) {
	s.db.Model(&models.Gadget{}).Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1"))
}
