// internal/handlers/review.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/troveworks/trove-backend/internal/models"
	"github.com/troveworks/trove-backend/internal/services"
	"github.com/troveworks/trove-backend/internal/utils"
)

type ReviewHandler struct {
	reviewService *services.ReviewService
}

func NewReviewHandler(reviewService *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
	}
}

// GET /review
func (h *ReviewHandler) GetQueue(c *gin.Context) {
	queue, err := h.reviewService.LoadQueue()
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	// Default view is the pending queue; ?status=all returns everything.
	if c.DefaultQuery("status", "pending") == "pending" {
		pending := make([]models.Submission, 0, len(queue))
		for _, sub := range queue {
			if sub.Status == models.SubmissionStatusPending {
				pending = append(pending, sub)
			}
		}
		queue = pending
	}

	utils.SuccessResponse(c, queue)
}

// PUT /review/:id/approve
func (h *ReviewHandler) Approve(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid submission ID", nil)
		return
	}

	var req services.ApproveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	gadget, err := h.reviewService.Approve(id, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSubmissionNotFound):
			utils.NotFoundResponse(c, "Submission")
		case errors.Is(err, services.ErrAlreadyApproved):
			utils.ConflictResponse(c, err.Error())
		default:
			utils.InternalErrorResponse(c, err.Error())
		}
		return
	}

	utils.CreatedResponse(c, gadget)
}

// DELETE /review/:id
func (h *ReviewHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid submission ID", nil)
		return
	}

	if err := h.reviewService.Delete(id); err != nil {
		if errors.Is(err, services.ErrSubmissionNotFound) {
			utils.NotFoundResponse(c, "Submission")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{"deleted": id})
}

// GET /review/orphans
func (h *ReviewHandler) GetOrphans(c *gin.Context) {
	stuck, err := h.reviewService.ReconcileOrphans()
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, stuck)
}
