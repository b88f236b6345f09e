// internal/handlers/gadget.go
package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/troveworks/trove-backend/internal/services"
	"github.com/troveworks/trove-backend/internal/utils"
)

type GadgetHandler struct {
	catalogService *services.CatalogService
}

func NewGadgetHandler(catalogService *services.CatalogService) *GadgetHandler {
	return &GadgetHandler{
		catalogService: catalogService,
	}
}

// GET /gadgets
func (h *GadgetHandler) GetGadgets(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	gadgets, total, err := h.catalogService.Search(params)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	result := utils.CreatePaginationResult(gadgets, total, params)
	utils.PaginatedResponse(c, result)
}

// GET /gadgets/:id
func (h *GadgetHandler) GetGadget(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid gadget ID", nil)
		return
	}

	gadget, err := h.catalogService.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrGadgetNotFound) {
			utils.NotFoundResponse(c, "Gadget")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gadget)
}

// GET /gadgets/:id/related
func (h *GadgetHandler) GetRelatedGadgets(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid gadget ID", nil)
		return
	}

	limit := 4
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 && parsed <= 20 {
			limit = parsed
		}
	}

	related, err := h.catalogService.GetRelated(id, limit)
	if err != nil {
		if errors.Is(err, services.ErrGadgetNotFound) {
			utils.NotFoundResponse(c, "Gadget")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, related)
}

// POST /gadgets
func (h *GadgetHandler) CreateGadget(c *gin.Context) {
	userIDStr, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	creatorID, err := uuid.Parse(userIDStr)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid user ID", nil)
		return
	}

	var req services.CreateGadgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	gadget, err := h.catalogService.Create(creatorID, &req)
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.CreatedResponse(c, gadget)
}

// PUT /gadgets/:id
func (h *GadgetHandler) UpdateGadget(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid gadget ID", nil)
		return
	}

	var req services.UpdateGadgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	gadget, err := h.catalogService.Update(id, &req)
	if err != nil {
		if errors.Is(err, services.ErrGadgetNotFound) {
			utils.NotFoundResponse(c, "Gadget")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gadget)
}

// DELETE /gadgets/:id
func (h *GadgetHandler) DeleteGadget(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid gadget ID", nil)
		return
	}

	if err := h.catalogService.Delete(id); err != nil {
		if errors.Is(err, services.ErrGadgetNotFound) {
			utils.NotFoundResponse(c, "Gadget")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{"deleted": id})
}
