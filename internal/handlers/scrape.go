// internal/handlers/scrape.go
package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/troveworks/trove-backend/internal/services"
	"github.com/troveworks/trove-backend/internal/utils"
)

type ScrapeHandler struct {
	ingestService *services.IngestService
	sourceDomain  string
}

type ScrapeRequest struct {
	URL string `json:"url"`
}

func NewScrapeHandler(ingestService *services.IngestService, sourceDomain string) *ScrapeHandler {
	return &ScrapeHandler{
		ingestService: ingestService,
		sourceDomain:  sourceDomain,
	}
}

// POST /scrape
func (h *ScrapeHandler) Scrape(c *gin.Context) {
	userIDStr, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	actorID, err := uuid.Parse(userIDStr)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid user ID", nil)
		return
	}

	var req ScrapeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid URL provided", err.Error())
		return
	}

	if req.URL == "" {
		utils.BadRequestResponse(c, "Invalid URL provided", nil)
		return
	}

	// Only URLs from the supported source are scrapeable. The coordinator
	// re-checks this; the boundary gate keeps bad input off the network.
	if !strings.Contains(req.URL, h.sourceDomain) {
		utils.BadRequestResponse(c, "Only "+h.sourceDomain+" URLs are supported", nil)
		return
	}

	sub, err := h.ingestService.Ingest(c.Request.Context(), req.URL, actorID)
	if err != nil {
		h.respondIngestError(c, err)
		return
	}

	utils.SuccessResponse(c, sub)
}

// respondIngestError keeps failure messages precise enough to guide the
// operator's manual-retry decision: source down, page incomplete, or images
// lost in relocation are all different situations.
func (h *ScrapeHandler) respondIngestError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUnsupportedSource):
		utils.BadRequestResponse(c, err.Error(), nil)
	case errors.Is(err, services.ErrNoTitle):
		utils.ErrorResponse(c, 400, "NO_TITLE", err.Error(), nil)
	case errors.Is(err, services.ErrNoImages):
		utils.ErrorResponse(c, 400, "NO_IMAGES", err.Error(), nil)
	case errors.Is(err, services.ErrAllImagesFailed):
		utils.ErrorResponse(c, 400, "IMAGE_RELOCATION_FAILED", err.Error(), nil)
	case errors.Is(err, services.ErrSourceUnavailable):
		utils.ErrorResponse(c, 500, "SOURCE_UNAVAILABLE", err.Error(), nil)
	default:
		utils.InternalErrorResponse(c, err.Error())
	}
}
