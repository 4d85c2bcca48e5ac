// Package http provides HTTP handlers for training video operations.
package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/allisson/crewhub/internal/httputil"
	customValidation "github.com/allisson/crewhub/internal/validation"
	videoDomain "github.com/allisson/crewhub/internal/video/domain"
	"github.com/allisson/crewhub/internal/video/http/dto"
	videoUseCase "github.com/allisson/crewhub/internal/video/usecase"
)

// VideoHandler handles HTTP requests for video operations.
type VideoHandler struct {
	videoUseCase videoUseCase.VideoUseCase
	logger       *slog.Logger
}

// NewVideoHandler creates a new video handler with required dependencies.
func NewVideoHandler(useCase videoUseCase.VideoUseCase, logger *slog.Logger) *VideoHandler {
	return &VideoHandler{
		videoUseCase: useCase,
		logger:       logger,
	}
}

func parseIDParam(c *gin.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s format: must be a valid UUID", name)
	}
	return id, nil
}

// CreateHandler registers a new training video.
// POST /v1/videos
// Returns 201 Created with the video.
func (h *VideoHandler) CreateHandler(c *gin.Context) {
	var req dto.CreateVideoRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	companyID, _ := uuid.Parse(req.CompanyID)

	input := &videoDomain.CreateVideoInput{
		CompanyID:       companyID,
		Title:           req.Title,
		Description:     req.Description,
		URL:             req.URL,
		DurationSeconds: req.DurationSeconds,
	}

	video, err := h.videoUseCase.Create(c.Request.Context(), input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapVideoToResponse(video))
}

// GetHandler retrieves a video by ID.
// GET /v1/videos/:id
func (h *VideoHandler) GetHandler(c *gin.Context) {
	videoID, err := parseIDParam(c, "id")
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	video, err := h.videoUseCase.Get(c.Request.Context(), videoID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapVideoToResponse(video))
}

// ListHandler retrieves the videos of a company with pagination.
// GET /v1/companies/:id/videos?offset=0&limit=50
func (h *VideoHandler) ListHandler(c *gin.Context) {
	companyID, err := parseIDParam(c, "id")
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	videos, err := h.videoUseCase.ListByCompany(c.Request.Context(), companyID, offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapVideosToListResponse(videos))
}

// UpdateHandler modifies a video.
// PUT /v1/videos/:id
// Returns 204 No Content on success.
func (h *VideoHandler) UpdateHandler(c *gin.Context) {
	videoID, err := parseIDParam(c, "id")
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	var req dto.UpdateVideoRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	input := &videoDomain.UpdateVideoInput{
		Title:           req.Title,
		Description:     req.Description,
		URL:             req.URL,
		DurationSeconds: req.DurationSeconds,
		IsActive:        req.IsActive,
	}

	if err := h.videoUseCase.Update(c.Request.Context(), videoID, input); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteHandler deactivates a video.
// DELETE /v1/videos/:id
// Returns 204 No Content on success.
func (h *VideoHandler) DeleteHandler(c *gin.Context) {
	videoID, err := parseIDParam(c, "id")
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := h.videoUseCase.Delete(c.Request.Context(), videoID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}
