// Package http provides HTTP handlers for manager management operations.
package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/allisson/crewhub/internal/httputil"
	managerDomain "github.com/allisson/crewhub/internal/manager/domain"
	"github.com/allisson/crewhub/internal/manager/http/dto"
	managerUseCase "github.com/allisson/crewhub/internal/manager/usecase"
	customValidation "github.com/allisson/crewhub/internal/validation"
)

// ManagerHandler handles HTTP requests for manager operations.
type ManagerHandler struct {
	managerUseCase managerUseCase.ManagerUseCase
	logger         *slog.Logger
}

// NewManagerHandler creates a new manager handler with required dependencies.
func NewManagerHandler(useCase managerUseCase.ManagerUseCase, logger *slog.Logger) *ManagerHandler {
	return &ManagerHandler{
		managerUseCase: useCase,
		logger:         logger,
	}
}

func parseIDParam(c *gin.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s format: must be a valid UUID", name)
	}
	return id, nil
}

// CreateHandler registers a new manager for a company.
// POST /v1/managers
// Returns 201 Created with the manager.
func (h *ManagerHandler) CreateHandler(c *gin.Context) {
	var req dto.CreateManagerRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	companyID, _ := uuid.Parse(req.CompanyID)

	input := &managerDomain.CreateManagerInput{
		CompanyID: companyID,
		Name:      req.Name,
		Email:     req.Email,
		Password:  req.Password,
	}

	manager, err := h.managerUseCase.Create(c.Request.Context(), input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapManagerToResponse(manager))
}

// GetHandler retrieves a manager by ID.
// GET /v1/managers/:id
func (h *ManagerHandler) GetHandler(c *gin.Context) {
	managerID, err := parseIDParam(c, "id")
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	manager, err := h.managerUseCase.Get(c.Request.Context(), managerID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapManagerToResponse(manager))
}

// ListHandler retrieves the managers of a company with pagination.
// GET /v1/companies/:id/managers?offset=0&limit=50
func (h *ManagerHandler) ListHandler(c *gin.Context) {
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

	managers, err := h.managerUseCase.ListByCompany(c.Request.Context(), companyID, offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapManagersToListResponse(managers))
}

// UpdateHandler modifies a manager.
// PUT /v1/managers/:id
// Returns 204 No Content on success.
func (h *ManagerHandler) UpdateHandler(c *gin.Context) {
	managerID, err := parseIDParam(c, "id")
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	var req dto.UpdateManagerRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	input := &managerDomain.UpdateManagerInput{
		Name:     req.Name,
		Email:    req.Email,
		IsActive: req.IsActive,
	}

	if err := h.managerUseCase.Update(c.Request.Context(), managerID, input); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteHandler deactivates a manager.
// DELETE /v1/managers/:id
// Returns 204 No Content on success.
func (h *ManagerHandler) DeleteHandler(c *gin.Context) {
	managerID, err := parseIDParam(c, "id")
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := h.managerUseCase.Delete(c.Request.Context(), managerID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}
