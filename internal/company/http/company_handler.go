// Package http provides HTTP handlers for company management operations.
package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	companyDomain "github.com/allisson/crewhub/internal/company/domain"
	"github.com/allisson/crewhub/internal/company/http/dto"
	companyUseCase "github.com/allisson/crewhub/internal/company/usecase"
	"github.com/allisson/crewhub/internal/httputil"
	customValidation "github.com/allisson/crewhub/internal/validation"
)

// CompanyHandler handles HTTP requests for company operations.
type CompanyHandler struct {
	companyUseCase companyUseCase.CompanyUseCase
	logger         *slog.Logger
}

// NewCompanyHandler creates a new company handler with required dependencies.
func NewCompanyHandler(useCase companyUseCase.CompanyUseCase, logger *slog.Logger) *CompanyHandler {
	return &CompanyHandler{
		companyUseCase: useCase,
		logger:         logger,
	}
}

// parseIDParam extracts and parses a UUID path parameter.
func parseIDParam(c *gin.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s format: must be a valid UUID", name)
	}
	return id, nil
}

// CreateHandler registers a new company.
// POST /v1/companies
// Returns 201 Created with the company.
func (h *CompanyHandler) CreateHandler(c *gin.Context) {
	var req dto.CreateCompanyRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	input := &companyDomain.CreateCompanyInput{
		Name:     req.Name,
		Email:    req.Email,
		Document: req.Document,
	}

	company, err := h.companyUseCase.Create(c.Request.Context(), input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapCompanyToResponse(company))
}

// GetHandler retrieves a company by ID.
// GET /v1/companies/:id
func (h *CompanyHandler) GetHandler(c *gin.Context) {
	companyID, err := parseIDParam(c, "id")
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	company, err := h.companyUseCase.Get(c.Request.Context(), companyID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapCompanyToResponse(company))
}

// ListHandler retrieves companies with pagination.
// GET /v1/companies?offset=0&limit=50
func (h *CompanyHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	companies, err := h.companyUseCase.List(c.Request.Context(), offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapCompaniesToListResponse(companies))
}

// UpdateHandler modifies a company.
// PUT /v1/companies/:id
// Returns 204 No Content on success.
func (h *CompanyHandler) UpdateHandler(c *gin.Context) {
	companyID, err := parseIDParam(c, "id")
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	var req dto.UpdateCompanyRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	input := &companyDomain.UpdateCompanyInput{
		Name:     req.Name,
		Email:    req.Email,
		Document: req.Document,
		IsActive: req.IsActive,
	}

	if err := h.companyUseCase.Update(c.Request.Context(), companyID, input); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteHandler soft deletes a company.
// DELETE /v1/companies/:id
// Returns 204 No Content on success.
func (h *CompanyHandler) DeleteHandler(c *gin.Context) {
	companyID, err := parseIDParam(c, "id")
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := h.companyUseCase.Delete(c.Request.Context(), companyID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}
