// Package http provides HTTP handlers for employee management operations.
package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	employeeDomain "github.com/allisson/crewhub/internal/employee/domain"
	"github.com/allisson/crewhub/internal/employee/http/dto"
	employeeUseCase "github.com/allisson/crewhub/internal/employee/usecase"
	"github.com/allisson/crewhub/internal/httputil"
	customValidation "github.com/allisson/crewhub/internal/validation"
)

// EmployeeHandler handles HTTP requests for employee operations.
type EmployeeHandler struct {
	employeeUseCase employeeUseCase.EmployeeUseCase
	logger          *slog.Logger
}

// NewEmployeeHandler creates a new employee handler with required dependencies.
func NewEmployeeHandler(useCase employeeUseCase.EmployeeUseCase, logger *slog.Logger) *EmployeeHandler {
	return &EmployeeHandler{
		employeeUseCase: useCase,
		logger:          logger,
	}
}

func parseIDParam(c *gin.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s format: must be a valid UUID", name)
	}
	return id, nil
}

// CreateHandler registers a new employee directly.
// POST /v1/employees
// Returns 201 Created with the employee.
func (h *EmployeeHandler) CreateHandler(c *gin.Context) {
	var req dto.CreateEmployeeRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	companyID, _ := uuid.Parse(req.CompanyID)

	input := &employeeDomain.CreateEmployeeInput{
		CompanyID: companyID,
		Name:      req.Name,
		Email:     req.Email,
		BirthDate: req.BirthDate,
		Position:  req.Position,
	}

	employee, err := h.employeeUseCase.Create(c.Request.Context(), input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapEmployeeToResponse(employee))
}

// GetHandler retrieves an employee by ID.
// GET /v1/employees/:id
func (h *EmployeeHandler) GetHandler(c *gin.Context) {
	employeeID, err := parseIDParam(c, "id")
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	employee, err := h.employeeUseCase.Get(c.Request.Context(), employeeID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapEmployeeToResponse(employee))
}

// ListHandler retrieves the employees of a company with pagination.
// GET /v1/companies/:id/employees?offset=0&limit=50
func (h *EmployeeHandler) ListHandler(c *gin.Context) {
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

	employees, err := h.employeeUseCase.ListByCompany(c.Request.Context(), companyID, offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapEmployeesToListResponse(employees))
}

// UpdateHandler modifies an employee.
// PUT /v1/employees/:id
// Returns 204 No Content on success.
func (h *EmployeeHandler) UpdateHandler(c *gin.Context) {
	employeeID, err := parseIDParam(c, "id")
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	var req dto.UpdateEmployeeRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	input := &employeeDomain.UpdateEmployeeInput{
		Name:     req.Name,
		Email:    req.Email,
		Position: req.Position,
	}

	if err := h.employeeUseCase.Update(c.Request.Context(), employeeID, input); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}

// ArchiveHandler archives an employee.
// DELETE /v1/employees/:id
// Returns 204 No Content on success.
func (h *EmployeeHandler) ArchiveHandler(c *gin.Context) {
	employeeID, err := parseIDParam(c, "id")
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := h.employeeUseCase.Archive(c.Request.Context(), employeeID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}
