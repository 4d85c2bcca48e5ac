// Package http provides HTTP handlers for billing order operations.
package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/allisson/crewhub/internal/httputil"
	orderDomain "github.com/allisson/crewhub/internal/order/domain"
	"github.com/allisson/crewhub/internal/order/http/dto"
	orderUseCase "github.com/allisson/crewhub/internal/order/usecase"
	customValidation "github.com/allisson/crewhub/internal/validation"
)

// OrderHandler handles HTTP requests for order operations.
type OrderHandler struct {
	orderUseCase orderUseCase.OrderUseCase
	logger       *slog.Logger
}

// NewOrderHandler creates a new order handler with required dependencies.
func NewOrderHandler(useCase orderUseCase.OrderUseCase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		orderUseCase: useCase,
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

// CreateHandler registers a new pending order.
// POST /v1/orders
// Returns 201 Created with the order.
func (h *OrderHandler) CreateHandler(c *gin.Context) {
	var req dto.CreateOrderRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	companyID, _ := uuid.Parse(req.CompanyID)

	input := &orderDomain.CreateOrderInput{
		CompanyID:   companyID,
		PlanName:    req.PlanName,
		AmountCents: req.AmountCents,
		Currency:    req.Currency,
	}

	order, err := h.orderUseCase.Create(c.Request.Context(), input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapOrderToResponse(order))
}

// GetHandler retrieves an order by ID.
// GET /v1/orders/:id
func (h *OrderHandler) GetHandler(c *gin.Context) {
	orderID, err := parseIDParam(c, "id")
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	order, err := h.orderUseCase.Get(c.Request.Context(), orderID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapOrderToResponse(order))
}

// ListHandler retrieves the orders of a company with pagination.
// GET /v1/companies/:id/orders?offset=0&limit=50
func (h *OrderHandler) ListHandler(c *gin.Context) {
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

	orders, err := h.orderUseCase.ListByCompany(c.Request.Context(), companyID, offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapOrdersToListResponse(orders))
}

// UpdateStatusHandler moves an order to a new status.
// PATCH /v1/orders/:id/status
// Returns 204 No Content on success.
func (h *OrderHandler) UpdateStatusHandler(c *gin.Context) {
	orderID, err := parseIDParam(c, "id")
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	var req dto.UpdateOrderStatusRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	if err := h.orderUseCase.UpdateStatus(c.Request.Context(), orderID, req.Status); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}
