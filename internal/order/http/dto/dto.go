// Package dto provides data transfer objects for order HTTP handling.
package dto

import (
	"time"

	validation "github.com/jellydator/validation"

	orderDomain "github.com/allisson/crewhub/internal/order/domain"
	customValidation "github.com/allisson/crewhub/internal/validation"
)

// CreateOrderRequest contains the parameters for creating an order.
type CreateOrderRequest struct {
	CompanyID   string `json:"company_id"`
	PlanName    string `json:"plan_name"`
	AmountCents int64  `json:"amount_cents"`
	Currency    string `json:"currency"`
}

// Validate checks if the create order request is valid.
func (r *CreateOrderRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.CompanyID,
			validation.Required,
			customValidation.UUID,
		),
		validation.Field(&r.PlanName,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 255),
		),
		validation.Field(&r.AmountCents,
			validation.Required,
			validation.Min(1),
		),
		validation.Field(&r.Currency,
			validation.Required,
			validation.Length(3, 3),
		),
	)
}

// UpdateOrderStatusRequest contains the parameters for updating an order status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// Validate checks if the update order status request is valid.
func (r *UpdateOrderStatusRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Status,
			validation.Required,
			validation.In(orderDomain.StatusPending, orderDomain.StatusPaid, orderDomain.StatusCanceled),
		),
	)
}

// OrderResponse represents an order in API responses.
type OrderResponse struct {
	ID          string    `json:"id"`
	CompanyID   string    `json:"company_id"`
	PlanName    string    `json:"plan_name"`
	AmountCents int64     `json:"amount_cents"`
	Currency    string    `json:"currency"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// MapOrderToResponse converts a domain order to an API response.
func MapOrderToResponse(order *orderDomain.Order) OrderResponse {
	return OrderResponse{
		ID:          order.ID.String(),
		CompanyID:   order.CompanyID.String(),
		PlanName:    order.PlanName,
		AmountCents: order.AmountCents,
		Currency:    order.Currency,
		Status:      order.Status,
		CreatedAt:   order.CreatedAt,
		UpdatedAt:   order.UpdatedAt,
	}
}

// ListOrdersResponse represents a paginated list of orders.
type ListOrdersResponse struct {
	Data []OrderResponse `json:"data"`
}

// MapOrdersToListResponse converts domain orders to a list API response.
func MapOrdersToListResponse(orders []*orderDomain.Order) ListOrdersResponse {
	responses := make([]OrderResponse, 0, len(orders))
	for _, order := range orders {
		responses = append(responses, MapOrderToResponse(order))
	}
	return ListOrdersResponse{Data: responses}
}
