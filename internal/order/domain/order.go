// Package domain defines billing order entities and errors.
package domain

import (
	"time"

	"github.com/google/uuid"

	apperrors "github.com/allisson/crewhub/internal/errors"
)

// Order statuses.
const (
	StatusPending  = "pending"
	StatusPaid     = "paid"
	StatusCanceled = "canceled"
)

var (
	// ErrOrderNotFound is returned when an order cannot be located.
	ErrOrderNotFound = apperrors.Wrap(apperrors.ErrNotFound, "order not found")
	// ErrInvalidOrderStatus is returned for unknown statuses or disallowed transitions.
	ErrInvalidOrderStatus = apperrors.Wrap(apperrors.ErrInvalidInput, "invalid order status")
)

// Order represents a billing order for a company subscription plan.
type Order struct {
	ID          uuid.UUID `json:"id"`
	CompanyID   uuid.UUID `json:"company_id"`
	PlanName    string    `json:"plan_name"`
	AmountCents int64     `json:"amount_cents"`
	Currency    string    `json:"currency"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ValidStatus reports whether the status is one of the known order statuses.
func ValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusPaid, StatusCanceled:
		return true
	}
	return false
}

// CreateOrderInput contains the parameters for creating an order.
type CreateOrderInput struct {
	CompanyID   uuid.UUID
	PlanName    string
	AmountCents int64
	Currency    string
}
