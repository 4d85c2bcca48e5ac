// Package usecase implements billing order business logic.
package usecase

import (
	"context"

	"github.com/google/uuid"

	orderDomain "github.com/allisson/crewhub/internal/order/domain"
)

// OrderRepository defines the persistence contract for orders.
type OrderRepository interface {
	Create(ctx context.Context, order *orderDomain.Order) error
	Update(ctx context.Context, order *orderDomain.Order) error
	Get(ctx context.Context, orderID uuid.UUID) (*orderDomain.Order, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID, offset, limit int) ([]*orderDomain.Order, error)
}

// OrderUseCase defines the business operations for orders.
type OrderUseCase interface {
	Create(ctx context.Context, input *orderDomain.CreateOrderInput) (*orderDomain.Order, error)
	Get(ctx context.Context, orderID uuid.UUID) (*orderDomain.Order, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID, offset, limit int) ([]*orderDomain.Order, error)
	UpdateStatus(ctx context.Context, orderID uuid.UUID, status string) error
}
