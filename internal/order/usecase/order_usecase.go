package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/allisson/crewhub/internal/errors"
	orderDomain "github.com/allisson/crewhub/internal/order/domain"
)

// CompanyGateway exposes the company checks the order feature needs.
type CompanyGateway interface {
	Exists(ctx context.Context, companyID uuid.UUID) (bool, error)
}

type orderUseCase struct {
	orderRepo OrderRepository
	companies CompanyGateway
}

// Create registers a new pending order for a company.
func (u *orderUseCase) Create(ctx context.Context, input *orderDomain.CreateOrderInput) (*orderDomain.Order, error) {
	exists, err := u.companies.Exists(ctx, input.CompanyID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.Wrap(apperrors.ErrNotFound, "company not found")
	}

	now := time.Now().UTC()
	order := &orderDomain.Order{
		ID:          uuid.Must(uuid.NewV7()),
		CompanyID:   input.CompanyID,
		PlanName:    strings.TrimSpace(input.PlanName),
		AmountCents: input.AmountCents,
		Currency:    strings.ToUpper(strings.TrimSpace(input.Currency)),
		Status:      orderDomain.StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := u.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// Get retrieves an order by ID.
func (u *orderUseCase) Get(ctx context.Context, orderID uuid.UUID) (*orderDomain.Order, error) {
	return u.orderRepo.Get(ctx, orderID)
}

// ListByCompany retrieves orders belonging to a company.
func (u *orderUseCase) ListByCompany(ctx context.Context, companyID uuid.UUID, offset, limit int) ([]*orderDomain.Order, error) {
	return u.orderRepo.ListByCompany(ctx, companyID, offset, limit)
}

// UpdateStatus moves an order to a new status. Orders can only leave the
// pending state, paid and canceled are terminal.
func (u *orderUseCase) UpdateStatus(ctx context.Context, orderID uuid.UUID, status string) error {
	if !orderDomain.ValidStatus(status) {
		return orderDomain.ErrInvalidOrderStatus
	}

	order, err := u.orderRepo.Get(ctx, orderID)
	if err != nil {
		return err
	}

	if order.Status != orderDomain.StatusPending && order.Status != status {
		return apperrors.Wrap(apperrors.ErrConflict, "order status is final")
	}

	order.Status = status
	order.UpdatedAt = time.Now().UTC()

	return u.orderRepo.Update(ctx, order)
}

// NewOrderUseCase creates a new order use case with required dependencies.
func NewOrderUseCase(orderRepo OrderRepository, companies CompanyGateway) OrderUseCase {
	return &orderUseCase{
		orderRepo: orderRepo,
		companies: companies,
	}
}
