package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/crewhub/internal/errors"
	orderDomain "github.com/allisson/crewhub/internal/order/domain"
)

type mockOrderRepository struct {
	mock.Mock
}

func (m *mockOrderRepository) Create(ctx context.Context, order *orderDomain.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *mockOrderRepository) Update(ctx context.Context, order *orderDomain.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *mockOrderRepository) Get(ctx context.Context, orderID uuid.UUID) (*orderDomain.Order, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*orderDomain.Order), args.Error(1)
}

func (m *mockOrderRepository) ListByCompany(ctx context.Context, companyID uuid.UUID, offset, limit int) ([]*orderDomain.Order, error) {
	args := m.Called(ctx, companyID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*orderDomain.Order), args.Error(1)
}

type mockCompanyGateway struct {
	mock.Mock
}

func (m *mockCompanyGateway) Exists(ctx context.Context, companyID uuid.UUID) (bool, error) {
	args := m.Called(ctx, companyID)
	return args.Bool(0), args.Error(1)
}

func TestOrderUseCase_Create(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.Must(uuid.NewV7())

	t.Run("Success_StartsPending", func(t *testing.T) {
		repo := &mockOrderRepository{}
		companies := &mockCompanyGateway{}

		companies.On("Exists", ctx, companyID).Return(true, nil)
		repo.On("Create", ctx, mock.MatchedBy(func(order *orderDomain.Order) bool {
			return order.Status == orderDomain.StatusPending && order.Currency == "BRL"
		})).Return(nil)

		useCase := NewOrderUseCase(repo, companies)

		order, err := useCase.Create(ctx, &orderDomain.CreateOrderInput{
			CompanyID:   companyID,
			PlanName:    "starter",
			AmountCents: 9900,
			Currency:    "brl",
		})
		require.NoError(t, err)
		assert.Equal(t, orderDomain.StatusPending, order.Status)
		repo.AssertExpectations(t)
	})

	t.Run("Error_CompanyMissing", func(t *testing.T) {
		repo := &mockOrderRepository{}
		companies := &mockCompanyGateway{}

		companies.On("Exists", ctx, companyID).Return(false, nil)

		useCase := NewOrderUseCase(repo, companies)

		_, err := useCase.Create(ctx, &orderDomain.CreateOrderInput{
			CompanyID:   companyID,
			PlanName:    "starter",
			AmountCents: 9900,
			Currency:    "BRL",
		})
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestOrderUseCase_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_PendingToPaid", func(t *testing.T) {
		repo := &mockOrderRepository{}
		orderID := uuid.Must(uuid.NewV7())

		repo.On("Get", ctx, orderID).Return(&orderDomain.Order{ID: orderID, Status: orderDomain.StatusPending}, nil)
		repo.On("Update", ctx, mock.MatchedBy(func(order *orderDomain.Order) bool {
			return order.Status == orderDomain.StatusPaid
		})).Return(nil)

		useCase := NewOrderUseCase(repo, &mockCompanyGateway{})

		require.NoError(t, useCase.UpdateStatus(ctx, orderID, orderDomain.StatusPaid))
		repo.AssertExpectations(t)
	})

	t.Run("Error_UnknownStatus", func(t *testing.T) {
		repo := &mockOrderRepository{}
		orderID := uuid.Must(uuid.NewV7())

		useCase := NewOrderUseCase(repo, &mockCompanyGateway{})

		err := useCase.UpdateStatus(ctx, orderID, "refunded")
		assert.ErrorIs(t, err, orderDomain.ErrInvalidOrderStatus)
		repo.AssertNotCalled(t, "Get")
	})

	t.Run("Error_PaidIsFinal", func(t *testing.T) {
		repo := &mockOrderRepository{}
		orderID := uuid.Must(uuid.NewV7())

		repo.On("Get", ctx, orderID).Return(&orderDomain.Order{ID: orderID, Status: orderDomain.StatusPaid}, nil)

		useCase := NewOrderUseCase(repo, &mockCompanyGateway{})

		err := useCase.UpdateStatus(ctx, orderID, orderDomain.StatusCanceled)
		assert.ErrorIs(t, err, apperrors.ErrConflict)
		repo.AssertNotCalled(t, "Update")
	})
}
