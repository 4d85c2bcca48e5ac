package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	authDomain "github.com/allisson/crewhub/internal/auth/domain"
	authService "github.com/allisson/crewhub/internal/auth/service"
	employeeDomain "github.com/allisson/crewhub/internal/employee/domain"
	apperrors "github.com/allisson/crewhub/internal/errors"
)

type mockEmployeeRepository struct {
	mock.Mock
}

func (m *mockEmployeeRepository) Create(ctx context.Context, employee *employeeDomain.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *mockEmployeeRepository) Update(ctx context.Context, employee *employeeDomain.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *mockEmployeeRepository) Get(ctx context.Context, employeeID uuid.UUID) (*employeeDomain.Employee, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*employeeDomain.Employee), args.Error(1)
}

func (m *mockEmployeeRepository) GetByEmail(ctx context.Context, companyID uuid.UUID, email string) (*employeeDomain.Employee, error) {
	args := m.Called(ctx, companyID, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*employeeDomain.Employee), args.Error(1)
}

func (m *mockEmployeeRepository) ListByCompany(ctx context.Context, companyID uuid.UUID, offset, limit int) ([]*employeeDomain.Employee, error) {
	args := m.Called(ctx, companyID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*employeeDomain.Employee), args.Error(1)
}

type mockCompanyGateway struct {
	mock.Mock
}

func (m *mockCompanyGateway) Exists(ctx context.Context, companyID uuid.UUID) (bool, error) {
	args := m.Called(ctx, companyID)
	return args.Bool(0), args.Error(1)
}

func testDeriver() authService.CredentialDeriver {
	clock := func() time.Time {
		return time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	}
	return authService.NewCredentialDeriverWithClock(clock)
}

func TestEmployeeUseCase_Create(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.Must(uuid.NewV7())

	t.Run("Success", func(t *testing.T) {
		repo := &mockEmployeeRepository{}
		companies := &mockCompanyGateway{}

		companies.On("Exists", ctx, companyID).Return(true, nil)
		repo.On("GetByEmail", ctx, companyID, "worker@example.com").Return(nil, employeeDomain.ErrEmployeeNotFound)
		repo.On("Create", ctx, mock.MatchedBy(func(employee *employeeDomain.Employee) bool {
			return employee.Status == employeeDomain.StatusActive &&
				employee.Email == "worker@example.com" &&
				employee.BirthDate != nil &&
				employee.BirthDate.Year() == 1990
		})).Return(nil)

		useCase := NewEmployeeUseCase(repo, companies, testDeriver())

		employee, err := useCase.Create(ctx, &employeeDomain.CreateEmployeeInput{
			CompanyID: companyID,
			Name:      "Worker One",
			Email:     " Worker@Example.com ",
			BirthDate: "19/09/1990",
			Position:  "Operator",
		})
		require.NoError(t, err)
		assert.True(t, employee.IsActive())
		repo.AssertExpectations(t)
	})

	t.Run("Error_ImplausibleBirthDate", func(t *testing.T) {
		repo := &mockEmployeeRepository{}
		companies := &mockCompanyGateway{}

		useCase := NewEmployeeUseCase(repo, companies, testDeriver())

		_, err := useCase.Create(ctx, &employeeDomain.CreateEmployeeInput{
			CompanyID: companyID,
			Name:      "Too Young",
			Email:     "young@example.com",
			BirthDate: "2020-01-01",
		})
		assert.ErrorIs(t, err, authDomain.ErrInvalidBirthDate)
		repo.AssertNotCalled(t, "Create")
	})

	t.Run("Error_DuplicateEmail", func(t *testing.T) {
		repo := &mockEmployeeRepository{}
		companies := &mockCompanyGateway{}

		companies.On("Exists", ctx, companyID).Return(true, nil)
		existing := &employeeDomain.Employee{ID: uuid.Must(uuid.NewV7()), Email: "worker@example.com"}
		repo.On("GetByEmail", ctx, companyID, "worker@example.com").Return(existing, nil)

		useCase := NewEmployeeUseCase(repo, companies, testDeriver())

		_, err := useCase.Create(ctx, &employeeDomain.CreateEmployeeInput{
			CompanyID: companyID,
			Name:      "Worker Two",
			Email:     "worker@example.com",
			BirthDate: "19/09/1990",
		})
		assert.ErrorIs(t, err, employeeDomain.ErrEmployeeAlreadyExists)
	})
}

func TestEmployeeUseCase_ProvisionFromInvitation(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.Must(uuid.NewV7())
	birthDate := time.Date(1990, 9, 19, 0, 0, 0, 0, time.UTC)

	t.Run("Success", func(t *testing.T) {
		repo := &mockEmployeeRepository{}
		companies := &mockCompanyGateway{}

		companies.On("Exists", ctx, companyID).Return(true, nil)
		repo.On("GetByEmail", ctx, companyID, "invited@example.com").Return(nil, employeeDomain.ErrEmployeeNotFound)
		repo.On("Create", ctx, mock.MatchedBy(func(employee *employeeDomain.Employee) bool {
			return employee.CompanyID == companyID && employee.Email == "invited@example.com"
		})).Return(nil)

		useCase := NewEmployeeUseCase(repo, companies, testDeriver())

		employeeID, err := useCase.ProvisionFromInvitation(ctx, companyID, "Invited One", "invited@example.com", birthDate, "Operator")
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, employeeID)
	})

	t.Run("Error_EmailAlreadyInCompany", func(t *testing.T) {
		repo := &mockEmployeeRepository{}
		companies := &mockCompanyGateway{}

		companies.On("Exists", ctx, companyID).Return(true, nil)
		existing := &employeeDomain.Employee{ID: uuid.Must(uuid.NewV7()), Email: "invited@example.com"}
		repo.On("GetByEmail", ctx, companyID, "invited@example.com").Return(existing, nil)

		useCase := NewEmployeeUseCase(repo, companies, testDeriver())

		_, err := useCase.ProvisionFromInvitation(ctx, companyID, "Invited One", "invited@example.com", birthDate, "Operator")
		assert.ErrorIs(t, err, employeeDomain.ErrEmployeeAlreadyExists)
	})

	t.Run("Error_CompanyMissing", func(t *testing.T) {
		repo := &mockEmployeeRepository{}
		companies := &mockCompanyGateway{}

		companies.On("Exists", ctx, companyID).Return(false, nil)

		useCase := NewEmployeeUseCase(repo, companies, testDeriver())

		_, err := useCase.ProvisionFromInvitation(ctx, companyID, "Invited One", "invited@example.com", birthDate, "Operator")
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestEmployeeUseCase_Archive(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_KeepsRecord", func(t *testing.T) {
		repo := &mockEmployeeRepository{}
		employeeID := uuid.Must(uuid.NewV7())

		repo.On("Get", ctx, employeeID).Return(&employeeDomain.Employee{
			ID:     employeeID,
			Name:   "Worker One",
			Status: employeeDomain.StatusActive,
		}, nil)
		repo.On("Update", ctx, mock.MatchedBy(func(employee *employeeDomain.Employee) bool {
			return employee.Status == employeeDomain.StatusArchived && employee.Name == "Worker One"
		})).Return(nil)

		useCase := NewEmployeeUseCase(repo, &mockCompanyGateway{}, testDeriver())

		require.NoError(t, useCase.Archive(ctx, employeeID))
		repo.AssertExpectations(t)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		repo := &mockEmployeeRepository{}
		employeeID := uuid.Must(uuid.NewV7())

		repo.On("Get", ctx, employeeID).Return(nil, employeeDomain.ErrEmployeeNotFound)

		useCase := NewEmployeeUseCase(repo, &mockCompanyGateway{}, testDeriver())

		err := useCase.Archive(ctx, employeeID)
		assert.ErrorIs(t, err, employeeDomain.ErrEmployeeNotFound)
	})
}
