// Package usecase implements employee business logic.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	employeeDomain "github.com/allisson/crewhub/internal/employee/domain"
)

// EmployeeRepository defines the persistence contract for employees.
type EmployeeRepository interface {
	Create(ctx context.Context, employee *employeeDomain.Employee) error
	Update(ctx context.Context, employee *employeeDomain.Employee) error
	Get(ctx context.Context, employeeID uuid.UUID) (*employeeDomain.Employee, error)
	GetByEmail(ctx context.Context, companyID uuid.UUID, email string) (*employeeDomain.Employee, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID, offset, limit int) ([]*employeeDomain.Employee, error)
}

// EmployeeUseCase defines the business operations for employees.
// ProvisionFromInvitation backs the invitation acceptance flow.
type EmployeeUseCase interface {
	Create(ctx context.Context, input *employeeDomain.CreateEmployeeInput) (*employeeDomain.Employee, error)
	ProvisionFromInvitation(ctx context.Context, companyID uuid.UUID, name, email string, birthDate time.Time, position string) (uuid.UUID, error)
	Update(ctx context.Context, employeeID uuid.UUID, input *employeeDomain.UpdateEmployeeInput) error
	Get(ctx context.Context, employeeID uuid.UUID) (*employeeDomain.Employee, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID, offset, limit int) ([]*employeeDomain.Employee, error)
	Archive(ctx context.Context, employeeID uuid.UUID) error
}
