// Package usecase implements manager business logic.
package usecase

import (
	"context"

	"github.com/google/uuid"

	managerDomain "github.com/allisson/crewhub/internal/manager/domain"
)

// ManagerRepository defines the persistence contract for managers.
type ManagerRepository interface {
	Create(ctx context.Context, manager *managerDomain.Manager) error
	Update(ctx context.Context, manager *managerDomain.Manager) error
	Get(ctx context.Context, managerID uuid.UUID) (*managerDomain.Manager, error)
	GetByEmail(ctx context.Context, companyID uuid.UUID, email string) (*managerDomain.Manager, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID, offset, limit int) ([]*managerDomain.Manager, error)
}

// ManagerUseCase defines the business operations for managers.
type ManagerUseCase interface {
	Create(ctx context.Context, input *managerDomain.CreateManagerInput) (*managerDomain.Manager, error)
	Update(ctx context.Context, managerID uuid.UUID, input *managerDomain.UpdateManagerInput) error
	Get(ctx context.Context, managerID uuid.UUID) (*managerDomain.Manager, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID, offset, limit int) ([]*managerDomain.Manager, error)
	Delete(ctx context.Context, managerID uuid.UUID) error
}
