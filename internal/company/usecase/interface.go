// Package usecase defines business logic interfaces for company operations.
package usecase

import (
	"context"

	"github.com/google/uuid"

	companyDomain "github.com/allisson/crewhub/internal/company/domain"
)

// CompanyRepository defines persistence operations for companies.
// Implementations must support transaction-aware operations via context propagation.
type CompanyRepository interface {
	// Create stores a new company in the repository.
	Create(ctx context.Context, company *companyDomain.Company) error

	// Update modifies an existing company in the repository.
	Update(ctx context.Context, company *companyDomain.Company) error

	// Get retrieves a company by ID. Returns ErrCompanyNotFound if not found.
	Get(ctx context.Context, companyID uuid.UUID) (*companyDomain.Company, error)

	// GetByEmail retrieves a company by email. Returns ErrCompanyNotFound if not found.
	GetByEmail(ctx context.Context, email string) (*companyDomain.Company, error)

	// List retrieves companies ordered by creation time.
	List(ctx context.Context, offset, limit int) ([]*companyDomain.Company, error)
}

// CompanyUseCase defines business logic operations for managing companies.
type CompanyUseCase interface {
	// Create registers a new company. Returns ErrCompanyAlreadyExists when
	// the email is taken.
	Create(ctx context.Context, input *companyDomain.CreateCompanyInput) (*companyDomain.Company, error)

	// Update modifies a company's name, email and active flag.
	Update(ctx context.Context, companyID uuid.UUID, input *companyDomain.UpdateCompanyInput) error

	// Get retrieves a company by ID.
	Get(ctx context.Context, companyID uuid.UUID) (*companyDomain.Company, error)

	// List retrieves companies ordered by creation time.
	List(ctx context.Context, offset, limit int) ([]*companyDomain.Company, error)

	// Delete performs a soft delete by setting IsActive to false.
	Delete(ctx context.Context, companyID uuid.UUID) error

	// Exists reports whether an active company with the given ID exists.
	// Used by the invitation flow.
	Exists(ctx context.Context, companyID uuid.UUID) (bool, error)
}
