// Package usecase implements business logic orchestration for company operations.
package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	companyDomain "github.com/allisson/crewhub/internal/company/domain"
)

// companyUseCase implements CompanyUseCase.
type companyUseCase struct {
	companyRepo CompanyRepository
}

// Create registers a new company after checking the email is free.
func (c *companyUseCase) Create(ctx context.Context, input *companyDomain.CreateCompanyInput) (*companyDomain.Company, error) {
	email := strings.TrimSpace(strings.ToLower(input.Email))

	_, err := c.companyRepo.GetByEmail(ctx, email)
	if err == nil {
		return nil, companyDomain.ErrCompanyAlreadyExists
	}
	if !errors.Is(err, companyDomain.ErrCompanyNotFound) {
		return nil, err
	}

	now := time.Now().UTC()
	company := &companyDomain.Company{
		ID:        uuid.Must(uuid.NewV7()),
		Name:      strings.TrimSpace(input.Name),
		Email:     email,
		Document:  strings.TrimSpace(input.Document),
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := c.companyRepo.Create(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

// Update modifies a company's name, email, document and active flag.
func (c *companyUseCase) Update(ctx context.Context, companyID uuid.UUID, input *companyDomain.UpdateCompanyInput) error {
	company, err := c.companyRepo.Get(ctx, companyID)
	if err != nil {
		return err
	}

	company.Name = strings.TrimSpace(input.Name)
	company.Email = strings.TrimSpace(strings.ToLower(input.Email))
	company.Document = strings.TrimSpace(input.Document)
	company.IsActive = input.IsActive
	company.UpdatedAt = time.Now().UTC()

	return c.companyRepo.Update(ctx, company)
}

// Get retrieves a company by ID.
func (c *companyUseCase) Get(ctx context.Context, companyID uuid.UUID) (*companyDomain.Company, error) {
	return c.companyRepo.Get(ctx, companyID)
}

// List retrieves companies ordered by creation time.
func (c *companyUseCase) List(ctx context.Context, offset, limit int) ([]*companyDomain.Company, error) {
	return c.companyRepo.List(ctx, offset, limit)
}

// Delete performs a soft delete by setting IsActive to false.
func (c *companyUseCase) Delete(ctx context.Context, companyID uuid.UUID) error {
	company, err := c.companyRepo.Get(ctx, companyID)
	if err != nil {
		return err
	}

	company.IsActive = false
	company.UpdatedAt = time.Now().UTC()

	return c.companyRepo.Update(ctx, company)
}

// Exists reports whether an active company with the given ID exists.
func (c *companyUseCase) Exists(ctx context.Context, companyID uuid.UUID) (bool, error) {
	company, err := c.companyRepo.Get(ctx, companyID)
	if err != nil {
		if errors.Is(err, companyDomain.ErrCompanyNotFound) {
			return false, nil
		}
		return false, err
	}
	return company.IsActive, nil
}

// NewCompanyUseCase creates a CompanyUseCase.
func NewCompanyUseCase(companyRepo CompanyRepository) CompanyUseCase {
	return &companyUseCase{companyRepo: companyRepo}
}
