package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	authDomain "github.com/allisson/crewhub/internal/auth/domain"
	authService "github.com/allisson/crewhub/internal/auth/service"
	apperrors "github.com/allisson/crewhub/internal/errors"
	managerDomain "github.com/allisson/crewhub/internal/manager/domain"
)

// CompanyGateway exposes the company checks the manager feature needs.
type CompanyGateway interface {
	Exists(ctx context.Context, companyID uuid.UUID) (bool, error)
}

type managerUseCase struct {
	managerRepo   ManagerRepository
	companies     CompanyGateway
	secretService authService.SecretService
}

// Create registers a new manager for a company. When an initial password is
// provided it is validated against the credential policy and stored hashed.
func (u *managerUseCase) Create(ctx context.Context, input *managerDomain.CreateManagerInput) (*managerDomain.Manager, error) {
	exists, err := u.companies.Exists(ctx, input.CompanyID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.Wrap(apperrors.ErrNotFound, "company not found")
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))

	if _, err := u.managerRepo.GetByEmail(ctx, input.CompanyID, email); err == nil {
		return nil, managerDomain.ErrManagerAlreadyExists
	} else if !errors.Is(err, managerDomain.ErrManagerNotFound) {
		return nil, err
	}

	var password *string
	if input.Password != "" {
		if err := authDomain.ValidatePassword(input.Password); err != nil {
			return nil, err
		}
		hashed, err := u.secretService.HashSecret(input.Password)
		if err != nil {
			return nil, err
		}
		password = &hashed
	}

	now := time.Now().UTC()
	manager := &managerDomain.Manager{
		ID:        uuid.Must(uuid.NewV7()),
		CompanyID: input.CompanyID,
		Name:      strings.TrimSpace(input.Name),
		Email:     email,
		Password:  password,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := u.managerRepo.Create(ctx, manager); err != nil {
		return nil, err
	}
	return manager, nil
}

// Update modifies a manager's profile fields.
func (u *managerUseCase) Update(ctx context.Context, managerID uuid.UUID, input *managerDomain.UpdateManagerInput) error {
	manager, err := u.managerRepo.Get(ctx, managerID)
	if err != nil {
		return err
	}

	manager.Name = strings.TrimSpace(input.Name)
	manager.Email = strings.ToLower(strings.TrimSpace(input.Email))
	manager.IsActive = input.IsActive
	manager.UpdatedAt = time.Now().UTC()

	return u.managerRepo.Update(ctx, manager)
}

// Get retrieves a manager by ID.
func (u *managerUseCase) Get(ctx context.Context, managerID uuid.UUID) (*managerDomain.Manager, error) {
	return u.managerRepo.Get(ctx, managerID)
}

// ListByCompany retrieves managers belonging to a company.
func (u *managerUseCase) ListByCompany(ctx context.Context, companyID uuid.UUID, offset, limit int) ([]*managerDomain.Manager, error) {
	return u.managerRepo.ListByCompany(ctx, companyID, offset, limit)
}

// Delete deactivates a manager. The account is kept for auditing.
func (u *managerUseCase) Delete(ctx context.Context, managerID uuid.UUID) error {
	manager, err := u.managerRepo.Get(ctx, managerID)
	if err != nil {
		return err
	}

	manager.IsActive = false
	manager.UpdatedAt = time.Now().UTC()

	return u.managerRepo.Update(ctx, manager)
}

// NewManagerUseCase creates a new manager use case with required dependencies.
func NewManagerUseCase(managerRepo ManagerRepository, companies CompanyGateway, secretService authService.SecretService) ManagerUseCase {
	return &managerUseCase{
		managerRepo:   managerRepo,
		companies:     companies,
		secretService: secretService,
	}
}
