package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	authService "github.com/allisson/crewhub/internal/auth/service"
	employeeDomain "github.com/allisson/crewhub/internal/employee/domain"
	apperrors "github.com/allisson/crewhub/internal/errors"
)

// CompanyGateway exposes the company checks the employee feature needs.
type CompanyGateway interface {
	Exists(ctx context.Context, companyID uuid.UUID) (bool, error)
}

type employeeUseCase struct {
	employeeRepo EmployeeRepository
	companies    CompanyGateway
	deriver      authService.CredentialDeriver
}

func (u *employeeUseCase) checkEmailFree(ctx context.Context, companyID uuid.UUID, email string) error {
	if _, err := u.employeeRepo.GetByEmail(ctx, companyID, email); err == nil {
		return employeeDomain.ErrEmployeeAlreadyExists
	} else if !errors.Is(err, employeeDomain.ErrEmployeeNotFound) {
		return err
	}
	return nil
}

func (u *employeeUseCase) provision(ctx context.Context, companyID uuid.UUID, name, email string, birthDate time.Time, position string) (*employeeDomain.Employee, error) {
	exists, err := u.companies.Exists(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.Wrap(apperrors.ErrNotFound, "company not found")
	}

	email = strings.ToLower(strings.TrimSpace(email))
	if err := u.checkEmailFree(ctx, companyID, email); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	employee := &employeeDomain.Employee{
		ID:        uuid.Must(uuid.NewV7()),
		CompanyID: companyID,
		Name:      strings.TrimSpace(name),
		Email:     email,
		BirthDate: &birthDate,
		Position:  strings.TrimSpace(position),
		Status:    employeeDomain.StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := u.employeeRepo.Create(ctx, employee); err != nil {
		return nil, err
	}
	return employee, nil
}

// Create registers a new employee directly. The birth date is validated for
// plausibility since it backs the derived default credential.
func (u *employeeUseCase) Create(ctx context.Context, input *employeeDomain.CreateEmployeeInput) (*employeeDomain.Employee, error) {
	birthDate, err := u.deriver.ParseBirthDate(input.BirthDate)
	if err != nil {
		return nil, err
	}
	return u.provision(ctx, input.CompanyID, input.Name, input.Email, birthDate, input.Position)
}

// ProvisionFromInvitation creates an employee from verified invitation data.
// The email comes from the invitation claims, never from the caller.
func (u *employeeUseCase) ProvisionFromInvitation(ctx context.Context, companyID uuid.UUID, name, email string, birthDate time.Time, position string) (uuid.UUID, error) {
	employee, err := u.provision(ctx, companyID, name, email, birthDate, position)
	if err != nil {
		return uuid.Nil, err
	}
	return employee.ID, nil
}

// Update modifies an employee's profile fields.
func (u *employeeUseCase) Update(ctx context.Context, employeeID uuid.UUID, input *employeeDomain.UpdateEmployeeInput) error {
	employee, err := u.employeeRepo.Get(ctx, employeeID)
	if err != nil {
		return err
	}

	employee.Name = strings.TrimSpace(input.Name)
	employee.Email = strings.ToLower(strings.TrimSpace(input.Email))
	employee.Position = strings.TrimSpace(input.Position)
	employee.UpdatedAt = time.Now().UTC()

	return u.employeeRepo.Update(ctx, employee)
}

// Get retrieves an employee by ID.
func (u *employeeUseCase) Get(ctx context.Context, employeeID uuid.UUID) (*employeeDomain.Employee, error) {
	return u.employeeRepo.Get(ctx, employeeID)
}

// ListByCompany retrieves employees belonging to a company.
func (u *employeeUseCase) ListByCompany(ctx context.Context, companyID uuid.UUID, offset, limit int) ([]*employeeDomain.Employee, error) {
	return u.employeeRepo.ListByCompany(ctx, companyID, offset, limit)
}

// Archive flips an employee to archived status. The record is kept, only
// authentication is blocked.
func (u *employeeUseCase) Archive(ctx context.Context, employeeID uuid.UUID) error {
	employee, err := u.employeeRepo.Get(ctx, employeeID)
	if err != nil {
		return err
	}

	employee.Status = employeeDomain.StatusArchived
	employee.UpdatedAt = time.Now().UTC()

	return u.employeeRepo.Update(ctx, employee)
}

// NewEmployeeUseCase creates a new employee use case with required dependencies.
func NewEmployeeUseCase(employeeRepo EmployeeRepository, companies CompanyGateway, deriver authService.CredentialDeriver) EmployeeUseCase {
	return &employeeUseCase{
		employeeRepo: employeeRepo,
		companies:    companies,
		deriver:      deriver,
	}
}
