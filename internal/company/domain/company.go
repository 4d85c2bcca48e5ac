// Package domain defines the company domain entities and types.
package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/allisson/crewhub/internal/errors"
)

// Company is a tenant: every manager, employee, video and order belongs to
// exactly one company.
type Company struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Document  string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreateCompanyInput contains the input data for company creation.
// Document is the optional company registration number.
type CreateCompanyInput struct {
	Name     string
	Email    string
	Document string
}

// UpdateCompanyInput contains the input data for company updates.
type UpdateCompanyInput struct {
	Name     string
	Email    string
	Document string
	IsActive bool
}

// Domain-specific errors for company operations.
var (
	// ErrCompanyNotFound indicates the requested company does not exist.
	ErrCompanyNotFound = errors.Wrap(errors.ErrNotFound, "company not found")

	// ErrCompanyAlreadyExists indicates a company with the same email already exists.
	ErrCompanyAlreadyExists = errors.Wrap(errors.ErrConflict, "company already exists")
)
