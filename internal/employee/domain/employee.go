// Package domain defines employee entities and errors.
package domain

import (
	"time"

	"github.com/google/uuid"

	apperrors "github.com/allisson/crewhub/internal/errors"
)

// Employee lifecycle statuses. Archived employees keep their history but
// cannot authenticate.
const (
	StatusActive   = "active"
	StatusArchived = "archived"
)

var (
	// ErrEmployeeNotFound is returned when an employee cannot be located.
	ErrEmployeeNotFound = apperrors.Wrap(apperrors.ErrNotFound, "employee not found")
	// ErrEmployeeAlreadyExists is returned when an employee email is already taken within the company.
	ErrEmployeeAlreadyExists = apperrors.Wrap(apperrors.ErrConflict, "employee with this email already exists")
)

// Employee represents a workforce member of a company.
// Password is nil until the employee replaces the derived default credential.
// BirthDate backs the derived default credential and may be nil for records
// imported without one.
type Employee struct {
	ID        uuid.UUID  `json:"id"`
	CompanyID uuid.UUID  `json:"company_id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	BirthDate *time.Time `json:"birth_date"`
	Password  *string    `json:"-"`
	Position  string     `json:"position"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// IsActive reports whether the employee can authenticate.
func (e *Employee) IsActive() bool {
	return e.Status == StatusActive
}

// CreateEmployeeInput contains the parameters for creating an employee directly.
// BirthDate is textual and accepts DD/MM/YYYY or YYYY-MM-DD.
type CreateEmployeeInput struct {
	CompanyID uuid.UUID
	Name      string
	Email     string
	BirthDate string
	Position  string
}

// UpdateEmployeeInput contains the parameters for updating an employee.
type UpdateEmployeeInput struct {
	Name     string
	Email    string
	Position string
}
