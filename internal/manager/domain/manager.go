// Package domain defines manager entities and errors.
package domain

import (
	"time"

	"github.com/google/uuid"

	apperrors "github.com/allisson/crewhub/internal/errors"
)

var (
	// ErrManagerNotFound is returned when a manager cannot be located.
	ErrManagerNotFound = apperrors.Wrap(apperrors.ErrNotFound, "manager not found")
	// ErrManagerAlreadyExists is returned when a manager email is already taken within the company.
	ErrManagerAlreadyExists = apperrors.Wrap(apperrors.ErrConflict, "manager with this email already exists")
)

// Manager represents a company manager account.
// Password is nil until the manager sets a personal credential.
type Manager struct {
	ID        uuid.UUID `json:"id"`
	CompanyID uuid.UUID `json:"company_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  *string   `json:"-"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateManagerInput contains the parameters for creating a manager.
// Password is optional, when empty the manager authenticates with the
// shared default credential until a personal one is set.
type CreateManagerInput struct {
	CompanyID uuid.UUID
	Name      string
	Email     string
	Password  string
}

// UpdateManagerInput contains the parameters for updating a manager.
type UpdateManagerInput struct {
	Name     string
	Email    string
	IsActive bool
}
