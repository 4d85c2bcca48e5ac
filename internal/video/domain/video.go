// Package domain defines training video entities and errors.
package domain

import (
	"time"

	"github.com/google/uuid"

	apperrors "github.com/allisson/crewhub/internal/errors"
)

// ErrVideoNotFound is returned when a video cannot be located.
var ErrVideoNotFound = apperrors.Wrap(apperrors.ErrNotFound, "video not found")

// Video represents a training video assigned to a company.
type Video struct {
	ID              uuid.UUID `json:"id"`
	CompanyID       uuid.UUID `json:"company_id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	URL             string    `json:"url"`
	DurationSeconds int       `json:"duration_seconds"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// CreateVideoInput contains the parameters for creating a video.
type CreateVideoInput struct {
	CompanyID       uuid.UUID
	Title           string
	Description     string
	URL             string
	DurationSeconds int
}

// UpdateVideoInput contains the parameters for updating a video.
type UpdateVideoInput struct {
	Title           string
	Description     string
	URL             string
	DurationSeconds int
	IsActive        bool
}
