// Package dto provides data transfer objects for manager HTTP handling.
package dto

import (
	"time"

	validation "github.com/jellydator/validation"

	customValidation "github.com/allisson/crewhub/internal/validation"
	managerDomain "github.com/allisson/crewhub/internal/manager/domain"
)

// CreateManagerRequest contains the parameters for creating a manager.
// Password is optional, when omitted the manager starts on the shared
// default credential.
type CreateManagerRequest struct {
	CompanyID string `json:"company_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// Validate checks if the create manager request is valid.
func (r *CreateManagerRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.CompanyID,
			validation.Required,
			customValidation.UUID,
		),
		validation.Field(&r.Name,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 255),
		),
		validation.Field(&r.Email,
			validation.Required,
			customValidation.Email,
			validation.Length(5, 255),
		),
	)
}

// UpdateManagerRequest contains the parameters for updating a manager.
type UpdateManagerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	IsActive bool   `json:"is_active"`
}

// Validate checks if the update manager request is valid.
func (r *UpdateManagerRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 255),
		),
		validation.Field(&r.Email,
			validation.Required,
			customValidation.Email,
			validation.Length(5, 255),
		),
	)
}

// ManagerResponse represents a manager in API responses.
// The credential hash is never exposed, only whether one is set.
type ManagerResponse struct {
	ID          string    `json:"id"`
	CompanyID   string    `json:"company_id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	HasPassword bool      `json:"has_password"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// MapManagerToResponse converts a domain manager to an API response.
func MapManagerToResponse(manager *managerDomain.Manager) ManagerResponse {
	return ManagerResponse{
		ID:          manager.ID.String(),
		CompanyID:   manager.CompanyID.String(),
		Name:        manager.Name,
		Email:       manager.Email,
		HasPassword: manager.Password != nil,
		IsActive:    manager.IsActive,
		CreatedAt:   manager.CreatedAt,
		UpdatedAt:   manager.UpdatedAt,
	}
}

// ListManagersResponse represents a paginated list of managers.
type ListManagersResponse struct {
	Data []ManagerResponse `json:"data"`
}

// MapManagersToListResponse converts domain managers to a list API response.
func MapManagersToListResponse(managers []*managerDomain.Manager) ListManagersResponse {
	responses := make([]ManagerResponse, 0, len(managers))
	for _, manager := range managers {
		responses = append(responses, MapManagerToResponse(manager))
	}
	return ListManagersResponse{Data: responses}
}
