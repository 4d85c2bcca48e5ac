// Package dto provides data transfer objects for employee HTTP handling.
package dto

import (
	"time"

	validation "github.com/jellydator/validation"

	employeeDomain "github.com/allisson/crewhub/internal/employee/domain"
	customValidation "github.com/allisson/crewhub/internal/validation"
)

// CreateEmployeeRequest contains the parameters for creating an employee.
type CreateEmployeeRequest struct {
	CompanyID string `json:"company_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	BirthDate string `json:"birth_date"`
	Position  string `json:"position"`
}

// Validate checks if the create employee request is valid.
func (r *CreateEmployeeRequest) Validate() error {
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
		validation.Field(&r.BirthDate,
			validation.Required,
			customValidation.BirthDateFormat,
		),
		validation.Field(&r.Position,
			validation.Length(0, 255),
		),
	)
}

// UpdateEmployeeRequest contains the parameters for updating an employee.
type UpdateEmployeeRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Position string `json:"position"`
}

// Validate checks if the update employee request is valid.
func (r *UpdateEmployeeRequest) Validate() error {
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
		validation.Field(&r.Position,
			validation.Length(0, 255),
		),
	)
}

// EmployeeResponse represents an employee in API responses.
// The credential hash is never exposed, only whether one is set.
type EmployeeResponse struct {
	ID          string     `json:"id"`
	CompanyID   string     `json:"company_id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	BirthDate   *time.Time `json:"birth_date"`
	HasPassword bool       `json:"has_password"`
	Position    string     `json:"position"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// MapEmployeeToResponse converts a domain employee to an API response.
func MapEmployeeToResponse(employee *employeeDomain.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:          employee.ID.String(),
		CompanyID:   employee.CompanyID.String(),
		Name:        employee.Name,
		Email:       employee.Email,
		BirthDate:   employee.BirthDate,
		HasPassword: employee.Password != nil,
		Position:    employee.Position,
		Status:      employee.Status,
		CreatedAt:   employee.CreatedAt,
		UpdatedAt:   employee.UpdatedAt,
	}
}

// ListEmployeesResponse represents a paginated list of employees.
type ListEmployeesResponse struct {
	Data []EmployeeResponse `json:"data"`
}

// MapEmployeesToListResponse converts domain employees to a list API response.
func MapEmployeesToListResponse(employees []*employeeDomain.Employee) ListEmployeesResponse {
	responses := make([]EmployeeResponse, 0, len(employees))
	for _, employee := range employees {
		responses = append(responses, MapEmployeeToResponse(employee))
	}
	return ListEmployeesResponse{Data: responses}
}
