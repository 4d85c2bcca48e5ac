// Package dto provides data transfer objects for company HTTP handling.
package dto

import (
	"time"

	validation "github.com/jellydator/validation"

	companyDomain "github.com/allisson/crewhub/internal/company/domain"
	customValidation "github.com/allisson/crewhub/internal/validation"
)

// CreateCompanyRequest contains the parameters for creating a company.
// Document is the optional company registration number.
type CreateCompanyRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Document string `json:"document"`
}

// Validate checks if the create company request is valid.
func (r *CreateCompanyRequest) Validate() error {
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
		validation.Field(&r.Document,
			validation.Length(0, 32),
		),
	)
}

// UpdateCompanyRequest contains the parameters for updating a company.
type UpdateCompanyRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Document string `json:"document"`
	IsActive bool   `json:"is_active"`
}

// Validate checks if the update company request is valid.
func (r *UpdateCompanyRequest) Validate() error {
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
		validation.Field(&r.Document,
			validation.Length(0, 32),
		),
	)
}

// CompanyResponse represents a company in API responses.
type CompanyResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Document  string    `json:"document"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MapCompanyToResponse converts a domain company to an API response.
func MapCompanyToResponse(company *companyDomain.Company) CompanyResponse {
	return CompanyResponse{
		ID:        company.ID.String(),
		Name:      company.Name,
		Email:     company.Email,
		Document:  company.Document,
		IsActive:  company.IsActive,
		CreatedAt: company.CreatedAt,
		UpdatedAt: company.UpdatedAt,
	}
}

// ListCompaniesResponse represents a paginated list of companies.
type ListCompaniesResponse struct {
	Data []CompanyResponse `json:"data"`
}

// MapCompaniesToListResponse converts domain companies to a list API response.
func MapCompaniesToListResponse(companies []*companyDomain.Company) ListCompaniesResponse {
	responses := make([]CompanyResponse, 0, len(companies))
	for _, company := range companies {
		responses = append(responses, MapCompanyToResponse(company))
	}
	return ListCompaniesResponse{Data: responses}
}
