// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/allisson/crewhub/internal/validation"
)

// VerifyCredentialRequest contains the parameters for verifying a credential.
type VerifyCredentialRequest struct {
	PrincipalID   string `json:"principal_id"`
	PrincipalType string `json:"principal_type"`
	Secret        string `json:"secret"`
}

// Validate checks if the verify credential request is valid.
func (r *VerifyCredentialRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.PrincipalID,
			validation.Required,
			customValidation.NotBlank,
		),
		validation.Field(&r.PrincipalType,
			validation.Required,
			validation.In("manager", "employee"),
		),
		validation.Field(&r.Secret,
			validation.Required,
		),
	)
}

// ChangeCredentialRequest contains the parameters for rotating a credential.
type ChangeCredentialRequest struct {
	PrincipalID   string `json:"principal_id"`
	PrincipalType string `json:"principal_type"`
	CurrentSecret string `json:"current_secret"`
	NewSecret     string `json:"new_secret"`
}

// Validate checks if the change credential request is valid.
func (r *ChangeCredentialRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.PrincipalID,
			validation.Required,
			customValidation.NotBlank,
		),
		validation.Field(&r.PrincipalType,
			validation.Required,
			validation.In("manager", "employee"),
		),
		validation.Field(&r.CurrentSecret,
			validation.Required,
		),
		validation.Field(&r.NewSecret,
			validation.Required,
		),
	)
}

// RequestResetRequest contains the parameters for requesting a credential reset.
type RequestResetRequest struct {
	PrincipalID   string `json:"principal_id"`
	PrincipalType string `json:"principal_type"`
}

// Validate checks if the request reset request is valid.
func (r *RequestResetRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.PrincipalID,
			validation.Required,
			customValidation.NotBlank,
		),
		validation.Field(&r.PrincipalType,
			validation.Required,
			validation.In("manager", "employee"),
		),
	)
}

// ConsumeResetRequest contains the parameters for redeeming a reset token.
type ConsumeResetRequest struct {
	Token     string `json:"token"`
	NewSecret string `json:"new_secret"`
}

// Validate checks if the consume reset request is valid.
func (r *ConsumeResetRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Token,
			validation.Required,
			customValidation.NotBlank,
		),
		validation.Field(&r.NewSecret,
			validation.Required,
		),
	)
}

// ValidateResetRequest contains the parameters for checking a reset token.
type ValidateResetRequest struct {
	Token string `json:"token"`
}

// Validate checks if the validate reset request is valid.
func (r *ValidateResetRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Token,
			validation.Required,
			customValidation.NotBlank,
		),
	)
}

// IssueInvitationRequest contains the parameters for inviting an email to a company.
type IssueInvitationRequest struct {
	CompanyID string `json:"company_id"`
	Email     string `json:"email"`
}

// Validate checks if the issue invitation request is valid.
func (r *IssueInvitationRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.CompanyID,
			validation.Required,
			customValidation.NotBlank,
		),
		validation.Field(&r.Email,
			validation.Required,
			customValidation.Email,
		),
	)
}

// ResolveInvitationRequest contains the invitation token to inspect.
type ResolveInvitationRequest struct {
	Token string `json:"token"`
}

// Validate checks if the resolve invitation request is valid.
func (r *ResolveInvitationRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Token,
			validation.Required,
			customValidation.NotBlank,
		),
	)
}

// AcceptInvitationRequest contains the parameters for accepting an invitation.
type AcceptInvitationRequest struct {
	Token     string `json:"token"`
	Name      string `json:"name"`
	BirthDate string `json:"birth_date"`
	Position  string `json:"position"`
}

// Validate checks if the accept invitation request is valid.
func (r *AcceptInvitationRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Token,
			validation.Required,
			customValidation.NotBlank,
		),
		validation.Field(&r.Name,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 255),
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
