// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	"time"

	authDomain "github.com/allisson/crewhub/internal/auth/domain"
)

// VerifyCredentialResponse contains the result of a credential verification.
type VerifyCredentialResponse struct {
	Authenticated  bool `json:"authenticated"`
	NeedsMigration bool `json:"needs_migration"`
}

// RequestResetResponse acknowledges a reset request. Always the same shape
// whether or not the principal exists.
type RequestResetResponse struct {
	Status string `json:"status"`
}

// ConsumeResetResponse confirms a redeemed reset token.
type ConsumeResetResponse struct {
	Status string `json:"status"`
}

// ValidateResetResponse reports that a reset token is still usable.
type ValidateResetResponse struct {
	Status string `json:"status"`
}

// InvitationResponse contains a signed invitation token.
// SECURITY: The token grants account creation and must be delivered to the
// invited address only.
type InvitationResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// InvitationClaimsResponse describes a resolved invitation.
type InvitationClaimsResponse struct {
	CompanyID string    `json:"company_id"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at"`
}

// MapClaimsToResponse converts invitation claims to an API response.
func MapClaimsToResponse(claims *authDomain.InvitationClaims) InvitationClaimsResponse {
	return InvitationClaimsResponse{
		CompanyID: claims.CompanyID.String(),
		Email:     claims.Email,
		ExpiresAt: claims.ExpiresAt,
	}
}

// AcceptInvitationResponse identifies the employee created from an invitation.
type AcceptInvitationResponse struct {
	EmployeeID string `json:"employee_id"`
	CompanyID  string `json:"company_id"`
	Email      string `json:"email"`
}
