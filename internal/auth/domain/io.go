package domain

import (
	"time"

	"github.com/google/uuid"
)

// VerifyCredentialInput carries the data needed to verify a principal's
// credential.
type VerifyCredentialInput struct {
	PrincipalID   uuid.UUID
	PrincipalType PrincipalType
	Secret        string
}

// ChangeCredentialInput carries a credential rotation request. The current
// secret must verify before the new one is stored.
type ChangeCredentialInput struct {
	PrincipalID   uuid.UUID
	PrincipalType PrincipalType
	CurrentSecret string
	NewSecret     string
}

// RequestResetInput identifies the principal asking for a credential reset.
type RequestResetInput struct {
	PrincipalID   uuid.UUID
	PrincipalType PrincipalType
}

// RequestResetOutput carries the plain reset token. It is returned once and
// delivered out of band; only its hash survives server side.
type RequestResetOutput struct {
	PlainToken string
	ExpiresAt  time.Time
}

// ConsumeResetInput redeems a reset token for a new credential.
type ConsumeResetInput struct {
	PlainToken string
	NewSecret  string
}

// IssueInvitationInput creates an invitation for an email to join a company.
type IssueInvitationInput struct {
	CompanyID uuid.UUID
	Email     string
}

// IssueInvitationOutput carries the signed invitation token.
type IssueInvitationOutput struct {
	Token     string
	ExpiresAt time.Time
}

// AcceptInvitationInput redeems an invitation token and provisions the
// employee account described by it.
type AcceptInvitationInput struct {
	Token     string
	Name      string
	BirthDate string
	Position  string
}

// AcceptInvitationOutput identifies the employee created from an invitation.
type AcceptInvitationOutput struct {
	EmployeeID uuid.UUID
	CompanyID  uuid.UUID
	Email      string
}
