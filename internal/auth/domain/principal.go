package domain

import (
	"time"

	"github.com/google/uuid"
)

// Principal is the authentication-facing view of a manager or employee
// account. Feature packages own the full entities; verification only needs
// this projection.
type Principal struct {
	ID         uuid.UUID
	CompanyID  uuid.UUID
	Type       PrincipalType
	Name       string
	Email      string
	Credential *string    // argon2id digest, nil when never set
	BirthDate  *time.Time // employees only, nil for managers
	IsActive   bool
}

// HasStoredCredential reports whether the principal has an explicit
// credential digest on record.
func (p *Principal) HasStoredCredential() bool {
	return p.Credential != nil && *p.Credential != ""
}

// VerifyOutput is the result of a successful credential verification.
type VerifyOutput struct {
	// NeedsMigration is true when the principal authenticated through a
	// derived or fallback default instead of a stored credential. Clients
	// should push the principal through a credential change flow.
	NeedsMigration bool
}
