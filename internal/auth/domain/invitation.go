package domain

import (
	"time"

	"github.com/google/uuid"
)

// InvitationClaims is the payload carried by a signed invitation token.
// Invitations are stateless: everything needed to resolve one lives in the
// token itself.
type InvitationClaims struct {
	CompanyID uuid.UUID
	Email     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}
