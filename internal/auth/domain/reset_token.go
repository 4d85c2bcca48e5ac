package domain

import (
	"time"

	"github.com/google/uuid"
)

// ResetToken is a single-use credential reset grant. Only the sha256 digest
// of the opaque token is persisted; the plain value is handed to the
// requester once and never stored.
type ResetToken struct {
	ID            uuid.UUID
	TokenHash     string
	PrincipalID   uuid.UUID
	PrincipalType PrincipalType
	ExpiresAt     time.Time
	Used          bool
	CreatedAt     time.Time
}

// IsExpired reports whether the token is past its expiry at the given time.
// Expiry wins over the used flag when classifying a rejected token.
func (t *ResetToken) IsExpired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}

// NewResetToken builds a reset token for the given principal.
func NewResetToken(tokenHash string, principalID uuid.UUID, principalType PrincipalType, now time.Time, ttl time.Duration) *ResetToken {
	return &ResetToken{
		ID:            uuid.Must(uuid.NewV7()),
		TokenHash:     tokenHash,
		PrincipalID:   principalID,
		PrincipalType: principalType,
		ExpiresAt:     now.Add(ttl),
		Used:          false,
		CreatedAt:     now,
	}
}
