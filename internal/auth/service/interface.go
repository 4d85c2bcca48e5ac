// Package service provides technical services for authentication operations.
//
// This package implements reusable services for credential hashing, derived
// default credentials, reset token generation and signed invitation tokens.
package service

import (
	"time"

	"github.com/google/uuid"

	"github.com/allisson/crewhub/internal/auth/domain"
)

// SecretService defines operations for credential hashing and validation.
// Implementations must use industry-standard hashing algorithms (e.g.,
// bcrypt, argon2).
type SecretService interface {
	// HashSecret hashes a plain text credential using a secure hashing
	// algorithm. The digest is what gets stored in the database.
	HashSecret(plainSecret string) (hashedSecret string, error error)

	// CompareSecret compares a plain text credential against a hashed one.
	// Returns true if the plain secret matches the hash, false otherwise.
	// This is constant-time to prevent timing attacks.
	CompareSecret(plainSecret string, hashedSecret string) bool
}

// CredentialDeriver computes the derived default credential for a principal
// from its date of birth.
type CredentialDeriver interface {
	// DeriveDefault parses a birth date string and returns the derived
	// default credential. Returns ErrInvalidBirthDate when the input is
	// unparseable, in the future, or outside the plausible age range.
	DeriveDefault(birthDate string) (string, error)

	// DeriveDefaultFromDate computes the derived default credential for an
	// already-parsed birth date, applying the same plausibility checks.
	DeriveDefaultFromDate(birthDate time.Time) (string, error)

	// ParseBirthDate parses a birth date string using the accepted layouts
	// and validates plausibility, without deriving a credential.
	ParseBirthDate(birthDate string) (time.Time, error)
}

// ResetTokenService defines operations for reset token generation and
// hashing. Implementations must use cryptographically secure random
// generation and fast hashing suitable for short-lived tokens (e.g.,
// SHA-256).
type ResetTokenService interface {
	// GenerateToken creates a new cryptographically secure random token.
	// Returns both the plain text token (handed to the requester once) and
	// the hashed version (to be stored in the database).
	GenerateToken() (plainToken string, tokenHash string, error error)

	// HashToken hashes a plain text token using SHA-256.
	// Used for token lookup by comparing hashes.
	HashToken(plainToken string) string
}

// InviteTokenService defines operations for signed, stateless invitation
// tokens. Encoding binds a company and an email address into a token with an
// expiry; decoding verifies the signature and expiry in one step.
type InviteTokenService interface {
	// EncodeInvitation signs an invitation for the given company and email.
	// Returns the token and its expiry time.
	EncodeInvitation(companyID uuid.UUID, email string) (token string, expiresAt time.Time, error error)

	// DecodeInvitation verifies and parses an invitation token. Every
	// failure (bad signature, malformed token, expired) returns
	// domain.ErrInvalidOrExpiredInvite.
	DecodeInvitation(token string) (*domain.InvitationClaims, error)
}
