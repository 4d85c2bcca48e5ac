package domain

import (
	"github.com/allisson/crewhub/internal/errors"
)

// Domain-specific errors for authentication operations. Verification failures
// all wrap ErrUnauthorized so the HTTP layer collapses them into one generic
// response; the distinct values exist for logging and tests.
var (
	// ErrPrincipalNotFound indicates the target principal does not exist.
	ErrPrincipalNotFound = errors.Wrap(errors.ErrNotFound, "principal not found")

	// ErrPrincipalInactive indicates the principal is archived or deactivated.
	ErrPrincipalInactive = errors.Wrap(errors.ErrUnauthorized, "principal is inactive")

	// ErrNoCredentialPath indicates the principal has no stored credential and
	// no derived default can be computed for it.
	ErrNoCredentialPath = errors.Wrap(errors.ErrUnauthorized, "no credential path for principal")

	// ErrCredentialRejected indicates the presented secret did not match.
	ErrCredentialRejected = errors.Wrap(errors.ErrUnauthorized, "credential rejected")

	// ErrInvalidBirthDate indicates the birth date cannot produce a derived
	// default credential (unparseable, in the future, or implausible age).
	ErrInvalidBirthDate = errors.Wrap(errors.ErrInvalidInput, "invalid birth date")

	// ErrWeakCredential indicates the candidate credential fails the password policy.
	ErrWeakCredential = errors.Wrap(errors.ErrInvalidInput, "credential does not meet policy")

	// ErrResetTokenNotFound indicates no reset token matches the presented value.
	ErrResetTokenNotFound = errors.Wrap(errors.ErrNotFound, "reset token not found")

	// ErrResetTokenUsed indicates the reset token was already consumed.
	ErrResetTokenUsed = errors.Wrap(errors.ErrConflict, "reset token already used")

	// ErrResetTokenExpired indicates the reset token is past its expiry.
	ErrResetTokenExpired = errors.Wrap(errors.ErrConflict, "reset token expired")

	// ErrInvalidOrExpiredInvite is the single error for every invitation token
	// failure. Tampered and expired tokens are deliberately indistinguishable
	// to callers.
	ErrInvalidOrExpiredInvite = errors.Wrap(errors.ErrUnauthorized, "invalid or expired invitation token")
)
