// Package usecase defines business logic interfaces for authentication operations.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	authDomain "github.com/allisson/crewhub/internal/auth/domain"
)

// PrincipalRepository defines the authentication-facing read and credential
// write operations over manager and employee accounts.
// Implementations must support transaction-aware operations via context propagation.
type PrincipalRepository interface {
	// Get retrieves a principal by type and ID. Returns ErrPrincipalNotFound
	// if not found.
	Get(ctx context.Context, principalType authDomain.PrincipalType, principalID uuid.UUID) (*authDomain.Principal, error)

	// UpdateCredential stores a new credential digest for the principal.
	// Returns ErrPrincipalNotFound if the principal does not exist.
	UpdateCredential(ctx context.Context, principalType authDomain.PrincipalType, principalID uuid.UUID, hashedSecret string) error
}

// ResetTokenRepository defines persistence operations for reset tokens.
// Implementations must support transaction-aware operations via context propagation.
type ResetTokenRepository interface {
	// Create stores a new reset token in the repository.
	Create(ctx context.Context, token *authDomain.ResetToken) error

	// GetByTokenHash retrieves a token by its hash. Returns
	// ErrResetTokenNotFound if not found.
	GetByTokenHash(ctx context.Context, tokenHash string) (*authDomain.ResetToken, error)

	// ConsumeByTokenHash atomically marks a token used, guarded so only an
	// unused, unexpired token matches. Returns the number of rows affected:
	// exactly one caller observes 1, every concurrent loser observes 0.
	ConsumeByTokenHash(ctx context.Context, tokenHash string, now time.Time) (int64, error)

	// DeleteExpired removes tokens whose expiry is before the cutoff and
	// returns how many were removed.
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)

	// CountExpired counts tokens whose expiry is before the cutoff.
	CountExpired(ctx context.Context, before time.Time) (int64, error)
}

// CompanyGateway is the minimal view of the company feature the invitation
// flow needs.
type CompanyGateway interface {
	// Exists reports whether an active company with the given ID exists.
	Exists(ctx context.Context, companyID uuid.UUID) (bool, error)
}

// EmployeeProvisioner creates employee accounts on invitation acceptance.
// Implemented by the employee feature; returns ErrConflict when an account
// with the same email already exists in the company.
type EmployeeProvisioner interface {
	ProvisionFromInvitation(ctx context.Context, companyID uuid.UUID, name, email string, birthDate time.Time, position string) (uuid.UUID, error)
}

// CredentialUseCase defines credential verification and rotation.
type CredentialUseCase interface {
	// Verify checks the presented secret against the principal's stored
	// credential, or against its derived or fallback default when no
	// credential is stored yet.
	//
	// Security Notes:
	//   - Returns ErrCredentialRejected for non-existent principals and
	//     mismatched secrets alike to prevent enumeration
	//   - Returns ErrPrincipalInactive for archived or deactivated accounts
	//   - NeedsMigration is true when a default matched; callers should force
	//     a credential change
	Verify(ctx context.Context, input *authDomain.VerifyCredentialInput) (*authDomain.VerifyOutput, error)

	// ChangeCredential verifies the current secret then stores a new
	// credential digest. The new secret must satisfy the password policy.
	ChangeCredential(ctx context.Context, input *authDomain.ChangeCredentialInput) error
}

// PasswordResetUseCase defines the reset token lifecycle.
type PasswordResetUseCase interface {
	// Request issues a single-use reset token for the principal. The plain
	// token is returned once; only its SHA-256 digest is persisted.
	Request(ctx context.Context, input *authDomain.RequestResetInput) (*authDomain.RequestResetOutput, error)

	// Validate classifies a presented token without consuming it. Returns
	// the token when it is usable; ErrResetTokenNotFound, ErrResetTokenExpired
	// or ErrResetTokenUsed otherwise. Expiry wins over the used flag.
	Validate(ctx context.Context, plainToken string) (*authDomain.ResetToken, error)

	// Consume atomically redeems a token and stores the new credential.
	// Exactly one of two concurrent callers succeeds; the loser gets
	// ErrResetTokenUsed.
	Consume(ctx context.Context, input *authDomain.ConsumeResetInput) error

	// CleanupExpired removes tokens that expired more than the given number
	// of days ago. With dryRun it only counts them.
	CleanupExpired(ctx context.Context, olderThanDays int, dryRun bool) (int64, error)
}

// InvitationUseCase defines the stateless invitation lifecycle.
type InvitationUseCase interface {
	// Issue signs an invitation token for an email to join a company.
	Issue(ctx context.Context, input *authDomain.IssueInvitationInput) (*authDomain.IssueInvitationOutput, error)

	// Resolve verifies a token and returns its claims without side effects.
	Resolve(ctx context.Context, token string) (*authDomain.InvitationClaims, error)

	// Accept verifies a token and provisions the employee account it
	// describes. The email comes from the token, never from the caller.
	Accept(ctx context.Context, input *authDomain.AcceptInvitationInput) (*authDomain.AcceptInvitationOutput, error)
}
