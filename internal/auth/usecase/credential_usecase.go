// Package usecase implements business logic orchestration for authentication operations.
package usecase

import (
	"context"
	"errors"
	"log/slog"

	authDomain "github.com/allisson/crewhub/internal/auth/domain"
	authService "github.com/allisson/crewhub/internal/auth/service"
	"github.com/allisson/crewhub/internal/config"
)

// credentialUseCase implements CredentialUseCase.
type credentialUseCase struct {
	config        *config.Config
	principalRepo PrincipalRepository
	secretService authService.SecretService
	deriver       authService.CredentialDeriver
	logger        *slog.Logger
}

// Verify checks the presented secret for a principal.
//
// Resolution order:
//  1. A stored credential digest always wins; the secret is compared against
//     it with Argon2id and the default paths are never consulted.
//  2. Without a stored credential, employees fall back to the derived
//     default (birth date as DDMMYYYY) and managers to the configured
//     fallback credential.
//  3. A default match authenticates with NeedsMigration set so clients force
//     a credential change.
//
// Security Notes:
//   - Principal not found and secret mismatch both return
//     ErrCredentialRejected to prevent enumeration
//   - Default-path matches are compared as plain strings; defaults are
//     derivable from stored profile data and are not secrets at rest
func (c *credentialUseCase) Verify(
	ctx context.Context,
	input *authDomain.VerifyCredentialInput,
) (*authDomain.VerifyOutput, error) {
	principal, err := c.principalRepo.Get(ctx, input.PrincipalType, input.PrincipalID)
	if err != nil {
		// If principal not found, return generic error to prevent enumeration
		if errors.Is(err, authDomain.ErrPrincipalNotFound) {
			return nil, authDomain.ErrCredentialRejected
		}
		return nil, err
	}

	if !principal.IsActive {
		return nil, authDomain.ErrPrincipalInactive
	}

	// Stored credential path
	if principal.HasStoredCredential() {
		if !c.secretService.CompareSecret(input.Secret, *principal.Credential) {
			return nil, authDomain.ErrCredentialRejected
		}
		return &authDomain.VerifyOutput{NeedsMigration: false}, nil
	}

	// Default credential path
	expected, err := c.defaultCredential(principal)
	if err != nil {
		return nil, err
	}

	if input.Secret != expected {
		return nil, authDomain.ErrCredentialRejected
	}

	c.logger.WarnContext(ctx, "principal authenticated with default credential",
		slog.String("principal_id", principal.ID.String()),
		slog.String("principal_type", string(principal.Type)),
	)

	return &authDomain.VerifyOutput{NeedsMigration: true}, nil
}

// defaultCredential resolves the default for a principal with no stored
// credential. Employees derive from their birth date; managers use the
// configured fallback.
func (c *credentialUseCase) defaultCredential(principal *authDomain.Principal) (string, error) {
	switch principal.Type {
	case authDomain.PrincipalTypeEmployee:
		if principal.BirthDate == nil {
			return "", authDomain.ErrNoCredentialPath
		}
		derived, err := c.deriver.DeriveDefaultFromDate(*principal.BirthDate)
		if err != nil {
			return "", authDomain.ErrNoCredentialPath
		}
		return derived, nil
	case authDomain.PrincipalTypeManager:
		if c.config.ManagerDefaultCredential == "" {
			return "", authDomain.ErrNoCredentialPath
		}
		return c.config.ManagerDefaultCredential, nil
	default:
		return "", authDomain.ErrNoCredentialPath
	}
}

// ChangeCredential verifies the current secret then stores a new credential
// digest. Works for both the stored-credential and default paths, so it also
// completes the forced migration off a default.
func (c *credentialUseCase) ChangeCredential(ctx context.Context, input *authDomain.ChangeCredentialInput) error {
	verifyInput := &authDomain.VerifyCredentialInput{
		PrincipalID:   input.PrincipalID,
		PrincipalType: input.PrincipalType,
		Secret:        input.CurrentSecret,
	}
	if _, err := c.Verify(ctx, verifyInput); err != nil {
		return err
	}

	if err := authDomain.ValidatePassword(input.NewSecret); err != nil {
		return err
	}

	hashedSecret, err := c.secretService.HashSecret(input.NewSecret)
	if err != nil {
		return err
	}

	return c.principalRepo.UpdateCredential(ctx, input.PrincipalType, input.PrincipalID, hashedSecret)
}

// NewCredentialUseCase creates a CredentialUseCase.
func NewCredentialUseCase(
	cfg *config.Config,
	principalRepo PrincipalRepository,
	secretService authService.SecretService,
	deriver authService.CredentialDeriver,
	logger *slog.Logger,
) CredentialUseCase {
	return &credentialUseCase{
		config:        cfg,
		principalRepo: principalRepo,
		secretService: secretService,
		deriver:       deriver,
		logger:        logger,
	}
}
