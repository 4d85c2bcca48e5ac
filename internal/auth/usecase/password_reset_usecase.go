package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	authDomain "github.com/allisson/crewhub/internal/auth/domain"
	authService "github.com/allisson/crewhub/internal/auth/service"
	"github.com/allisson/crewhub/internal/config"
	"github.com/allisson/crewhub/internal/database"
	"github.com/allisson/crewhub/internal/notification"
)

// passwordResetUseCase implements PasswordResetUseCase.
type passwordResetUseCase struct {
	config        *config.Config
	principalRepo PrincipalRepository
	tokenRepo     ResetTokenRepository
	tokenService  authService.ResetTokenService
	secretService authService.SecretService
	txManager     database.TxManager
	sender        notification.Sender
	logger        *slog.Logger
}

// Request issues a reset token for the principal and delivers it by
// notification.
//
// Security Notes:
//   - Only the SHA-256 digest of the token is persisted
//   - Delivery failures are logged, never returned; the HTTP layer answers
//     identically whether or not the principal exists, so this error surface
//     must not leak account existence either
func (p *passwordResetUseCase) Request(
	ctx context.Context,
	input *authDomain.RequestResetInput,
) (*authDomain.RequestResetOutput, error) {
	principal, err := p.principalRepo.Get(ctx, input.PrincipalType, input.PrincipalID)
	if err != nil {
		return nil, err
	}

	if !principal.IsActive {
		return nil, authDomain.ErrPrincipalInactive
	}

	plainToken, tokenHash, err := p.tokenService.GenerateToken()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	token := authDomain.NewResetToken(tokenHash, principal.ID, principal.Type, now, p.config.ResetTokenExpiration)

	if err := p.tokenRepo.Create(ctx, token); err != nil {
		return nil, err
	}

	body := fmt.Sprintf("Use this token to reset your credential: %s (valid until %s)",
		plainToken, token.ExpiresAt.Format(time.RFC3339))
	if err := p.sender.Send(ctx, principal.Email, "Credential reset", body); err != nil {
		p.logger.ErrorContext(ctx, "failed to deliver reset notification",
			slog.String("principal_id", principal.ID.String()),
			slog.Any("error", err),
		)
	}

	return &authDomain.RequestResetOutput{
		PlainToken: plainToken,
		ExpiresAt:  token.ExpiresAt,
	}, nil
}

// Validate classifies a presented token without consuming it. Expiry is
// checked before the used flag, so an expired token always reports expired.
func (p *passwordResetUseCase) Validate(ctx context.Context, plainToken string) (*authDomain.ResetToken, error) {
	tokenHash := p.tokenService.HashToken(plainToken)

	token, err := p.tokenRepo.GetByTokenHash(ctx, tokenHash)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if token.IsExpired(now) {
		return nil, authDomain.ErrResetTokenExpired
	}
	if token.Used {
		return nil, authDomain.ErrResetTokenUsed
	}

	return token, nil
}

// Consume redeems a reset token and stores the new credential in a single
// transaction. The token row is claimed with a conditional update, so under
// concurrent redemption exactly one caller wins and the rest observe
// ErrResetTokenUsed. Nothing is persisted when any step fails.
func (p *passwordResetUseCase) Consume(ctx context.Context, input *authDomain.ConsumeResetInput) error {
	token, err := p.Validate(ctx, input.PlainToken)
	if err != nil {
		return err
	}

	if err := authDomain.ValidatePassword(input.NewSecret); err != nil {
		return err
	}

	hashedSecret, err := p.secretService.HashSecret(input.NewSecret)
	if err != nil {
		return err
	}

	tokenHash := p.tokenService.HashToken(input.PlainToken)

	return p.txManager.WithTx(ctx, func(ctx context.Context) error {
		now := time.Now().UTC()
		affected, err := p.tokenRepo.ConsumeByTokenHash(ctx, tokenHash, now)
		if err != nil {
			return err
		}
		if affected == 0 {
			return p.classifyLostConsume(ctx, tokenHash, now)
		}

		return p.principalRepo.UpdateCredential(ctx, token.PrincipalType, token.PrincipalID, hashedSecret)
	})
}

// classifyLostConsume re-reads a token whose conditional claim affected no
// rows and maps the state to the right error.
func (p *passwordResetUseCase) classifyLostConsume(ctx context.Context, tokenHash string, now time.Time) error {
	token, err := p.tokenRepo.GetByTokenHash(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, authDomain.ErrResetTokenNotFound) {
			return authDomain.ErrResetTokenNotFound
		}
		return err
	}
	if token.IsExpired(now) {
		return authDomain.ErrResetTokenExpired
	}
	return authDomain.ErrResetTokenUsed
}

// CleanupExpired removes tokens that expired more than olderThanDays days
// ago. With dryRun it only reports how many would be removed.
func (p *passwordResetUseCase) CleanupExpired(ctx context.Context, olderThanDays int, dryRun bool) (int64, error) {
	cutoff := time.Now().UTC().AddDate(0, 0, -olderThanDays)

	if dryRun {
		return p.tokenRepo.CountExpired(ctx, cutoff)
	}
	return p.tokenRepo.DeleteExpired(ctx, cutoff)
}

// NewPasswordResetUseCase creates a PasswordResetUseCase.
func NewPasswordResetUseCase(
	cfg *config.Config,
	principalRepo PrincipalRepository,
	tokenRepo ResetTokenRepository,
	tokenService authService.ResetTokenService,
	secretService authService.SecretService,
	txManager database.TxManager,
	sender notification.Sender,
	logger *slog.Logger,
) PasswordResetUseCase {
	return &passwordResetUseCase{
		config:        cfg,
		principalRepo: principalRepo,
		tokenRepo:     tokenRepo,
		tokenService:  tokenService,
		secretService: secretService,
		txManager:     txManager,
		sender:        sender,
		logger:        logger,
	}
}
