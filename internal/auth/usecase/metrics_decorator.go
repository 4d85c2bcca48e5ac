package usecase

import (
	"context"
	"time"

	authDomain "github.com/allisson/crewhub/internal/auth/domain"
	"github.com/allisson/crewhub/internal/metrics"
)

// credentialUseCaseWithMetrics decorates CredentialUseCase with metrics instrumentation.
type credentialUseCaseWithMetrics struct {
	next    CredentialUseCase
	metrics metrics.BusinessMetrics
}

// NewCredentialUseCaseWithMetrics wraps a CredentialUseCase with metrics recording.
func NewCredentialUseCaseWithMetrics(useCase CredentialUseCase, m metrics.BusinessMetrics) CredentialUseCase {
	return &credentialUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Verify records metrics for credential verification operations.
func (c *credentialUseCaseWithMetrics) Verify(
	ctx context.Context,
	input *authDomain.VerifyCredentialInput,
) (*authDomain.VerifyOutput, error) {
	start := time.Now()
	output, err := c.next.Verify(ctx, input)

	status := "success"
	if err != nil {
		status = "error"
	}

	c.metrics.RecordOperation(ctx, "auth", "credential_verify", status)
	c.metrics.RecordDuration(ctx, "auth", "credential_verify", time.Since(start), status)

	return output, err
}

// ChangeCredential records metrics for credential rotation operations.
func (c *credentialUseCaseWithMetrics) ChangeCredential(ctx context.Context, input *authDomain.ChangeCredentialInput) error {
	start := time.Now()
	err := c.next.ChangeCredential(ctx, input)

	status := "success"
	if err != nil {
		status = "error"
	}

	c.metrics.RecordOperation(ctx, "auth", "credential_change", status)
	c.metrics.RecordDuration(ctx, "auth", "credential_change", time.Since(start), status)

	return err
}

// passwordResetUseCaseWithMetrics decorates PasswordResetUseCase with metrics instrumentation.
type passwordResetUseCaseWithMetrics struct {
	next    PasswordResetUseCase
	metrics metrics.BusinessMetrics
}

// NewPasswordResetUseCaseWithMetrics wraps a PasswordResetUseCase with metrics recording.
func NewPasswordResetUseCaseWithMetrics(useCase PasswordResetUseCase, m metrics.BusinessMetrics) PasswordResetUseCase {
	return &passwordResetUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Request records metrics for reset token issuance operations.
func (p *passwordResetUseCaseWithMetrics) Request(
	ctx context.Context,
	input *authDomain.RequestResetInput,
) (*authDomain.RequestResetOutput, error) {
	start := time.Now()
	output, err := p.next.Request(ctx, input)

	status := "success"
	if err != nil {
		status = "error"
	}

	p.metrics.RecordOperation(ctx, "auth", "reset_request", status)
	p.metrics.RecordDuration(ctx, "auth", "reset_request", time.Since(start), status)

	return output, err
}

// Validate records metrics for reset token validation operations.
func (p *passwordResetUseCaseWithMetrics) Validate(ctx context.Context, plainToken string) (*authDomain.ResetToken, error) {
	start := time.Now()
	token, err := p.next.Validate(ctx, plainToken)

	status := "success"
	if err != nil {
		status = "error"
	}

	p.metrics.RecordOperation(ctx, "auth", "reset_validate", status)
	p.metrics.RecordDuration(ctx, "auth", "reset_validate", time.Since(start), status)

	return token, err
}

// Consume records metrics for reset token redemption operations.
func (p *passwordResetUseCaseWithMetrics) Consume(ctx context.Context, input *authDomain.ConsumeResetInput) error {
	start := time.Now()
	err := p.next.Consume(ctx, input)

	status := "success"
	if err != nil {
		status = "error"
	}

	p.metrics.RecordOperation(ctx, "auth", "reset_consume", status)
	p.metrics.RecordDuration(ctx, "auth", "reset_consume", time.Since(start), status)

	return err
}

// CleanupExpired records metrics for reset token cleanup operations.
func (p *passwordResetUseCaseWithMetrics) CleanupExpired(ctx context.Context, olderThanDays int, dryRun bool) (int64, error) {
	start := time.Now()
	count, err := p.next.CleanupExpired(ctx, olderThanDays, dryRun)

	status := "success"
	if err != nil {
		status = "error"
	}

	p.metrics.RecordOperation(ctx, "auth", "reset_cleanup", status)
	p.metrics.RecordDuration(ctx, "auth", "reset_cleanup", time.Since(start), status)

	return count, err
}

// invitationUseCaseWithMetrics decorates InvitationUseCase with metrics instrumentation.
type invitationUseCaseWithMetrics struct {
	next    InvitationUseCase
	metrics metrics.BusinessMetrics
}

// NewInvitationUseCaseWithMetrics wraps an InvitationUseCase with metrics recording.
func NewInvitationUseCaseWithMetrics(useCase InvitationUseCase, m metrics.BusinessMetrics) InvitationUseCase {
	return &invitationUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Issue records metrics for invitation issuance operations.
func (i *invitationUseCaseWithMetrics) Issue(
	ctx context.Context,
	input *authDomain.IssueInvitationInput,
) (*authDomain.IssueInvitationOutput, error) {
	start := time.Now()
	output, err := i.next.Issue(ctx, input)

	status := "success"
	if err != nil {
		status = "error"
	}

	i.metrics.RecordOperation(ctx, "auth", "invitation_issue", status)
	i.metrics.RecordDuration(ctx, "auth", "invitation_issue", time.Since(start), status)

	return output, err
}

// Resolve records metrics for invitation resolution operations.
func (i *invitationUseCaseWithMetrics) Resolve(ctx context.Context, token string) (*authDomain.InvitationClaims, error) {
	start := time.Now()
	claims, err := i.next.Resolve(ctx, token)

	status := "success"
	if err != nil {
		status = "error"
	}

	i.metrics.RecordOperation(ctx, "auth", "invitation_resolve", status)
	i.metrics.RecordDuration(ctx, "auth", "invitation_resolve", time.Since(start), status)

	return claims, err
}

// Accept records metrics for invitation acceptance operations.
func (i *invitationUseCaseWithMetrics) Accept(
	ctx context.Context,
	input *authDomain.AcceptInvitationInput,
) (*authDomain.AcceptInvitationOutput, error) {
	start := time.Now()
	output, err := i.next.Accept(ctx, input)

	status := "success"
	if err != nil {
		status = "error"
	}

	i.metrics.RecordOperation(ctx, "auth", "invitation_accept", status)
	i.metrics.RecordDuration(ctx, "auth", "invitation_accept", time.Since(start), status)

	return output, err
}
