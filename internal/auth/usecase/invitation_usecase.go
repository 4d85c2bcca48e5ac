package usecase

import (
	"context"
	"fmt"
	"log/slog"

	authDomain "github.com/allisson/crewhub/internal/auth/domain"
	authService "github.com/allisson/crewhub/internal/auth/service"
	apperrors "github.com/allisson/crewhub/internal/errors"
	"github.com/allisson/crewhub/internal/notification"
)

// invitationUseCase implements InvitationUseCase.
type invitationUseCase struct {
	tokenService authService.InviteTokenService
	deriver      authService.CredentialDeriver
	companies    CompanyGateway
	provisioner  EmployeeProvisioner
	sender       notification.Sender
	logger       *slog.Logger
}

// Issue signs an invitation token for an email to join a company and
// delivers it by notification. Delivery failures are logged, not returned;
// the token is still handed back to the issuing manager.
func (i *invitationUseCase) Issue(
	ctx context.Context,
	input *authDomain.IssueInvitationInput,
) (*authDomain.IssueInvitationOutput, error) {
	exists, err := i.companies.Exists(ctx, input.CompanyID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.Wrap(apperrors.ErrNotFound, "company not found")
	}

	token, expiresAt, err := i.tokenService.EncodeInvitation(input.CompanyID, input.Email)
	if err != nil {
		return nil, err
	}

	body := fmt.Sprintf("You have been invited to join. Use this token to accept: %s", token)
	if err := i.sender.Send(ctx, input.Email, "Invitation", body); err != nil {
		i.logger.ErrorContext(ctx, "failed to deliver invitation notification",
			slog.String("company_id", input.CompanyID.String()),
			slog.Any("error", err),
		)
	}

	return &authDomain.IssueInvitationOutput{
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

// Resolve verifies a token and returns its claims without side effects.
func (i *invitationUseCase) Resolve(ctx context.Context, token string) (*authDomain.InvitationClaims, error) {
	return i.tokenService.DecodeInvitation(token)
}

// Accept verifies a token and provisions the employee it describes. The
// email is taken from the verified claims so an invitee cannot sign up a
// different address than the one invited.
func (i *invitationUseCase) Accept(
	ctx context.Context,
	input *authDomain.AcceptInvitationInput,
) (*authDomain.AcceptInvitationOutput, error) {
	claims, err := i.tokenService.DecodeInvitation(input.Token)
	if err != nil {
		return nil, err
	}

	birthDate, err := i.deriver.ParseBirthDate(input.BirthDate)
	if err != nil {
		return nil, err
	}

	employeeID, err := i.provisioner.ProvisionFromInvitation(ctx, claims.CompanyID, input.Name, claims.Email, birthDate, input.Position)
	if err != nil {
		return nil, err
	}

	return &authDomain.AcceptInvitationOutput{
		EmployeeID: employeeID,
		CompanyID:  claims.CompanyID,
		Email:      claims.Email,
	}, nil
}

// NewInvitationUseCase creates an InvitationUseCase.
func NewInvitationUseCase(
	tokenService authService.InviteTokenService,
	deriver authService.CredentialDeriver,
	companies CompanyGateway,
	provisioner EmployeeProvisioner,
	sender notification.Sender,
	logger *slog.Logger,
) InvitationUseCase {
	return &invitationUseCase{
		tokenService: tokenService,
		deriver:      deriver,
		companies:    companies,
		provisioner:  provisioner,
		sender:       sender,
		logger:       logger,
	}
}
