package app

import (
	"fmt"

	authHTTP "github.com/allisson/crewhub/internal/auth/http"
	authRepository "github.com/allisson/crewhub/internal/auth/repository"
	authService "github.com/allisson/crewhub/internal/auth/service"
	authUseCase "github.com/allisson/crewhub/internal/auth/usecase"
)

// authComponents groups the authentication stack so it can be initialized in
// one pass: repositories, services, use cases and handlers.
type authComponents struct {
	principalRepo  authUseCase.PrincipalRepository
	resetTokenRepo authUseCase.ResetTokenRepository

	secretService     authService.SecretService
	deriver           authService.CredentialDeriver
	resetTokenService authService.ResetTokenService
	inviteService     authService.InviteTokenService

	credentialUC authUseCase.CredentialUseCase
	resetUC      authUseCase.PasswordResetUseCase
	invitationUC authUseCase.InvitationUseCase

	auth          *authHTTP.AuthHandler
	passwordReset *authHTTP.PasswordResetHandler
	invitation    *authHTTP.InvitationHandler
}

// AuthHandlers returns the initialized authentication handlers.
func (c *Container) AuthHandlers() (*authComponents, error) {
	if err := c.initAuth(); err != nil {
		return nil, err
	}
	return &c.auth, nil
}

// CredentialUseCase returns the credential verification use case.
func (c *Container) CredentialUseCase() (authUseCase.CredentialUseCase, error) {
	if err := c.initAuth(); err != nil {
		return nil, err
	}
	return c.auth.credentialUC, nil
}

// PasswordResetUseCase returns the password reset use case.
func (c *Container) PasswordResetUseCase() (authUseCase.PasswordResetUseCase, error) {
	if err := c.initAuth(); err != nil {
		return nil, err
	}
	return c.auth.resetUC, nil
}

// InvitationUseCase returns the invitation use case.
func (c *Container) InvitationUseCase() (authUseCase.InvitationUseCase, error) {
	if err := c.initAuth(); err != nil {
		return nil, err
	}
	return c.auth.invitationUC, nil
}

// SecretService returns the credential hashing service.
func (c *Container) SecretService() (authService.SecretService, error) {
	if err := c.initAuth(); err != nil {
		return nil, err
	}
	return c.auth.secretService, nil
}

// CredentialDeriver returns the birth date credential deriver.
func (c *Container) CredentialDeriver() (authService.CredentialDeriver, error) {
	if err := c.initAuth(); err != nil {
		return nil, err
	}
	return c.auth.deriver, nil
}

func (c *Container) initAuth() error {
	c.authInit.Do(func() {
		if err := c.buildAuth(); err != nil {
			c.initErrors["auth"] = err
		}
	})
	if err, exists := c.initErrors["auth"]; exists {
		return err
	}
	return nil
}

func (c *Container) buildAuth() error {
	logger := c.Logger()

	db, err := c.DB()
	if err != nil {
		return fmt.Errorf("failed to get database for auth stack: %w", err)
	}

	txManager, err := c.TxManager()
	if err != nil {
		return fmt.Errorf("failed to get tx manager for auth stack: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return err
	}

	// Repositories selected by database driver
	switch c.config.DBDriver {
	case "mysql":
		c.auth.principalRepo = authRepository.NewMySQLPrincipalRepository(db)
		c.auth.resetTokenRepo = authRepository.NewMySQLResetTokenRepository(db)
	case "postgres":
		c.auth.principalRepo = authRepository.NewPostgreSQLPrincipalRepository(db)
		c.auth.resetTokenRepo = authRepository.NewPostgreSQLResetTokenRepository(db)
	default:
		return unsupportedDriverError(c.config.DBDriver)
	}

	// Services
	c.auth.secretService = authService.NewSecretService()
	c.auth.deriver = authService.NewCredentialDeriver()
	c.auth.resetTokenService = authService.NewResetTokenService()
	c.auth.inviteService = authService.NewInviteTokenService(
		c.config.InviteSigningSecret,
		c.config.InviteTokenExpiration,
	)

	// Cross-feature gateways
	companyUC, err := c.CompanyUseCase()
	if err != nil {
		return err
	}
	employeeUC, err := c.EmployeeUseCase()
	if err != nil {
		return err
	}

	sender := c.Sender()

	// Use cases with metrics decorators
	c.auth.credentialUC = authUseCase.NewCredentialUseCaseWithMetrics(
		authUseCase.NewCredentialUseCase(c.config, c.auth.principalRepo, c.auth.secretService, c.auth.deriver, logger),
		businessMetrics,
	)
	c.auth.resetUC = authUseCase.NewPasswordResetUseCaseWithMetrics(
		authUseCase.NewPasswordResetUseCase(
			c.config,
			c.auth.principalRepo,
			c.auth.resetTokenRepo,
			c.auth.resetTokenService,
			c.auth.secretService,
			txManager,
			sender,
			logger,
		),
		businessMetrics,
	)
	c.auth.invitationUC = authUseCase.NewInvitationUseCaseWithMetrics(
		authUseCase.NewInvitationUseCase(
			c.auth.inviteService,
			c.auth.deriver,
			companyUC,
			employeeUC,
			sender,
			logger,
		),
		businessMetrics,
	)

	// Handlers
	c.auth.auth = authHTTP.NewAuthHandler(c.auth.credentialUC, logger)
	c.auth.passwordReset = authHTTP.NewPasswordResetHandler(c.auth.resetUC, logger)
	c.auth.invitation = authHTTP.NewInvitationHandler(c.auth.invitationUC, logger)

	return nil
}
