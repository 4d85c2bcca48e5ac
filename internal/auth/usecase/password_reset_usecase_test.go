package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	authDomain "github.com/allisson/crewhub/internal/auth/domain"
	"github.com/allisson/crewhub/internal/config"
)

func newResetFixture() (*config.Config, *mockPrincipalRepository, *mockResetTokenRepository, *mockResetTokenService, *mockSecretService, *mockSender) {
	cfg := &config.Config{ResetTokenExpiration: time.Hour}
	return cfg, &mockPrincipalRepository{}, &mockResetTokenRepository{}, &mockResetTokenService{}, &mockSecretService{}, &mockSender{}
}

func TestPasswordResetUseCase_Request(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_PersistsDigestNotPlainToken", func(t *testing.T) {
		cfg, principalRepo, tokenRepo, tokenService, secretService, sender := newResetFixture()

		principalID := uuid.Must(uuid.NewV7())
		principal := &authDomain.Principal{
			ID:       principalID,
			Type:     authDomain.PrincipalTypeEmployee,
			Email:    "worker@example.com",
			IsActive: true,
		}

		principalRepo.On("Get", ctx, authDomain.PrincipalTypeEmployee, principalID).Return(principal, nil)
		tokenService.On("GenerateToken").Return("plain-token", "token-digest", nil)
		tokenRepo.On("Create", ctx, mock.MatchedBy(func(token *authDomain.ResetToken) bool {
			return token.TokenHash == "token-digest" &&
				token.PrincipalID == principalID &&
				token.PrincipalType == authDomain.PrincipalTypeEmployee &&
				!token.Used
		})).Return(nil)
		sender.On("Send", ctx, "worker@example.com", "Credential reset", mock.Anything).Return(nil)

		useCase := NewPasswordResetUseCase(cfg, principalRepo, tokenRepo, tokenService, secretService, &fakeTxManager{}, sender, testLogger())

		output, err := useCase.Request(ctx, &authDomain.RequestResetInput{
			PrincipalID:   principalID,
			PrincipalType: authDomain.PrincipalTypeEmployee,
		})
		require.NoError(t, err)
		assert.Equal(t, "plain-token", output.PlainToken)
		assert.WithinDuration(t, time.Now().UTC().Add(time.Hour), output.ExpiresAt, time.Minute)

		tokenRepo.AssertExpectations(t)
		sender.AssertExpectations(t)
	})

	t.Run("Success_DeliveryFailureIsSwallowed", func(t *testing.T) {
		cfg, principalRepo, tokenRepo, tokenService, secretService, sender := newResetFixture()

		principalID := uuid.Must(uuid.NewV7())
		principal := &authDomain.Principal{
			ID:       principalID,
			Type:     authDomain.PrincipalTypeManager,
			Email:    "boss@example.com",
			IsActive: true,
		}

		principalRepo.On("Get", ctx, authDomain.PrincipalTypeManager, principalID).Return(principal, nil)
		tokenService.On("GenerateToken").Return("plain-token", "token-digest", nil)
		tokenRepo.On("Create", ctx, mock.Anything).Return(nil)
		sender.On("Send", ctx, "boss@example.com", "Credential reset", mock.Anything).
			Return(assert.AnError)

		useCase := NewPasswordResetUseCase(cfg, principalRepo, tokenRepo, tokenService, secretService, &fakeTxManager{}, sender, testLogger())

		output, err := useCase.Request(ctx, &authDomain.RequestResetInput{
			PrincipalID:   principalID,
			PrincipalType: authDomain.PrincipalTypeManager,
		})
		require.NoError(t, err)
		assert.NotEmpty(t, output.PlainToken)
	})

	t.Run("Error_PrincipalNotFound", func(t *testing.T) {
		cfg, principalRepo, tokenRepo, tokenService, secretService, sender := newResetFixture()

		principalID := uuid.Must(uuid.NewV7())
		principalRepo.On("Get", ctx, authDomain.PrincipalTypeEmployee, principalID).
			Return(nil, authDomain.ErrPrincipalNotFound)

		useCase := NewPasswordResetUseCase(cfg, principalRepo, tokenRepo, tokenService, secretService, &fakeTxManager{}, sender, testLogger())

		_, err := useCase.Request(ctx, &authDomain.RequestResetInput{
			PrincipalID:   principalID,
			PrincipalType: authDomain.PrincipalTypeEmployee,
		})
		assert.ErrorIs(t, err, authDomain.ErrPrincipalNotFound)
		tokenRepo.AssertNotCalled(t, "Create")
	})
}

func TestPasswordResetUseCase_Validate(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_UsableToken", func(t *testing.T) {
		cfg, principalRepo, tokenRepo, tokenService, secretService, sender := newResetFixture()

		token := authDomain.NewResetToken("token-digest", uuid.Must(uuid.NewV7()), authDomain.PrincipalTypeEmployee, time.Now().UTC(), time.Hour)
		tokenService.On("HashToken", "plain-token").Return("token-digest")
		tokenRepo.On("GetByTokenHash", ctx, "token-digest").Return(token, nil)

		useCase := NewPasswordResetUseCase(cfg, principalRepo, tokenRepo, tokenService, secretService, &fakeTxManager{}, sender, testLogger())

		got, err := useCase.Validate(ctx, "plain-token")
		require.NoError(t, err)
		assert.Equal(t, token.ID, got.ID)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		cfg, principalRepo, tokenRepo, tokenService, secretService, sender := newResetFixture()

		tokenService.On("HashToken", "plain-token").Return("token-digest")
		tokenRepo.On("GetByTokenHash", ctx, "token-digest").Return(nil, authDomain.ErrResetTokenNotFound)

		useCase := NewPasswordResetUseCase(cfg, principalRepo, tokenRepo, tokenService, secretService, &fakeTxManager{}, sender, testLogger())

		_, err := useCase.Validate(ctx, "plain-token")
		assert.ErrorIs(t, err, authDomain.ErrResetTokenNotFound)
	})

	t.Run("Error_ExpiredWinsOverUsed", func(t *testing.T) {
		cfg, principalRepo, tokenRepo, tokenService, secretService, sender := newResetFixture()

		token := authDomain.NewResetToken("token-digest", uuid.Must(uuid.NewV7()), authDomain.PrincipalTypeEmployee, time.Now().UTC().Add(-2*time.Hour), time.Hour)
		token.Used = true

		tokenService.On("HashToken", "plain-token").Return("token-digest")
		tokenRepo.On("GetByTokenHash", ctx, "token-digest").Return(token, nil)

		useCase := NewPasswordResetUseCase(cfg, principalRepo, tokenRepo, tokenService, secretService, &fakeTxManager{}, sender, testLogger())

		_, err := useCase.Validate(ctx, "plain-token")
		assert.ErrorIs(t, err, authDomain.ErrResetTokenExpired)
	})

	t.Run("Error_Used", func(t *testing.T) {
		cfg, principalRepo, tokenRepo, tokenService, secretService, sender := newResetFixture()

		token := authDomain.NewResetToken("token-digest", uuid.Must(uuid.NewV7()), authDomain.PrincipalTypeEmployee, time.Now().UTC(), time.Hour)
		token.Used = true

		tokenService.On("HashToken", "plain-token").Return("token-digest")
		tokenRepo.On("GetByTokenHash", ctx, "token-digest").Return(token, nil)

		useCase := NewPasswordResetUseCase(cfg, principalRepo, tokenRepo, tokenService, secretService, &fakeTxManager{}, sender, testLogger())

		_, err := useCase.Validate(ctx, "plain-token")
		assert.ErrorIs(t, err, authDomain.ErrResetTokenUsed)
	})
}

func TestPasswordResetUseCase_Consume(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_ClaimsTokenAndStoresCredential", func(t *testing.T) {
		cfg, principalRepo, tokenRepo, tokenService, secretService, sender := newResetFixture()

		principalID := uuid.Must(uuid.NewV7())
		token := authDomain.NewResetToken("token-digest", principalID, authDomain.PrincipalTypeEmployee, time.Now().UTC(), time.Hour)

		tokenService.On("HashToken", "plain-token").Return("token-digest")
		tokenRepo.On("GetByTokenHash", ctx, "token-digest").Return(token, nil)
		secretService.On("HashSecret", "newS3cret!").Return("$argon2id$new-hash", nil)
		tokenRepo.On("ConsumeByTokenHash", ctx, "token-digest", mock.Anything).Return(int64(1), nil)
		principalRepo.On("UpdateCredential", ctx, authDomain.PrincipalTypeEmployee, principalID, "$argon2id$new-hash").Return(nil)

		useCase := NewPasswordResetUseCase(cfg, principalRepo, tokenRepo, tokenService, secretService, &fakeTxManager{}, sender, testLogger())

		err := useCase.Consume(ctx, &authDomain.ConsumeResetInput{
			PlainToken: "plain-token",
			NewSecret:  "newS3cret!",
		})
		require.NoError(t, err)
		principalRepo.AssertExpectations(t)
		tokenRepo.AssertExpectations(t)
	})

	t.Run("Error_ConcurrentLoserGetsTokenUsed", func(t *testing.T) {
		cfg, principalRepo, tokenRepo, tokenService, secretService, sender := newResetFixture()

		principalID := uuid.Must(uuid.NewV7())
		usable := authDomain.NewResetToken("token-digest", principalID, authDomain.PrincipalTypeEmployee, time.Now().UTC(), time.Hour)
		consumed := *usable
		consumed.Used = true

		tokenService.On("HashToken", "plain-token").Return("token-digest")
		// First read sees a usable token; the conditional claim loses the
		// race and the re-read sees it consumed.
		tokenRepo.On("GetByTokenHash", ctx, "token-digest").Return(usable, nil).Once()
		secretService.On("HashSecret", "newS3cret!").Return("$argon2id$new-hash", nil)
		tokenRepo.On("ConsumeByTokenHash", ctx, "token-digest", mock.Anything).Return(int64(0), nil)
		tokenRepo.On("GetByTokenHash", ctx, "token-digest").Return(&consumed, nil).Once()

		useCase := NewPasswordResetUseCase(cfg, principalRepo, tokenRepo, tokenService, secretService, &fakeTxManager{}, sender, testLogger())

		err := useCase.Consume(ctx, &authDomain.ConsumeResetInput{
			PlainToken: "plain-token",
			NewSecret:  "newS3cret!",
		})
		assert.ErrorIs(t, err, authDomain.ErrResetTokenUsed)
		principalRepo.AssertNotCalled(t, "UpdateCredential")
	})

	t.Run("Error_ExpiredTokenLeavesCredentialUnchanged", func(t *testing.T) {
		cfg, principalRepo, tokenRepo, tokenService, secretService, sender := newResetFixture()

		token := authDomain.NewResetToken("token-digest", uuid.Must(uuid.NewV7()), authDomain.PrincipalTypeEmployee, time.Now().UTC().Add(-2*time.Hour), time.Hour)

		tokenService.On("HashToken", "plain-token").Return("token-digest")
		tokenRepo.On("GetByTokenHash", ctx, "token-digest").Return(token, nil)

		useCase := NewPasswordResetUseCase(cfg, principalRepo, tokenRepo, tokenService, secretService, &fakeTxManager{}, sender, testLogger())

		err := useCase.Consume(ctx, &authDomain.ConsumeResetInput{
			PlainToken: "plain-token",
			NewSecret:  "newS3cret!",
		})
		assert.ErrorIs(t, err, authDomain.ErrResetTokenExpired)
		principalRepo.AssertNotCalled(t, "UpdateCredential")
		tokenRepo.AssertNotCalled(t, "ConsumeByTokenHash")
	})

	t.Run("Error_WeakNewSecret", func(t *testing.T) {
		cfg, principalRepo, tokenRepo, tokenService, secretService, sender := newResetFixture()

		token := authDomain.NewResetToken("token-digest", uuid.Must(uuid.NewV7()), authDomain.PrincipalTypeEmployee, time.Now().UTC(), time.Hour)

		tokenService.On("HashToken", "plain-token").Return("token-digest")
		tokenRepo.On("GetByTokenHash", ctx, "token-digest").Return(token, nil)

		useCase := NewPasswordResetUseCase(cfg, principalRepo, tokenRepo, tokenService, secretService, &fakeTxManager{}, sender, testLogger())

		err := useCase.Consume(ctx, &authDomain.ConsumeResetInput{
			PlainToken: "plain-token",
			NewSecret:  "no",
		})
		assert.ErrorIs(t, err, authDomain.ErrWeakCredential)
		tokenRepo.AssertNotCalled(t, "ConsumeByTokenHash")
	})
}

func TestPasswordResetUseCase_CleanupExpired(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_Delete", func(t *testing.T) {
		cfg, principalRepo, tokenRepo, tokenService, secretService, sender := newResetFixture()

		tokenRepo.On("DeleteExpired", ctx, mock.Anything).Return(int64(3), nil)

		useCase := NewPasswordResetUseCase(cfg, principalRepo, tokenRepo, tokenService, secretService, &fakeTxManager{}, sender, testLogger())

		count, err := useCase.CleanupExpired(ctx, 7, false)
		require.NoError(t, err)
		assert.Equal(t, int64(3), count)
	})

	t.Run("Success_DryRunOnlyCounts", func(t *testing.T) {
		cfg, principalRepo, tokenRepo, tokenService, secretService, sender := newResetFixture()

		tokenRepo.On("CountExpired", ctx, mock.Anything).Return(int64(5), nil)

		useCase := NewPasswordResetUseCase(cfg, principalRepo, tokenRepo, tokenService, secretService, &fakeTxManager{}, sender, testLogger())

		count, err := useCase.CleanupExpired(ctx, 7, true)
		require.NoError(t, err)
		assert.Equal(t, int64(5), count)
		tokenRepo.AssertNotCalled(t, "DeleteExpired")
	})
}
