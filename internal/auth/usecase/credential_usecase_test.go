package usecase

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authDomain "github.com/allisson/crewhub/internal/auth/domain"
	authService "github.com/allisson/crewhub/internal/auth/service"
	"github.com/allisson/crewhub/internal/config"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testDeriver(t *testing.T) authService.CredentialDeriver {
	t.Helper()
	now, err := time.Parse("2006-01-02", "2026-09-01")
	require.NoError(t, err)
	return authService.NewCredentialDeriverWithClock(func() time.Time { return now })
}

func strPtr(s string) *string { return &s }

func datePtr(t *testing.T, value string) *time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		t.Fatal(err)
	}
	return &parsed
}

func TestCredentialUseCase_Verify(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{ManagerDefaultCredential: "123456"}

	t.Run("Success_StoredCredential", func(t *testing.T) {
		mockPrincipalRepo := &mockPrincipalRepository{}
		mockSecrets := &mockSecretService{}

		principalID := uuid.Must(uuid.NewV7())
		principal := &authDomain.Principal{
			ID:         principalID,
			Type:       authDomain.PrincipalTypeEmployee,
			Credential: strPtr("$argon2id$stored-hash"),
			BirthDate:  datePtr(t, "1990-09-19"),
			IsActive:   true,
		}

		mockPrincipalRepo.On("Get", ctx, authDomain.PrincipalTypeEmployee, principalID).Return(principal, nil)
		mockSecrets.On("CompareSecret", "myS3cret!", "$argon2id$stored-hash").Return(true)

		useCase := NewCredentialUseCase(cfg, mockPrincipalRepo, mockSecrets, testDeriver(t), testLogger())

		output, err := useCase.Verify(ctx, &authDomain.VerifyCredentialInput{
			PrincipalID:   principalID,
			PrincipalType: authDomain.PrincipalTypeEmployee,
			Secret:        "myS3cret!",
		})
		require.NoError(t, err)
		assert.False(t, output.NeedsMigration)

		mockPrincipalRepo.AssertExpectations(t)
		mockSecrets.AssertExpectations(t)
	})

	t.Run("Error_StoredCredentialWinsOverDerivedDefault", func(t *testing.T) {
		// A principal with a stored credential never falls back to the
		// derived default, even when the presented secret equals it.
		mockPrincipalRepo := &mockPrincipalRepository{}
		mockSecrets := &mockSecretService{}

		principalID := uuid.Must(uuid.NewV7())
		principal := &authDomain.Principal{
			ID:         principalID,
			Type:       authDomain.PrincipalTypeEmployee,
			Credential: strPtr("$argon2id$stored-hash"),
			BirthDate:  datePtr(t, "1990-09-19"),
			IsActive:   true,
		}

		mockPrincipalRepo.On("Get", ctx, authDomain.PrincipalTypeEmployee, principalID).Return(principal, nil)
		mockSecrets.On("CompareSecret", "19091990", "$argon2id$stored-hash").Return(false)

		useCase := NewCredentialUseCase(cfg, mockPrincipalRepo, mockSecrets, testDeriver(t), testLogger())

		_, err := useCase.Verify(ctx, &authDomain.VerifyCredentialInput{
			PrincipalID:   principalID,
			PrincipalType: authDomain.PrincipalTypeEmployee,
			Secret:        "19091990",
		})
		assert.ErrorIs(t, err, authDomain.ErrCredentialRejected)
	})

	t.Run("Success_EmployeeDerivedDefault", func(t *testing.T) {
		mockPrincipalRepo := &mockPrincipalRepository{}
		mockSecrets := &mockSecretService{}

		principalID := uuid.Must(uuid.NewV7())
		principal := &authDomain.Principal{
			ID:        principalID,
			Type:      authDomain.PrincipalTypeEmployee,
			BirthDate: datePtr(t, "1990-09-19"),
			IsActive:  true,
		}

		mockPrincipalRepo.On("Get", ctx, authDomain.PrincipalTypeEmployee, principalID).Return(principal, nil)

		useCase := NewCredentialUseCase(cfg, mockPrincipalRepo, mockSecrets, testDeriver(t), testLogger())

		output, err := useCase.Verify(ctx, &authDomain.VerifyCredentialInput{
			PrincipalID:   principalID,
			PrincipalType: authDomain.PrincipalTypeEmployee,
			Secret:        "19091990",
		})
		require.NoError(t, err)
		assert.True(t, output.NeedsMigration)

		// Argon2id comparison never runs on the default path.
		mockSecrets.AssertNotCalled(t, "CompareSecret")
	})

	t.Run("Error_EmployeeDerivedDefaultMismatch", func(t *testing.T) {
		mockPrincipalRepo := &mockPrincipalRepository{}
		mockSecrets := &mockSecretService{}

		principalID := uuid.Must(uuid.NewV7())
		principal := &authDomain.Principal{
			ID:        principalID,
			Type:      authDomain.PrincipalTypeEmployee,
			BirthDate: datePtr(t, "1990-09-19"),
			IsActive:  true,
		}

		mockPrincipalRepo.On("Get", ctx, authDomain.PrincipalTypeEmployee, principalID).Return(principal, nil)

		useCase := NewCredentialUseCase(cfg, mockPrincipalRepo, mockSecrets, testDeriver(t), testLogger())

		_, err := useCase.Verify(ctx, &authDomain.VerifyCredentialInput{
			PrincipalID:   principalID,
			PrincipalType: authDomain.PrincipalTypeEmployee,
			Secret:        "19092004",
		})
		assert.ErrorIs(t, err, authDomain.ErrCredentialRejected)
	})

	t.Run("Error_EmployeeWithoutBirthDate", func(t *testing.T) {
		mockPrincipalRepo := &mockPrincipalRepository{}
		mockSecrets := &mockSecretService{}

		principalID := uuid.Must(uuid.NewV7())
		principal := &authDomain.Principal{
			ID:       principalID,
			Type:     authDomain.PrincipalTypeEmployee,
			IsActive: true,
		}

		mockPrincipalRepo.On("Get", ctx, authDomain.PrincipalTypeEmployee, principalID).Return(principal, nil)

		useCase := NewCredentialUseCase(cfg, mockPrincipalRepo, mockSecrets, testDeriver(t), testLogger())

		_, err := useCase.Verify(ctx, &authDomain.VerifyCredentialInput{
			PrincipalID:   principalID,
			PrincipalType: authDomain.PrincipalTypeEmployee,
			Secret:        "anything",
		})
		assert.ErrorIs(t, err, authDomain.ErrNoCredentialPath)
	})

	t.Run("Success_ManagerFallback", func(t *testing.T) {
		mockPrincipalRepo := &mockPrincipalRepository{}
		mockSecrets := &mockSecretService{}

		principalID := uuid.Must(uuid.NewV7())
		principal := &authDomain.Principal{
			ID:       principalID,
			Type:     authDomain.PrincipalTypeManager,
			IsActive: true,
		}

		mockPrincipalRepo.On("Get", ctx, authDomain.PrincipalTypeManager, principalID).Return(principal, nil)

		useCase := NewCredentialUseCase(cfg, mockPrincipalRepo, mockSecrets, testDeriver(t), testLogger())

		output, err := useCase.Verify(ctx, &authDomain.VerifyCredentialInput{
			PrincipalID:   principalID,
			PrincipalType: authDomain.PrincipalTypeManager,
			Secret:        "123456",
		})
		require.NoError(t, err)
		assert.True(t, output.NeedsMigration)
	})

	t.Run("Error_ManagerFallbackDisabled", func(t *testing.T) {
		mockPrincipalRepo := &mockPrincipalRepository{}
		mockSecrets := &mockSecretService{}

		principalID := uuid.Must(uuid.NewV7())
		principal := &authDomain.Principal{
			ID:       principalID,
			Type:     authDomain.PrincipalTypeManager,
			IsActive: true,
		}

		mockPrincipalRepo.On("Get", ctx, authDomain.PrincipalTypeManager, principalID).Return(principal, nil)

		noFallback := &config.Config{ManagerDefaultCredential: ""}
		useCase := NewCredentialUseCase(noFallback, mockPrincipalRepo, mockSecrets, testDeriver(t), testLogger())

		_, err := useCase.Verify(ctx, &authDomain.VerifyCredentialInput{
			PrincipalID:   principalID,
			PrincipalType: authDomain.PrincipalTypeManager,
			Secret:        "123456",
		})
		assert.ErrorIs(t, err, authDomain.ErrNoCredentialPath)
	})

	t.Run("Error_PrincipalNotFoundIsGeneric", func(t *testing.T) {
		mockPrincipalRepo := &mockPrincipalRepository{}
		mockSecrets := &mockSecretService{}

		principalID := uuid.Must(uuid.NewV7())
		mockPrincipalRepo.On("Get", ctx, authDomain.PrincipalTypeEmployee, principalID).
			Return(nil, authDomain.ErrPrincipalNotFound)

		useCase := NewCredentialUseCase(cfg, mockPrincipalRepo, mockSecrets, testDeriver(t), testLogger())

		_, err := useCase.Verify(ctx, &authDomain.VerifyCredentialInput{
			PrincipalID:   principalID,
			PrincipalType: authDomain.PrincipalTypeEmployee,
			Secret:        "anything",
		})
		assert.ErrorIs(t, err, authDomain.ErrCredentialRejected)
		assert.NotErrorIs(t, err, authDomain.ErrPrincipalNotFound)
	})

	t.Run("Error_InactivePrincipal", func(t *testing.T) {
		mockPrincipalRepo := &mockPrincipalRepository{}
		mockSecrets := &mockSecretService{}

		principalID := uuid.Must(uuid.NewV7())
		principal := &authDomain.Principal{
			ID:         principalID,
			Type:       authDomain.PrincipalTypeEmployee,
			Credential: strPtr("$argon2id$stored-hash"),
			IsActive:   false,
		}

		mockPrincipalRepo.On("Get", ctx, authDomain.PrincipalTypeEmployee, principalID).Return(principal, nil)

		useCase := NewCredentialUseCase(cfg, mockPrincipalRepo, mockSecrets, testDeriver(t), testLogger())

		_, err := useCase.Verify(ctx, &authDomain.VerifyCredentialInput{
			PrincipalID:   principalID,
			PrincipalType: authDomain.PrincipalTypeEmployee,
			Secret:        "anything",
		})
		assert.ErrorIs(t, err, authDomain.ErrPrincipalInactive)
	})
}

func TestCredentialUseCase_ChangeCredential(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{ManagerDefaultCredential: "123456"}

	t.Run("Success_MigrateOffDerivedDefault", func(t *testing.T) {
		mockPrincipalRepo := &mockPrincipalRepository{}
		mockSecrets := &mockSecretService{}

		principalID := uuid.Must(uuid.NewV7())
		principal := &authDomain.Principal{
			ID:        principalID,
			Type:      authDomain.PrincipalTypeEmployee,
			BirthDate: datePtr(t, "1990-09-19"),
			IsActive:  true,
		}

		mockPrincipalRepo.On("Get", ctx, authDomain.PrincipalTypeEmployee, principalID).Return(principal, nil)
		mockSecrets.On("HashSecret", "newS3cret!").Return("$argon2id$new-hash", nil)
		mockPrincipalRepo.On("UpdateCredential", ctx, authDomain.PrincipalTypeEmployee, principalID, "$argon2id$new-hash").Return(nil)

		useCase := NewCredentialUseCase(cfg, mockPrincipalRepo, mockSecrets, testDeriver(t), testLogger())

		err := useCase.ChangeCredential(ctx, &authDomain.ChangeCredentialInput{
			PrincipalID:   principalID,
			PrincipalType: authDomain.PrincipalTypeEmployee,
			CurrentSecret: "19091990",
			NewSecret:     "newS3cret!",
		})
		require.NoError(t, err)
		mockPrincipalRepo.AssertExpectations(t)
	})

	t.Run("Error_WeakNewSecret", func(t *testing.T) {
		mockPrincipalRepo := &mockPrincipalRepository{}
		mockSecrets := &mockSecretService{}

		principalID := uuid.Must(uuid.NewV7())
		principal := &authDomain.Principal{
			ID:         principalID,
			Type:       authDomain.PrincipalTypeManager,
			Credential: strPtr("$argon2id$stored-hash"),
			IsActive:   true,
		}

		mockPrincipalRepo.On("Get", ctx, authDomain.PrincipalTypeManager, principalID).Return(principal, nil)
		mockSecrets.On("CompareSecret", "current", "$argon2id$stored-hash").Return(true)

		useCase := NewCredentialUseCase(cfg, mockPrincipalRepo, mockSecrets, testDeriver(t), testLogger())

		err := useCase.ChangeCredential(ctx, &authDomain.ChangeCredentialInput{
			PrincipalID:   principalID,
			PrincipalType: authDomain.PrincipalTypeManager,
			CurrentSecret: "current",
			NewSecret:     "no",
		})
		assert.ErrorIs(t, err, authDomain.ErrWeakCredential)
		mockPrincipalRepo.AssertNotCalled(t, "UpdateCredential")
	})

	t.Run("Error_WrongCurrentSecret", func(t *testing.T) {
		mockPrincipalRepo := &mockPrincipalRepository{}
		mockSecrets := &mockSecretService{}

		principalID := uuid.Must(uuid.NewV7())
		principal := &authDomain.Principal{
			ID:         principalID,
			Type:       authDomain.PrincipalTypeManager,
			Credential: strPtr("$argon2id$stored-hash"),
			IsActive:   true,
		}

		mockPrincipalRepo.On("Get", ctx, authDomain.PrincipalTypeManager, principalID).Return(principal, nil)
		mockSecrets.On("CompareSecret", "wrong", "$argon2id$stored-hash").Return(false)

		useCase := NewCredentialUseCase(cfg, mockPrincipalRepo, mockSecrets, testDeriver(t), testLogger())

		err := useCase.ChangeCredential(ctx, &authDomain.ChangeCredentialInput{
			PrincipalID:   principalID,
			PrincipalType: authDomain.PrincipalTypeManager,
			CurrentSecret: "wrong",
			NewSecret:     "newS3cret!",
		})
		assert.ErrorIs(t, err, authDomain.ErrCredentialRejected)
		mockPrincipalRepo.AssertNotCalled(t, "UpdateCredential")
	})
}
