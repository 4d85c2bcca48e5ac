// Package mocks provides mock implementations for testing HTTP handlers.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	authDomain "github.com/allisson/crewhub/internal/auth/domain"
)

// MockCredentialUseCase is a mock implementation of CredentialUseCase for testing.
type MockCredentialUseCase struct {
	mock.Mock
}

// Verify mocks the Verify method of CredentialUseCase.
func (m *MockCredentialUseCase) Verify(
	ctx context.Context,
	input *authDomain.VerifyCredentialInput,
) (*authDomain.VerifyOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.VerifyOutput), args.Error(1)
}

// ChangeCredential mocks the ChangeCredential method of CredentialUseCase.
func (m *MockCredentialUseCase) ChangeCredential(ctx context.Context, input *authDomain.ChangeCredentialInput) error {
	args := m.Called(ctx, input)
	return args.Error(0)
}

// MockPasswordResetUseCase is a mock implementation of PasswordResetUseCase for testing.
type MockPasswordResetUseCase struct {
	mock.Mock
}

// Request mocks the Request method of PasswordResetUseCase.
func (m *MockPasswordResetUseCase) Request(
	ctx context.Context,
	input *authDomain.RequestResetInput,
) (*authDomain.RequestResetOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.RequestResetOutput), args.Error(1)
}

// Validate mocks the Validate method of PasswordResetUseCase.
func (m *MockPasswordResetUseCase) Validate(ctx context.Context, plainToken string) (*authDomain.ResetToken, error) {
	args := m.Called(ctx, plainToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.ResetToken), args.Error(1)
}

// Consume mocks the Consume method of PasswordResetUseCase.
func (m *MockPasswordResetUseCase) Consume(ctx context.Context, input *authDomain.ConsumeResetInput) error {
	args := m.Called(ctx, input)
	return args.Error(0)
}

// CleanupExpired mocks the CleanupExpired method of PasswordResetUseCase.
func (m *MockPasswordResetUseCase) CleanupExpired(ctx context.Context, olderThanDays int, dryRun bool) (int64, error) {
	args := m.Called(ctx, olderThanDays, dryRun)
	return args.Get(0).(int64), args.Error(1)
}

// MockInvitationUseCase is a mock implementation of InvitationUseCase for testing.
type MockInvitationUseCase struct {
	mock.Mock
}

// Issue mocks the Issue method of InvitationUseCase.
func (m *MockInvitationUseCase) Issue(
	ctx context.Context,
	input *authDomain.IssueInvitationInput,
) (*authDomain.IssueInvitationOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.IssueInvitationOutput), args.Error(1)
}

// Resolve mocks the Resolve method of InvitationUseCase.
func (m *MockInvitationUseCase) Resolve(ctx context.Context, token string) (*authDomain.InvitationClaims, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.InvitationClaims), args.Error(1)
}

// Accept mocks the Accept method of InvitationUseCase.
func (m *MockInvitationUseCase) Accept(
	ctx context.Context,
	input *authDomain.AcceptInvitationInput,
) (*authDomain.AcceptInvitationOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.AcceptInvitationOutput), args.Error(1)
}
