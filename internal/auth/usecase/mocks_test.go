package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	authDomain "github.com/allisson/crewhub/internal/auth/domain"
)

// mockPrincipalRepository is a mock implementation of PrincipalRepository for testing.
type mockPrincipalRepository struct {
	mock.Mock
}

func (m *mockPrincipalRepository) Get(ctx context.Context, principalType authDomain.PrincipalType, principalID uuid.UUID) (*authDomain.Principal, error) {
	args := m.Called(ctx, principalType, principalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.Principal), args.Error(1)
}

func (m *mockPrincipalRepository) UpdateCredential(ctx context.Context, principalType authDomain.PrincipalType, principalID uuid.UUID, hashedSecret string) error {
	args := m.Called(ctx, principalType, principalID, hashedSecret)
	return args.Error(0)
}

// mockResetTokenRepository is a mock implementation of ResetTokenRepository for testing.
type mockResetTokenRepository struct {
	mock.Mock
}

func (m *mockResetTokenRepository) Create(ctx context.Context, token *authDomain.ResetToken) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *mockResetTokenRepository) GetByTokenHash(ctx context.Context, tokenHash string) (*authDomain.ResetToken, error) {
	args := m.Called(ctx, tokenHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.ResetToken), args.Error(1)
}

func (m *mockResetTokenRepository) ConsumeByTokenHash(ctx context.Context, tokenHash string, now time.Time) (int64, error) {
	args := m.Called(ctx, tokenHash, now)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockResetTokenRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	args := m.Called(ctx, before)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockResetTokenRepository) CountExpired(ctx context.Context, before time.Time) (int64, error) {
	args := m.Called(ctx, before)
	return args.Get(0).(int64), args.Error(1)
}

// mockSecretService is a mock implementation of SecretService for testing.
type mockSecretService struct {
	mock.Mock
}

func (m *mockSecretService) HashSecret(plainSecret string) (string, error) {
	args := m.Called(plainSecret)
	return args.String(0), args.Error(1)
}

func (m *mockSecretService) CompareSecret(plainSecret string, hashedSecret string) bool {
	args := m.Called(plainSecret, hashedSecret)
	return args.Bool(0)
}

// mockResetTokenService is a mock implementation of ResetTokenService for testing.
type mockResetTokenService struct {
	mock.Mock
}

func (m *mockResetTokenService) GenerateToken() (string, string, error) {
	args := m.Called()
	return args.String(0), args.String(1), args.Error(2)
}

func (m *mockResetTokenService) HashToken(plainToken string) string {
	args := m.Called(plainToken)
	return args.String(0)
}

// mockCompanyGateway is a mock implementation of CompanyGateway for testing.
type mockCompanyGateway struct {
	mock.Mock
}

func (m *mockCompanyGateway) Exists(ctx context.Context, companyID uuid.UUID) (bool, error) {
	args := m.Called(ctx, companyID)
	return args.Bool(0), args.Error(1)
}

// mockEmployeeProvisioner is a mock implementation of EmployeeProvisioner for testing.
type mockEmployeeProvisioner struct {
	mock.Mock
}

func (m *mockEmployeeProvisioner) ProvisionFromInvitation(ctx context.Context, companyID uuid.UUID, name, email string, birthDate time.Time, position string) (uuid.UUID, error) {
	args := m.Called(ctx, companyID, name, email, birthDate, position)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

// mockSender is a mock implementation of notification.Sender for testing.
type mockSender struct {
	mock.Mock
}

func (m *mockSender) Send(ctx context.Context, to, subject, body string) error {
	args := m.Called(ctx, to, subject, body)
	return args.Error(0)
}

// fakeTxManager runs the function without a real transaction.
type fakeTxManager struct{}

func (f *fakeTxManager) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
