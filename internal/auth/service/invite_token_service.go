package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/allisson/crewhub/internal/auth/domain"
	apperrors "github.com/allisson/crewhub/internal/errors"
)

// inviteClaims is the JWT payload for an invitation token.
type inviteClaims struct {
	CompanyID string `json:"cid"`
	Email     string `json:"email"`
	jwt.RegisteredClaims
}

// inviteTokenService implements InviteTokenService using HMAC-SHA256 signed
// JWTs. Invitations carry no server-side state.
type inviteTokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// EncodeInvitation signs an invitation token binding the company and email.
func (s *inviteTokenService) EncodeInvitation(companyID uuid.UUID, email string) (string, time.Time, error) {
	now := s.now().UTC()
	expiresAt := now.Add(s.ttl)

	claims := inviteClaims{
		CompanyID: companyID.String(),
		Email:     email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, apperrors.Wrap(err, "failed to sign invitation token")
	}
	return token, expiresAt, nil
}

// DecodeInvitation verifies the signature and expiry of an invitation token.
// All failure modes collapse into domain.ErrInvalidOrExpiredInvite.
func (s *inviteTokenService) DecodeInvitation(token string) (*domain.InvitationClaims, error) {
	var claims inviteClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil || !parsed.Valid {
		return nil, domain.ErrInvalidOrExpiredInvite
	}

	companyID, err := uuid.Parse(claims.CompanyID)
	if err != nil {
		return nil, domain.ErrInvalidOrExpiredInvite
	}
	if claims.Email == "" || claims.ExpiresAt == nil || claims.IssuedAt == nil {
		return nil, domain.ErrInvalidOrExpiredInvite
	}

	return &domain.InvitationClaims{
		CompanyID: companyID,
		Email:     claims.Email,
		IssuedAt:  claims.IssuedAt.Time,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// NewInviteTokenService creates an InviteTokenService signing with the given
// secret and issuing tokens valid for the given duration.
func NewInviteTokenService(secret string, ttl time.Duration) InviteTokenService {
	return &inviteTokenService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// NewInviteTokenServiceWithClock creates an InviteTokenService with an
// injectable clock for tests.
func NewInviteTokenServiceWithClock(secret string, ttl time.Duration, now func() time.Time) InviteTokenService {
	return &inviteTokenService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    now,
	}
}
