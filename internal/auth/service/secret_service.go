package service

import (
	"github.com/allisson/go-pwdhash"

	apperrors "github.com/allisson/crewhub/internal/errors"
)

// secretService implements SecretService using Argon2id for credential hashing.
type secretService struct {
	hasher *pwdhash.PasswordHasher
}

// HashSecret hashes a plain text credential using Argon2id.
func (s *secretService) HashSecret(plainSecret string) (hashedSecret string, error error) {
	hashedSecret, err := s.hasher.Hash([]byte(plainSecret))
	if err != nil {
		return "", apperrors.Wrap(err, "failed to hash credential")
	}
	return hashedSecret, nil
}

// CompareSecret performs a constant-time comparison between a plain
// credential and its hash.
func (s *secretService) CompareSecret(plainSecret string, hashedSecret string) bool {
	ok, err := s.hasher.Verify([]byte(plainSecret), hashedSecret)
	if err != nil {
		return false
	}
	return ok
}

// NewSecretService creates a new SecretService instance using Argon2id hashing.
// Uses the Moderate policy for a balance between security and performance.
func NewSecretService() SecretService {
	hasher, err := pwdhash.New(
		pwdhash.WithPolicy(pwdhash.PolicyModerate),
	)
	if err != nil {
		// This should never happen with valid policy
		panic(err)
	}

	return &secretService{
		hasher: hasher,
	}
}
