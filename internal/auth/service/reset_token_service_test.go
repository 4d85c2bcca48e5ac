package service

import (
	"encoding/base64"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResetTokenService_GenerateToken(t *testing.T) {
	svc := NewResetTokenService()

	plainToken, tokenHash, err := svc.GenerateToken()
	require.NoError(t, err)

	// 32 random bytes, base64 URL-encoded.
	decoded, err := base64.URLEncoding.DecodeString(plainToken)
	require.NoError(t, err)
	assert.Len(t, decoded, 32)

	// Hash is hex-encoded SHA-256.
	rawHash, err := hex.DecodeString(tokenHash)
	require.NoError(t, err)
	assert.Len(t, rawHash, 32)

	assert.Equal(t, svc.HashToken(plainToken), tokenHash)
}

func TestResetTokenService_GenerateTokenUnique(t *testing.T) {
	svc := NewResetTokenService()

	first, _, err := svc.GenerateToken()
	require.NoError(t, err)
	second, _, err := svc.GenerateToken()
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestResetTokenService_HashTokenDeterministic(t *testing.T) {
	svc := NewResetTokenService()

	assert.Equal(t, svc.HashToken("abc"), svc.HashToken("abc"))
	assert.NotEqual(t, svc.HashToken("abc"), svc.HashToken("abd"))
}
