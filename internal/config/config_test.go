package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "0.0.0.0", cfg.ServerHost)
	assert.Equal(t, 8080, cfg.ServerPort)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 24*time.Hour, cfg.InviteTokenExpiration)
	assert.Equal(t, time.Hour, cfg.ResetTokenExpiration)
	assert.Equal(t, "123456", cfg.ManagerDefaultCredential)
	assert.True(t, cfg.RateLimitAuthEnabled)
	assert.True(t, cfg.MetricsEnabled)
	assert.Equal(t, "crewhub", cfg.MetricsNamespace)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "mysql")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("INVITE_SIGNING_SECRET", "test-secret")
	t.Setenv("RESET_TOKEN_EXPIRATION_MINUTES", "30")
	t.Setenv("MANAGER_DEFAULT_CREDENTIAL", "changeme")

	cfg := Load()

	assert.Equal(t, "mysql", cfg.DBDriver)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "test-secret", cfg.InviteSigningSecret)
	assert.Equal(t, 30*time.Minute, cfg.ResetTokenExpiration)
	assert.Equal(t, "changeme", cfg.ManagerDefaultCredential)
}

func TestGetGinMode(t *testing.T) {
	cfg := &Config{LogLevel: "debug"}
	assert.Equal(t, "debug", cfg.GetGinMode())

	cfg.LogLevel = "info"
	assert.Equal(t, "release", cfg.GetGinMode())

	cfg.LogLevel = "unknown"
	assert.Equal(t, "release", cfg.GetGinMode())
}
