package metrics

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvider(t *testing.T) {
	provider, err := NewProvider("crewhub")
	require.NoError(t, err)
	require.NotNil(t, provider)
	defer func() { _ = provider.Shutdown(context.Background()) }()

	assert.NotNil(t, provider.MeterProvider())
	assert.NotNil(t, provider.Handler())
}

func TestProviderHandlerExposesRecordedMetrics(t *testing.T) {
	provider, err := NewProvider("crewhub")
	require.NoError(t, err)
	defer func() { _ = provider.Shutdown(context.Background()) }()

	business, err := NewBusinessMetrics(provider.MeterProvider(), "crewhub")
	require.NoError(t, err)

	business.RecordOperation(context.Background(), "auth", "credential_verify", "success")
	business.RecordDuration(context.Background(), "auth", "credential_verify", 25*time.Millisecond, "success")

	server := httptest.NewServer(provider.Handler())
	defer server.Close()

	resp, err := http.Get(server.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "crewhub_operations_total")
}

func TestNoOpBusinessMetrics(t *testing.T) {
	m := NewNoOpBusinessMetrics()

	// Must be safe to call with a nil-free context and never panic.
	m.RecordOperation(context.Background(), "auth", "reset_issue", "success")
	m.RecordDuration(context.Background(), "auth", "reset_issue", time.Second, "error")
}
