package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "https://app.ticketmaster.com/discovery/v2", cfg.TicketmasterBaseURL)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.Equal(t, "", cfg.RedisURL)
}

func TestLoad_MissingAPIKeyIsNotFatal(t *testing.T) {
	// The credential is checked per request so the service can boot, serve
	// health checks, and report config_error on search.
	t.Setenv("TICKETMASTER_API_KEY", "")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Empty(t, cfg.TicketmasterAPIKey)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9999")
	t.Setenv("CACHE_TTL", "90s")
	t.Setenv("RL_IP_LIMIT", "5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9999", cfg.HTTPAddr)
	assert.Equal(t, 90*time.Second, cfg.CacheTTL)
	assert.Equal(t, 5, cfg.RLLimit)
}

func TestLoad_BadDurationFallsBack(t *testing.T) {
	t.Setenv("CACHE_TTL", "five minutes")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
}
