package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("COOLER_API_TOKEN", "tok_test")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, "https://api.cooler.dev", cfg.UpstreamBaseURL)
	assert.Equal(t, 15*time.Minute, cfg.MagicLinkTTL)
	assert.Equal(t, 5*time.Second, cfg.TrafficInterval)
	assert.Zero(t, cfg.TrafficWorkers)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("COOLER_API_TOKEN", "tok_test")
	t.Setenv("LISTEN_ADDR", ":9999")
	t.Setenv("TRAFFIC_WORKERS", "4")
	t.Setenv("TRAFFIC_INTERVAL", "250ms")
	t.Setenv("MAGIC_LINK_TTL", "1h")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9999", cfg.ListenAddr)
	assert.Equal(t, 4, cfg.TrafficWorkers)
	assert.Equal(t, 250*time.Millisecond, cfg.TrafficInterval)
	assert.Equal(t, time.Hour, cfg.MagicLinkTTL)
}

func TestLoadMissingTokenWarns(t *testing.T) {
	t.Setenv("COOLER_API_TOKEN", "")

	cfg, err := Load()
	assert.Error(t, err)
	// config is still usable for commands that never hit the upstream
	assert.Equal(t, ":8080", cfg.ListenAddr)
}

func TestBadValuesFallBackToDefaults(t *testing.T) {
	t.Setenv("COOLER_API_TOKEN", "tok_test")
	t.Setenv("TRAFFIC_WORKERS", "lots")
	t.Setenv("REQUEST_TIMEOUT", "soon")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Zero(t, cfg.TrafficWorkers)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
}
