package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fieldops/stock-transfers-service/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	require.Equal(t, ":8080", cfg.HTTPAddr)
	require.Equal(t, "transfers.db", cfg.DBPath)
	require.Equal(t, 15*time.Minute, cfg.TransferTTL)
	require.Equal(t, 30*time.Second, cfg.SweepInterval)
	require.Empty(t, cfg.BeanstalkAddr)
	require.Equal(t, float64(1), cfg.ConfirmRateLimit)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("TRANSFER_TTL", "5m")
	t.Setenv("SWEEP_INTERVAL", "10s")
	t.Setenv("CONFIRM_RATE_LIMIT", "2.5")

	cfg, err := config.Load()
	require.NoError(t, err)

	require.Equal(t, ":9090", cfg.HTTPAddr)
	require.Equal(t, 5*time.Minute, cfg.TransferTTL)
	require.Equal(t, 10*time.Second, cfg.SweepInterval)
	require.Equal(t, 2.5, cfg.ConfirmRateLimit)
}

func TestLoad_RejectsBadDurations(t *testing.T) {
	t.Setenv("TRANSFER_TTL", "never")
	_, err := config.Load()
	require.Error(t, err)

	t.Setenv("TRANSFER_TTL", "-5m")
	_, err = config.Load()
	require.Error(t, err)
}
