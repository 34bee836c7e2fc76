package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config is the process configuration, read once at startup from the
// environment. Every field has a default suitable for local runs.
type Config struct {
	// HTTPAddr is the listen address of the REST API.
	HTTPAddr string

	// DBPath is the SQLite database file.
	DBPath string

	// TransferTTL is the confirmation window of a new transfer request.
	TransferTTL time.Duration

	// SweepInterval is how often the expiry reaper runs.
	SweepInterval time.Duration

	// BeanstalkAddr is the notification queue address. Empty disables
	// notifications.
	BeanstalkAddr string

	// BeanstalkTube is the tube notifications are put on.
	BeanstalkTube string

	// ConfirmRateLimit is the per-IP confirmation attempts per second.
	ConfirmRateLimit float64
}

func Load() (Config, error) {
	cfg := Config{
		HTTPAddr:         envOr("HTTP_ADDR", ":8080"),
		DBPath:           envOr("DB_PATH", "transfers.db"),
		BeanstalkAddr:    os.Getenv("BEANSTALK_ADDR"),
		BeanstalkTube:    envOr("BEANSTALK_TUBE", "transfer-notifications"),
		TransferTTL:      15 * time.Minute,
		SweepInterval:    30 * time.Second,
		ConfirmRateLimit: 1,
	}

	if raw := os.Getenv("TRANSFER_TTL"); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, fmt.Errorf("parse TRANSFER_TTL: %w", err)
		}
		if ttl <= 0 {
			return Config{}, fmt.Errorf("TRANSFER_TTL must be positive, got %s", ttl)
		}
		cfg.TransferTTL = ttl
	}

	if raw := os.Getenv("SWEEP_INTERVAL"); raw != "" {
		interval, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, fmt.Errorf("parse SWEEP_INTERVAL: %w", err)
		}
		if interval <= 0 {
			return Config{}, fmt.Errorf("SWEEP_INTERVAL must be positive, got %s", interval)
		}
		cfg.SweepInterval = interval
	}

	if raw := os.Getenv("CONFIRM_RATE_LIMIT"); raw != "" {
		limit, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Config{}, fmt.Errorf("parse CONFIRM_RATE_LIMIT: %w", err)
		}
		if limit <= 0 {
			return Config{}, fmt.Errorf("CONFIRM_RATE_LIMIT must be positive, got %v", limit)
		}
		cfg.ConfirmRateLimit = limit
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
