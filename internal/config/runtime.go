package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	defaultSessionTTL         = "2h"
	defaultSweepInterval      = "10m"
	defaultServiceTokenTTL    = "60s"
	defaultServiceTokenSecret = "change-me-service-token-secret"
)

type RuntimeConfig struct {
	AppEnv             string
	SessionTTL         time.Duration
	SweepInterval      time.Duration
	ServiceTokenTTL    time.Duration
	ServiceTokenSecret string
}

func LoadRuntimeConfig() (*RuntimeConfig, error) {
	cfg := &RuntimeConfig{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	var err error
	cfg.SessionTTL, err = parseDurationEnv("SESSION_TTL", defaultSessionTTL)
	if err != nil {
		return nil, err
	}

	cfg.SweepInterval, err = parseDurationEnv("SESSION_SWEEP_INTERVAL", defaultSweepInterval)
	if err != nil {
		return nil, err
	}

	cfg.ServiceTokenTTL, err = parseDurationEnv("SERVICE_TOKEN_TTL", defaultServiceTokenTTL)
	if err != nil {
		return nil, err
	}

	cfg.ServiceTokenSecret = strings.TrimSpace(getEnv("SERVICE_TOKEN_SECRET", defaultServiceTokenSecret))

	if err := validateRuntimeConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validateRuntimeConfig(cfg *RuntimeConfig) error {
	if cfg.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be > 0")
	}
	if cfg.SweepInterval <= 0 {
		return fmt.Errorf("SESSION_SWEEP_INTERVAL must be > 0")
	}
	if cfg.ServiceTokenTTL <= 0 {
		return fmt.Errorf("SERVICE_TOKEN_TTL must be > 0")
	}

	if isProdLike(cfg.AppEnv) {
		if isEmptyOrDefault(cfg.ServiceTokenSecret, defaultServiceTokenSecret) {
			return fmt.Errorf("in prod/release SERVICE_TOKEN_SECRET must be set and not default")
		}
	}

	return nil
}

func isProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func isEmptyOrDefault(v, def string) bool {
	trimmed := strings.TrimSpace(v)
	return trimmed == "" || trimmed == def
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
