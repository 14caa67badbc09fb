// Package config loads and validates environment variables at startup.
// Fail-fast: if a required variable is missing or malformed, the process exits.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/viper"
)

// Config holds all runtime configuration for the listing service.
type Config struct {
	Port        string
	DatabaseURL string

	// Startup connector
	ConnectMaxAttempts int
	ConnectDelay       time.Duration

	// Optional integrations, disabled when empty
	RedisURL       string
	SeedSchedule   string // cron spec, e.g. "@every 24h"
	GRPCHealthPort string

	LogLevel  string
	LogFormat string // "text" or "json"
	GinMode   string
}

// Load reads environment variables (and an optional dotenv file) and returns
// a validated Config.
func Load() (*Config, error) {
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	v.SetDefault("PORT", "3000")
	v.SetDefault("DB_CONNECT_MAX_ATTEMPTS", 5)
	v.SetDefault("DB_CONNECT_DELAY", "3s")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("GIN_MODE", "release")
	v.AutomaticEnv()

	if err := readEnvFile(v); err != nil {
		return nil, err
	}

	dbURL := v.GetString("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	port := v.GetString("PORT")
	if n, err := strconv.Atoi(port); err != nil || n < 1 || n > 65535 {
		return nil, fmt.Errorf("PORT must be a valid TCP port, got %q", port)
	}

	attempts := v.GetString("DB_CONNECT_MAX_ATTEMPTS")
	maxAttempts, err := strconv.Atoi(attempts)
	if err != nil || maxAttempts < 1 {
		return nil, fmt.Errorf("DB_CONNECT_MAX_ATTEMPTS must be a positive integer, got %q", attempts)
	}

	rawDelay := v.GetString("DB_CONNECT_DELAY")
	delay, err := time.ParseDuration(rawDelay)
	if err != nil || delay <= 0 {
		return nil, fmt.Errorf("DB_CONNECT_DELAY must be a positive duration, got %q", rawDelay)
	}

	format := v.GetString("LOG_FORMAT")
	if format != "text" && format != "json" {
		return nil, fmt.Errorf("LOG_FORMAT must be \"text\" or \"json\", got %q", format)
	}

	grpcPort := v.GetString("GRPC_HEALTH_PORT")
	if grpcPort != "" {
		if n, err := strconv.Atoi(grpcPort); err != nil || n < 1 || n > 65535 {
			return nil, fmt.Errorf("GRPC_HEALTH_PORT must be a valid TCP port, got %q", grpcPort)
		}
	}

	return &Config{
		Port:               port,
		DatabaseURL:        dbURL,
		ConnectMaxAttempts: maxAttempts,
		ConnectDelay:       delay,
		RedisURL:           v.GetString("REDIS_URL"),
		SeedSchedule:       v.GetString("SEED_SCHEDULE"),
		GRPCHealthPort:     grpcPort,
		LogLevel:           v.GetString("LOG_LEVEL"),
		LogFormat:          format,
		GinMode:            v.GetString("GIN_MODE"),
	}, nil
}

// readEnvFile merges a dotenv file into v. CONFIG_FILE names it explicitly
// and must exist; otherwise ./.env is used when present.
func readEnvFile(v *viper.Viper) error {
	path := v.GetString("CONFIG_FILE")
	explicit := path != ""
	if !explicit {
		path = ".env"
	}

	if _, err := os.Stat(path); err != nil {
		if explicit {
			return fmt.Errorf("CONFIG_FILE %q: %w", path, err)
		}
		return nil
	}

	v.SetConfigFile(path)
	v.SetConfigType("env")
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	return nil
}
