package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

const devJWTSecret = "dev-secret-change-in-production"

var ErrInsecureSecret = errors.New("JWT_SECRET must be set in production environment")

type Config struct {
	Port        string
	Env         string
	DatabaseDSN string
	JWTSecret   string
	JWTExpiry   time.Duration

	// RandomSeed makes generation reproducible when set. Nil means unseeded.
	RandomSeed *uint64

	RateLimitRPS   float64
	RateLimitBurst int
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		Env:         getEnv("ENV", "development"),
		DatabaseDSN: getEnv("DATABASE_DSN", "root:password@tcp(127.0.0.1:3306)/passforge?parseTime=true&clientFoundRows=true"),
		JWTSecret:   getEnv("JWT_SECRET", devJWTSecret),
	}

	var err error
	if cfg.JWTExpiry, err = time.ParseDuration(getEnv("JWT_EXPIRY", "24h")); err != nil {
		return Config{}, fmt.Errorf("parsing JWT_EXPIRY: %w", err)
	}
	if cfg.RateLimitRPS, err = strconv.ParseFloat(getEnv("RATE_LIMIT_RPS", "5"), 64); err != nil {
		return Config{}, fmt.Errorf("parsing RATE_LIMIT_RPS: %w", err)
	}
	if cfg.RateLimitBurst, err = strconv.Atoi(getEnv("RATE_LIMIT_BURST", "10")); err != nil {
		return Config{}, fmt.Errorf("parsing RATE_LIMIT_BURST: %w", err)
	}

	if v := os.Getenv("RANDOM_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("parsing RANDOM_SEED: %w", err)
		}
		cfg.RandomSeed = &seed
	}

	if cfg.Env == "production" && cfg.JWTSecret == devJWTSecret {
		return Config{}, ErrInsecureSecret
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
