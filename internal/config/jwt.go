package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// JWTConfig holds configuration for validating bearer tokens. Tokens are
// issued elsewhere; only the shared HS256 secret is needed here.
type JWTConfig struct {
	Secret string
	Leeway time.Duration
}

// NewJWTConfig creates a JWT configuration from environment variables.
// It reads JWT_SECRET (required) and JWT_LEEWAY_SECONDS (default: 0).
func NewJWTConfig() (*JWTConfig, error) {
	return newJWTConfig(os.Getenv("JWT_SECRET"), os.Getenv("JWT_LEEWAY_SECONDS"))
}

// JWTConfigFor builds a JWT configuration for secret, reading the leeway
// from the environment.
func JWTConfigFor(secret string) (*JWTConfig, error) {
	return newJWTConfig(secret, os.Getenv("JWT_LEEWAY_SECONDS"))
}

func newJWTConfig(secret, leewayStr string) (*JWTConfig, error) {
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required but not set")
	}

	if leewayStr == "" {
		leewayStr = "0"
	}
	leeway, err := strconv.Atoi(leewayStr)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_LEEWAY_SECONDS: %v", err)
	}

	config := &JWTConfig{
		Secret: secret,
		Leeway: time.Duration(leeway) * time.Second,
	}

	if err := config.normalize(); err != nil {
		return nil, err
	}

	return config, nil
}

// normalize validates the configuration.
func (c *JWTConfig) normalize() error {
	if c.Secret == "" {
		return fmt.Errorf("JWT_SECRET cannot be empty")
	}
	if c.Leeway < 0 {
		return fmt.Errorf("JWT_LEEWAY_SECONDS cannot be negative, got: %d", int(c.Leeway.Seconds()))
	}
	return nil
}
