package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJWTConfig_DefaultValues(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key")
	t.Setenv("JWT_LEEWAY_SECONDS", "")

	cfg, err := NewJWTConfig()
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, "test-secret-key", cfg.Secret)
	assert.Zero(t, cfg.Leeway, "should default to no leeway")
}

func TestNewJWTConfig_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	cfg, err := NewJWTConfig()
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "JWT_SECRET is required")
}

func TestNewJWTConfig_Leeway(t *testing.T) {
	tests := []struct {
		name     string
		leeway   string
		expected time.Duration
		wantErr  string
	}{
		{"thirty seconds", "30", 30 * time.Second, ""},
		{"zero", "0", 0, ""},
		{"not a number", "soon", 0, "invalid JWT_LEEWAY_SECONDS"},
		{"negative", "-5", 0, "cannot be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("JWT_SECRET", "secret")
			t.Setenv("JWT_LEEWAY_SECONDS", tt.leeway)

			cfg, err := NewJWTConfig()
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.Leeway)
		})
	}
}

func TestJWTConfigFor(t *testing.T) {
	t.Setenv("JWT_LEEWAY_SECONDS", "")

	cfg, err := JWTConfigFor("from-file")
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.Secret)

	_, err = JWTConfigFor("")
	assert.Error(t, err)
}
