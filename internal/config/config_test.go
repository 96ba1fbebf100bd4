package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SuyashSrivastava1/ReadAble/internal/llm"
)

var envKeys = []string{
	"LLM_PROVIDER", "OPENAI_API_KEY", "GEMINI_API_KEY", "OPENAI_MODEL", "OPENAI_BASE_URL",
	"OPENAI_MOCK", "READING_PROFILE", "DATABASE_URL", "JWT_SECRET", "PORT",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range envKeys {
		t.Setenv(key, "")
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig_ValidJSON(t *testing.T) {
	path := writeFile(t, "config.json", `{
		"provider": "gemini",
		"gemini_api_key": "g-key",
		"model": "gemini-2.5-pro",
		"profile": "elderly",
		"port": 8080,
		"verbose": true
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "gemini", cfg.Provider)
	assert.Equal(t, "g-key", cfg.GeminiAPIKey)
	assert.Equal(t, "gemini-2.5-pro", cfg.Model)
	assert.Equal(t, "elderly", cfg.Profile)
	assert.Equal(t, 8080, cfg.Port)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_ValidYAML(t *testing.T) {
	path := writeFile(t, "readable.yaml", "provider: openai\nmodel: gpt-4o\nmock: true\ndatabase_url: sqlite://history.db\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "openai", cfg.Provider)
	assert.Equal(t, "gpt-4o", cfg.Model)
	assert.True(t, cfg.Mock)
	assert.Equal(t, "sqlite://history.db", cfg.DatabaseURL)
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		path    func(t *testing.T) string
		wantErr string
	}{
		{"invalid json", func(t *testing.T) string { return writeFile(t, "c.json", "{ invalid json }") }, "failed to parse config JSON"},
		{"invalid yaml", func(t *testing.T) string { return writeFile(t, "c.yml", "port: [1, 2") }, "failed to parse config YAML"},
		{"file not found", func(*testing.T) string { return "/nonexistent/path/config.json" }, "failed to read config file"},
		{"empty path", func(*testing.T) string { return "" }, "config path is empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadConfig(tt.path(t))
			assert.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("LLM_PROVIDER", " Gemini ")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("OPENAI_MODEL", "gpt-4o")
	t.Setenv("OPENAI_MOCK", "true")
	t.Setenv("PORT", "9000")
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "gemini", cfg.Provider)
	assert.Equal(t, "sk-test", cfg.APIKey)
	assert.Equal(t, "gpt-4o", cfg.Model)
	assert.True(t, cfg.Mock)
	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
}

func TestFromEnv_InvalidPort(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "http")

	_, err := FromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid PORT")
}

func TestFromEnv_MockIsStrict(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENAI_MOCK", "yes please")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.False(t, cfg.Mock)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"empty is valid", Config{}, ""},
		{"full", Config{Provider: "OpenAI", Port: 5000, Profile: "Child"}, ""},
		{"unknown provider", Config{Provider: "anthropic"}, "unknown provider"},
		{"negative port", Config{Port: -1}, "'port'"},
		{"port too large", Config{Port: 70000}, "'port'"},
		{"unknown profile", Config{Profile: "pirate"}, "unknown reading profile"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := Config{
		Provider:    "gemini",
		APIKey:      "file-key",
		Model:       "file-model",
		Port:        8080,
		DatabaseURL: "postgres://file",
		Mock:        true,
	}

	partial := Config{
		APIKey: "env-key",
		Port:   9000,
	}

	merged := partial.MergeWithDefaults(defaults)

	// Set values are preserved
	assert.Equal(t, "env-key", merged.APIKey)
	assert.Equal(t, 9000, merged.Port)

	// Defaults fill in empty fields
	assert.Equal(t, "gemini", merged.Provider)
	assert.Equal(t, "file-model", merged.Model)
	assert.Equal(t, "postgres://file", merged.DatabaseURL)
	assert.True(t, merged.Mock)
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := Config{Model: "gpt-4o", Verbose: true}

	merged := cfg.MergeWithDefaults(Config{})

	assert.Equal(t, cfg, merged)
}

func TestLoad_EnvWinsOverFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENAI_MODEL", "env-model")
	path := writeFile(t, "config.json", `{"model": "file-model", "profile": "academic"}`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "env-model", cfg.Model)
	assert.Equal(t, "academic", cfg.DefaultProfile())
}

func TestLoad_RejectsInvalidFile(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "config.json", `{"provider": "pirate"}`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestDefaults(t *testing.T) {
	cfg := Config{}
	assert.Equal(t, DefaultPort, cfg.ListenPort())
	assert.Equal(t, "standard", cfg.DefaultProfile())

	cfg = Config{Port: 1234, Profile: " CHILD "}
	assert.Equal(t, 1234, cfg.ListenPort())
	assert.Equal(t, "child", cfg.DefaultProfile())
}

func TestLLMConfig(t *testing.T) {
	tests := []struct {
		name     string
		cfg      Config
		expected llm.Config
	}{
		{
			name:     "openai default",
			cfg:      Config{APIKey: "sk", Model: "gpt-4o"},
			expected: llm.Config{Provider: llm.ProviderOpenAI, APIKey: "sk", Models: []string{"gpt-4o"}},
		},
		{
			name:     "gemini key preferred",
			cfg:      Config{Provider: "Gemini", APIKey: "sk", GeminiAPIKey: "g"},
			expected: llm.Config{Provider: llm.ProviderGemini, APIKey: "g"},
		},
		{
			name:     "gemini falls back to api key",
			cfg:      Config{Provider: "gemini", APIKey: "sk"},
			expected: llm.Config{Provider: llm.ProviderGemini, APIKey: "sk"},
		},
		{
			name:     "mock disables",
			cfg:      Config{APIKey: "sk", Mock: true, BaseURL: "http://local"},
			expected: llm.Config{Provider: llm.ProviderOpenAI, APIKey: "sk", BaseURL: "http://local", Disabled: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, &tt.expected, tt.cfg.LLMConfig())
		})
	}
}
