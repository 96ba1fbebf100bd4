// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/SuyashSrivastava1/ReadAble/internal/llm"
	"github.com/SuyashSrivastava1/ReadAble/internal/profiles"
)

// DefaultPort is used by the server when no port is configured.
const DefaultPort = 5000

// Config represents the settings that can be loaded from a JSON or YAML file
// and from the environment. All fields are optional; missing values use
// defaults or must be provided via CLI flags.
type Config struct {
	// Text generation
	Provider     string `json:"provider,omitempty" yaml:"provider,omitempty"`             // "openai" or "gemini"
	APIKey       string `json:"api_key,omitempty" yaml:"api_key,omitempty"`               // OpenAI-compatible API key
	GeminiAPIKey string `json:"gemini_api_key,omitempty" yaml:"gemini_api_key,omitempty"` // Gemini API key
	Model        string `json:"model,omitempty" yaml:"model,omitempty"`                   // Preferred model, tried before fallbacks
	BaseURL      string `json:"base_url,omitempty" yaml:"base_url,omitempty"`             // OpenAI-compatible endpoint
	Mock         bool   `json:"mock,omitempty" yaml:"mock,omitempty"`                     // Never call a model

	// Defaults for requests
	Profile string `json:"profile,omitempty" yaml:"profile,omitempty"` // Default reading profile

	// Server
	Port        int    `json:"port,omitempty" yaml:"port,omitempty"`
	DatabaseURL string `json:"database_url,omitempty" yaml:"database_url,omitempty"` // postgres:// or sqlite:// URL
	JWTSecret   string `json:"jwt_secret,omitempty" yaml:"jwt_secret,omitempty"`

	Verbose bool `json:"verbose,omitempty" yaml:"verbose,omitempty"`
}

// LoadConfig loads configuration from a JSON or YAML file. The format is
// chosen by extension; anything other than .yaml or .yml is read as JSON.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	return &cfg, nil
}

// FromEnv reads configuration from environment variables. Unset variables
// leave the corresponding field empty. An unparseable PORT is an error.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Provider:     strings.ToLower(strings.TrimSpace(os.Getenv("LLM_PROVIDER"))),
		APIKey:       os.Getenv("OPENAI_API_KEY"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		Model:        strings.TrimSpace(os.Getenv("OPENAI_MODEL")),
		BaseURL:      strings.TrimSpace(os.Getenv("OPENAI_BASE_URL")),
		Mock:         envBool("OPENAI_MOCK"),
		Profile:      strings.TrimSpace(os.Getenv("READING_PROFILE")),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
	}

	if port := strings.TrimSpace(os.Getenv("PORT")); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT: %v", err)
		}
		cfg.Port = p
	}

	return cfg, nil
}

func envBool(key string) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(key)))
	return err == nil && v
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	switch llm.Provider(strings.ToLower(c.Provider)) {
	case "", llm.ProviderOpenAI, llm.ProviderGemini:
	default:
		return fmt.Errorf("config error: unknown provider %q", c.Provider)
	}

	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535, got %d", c.Port)
	}

	if c.Profile != "" && !profiles.IsKnown(profiles.Normalize(c.Profile)) {
		return fmt.Errorf("config error: unknown reading profile %q", c.Profile)
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to layer a config file under the environment.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Provider == "" {
		result.Provider = defaults.Provider
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.GeminiAPIKey == "" {
		result.GeminiAPIKey = defaults.GeminiAPIKey
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.BaseURL == "" {
		result.BaseURL = defaults.BaseURL
	}
	if result.Profile == "" {
		result.Profile = defaults.Profile
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.JWTSecret == "" {
		result.JWTSecret = defaults.JWTSecret
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	// Bools only ever switch on
	result.Mock = result.Mock || defaults.Mock
	result.Verbose = result.Verbose || defaults.Verbose

	return result
}

// Load reads the environment and, when path is set, layers the file under it.
func Load(path string) (*Config, error) {
	cfg, err := FromEnv()
	if err != nil {
		return nil, err
	}

	if path != "" {
		file, err := LoadConfig(path)
		if err != nil {
			return nil, err
		}
		merged := cfg.MergeWithDefaults(*file)
		cfg = &merged
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ListenPort returns the configured port or DefaultPort.
func (c *Config) ListenPort() int {
	if c.Port == 0 {
		return DefaultPort
	}
	return c.Port
}

// DefaultProfile returns the configured reading profile or "standard".
func (c *Config) DefaultProfile() string {
	if c.Profile == "" {
		return profiles.Standard
	}
	return profiles.Normalize(c.Profile)
}

// LLMConfig converts the settings into text-generation client configuration.
// Mock mode and a missing key both produce a disabled client.
func (c *Config) LLMConfig() *llm.Config {
	provider := llm.Provider(strings.ToLower(c.Provider))
	if provider == "" {
		provider = llm.ProviderOpenAI
	}

	cfg := &llm.Config{
		Provider: provider,
		APIKey:   c.APIKey,
		BaseURL:  c.BaseURL,
		Disabled: c.Mock,
	}
	if provider == llm.ProviderGemini && c.GeminiAPIKey != "" {
		cfg.APIKey = c.GeminiAPIKey
	}
	if c.Model != "" {
		cfg.Models = []string{c.Model}
	}
	return cfg
}
