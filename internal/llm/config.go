// Package llm provides text generation clients and helpers for working with
// their responses. Providers are tried model by model, falling through
// to the next candidate only when a model is unavailable.
package llm

import "strings"

// Provider represents an LLM provider
type Provider string

// Provider constants define supported LLM providers
const (
	// ProviderOpenAI is any OpenAI-compatible chat completions endpoint
	ProviderOpenAI Provider = "openai"
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
)

// DefaultFallbacks lists the models tried after the preferred one, per provider.
var DefaultFallbacks = map[Provider][]string{
	ProviderOpenAI: {"gpt-4o-mini", "gpt-4.1-mini"},
	ProviderGemini: {"gemini-2.5-flash", "gemini-2.5-flash-lite"},
}

// Config holds the provider configuration for the application
type Config struct {
	Provider Provider `json:"provider"`
	APIKey   string   `json:"-"`
	BaseURL  string   `json:"baseUrl,omitempty"`
	Models   []string `json:"models,omitempty"` // preferred model first
	Disabled bool     `json:"disabled,omitempty"`
}

// DefaultConfig returns the default configuration (OpenAI-compatible)
func DefaultConfig() *Config {
	return &Config{Provider: ProviderOpenAI}
}

// ModelCandidates returns the configured models followed by the provider
// fallbacks, without blanks or duplicates.
func (c *Config) ModelCandidates() []string {
	provider := c.Provider
	if provider == "" {
		provider = ProviderOpenAI
	}

	all := make([]string, 0, len(c.Models)+len(DefaultFallbacks[provider]))
	all = append(all, c.Models...)
	all = append(all, DefaultFallbacks[provider]...)
	return uniqueModels(all)
}

func uniqueModels(models []string) []string {
	seen := make(map[string]bool, len(models))
	out := make([]string, 0, len(models))
	for _, model := range models {
		model = strings.TrimSpace(model)
		if model == "" || seen[model] {
			continue
		}
		seen[model] = true
		out = append(out, model)
	}
	return out
}
