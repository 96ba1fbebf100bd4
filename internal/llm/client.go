package llm

import (
	"context"
	"fmt"
)

// Message roles understood by every provider.
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// Message is one chat turn sent to a provider.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Completion is the text returned by a provider and the model that produced it.
type Completion struct {
	Text  string
	Model string
}

// Client is an abstraction over text generation providers
type Client interface {
	// Available reports whether the client can serve requests at all
	Available() bool
	// Complete tries models in order and returns the first completion.
	// A model that does not exist or is not accessible is skipped; any other
	// error ends the attempt.
	Complete(ctx context.Context, models []string, messages []Message, temperature float32) (*Completion, error)
	// Close releases any resources held by the client
	Close() error
}

// NewClient creates a client based on configuration. A config without an API
// key, or one explicitly disabled, yields a DisabledClient.
func NewClient(ctx context.Context, config *Config) (Client, error) {
	if config == nil || config.Disabled || config.APIKey == "" {
		return DisabledClient{}, nil
	}

	switch config.Provider {
	case ProviderGemini:
		return NewGeminiClient(ctx, config.APIKey)
	case ProviderOpenAI, "":
		return NewOpenAIClient(config.APIKey, config.BaseURL), nil
	default:
		return nil, fmt.Errorf("unsupported provider %q", config.Provider)
	}
}

// DisabledClient is used when no provider is configured.
type DisabledClient struct{}

// Available always returns false
func (DisabledClient) Available() bool { return false }

// Complete always fails with ErrDisabled
func (DisabledClient) Complete(context.Context, []string, []Message, float32) (*Completion, error) {
	return nil, ErrDisabled
}

// Close is a no-op
func (DisabledClient) Close() error { return nil }
