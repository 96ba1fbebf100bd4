package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModelCandidates(t *testing.T) {
	tests := []struct {
		name     string
		config   Config
		expected []string
	}{
		{"openai defaults", Config{Provider: ProviderOpenAI}, []string{"gpt-4o-mini", "gpt-4.1-mini"}},
		{"empty provider is openai", Config{}, []string{"gpt-4o-mini", "gpt-4.1-mini"}},
		{"preferred first", Config{Provider: ProviderOpenAI, Models: []string{"gpt-5"}}, []string{"gpt-5", "gpt-4o-mini", "gpt-4.1-mini"}},
		{"preferred duplicate of fallback", Config{Provider: ProviderOpenAI, Models: []string{"gpt-4.1-mini"}}, []string{"gpt-4.1-mini", "gpt-4o-mini"}},
		{"blank preferred ignored", Config{Provider: ProviderOpenAI, Models: []string{" "}}, []string{"gpt-4o-mini", "gpt-4.1-mini"}},
		{"gemini defaults", Config{Provider: ProviderGemini}, []string{"gemini-2.5-flash", "gemini-2.5-flash-lite"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.config.ModelCandidates())
		})
	}
}

func TestNewClient(t *testing.T) {
	ctx := context.Background()

	client, err := NewClient(ctx, nil)
	require.NoError(t, err)
	assert.False(t, client.Available())

	client, err = NewClient(ctx, &Config{Provider: ProviderOpenAI})
	require.NoError(t, err)
	assert.IsType(t, DisabledClient{}, client)

	client, err = NewClient(ctx, &Config{Provider: ProviderOpenAI, APIKey: "sk-test", Disabled: true})
	require.NoError(t, err)
	assert.False(t, client.Available())

	client, err = NewClient(ctx, &Config{Provider: ProviderOpenAI, APIKey: "sk-test"})
	require.NoError(t, err)
	assert.IsType(t, &OpenAIClient{}, client)
	assert.True(t, client.Available())

	_, err = NewClient(ctx, &Config{Provider: "anthropic", APIKey: "key"})
	assert.Error(t, err)
}

func TestDisabledClient(t *testing.T) {
	client := DisabledClient{}
	_, err := client.Complete(context.Background(), []string{"a"}, nil, 0.2)
	assert.ErrorIs(t, err, ErrDisabled)
	assert.NoError(t, client.Close())
}
