package simplify

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SuyashSrivastava1/ReadAble/internal/llm"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name      string
		client    llm.Client
		language  string
		expected  string
		wantCalls int
	}{
		{"english is passthrough", llm.NewMockClient(reply("ignored")), "english", "Hello there.", 0},
		{"english passthrough when disabled", llm.DisabledClient{}, " English ", "Hello there.", 0},
		{"disabled gives placeholder", llm.DisabledClient{}, "spanish", "[Mock Spanish translation]\nHello there.", 0},
		{"model output trimmed", llm.NewMockClient(reply("  Hola.  \n")), "spanish", "Hola.", 1},
		{"blank output gives placeholder", llm.NewMockClient(reply(" \n ")), "hindi", "[Mock Hindi translation]\nHello there.", 1},
		{"error gives placeholder", llm.NewMockClient(llm.MockResponse{Err: errors.New("boom")}), "french", "[Mock French translation]\nHello there.", 1},
		{"language normalised", llm.NewMockClient(reply("Bonjour.")), " FRENCH", "Bonjour.", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := New(tt.client).Translate(context.Background(), "Hello there.", tt.language)
			assert.Equal(t, tt.expected, got)
			if mock, ok := tt.client.(*llm.MockClient); ok {
				assert.Len(t, mock.Calls(), tt.wantCalls)
			}
		})
	}
}

func TestTranslate_Prompt(t *testing.T) {
	client := llm.NewMockClient(reply("Hola."))
	New(client).Translate(context.Background(), "Hello.", "spanish")

	calls := client.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "Translate this text into Spanish and return plain text only:\n\nHello.", calls[0].Messages[1].Content)
}

func TestLanguages(t *testing.T) {
	assert.True(t, IsSupportedLanguage("Hindi"))
	assert.False(t, IsSupportedLanguage("klingon"))
	assert.Equal(t, "Spanish", LanguageName(" spanish "))
	assert.Equal(t, "klingon", LanguageName("Klingon"))
	assert.Equal(t, "[Mock French translation]\nBonjour", Placeholder("Bonjour", "french"))
}
