package simplify

import (
	"context"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SuyashSrivastava1/ReadAble/internal/llm"
	"github.com/SuyashSrivastava1/ReadAble/internal/rewriting"
	"github.com/SuyashSrivastava1/ReadAble/internal/summary"
	"github.com/SuyashSrivastava1/ReadAble/internal/types"
)

func TestChunk(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		limit    int
		expected []string
	}{
		{"empty", "  ", 10, nil},
		{"fits", "Short text.", 20, []string{"Short text."}},
		{"paragraphs packed", "One two.\n\nThree.\n\nFour five six.", 18, []string{"One two.\n\nThree.", "Four five six."}},
		{"long paragraph split on sentences", "Aa bb. Cc dd. Ee ff.", 13, []string{"Aa bb. Cc dd.", "Ee ff."}},
		{"long sentence split on words", "alpha beta gamma delta", 11, []string{"alpha beta", "gamma delta"}},
		{"long word cut", "abcdefghij", 4, []string{"abcd", "efgh", "ij"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Chunk(tt.text, tt.limit))
		})
	}
}

func TestChunk_RespectsLimitAndKeepsWords(t *testing.T) {
	var paragraphs []string
	for i := 0; i < 40; i++ {
		paragraphs = append(paragraphs, strings.Repeat("The tenant pays the rent on time each month. ", 8))
	}
	text := strings.Join(paragraphs, "\n\n")

	chunks := Chunk(text, 1000)
	require.Greater(t, len(chunks), 1)
	for _, chunk := range chunks {
		assert.LessOrEqual(t, utf8.RuneCountInString(chunk), 1000)
	}
	assert.Equal(t, strings.Fields(text), strings.Fields(strings.Join(chunks, " ")))
}

func TestChunk_DefaultLimit(t *testing.T) {
	text := strings.Repeat("word ", types.MaxTextLength/5*2)
	for _, chunk := range Chunk(text, 0) {
		assert.LessOrEqual(t, utf8.RuneCountInString(chunk), types.MaxTextLength)
	}
}

func TestSimplifyDocument_ShortTextMatchesSimplify(t *testing.T) {
	svc := New(nil)

	result, err := svc.SimplifyDocument(context.Background(), legalText, "standard", 2)
	require.NoError(t, err)
	assert.Equal(t, rewriting.Heuristic(legalText, "standard"), result)
}

func TestSimplifyDocument_LongText(t *testing.T) {
	paragraph := strings.Repeat("The lessor shall notify the lessee prior to termination. ", 30)
	text := strings.Join([]string{paragraph, paragraph, paragraph, paragraph}, "\n\n")
	require.Greater(t, utf8.RuneCountInString(text), types.MaxTextLength)

	result, err := New(nil).SimplifyDocument(context.Background(), text, "standard", 0)
	require.NoError(t, err)

	assert.NotContains(t, result.Simplified, "lessor")
	assert.Contains(t, result.Simplified, "The owner must tell the renter before end.")
	assert.Nil(t, result.ModelUsed)
	assert.Len(t, strings.Split(result.Summary, "\n"), summary.BulletCount)
	assert.NotEmpty(t, result.ReadingLevel)
}

func TestSimplifyDocument_Cancelled(t *testing.T) {
	text := strings.Repeat("Rent is due. ", 1000)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(nil).SimplifyDocument(ctx, text, "standard", 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMergeResults(t *testing.T) {
	model := "gpt-4o-mini"
	merged := mergeResults([]types.SimplificationResult{
		{Simplified: "First part."},
		{Simplified: "Second part.", ModelUsed: &model},
		{Simplified: ""},
	})

	assert.Equal(t, "First part.\n\nSecond part.", merged.Simplified)
	require.NotNil(t, merged.ModelUsed)
	assert.Equal(t, model, *merged.ModelUsed)
	assert.True(t, strings.HasPrefix(merged.Summary, "- First part\n- Second part"))
}

func TestSimplifyDocument_UsesModelPerChunk(t *testing.T) {
	paragraph := strings.Repeat("The lessor shall notify the lessee prior to termination. ", 50)
	text := paragraph + "\n\n" + paragraph
	chunks := Chunk(text, types.MaxTextLength)
	require.Len(t, chunks, 2)

	var responses []llm.MockResponse
	for range chunks {
		responses = append(responses, reply(goodJSON))
	}
	client := llm.NewMockClient(responses...)

	result, err := New(client).SimplifyDocument(context.Background(), text, "standard", 1)
	require.NoError(t, err)
	assert.Len(t, client.Calls(), 2)
	require.NotNil(t, result.ModelUsed)
	assert.Equal(t, "The owner must tell the renter before the end.\n\nThe owner must tell the renter before the end.", result.Simplified)
}
