//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimplifyRequest_Validation(t *testing.T) {
	tests := []struct {
		name    string
		request SimplifyRequest
		wantErr bool
		field   string
	}{
		{"valid with profile", SimplifyRequest{Text: "Some text.", ReadingProfile: "child"}, false, ""},
		{"valid without profile", SimplifyRequest{Text: "Some text."}, false, ""},
		{"missing text", SimplifyRequest{ReadingProfile: "child"}, true, "Text"},
		{"text too long", SimplifyRequest{Text: strings.Repeat("a", MaxTextLength+1)}, true, "Text"},
		{"unknown profile", SimplifyRequest{Text: "x", ReadingProfile: "pirate"}, true, "ReadingProfile"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var validationErrors validator.ValidationErrors
			require.ErrorAs(t, err, &validationErrors)
			assert.Equal(t, tt.field, validationErrors[0].Field())
		})
	}
}

func TestSimplifyRequest_Normalize(t *testing.T) {
	req := SimplifyRequest{Text: "  hello  ", ReadingProfile: " ELDERLY "}
	req.Normalize()

	assert.Equal(t, "hello", req.Text)
	assert.Equal(t, "elderly", req.Profile())
	assert.NoError(t, req.Validate())

	blank := SimplifyRequest{Text: "   "}
	blank.Normalize()
	assert.Error(t, blank.Validate())
	assert.Equal(t, "standard", blank.Profile())
}

func TestTranslateRequest_Validation(t *testing.T) {
	tests := []struct {
		name    string
		request TranslateRequest
		wantErr bool
	}{
		{"valid", TranslateRequest{Text: "Hi", TargetLanguage: "spanish"}, false},
		{"valid with history id", TranslateRequest{Text: "Hi", TargetLanguage: "hindi", HistoryID: "6a1f8a3e-2c1d-4b7e-9a55-0f1f5e7d9c10"}, false},
		{"missing language", TranslateRequest{Text: "Hi"}, true},
		{"unsupported language", TranslateRequest{Text: "Hi", TargetLanguage: "klingon"}, true},
		{"bad history id", TranslateRequest{Text: "Hi", TargetLanguage: "french", HistoryID: "123"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTranslateRequest_Normalize(t *testing.T) {
	req := TranslateRequest{Text: " Hola ", TargetLanguage: " French", HistoryID: " "}
	req.Normalize()
	assert.Equal(t, TranslateRequest{Text: "Hola", TargetLanguage: "french"}, req)
}

func TestSimplificationResult_JSON(t *testing.T) {
	local, err := json.Marshal(SimplificationResult{Simplified: "A.", Summary: "- A", ReadingLevel: "Very easy (Grade 1.0)"})
	require.NoError(t, err)
	assert.Contains(t, string(local), `"modelUsed":null`)

	model := "gpt-4o-mini"
	res := SimplificationResult{Simplified: "A.", ModelUsed: &model}
	assert.True(t, res.UsedModel())
	assert.False(t, SimplificationResult{}.UsedModel())
}

func TestValidationMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "empty text",
			err:  (&SimplifyRequest{}).Validate(),
			want: "Text cannot be empty",
		},
		{
			name: "long text and bad profile",
			err:  (&SimplifyRequest{Text: strings.Repeat("é", MaxTextLength+1), ReadingProfile: "pirate"}).Validate(),
			want: "Text must be 5000 characters or fewer, Reading profile must be one of: child, standard, neurodivergent, elderly, academic",
		},
		{
			name: "missing language",
			err:  (&TranslateRequest{Text: "Hi"}).Validate(),
			want: "Target language is required",
		},
		{
			name: "bad language and history id",
			err:  (&TranslateRequest{Text: "Hi", TargetLanguage: "klingon", HistoryID: "123"}).Validate(),
			want: "Target language must be one of: english, spanish, hindi, french, historyId must be a valid id",
		},
		{
			name: "plain error",
			err:  assert.AnError,
			want: assert.AnError.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Error(t, tt.err)
			assert.Equal(t, tt.want, ValidationMessage(tt.err))
		})
	}
}

func TestSimplifyRequest_MaxCountsCharacters(t *testing.T) {
	req := SimplifyRequest{Text: strings.Repeat("é", MaxTextLength)}
	assert.NoError(t, req.Validate())
}
