package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	embedded "github.com/SuyashSrivastava1/ReadAble/schemas"
)

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Errors: []FieldError{
			{Field: "name", Message: "is required"},
			{Field: "age", Message: "must be a number"},
		},
	}

	errorMsg := err.Error()
	assert.Contains(t, errorMsg, "validation failed")
	assert.Contains(t, errorMsg, "name")
	assert.Contains(t, errorMsg, "age")
}

func TestSimplificationResponse(t *testing.T) {
	tests := []struct {
		name    string
		obj     map[string]any
		wantErr bool
	}{
		{"full object", map[string]any{"simplified": "Hi.", "summaryBullets": []any{"a", "b"}, "readingLevel": "Easy"}, false},
		{"string summary", map[string]any{"simplified": "Hi.", "summary": "- a\n- b"}, false},
		{"numeric reading level", map[string]any{"simplified": "Hi.", "readingLevel": 4.5}, false},
		{"missing fields allowed", map[string]any{}, false},
		{"null optional fields", map[string]any{"simplified": "Hi.", "summaryBullets": nil, "summary": nil, "readingLevel": nil}, false},
		{"simplified not a string", map[string]any{"simplified": []any{"Hi."}}, true},
		{"bullets wrong type", map[string]any{"summaryBullets": map[string]any{"a": 1}}, true},
		{"reading level bool", map[string]any{"readingLevel": true}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := SimplificationResponse(tt.obj)
			if tt.wantErr {
				var validationErr *ValidationError
				assert.ErrorAs(t, err, &validationErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateBytes_HistoryEntry(t *testing.T) {
	valid := `{"id":"6a1f8a3e-2c1d-4b7e-9a55-0f1f5e7d9c10","originalText":"a","simplifiedText":"b","summary":"- b",` +
		`"readingProfile":"child","modelUsed":null,"translations":{"spanish":"b"},"createdAt":"2026-01-02T03:04:05Z"}`
	assert.NoError(t, ValidateBytes(embedded.HistoryEntry, []byte(valid)))

	err := ValidateBytes(embedded.HistoryEntry, []byte(`{"id":"x"}`))
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.NotEmpty(t, validationErr.Errors)
}

func TestValidate_UnknownSchema(t *testing.T) {
	err := Validate("missing.schema.json", map[string]any{})
	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}
