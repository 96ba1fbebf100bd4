// Package types provides type definitions for structured data used throughout ReadAble.
package types

// SimplificationResult is produced fresh for every simplification request.
// ModelUsed is nil when the local rule-based pipeline produced the result.
type SimplificationResult struct {
	Simplified   string  `json:"simplified"`
	Summary      string  `json:"summary"`
	ReadingLevel string  `json:"readingLevel"`
	ModelUsed    *string `json:"modelUsed"`
}

// UsedModel reports whether an external model produced the result.
func (r SimplificationResult) UsedModel() bool {
	return r.ModelUsed != nil
}

// SimplifyResponse is the caller-facing view of a simplification, with reading
// levels recomputed locally for both the input and the output.
type SimplifyResponse struct {
	Simplified             string  `json:"simplified"`
	Summary                string  `json:"summary"`
	ReadingLevel           string  `json:"readingLevel"`
	OriginalReadingLevel   string  `json:"originalReadingLevel"`
	SimplifiedReadingLevel string  `json:"simplifiedReadingLevel"`
	ImprovementPercent     float64 `json:"improvementPercent"`
	ReadingProfile         string  `json:"readingProfile"`
	ModelUsed              *string `json:"modelUsed"`
	HistoryID              *string `json:"historyId"`
}

// TranslateResponse is returned for translation requests
type TranslateResponse struct {
	Translated     string `json:"translated"`
	TargetLanguage string `json:"targetLanguage"`
}
