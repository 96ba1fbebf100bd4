package types

// GradeReport describes the readability of one input without rewriting it.
type GradeReport struct {
	Source                  string  `json:"source,omitempty"`
	Grade                   float64 `json:"grade"`
	Level                   string  `json:"level"`
	Words                   int     `json:"words"`
	Sentences               int     `json:"sentences"`
	Paragraphs              int     `json:"paragraphs"`
	AverageWordsPerSentence float64 `json:"averageWordsPerSentence"`
}
