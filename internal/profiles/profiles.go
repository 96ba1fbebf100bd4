// Package profiles provides the fixed catalog of reading profiles that drive simplification.
package profiles

import "strings"

// StructureMode controls how simplified output is laid out.
type StructureMode string

const (
	// StructureParagraph keeps simplified sentences in prose paragraphs
	StructureParagraph StructureMode = "paragraph"
	// StructureLineBreak renders one sentence per line
	StructureLineBreak StructureMode = "line-break"
)

// Profile identifiers
const (
	Child          = "child"
	Standard       = "standard"
	Neurodivergent = "neurodivergent"
	Elderly        = "elderly"
	Academic       = "academic"
)

// ReadingProfile is an immutable bundle of tone, length and vocabulary targets.
type ReadingProfile struct {
	ID                          string        `json:"id"`
	Label                       string        `json:"label"`
	Tone                        string        `json:"tone"`
	SentenceLength              string        `json:"sentenceLength"`
	Vocabulary                  string        `json:"vocabulary"`
	StructureStyle              string        `json:"structureStyle"`
	MaxWordsPerSentence         int           `json:"maxWordsPerSentence"`
	MaxAcceptedWordsPerSentence int           `json:"maxAcceptedWordsPerSentence"`
	SimilarityThreshold         float64       `json:"similarityThreshold"`
	StructureMode               StructureMode `json:"structureMode"`
}

// catalog is built once and never mutated; Get returns copies.
var catalog = []ReadingProfile{
	{
		ID:                          Child,
		Label:                       "Child (Grade 3-5)",
		Tone:                        "Warm, friendly, and encouraging",
		SentenceLength:              "Very short, around 8-12 words",
		Vocabulary:                  "Grade 3-5 everyday words with no jargon",
		StructureStyle:              "Simple short paragraphs with concrete examples",
		MaxWordsPerSentence:         10,
		MaxAcceptedWordsPerSentence: 14,
		SimilarityThreshold:         0.9,
		StructureMode:               StructureParagraph,
	},
	{
		ID:                          Standard,
		Label:                       "Standard adult simplified",
		Tone:                        "Neutral, direct, and practical",
		SentenceLength:              "Short, around 10-16 words",
		Vocabulary:                  "Plain modern words with light simplification",
		StructureStyle:              "Concise paragraphs with clear flow",
		MaxWordsPerSentence:         14,
		MaxAcceptedWordsPerSentence: 20,
		SimilarityThreshold:         0.93,
		StructureMode:               StructureParagraph,
	},
	{
		ID:                          Neurodivergent,
		Label:                       "Neurodivergent",
		Tone:                        "Calm, literal, and predictable",
		SentenceLength:              "Very short, around 6-10 words",
		Vocabulary:                  "Concrete literal words, avoid idioms",
		StructureStyle:              "One idea per line with explicit phrasing",
		MaxWordsPerSentence:         9,
		MaxAcceptedWordsPerSentence: 13,
		SimilarityThreshold:         0.9,
		StructureMode:               StructureLineBreak,
	},
	{
		ID:                          Elderly,
		Label:                       "Elderly",
		Tone:                        "Respectful, patient, and reassuring",
		SentenceLength:              "Short, around 10-14 words",
		Vocabulary:                  "Familiar words with clear transitions",
		StructureStyle:              "Short paragraphs with clear key points",
		MaxWordsPerSentence:         12,
		MaxAcceptedWordsPerSentence: 17,
		SimilarityThreshold:         0.92,
		StructureMode:               StructureParagraph,
	},
	{
		ID:                          Academic,
		Label:                       "Academic",
		Tone:                        "Formal but clear",
		SentenceLength:              "Moderate, around 14-20 words",
		Vocabulary:                  "Keep technical terms but clarify dense phrases",
		StructureStyle:              "Structured paragraphs with explicit connectors",
		MaxWordsPerSentence:         18,
		MaxAcceptedWordsPerSentence: 24,
		SimilarityThreshold:         0.96,
		StructureMode:               StructureParagraph,
	},
}

var byID = func() map[string]int {
	m := make(map[string]int, len(catalog))
	for i, p := range catalog {
		m[p.ID] = i
	}
	return m
}()

// Get returns the profile for id. Unknown ids fall back to the standard profile.
func Get(id string) ReadingProfile {
	if i, ok := byID[Normalize(id)]; ok {
		return catalog[i]
	}
	return catalog[byID[Standard]]
}

// IsKnown reports whether id names one of the catalog profiles.
func IsKnown(id string) bool {
	_, ok := byID[Normalize(id)]
	return ok
}

// All returns every profile in declaration order.
func All() []ReadingProfile {
	out := make([]ReadingProfile, len(catalog))
	copy(out, catalog)
	return out
}

// IDs returns the profile identifiers in declaration order.
func IDs() []string {
	ids := make([]string, len(catalog))
	for i, p := range catalog {
		ids[i] = p.ID
	}
	return ids
}

// Normalize trims and lower-cases a profile id.
func Normalize(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}

// UsesExtraSimpleVocabulary reports whether the profile gets the extra-simple replacement table.
func (p ReadingProfile) UsesExtraSimpleVocabulary() bool {
	switch p.ID {
	case Child, Neurodivergent, Elderly:
		return true
	default:
		return false
	}
}
