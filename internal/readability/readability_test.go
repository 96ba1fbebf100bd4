package readability

import (
	"math"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateGrade(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected float64
	}{
		{"empty text", "", 1},
		{"punctuation only", "...!?", 1},
		{"very simple", "The cat sat.", 1},
		{"plain two sentences", "The owner must tell the renter before the end of the lease. The renter must pay on time.", 2.3},
		{"legal sentence", "The lessor shall notify the lessee prior to termination.", 8.9},
		{"dense sentence", "Notwithstanding the aforementioned jurisdictional considerations, the municipality's administrative infrastructure necessitates comprehensive reorganization.", 39.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, EstimateGrade(tt.text), 1e-9)
		})
	}
}

func TestEstimateGrade_NeverBelowOne(t *testing.T) {
	inputs := []string{"", " ", "a", "Go. Go. Go.", "42", "!!!", "I am. I am. I am."}
	for _, in := range inputs {
		assert.GreaterOrEqual(t, EstimateGrade(in), 1.0, "input %q", in)
	}
}

func TestCountSyllables(t *testing.T) {
	tests := []struct {
		word     string
		expected int
	}{
		{"a", 1},
		{"the", 1},
		{"cake", 1},
		{"table", 1},
		{"rhythm", 1},
		{"beautiful", 3},
		{"readability", 5},
		{"Simplify!", 3},
		{"1234", 1},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.expected, CountSyllables(tt.word))
		})
	}
}

func TestFormatLevel(t *testing.T) {
	tests := []struct {
		grade    float64
		expected string
	}{
		{0, "Very easy (Grade 1.0)"},
		{-5, "Very easy (Grade 1.0)"},
		{3, "Very easy (Grade 3.0)"},
		{3.04, "Very easy (Grade 3.0)"},
		{3.06, "Easy (Grade 3.1)"},
		{6, "Easy (Grade 6.0)"},
		{7.46, "Moderate (Grade 7.5)"},
		{8, "Moderate (Grade 8.0)"},
		{12, "Advanced (Grade 12.0)"},
		{12.1, "Complex (Grade 12.1)"},
		{39.2, "Complex (Grade 39.2)"},
		{math.NaN(), "Very easy (Grade 1.0)"},
		{math.Inf(1), "Very easy (Grade 1.0)"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatLevel(tt.grade))
		})
	}
}

func TestEstimateLevel_AlwaysBandLabel(t *testing.T) {
	labelRe := regexp.MustCompile(`^(Very easy|Easy|Moderate|Advanced|Complex) \(Grade \d+\.\d\)$`)
	inputs := []string{
		"",
		"Hi.",
		"The lessor shall notify the lessee prior to termination.",
		"Notwithstanding the aforementioned jurisdictional considerations, the municipality's administrative infrastructure necessitates comprehensive reorganization.",
		"no punctuation at all in this one",
	}
	for _, in := range inputs {
		assert.Regexp(t, labelRe, EstimateLevel(in), "input %q", in)
	}
}

func TestImprovementPercent(t *testing.T) {
	tests := []struct {
		name       string
		original   float64
		simplified float64
		expected   float64
	}{
		{"halved", 10, 5, 50},
		{"no change", 4, 4, 0},
		{"got harder", 4, 6, -50},
		{"rounding", 9, 4, 55.6},
		{"zero original clamps", 0, 0, 0},
		{"zero simplified clamps", 1, 0, 90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, ImprovementPercent(tt.original, tt.simplified), 1e-9)
		})
	}
}
