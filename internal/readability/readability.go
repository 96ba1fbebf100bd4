// Package readability estimates reading grade with a Flesch-Kincaid style formula.
package readability

import (
	"fmt"
	"math"
	"regexp"
	"strings"
)

var (
	sentenceMarkRe = regexp.MustCompile(`[.!?]+`)
	wordRe         = regexp.MustCompile(`\b[\w'-]+\b`)
	nonLetterRe    = regexp.MustCompile(`[^a-z]`)
	vowelRunRe     = regexp.MustCompile(`[aeiouy]+`)
)

// Band labels, lowest grade first
const (
	LevelVeryEasy = "Very easy"
	LevelEasy     = "Easy"
	LevelModerate = "Moderate"
	LevelAdvanced = "Advanced"
	LevelComplex  = "Complex"
)

// MinGrade is the floor applied to every grade estimate.
const MinGrade = 1.0

// EstimateGrade returns the reading grade of text, rounded to one decimal and never below 1.
func EstimateGrade(text string) float64 {
	sentences := max(len(sentenceMarkRe.FindAllStringIndex(text, -1)), 1)

	words := wordRe.FindAllString(text, -1)
	if len(words) == 0 {
		return MinGrade
	}

	syllables := 0
	for _, w := range words {
		syllables += CountSyllables(w)
	}

	wordCount := float64(len(words))
	grade := 0.39*(wordCount/float64(sentences)) + 11.8*(float64(syllables)/wordCount) - 15.59
	return math.Max(MinGrade, roundTenth(grade))
}

// CountSyllables estimates the syllables in a word by counting vowel runs.
func CountSyllables(word string) int {
	cleaned := nonLetterRe.ReplaceAllString(strings.ToLower(word), "")
	if len(cleaned) <= 3 {
		return 1
	}

	cleaned = strings.TrimSuffix(cleaned, "e")
	return max(len(vowelRunRe.FindAllStringIndex(cleaned, -1)), 1)
}

// FormatLevel maps a grade to its band label, e.g. "Easy (Grade 5.2)".
func FormatLevel(grade float64) string {
	if math.IsNaN(grade) || math.IsInf(grade, 0) {
		grade = MinGrade
	}
	grade = math.Max(MinGrade, roundTenth(grade))

	var label string
	switch {
	case grade <= 3:
		label = LevelVeryEasy
	case grade <= 6:
		label = LevelEasy
	case grade <= 8:
		label = LevelModerate
	case grade <= 12:
		label = LevelAdvanced
	default:
		label = LevelComplex
	}
	return fmt.Sprintf("%s (Grade %.1f)", label, grade)
}

// EstimateLevel is FormatLevel(EstimateGrade(text)).
func EstimateLevel(text string) string {
	return FormatLevel(EstimateGrade(text))
}

// ImprovementPercent returns how much lower the simplified grade is, as a percent
// of the original. Positive means the text got easier.
func ImprovementPercent(originalGrade, simplifiedGrade float64) float64 {
	original := math.Max(originalGrade, 0.1)
	simplified := math.Max(simplifiedGrade, 0.1)
	return roundTenth((original - simplified) / original * 100)
}

// roundTenth rounds half up to one decimal place.
func roundTenth(v float64) float64 {
	return math.Floor(v*10+0.5) / 10
}
