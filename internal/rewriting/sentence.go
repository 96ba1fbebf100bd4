package rewriting

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultWordLimit is used when no positive word limit is given.
const DefaultWordLimit = 14

var (
	citationRe     = regexp.MustCompile(`\b[A-Za-z-]+\s+\((\d+)\)`)
	parentheticRe  = regexp.MustCompile(`\((.*?)\)`)
	whitespaceRe   = regexp.MustCompile(`\s+`)
	clauseSplitRe  = regexp.MustCompile(`[;:]`)
	commaSplitRe   = regexp.MustCompile(`,\s+`)
	terminalMarkRe = regexp.MustCompile(`[.!?]$`)
)

// SimplifySentence rewrites one sentence into short sentences: citations and
// parentheticals are unwrapped, vocabulary is simplified, clauses and comma
// lists are split and anything longer than wordLimit words is hard-wrapped.
// Output order follows the input; no words are dropped.
func SimplifySentence(sentence, profileID string, wordLimit int) []string {
	if wordLimit <= 0 {
		wordLimit = DefaultWordLimit
	}

	simplified := citationRe.ReplaceAllString(sentence, "$1")
	simplified = parentheticRe.ReplaceAllString(simplified, " $1 ")
	simplified = strings.TrimSpace(whitespaceRe.ReplaceAllString(simplified, " "))

	simplified = SimplifyVocabulary(simplified, profileID)

	chunks := splitNonEmpty(simplified, clauseSplitRe)
	if len(chunks) <= 1 {
		chunks = []string{simplified}
	}

	var subParts []string
	for _, chunk := range chunks {
		subParts = append(subParts, splitNonEmpty(chunk, commaSplitRe)...)
	}
	units := chunks
	if len(subParts) > 1 {
		units = subParts
	}

	var out []string
	for _, unit := range units {
		for _, piece := range SplitByWordLimit(unit, wordLimit) {
			piece = capitalizeFirst(strings.TrimSpace(piece))
			if piece == "" {
				continue
			}
			out = append(out, ensureSentenceEnding(piece))
		}
	}
	return out
}

// SplitByWordLimit breaks text into consecutive groups of at most limit words.
// Text within the limit is returned unchanged.
func SplitByWordLimit(text string, limit int) []string {
	if limit <= 0 {
		limit = DefaultWordLimit
	}

	words := strings.Fields(text)
	if len(words) <= limit {
		return []string{text}
	}

	chunks := make([]string, 0, len(words)/limit+1)
	for i := 0; i < len(words); i += limit {
		end := min(i+limit, len(words))
		chunks = append(chunks, strings.Join(words[i:end], " "))
	}
	return chunks
}

func splitNonEmpty(text string, re *regexp.Regexp) []string {
	var parts []string
	for _, part := range re.Split(text, -1) {
		if part = strings.TrimSpace(part); part != "" {
			parts = append(parts, part)
		}
	}
	return parts
}

// capitalizeFirst upper-cases the first rune
func capitalizeFirst(text string) string {
	r, size := utf8.DecodeRuneInString(text)
	if size == 0 || r == utf8.RuneError {
		return text
	}
	return string(unicode.ToUpper(r)) + text[size:]
}

// ensureSentenceEnding appends a period when text lacks a terminal mark
func ensureSentenceEnding(text string) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || terminalMarkRe.MatchString(trimmed) {
		return trimmed
	}
	return trimmed + "."
}
