package ingestion

import (
	"regexp"
	"strings"
)

// dotPlaceholder stands in for the dot of a decimal number while splitting.
const dotPlaceholder = "__READABLE_DOT__"

var (
	decimalDotRe    = regexp.MustCompile(`(\d)\.(\d)`)
	sentenceBreakRe = regexp.MustCompile(`[.!?]\s+`)
)

// SplitSentences splits text on whitespace that follows '.', '!' or '?'.
// Decimal numbers such as "3.5" are never split. Empty segments are dropped
// and document order is preserved.
func SplitSentences(text string) []string {
	protected := decimalDotRe.ReplaceAllString(text, "${1}"+dotPlaceholder+"${2}")

	var sentences []string
	start := 0
	for _, loc := range sentenceBreakRe.FindAllStringIndex(protected, -1) {
		// keep the terminal mark with its sentence, drop the whitespace run
		sentences = appendSentence(sentences, protected[start:loc[0]+1])
		start = loc[1]
	}
	sentences = appendSentence(sentences, protected[start:])
	return sentences
}

func appendSentence(sentences []string, segment string) []string {
	segment = strings.TrimSpace(strings.ReplaceAll(segment, dotPlaceholder, "."))
	if segment == "" {
		return sentences
	}
	return append(sentences, segment)
}
