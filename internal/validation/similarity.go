// Package validation decides whether a candidate rewrite is simplified enough
// for a reading profile.
package validation

import (
	"regexp"
	"strings"

	"github.com/SuyashSrivastava1/ReadAble/internal/ingestion"
)

var nonAlphanumericRe = regexp.MustCompile(`[^a-z0-9\s]`)

// normalizeForCompare lower-cases text and reduces it to single-spaced alphanumeric words.
func normalizeForCompare(text string) []string {
	return strings.Fields(nonAlphanumericRe.ReplaceAllString(strings.ToLower(text), " "))
}

// SimilarityRatio is the bag-of-words overlap of a and b: the shared word count,
// with multiplicity, divided by the longer side's word count. It is 0 when
// either side has no words.
func SimilarityRatio(a, b string) float64 {
	aWords := normalizeForCompare(a)
	bWords := normalizeForCompare(b)
	if len(aWords) == 0 || len(bWords) == 0 {
		return 0
	}

	aCounts := countWords(aWords)
	bCounts := countWords(bWords)

	common := 0
	for word, count := range aCounts {
		common += min(count, bCounts[word])
	}
	return float64(common) / float64(max(len(aWords), len(bWords)))
}

// AverageWordsPerSentence returns the mean word count over the sentences of text.
func AverageWordsPerSentence(text string) float64 {
	sentences := ingestion.SplitSentences(text)
	if len(sentences) == 0 {
		return 0
	}

	total := 0
	for _, sentence := range sentences {
		total += ingestion.CountWords(sentence)
	}
	return float64(total) / float64(len(sentences))
}

func countWords(words []string) map[string]int {
	counts := make(map[string]int, len(words))
	for _, word := range words {
		counts[word]++
	}
	return counts
}
