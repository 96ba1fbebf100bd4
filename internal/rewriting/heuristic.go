package rewriting

import (
	"strings"

	"github.com/SuyashSrivastava1/ReadAble/internal/ingestion"
	"github.com/SuyashSrivastava1/ReadAble/internal/profiles"
	"github.com/SuyashSrivastava1/ReadAble/internal/readability"
	"github.com/SuyashSrivastava1/ReadAble/internal/summary"
	"github.com/SuyashSrivastava1/ReadAble/internal/types"
)

// Rewrite runs the rule-based rewrite over a whole document. Paragraph breaks
// are kept; line-break profiles get one sentence per line.
func Rewrite(text, profileID string) string {
	profile := profiles.Get(profileID)
	normalized := ingestion.NormalizeWhitespace(text)

	var paragraphs []string
	for _, paragraph := range ingestion.SplitParagraphs(normalized) {
		var rewritten []string
		for _, sentence := range ingestion.SplitSentences(paragraph) {
			rewritten = append(rewritten, SimplifySentence(sentence, profile.ID, profile.MaxWordsPerSentence)...)
		}
		paragraphs = append(paragraphs, strings.Join(rewritten, " "))
	}

	simplified := strings.TrimSpace(strings.Join(paragraphs, "\n\n"))
	if simplified == "" {
		simplified = ensureSentenceEnding(normalized)
	}

	if profile.StructureMode == profiles.StructureLineBreak {
		simplified = strings.Join(ingestion.SplitSentences(simplified), "\n")
	}
	return simplified
}

// Heuristic produces a complete result without any external model.
func Heuristic(text, profileID string) types.SimplificationResult {
	simplified := Rewrite(text, profileID)
	return types.SimplificationResult{
		Simplified:   simplified,
		Summary:      summary.ToBulletString(summary.BuildBullets(simplified)),
		ReadingLevel: readability.EstimateLevel(simplified),
	}
}
