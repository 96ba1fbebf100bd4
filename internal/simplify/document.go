package simplify

import (
	"context"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/SuyashSrivastava1/ReadAble/internal/ingestion"
	"github.com/SuyashSrivastava1/ReadAble/internal/readability"
	"github.com/SuyashSrivastava1/ReadAble/internal/summary"
	"github.com/SuyashSrivastava1/ReadAble/internal/types"
)

// DefaultParallelism bounds concurrent chunk requests in SimplifyDocument.
const DefaultParallelism = 4

// SimplifyDocument simplifies text of any length. Text that fits in one
// request goes straight to Simplify; longer text is split with Chunk and the
// chunks are simplified concurrently, at most parallel at a time. The only
// error is ctx ending before every chunk was processed.
func (s *Service) SimplifyDocument(ctx context.Context, text, profileID string, parallel int) (types.SimplificationResult, error) {
	chunks := Chunk(text, types.MaxTextLength)
	if len(chunks) <= 1 {
		return s.Simplify(ctx, text, profileID), nil
	}
	if parallel <= 0 {
		parallel = DefaultParallelism
	}

	s.logger.Debug("simplifying document in chunks",
		zap.Int("chunks", len(chunks)),
		zap.Int("parallel", parallel),
	)

	results := make([]types.SimplificationResult, len(chunks))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)
	for i, chunk := range chunks {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = s.Simplify(gctx, chunk, profileID)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return types.SimplificationResult{}, err
	}

	return mergeResults(results), nil
}

// mergeResults joins chunk results in order and rebuilds the document-level
// summary and reading level from the joined text.
func mergeResults(results []types.SimplificationResult) types.SimplificationResult {
	parts := make([]string, 0, len(results))
	var modelUsed *string
	for _, r := range results {
		if r.Simplified != "" {
			parts = append(parts, r.Simplified)
		}
		if modelUsed == nil && r.UsedModel() {
			modelUsed = r.ModelUsed
		}
	}

	joined := strings.Join(parts, "\n\n")
	return types.SimplificationResult{
		Simplified:   joined,
		Summary:      summary.ToBulletString(summary.BuildBullets(joined)),
		ReadingLevel: readability.EstimateLevel(joined),
		ModelUsed:    modelUsed,
	}
}

// Chunk splits text into pieces of at most limit characters, keeping
// paragraphs together where they fit. Paragraphs that are too long are split
// between sentences, and sentences that are too long between words.
func Chunk(text string, limit int) []string {
	if limit <= 0 {
		limit = types.MaxTextLength
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if utf8.RuneCountInString(text) <= limit {
		return []string{text}
	}

	var pieces []string
	for _, paragraph := range ingestion.SplitParagraphs(text) {
		pieces = append(pieces, fitParagraph(paragraph, limit)...)
	}
	return pack(pieces, "\n\n", limit)
}

func fitParagraph(paragraph string, limit int) []string {
	if utf8.RuneCountInString(paragraph) <= limit {
		return []string{paragraph}
	}

	var sentences []string
	for _, sentence := range ingestion.SplitSentences(paragraph) {
		sentences = append(sentences, fitSentence(sentence, limit)...)
	}
	return pack(sentences, " ", limit)
}

func fitSentence(sentence string, limit int) []string {
	if utf8.RuneCountInString(sentence) <= limit {
		return []string{sentence}
	}

	var words []string
	for _, word := range strings.Fields(sentence) {
		for utf8.RuneCountInString(word) > limit {
			cut := []rune(word)
			words = append(words, string(cut[:limit]))
			word = string(cut[limit:])
		}
		words = append(words, word)
	}
	return pack(words, " ", limit)
}

// pack greedily joins parts with sep into strings of at most limit
// characters. Every part must already fit.
func pack(parts []string, sep string, limit int) []string {
	var (
		out     []string
		current strings.Builder
		size    int
	)
	sepLen := utf8.RuneCountInString(sep)

	for _, part := range parts {
		n := utf8.RuneCountInString(part)
		if size > 0 && size+sepLen+n > limit {
			out = append(out, current.String())
			current.Reset()
			size = 0
		}
		if size > 0 {
			current.WriteString(sep)
			size += sepLen
		}
		current.WriteString(part)
		size += n
	}
	if size > 0 {
		out = append(out, current.String())
	}
	return out
}
