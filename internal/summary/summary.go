// Package summary builds the fixed-size key point list attached to every result.
package summary

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/SuyashSrivastava1/ReadAble/internal/ingestion"
)

const (
	// BulletCount is the exact number of bullets in every summary
	BulletCount = 5
	// Placeholder pads summaries that have fewer key points than BulletCount
	Placeholder = "No additional key point."
)

var (
	trailingMarkRe = regexp.MustCompile(`[.!?]$`)
	whitespaceRe   = regexp.MustCompile(`\s+`)
	bulletGlyphRe  = regexp.MustCompile(`^[-*•]\s*`)
)

// BuildBullets takes the first sentences of text in document order, strips their
// terminal mark and pads the list to BulletCount.
func BuildBullets(text string) []string {
	sentences := ingestion.SplitSentences(text)
	if len(sentences) > BulletCount {
		sentences = sentences[:BulletCount]
	}

	bullets := make([]string, 0, BulletCount)
	for _, sentence := range sentences {
		line := trailingMarkRe.ReplaceAllString(sentence, "")
		line = strings.TrimSpace(whitespaceRe.ReplaceAllString(line, " "))
		if line != "" {
			bullets = append(bullets, line)
		}
	}
	return pad(bullets)
}

// NormalizeBullets cleans bullets produced by a language model. raw may be a
// list of strings or a single newline-delimited string. When nothing usable
// remains the bullets are rebuilt from fallbackText.
func NormalizeBullets(raw any, fallbackText string) []string {
	var bullets []string

	switch v := raw.(type) {
	case []string:
		bullets = append(bullets, v...)
	case []any:
		for _, item := range v {
			bullets = append(bullets, itemString(item))
		}
	case string:
		bullets = strings.Split(v, "\n")
	}

	bullets = clean(bullets)
	if len(bullets) == 0 {
		bullets = clean(BuildBullets(fallbackText))
	}
	if len(bullets) > BulletCount {
		bullets = bullets[:BulletCount]
	}
	return pad(bullets)
}

// ToBulletString renders bullets as "- " prefixed lines.
func ToBulletString(bullets []string) string {
	lines := make([]string, len(bullets))
	for i, b := range bullets {
		lines[i] = "- " + b
	}
	return strings.Join(lines, "\n")
}

func itemString(item any) string {
	switch v := item.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

func clean(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(bulletGlyphRe.ReplaceAllString(strings.TrimSpace(item), ""))
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

func pad(bullets []string) []string {
	for len(bullets) < BulletCount {
		bullets = append(bullets, Placeholder)
	}
	return bullets
}
