package ingestion

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// StripMarkup removes HTML tags from text and keeps the text content.
// Script and style bodies are discarded. Text without markup is returned unchanged.
func StripMarkup(text string) (string, error) {
	if !strings.ContainsAny(text, "<&") {
		return text, nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(text))
	if err != nil {
		return "", fmt.Errorf("failed to parse markup: %w", err)
	}

	doc.Find("script, style, noscript, iframe, template").Remove()

	// <br> carries a line break that Text() would otherwise lose
	doc.Find("br").ReplaceWithHtml("\n")

	return doc.Find("body").Text(), nil
}
