// Package ingestion normalizes raw input text and splits it into paragraphs and sentences.
package ingestion

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
)

var (
	horizontalSpaceRe = regexp.MustCompile(`[ \t]+`)
	blankRunRe        = regexp.MustCompile(`\n{3,}`)
	paragraphBreakRe  = regexp.MustCompile(`\n{2,}`)
)

// NormalizeWhitespace collapses horizontal whitespace on each line, trims trailing
// whitespace per line, reduces 3+ newlines to a single blank line and trims the result.
func NormalizeWhitespace(content string) string {
	if content == "" {
		return ""
	}

	// Normalize line endings (CRLF → LF)
	content = strings.ReplaceAll(content, "\r\n", "\n")

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = cleanLine(line)
	}

	result := strings.Join(lines, "\n")
	result = blankRunRe.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

// cleanLine collapses runs of spaces and tabs and trims the line end
func cleanLine(line string) string {
	line = horizontalSpaceRe.ReplaceAllString(line, " ")
	return strings.TrimRight(line, " \t")
}

// SplitParagraphs splits normalized text on blank lines, dropping empty paragraphs.
func SplitParagraphs(content string) []string {
	parts := paragraphBreakRe.Split(content, -1)
	paragraphs := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			paragraphs = append(paragraphs, p)
		}
	}
	return paragraphs
}

// CountWords returns the number of whitespace-separated words in text.
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// ReadInput reads text from path, or from r when path is "-" or empty.
// PDF and DOCX files are converted to text; anything else has markup
// stripped. Whitespace is normalized either way.
func ReadInput(path string, r io.Reader) (string, error) {
	var (
		content []byte
		err     error
	)
	if path == "" || path == "-" {
		content, err = io.ReadAll(r)
		if err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
	} else {
		content, err = os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return "", fmt.Errorf("file not found: %w", err)
			}
			return "", fmt.Errorf("failed to read file: %w", err)
		}
		if IsDocument(path) {
			text, err := ReadDocument(path, content)
			if err != nil {
				return "", err
			}
			return NormalizeWhitespace(text), nil
		}
	}

	text, err := StripMarkup(string(content))
	if err != nil {
		return "", err
	}
	return NormalizeWhitespace(text), nil
}
