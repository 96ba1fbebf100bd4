// Package llm - util.go provides shared utilities for LLM response processing.
package llm

import (
	"encoding/json"
	"regexp"
	"strings"
)

var (
	fencedJSONRe = regexp.MustCompile("(?is)```json\\s*(.*?)```")
	braceSpanRe  = regexp.MustCompile(`(?s)\{.*\}`)
)

// CleanJSONBlock removes markdown code block wrappers from JSON responses.
// LLMs often wrap JSON in ```json ... ``` blocks even when instructed not to.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)

	if m := fencedJSONRe.FindStringSubmatch(text); m != nil && strings.TrimSpace(m[1]) != "" {
		return strings.TrimSpace(m[1])
	}

	// Handle generic ``` ... ``` blocks
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		// Skip potential language identifier on first line
		if idx := strings.Index(text, "\n"); idx >= 0 {
			firstLine := text[:idx]
			if len(firstLine) < 20 && !strings.Contains(firstLine, " ") && !strings.Contains(firstLine, "{") {
				text = text[idx+1:]
			}
		}
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		return strings.TrimSpace(text)
	}

	return text
}

// ParseJSONObject extracts a JSON object from model output. It unwraps code
// fences, then tries the whole text, then the span from the first '{' to the
// last '}'. ok is false when none of these decode to an object.
func ParseJSONObject(content string) (obj map[string]any, ok bool) {
	content = CleanJSONBlock(content)

	if err := json.Unmarshal([]byte(content), &obj); err == nil && obj != nil {
		return obj, true
	}

	span := braceSpanRe.FindString(content)
	if span == "" {
		return nil, false
	}
	obj = nil
	if err := json.Unmarshal([]byte(span), &obj); err != nil || obj == nil {
		return nil, false
	}
	return obj, true
}
