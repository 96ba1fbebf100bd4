// Package schemas embeds the JSON Schema documents describing generated
// objects and API payloads.
package schemas

import (
	"embed"
	"fmt"
)

//go:embed *.schema.json
var files embed.FS

// Schema file names.
const (
	SimplificationResponse = "simplification_response.schema.json"
	SimplifyResponse       = "simplify_response.schema.json"
	HistoryEntry           = "history_entry.schema.json"
)

// Load returns the content of an embedded schema.
func Load(name string) (string, error) {
	data, err := files.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("schema %s not found: %w", name, err)
	}
	return string(data), nil
}

// Names lists every embedded schema.
func Names() []string {
	return []string{SimplificationResponse, SimplifyResponse, HistoryEntry}
}
