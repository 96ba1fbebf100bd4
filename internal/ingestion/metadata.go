package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// Metadata describes a piece of ingested text
type Metadata struct {
	Source     string `json:"source,omitempty"`
	Timestamp  string `json:"timestamp"` // RFC3339 format
	Hash       string `json:"hash"`      // SHA256 hex digest
	Characters int    `json:"characters"`
	Words      int    `json:"words"`
	Sentences  int    `json:"sentences"`
	Paragraphs int    `json:"paragraphs"`
}

// NewMetadata creates a Metadata instance for normalized content with the current timestamp
func NewMetadata(content string, source string) *Metadata {
	return &Metadata{
		Source:     source,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Hash:       computeHash(content),
		Characters: len([]rune(content)),
		Words:      CountWords(content),
		Sentences:  len(SplitSentences(content)),
		Paragraphs: len(SplitParagraphs(content)),
	}
}

// computeHash computes SHA256 hash of content and returns hex string
func computeHash(content string) string {
	hash := sha256.Sum256([]byte(content))
	return hex.EncodeToString(hash[:])
}

// ToJSON marshals Metadata to pretty-printed JSON
func (m *Metadata) ToJSON() ([]byte, error) {
	jsonBytes, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal metadata to JSON: %w", err)
	}
	return jsonBytes, nil
}
