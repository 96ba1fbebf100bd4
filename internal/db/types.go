package db

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/SuyashSrivastava1/ReadAble/internal/types"
)

// MaxHistory is the most entries ListHistory returns.
const MaxHistory = 50

// ErrNotFound is returned when a history entry does not exist for the user.
var ErrNotFound = errors.New("history entry not found")

// HistoryEntry is one stored simplification, owned by a user.
type HistoryEntry struct {
	ID                     uuid.UUID         `json:"id"`
	UserID                 uuid.UUID         `json:"userId"`
	OriginalText           string            `json:"originalText"`
	SimplifiedText         string            `json:"simplifiedText"`
	Summary                string            `json:"summary"`
	ReadingLevel           string            `json:"readingLevel"`
	OriginalReadingLevel   string            `json:"originalReadingLevel"`
	SimplifiedReadingLevel string            `json:"simplifiedReadingLevel"`
	ImprovementPercent     float64           `json:"improvementPercent"`
	ReadingProfile         string            `json:"readingProfile"`
	ModelUsed              *string           `json:"modelUsed"`
	Translations           map[string]string `json:"translations"`
	CreatedAt              time.Time         `json:"createdAt"`
}

// NewHistoryEntry builds an unsaved entry from a simplification response.
func NewHistoryEntry(userID uuid.UUID, original string, resp types.SimplifyResponse) *HistoryEntry {
	return &HistoryEntry{
		UserID:                 userID,
		OriginalText:           original,
		SimplifiedText:         resp.Simplified,
		Summary:                resp.Summary,
		ReadingLevel:           resp.ReadingLevel,
		OriginalReadingLevel:   resp.OriginalReadingLevel,
		SimplifiedReadingLevel: resp.SimplifiedReadingLevel,
		ImprovementPercent:     resp.ImprovementPercent,
		ReadingProfile:         resp.ReadingProfile,
		ModelUsed:              resp.ModelUsed,
		Translations:           map[string]string{},
	}
}

// prepare fills the generated fields of a new entry
func (e *HistoryEntry) prepare(now time.Time) {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now.UTC()
	}
	if e.Translations == nil {
		e.Translations = map[string]string{}
	}
}

func clampLimit(limit int) int {
	if limit <= 0 || limit > MaxHistory {
		return MaxHistory
	}
	return limit
}
