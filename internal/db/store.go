// Package db provides persistence for simplification history. PostgreSQL is
// used in production; SQLite serves local runs and tests.
package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// HistoryStore persists simplification history per user.
type HistoryStore interface {
	// SaveHistory stores entry, assigning its ID and CreatedAt when unset.
	SaveHistory(ctx context.Context, entry *HistoryEntry) error
	// ListHistory returns the user's entries, newest first, at most limit (capped at MaxHistory).
	ListHistory(ctx context.Context, userID uuid.UUID, limit int) ([]HistoryEntry, error)
	// DeleteHistory removes one entry. ErrNotFound when it is absent or owned by someone else.
	DeleteHistory(ctx context.Context, userID, id uuid.UUID) error
	// SaveTranslation records text under language in the entry's translation map.
	SaveTranslation(ctx context.Context, userID, id uuid.UUID, language, text string) error
	Close() error
}

const sqlitePrefix = "sqlite://"

// Open connects to the store named by databaseURL and applies the schema.
// "sqlite://<path>" (or "sqlite://:memory:") selects SQLite; anything else
// is treated as a PostgreSQL connection string.
func Open(ctx context.Context, databaseURL string) (HistoryStore, error) {
	if databaseURL == "" {
		return nil, fmt.Errorf("database URL is empty")
	}

	if path, ok := strings.CutPrefix(databaseURL, sqlitePrefix); ok {
		return OpenSQLite(ctx, path)
	}

	database, err := Connect(ctx, databaseURL)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(ctx); err != nil {
		database.pool.Close()
		return nil, err
	}
	return database, nil
}
