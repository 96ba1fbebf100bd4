package db

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed migrations/postgres/schema.sql
var postgresSchema string

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Migrate creates the history table and index when missing
func (db *DB) Migrate(ctx context.Context) error {
	if _, err := db.pool.Exec(ctx, postgresSchema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}

// Close closes the connection pool
func (db *DB) Close() error {
	if db.pool != nil {
		db.pool.Close()
	}
	return nil
}

// SaveHistory inserts a new history entry
func (db *DB) SaveHistory(ctx context.Context, entry *HistoryEntry) error {
	entry.prepare(time.Now())

	translations, err := json.Marshal(entry.Translations)
	if err != nil {
		return fmt.Errorf("failed to marshal translations: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO simplification_history (
			id, user_id, original_text, simplified_text, summary, reading_level,
			original_reading_level, simplified_reading_level, improvement_percent,
			reading_profile, model_used, translations, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		entry.ID, entry.UserID, entry.OriginalText, entry.SimplifiedText, entry.Summary, entry.ReadingLevel,
		entry.OriginalReadingLevel, entry.SimplifiedReadingLevel, entry.ImprovementPercent,
		entry.ReadingProfile, entry.ModelUsed, translations, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save history: %w", err)
	}
	return nil
}

// ListHistory returns the user's most recent entries
func (db *DB) ListHistory(ctx context.Context, userID uuid.UUID, limit int) ([]HistoryEntry, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, original_text, simplified_text, summary, reading_level,
		        original_reading_level, simplified_reading_level, improvement_percent,
		        reading_profile, model_used, translations, created_at
		 FROM simplification_history
		 WHERE user_id = $1
		 ORDER BY created_at DESC
		 LIMIT $2`,
		userID, clampLimit(limit),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	defer rows.Close()

	entries := []HistoryEntry{}
	for rows.Next() {
		var e HistoryEntry
		var translations []byte
		if err := rows.Scan(
			&e.ID, &e.UserID, &e.OriginalText, &e.SimplifiedText, &e.Summary, &e.ReadingLevel,
			&e.OriginalReadingLevel, &e.SimplifiedReadingLevel, &e.ImprovementPercent,
			&e.ReadingProfile, &e.ModelUsed, &translations, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		if e.Translations, err = decodeTranslations(translations); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate history: %w", err)
	}
	return entries, nil
}

// DeleteHistory removes one of the user's entries
func (db *DB) DeleteHistory(ctx context.Context, userID, id uuid.UUID) error {
	tag, err := db.pool.Exec(ctx,
		`DELETE FROM simplification_history WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete history: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// SaveTranslation merges one translation into the entry's JSONB map
func (db *DB) SaveTranslation(ctx context.Context, userID, id uuid.UUID, language, text string) error {
	var updated uuid.UUID
	err := db.pool.QueryRow(ctx,
		`UPDATE simplification_history
		 SET translations = translations || jsonb_build_object($3::text, $4::text)
		 WHERE id = $1 AND user_id = $2
		 RETURNING id`,
		id, userID, language, text,
	).Scan(&updated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to save translation: %w", err)
	}
	return nil
}

func decodeTranslations(raw []byte) (map[string]string, error) {
	translations := map[string]string{}
	if len(raw) == 0 {
		return translations, nil
	}
	if err := json.Unmarshal(raw, &translations); err != nil {
		return nil, fmt.Errorf("failed to decode translations: %w", err)
	}
	return translations, nil
}
