package db

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

//go:embed migrations/sqlite/*.sql
var sqliteMigrations embed.FS

// sqliteTimeLayout is fixed width so text ordering matches time ordering
const sqliteTimeLayout = "2006-01-02T15:04:05.000000000Z"

// LocalDB is a SQLite-backed HistoryStore.
type LocalDB struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) a SQLite database at path and runs pending
// migrations. Pass ":memory:" for an in-memory database.
func OpenSQLite(ctx context.Context, path string) (*LocalDB, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite path is empty")
	}
	if path != ":memory:" {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("creating data directory: %w", err)
			}
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	// One connection: an in-memory database is private to its connection.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}

	s := &LocalDB{db: db}
	if err := s.migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *LocalDB) Close() error {
	return s.db.Close()
}

// migrate applies embedded migrations that have not been recorded yet.
func (s *LocalDB) migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_version (
		name TEXT PRIMARY KEY,
		applied_at TEXT NOT NULL
	)`); err != nil {
		return fmt.Errorf("creating schema_version table: %w", err)
	}

	entries, err := sqliteMigrations.ReadDir("migrations/sqlite")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".sql") {
			continue
		}

		var exists int
		if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM schema_version WHERE name = ?", name).Scan(&exists); err != nil {
			return fmt.Errorf("checking migration %s: %w", name, err)
		}
		if exists > 0 {
			continue
		}

		content, err := sqliteMigrations.ReadFile("migrations/sqlite/" + name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("beginning transaction for migration %s: %w", name, err)
		}
		if _, err := tx.ExecContext(ctx, string(content)); err != nil {
			tx.Rollback()
			return fmt.Errorf("applying migration %s: %w", name, err)
		}
		if _, err := tx.ExecContext(ctx, "INSERT INTO schema_version (name, applied_at) VALUES (?, ?)",
			name, time.Now().UTC().Format(sqliteTimeLayout)); err != nil {
			tx.Rollback()
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("committing migration %s: %w", name, err)
		}
	}
	return nil
}

// SaveHistory inserts a new history entry.
func (s *LocalDB) SaveHistory(ctx context.Context, entry *HistoryEntry) error {
	entry.prepare(time.Now())

	translations, err := json.Marshal(entry.Translations)
	if err != nil {
		return fmt.Errorf("marshalling translations: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO simplification_history (
			id, user_id, original_text, simplified_text, summary, reading_level,
			original_reading_level, simplified_reading_level, improvement_percent,
			reading_profile, model_used, translations, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.ID.String(), entry.UserID.String(), entry.OriginalText, entry.SimplifiedText, entry.Summary, entry.ReadingLevel,
		entry.OriginalReadingLevel, entry.SimplifiedReadingLevel, entry.ImprovementPercent,
		entry.ReadingProfile, entry.ModelUsed, string(translations), entry.CreatedAt.UTC().Format(sqliteTimeLayout),
	)
	if err != nil {
		return fmt.Errorf("saving history: %w", err)
	}
	return nil
}

// ListHistory returns the user's most recent entries.
func (s *LocalDB) ListHistory(ctx context.Context, userID uuid.UUID, limit int) ([]HistoryEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, user_id, original_text, simplified_text, summary, reading_level,
		        original_reading_level, simplified_reading_level, improvement_percent,
		        reading_profile, model_used, translations, created_at
		 FROM simplification_history
		 WHERE user_id = ?
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		userID.String(), clampLimit(limit),
	)
	if err != nil {
		return nil, fmt.Errorf("listing history: %w", err)
	}
	defer rows.Close()

	entries := []HistoryEntry{}
	for rows.Next() {
		var (
			e                       HistoryEntry
			id, owner, translations string
			createdAt               string
			modelUsed               sql.NullString
		)
		if err := rows.Scan(
			&id, &owner, &e.OriginalText, &e.SimplifiedText, &e.Summary, &e.ReadingLevel,
			&e.OriginalReadingLevel, &e.SimplifiedReadingLevel, &e.ImprovementPercent,
			&e.ReadingProfile, &modelUsed, &translations, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("scanning history row: %w", err)
		}

		if e.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("parsing history id: %w", err)
		}
		if e.UserID, err = uuid.Parse(owner); err != nil {
			return nil, fmt.Errorf("parsing user id: %w", err)
		}
		if e.CreatedAt, err = time.Parse(sqliteTimeLayout, createdAt); err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		if modelUsed.Valid {
			model := modelUsed.String
			e.ModelUsed = &model
		}
		if e.Translations, err = decodeTranslations([]byte(translations)); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating history: %w", err)
	}
	return entries, nil
}

// DeleteHistory removes one of the user's entries.
func (s *LocalDB) DeleteHistory(ctx context.Context, userID, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM simplification_history WHERE id = ? AND user_id = ?`,
		id.String(), userID.String(),
	)
	if err != nil {
		return fmt.Errorf("deleting history: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting history: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// SaveTranslation merges one translation into the entry's translation map.
func (s *LocalDB) SaveTranslation(ctx context.Context, userID, id uuid.UUID, language, text string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var raw string
	err = tx.QueryRowContext(ctx,
		`SELECT translations FROM simplification_history WHERE id = ? AND user_id = ?`,
		id.String(), userID.String(),
	).Scan(&raw)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("loading translations: %w", err)
	}

	translations, err := decodeTranslations([]byte(raw))
	if err != nil {
		return err
	}
	translations[language] = text
	encoded, err := json.Marshal(translations)
	if err != nil {
		return fmt.Errorf("marshalling translations: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE simplification_history SET translations = ? WHERE id = ?`,
		string(encoded), id.String(),
	); err != nil {
		return fmt.Errorf("saving translation: %w", err)
	}
	return tx.Commit()
}
