package db

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SuyashSrivastava1/ReadAble/internal/schemas"
	"github.com/SuyashSrivastava1/ReadAble/internal/types"
	embedded "github.com/SuyashSrivastava1/ReadAble/schemas"
)

func openTestStore(t *testing.T) *LocalDB {
	t.Helper()
	s, err := OpenSQLite(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleEntry(userID uuid.UUID, text string, createdAt time.Time) *HistoryEntry {
	model := "gpt-4o-mini"
	return &HistoryEntry{
		UserID:         userID,
		OriginalText:   text,
		SimplifiedText: "Short. " + text,
		Summary:        "- Short",
		ReadingLevel:   "Easy (Grade 3.0)",
		ReadingProfile: "standard",
		ModelUsed:      &model,
		CreatedAt:      createdAt,
	}
}

func TestLocalDB_SaveAssignsGeneratedFields(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	entry := NewHistoryEntry(uuid.New(), "The lessor shall notify the lessee.", types.SimplifyResponse{
		Simplified:     "The owner must tell the renter.",
		ReadingProfile: "standard",
	})
	require.NoError(t, s.SaveHistory(ctx, entry))

	assert.NotEqual(t, uuid.Nil, entry.ID)
	assert.False(t, entry.CreatedAt.IsZero())
	assert.NotNil(t, entry.Translations)

	list, err := s.ListHistory(ctx, entry.UserID, 0)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, entry.ID, list[0].ID)
	assert.Equal(t, "The owner must tell the renter.", list[0].SimplifiedText)
	assert.Nil(t, list[0].ModelUsed)
	assert.Empty(t, list[0].Translations)
}

func TestLocalDB_ListNewestFirstAndScoped(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	alice, bob := uuid.New(), uuid.New()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	for i, text := range []string{"first", "second", "third"} {
		require.NoError(t, s.SaveHistory(ctx, sampleEntry(alice, text, base.Add(time.Duration(i)*time.Minute))))
	}
	require.NoError(t, s.SaveHistory(ctx, sampleEntry(bob, "other", base)))

	list, err := s.ListHistory(ctx, alice, 10)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{"third", "second", "first"},
		[]string{list[0].OriginalText, list[1].OriginalText, list[2].OriginalText})
	assert.Equal(t, base.Add(2*time.Minute), list[0].CreatedAt)
	require.NotNil(t, list[0].ModelUsed)
	assert.Equal(t, "gpt-4o-mini", *list[0].ModelUsed)

	limited, err := s.ListHistory(ctx, alice, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)

	none, err := s.ListHistory(ctx, uuid.New(), 10)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestLocalDB_ListCapsAtMaxHistory(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	user := uuid.New()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < MaxHistory+5; i++ {
		require.NoError(t, s.SaveHistory(ctx, sampleEntry(user, "text", base.Add(time.Duration(i)*time.Second))))
	}

	list, err := s.ListHistory(ctx, user, 500)
	require.NoError(t, err)
	assert.Len(t, list, MaxHistory)
}

func TestLocalDB_Delete(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	owner := uuid.New()

	entry := sampleEntry(owner, "to delete", time.Now())
	require.NoError(t, s.SaveHistory(ctx, entry))

	assert.ErrorIs(t, s.DeleteHistory(ctx, uuid.New(), entry.ID), ErrNotFound, "other users cannot delete")
	require.NoError(t, s.DeleteHistory(ctx, owner, entry.ID))
	assert.ErrorIs(t, s.DeleteHistory(ctx, owner, entry.ID), ErrNotFound)

	list, err := s.ListHistory(ctx, owner, 0)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestLocalDB_SaveTranslationMerges(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	owner := uuid.New()

	entry := sampleEntry(owner, "hello", time.Now())
	require.NoError(t, s.SaveHistory(ctx, entry))

	require.NoError(t, s.SaveTranslation(ctx, owner, entry.ID, "spanish", "hola"))
	require.NoError(t, s.SaveTranslation(ctx, owner, entry.ID, "french", "bonjour"))
	require.NoError(t, s.SaveTranslation(ctx, owner, entry.ID, "spanish", "buenas"))

	list, err := s.ListHistory(ctx, owner, 0)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, map[string]string{"spanish": "buenas", "french": "bonjour"}, list[0].Translations)

	assert.ErrorIs(t, s.SaveTranslation(ctx, uuid.New(), entry.ID, "hindi", "x"), ErrNotFound)
	assert.ErrorIs(t, s.SaveTranslation(ctx, owner, uuid.New(), "hindi", "x"), ErrNotFound)
}

func TestLocalDB_EntriesMatchSchema(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	owner := uuid.New()

	require.NoError(t, s.SaveHistory(ctx, sampleEntry(owner, "text", time.Now())))
	list, err := s.ListHistory(ctx, owner, 0)
	require.NoError(t, err)
	require.Len(t, list, 1)

	assert.NoError(t, schemas.Validate(embedded.HistoryEntry, list[0]))
}

func TestOpenSQLite_MigrationsIdempotent(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "history.db")

	s1, err := OpenSQLite(ctx, path)
	require.NoError(t, err)
	entry := sampleEntry(uuid.New(), "persisted", time.Now())
	require.NoError(t, s1.SaveHistory(ctx, entry))
	require.NoError(t, s1.Close())

	s2, err := OpenSQLite(ctx, path)
	require.NoError(t, err)
	defer s2.Close()

	var applied int
	require.NoError(t, s2.db.QueryRow("SELECT COUNT(*) FROM schema_version").Scan(&applied))
	assert.Equal(t, 1, applied)

	list, err := s2.ListHistory(ctx, entry.UserID, 0)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestOpen(t *testing.T) {
	_, err := Open(context.Background(), "")
	assert.Error(t, err)

	store, err := Open(context.Background(), "sqlite://:memory:")
	require.NoError(t, err)
	defer store.Close()
	assert.IsType(t, &LocalDB{}, store)
}

func TestOpenSQLite_EmptyPath(t *testing.T) {
	_, err := OpenSQLite(context.Background(), "")
	assert.Error(t, err)
}

func TestClampLimit(t *testing.T) {
	assert.Equal(t, MaxHistory, clampLimit(0))
	assert.Equal(t, MaxHistory, clampLimit(-3))
	assert.Equal(t, MaxHistory, clampLimit(MaxHistory+1))
	assert.Equal(t, 7, clampLimit(7))
}
