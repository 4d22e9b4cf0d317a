package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/ErikSvanes/flashcards/internal/logger"
	"github.com/ErikSvanes/flashcards/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// localStorages returns a fresh instance of every LocalStorage implementation.
func localStorages(t *testing.T) map[string]LocalStorage {
	t.Helper()

	sqlite, err := NewSQLiteLocalStorage(context.Background(), filepath.Join(t.TempDir(), "data", "local.db"), logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlite.Close() })

	return map[string]LocalStorage{
		"sqlite": sqlite,
		"memory": NewMemoryLocalStorage(),
	}
}

func TestLocalStorage_EmptyReads(t *testing.T) {
	for name, s := range localStorages(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			sets, err := s.ReadSets(ctx)
			require.NoError(t, err)
			assert.NotNil(t, sets)
			assert.Empty(t, sets)

			folders, err := s.ReadFolders(ctx)
			require.NoError(t, err)
			assert.NotNil(t, folders)
			assert.Empty(t, folders)

			queue, err := s.ReadQueue(ctx)
			require.NoError(t, err)
			assert.Empty(t, queue.PendingChanges)
			assert.Zero(t, queue.NextID)
			assert.Nil(t, queue.LastSyncedAt)

			_, err = s.ReadSession(ctx)
			assert.ErrorIs(t, err, ErrLocalSessionNotFound)
		})
	}
}

func TestLocalStorage_SetsAndFolders(t *testing.T) {
	sets := []models.Set{
		{ID: "s1", Name: "Bio", Cards: []models.Card{{ID: "c1", Term: "cell", Definition: "unit"}}},
		{ID: "s2", Name: "Empty", ParentID: "f1", Cards: []models.Card{}},
	}
	folders := []models.Folder{{ID: "f1", Name: "Science"}}

	for name, s := range localStorages(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			require.NoError(t, s.WriteSets(ctx, sets))
			require.NoError(t, s.WriteFolders(ctx, folders))

			gotSets, err := s.ReadSets(ctx)
			require.NoError(t, err)
			assert.Equal(t, sets, gotSets)

			gotFolders, err := s.ReadFolders(ctx)
			require.NoError(t, err)
			assert.Equal(t, folders, gotFolders)

			// overwrite replaces the whole key
			require.NoError(t, s.WriteSets(ctx, sets[1:]))
			gotSets, err = s.ReadSets(ctx)
			require.NoError(t, err)
			assert.Equal(t, sets[1:], gotSets)
		})
	}
}

func TestLocalStorage_Queue(t *testing.T) {
	syncedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	state := models.QueueState{
		NextID: 3,
		PendingChanges: []models.PendingChange{
			{ID: 1, Change: models.AddSet{Data: models.Set{ID: "s1", Name: "Bio", Cards: []models.Card{}}}},
			{ID: 2, Change: models.DeleteCard{SetID: "s1", CardID: "c1"}},
		},
		LastSyncedAt: &syncedAt,
	}

	for name, s := range localStorages(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			require.NoError(t, s.WriteQueue(ctx, state))

			got, err := s.ReadQueue(ctx)
			require.NoError(t, err)
			assert.Equal(t, state.PendingChanges, got.PendingChanges)
			assert.Equal(t, state.NextID, got.NextID)
			require.NotNil(t, got.LastSyncedAt)
			assert.True(t, syncedAt.Equal(*got.LastSyncedAt))

			cleared := state
			cleared.LastSyncedAt = nil
			cleared.PendingChanges = nil
			require.NoError(t, s.WriteQueue(ctx, cleared))

			got, err = s.ReadQueue(ctx)
			require.NoError(t, err)
			assert.Nil(t, got.LastSyncedAt)
			assert.Empty(t, got.PendingChanges)
			assert.Equal(t, uint64(3), got.NextID)
		})
	}
}

func TestLocalStorage_Session(t *testing.T) {
	session := models.Session{
		UserID: "u1",
		Login:  "john",
		Token:  "token",
		At:     time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	for name, s := range localStorages(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			require.NoError(t, s.WriteSession(ctx, session))
			got, err := s.ReadSession(ctx)
			require.NoError(t, err)
			assert.Equal(t, session.UserID, got.UserID)
			assert.Equal(t, session.Token, got.Token)
			assert.True(t, session.At.Equal(got.At))

			require.NoError(t, s.ClearSession(ctx))
			_, err = s.ReadSession(ctx)
			assert.ErrorIs(t, err, ErrLocalSessionNotFound)

			// clearing twice is fine
			assert.NoError(t, s.ClearSession(ctx))
		})
	}
}

func TestSQLiteLocalStorage_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "local.db")

	first, err := NewSQLiteLocalStorage(ctx, path, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, first.WriteFolders(ctx, []models.Folder{{ID: "f1", Name: "Science"}}))
	require.NoError(t, first.Close())

	second, err := NewSQLiteLocalStorage(ctx, path, logger.Nop())
	require.NoError(t, err)
	defer second.Close()

	folders, err := second.ReadFolders(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Folder{{ID: "f1", Name: "Science"}}, folders)
}

func TestSQLiteLocalStorage_CorruptValue(t *testing.T) {
	ctx := context.Background()

	s, err := NewSQLiteLocalStorage(ctx, filepath.Join(t.TempDir(), "local.db"), logger.Nop())
	require.NoError(t, err)
	defer s.Close()

	_, err = s.db.ExecContext(ctx, upsertLocalValue, keySets, "{not json")
	require.NoError(t, err)

	_, err = s.ReadSets(ctx)
	assert.ErrorIs(t, err, ErrEncodingValue)
}

func TestMemoryLocalStorage_CopiesValues(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryLocalStorage()

	sets := []models.Set{{ID: "s1", Name: "Bio", Cards: []models.Card{{ID: "c1"}}}}
	require.NoError(t, s.WriteSets(ctx, sets))

	sets[0].Name = "changed"
	sets[0].Cards[0].Term = "changed"

	got, err := s.ReadSets(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Bio", got[0].Name)
	assert.Empty(t, got[0].Cards[0].Term)

	got[0].Cards = append(got[0].Cards, models.Card{ID: "c2"})
	again, err := s.ReadSets(ctx)
	require.NoError(t, err)
	assert.Len(t, again[0].Cards, 1)
}
