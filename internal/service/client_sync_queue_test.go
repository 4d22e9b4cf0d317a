package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ErikSvanes/flashcards/internal/logger"
	"github.com/ErikSvanes/flashcards/internal/mock"
	"github.com/ErikSvanes/flashcards/internal/store"
	"github.com/ErikSvanes/flashcards/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestQueue(t *testing.T) (*ChangeQueue, *store.MemoryLocalStorage, *DataChangeBus) {
	t.Helper()
	local := store.NewMemoryLocalStorage()
	bus := NewDataChangeBus()
	return NewChangeQueue(local, bus, logger.Nop()), local, bus
}

func changesOf(entries []models.PendingChange) []models.Change {
	out := make([]models.Change, len(entries))
	for i, e := range entries {
		out[i] = e.Change
	}
	return out
}

func enqueueAll(t *testing.T, q *ChangeQueue, changes ...models.Change) {
	t.Helper()
	for _, c := range changes {
		require.NoError(t, q.Enqueue(context.Background(), c))
	}
}

func TestChangeQueue_Enqueue(t *testing.T) {
	card := models.Card{ID: "c1", Term: "t", Definition: "d"}
	edited := models.Card{ID: "c1", Term: "t2", Definition: "d2"}

	tests := []struct {
		name string
		in   []models.Change
		want []models.Change
	}{
		{
			name: "appends in order",
			in: []models.Change{
				models.AddFolder{Data: models.Folder{ID: "f1"}},
				models.AddSet{Data: models.Set{ID: "s1", ParentID: "f1"}},
				models.DeleteCard{SetID: "s1", CardID: "c9"},
			},
			want: []models.Change{
				models.AddFolder{Data: models.Folder{ID: "f1"}},
				models.AddSet{Data: models.Set{ID: "s1", ParentID: "f1"}},
				models.DeleteCard{SetID: "s1", CardID: "c9"},
			},
		},
		{
			name: "updateSet latest wins and moves to the tail",
			in: []models.Change{
				models.UpdateSet{SetID: "s1", Updates: models.SetUpdate{Name: strPtr("A")}},
				models.DeleteSet{SetID: "s2"},
				models.UpdateSet{SetID: "s1", Updates: models.SetUpdate{Name: strPtr("B")}},
			},
			want: []models.Change{
				models.DeleteSet{SetID: "s2"},
				models.UpdateSet{SetID: "s1", Updates: models.SetUpdate{Name: strPtr("B")}},
			},
		},
		{
			name: "updateSet keeps only the last update map",
			in: []models.Change{
				models.UpdateSet{SetID: "s1", Updates: models.SetUpdate{Description: strPtr("D")}},
				models.UpdateSet{SetID: "s1", Updates: models.SetUpdate{Name: strPtr("X")}},
			},
			want: []models.Change{
				models.UpdateSet{SetID: "s1", Updates: models.SetUpdate{Name: strPtr("X")}},
			},
		},
		{
			name: "updateFolder keeps only the last update map",
			in: []models.Change{
				models.UpdateFolder{FolderID: "f1", Updates: models.FolderUpdate{Name: strPtr("A")}},
				models.UpdateFolder{FolderID: "f1", Updates: models.FolderUpdate{ParentID: strPtr("f2")}},
			},
			want: []models.Change{
				models.UpdateFolder{FolderID: "f1", Updates: models.FolderUpdate{ParentID: strPtr("f2")}},
			},
		},
		{
			name: "updateSet for different sets both stay",
			in: []models.Change{
				models.UpdateSet{SetID: "s1", Updates: models.SetUpdate{Name: strPtr("A")}},
				models.UpdateSet{SetID: "s2", Updates: models.SetUpdate{Name: strPtr("B")}},
			},
			want: []models.Change{
				models.UpdateSet{SetID: "s1", Updates: models.SetUpdate{Name: strPtr("A")}},
				models.UpdateSet{SetID: "s2", Updates: models.SetUpdate{Name: strPtr("B")}},
			},
		},
		{
			name: "updateFolder latest wins",
			in: []models.Change{
				models.UpdateFolder{FolderID: "f1", Updates: models.FolderUpdate{Name: strPtr("A")}},
				models.UpdateFolder{FolderID: "f1", Updates: models.FolderUpdate{Name: strPtr("B")}},
			},
			want: []models.Change{
				models.UpdateFolder{FolderID: "f1", Updates: models.FolderUpdate{Name: strPtr("B")}},
			},
		},
		{
			name: "editCard merges into queued addCard in place",
			in: []models.Change{
				models.AddSet{Data: models.Set{ID: "s1"}},
				models.AddCard{SetID: "s1", Data: card},
				models.DeleteSet{SetID: "s2"},
				models.EditCard{SetID: "s1", Data: edited},
			},
			want: []models.Change{
				models.AddSet{Data: models.Set{ID: "s1"}},
				models.AddCard{SetID: "s1", Data: edited},
				models.DeleteSet{SetID: "s2"},
			},
		},
		{
			name: "editCard latest wins",
			in: []models.Change{
				models.EditCard{SetID: "s1", Data: card},
				models.EditCard{SetID: "s1", Data: edited},
			},
			want: []models.Change{
				models.EditCard{SetID: "s1", Data: edited},
			},
		},
		{
			name: "editCard of the same card id in another set is kept",
			in: []models.Change{
				models.AddCard{SetID: "s1", Data: card},
				models.EditCard{SetID: "s2", Data: edited},
			},
			want: []models.Change{
				models.AddCard{SetID: "s1", Data: card},
				models.EditCard{SetID: "s2", Data: edited},
			},
		},
		{
			name: "deletes are not reconciled against adds",
			in: []models.Change{
				models.AddSet{Data: models.Set{ID: "s1"}},
				models.DeleteSet{SetID: "s1"},
			},
			want: []models.Change{
				models.AddSet{Data: models.Set{ID: "s1"}},
				models.DeleteSet{SetID: "s1"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, _, _ := newTestQueue(t)
			enqueueAll(t, q, tt.in...)

			entries, err := q.Drain(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want, changesOf(entries))
		})
	}
}

func TestChangeQueue_EntryIDsAreUnique(t *testing.T) {
	q, _, _ := newTestQueue(t)
	enqueueAll(t, q,
		models.AddCard{SetID: "s1", Data: models.Card{ID: "c1"}},
		models.DeleteSet{SetID: "s2"},
	)
	before, err := q.Drain(context.Background())
	require.NoError(t, err)

	enqueueAll(t, q, models.EditCard{SetID: "s1", Data: models.Card{ID: "c1", Term: "x"}})
	after, err := q.Drain(context.Background())
	require.NoError(t, err)

	require.Len(t, after, 2)
	assert.NotEqual(t, before[0].ID, after[0].ID, "merged entry gets a fresh id")
	assert.Equal(t, before[1].ID, after[1].ID)
	assert.Greater(t, after[0].ID, after[1].ID)
}

func TestChangeQueue_EnqueueNotifiesBus(t *testing.T) {
	q, _, bus := newTestQueue(t)
	notified := 0
	unsubscribe := bus.Subscribe(func() { notified++ })

	enqueueAll(t, q,
		models.AddCard{SetID: "s1", Data: models.Card{ID: "c1"}},
		models.EditCard{SetID: "s1", Data: models.Card{ID: "c1"}},
	)
	assert.Equal(t, 2, notified, "a merge still notifies")

	unsubscribe()
	enqueueAll(t, q, models.DeleteSet{SetID: "s1"})
	assert.Equal(t, 2, notified)
}

func TestChangeQueue_Ack(t *testing.T) {
	ctx := context.Background()
	q, _, _ := newTestQueue(t)
	enqueueAll(t, q,
		models.DeleteSet{SetID: "s1"},
		models.DeleteSet{SetID: "s2"},
		models.DeleteSet{SetID: "s3"},
	)
	snapshot, err := q.Drain(ctx)
	require.NoError(t, err)

	// enqueued while the drain was running
	enqueueAll(t, q, models.DeleteSet{SetID: "s4"})

	finished := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	left, err := q.Ack(ctx, DrainResult{
		Succeeded:  []uint64{snapshot[0].ID, snapshot[2].ID},
		Failed:     []uint64{snapshot[1].ID},
		FinishedAt: finished,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, left)

	entries, err := q.Drain(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Change{models.DeleteSet{SetID: "s2"}, models.DeleteSet{SetID: "s4"}}, changesOf(entries))

	last, err := q.LastSyncedAt(ctx)
	require.NoError(t, err)
	assert.Nil(t, last, "a drain with failures does not move the last sync time")

	left, err = q.Ack(ctx, DrainResult{Succeeded: []uint64{entries[0].ID, entries[1].ID}, FinishedAt: finished})
	require.NoError(t, err)
	assert.Zero(t, left)

	last, err = q.LastSyncedAt(ctx)
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.True(t, finished.Equal(*last))
}

func TestChangeQueue_AckKeepsEntryMergedDuringDrain(t *testing.T) {
	ctx := context.Background()
	q, _, _ := newTestQueue(t)
	enqueueAll(t, q, models.AddCard{SetID: "s1", Data: models.Card{ID: "c1", Term: "old"}})

	snapshot, err := q.Drain(ctx)
	require.NoError(t, err)

	enqueueAll(t, q, models.EditCard{SetID: "s1", Data: models.Card{ID: "c1", Term: "new"}})

	_, err = q.Ack(ctx, DrainResult{Succeeded: []uint64{snapshot[0].ID}})
	require.NoError(t, err)

	entries, err := q.Drain(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Change{models.AddCard{SetID: "s1", Data: models.Card{ID: "c1", Term: "new"}}}, changesOf(entries))
}

func TestChangeQueue_PersistenceFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	local := mock.NewMockLocalStorage(ctrl)
	bus := NewDataChangeBus()
	q := NewChangeQueue(local, bus, logger.Nop())

	notified := false
	bus.Subscribe(func() { notified = true })

	local.EXPECT().ReadQueue(gomock.Any()).Return(models.QueueState{}, nil)
	local.EXPECT().WriteQueue(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	err := q.Enqueue(context.Background(), models.DeleteSet{SetID: "s1"})
	require.Error(t, err)
	assert.False(t, notified)

	local.EXPECT().ReadQueue(gomock.Any()).Return(models.QueueState{}, errors.New("corrupt"))
	_, err = q.PendingCount(context.Background())
	assert.Error(t, err)
}

func TestChangeQueue_EnqueueNil(t *testing.T) {
	q, _, _ := newTestQueue(t)
	assert.ErrorIs(t, q.Enqueue(context.Background(), nil), models.ErrUnknownChangeKind)
}
