package service

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/ErikSvanes/flashcards/internal/logger"
	"github.com/ErikSvanes/flashcards/internal/store"
	"github.com/ErikSvanes/flashcards/models"
)

// DrainResult is the outcome of one push pass over a queue snapshot.
type DrainResult struct {
	// Succeeded and Failed hold entry IDs of the snapshot.
	Succeeded []uint64
	Failed    []uint64

	// FinishedAt becomes the last sync time when Failed is empty.
	FinishedAt time.Time
}

// ChangeQueue is the persisted, ordered log of changes awaiting replication.
// Every read-modify-write of the stored queue happens under one mutex.
type ChangeQueue struct {
	local store.LocalStorage
	bus   *DataChangeBus

	mu sync.Mutex

	logger *logger.Logger
}

func NewChangeQueue(local store.LocalStorage, bus *DataChangeBus, logger *logger.Logger) *ChangeQueue {
	return &ChangeQueue{local: local, bus: bus, logger: logger}
}

// Enqueue inserts change and notifies the data-change bus.
//
// An editCard for a card whose addCard is still queued rewrites that addCard
// in place. Otherwise a newer updateSet, updateFolder or editCard replaces
// any queued change of the same kind for the same entity and moves to the
// tail unchanged: the latest update wins as a whole.
// Only persistence failures are returned.
func (q *ChangeQueue) Enqueue(ctx context.Context, change models.Change) error {
	if change == nil {
		return fmt.Errorf("enqueue: %w", models.ErrUnknownChangeKind)
	}

	q.mu.Lock()
	err := q.update(ctx, func(state models.QueueState) models.QueueState {
		return insertChange(state, change)
	})
	q.mu.Unlock()
	if err != nil {
		logger.FromContextOr(ctx, q.logger).Err(err).
			Str("func", "*ChangeQueue.Enqueue").
			Str("kind", string(change.Kind())).
			Str("target_id", change.TargetID()).
			Msg("error persisting change queue")
		return fmt.Errorf("enqueue %s: %w", change.Kind(), err)
	}

	q.bus.Notify()
	return nil
}

// Drain returns the queued entries in replay order. The queue is not
// modified.
func (q *ChangeQueue) Drain(ctx context.Context) ([]models.PendingChange, error) {
	state, err := q.local.ReadQueue(ctx)
	if err != nil {
		return nil, fmt.Errorf("read change queue: %w", err)
	}
	return state.PendingChanges, nil
}

// Ack removes the succeeded entries. Failed entries and entries enqueued
// after the snapshot keep their positions. The last sync time moves only
// when nothing failed. It returns the number of entries left.
func (q *ChangeQueue) Ack(ctx context.Context, result DrainResult) (int, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	var left int
	err := q.update(ctx, func(state models.QueueState) models.QueueState {
		state.PendingChanges = slices.DeleteFunc(state.PendingChanges, func(p models.PendingChange) bool {
			return slices.Contains(result.Succeeded, p.ID)
		})
		if len(result.Failed) == 0 {
			finishedAt := result.FinishedAt
			state.LastSyncedAt = &finishedAt
		}
		left = len(state.PendingChanges)
		return state
	})
	if err != nil {
		return 0, fmt.Errorf("ack drain: %w", err)
	}
	return left, nil
}

func (q *ChangeQueue) PendingCount(ctx context.Context) (int, error) {
	state, err := q.local.ReadQueue(ctx)
	if err != nil {
		return 0, fmt.Errorf("read change queue: %w", err)
	}
	return len(state.PendingChanges), nil
}

func (q *ChangeQueue) LastSyncedAt(ctx context.Context) (*time.Time, error) {
	state, err := q.local.ReadQueue(ctx)
	if err != nil {
		return nil, fmt.Errorf("read change queue: %w", err)
	}
	return state.LastSyncedAt, nil
}

// update must be called with q.mu held.
func (q *ChangeQueue) update(ctx context.Context, apply func(models.QueueState) models.QueueState) error {
	state, err := q.local.ReadQueue(ctx)
	if err != nil {
		return err
	}
	return q.local.WriteQueue(ctx, apply(state))
}

// insertChange applies the dedup and merge rules and returns the new state.
func insertChange(state models.QueueState, change models.Change) models.QueueState {
	if state.NextID == 0 {
		state.NextID = 1
	}
	id := state.NextID
	state.NextID++

	entries := slices.Clone(state.PendingChanges)

	if edit, ok := change.(models.EditCard); ok {
		for i, p := range entries {
			add, ok := p.Change.(models.AddCard)
			if ok && add.SetID == edit.SetID && add.Data.ID == edit.Data.ID {
				// A fresh ID keeps an in-flight drain of the old payload
				// from acknowledging the merged entry.
				entries[i] = models.PendingChange{ID: id, Change: models.AddCard{SetID: add.SetID, Data: edit.Data}}
				state.PendingChanges = entries
				return state
			}
		}
	}

	entries = slices.DeleteFunc(entries, func(p models.PendingChange) bool {
		return supersedes(change, p.Change)
	})
	state.PendingChanges = append(entries, models.PendingChange{ID: id, Change: change})
	return state
}

// supersedes reports whether incoming makes the queued change obsolete.
func supersedes(incoming, queued models.Change) bool {
	switch in := incoming.(type) {
	case models.UpdateSet:
		q, ok := queued.(models.UpdateSet)
		return ok && q.SetID == in.SetID
	case models.UpdateFolder:
		q, ok := queued.(models.UpdateFolder)
		return ok && q.FolderID == in.FolderID
	case models.EditCard:
		q, ok := queued.(models.EditCard)
		return ok && q.SetID == in.SetID && q.Data.ID == in.Data.ID
	default:
		return false
	}
}
