package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ErikSvanes/flashcards/internal/adapter"
	"github.com/ErikSvanes/flashcards/internal/logger"
	"github.com/ErikSvanes/flashcards/models"
)

// Pusher replays the change queue against the remote store.
type Pusher struct {
	queue  *ChangeQueue
	remote adapter.RemoteStore
	auth   AuthProvider
	status *StatusHub

	// mu serializes drains. A drain never stops before the end of its
	// snapshot.
	mu  sync.Mutex
	now func() time.Time

	logger *logger.Logger
}

func NewPusher(queue *ChangeQueue, remote adapter.RemoteStore, auth AuthProvider, status *StatusHub, logger *logger.Logger) *Pusher {
	return &Pusher{
		queue:  queue,
		remote: remote,
		auth:   auth,
		status: status,
		now:    time.Now,
		logger: logger,
	}
}

// Run drains the queue once.
//
// Without a session it returns false and leaves the queue and the status
// alone. An empty queue returns true. Otherwise every entry of the snapshot
// is replayed in order; entries the remote store rejects stay queued and the
// status becomes error. Run returns true only when every entry succeeded.
func (p *Pusher) Run(ctx context.Context) bool {
	if !p.auth.IsAuthenticated(ctx) {
		return false
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	log := logger.FromContextOr(ctx, p.logger)

	snapshot, err := p.queue.Drain(ctx)
	if err != nil {
		log.Err(err).Str("func", "*Pusher.Run").Msg("error reading change queue")
		return false
	}
	if len(snapshot) == 0 {
		return true
	}

	p.status.Publish(models.SyncSyncing, len(snapshot))

	var result DrainResult
	for _, entry := range snapshot {
		if err := p.replay(ctx, entry.Change); err != nil {
			log.Warn().Err(err).
				Uint64("entry_id", entry.ID).
				Str("kind", string(entry.Change.Kind())).
				Str("target_id", entry.Change.TargetID()).
				Msg("pending change was not applied, keeping it queued")
			result.Failed = append(result.Failed, entry.ID)
			continue
		}
		result.Succeeded = append(result.Succeeded, entry.ID)
	}
	result.FinishedAt = p.now()

	left, err := p.queue.Ack(ctx, result)
	if err != nil {
		log.Err(err).Str("func", "*Pusher.Run").Msg("error acknowledging drain")
		p.status.Publish(models.SyncError, len(snapshot))
		return false
	}

	if len(result.Failed) > 0 {
		log.Info().Int("failed", len(result.Failed)).Int("succeeded", len(result.Succeeded)).Msg("push finished with failures")
		// left may also count changes enqueued during the drain
		p.status.Publish(models.SyncError, len(result.Failed))
		return false
	}

	log.Debug().Int("pushed", len(result.Succeeded)).Msg("push finished")
	p.status.Publish(models.SyncIdle, left)
	return true
}

// replay sends one change. Every write is an upsert keyed by the
// client-assigned id or an idempotent delete.
func (p *Pusher) replay(ctx context.Context, change models.Change) error {
	var err error

	switch c := change.(type) {
	case models.AddSet:
		err = p.remote.UpsertSet(ctx, c.Data.ID, models.FullSetUpdate(c.Data))
		if err == nil {
			err = p.upsertCards(ctx, c.Data.ID, c.Data.Cards)
		}
	case models.UpdateSet:
		err = p.remote.UpsertSet(ctx, c.SetID, c.Updates)
	case models.DeleteSet:
		err = p.remote.DeleteSet(ctx, c.SetID)
	case models.AddCard:
		err = p.remote.UpsertCard(ctx, c.SetID, c.Data)
	case models.EditCard:
		err = p.remote.UpsertCard(ctx, c.SetID, c.Data)
	case models.DeleteCard:
		err = p.remote.DeleteCard(ctx, c.SetID, c.CardID)
	case models.AddFolder:
		err = p.remote.UpsertFolder(ctx, c.Data.ID, models.FullFolderUpdate(c.Data))
	case models.UpdateFolder:
		err = p.remote.UpsertFolder(ctx, c.FolderID, c.Updates)
	case models.DeleteFolder:
		err = p.remote.DeleteFolder(ctx, c.FolderID)
	default:
		err = fmt.Errorf("%w: %T", models.ErrUnknownChangeKind, change)
	}

	if err != nil {
		return fmt.Errorf("%w: %s %s: %w", ErrRemoteOperationFailed, change.Kind(), change.TargetID(), err)
	}
	return nil
}

func (p *Pusher) upsertCards(ctx context.Context, setID string, cards []models.Card) error {
	for _, card := range cards {
		if err := p.remote.UpsertCard(ctx, setID, card); err != nil {
			return fmt.Errorf("card %s: %w", card.ID, err)
		}
	}
	return nil
}
