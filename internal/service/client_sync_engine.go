package service

import (
	"context"
	"time"

	"github.com/ErikSvanes/flashcards/internal/adapter"
	"github.com/ErikSvanes/flashcards/internal/config"
	"github.com/ErikSvanes/flashcards/internal/logger"
	"github.com/ErikSvanes/flashcards/internal/store"
	"github.com/ErikSvanes/flashcards/models"
)

// SyncEngine owns every piece of client replication state. The data-change
// bus is shared by the queue and the scheduler only. One engine exists per
// local store.
type SyncEngine struct {
	status *StatusHub
	queue  *ChangeQueue
	pusher *Pusher
	puller *Puller

	scheduler *Scheduler
	retryJob  ClientSyncJob

	retryInterval time.Duration

	logger *logger.Logger
}

func NewSyncEngine(local store.LocalStorage, remote adapter.RemoteStore, auth AuthProvider,
	cfg config.ClientWorkers, logger *logger.Logger) *SyncEngine {
	bus := NewDataChangeBus()
	status := NewStatusHub()
	queue := NewChangeQueue(local, bus, logger)
	pusher := NewPusher(queue, remote, auth, status, logger)
	puller := NewPuller(local, remote, auth, queue, status, logger)

	return &SyncEngine{
		status:        status,
		queue:         queue,
		pusher:        pusher,
		puller:        puller,
		scheduler:     NewScheduler(auth, queue, bus, pusher, puller, cfg.SyncDelay, cfg.TeardownTimeout, logger),
		retryJob:      NewClientSyncJob(pusher),
		retryInterval: cfg.SyncInterval,
		logger:        logger,
	}
}

// Start begins scheduling. When logged in it pulls the remote collection
// before returning.
func (e *SyncEngine) Start(ctx context.Context) {
	e.scheduler.Start(ctx)
	e.retryJob.Start(ctx, e.retryInterval)
}

// Stop ends scheduling and pushes pending changes one last time.
func (e *SyncEngine) Stop(ctx context.Context) {
	e.retryJob.Stop()
	e.scheduler.Stop(ctx)
}

// Enqueue implements [Enqueuer].
func (e *SyncEngine) Enqueue(ctx context.Context, change models.Change) error {
	return e.queue.Enqueue(ctx, change)
}

// ManualSync pushes now and reports whether every pending change was applied.
func (e *SyncEngine) ManualSync(ctx context.Context) bool {
	return e.scheduler.ManualSync(ctx)
}

// Pull fetches the remote collection now.
func (e *SyncEngine) Pull(ctx context.Context) bool {
	return e.puller.Run(ctx)
}

func (e *SyncEngine) OnStatusChange(handler StatusHandler) (unsubscribe func()) {
	return e.status.Subscribe(handler)
}

// PendingCount returns the queue length, or 0 when the queue cannot be read.
func (e *SyncEngine) PendingCount(ctx context.Context) int {
	n, err := e.queue.PendingCount(ctx)
	if err != nil {
		logger.FromContextOr(ctx, e.logger).Err(err).Str("func", "*SyncEngine.PendingCount").Msg("error reading change queue")
		return 0
	}
	return n
}

// PendingChanges returns the queued entries in replay order.
func (e *SyncEngine) PendingChanges(ctx context.Context) ([]models.PendingChange, error) {
	return e.queue.Drain(ctx)
}

func (e *SyncEngine) Status() (models.SyncStatus, int) {
	return e.status.Current()
}

func (e *SyncEngine) LastSyncedAt(ctx context.Context) (*time.Time, error) {
	return e.queue.LastSyncedAt(ctx)
}
