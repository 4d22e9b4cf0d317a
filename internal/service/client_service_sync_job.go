package service

import (
	"context"
	"sync"
	"time"

	"github.com/ErikSvanes/flashcards/internal/logger"
)

// clientSyncJob re-runs the push on a fixed period so that changes left in
// the queue by a failed drain are retried without a new local edit.
type clientSyncJob struct {
	runner SyncRunner

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewClientSyncJob returns an idle job around runner.
func NewClientSyncJob(runner SyncRunner) ClientSyncJob {
	return &clientSyncJob{runner: runner}
}

// Start implements [ClientSyncJob].
func (j *clientSyncJob) Start(ctx context.Context, interval time.Duration) {
	j.Stop()
	if interval <= 0 {
		return
	}

	jobCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	j.mu.Lock()
	j.cancel, j.done = cancel, done
	j.mu.Unlock()

	go j.loop(jobCtx, interval, done)
}

func (j *clientSyncJob) loop(ctx context.Context, interval time.Duration, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !j.runner.Run(context.WithoutCancel(ctx)) {
				logger.FromContext(ctx).Debug().Str("func", "*clientSyncJob.loop").Msg("retry left changes queued")
			}
		}
	}
}

// Stop implements [ClientSyncJob]. It is a no-op when the job is idle and
// waits for a run in flight to finish its drain.
func (j *clientSyncJob) Stop() {
	j.mu.Lock()
	cancel, done := j.cancel, j.done
	j.cancel, j.done = nil, nil
	j.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}
