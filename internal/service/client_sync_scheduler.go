package service

import (
	"context"
	"sync"
	"time"

	"github.com/ErikSvanes/flashcards/internal/logger"
)

const (
	// DefaultSyncDelay is the quiet period after the last local change before
	// a push runs.
	DefaultSyncDelay = 30 * time.Second

	// DefaultTeardownTimeout bounds the final push on Stop.
	DefaultTeardownTimeout = 10 * time.Second
)

// Scheduler decides when the pusher and the puller run: a debounced push
// after local changes, one pull per lifetime on Start, a best-effort push on
// Stop and immediate pushes on demand.
type Scheduler struct {
	auth   AuthProvider
	queue  *ChangeQueue
	bus    *DataChangeBus
	pusher SyncRunner
	puller SyncRunner

	debouncer       *Debouncer
	teardownTimeout time.Duration
	pullOnce        sync.Once

	mu          sync.Mutex
	runCtx      context.Context
	cancel      context.CancelFunc
	unsubscribe func()
	inflight    sync.WaitGroup

	logger *logger.Logger
}

func NewScheduler(auth AuthProvider, queue *ChangeQueue, bus *DataChangeBus, pusher, puller SyncRunner,
	delay, teardownTimeout time.Duration, logger *logger.Logger) *Scheduler {
	if delay <= 0 {
		delay = DefaultSyncDelay
	}
	if teardownTimeout <= 0 {
		teardownTimeout = DefaultTeardownTimeout
	}

	s := &Scheduler{
		auth:            auth,
		queue:           queue,
		bus:             bus,
		pusher:          pusher,
		puller:          puller,
		teardownTimeout: teardownTimeout,
		logger:          logger,
	}
	s.debouncer = NewDebouncer(delay, s.debouncedPush)
	return s
}

// Start subscribes to local changes and, when logged in, pulls once. The
// pull runs at most once per Scheduler even across Stop and Start. Calling
// Start twice without Stop is a no-op.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	if s.cancel != nil {
		s.mu.Unlock()
		return
	}
	s.runCtx, s.cancel = context.WithCancel(ctx)
	runCtx := s.runCtx
	s.unsubscribe = s.bus.Subscribe(func() { s.onDataChanged(runCtx) })
	s.mu.Unlock()

	if s.auth.IsAuthenticated(ctx) {
		s.pullOnce.Do(func() {
			s.puller.Run(runCtx)
		})
	}
}

// Stop cancels the pending debounce, unsubscribes, waits for a debounced
// push in flight and then, when logged in with changes pending, pushes once
// more within the teardown timeout. A push in flight is never canceled: it
// drains its snapshot before Stop moves on.
func (s *Scheduler) Stop(ctx context.Context) {
	s.mu.Lock()
	if s.cancel == nil {
		s.mu.Unlock()
		return
	}
	s.unsubscribe()
	s.cancel()
	s.runCtx, s.cancel, s.unsubscribe = nil, nil, nil
	s.mu.Unlock()

	s.debouncer.Cancel()
	s.inflight.Wait()

	if !s.auth.IsAuthenticated(ctx) {
		return
	}
	if n, err := s.queue.PendingCount(ctx); err != nil || n == 0 {
		return
	}

	teardownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.teardownTimeout)
	defer cancel()

	if !s.pusher.Run(teardownCtx) {
		logger.FromContextOr(ctx, s.logger).Warn().Str("func", "*Scheduler.Stop").Msg("teardown push left changes queued")
	}
}

// ManualSync pushes immediately. A pending debounce is fired early instead of
// being followed by a second push.
func (s *Scheduler) ManualSync(ctx context.Context) bool {
	if fired, ok := s.debouncer.Fire(); fired {
		return ok
	}
	return s.pusher.Run(ctx)
}

func (s *Scheduler) onDataChanged(ctx context.Context) {
	if !s.auth.IsAuthenticated(ctx) {
		return
	}
	n, err := s.queue.PendingCount(ctx)
	if err != nil {
		logger.FromContextOr(ctx, s.logger).Err(err).Str("func", "*Scheduler.onDataChanged").Msg("error counting pending changes")
		return
	}
	if n > 0 {
		s.debouncer.Schedule(time.Now())
	}
}

func (s *Scheduler) debouncedPush() bool {
	s.mu.Lock()
	ctx := s.runCtx
	if ctx == nil {
		s.mu.Unlock()
		return false
	}
	s.inflight.Add(1)
	s.mu.Unlock()
	defer s.inflight.Done()

	// Stop cancels runCtx; the drain keeps its values but not the cancellation.
	return s.pusher.Run(context.WithoutCancel(ctx))
}
