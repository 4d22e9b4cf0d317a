package service

import (
	"sync"

	"github.com/ErikSvanes/flashcards/models"
)

// subscribers is a handler table with removable entries. Handlers are called
// in subscription order and outside the lock, so a handler may subscribe or
// unsubscribe.
type subscribers[F any] struct {
	mu      sync.Mutex
	nextID  uint64
	entries []subscriber[F]
}

type subscriber[F any] struct {
	id uint64
	fn F
}

func (s *subscribers[F]) add(fn F) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := s.nextID
	s.entries = append(s.entries, subscriber[F]{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() { s.remove(id) })
	}
}

func (s *subscribers[F]) remove(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.entries {
		if e.id == id {
			s.entries = append(s.entries[:i:i], s.entries[i+1:]...)
			return
		}
	}
}

func (s *subscribers[F]) snapshot() []F {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]F, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.fn
	}
	return out
}

// DataChangeBus signals that the local collection or the change queue was
// written.
type DataChangeBus struct {
	handlers subscribers[func()]
}

func NewDataChangeBus() *DataChangeBus {
	return &DataChangeBus{}
}

// Subscribe registers handler and returns the function that removes it.
func (b *DataChangeBus) Subscribe(handler func()) (unsubscribe func()) {
	return b.handlers.add(handler)
}

// Notify calls every handler synchronously.
func (b *DataChangeBus) Notify() {
	for _, h := range b.handlers.snapshot() {
		h()
	}
}

// StatusHandler receives the sync status together with the number of
// pending changes.
type StatusHandler func(status models.SyncStatus, pending int)

// StatusHub holds the current sync status and fans changes out to handlers.
type StatusHub struct {
	mu      sync.RWMutex
	status  models.SyncStatus
	pending int

	handlers subscribers[StatusHandler]
}

func NewStatusHub() *StatusHub {
	return &StatusHub{status: models.SyncIdle}
}

// Publish records the status and notifies every handler.
func (h *StatusHub) Publish(status models.SyncStatus, pending int) {
	h.mu.Lock()
	h.status, h.pending = status, pending
	h.mu.Unlock()

	for _, handler := range h.handlers.snapshot() {
		handler(status, pending)
	}
}

// Subscribe registers handler and returns the function that removes it.
func (h *StatusHub) Subscribe(handler StatusHandler) (unsubscribe func()) {
	return h.handlers.add(handler)
}

// Current returns the last published status.
func (h *StatusHub) Current() (models.SyncStatus, int) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.status, h.pending
}
