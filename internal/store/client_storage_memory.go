package store

import (
	"context"
	"slices"
	"sync"

	"github.com/ErikSvanes/flashcards/models"
)

// MemoryLocalStorage is a [LocalStorage] kept in process memory. Values are
// copied on the way in and out so callers never share slices with it.
type MemoryLocalStorage struct {
	mu sync.RWMutex

	sets    []models.Set
	folders []models.Folder
	queue   models.QueueState
	session *models.Session
}

func NewMemoryLocalStorage() *MemoryLocalStorage {
	return &MemoryLocalStorage{}
}

func (m *MemoryLocalStorage) ReadSets(_ context.Context) ([]models.Set, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return cloneSets(m.sets), nil
}

func (m *MemoryLocalStorage) WriteSets(_ context.Context, sets []models.Set) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sets = cloneSets(sets)
	return nil
}

func (m *MemoryLocalStorage) ReadFolders(_ context.Context) ([]models.Folder, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]models.Folder{}, m.folders...), nil
}

func (m *MemoryLocalStorage) WriteFolders(_ context.Context, folders []models.Folder) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.folders = append([]models.Folder{}, folders...)
	return nil
}

func (m *MemoryLocalStorage) ReadQueue(_ context.Context) (models.QueueState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return cloneQueue(m.queue), nil
}

func (m *MemoryLocalStorage) WriteQueue(_ context.Context, state models.QueueState) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queue = cloneQueue(state)
	return nil
}

func (m *MemoryLocalStorage) ReadSession(_ context.Context) (models.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.session == nil {
		return models.Session{}, ErrLocalSessionNotFound
	}
	return *m.session, nil
}

func (m *MemoryLocalStorage) WriteSession(_ context.Context, session models.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session = &session
	return nil
}

func (m *MemoryLocalStorage) ClearSession(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session = nil
	return nil
}

func cloneSets(sets []models.Set) []models.Set {
	out := make([]models.Set, len(sets))
	for i, set := range sets {
		out[i] = set
		out[i].Cards = slices.Clone(set.Cards)
		if out[i].Cards == nil {
			out[i].Cards = []models.Card{}
		}
	}
	return out
}

func cloneQueue(state models.QueueState) models.QueueState {
	out := models.QueueState{
		PendingChanges: append([]models.PendingChange{}, state.PendingChanges...),
		NextID:         state.NextID,
	}
	if state.LastSyncedAt != nil {
		t := *state.LastSyncedAt
		out.LastSyncedAt = &t
	}
	return out
}
