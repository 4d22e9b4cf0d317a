package service

import (
	"cmp"
	"context"
	"errors"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/ErikSvanes/flashcards/models"
)

// fakeAuth is an AuthProvider switched by the test.
type fakeAuth struct {
	authenticated atomic.Bool
	userID        string
}

func newFakeAuth(authenticated bool) *fakeAuth {
	a := &fakeAuth{userID: "u1"}
	a.authenticated.Store(authenticated)
	return a
}

func (a *fakeAuth) IsAuthenticated(context.Context) bool { return a.authenticated.Load() }

func (a *fakeAuth) CurrentUserID(context.Context) string {
	if !a.authenticated.Load() {
		return ""
	}
	return a.userID
}

var errRemoteDown = errors.New("remote down")

// fakeRemote is an in-memory backend with the upsert and idempotent delete
// semantics of the real one. Writes whose target id is in failIDs fail.
type fakeRemote struct {
	mu      sync.Mutex
	sets    map[string]models.Set
	order   []string
	folders map[string]models.Folder
	calls   []string
	failIDs map[string]bool

	fetchErr error
}

func newFakeRemote() *fakeRemote {
	return &fakeRemote{
		sets:    map[string]models.Set{},
		folders: map[string]models.Folder{},
		failIDs: map[string]bool{},
	}
}

func (r *fakeRemote) failOn(ids ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range ids {
		r.failIDs[id] = true
	}
}

func (r *fakeRemote) heal() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failIDs = map[string]bool{}
}

func (r *fakeRemote) callLog() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.calls)
}

func (r *fakeRemote) record(call, id string) error {
	r.calls = append(r.calls, call+":"+id)
	if r.failIDs[id] {
		return errRemoteDown
	}
	return nil
}

func (r *fakeRemote) UpsertSet(_ context.Context, setID string, fields models.SetUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record("upsertSet", setID); err != nil {
		return err
	}
	set, ok := r.sets[setID]
	if !ok {
		set = models.Set{ID: setID, Cards: []models.Card{}}
		r.order = append(r.order, setID)
	}
	r.sets[setID] = fields.Apply(set)
	return nil
}

func (r *fakeRemote) UpsertCard(_ context.Context, setID string, card models.Card) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record("upsertCard", card.ID); err != nil {
		return err
	}
	set, ok := r.sets[setID]
	if !ok {
		return errors.New("parent not found")
	}
	if idx := slices.IndexFunc(set.Cards, func(c models.Card) bool { return c.ID == card.ID }); idx >= 0 {
		set.Cards[idx] = card
	} else {
		set.Cards = append(set.Cards, card)
	}
	r.sets[setID] = set
	return nil
}

func (r *fakeRemote) UpsertFolder(_ context.Context, folderID string, fields models.FolderUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record("upsertFolder", folderID); err != nil {
		return err
	}
	folder, ok := r.folders[folderID]
	if !ok {
		folder = models.Folder{ID: folderID}
	}
	r.folders[folderID] = fields.Apply(folder)
	return nil
}

func (r *fakeRemote) DeleteSet(_ context.Context, setID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record("deleteSet", setID); err != nil {
		return err
	}
	delete(r.sets, setID)
	r.order = slices.DeleteFunc(r.order, func(id string) bool { return id == setID })
	return nil
}

func (r *fakeRemote) DeleteCard(_ context.Context, setID, cardID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record("deleteCard", cardID); err != nil {
		return err
	}
	if set, ok := r.sets[setID]; ok {
		set.Cards = slices.DeleteFunc(set.Cards, func(c models.Card) bool { return c.ID == cardID })
		r.sets[setID] = set
	}
	return nil
}

func (r *fakeRemote) DeleteFolder(_ context.Context, folderID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record("deleteFolder", folderID); err != nil {
		return err
	}
	delete(r.folders, folderID)
	return nil
}

func (r *fakeRemote) FetchAllSets(_ context.Context, _ string) ([]models.Set, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fetchErr != nil {
		return nil, r.fetchErr
	}
	out := make([]models.Set, 0, len(r.order))
	for _, id := range r.order {
		set := r.sets[id]
		set.Cards = slices.Clone(set.Cards)
		out = append(out, set)
	}
	return out, nil
}

func (r *fakeRemote) FetchAllFolders(_ context.Context, _ string) ([]models.Folder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fetchErr != nil {
		return nil, r.fetchErr
	}
	out := make([]models.Folder, 0, len(r.folders))
	for _, f := range r.folders {
		out = append(out, f)
	}
	slices.SortFunc(out, func(a, b models.Folder) int { return cmp.Compare(a.ID, b.ID) })
	return out, nil
}

// hookedRemote runs beforeDelete ahead of every DeleteSet. A non-nil error
// from the hook is returned instead of deleting.
type hookedRemote struct {
	*fakeRemote
	beforeDelete func(ctx context.Context, setID string) error
}

func (r *hookedRemote) DeleteSet(ctx context.Context, setID string) error {
	if err := r.beforeDelete(ctx, setID); err != nil {
		return err
	}
	return r.fakeRemote.DeleteSet(ctx, setID)
}

// statusRecorder collects published statuses.
type statusRecorder struct {
	mu     sync.Mutex
	events []statusEvent
}

type statusEvent struct {
	status  models.SyncStatus
	pending int
}

func (r *statusRecorder) handle(status models.SyncStatus, pending int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, statusEvent{status: status, pending: pending})
}

func (r *statusRecorder) all() []statusEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.events)
}
