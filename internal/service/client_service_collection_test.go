package service

import (
	"context"
	"testing"

	"github.com/ErikSvanes/flashcards/internal/logger"
	"github.com/ErikSvanes/flashcards/internal/mock"
	"github.com/ErikSvanes/flashcards/internal/store"
	"github.com/ErikSvanes/flashcards/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type collectionFixture struct {
	local *store.MemoryLocalStorage
	auth  *fakeAuth
	queue *ChangeQueue
	svc   ClientCollectionService
}

func newCollectionFixture(t *testing.T, authenticated bool) *collectionFixture {
	t.Helper()
	local := store.NewMemoryLocalStorage()
	auth := newFakeAuth(authenticated)
	queue := NewChangeQueue(local, NewDataChangeBus(), logger.Nop())
	return &collectionFixture{
		local: local,
		auth:  auth,
		queue: queue,
		svc:   NewClientCollectionService(local, auth, queue, logger.Nop()),
	}
}

func (f *collectionFixture) queued(t *testing.T) []models.Change {
	t.Helper()
	entries, err := f.queue.Drain(context.Background())
	require.NoError(t, err)
	return changesOf(entries)
}

// tree builds
//
//	f1 Languages
//	  f2 Spanish
//	    s2 Verbs
//	  s1 Basics
//	f3 Science
func (f *collectionFixture) tree(t *testing.T) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, f.local.WriteFolders(ctx, []models.Folder{
		{ID: "f1", Name: "Languages"},
		{ID: "f2", Name: "Spanish", ParentID: "f1"},
		{ID: "f3", Name: "Science"},
	}))
	require.NoError(t, f.local.WriteSets(ctx, []models.Set{
		{ID: "s1", Name: "Basics", ParentID: "f1", Cards: []models.Card{{ID: "c1", Term: "hola"}}},
		{ID: "s2", Name: "Verbs", ParentID: "f2", Cards: []models.Card{}},
	}))
}

func TestClientCollection_AddSetAssignsIDs(t *testing.T) {
	ctx := context.Background()
	f := newCollectionFixture(t, true)

	set, err := f.svc.AddSet(ctx, models.Set{Name: "Bio", Cards: []models.Card{{Term: "cell"}, {ID: "keep", Term: "atp"}}})
	require.NoError(t, err)

	assert.NotEmpty(t, set.ID)
	require.Len(t, set.Cards, 2)
	assert.NotEmpty(t, set.Cards[0].ID)
	assert.Equal(t, "keep", set.Cards[1].ID)

	stored, err := f.svc.GetSet(ctx, set.ID)
	require.NoError(t, err)
	assert.Equal(t, set, stored)

	assert.Equal(t, []models.Change{models.AddSet{Data: set}}, f.queued(t))
}

func TestClientCollection_AddSetUnknownParent(t *testing.T) {
	f := newCollectionFixture(t, true)

	_, err := f.svc.AddSet(context.Background(), models.Set{ID: "s1", ParentID: "nope"})
	assert.ErrorIs(t, err, ErrFolderNotFound)
	assert.Empty(t, f.queued(t))
}

func TestClientCollection_WritesWithoutSessionAreNotQueued(t *testing.T) {
	ctx := context.Background()
	f := newCollectionFixture(t, false)

	_, err := f.svc.AddSet(ctx, models.Set{ID: "s1", Name: "Bio"})
	require.NoError(t, err)
	_, err = f.svc.AddCard(ctx, "s1", models.Card{ID: "c1"})
	require.NoError(t, err)

	sets, err := f.svc.GetSets(ctx)
	require.NoError(t, err)
	assert.Len(t, sets, 1)
	assert.Empty(t, f.queued(t))
}

func TestClientCollection_Cards(t *testing.T) {
	ctx := context.Background()
	f := newCollectionFixture(t, true)
	f.tree(t)

	added, err := f.svc.AddCard(ctx, "s1", models.Card{Term: "adios"})
	require.NoError(t, err)
	require.NotEmpty(t, added.ID)

	_, err = f.svc.EditCard(ctx, "s1", models.Card{ID: "c1", Term: "hola", Definition: "hello"})
	require.NoError(t, err)
	require.NoError(t, f.svc.DeleteCard(ctx, "s1", added.ID))

	set, err := f.svc.GetSet(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, []models.Card{{ID: "c1", Term: "hola", Definition: "hello"}}, set.Cards)

	assert.Equal(t, []models.Change{
		models.AddCard{SetID: "s1", Data: added},
		models.EditCard{SetID: "s1", Data: models.Card{ID: "c1", Term: "hola", Definition: "hello"}},
		models.DeleteCard{SetID: "s1", CardID: added.ID},
	}, f.queued(t))
}

func TestClientCollection_NotFound(t *testing.T) {
	ctx := context.Background()
	f := newCollectionFixture(t, true)
	f.tree(t)

	_, err := f.svc.AddCard(ctx, "missing", models.Card{Term: "x"})
	assert.ErrorIs(t, err, ErrSetNotFound)

	_, err = f.svc.EditCard(ctx, "s1", models.Card{ID: "missing"})
	assert.ErrorIs(t, err, ErrCardNotFound)

	assert.ErrorIs(t, f.svc.DeleteCard(ctx, "s1", "missing"), ErrCardNotFound)
	assert.ErrorIs(t, f.svc.DeleteSet(ctx, "missing"), ErrSetNotFound)
	assert.ErrorIs(t, f.svc.DeleteFolder(ctx, "missing"), ErrFolderNotFound)

	_, err = f.svc.UpdateFolder(ctx, "missing", models.FolderUpdate{Name: strPtr("x")})
	assert.ErrorIs(t, err, ErrFolderNotFound)

	_, err = f.svc.GetSet(ctx, "missing")
	assert.ErrorIs(t, err, ErrSetNotFound)

	assert.Empty(t, f.queued(t))
}

func TestClientCollection_UpdateSet(t *testing.T) {
	ctx := context.Background()
	f := newCollectionFixture(t, true)
	f.tree(t)

	updated, err := f.svc.UpdateSet(ctx, "s1", models.SetUpdate{Name: strPtr("Basics 2")})
	require.NoError(t, err)
	assert.Equal(t, "Basics 2", updated.Name)
	assert.Equal(t, "f1", updated.ParentID)

	// empty updates change nothing and queue nothing
	_, err = f.svc.UpdateSet(ctx, "s1", models.SetUpdate{})
	require.NoError(t, err)

	assert.Equal(t, []models.Change{
		models.UpdateSet{SetID: "s1", Updates: models.SetUpdate{Name: strPtr("Basics 2")}},
	}, f.queued(t))
}

func TestClientCollection_DeleteFolderCascades(t *testing.T) {
	ctx := context.Background()
	f := newCollectionFixture(t, true)
	f.tree(t)

	require.NoError(t, f.svc.DeleteFolder(ctx, "f1"))

	folders, err := f.svc.GetFolders(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Folder{{ID: "f3", Name: "Science"}}, folders)

	sets, err := f.svc.GetSets(ctx)
	require.NoError(t, err)
	assert.Empty(t, sets)

	assert.Equal(t, []models.Change{models.DeleteFolder{FolderID: "f1"}}, f.queued(t))
}

func TestClientCollection_MoveItem(t *testing.T) {
	ctx := context.Background()
	f := newCollectionFixture(t, true)
	f.tree(t)

	tests := []struct {
		name    string
		kind    models.ItemKind
		itemID  string
		target  string
		wantErr error
	}{
		{name: "folder into itself", kind: models.ItemFolder, itemID: "f1", target: "f1", wantErr: ErrCircularMove},
		{name: "folder into its child", kind: models.ItemFolder, itemID: "f1", target: "f2", wantErr: ErrCircularMove},
		{name: "folder into unknown", kind: models.ItemFolder, itemID: "f2", target: "nope", wantErr: ErrFolderNotFound},
		{name: "set into unknown", kind: models.ItemSet, itemID: "s1", target: "nope", wantErr: ErrFolderNotFound},
		{name: "unknown kind", kind: "card", itemID: "c1", target: "f1", wantErr: ErrInvalidDataProvided},
		{name: "folder to sibling tree", kind: models.ItemFolder, itemID: "f2", target: "f3"},
		{name: "set to root", kind: models.ItemSet, itemID: "s2", target: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := f.svc.MoveItem(ctx, tt.kind, tt.itemID, tt.target)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}

	path, err := f.svc.GetFolderPath(ctx, "f2")
	require.NoError(t, err)
	assert.Equal(t, []models.Folder{{ID: "f3", Name: "Science"}, {ID: "f2", Name: "Spanish", ParentID: "f3"}}, path)

	set, err := f.svc.GetSet(ctx, "s2")
	require.NoError(t, err)
	assert.Empty(t, set.ParentID)

	assert.Equal(t, []models.Change{
		models.UpdateFolder{FolderID: "f2", Updates: models.FolderUpdate{ParentID: strPtr("f3")}},
		models.UpdateSet{SetID: "s2", Updates: models.SetUpdate{ParentID: strPtr("")}},
	}, f.queued(t))
}

func TestClientCollection_GetItemsInFolder(t *testing.T) {
	ctx := context.Background()
	f := newCollectionFixture(t, true)
	require.NoError(t, f.local.WriteFolders(ctx, []models.Folder{
		{ID: "f1", Name: "zoology"},
		{ID: "f2", Name: "Art"},
		{ID: "f9", Name: "nested", ParentID: "f1"},
	}))
	require.NoError(t, f.local.WriteSets(ctx, []models.Set{
		{ID: "s1", Name: "b-set"},
		{ID: "s2", Name: "A-set"},
		{ID: "s3", Name: "inner", ParentID: "f1"},
	}))

	items, err := f.svc.GetItemsInFolder(ctx, "")
	require.NoError(t, err)

	names := make([]string, len(items))
	for i, item := range items {
		names[i] = string(item.Kind) + ":" + item.Name()
	}
	assert.Equal(t, []string{"folder:Art", "folder:zoology", "set:A-set", "set:b-set"}, names)

	items, err = f.svc.GetItemsInFolder(ctx, "f1")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "f9", items[0].Folder.ID)
	assert.Equal(t, "s3", items[1].Set.ID)
}

func TestClientCollection_FolderPathAndDescendants(t *testing.T) {
	ctx := context.Background()
	f := newCollectionFixture(t, true)
	f.tree(t)

	path, err := f.svc.GetFolderPath(ctx, "f2")
	require.NoError(t, err)
	assert.Equal(t, []models.Folder{{ID: "f1", Name: "Languages"}, {ID: "f2", Name: "Spanish", ParentID: "f1"}}, path)

	path, err = f.svc.GetFolderPath(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, path)

	ok, err := f.svc.IsDescendant(ctx, "f2", "f1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = f.svc.IsDescendant(ctx, "f1", "f1")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = f.svc.IsDescendant(ctx, "f3", "f1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestClientCollection_UploadLocalData(t *testing.T) {
	ctx := context.Background()
	f := newCollectionFixture(t, true)
	// child stored before its parent
	require.NoError(t, f.local.WriteFolders(ctx, []models.Folder{
		{ID: "f2", Name: "Spanish", ParentID: "f1"},
		{ID: "f1", Name: "Languages"},
	}))
	require.NoError(t, f.local.WriteSets(ctx, []models.Set{
		{ID: "s1", Name: "Verbs", ParentID: "f2", Cards: []models.Card{{ID: "c1", Term: "ir"}, {ID: "c2", Term: "ser"}}},
	}))

	n, err := f.svc.UploadLocalData(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	assert.Equal(t, []models.Change{
		models.AddFolder{Data: models.Folder{ID: "f1", Name: "Languages"}},
		models.AddFolder{Data: models.Folder{ID: "f2", Name: "Spanish", ParentID: "f1"}},
		models.AddSet{Data: models.Set{ID: "s1", Name: "Verbs", ParentID: "f2", Cards: []models.Card{}}},
		models.AddCard{SetID: "s1", Data: models.Card{ID: "c1", Term: "ir"}},
		models.AddCard{SetID: "s1", Data: models.Card{ID: "c2", Term: "ser"}},
	}, f.queued(t))
}

func TestClientCollection_UploadLocalDataRequiresSession(t *testing.T) {
	f := newCollectionFixture(t, false)

	_, err := f.svc.UploadLocalData(context.Background())
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestClientCollection_QueueFailureKeepsLocalWrite(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	enqueuer := mock.NewMockEnqueuer(ctrl)
	enqueuer.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(assert.AnError)

	local := store.NewMemoryLocalStorage()
	svc := NewClientCollectionService(local, newFakeAuth(true), enqueuer, logger.Nop())

	_, err := svc.AddFolder(ctx, models.Folder{ID: "f1", Name: "x"})
	require.NoError(t, err)

	folders, err := local.ReadFolders(ctx)
	require.NoError(t, err)
	assert.Len(t, folders, 1)
}
