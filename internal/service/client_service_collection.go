package service

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/ErikSvanes/flashcards/internal/logger"
	"github.com/ErikSvanes/flashcards/internal/store"
	"github.com/ErikSvanes/flashcards/internal/utils"
	"github.com/ErikSvanes/flashcards/models"
)

type clientCollectionService struct {
	localStore store.LocalStorage
	auth       AuthProvider
	queue      Enqueuer
	ids        *utils.UUIDGenerator

	// mu serializes read-modify-write cycles on the local collection.
	mu sync.Mutex

	logger *logger.Logger
}

func NewClientCollectionService(localStore store.LocalStorage, auth AuthProvider, queue Enqueuer, logger *logger.Logger) ClientCollectionService {
	return &clientCollectionService{
		localStore: localStore,
		auth:       auth,
		queue:      queue,
		ids:        utils.NewUUIDGenerator(),
		logger:     logger,
	}
}

// ── sets ─────────────────────────────────────────────────────────────────────

func (s *clientCollectionService) AddSet(ctx context.Context, set models.Set) (models.Set, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if set.ID == "" {
		set.ID = s.ids.Generate()
	}
	cards := make([]models.Card, len(set.Cards))
	for i, card := range set.Cards {
		if card.ID == "" {
			card.ID = s.ids.Generate()
		}
		cards[i] = card
	}
	set.Cards = cards

	if err := s.checkParent(ctx, set.ParentID); err != nil {
		return models.Set{}, err
	}

	sets, err := s.localStore.ReadSets(ctx)
	if err != nil {
		return models.Set{}, fmt.Errorf("read sets: %w", err)
	}
	if err := s.localStore.WriteSets(ctx, append(sets, set)); err != nil {
		return models.Set{}, fmt.Errorf("write sets: %w", err)
	}

	s.enqueue(ctx, models.AddSet{Data: set})
	return set, nil
}

func (s *clientCollectionService) UpdateSet(ctx context.Context, setID string, updates models.SetUpdate) (models.Set, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if updates.ParentID != nil {
		if err := s.checkParent(ctx, *updates.ParentID); err != nil {
			return models.Set{}, err
		}
	}

	updated, err := s.modifySet(ctx, setID, func(set models.Set) (models.Set, error) {
		return updates.Apply(set), nil
	})
	if err != nil {
		return models.Set{}, err
	}

	if !updates.IsEmpty() {
		s.enqueue(ctx, models.UpdateSet{SetID: setID, Updates: updates})
	}
	return updated, nil
}

func (s *clientCollectionService) DeleteSet(ctx context.Context, setID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sets, err := s.localStore.ReadSets(ctx)
	if err != nil {
		return fmt.Errorf("read sets: %w", err)
	}
	idx := slices.IndexFunc(sets, func(set models.Set) bool { return set.ID == setID })
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrSetNotFound, setID)
	}
	if err := s.localStore.WriteSets(ctx, slices.Delete(sets, idx, idx+1)); err != nil {
		return fmt.Errorf("write sets: %w", err)
	}

	s.enqueue(ctx, models.DeleteSet{SetID: setID})
	return nil
}

// ── cards ────────────────────────────────────────────────────────────────────

func (s *clientCollectionService) AddCard(ctx context.Context, setID string, card models.Card) (models.Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if card.ID == "" {
		card.ID = s.ids.Generate()
	}

	_, err := s.modifySet(ctx, setID, func(set models.Set) (models.Set, error) {
		set.Cards = append(set.Cards, card)
		return set, nil
	})
	if err != nil {
		return models.Card{}, err
	}

	s.enqueue(ctx, models.AddCard{SetID: setID, Data: card})
	return card, nil
}

func (s *clientCollectionService) EditCard(ctx context.Context, setID string, card models.Card) (models.Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.modifySet(ctx, setID, func(set models.Set) (models.Set, error) {
		idx := slices.IndexFunc(set.Cards, func(c models.Card) bool { return c.ID == card.ID })
		if idx < 0 {
			return set, fmt.Errorf("%w: %s", ErrCardNotFound, card.ID)
		}
		set.Cards[idx] = card
		return set, nil
	})
	if err != nil {
		return models.Card{}, err
	}

	s.enqueue(ctx, models.EditCard{SetID: setID, Data: card})
	return card, nil
}

func (s *clientCollectionService) DeleteCard(ctx context.Context, setID, cardID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.modifySet(ctx, setID, func(set models.Set) (models.Set, error) {
		idx := slices.IndexFunc(set.Cards, func(c models.Card) bool { return c.ID == cardID })
		if idx < 0 {
			return set, fmt.Errorf("%w: %s", ErrCardNotFound, cardID)
		}
		set.Cards = slices.Delete(set.Cards, idx, idx+1)
		return set, nil
	})
	if err != nil {
		return err
	}

	s.enqueue(ctx, models.DeleteCard{SetID: setID, CardID: cardID})
	return nil
}

// ── folders ──────────────────────────────────────────────────────────────────

func (s *clientCollectionService) AddFolder(ctx context.Context, folder models.Folder) (models.Folder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if folder.ID == "" {
		folder.ID = s.ids.Generate()
	}

	folders, err := s.localStore.ReadFolders(ctx)
	if err != nil {
		return models.Folder{}, fmt.Errorf("read folders: %w", err)
	}
	if folder.ParentID != "" && findFolder(folders, folder.ParentID) < 0 {
		return models.Folder{}, fmt.Errorf("%w: %s", ErrFolderNotFound, folder.ParentID)
	}
	if err := s.localStore.WriteFolders(ctx, append(folders, folder)); err != nil {
		return models.Folder{}, fmt.Errorf("write folders: %w", err)
	}

	s.enqueue(ctx, models.AddFolder{Data: folder})
	return folder, nil
}

func (s *clientCollectionService) UpdateFolder(ctx context.Context, folderID string, updates models.FolderUpdate) (models.Folder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated, err := s.updateFolder(ctx, folderID, updates)
	if err != nil {
		return models.Folder{}, err
	}

	if !updates.IsEmpty() {
		s.enqueue(ctx, models.UpdateFolder{FolderID: folderID, Updates: updates})
	}
	return updated, nil
}

func (s *clientCollectionService) DeleteFolder(ctx context.Context, folderID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	folders, err := s.localStore.ReadFolders(ctx)
	if err != nil {
		return fmt.Errorf("read folders: %w", err)
	}
	if findFolder(folders, folderID) < 0 {
		return fmt.Errorf("%w: %s", ErrFolderNotFound, folderID)
	}
	sets, err := s.localStore.ReadSets(ctx)
	if err != nil {
		return fmt.Errorf("read sets: %w", err)
	}

	subtree := subtreeIDs(folders, folderID)

	keptFolders := slices.DeleteFunc(folders, func(f models.Folder) bool { return subtree[f.ID] })
	keptSets := slices.DeleteFunc(sets, func(set models.Set) bool { return subtree[set.ParentID] })

	if err := s.localStore.WriteSets(ctx, keptSets); err != nil {
		return fmt.Errorf("write sets: %w", err)
	}
	if err := s.localStore.WriteFolders(ctx, keptFolders); err != nil {
		return fmt.Errorf("write folders: %w", err)
	}

	s.enqueue(ctx, models.DeleteFolder{FolderID: folderID})
	return nil
}

func (s *clientCollectionService) MoveItem(ctx context.Context, kind models.ItemKind, itemID, targetFolderID string) error {
	switch kind {
	case models.ItemFolder:
		_, err := s.UpdateFolder(ctx, itemID, models.FolderUpdate{ParentID: &targetFolderID})
		return err
	case models.ItemSet:
		_, err := s.UpdateSet(ctx, itemID, models.SetUpdate{ParentID: &targetFolderID})
		return err
	default:
		return fmt.Errorf("%w: unknown item kind %q", ErrInvalidDataProvided, kind)
	}
}

// ── reads ────────────────────────────────────────────────────────────────────

func (s *clientCollectionService) GetSets(ctx context.Context) ([]models.Set, error) {
	return s.localStore.ReadSets(ctx)
}

func (s *clientCollectionService) GetSet(ctx context.Context, setID string) (models.Set, error) {
	sets, err := s.localStore.ReadSets(ctx)
	if err != nil {
		return models.Set{}, err
	}
	for _, set := range sets {
		if set.ID == setID {
			return set, nil
		}
	}
	return models.Set{}, fmt.Errorf("%w: %s", ErrSetNotFound, setID)
}

func (s *clientCollectionService) GetFolders(ctx context.Context) ([]models.Folder, error) {
	return s.localStore.ReadFolders(ctx)
}

func (s *clientCollectionService) GetItemsInFolder(ctx context.Context, folderID string) ([]models.FolderItem, error) {
	folders, err := s.localStore.ReadFolders(ctx)
	if err != nil {
		return nil, err
	}
	sets, err := s.localStore.ReadSets(ctx)
	if err != nil {
		return nil, err
	}

	var childFolders []models.FolderItem
	for _, f := range folders {
		if f.ParentID == folderID {
			childFolders = append(childFolders, models.FolderItem{Kind: models.ItemFolder, Folder: &f})
		}
	}
	var childSets []models.FolderItem
	for _, set := range sets {
		if set.ParentID == folderID {
			childSets = append(childSets, models.FolderItem{Kind: models.ItemSet, Set: &set})
		}
	}

	byName := func(a, b models.FolderItem) int {
		return cmp.Compare(strings.ToLower(a.Name()), strings.ToLower(b.Name()))
	}
	slices.SortStableFunc(childFolders, byName)
	slices.SortStableFunc(childSets, byName)

	return append(childFolders, childSets...), nil
}

func (s *clientCollectionService) GetFolderPath(ctx context.Context, folderID string) ([]models.Folder, error) {
	folders, err := s.localStore.ReadFolders(ctx)
	if err != nil {
		return nil, err
	}

	var path []models.Folder
	seen := make(map[string]bool)
	for id := folderID; id != "" && !seen[id]; {
		seen[id] = true
		idx := findFolder(folders, id)
		if idx < 0 {
			break
		}
		path = append(path, folders[idx])
		id = folders[idx].ParentID
	}
	slices.Reverse(path)
	return path, nil
}

func (s *clientCollectionService) IsDescendant(ctx context.Context, folderID, ancestorID string) (bool, error) {
	folders, err := s.localStore.ReadFolders(ctx)
	if err != nil {
		return false, err
	}
	return isDescendant(folders, folderID, ancestorID), nil
}

func (s *clientCollectionService) UploadLocalData(ctx context.Context) (int, error) {
	if !s.auth.IsAuthenticated(ctx) {
		return 0, ErrNotAuthenticated
	}

	folders, err := s.localStore.ReadFolders(ctx)
	if err != nil {
		return 0, fmt.Errorf("read folders: %w", err)
	}
	sets, err := s.localStore.ReadSets(ctx)
	if err != nil {
		return 0, fmt.Errorf("read sets: %w", err)
	}

	changes := make([]models.Change, 0, len(folders)+len(sets))
	for _, f := range parentsFirst(folders) {
		changes = append(changes, models.AddFolder{Data: f})
	}
	for _, set := range sets {
		cards := set.Cards
		set.Cards = []models.Card{}
		changes = append(changes, models.AddSet{Data: set})
		for _, card := range cards {
			changes = append(changes, models.AddCard{SetID: set.ID, Data: card})
		}
	}

	for i, change := range changes {
		if err := s.queue.Enqueue(ctx, change); err != nil {
			return i, fmt.Errorf("queue %s %s: %w", change.Kind(), change.TargetID(), err)
		}
	}
	return len(changes), nil
}

// ── helpers ──────────────────────────────────────────────────────────────────

// modifySet rewrites one set in place. Must be called with s.mu held.
func (s *clientCollectionService) modifySet(ctx context.Context, setID string, modify func(models.Set) (models.Set, error)) (models.Set, error) {
	sets, err := s.localStore.ReadSets(ctx)
	if err != nil {
		return models.Set{}, fmt.Errorf("read sets: %w", err)
	}
	idx := slices.IndexFunc(sets, func(set models.Set) bool { return set.ID == setID })
	if idx < 0 {
		return models.Set{}, fmt.Errorf("%w: %s", ErrSetNotFound, setID)
	}

	updated, err := modify(sets[idx])
	if err != nil {
		return models.Set{}, err
	}
	sets[idx] = updated

	if err := s.localStore.WriteSets(ctx, sets); err != nil {
		return models.Set{}, fmt.Errorf("write sets: %w", err)
	}
	return updated, nil
}

// updateFolder applies updates locally. Must be called with s.mu held.
func (s *clientCollectionService) updateFolder(ctx context.Context, folderID string, updates models.FolderUpdate) (models.Folder, error) {
	folders, err := s.localStore.ReadFolders(ctx)
	if err != nil {
		return models.Folder{}, fmt.Errorf("read folders: %w", err)
	}
	idx := findFolder(folders, folderID)
	if idx < 0 {
		return models.Folder{}, fmt.Errorf("%w: %s", ErrFolderNotFound, folderID)
	}

	if updates.ParentID != nil && *updates.ParentID != "" {
		target := *updates.ParentID
		if target == folderID || isDescendant(folders, target, folderID) {
			return models.Folder{}, fmt.Errorf("%w: %s into %s", ErrCircularMove, folderID, target)
		}
		if findFolder(folders, target) < 0 {
			return models.Folder{}, fmt.Errorf("%w: %s", ErrFolderNotFound, target)
		}
	}

	folders[idx] = updates.Apply(folders[idx])
	if err := s.localStore.WriteFolders(ctx, folders); err != nil {
		return models.Folder{}, fmt.Errorf("write folders: %w", err)
	}
	return folders[idx], nil
}

// checkParent verifies that a set can be placed under parentID.
func (s *clientCollectionService) checkParent(ctx context.Context, parentID string) error {
	if parentID == "" {
		return nil
	}
	folders, err := s.localStore.ReadFolders(ctx)
	if err != nil {
		return fmt.Errorf("read folders: %w", err)
	}
	if findFolder(folders, parentID) < 0 {
		return fmt.Errorf("%w: %s", ErrFolderNotFound, parentID)
	}
	return nil
}

// enqueue records change for replication when logged in. The local write has
// already happened, so a queue failure is only logged.
func (s *clientCollectionService) enqueue(ctx context.Context, change models.Change) {
	if !s.auth.IsAuthenticated(ctx) {
		return
	}
	if err := s.queue.Enqueue(ctx, change); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*clientCollectionService.enqueue").
			Str("kind", string(change.Kind())).
			Msg("local change was saved but not queued")
	}
}

func findFolder(folders []models.Folder, id string) int {
	return slices.IndexFunc(folders, func(f models.Folder) bool { return f.ID == id })
}

// isDescendant walks up from folderID and reports whether ancestorID is on
// the way. A folder is not its own descendant.
func isDescendant(folders []models.Folder, folderID, ancestorID string) bool {
	parents := make(map[string]string, len(folders))
	for _, f := range folders {
		parents[f.ID] = f.ParentID
	}

	seen := make(map[string]bool)
	for id := parents[folderID]; id != "" && !seen[id]; id = parents[id] {
		if id == ancestorID {
			return true
		}
		seen[id] = true
	}
	return false
}

// subtreeIDs returns rootID and every folder below it.
func subtreeIDs(folders []models.Folder, rootID string) map[string]bool {
	subtree := map[string]bool{rootID: true}
	for changed := true; changed; {
		changed = false
		for _, f := range folders {
			if !subtree[f.ID] && subtree[f.ParentID] {
				subtree[f.ID] = true
				changed = true
			}
		}
	}
	return subtree
}

// parentsFirst orders folders so that every folder follows its parent.
// Folders whose parent is unknown are treated as roots.
func parentsFirst(folders []models.Folder) []models.Folder {
	known := make(map[string]bool, len(folders))
	for _, f := range folders {
		known[f.ID] = true
	}

	placed := make(map[string]bool, len(folders))
	out := make([]models.Folder, 0, len(folders))
	for len(out) < len(folders) {
		progressed := false
		for _, f := range folders {
			if placed[f.ID] {
				continue
			}
			if f.ParentID == "" || !known[f.ParentID] || placed[f.ParentID] {
				out = append(out, f)
				placed[f.ID] = true
				progressed = true
			}
		}
		if !progressed {
			// a parent cycle; emit the rest in stored order
			for _, f := range folders {
				if !placed[f.ID] {
					out = append(out, f)
					placed[f.ID] = true
				}
			}
		}
	}
	return out
}
