package service

import (
	"context"
	"fmt"
	"reflect"

	"github.com/ErikSvanes/flashcards/internal/adapter"
	"github.com/ErikSvanes/flashcards/internal/logger"
	"github.com/ErikSvanes/flashcards/internal/store"
	"github.com/ErikSvanes/flashcards/models"
	"golang.org/x/sync/errgroup"
)

// Puller replaces the local collection with the remote one when they differ.
// The remote store wins; the change queue and the last sync time are left
// alone.
type Puller struct {
	local  store.LocalStorage
	remote adapter.RemoteStore
	auth   AuthProvider
	queue  *ChangeQueue
	status *StatusHub

	logger *logger.Logger
}

func NewPuller(local store.LocalStorage, remote adapter.RemoteStore, auth AuthProvider, queue *ChangeQueue, status *StatusHub, logger *logger.Logger) *Puller {
	return &Puller{
		local:  local,
		remote: remote,
		auth:   auth,
		queue:  queue,
		status: status,
		logger: logger,
	}
}

// Run fetches the remote snapshot and stores it locally when it differs.
// It returns false without a session or when the snapshot cannot be fetched
// or stored.
func (p *Puller) Run(ctx context.Context) bool {
	if !p.auth.IsAuthenticated(ctx) {
		return false
	}

	log := logger.FromContextOr(ctx, p.logger)
	p.status.Publish(models.SyncSyncing, p.pending(ctx))

	sets, folders, err := p.fetch(ctx, p.auth.CurrentUserID(ctx))
	if err != nil {
		log.Err(err).Str("func", "*Puller.Run").Msg("pull aborted")
		p.status.Publish(models.SyncError, p.pending(ctx))
		return false
	}

	changed, err := p.store(ctx, sets, folders)
	if err != nil {
		log.Err(err).Str("func", "*Puller.Run").Msg("error storing remote snapshot")
		p.status.Publish(models.SyncError, p.pending(ctx))
		return false
	}

	log.Debug().Bool("changed", changed).Int("sets", len(sets)).Int("folders", len(folders)).Msg("pull finished")
	p.status.Publish(models.SyncIdle, p.pending(ctx))
	return true
}

func (p *Puller) fetch(ctx context.Context, ownerID string) ([]models.Set, []models.Folder, error) {
	var (
		sets    []models.Set
		folders []models.Folder
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		sets, err = p.remote.FetchAllSets(gctx, ownerID)
		return err
	})
	g.Go(func() (err error) {
		folders, err = p.remote.FetchAllFolders(gctx, ownerID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrSnapshotFetchFailed, err)
	}

	return normalizeSets(sets), normalizeFolders(folders), nil
}

// store writes sets and folders that differ from the local copy and reports
// whether anything was written.
func (p *Puller) store(ctx context.Context, sets []models.Set, folders []models.Folder) (bool, error) {
	localSets, err := p.local.ReadSets(ctx)
	if err != nil {
		return false, err
	}
	localFolders, err := p.local.ReadFolders(ctx)
	if err != nil {
		return false, err
	}

	changed := false
	if !reflect.DeepEqual(normalizeSets(localSets), sets) {
		if err := p.local.WriteSets(ctx, sets); err != nil {
			return false, err
		}
		changed = true
	}
	if !reflect.DeepEqual(normalizeFolders(localFolders), folders) {
		if err := p.local.WriteFolders(ctx, folders); err != nil {
			return changed, err
		}
		changed = true
	}
	return changed, nil
}

func (p *Puller) pending(ctx context.Context) int {
	n, err := p.queue.PendingCount(ctx)
	if err != nil {
		return 0
	}
	return n
}

// normalizeSets makes nil and empty slices compare equal.
func normalizeSets(sets []models.Set) []models.Set {
	out := make([]models.Set, len(sets))
	for i, set := range sets {
		out[i] = set
		if out[i].Cards == nil {
			out[i].Cards = []models.Card{}
		}
	}
	return out
}

func normalizeFolders(folders []models.Folder) []models.Folder {
	if folders == nil {
		return []models.Folder{}
	}
	return folders
}
