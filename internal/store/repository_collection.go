package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ErikSvanes/flashcards/internal/logger"
	"github.com/ErikSvanes/flashcards/models"
	"github.com/jackc/pgerrcode"
)

// collectionRepository is the PostgreSQL-backed implementation of
// [CollectionRepository]. Writes are upserts keyed by the client-assigned
// identifiers so that replaying the same change twice is harmless.
type collectionRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewCollectionRepository constructs a [CollectionRepository] backed by db.
func NewCollectionRepository(db *DB, logger *logger.Logger) CollectionRepository {
	logger.Debug().Msg("creating collection repository")
	return &collectionRepository{
		db:     db,
		logger: logger,
	}
}

func (r *collectionRepository) UpsertSet(ctx context.Context, userID, setID string, fields models.SetUpdate) error {
	query, args, err := buildUpsertSetQuery(ctx, userID, setID, fields)
	if err != nil {
		return err
	}
	return r.execUpsert(ctx, "*collectionRepository.UpsertSet", userID, setID, query, args)
}

func (r *collectionRepository) UpsertFolder(ctx context.Context, userID, folderID string, fields models.FolderUpdate) error {
	query, args, err := buildUpsertFolderQuery(ctx, userID, folderID, fields)
	if err != nil {
		return err
	}
	return r.execUpsert(ctx, "*collectionRepository.UpsertFolder", userID, folderID, query, args)
}

// UpsertCard checks that the set belongs to userID and writes the card in the
// same transaction.
//
// Error handling:
//   - set absent → [ErrParentNotFound].
//   - set or card owned by another user → [ErrEntityNotFound].
func (r *collectionRepository) UpsertCard(ctx context.Context, userID, setID string, card models.Card) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertCardQuery(ctx, userID, setID, card)
	if err != nil {
		return err
	}

	return r.db.withRetry(ctx, func(ctx context.Context) error {
		tx, err := r.db.BeginTx(ctx, nil)
		if err != nil {
			log.Err(err).Str("func", "*collectionRepository.UpsertCard").Msg("failed to begin transaction")
			return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
		}
		defer tx.Rollback()

		var ownerID string
		if err := tx.QueryRowContext(ctx, selectSetOwner, setID).Scan(&ownerID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrParentNotFound
			}
			log.Err(err).Str("func", "*collectionRepository.UpsertCard").Str("set_id", setID).Msg("failed to read set owner")
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		if ownerID != userID {
			return ErrEntityNotFound
		}

		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			log.Err(err).Str("func", "*collectionRepository.UpsertCard").Str("card_id", card.ID).Msg("failed to upsert card")
			return mapWriteError(err)
		}
		if affected, _ := res.RowsAffected(); affected == 0 {
			return ErrEntityNotFound
		}

		if err := tx.Commit(); err != nil {
			log.Err(err).Str("func", "*collectionRepository.UpsertCard").Msg("failed to commit transaction")
			return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
		}
		return nil
	})
}

func (r *collectionRepository) DeleteSet(ctx context.Context, userID, setID string) error {
	query, args, err := buildDeleteSetQuery(ctx, userID, setID)
	if err != nil {
		return err
	}
	return r.execDelete(ctx, "*collectionRepository.DeleteSet", query, args)
}

func (r *collectionRepository) DeleteCard(ctx context.Context, userID, setID, cardID string) error {
	query, args, err := buildDeleteCardQuery(ctx, userID, setID, cardID)
	if err != nil {
		return err
	}
	return r.execDelete(ctx, "*collectionRepository.DeleteCard", query, args)
}

// DeleteFolder removes the folder, its descendant folders and every set
// inside them in one transaction. Cards go with their sets.
func (r *collectionRepository) DeleteFolder(ctx context.Context, userID, folderID string) error {
	log := logger.FromContext(ctx)

	return r.db.withRetry(ctx, func(ctx context.Context) error {
		tx, err := r.db.BeginTx(ctx, nil)
		if err != nil {
			log.Err(err).Str("func", "*collectionRepository.DeleteFolder").Msg("failed to begin transaction")
			return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
		}
		defer tx.Rollback()

		for _, stmt := range []string{deleteFolderSubtreeSets, deleteFolderSubtree} {
			if _, err := tx.ExecContext(ctx, stmt, folderID, userID); err != nil {
				log.Err(err).
					Str("func", "*collectionRepository.DeleteFolder").
					Str("folder_id", folderID).
					Msg("failed to delete folder subtree")
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
		}

		if err := tx.Commit(); err != nil {
			log.Err(err).Str("func", "*collectionRepository.DeleteFolder").Msg("failed to commit transaction")
			return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
		}
		return nil
	})
}

// GetSets returns the user's sets with their cards in creation order. Sets
// without cards carry an empty slice.
func (r *collectionRepository) GetSets(ctx context.Context, userID string) ([]models.Set, error) {
	log := logger.FromContext(ctx)

	setsQuery, setsArgs, err := buildSelectSetsQuery(ctx, userID)
	if err != nil {
		return nil, err
	}
	cardsQuery, cardsArgs, err := buildSelectCardsQuery(ctx, userID)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, setsQuery, setsArgs...)
	if err != nil {
		log.Err(err).Str("func", "*collectionRepository.GetSets").Str("user_id", userID).Msg("failed to query sets")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	sets := make([]models.Set, 0, 16)
	index := make(map[string]int)
	for rows.Next() {
		set := models.Set{Cards: []models.Card{}}
		if err := rows.Scan(&set.ID, &set.Name, &set.Description, &set.ParentID); err != nil {
			log.Err(err).Str("func", "*collectionRepository.GetSets").Msg("failed to scan set row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		index[set.ID] = len(sets)
		sets = append(sets, set)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	cardRows, err := r.db.QueryContext(ctx, cardsQuery, cardsArgs...)
	if err != nil {
		log.Err(err).Str("func", "*collectionRepository.GetSets").Str("user_id", userID).Msg("failed to query cards")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer cardRows.Close()

	for cardRows.Next() {
		var (
			card  models.Card
			setID string
		)
		if err := cardRows.Scan(&card.ID, &setID, &card.Term, &card.Definition,
			&card.TermImage, &card.DefinitionImage, &card.IsMarkdown); err != nil {
			log.Err(err).Str("func", "*collectionRepository.GetSets").Msg("failed to scan card row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		if i, ok := index[setID]; ok {
			sets[i].Cards = append(sets[i].Cards, card)
		}
	}
	if err := cardRows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return sets, nil
}

func (r *collectionRepository) GetFolders(ctx context.Context, userID string) ([]models.Folder, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectFoldersQuery(ctx, userID)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*collectionRepository.GetFolders").Str("user_id", userID).Msg("failed to query folders")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	folders := make([]models.Folder, 0, 16)
	for rows.Next() {
		var folder models.Folder
		if err := rows.Scan(&folder.ID, &folder.Name, &folder.Description, &folder.ParentID); err != nil {
			log.Err(err).Str("func", "*collectionRepository.GetFolders").Msg("failed to scan folder row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		folders = append(folders, folder)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return folders, nil
}

func (r *collectionRepository) execUpsert(ctx context.Context, funcName, userID, id, query string, args []any) error {
	log := logger.FromContext(ctx)

	return r.db.withRetry(ctx, func(ctx context.Context) error {
		res, err := r.db.ExecContext(ctx, query, args...)
		if err != nil {
			log.Err(err).Str("func", funcName).Str("user_id", userID).Str("id", id).Msg("failed to upsert")
			return mapWriteError(err)
		}
		if affected, _ := res.RowsAffected(); affected == 0 {
			return ErrEntityNotFound
		}
		return nil
	})
}

func (r *collectionRepository) execDelete(ctx context.Context, funcName, query string, args []any) error {
	log := logger.FromContext(ctx)

	return r.db.withRetry(ctx, func(ctx context.Context) error {
		if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).Str("func", funcName).Msg("failed to delete")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return nil
	})
}

// mapWriteError turns constraint violations into domain errors and keeps the
// driver error wrapped otherwise so the classifier can still see it.
func mapWriteError(err error) error {
	switch postgresError(err) {
	case pgerrcode.ForeignKeyViolation:
		return ErrParentNotFound
	default:
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
}
