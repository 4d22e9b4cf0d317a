package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ErikSvanes/flashcards/internal/logger"
	"github.com/ErikSvanes/flashcards/models"
)

// queueDocument is the value stored under keySyncQueue. The last sync time
// lives under its own key.
type queueDocument struct {
	PendingChanges []models.PendingChange `json:"pendingChanges"`
	NextID         uint64                 `json:"nextId"`
}

// sqlExecutor is satisfied by both *sql.DB and *sql.Tx.
type sqlExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// SQLiteLocalStorage is the durable [LocalStorage] of the client. It keeps
// one JSON document per key in the local_state table.
type SQLiteLocalStorage struct {
	db     *DB
	logger *logger.Logger
}

// NewSQLiteLocalStorage opens the database file at dsn and applies the local
// schema.
func NewSQLiteLocalStorage(ctx context.Context, dsn string, log *logger.Logger) (*SQLiteLocalStorage, error) {
	db, err := NewConnectSQLite(ctx, dsn, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.MigrateSQLite(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &SQLiteLocalStorage{db: db, logger: log}, nil
}

// Close releases the database file.
func (s *SQLiteLocalStorage) Close() error {
	return s.db.Close()
}

func (s *SQLiteLocalStorage) ReadSets(ctx context.Context) ([]models.Set, error) {
	sets := make([]models.Set, 0)
	if _, err := getJSON(ctx, s.db, keySets, &sets); err != nil {
		return nil, err
	}
	return sets, nil
}

func (s *SQLiteLocalStorage) WriteSets(ctx context.Context, sets []models.Set) error {
	if sets == nil {
		sets = []models.Set{}
	}
	return putJSON(ctx, s.db, keySets, sets)
}

func (s *SQLiteLocalStorage) ReadFolders(ctx context.Context) ([]models.Folder, error) {
	folders := make([]models.Folder, 0)
	if _, err := getJSON(ctx, s.db, keyFolders, &folders); err != nil {
		return nil, err
	}
	return folders, nil
}

func (s *SQLiteLocalStorage) WriteFolders(ctx context.Context, folders []models.Folder) error {
	if folders == nil {
		folders = []models.Folder{}
	}
	return putJSON(ctx, s.db, keyFolders, folders)
}

func (s *SQLiteLocalStorage) ReadQueue(ctx context.Context) (models.QueueState, error) {
	var doc queueDocument
	if _, err := getJSON(ctx, s.db, keySyncQueue, &doc); err != nil {
		return models.QueueState{}, err
	}

	var lastSyncedAt time.Time
	found, err := getJSON(ctx, s.db, keyLastSyncedAt, &lastSyncedAt)
	if err != nil {
		return models.QueueState{}, err
	}

	state := models.QueueState{PendingChanges: doc.PendingChanges, NextID: doc.NextID}
	if state.PendingChanges == nil {
		state.PendingChanges = []models.PendingChange{}
	}
	if found {
		state.LastSyncedAt = &lastSyncedAt
	}
	return state, nil
}

// WriteQueue stores the queue and the last sync time in one transaction.
func (s *SQLiteLocalStorage) WriteQueue(ctx context.Context, state models.QueueState) error {
	log := logger.FromContext(ctx)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*SQLiteLocalStorage.WriteQueue").Msg("error beginning transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	doc := queueDocument{PendingChanges: state.PendingChanges, NextID: state.NextID}
	if doc.PendingChanges == nil {
		doc.PendingChanges = []models.PendingChange{}
	}
	if err := putJSON(ctx, tx, keySyncQueue, doc); err != nil {
		return err
	}

	if state.LastSyncedAt != nil {
		err = putJSON(ctx, tx, keyLastSyncedAt, state.LastSyncedAt.UTC())
	} else {
		err = deleteKey(ctx, tx, keyLastSyncedAt)
	}
	if err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*SQLiteLocalStorage.WriteQueue").Msg("error committing transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}
	return nil
}

func (s *SQLiteLocalStorage) ReadSession(ctx context.Context) (models.Session, error) {
	var session models.Session
	found, err := getJSON(ctx, s.db, keySession, &session)
	if err != nil {
		return models.Session{}, err
	}
	if !found || session.Token == "" {
		return models.Session{}, ErrLocalSessionNotFound
	}
	return session, nil
}

func (s *SQLiteLocalStorage) WriteSession(ctx context.Context, session models.Session) error {
	return putJSON(ctx, s.db, keySession, session)
}

func (s *SQLiteLocalStorage) ClearSession(ctx context.Context) error {
	return deleteKey(ctx, s.db, keySession)
}

// getJSON decodes the value of key into dst. found is false when the key is
// absent; dst is left untouched then.
func getJSON(ctx context.Context, q sqlExecutor, key string, dst any) (found bool, err error) {
	var raw string
	if err := q.QueryRowContext(ctx, selectLocalValue, key).Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		logger.FromContext(ctx).Err(err).Str("func", "getJSON").Str("key", key).Msg("error reading local value")
		return false, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "getJSON").Str("key", key).Msg("error decoding local value")
		return false, fmt.Errorf("%w: %s: %w", ErrEncodingValue, key, err)
	}
	return true, nil
}

func putJSON(ctx context.Context, q sqlExecutor, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrEncodingValue, key, err)
	}

	if _, err := q.ExecContext(ctx, upsertLocalValue, key, string(raw)); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "putJSON").Str("key", key).Msg("error writing local value")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func deleteKey(ctx context.Context, q sqlExecutor, key string) error {
	if _, err := q.ExecContext(ctx, deleteLocalValue, key); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "deleteKey").Str("key", key).Msg("error deleting local value")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}
