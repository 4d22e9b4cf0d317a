package store

import (
	"context"
	"fmt"

	"github.com/ErikSvanes/flashcards/internal/logger"
)

// Repositories groups the backend repositories that share one connection
// pool.
type Repositories struct {
	UserRepository       UserRepository
	CollectionRepository CollectionRepository

	db *DB
}

// NewRepositories connects to PostgreSQL at dsn, applies the schema and
// builds the repositories.
func NewRepositories(ctx context.Context, dsn string, logger *logger.Logger) (*Repositories, error) {
	logger.Info().Msg("creating new repositories...")

	db, err := NewConnectPostgres(ctx, dsn, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err := db.MigratePostgres(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Repositories{
		UserRepository:       NewUserRepository(db, logger),
		CollectionRepository: NewCollectionRepository(db, logger),
		db:                   db,
	}, nil
}

// Close releases the connection pool.
func (r *Repositories) Close() error {
	return r.db.Close()
}
