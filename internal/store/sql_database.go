package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/ErikSvanes/flashcards/internal/logger"
	"github.com/ErikSvanes/flashcards/migrations"
)

// retryDelays are the pauses between attempts of a statement that failed
// with a [Retryable] error. Their count is the number of retries.
var retryDelays = []time.Duration{100 * time.Millisecond, 500 * time.Millisecond, time.Second}

// DB is a database handle shared by the repositories of one process.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// MigratePostgres applies the backend schema.
func (db *DB) MigratePostgres() error {
	return migrations.MigratePostgres(db.DB)
}

// MigrateSQLite applies the local store schema.
func (db *DB) MigrateSQLite() error {
	return migrations.MigrateSQLite(db.DB)
}

// withRetry runs fn until it succeeds, fails with an error the classifier
// does not consider retryable, the retries are used up, or ctx ends.
func (db *DB) withRetry(ctx context.Context, fn func(ctx context.Context) error) error {
	for attempt := 0; ; attempt++ {
		err := fn(ctx)
		if err == nil || db.errorClassificator == nil || attempt >= len(retryDelays) {
			return err
		}
		if db.errorClassificator.Classify(err) != Retryable {
			return err
		}

		logger.FromContext(ctx).Warn().Err(err).
			Int("attempt", attempt+1).
			Msg("retryable database error, retrying")

		select {
		case <-ctx.Done():
			return err
		case <-time.After(retryDelays[attempt]):
		}
	}
}
