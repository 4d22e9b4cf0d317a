package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/ErikSvanes/flashcards/internal/logger"
)

// NewConnectSQLite opens the local database file at dsn, creating it and its
// directory when missing.
func NewConnectSQLite(ctx context.Context, dsn string, log *logger.Logger) (*DB, error) {
	l := log.With().Str("func", "NewConnectSQLite").Str("path", dsn).Logger()

	if err := ensureFile(dsn); err != nil {
		l.Err(err).Msg("prepare database file")
		return nil, fmt.Errorf("prepare database file: %w", err)
	}

	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		l.Err(err).Msg("open database")
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// sqlite allows a single writer
	conn.SetMaxOpenConns(1)

	if err = conn.PingContext(ctx); err != nil {
		l.Err(err).Msg("ping database")
		_ = conn.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	l.Debug().Msg("local database ready")

	return &DB{DB: conn, logger: log}, nil
}

func ensureFile(path string) error {
	_, err := os.Stat(path)
	if err == nil || !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	if err = os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	return f.Close()
}
