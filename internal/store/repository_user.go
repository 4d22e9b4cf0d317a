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

type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository returns the [UserRepository] over the users table.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	return &userRepository{db: db, logger: logger}
}

// CreateUser inserts user and returns the stored row. A taken login yields
// [ErrLoginAlreadyExists].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	var created models.User
	err := r.db.withRetry(ctx, func(ctx context.Context) error {
		row := r.db.QueryRowContext(ctx, createUser, user.UserID, user.Login, user.PasswordHash)
		return scanUser(row, &created)
	})
	if err == nil {
		return created, nil
	}

	logger.FromContext(ctx).Err(err).
		Str("func", "*userRepository.CreateUser").
		Str("login", user.Login).
		Msg("insert user failed")

	if postgresError(err) == pgerrcode.UniqueViolation {
		return models.User{}, ErrLoginAlreadyExists
	}
	return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
}

// FindUserByLogin loads the account registered under login, or returns
// [ErrNoUserWasFound].
func (r *userRepository) FindUserByLogin(ctx context.Context, login string) (models.User, error) {
	var found models.User
	err := r.db.withRetry(ctx, func(ctx context.Context) error {
		return scanUser(r.db.QueryRowContext(ctx, findUserByLogin, login), &found)
	})

	switch {
	case err == nil:
		return found, nil
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, ErrNoUserWasFound
	}

	logger.FromContext(ctx).Err(err).
		Str("func", "*userRepository.FindUserByLogin").
		Msg("select user failed")
	return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
}

func scanUser(row *sql.Row, dst *models.User) error {
	return row.Scan(&dst.UserID, &dst.Login, &dst.PasswordHash, &dst.CreatedAt)
}
