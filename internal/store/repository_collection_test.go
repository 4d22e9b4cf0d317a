package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/ErikSvanes/flashcards/internal/logger"
	"github.com/ErikSvanes/flashcards/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCollectionRepo(t *testing.T) (*collectionRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	l := logger.Nop()
	return &collectionRepository{db: &DB{DB: db, logger: l}, logger: l}, mock
}

func strPtr(s string) *string { return &s }

func TestCollectionRepository_UpsertSet(t *testing.T) {
	tests := []struct {
		name    string
		result  sql.Result
		execErr error
		wantErr error
	}{
		{name: "written", result: sqlmock.NewResult(0, 1)},
		{name: "row of another owner", result: sqlmock.NewResult(0, 0), wantErr: ErrEntityNotFound},
		{name: "driver error", execErr: errors.New("boom"), wantErr: ErrExecutingStatement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestCollectionRepo(t)

			exp := mock.ExpectExec("INSERT INTO sets").
				WithArgs("s1", "u1", "Bio")
			if tt.execErr != nil {
				exp.WillReturnError(tt.execErr)
			} else {
				exp.WillReturnResult(tt.result)
			}

			err := repo.UpsertSet(context.Background(), "u1", "s1", models.SetUpdate{Name: strPtr("Bio")})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCollectionRepository_UpsertFolder_ForeignKey(t *testing.T) {
	repo, mock := newTestCollectionRepo(t)

	mock.ExpectExec("INSERT INTO folders").
		WithArgs("f1", "u1", "").
		WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

	err := repo.UpsertFolder(context.Background(), "u1", "f1", models.FolderUpdate{ParentID: strPtr("")})
	assert.ErrorIs(t, err, ErrParentNotFound)
}

func TestCollectionRepository_UpsertSet_RetriesTransientError(t *testing.T) {
	repo, mock := newTestCollectionRepo(t)
	repo.db.errorClassificator = NewPostgresErrorClassifier()

	mock.ExpectExec("INSERT INTO sets").
		WillReturnError(pgError(pgerrcode.SerializationFailure))
	mock.ExpectExec("INSERT INTO sets").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpsertSet(context.Background(), "u1", "s1", models.SetUpdate{Name: strPtr("Bio")})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCollectionRepository_UpsertCard(t *testing.T) {
	card := models.Card{ID: "c1", Term: "t", Definition: "d"}

	t.Run("owned set", func(t *testing.T) {
		repo, mock := newTestCollectionRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(selectSetOwner)).
			WithArgs("s1").
			WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow("u1"))
		mock.ExpectExec("INSERT INTO cards").
			WithArgs("c1", "s1", "u1", "t", "d", "", "", false).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, repo.UpsertCard(context.Background(), "u1", "s1", card))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing set", func(t *testing.T) {
		repo, mock := newTestCollectionRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(selectSetOwner)).
			WithArgs("s1").
			WillReturnRows(sqlmock.NewRows([]string{"user_id"}))
		mock.ExpectRollback()

		err := repo.UpsertCard(context.Background(), "u1", "s1", card)
		assert.ErrorIs(t, err, ErrParentNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("set of another user", func(t *testing.T) {
		repo, mock := newTestCollectionRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(selectSetOwner)).
			WithArgs("s1").
			WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow("u2"))
		mock.ExpectRollback()

		err := repo.UpsertCard(context.Background(), "u1", "s1", card)
		assert.ErrorIs(t, err, ErrEntityNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("card id owned by another user", func(t *testing.T) {
		repo, mock := newTestCollectionRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(selectSetOwner)).
			WithArgs("s1").
			WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow("u1"))
		mock.ExpectExec("INSERT INTO cards").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := repo.UpsertCard(context.Background(), "u1", "s1", card)
		assert.ErrorIs(t, err, ErrEntityNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCollectionRepository_Deletes(t *testing.T) {
	t.Run("set", func(t *testing.T) {
		repo, mock := newTestCollectionRepo(t)

		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM sets WHERE id = $1 AND user_id = $2")).
			WithArgs("s1", "u1").
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.NoError(t, repo.DeleteSet(context.Background(), "u1", "s1"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("card", func(t *testing.T) {
		repo, mock := newTestCollectionRepo(t)

		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM cards WHERE id = $1 AND set_id = $2 AND user_id = $3")).
			WithArgs("c1", "s1", "u1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.DeleteCard(context.Background(), "u1", "s1", "c1"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("folder subtree", func(t *testing.T) {
		repo, mock := newTestCollectionRepo(t)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM sets WHERE user_id = $2")).
			WithArgs("f1", "u1").
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM folders WHERE user_id = $2")).
			WithArgs("f1", "u1").
			WillReturnResult(sqlmock.NewResult(0, 3))
		mock.ExpectCommit()

		assert.NoError(t, repo.DeleteFolder(context.Background(), "u1", "f1"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("folder subtree fails", func(t *testing.T) {
		repo, mock := newTestCollectionRepo(t)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM sets WHERE user_id = $2")).
			WillReturnError(errors.New("boom"))
		mock.ExpectRollback()

		err := repo.DeleteFolder(context.Background(), "u1", "f1")
		assert.ErrorIs(t, err, ErrExecutingStatement)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCollectionRepository_GetSets(t *testing.T) {
	repo, mock := newTestCollectionRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM sets WHERE user_id = $1 ORDER BY created_at, id")).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows(setColumns).
			AddRow("s1", "Bio", "", "").
			AddRow("s2", "Empty", "none yet", "f1"))
	mock.ExpectQuery(regexp.QuoteMeta("FROM cards WHERE user_id = $1 ORDER BY created_at, id")).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows(cardColumns).
			AddRow("c1", "s1", "cell", "unit of life", "", "", false).
			AddRow("c2", "s1", "atp", "energy", "img.png", "", true).
			AddRow("c3", "gone", "orphan", "", "", "", false))

	sets, err := repo.GetSets(context.Background(), "u1")
	require.NoError(t, err)

	want := []models.Set{
		{ID: "s1", Name: "Bio", Cards: []models.Card{
			{ID: "c1", Term: "cell", Definition: "unit of life"},
			{ID: "c2", Term: "atp", Definition: "energy", TermImage: "img.png", IsMarkdown: true},
		}},
		{ID: "s2", Name: "Empty", Description: "none yet", ParentID: "f1", Cards: []models.Card{}},
	}
	assert.Equal(t, want, sets)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCollectionRepository_GetSets_QueryError(t *testing.T) {
	repo, mock := newTestCollectionRepo(t)

	mock.ExpectQuery("FROM sets").WillReturnError(errors.New("boom"))

	_, err := repo.GetSets(context.Background(), "u1")
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestCollectionRepository_GetFolders(t *testing.T) {
	repo, mock := newTestCollectionRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM folders WHERE user_id = $1")).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows(folderColumns).
			AddRow("f1", "Science", "", "").
			AddRow("f2", "Biology", "", "f1"))

	folders, err := repo.GetFolders(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, []models.Folder{
		{ID: "f1", Name: "Science"},
		{ID: "f2", Name: "Biology", ParentID: "f1"},
	}, folders)
}

func TestCollectionRepository_GetFolders_Empty(t *testing.T) {
	repo, mock := newTestCollectionRepo(t)

	mock.ExpectQuery("FROM folders").
		WillReturnRows(sqlmock.NewRows(folderColumns))

	folders, err := repo.GetFolders(context.Background(), "u1")
	require.NoError(t, err)
	assert.NotNil(t, folders)
	assert.Empty(t, folders)
}
