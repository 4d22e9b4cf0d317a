// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The flashcards Authors

package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/ErikSvanes/flashcards/models"
	"github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (user_id, login, password_hash)
    VALUES ($1, $2, $3)
    RETURNING user_id, login, password_hash, created_at;`

	findUserByLogin = `SELECT user_id, login, password_hash, created_at
    FROM users
    WHERE login = $1;`

	selectSetOwner = `SELECT user_id FROM sets WHERE id = $1;`

	// folderSubtree lists the folder $1 of user $2 and every folder below it.
	// UNION stops on a parent cycle.
	folderSubtree = `WITH RECURSIVE subtree AS (
        SELECT id FROM folders WHERE id = $1 AND user_id = $2
        UNION
        SELECT f.id FROM folders f JOIN subtree s ON f.parent_id = s.id WHERE f.user_id = $2
    )`

	deleteFolderSubtreeSets = folderSubtree + `
    DELETE FROM sets WHERE user_id = $2 AND parent_id IN (SELECT id FROM subtree);`

	deleteFolderSubtree = folderSubtree + `
    DELETE FROM folders WHERE user_id = $2 AND id IN (SELECT id FROM subtree);`
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var (
	setColumns    = []string{"id", "name", "description", "parent_id"}
	folderColumns = []string{"id", "name", "description", "parent_id"}
	cardColumns   = []string{"id", "set_id", "term", "definition", "term_image", "definition_image", "is_markdown"}
)

// nodeFields are the optional columns of a set or folder upsert, in column
// order.
type nodeFields struct {
	Name        *string
	Description *string
	ParentID    *string
}

// buildUpsertNodeQuery inserts the row (id, user_id, provided fields) into
// table and, on conflict, overwrites only the provided fields if the row
// belongs to userID. A row of another owner yields zero affected rows.
func buildUpsertNodeQuery(_ context.Context, table, userID, id string, fields nodeFields) (string, []any, error) {
	columns := []string{"id", "user_id"}
	values := []any{id, userID}
	updates := make([]string, 0, 4)

	add := func(column string, value *string) {
		if value == nil {
			return
		}
		columns = append(columns, column)
		values = append(values, *value)
		updates = append(updates, fmt.Sprintf("%s = EXCLUDED.%s", column, column))
	}
	add("name", fields.Name)
	add("description", fields.Description)
	add("parent_id", fields.ParentID)
	updates = append(updates, "updated_at = now()")

	query, args, err := psql.Insert(table).
		Columns(columns...).
		Values(values...).
		Suffix(fmt.Sprintf("ON CONFLICT (id) DO UPDATE SET %s WHERE %s.user_id = EXCLUDED.user_id",
			strings.Join(updates, ", "), table)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildUpsertSetQuery(ctx context.Context, userID, setID string, fields models.SetUpdate) (string, []any, error) {
	return buildUpsertNodeQuery(ctx, "sets", userID, setID, nodeFields(fields))
}

func buildUpsertFolderQuery(ctx context.Context, userID, folderID string, fields models.FolderUpdate) (string, []any, error) {
	return buildUpsertNodeQuery(ctx, "folders", userID, folderID, nodeFields(fields))
}

// buildUpsertCardQuery writes every card field. A card id owned by another
// user yields zero affected rows.
func buildUpsertCardQuery(_ context.Context, userID, setID string, card models.Card) (string, []any, error) {
	query, args, err := psql.Insert("cards").
		Columns("id", "set_id", "user_id", "term", "definition", "term_image", "definition_image", "is_markdown").
		Values(card.ID, setID, userID, card.Term, card.Definition, card.TermImage, card.DefinitionImage, card.IsMarkdown).
		Suffix(`ON CONFLICT (id) DO UPDATE SET set_id = EXCLUDED.set_id, term = EXCLUDED.term, ` +
			`definition = EXCLUDED.definition, term_image = EXCLUDED.term_image, ` +
			`definition_image = EXCLUDED.definition_image, is_markdown = EXCLUDED.is_markdown, ` +
			`updated_at = now() WHERE cards.user_id = EXCLUDED.user_id`).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteSetQuery(_ context.Context, userID, setID string) (string, []any, error) {
	query, args, err := psql.Delete("sets").
		Where(squirrel.Eq{"id": setID, "user_id": userID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteCardQuery(_ context.Context, userID, setID, cardID string) (string, []any, error) {
	query, args, err := psql.Delete("cards").
		Where(squirrel.Eq{"id": cardID, "set_id": setID, "user_id": userID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectSetsQuery(_ context.Context, userID string) (string, []any, error) {
	query, args, err := psql.Select(setColumns...).
		From("sets").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectCardsQuery(_ context.Context, userID string) (string, []any, error) {
	query, args, err := psql.Select(cardColumns...).
		From("cards").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectFoldersQuery(_ context.Context, userID string) (string, []any, error) {
	query, args, err := psql.Select(folderColumns...).
		From("folders").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
