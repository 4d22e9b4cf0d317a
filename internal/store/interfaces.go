// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The flashcards Authors

package store

import (
	"context"

	"github.com/ErikSvanes/flashcards/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository stores backend accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
}

// CollectionRepository stores the sets, cards and folders of every user.
// All methods are scoped to userID; rows of other users are never touched.
type CollectionRepository interface {
	// UpsertSet creates the set if absent and otherwise writes only the
	// fields present in fields.
	UpsertSet(ctx context.Context, userID, setID string, fields models.SetUpdate) error
	// UpsertCard creates or fully replaces the card.
	UpsertCard(ctx context.Context, userID, setID string, card models.Card) error
	// UpsertFolder creates the folder if absent and otherwise writes only the
	// fields present in fields.
	UpsertFolder(ctx context.Context, userID, folderID string, fields models.FolderUpdate) error

	// Deletes succeed when the row is already gone.
	DeleteSet(ctx context.Context, userID, setID string) error
	DeleteCard(ctx context.Context, userID, setID, cardID string) error
	// DeleteFolder removes the folder with every folder and set below it.
	DeleteFolder(ctx context.Context, userID, folderID string) error

	// GetSets returns every set of the user with its cards in creation order.
	GetSets(ctx context.Context, userID string) ([]models.Set, error)
	GetFolders(ctx context.Context, userID string) ([]models.Folder, error)
}
