// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The flashcards Authors

package service

import (
	"context"

	"github.com/ErikSvanes/flashcards/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=CollectionServiceWrapper

// CollectionService is the backend side of the remote store. Every method is
// scoped to userID, the owner taken from the bearer token.
type CollectionService interface {
	UpsertSet(ctx context.Context, userID, setID string, fields models.SetUpdate) error
	UpsertCard(ctx context.Context, userID, setID string, card models.Card) error
	UpsertFolder(ctx context.Context, userID, folderID string, fields models.FolderUpdate) error

	DeleteSet(ctx context.Context, userID, setID string) error
	DeleteCard(ctx context.Context, userID, setID, cardID string) error
	DeleteFolder(ctx context.Context, userID, folderID string) error

	GetSets(ctx context.Context, userID string) ([]models.Set, error)
	GetFolders(ctx context.Context, userID string) ([]models.Folder, error)
}

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// CollectionServiceWrapper defines middleware composition for CollectionService.
// Implementations wrap an existing CollectionService to add behavior such as
// logging or validating.
type CollectionServiceWrapper interface {
	Wrap(CollectionService) CollectionService // returns a decorated CollectionService applying additional behavior
}
