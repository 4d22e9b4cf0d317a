// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The flashcards Authors

// Package adapter provides the client side of the flashcards backend API.
//
// [RemoteStore] is the port the sync engine replays pending changes against;
// [AuthAdapter] obtains and holds the bearer token. [ServerAdapter] combines
// both and is implemented over HTTP/REST by [NewHTTPServerAdapter].
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrUnauthorized]
// for 401, [ErrConflict] for 409).
package adapter

import (
	"context"

	"github.com/ErikSvanes/flashcards/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// RemoteStore is the backend copy of the collection. Every write is an
// upsert keyed by the client-assigned id or a delete that succeeds when the
// row is already gone, so replaying a change is harmless.
type RemoteStore interface {
	UpsertSet(ctx context.Context, setID string, fields models.SetUpdate) error
	UpsertCard(ctx context.Context, setID string, card models.Card) error
	UpsertFolder(ctx context.Context, folderID string, fields models.FolderUpdate) error

	DeleteSet(ctx context.Context, setID string) error
	DeleteCard(ctx context.Context, setID, cardID string) error
	DeleteFolder(ctx context.Context, folderID string) error

	// FetchAllSets returns every set of ownerID with its cards in creation
	// order.
	FetchAllSets(ctx context.Context, ownerID string) ([]models.Set, error)
	FetchAllFolders(ctx context.Context, ownerID string) ([]models.Folder, error)
}

// AuthAdapter exchanges credentials for a bearer token and keeps the token
// for subsequent requests.
type AuthAdapter interface {
	// SetToken stores the bearer token attached to authenticated requests.
	// An empty token signs the adapter out.
	SetToken(token string)

	// Token returns the current bearer token, or "" if none is set.
	Token() string

	// Register creates an account and stores the returned token.
	Register(ctx context.Context, user models.User) (models.Token, error)

	// Login authenticates and stores the returned token.
	Login(ctx context.Context, user models.User) (models.Token, error)
}

// ServerAdapter is the complete client view of the backend.
type ServerAdapter interface {
	AuthAdapter
	RemoteStore

	// Version returns the backend build version.
	Version(ctx context.Context) (string, error)
}
