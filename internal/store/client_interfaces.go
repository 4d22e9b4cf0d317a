// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The flashcards Authors

package store

import (
	"context"

	"github.com/ErikSvanes/flashcards/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalStorage is the device-local persistence of the collection, the change
// queue and the login session. Every key is read and written as a whole.
type LocalStorage interface {
	ReadSets(ctx context.Context) ([]models.Set, error)
	WriteSets(ctx context.Context, sets []models.Set) error

	ReadFolders(ctx context.Context) ([]models.Folder, error)
	WriteFolders(ctx context.Context, folders []models.Folder) error

	// ReadQueue returns the pending changes, the next entry id and the last
	// successful sync time.
	ReadQueue(ctx context.Context) (models.QueueState, error)
	WriteQueue(ctx context.Context, state models.QueueState) error

	// ReadSession returns ErrLocalSessionNotFound when nobody is logged in.
	ReadSession(ctx context.Context) (models.Session, error)
	WriteSession(ctx context.Context, session models.Session) error
	ClearSession(ctx context.Context) error
}
