// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The flashcards Authors

package service

import (
	"context"
	"time"

	"github.com/ErikSvanes/flashcards/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// AuthProvider tells the sync engine whether the device owner is logged in
// and who they are.
type AuthProvider interface {
	// IsAuthenticated reports whether a session is stored and its token has
	// not expired.
	IsAuthenticated(ctx context.Context) bool

	// CurrentUserID returns the owner of the stored session, or "" when
	// nobody is logged in.
	CurrentUserID(ctx context.Context) string
}

// ClientAuthService defines the client-side contract for user registration and
// authentication. A successful Register or Login stores the session locally so
// that later processes start authenticated.
type ClientAuthService interface {
	AuthProvider

	// Register creates an account on the server and logs in with it.
	Register(ctx context.Context, user models.User) error

	// Login authenticates against the server and stores the session.
	Login(ctx context.Context, user models.User) error

	// Logout forgets the stored session and the adapter token. Pending changes
	// stay queued.
	Logout(ctx context.Context) error

	// RestoreSession loads the stored session and arms the adapter with its
	// token. Returns ErrNotAuthenticated when there is no usable session.
	RestoreSession(ctx context.Context) (models.Session, error)
}

// Enqueuer accepts local mutations for replication.
type Enqueuer interface {
	Enqueue(ctx context.Context, change models.Change) error
}

// ClientCollectionService applies mutations to the local store first and,
// when the owner is logged in, queues the matching change for the backend.
// Reads never touch the network.
type ClientCollectionService interface {
	// AddSet stores a new set. Missing set and card IDs are generated.
	AddSet(ctx context.Context, set models.Set) (models.Set, error)
	UpdateSet(ctx context.Context, setID string, updates models.SetUpdate) (models.Set, error)
	DeleteSet(ctx context.Context, setID string) error

	// AddCard appends a card to the set. Returns ErrSetNotFound for an
	// unknown set.
	AddCard(ctx context.Context, setID string, card models.Card) (models.Card, error)
	EditCard(ctx context.Context, setID string, card models.Card) (models.Card, error)
	DeleteCard(ctx context.Context, setID, cardID string) error

	AddFolder(ctx context.Context, folder models.Folder) (models.Folder, error)
	UpdateFolder(ctx context.Context, folderID string, updates models.FolderUpdate) (models.Folder, error)

	// DeleteFolder removes the folder, every folder below it and every set
	// inside them. A single deleteFolder change is queued.
	DeleteFolder(ctx context.Context, folderID string) error

	// MoveItem places a folder or set under targetFolderID ("" is the root).
	// Moving a folder into its own subtree returns ErrCircularMove.
	MoveItem(ctx context.Context, kind models.ItemKind, itemID, targetFolderID string) error

	GetSets(ctx context.Context) ([]models.Set, error)
	GetSet(ctx context.Context, setID string) (models.Set, error)
	GetFolders(ctx context.Context) ([]models.Folder, error)

	// GetItemsInFolder lists the direct children of folderID, folders first,
	// each group sorted by name.
	GetItemsInFolder(ctx context.Context, folderID string) ([]models.FolderItem, error)

	// GetFolderPath returns the folders from the root down to folderID.
	GetFolderPath(ctx context.Context, folderID string) ([]models.Folder, error)

	// IsDescendant reports whether folderID lies below ancestorID.
	IsDescendant(ctx context.Context, folderID, ancestorID string) (bool, error)

	// UploadLocalData queues every local folder, set and card for the
	// backend, parents first. It returns the number of queued changes.
	UploadLocalData(ctx context.Context) (int, error)
}

// SyncRunner is one replication pass. It reports whether the pass completed
// without failures.
type SyncRunner interface {
	Run(ctx context.Context) bool
}

// ClientSyncJob defines the contract for a background worker that retries the
// push on a fixed interval.
type ClientSyncJob interface {
	// Start launches the background goroutine. It runs every interval; a zero
	// or negative interval leaves the job disabled. Any previously running
	// job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
