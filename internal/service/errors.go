// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The flashcards Authors

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrVersionIsNotSpecified   = errors.New("app version is not specified")

	ErrValidationNoUserID = errors.New("no user ID was given")
	ErrAccessDenied       = errors.New("access denied to data of a different user")
)

// Client-side errors.
var (
	ErrRegisterOnServer = errors.New("registration on server failed")
	ErrLoginOnServer    = errors.New("login on server failed")

	// ErrNotAuthenticated is returned when an operation needs a logged-in
	// device owner. Sync runs skip silently on it.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrRemoteOperationFailed marks a single pending change the remote store
	// rejected. The change stays queued.
	ErrRemoteOperationFailed = errors.New("remote operation failed")

	// ErrSnapshotFetchFailed is returned when a pull cannot fetch the remote
	// collection. Local data is left untouched.
	ErrSnapshotFetchFailed = errors.New("remote snapshot fetch failed")

	ErrSetNotFound    = errors.New("set not found")
	ErrCardNotFound   = errors.New("card not found")
	ErrFolderNotFound = errors.New("folder not found")

	// ErrCircularMove is returned when a folder would be moved into itself or
	// one of its descendants.
	ErrCircularMove = errors.New("cannot move a folder into itself or its descendant")
)
