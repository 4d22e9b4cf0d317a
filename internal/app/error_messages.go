// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The flashcards Authors

// Package app holds the response messages shared by the backend handlers and
// the client. The backend writes them as plain-text error bodies and the
// client matches on them to restore typed errors, so changing a value is a
// protocol change.
package app

// Request problems.
const (
	MsgInvalidDataProvided = "invalid data provided"
	MsgNoUserIDProvided    = "no user ID provided"
	// MsgParentNotFound answers a write whose set or folder is not on the
	// server yet.
	MsgParentNotFound = "parent entity not found"
	// MsgAccessDenied answers a write to an id owned by another account.
	MsgAccessDenied = "access denied"
)

// Authentication.
const (
	MsgInvalidLoginPassword    = "invalid login/password"
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"
	MsgLoginAlreadyExists      = "login already exists"
	MsgRegistrationFailed      = "registration failed"
	MsgLoginFailed             = "login failed"
)

const MsgInternalServerError = "internal server error"
