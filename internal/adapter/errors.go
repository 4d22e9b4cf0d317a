// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The flashcards Authors

package adapter

import "errors"

// Transport errors mapped from HTTP status codes by mapHTTPError.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
)

var (
	// ErrNoToken is returned by authenticated calls made before SetToken.
	ErrNoToken = errors.New("no bearer token set")

	// ErrOwnerMismatch is returned when a fetch asks for the data of a user
	// other than the token owner.
	ErrOwnerMismatch = errors.New("owner does not match token subject")
)
