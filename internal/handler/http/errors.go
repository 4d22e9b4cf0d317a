// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The flashcards Authors

package http

import "errors"

// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
// request carries no "Authorization" header at all. A header that is present
// but malformed yields [utils.ErrInvalidAuthorizationHeader].
var ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")
