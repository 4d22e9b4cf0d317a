// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The flashcards Authors

package handler

import "errors"

// errNoHandlersAreCreated is returned by NewHandlers when the backend has no
// listen address. The backend refuses to start in that case.
var errNoHandlersAreCreated = errors.New("no handlers are created")
