// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The flashcards Authors

package server

import "context"

// Server is the lifecycle contract of the backend transport.
type Server interface {
	// RunServer serves requests until ctx is canceled or a termination
	// signal arrives, then shuts down gracefully.
	RunServer(ctx context.Context) error

	// Shutdown stops accepting requests and waits for in-flight ones to
	// finish or for ctx to expire.
	Shutdown(ctx context.Context) error
}
