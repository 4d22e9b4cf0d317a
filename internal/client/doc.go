// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The flashcards Authors

// Package client implements the command line client.
//
// Every invocation is one application session: it opens the local store,
// restores the saved login, starts the sync engine (which pulls the remote
// collection once when logged in), runs the command and stops the engine,
// pushing whatever the command queued.
package client
