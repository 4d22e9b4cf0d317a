// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The flashcards Authors

// Package server runs the backend HTTP transport.
//
// It owns the listener lifecycle: startup, signal handling and graceful
// shutdown within a bounded period.
package server
