// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The flashcards Authors

// Package http implements the REST transport of the flashcards backend.
//
// It wires the chi routes, decodes requests, and maps service and store
// errors to status codes with the message bodies the client adapter matches
// on. Tracing, access logging, compression and bearer authentication are
// middlewares of this package.
package http
