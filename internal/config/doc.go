// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The flashcards Authors

// Package config provides configuration loading, merging, and validation
// facilities for the flashcards client and backend.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  0. Built-in defaults
//  1. Environment variables, optionally seeded from a .env file
//  2. Command-line flags (or explicit overrides built by the client CLI)
//  3. JSON config file
//
// The main entry points are [GetServerConfig] for the backend and
// [GetClientConfig] for the command line client.
package config
