// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The flashcards Authors

// Package validators checks backend requests before they reach storage:
// identifier shape, text lengths, self-parenting and credentials.
package validators

import "context"

// Validator checks obj. When fields are given only the checks for those
// fields run; an unknown field name is an error.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
