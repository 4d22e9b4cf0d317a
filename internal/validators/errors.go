// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The flashcards Authors

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidID          = errors.New("invalid identifier")
	ErrNameTooLong        = errors.New("name is too long")
	ErrDescriptionTooLong = errors.New("description is too long")
	ErrTextTooLong        = errors.New("card text is too long")
	ErrImageURLTooLong    = errors.New("image url is too long")
	ErrSelfParent         = errors.New("item cannot be its own parent")
	ErrEmptyLogin         = errors.New("login is required")
	ErrLoginTooLong       = errors.New("login is too long")
	ErrEmptyPassword      = errors.New("password is required")
)
