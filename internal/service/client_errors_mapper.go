// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The flashcards Authors

package service

import (
	"errors"
	"strings"

	"github.com/ErikSvanes/flashcards/internal/adapter"
	"github.com/ErikSvanes/flashcards/internal/app"
	"github.com/ErikSvanes/flashcards/internal/store"
)

type adapterErrorRule struct {
	transport error
	// body is the app.Msg* text the backend wrote; empty matches any body.
	body   string
	mapped error
}

var adapterErrorRules = []adapterErrorRule{
	{adapter.ErrBadRequest, app.MsgInvalidDataProvided, ErrInvalidDataProvided},
	{adapter.ErrBadRequest, app.MsgNoUserIDProvided, ErrValidationNoUserID},
	{adapter.ErrUnauthorized, app.MsgInvalidLoginPassword, ErrWrongPassword},
	{adapter.ErrUnauthorized, app.MsgTokenIsExpiredOrInvalid, ErrTokenIsExpiredOrInvalid},
	{adapter.ErrForbidden, "", ErrAccessDenied},
	{adapter.ErrNotFound, app.MsgParentNotFound, store.ErrParentNotFound},
	{adapter.ErrConflict, app.MsgLoginAlreadyExists, store.ErrLoginAlreadyExists},
	{adapter.ErrBadGateway, app.MsgRegistrationFailed, ErrRegisterOnServer},
	{adapter.ErrBadGateway, app.MsgLoginFailed, ErrLoginOnServer},
	{adapter.ErrInternalServerError, app.MsgInternalServerError, ErrTokenCreationFailed},
}

// mapAdapterError turns a transport error of the auth endpoints into the
// matching service error. Unrecognized errors are returned unchanged.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	body := responseBody(err)
	for _, rule := range adapterErrorRules {
		if errors.Is(err, rule.transport) && (rule.body == "" || rule.body == body) {
			return rule.mapped
		}
	}
	return err
}

// responseBody returns the part after the sentinel prefix of an error built
// as "<sentinel>: <body>".
func responseBody(err error) string {
	_, body, found := strings.Cut(err.Error(), ": ")
	if !found {
		return err.Error()
	}
	return body
}
