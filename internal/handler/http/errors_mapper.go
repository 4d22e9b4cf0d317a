package http

import (
	"errors"
	"net/http"

	"github.com/ErikSvanes/flashcards/internal/app"
	"github.com/ErikSvanes/flashcards/internal/logger"
	"github.com/ErikSvanes/flashcards/internal/service"
	"github.com/ErikSvanes/flashcards/internal/store"
)

type errorResponse struct {
	target error
	status int
	msg    string
}

// errorResponses is checked in order; the first match wins.
var errorResponses = []errorResponse{
	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{service.ErrValidationNoUserID, http.StatusBadRequest, app.MsgNoUserIDProvided},
	{service.ErrVersionIsNotSpecified, http.StatusBadRequest, app.MsgInvalidDataProvided},

	{service.ErrWrongPassword, http.StatusUnauthorized, app.MsgInvalidLoginPassword},
	{store.ErrNoUserWasFound, http.StatusUnauthorized, app.MsgInvalidLoginPassword},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},

	{service.ErrAccessDenied, http.StatusForbidden, app.MsgAccessDenied},
	{store.ErrEntityNotFound, http.StatusForbidden, app.MsgAccessDenied},

	{store.ErrParentNotFound, http.StatusNotFound, app.MsgParentNotFound},
	{store.ErrLoginAlreadyExists, http.StatusConflict, app.MsgLoginAlreadyExists},
}

func statusFromError(err error) (int, string) {
	for _, resp := range errorResponses {
		if errors.Is(err, resp.target) {
			return resp.status, resp.msg
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	status, msg := statusFromError(err)

	event := logger.FromRequest(r).Warn()
	if status >= http.StatusInternalServerError {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).Str("func", funcName).Int("status", status).Msg("request failed")

	http.Error(w, msg, status)
}
