package http

import (
	"context"
	"net/http"

	"github.com/ErikSvanes/flashcards/internal/app"
	"github.com/ErikSvanes/flashcards/internal/logger"
	"github.com/ErikSvanes/flashcards/internal/utils"
)

// auth admits requests carrying a valid bearer token and puts the token
// owner under [utils.UserIDCtxKey]. Everything else is 401. A token that
// parses but is rejected answers [app.MsgTokenIsExpiredOrInvalid], which the
// client treats as an ended session.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		signed, err := bearer(r)
		if err != nil {
			logger.FromRequest(r).Err(err).Str("func", "*Handler.auth").Send()
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		token, err := h.services.AuthService.ParseToken(r.Context(), signed)
		if err != nil {
			logger.FromRequest(r).Err(err).Str("func", "*Handler.auth").Msg("token rejected")
			http.Error(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), utils.UserIDCtxKey, token.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearer(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", ErrEmptyAuthorizationHeader
	}
	return utils.ParseBearerToken(header)
}
