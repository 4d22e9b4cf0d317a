package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ErikSvanes/flashcards/internal/adapter"
	"github.com/ErikSvanes/flashcards/internal/logger"
	"github.com/ErikSvanes/flashcards/internal/store"
	"github.com/ErikSvanes/flashcards/internal/utils"
	"github.com/ErikSvanes/flashcards/models"
)

type clientAuthService struct {
	localStore store.LocalStorage
	adapter    adapter.AuthAdapter

	now func() time.Time

	logger *logger.Logger
}

func NewClientAuthService(localStore store.LocalStorage, authAdapter adapter.AuthAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{localStore: localStore, adapter: authAdapter, now: time.Now, logger: logger}
}

func (a *clientAuthService) Register(ctx context.Context, user models.User) error {
	token, err := a.adapter.Register(ctx, user)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRegisterOnServer, mapAdapterError(err))
	}

	return a.saveSession(ctx, user.Login, token)
}

func (a *clientAuthService) Login(ctx context.Context, user models.User) error {
	token, err := a.adapter.Login(ctx, user)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLoginOnServer, mapAdapterError(err))
	}

	return a.saveSession(ctx, user.Login, token)
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	a.adapter.SetToken("")
	if err := a.localStore.ClearSession(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

func (a *clientAuthService) RestoreSession(ctx context.Context) (models.Session, error) {
	session, ok := a.validSession(ctx)
	if !ok {
		return models.Session{}, ErrNotAuthenticated
	}

	a.adapter.SetToken(session.Token)
	return session, nil
}

func (a *clientAuthService) IsAuthenticated(ctx context.Context) bool {
	_, ok := a.validSession(ctx)
	return ok
}

func (a *clientAuthService) CurrentUserID(ctx context.Context) string {
	session, ok := a.validSession(ctx)
	if !ok {
		return ""
	}
	return session.UserID
}

// validSession returns the stored session if its token has not expired.
// The signature is not checked here; the backend does that on every request.
func (a *clientAuthService) validSession(ctx context.Context) (models.Session, bool) {
	session, err := a.localStore.ReadSession(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrLocalSessionNotFound) {
			logger.FromContext(ctx).Err(err).Str("func", "*clientAuthService.validSession").Msg("error reading session")
		}
		return models.Session{}, false
	}

	token, err := utils.ParseUnverifiedToken(session.Token)
	if err != nil {
		return models.Session{}, false
	}
	if token.ExpiresAt != nil && !a.now().Before(token.ExpiresAt.Time) {
		return models.Session{}, false
	}
	return session, true
}

func (a *clientAuthService) saveSession(ctx context.Context, login string, token models.Token) error {
	session := models.Session{
		UserID: token.UserID,
		Login:  login,
		Token:  token.SignedString,
		At:     a.now().UTC(),
	}
	if err := a.localStore.WriteSession(ctx, session); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	a.adapter.SetToken(token.SignedString)
	return nil
}
