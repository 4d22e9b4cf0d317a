package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ErikSvanes/flashcards/internal/config"
	"github.com/ErikSvanes/flashcards/internal/logger"
	"github.com/ErikSvanes/flashcards/internal/store"
	"github.com/ErikSvanes/flashcards/internal/utils"
	"github.com/ErikSvanes/flashcards/internal/validators"
	"github.com/ErikSvanes/flashcards/models"
	"golang.org/x/crypto/bcrypt"
)

// tokenSettings sign and verify session tokens. Tokens from another issuer
// are rejected.
type tokenSettings struct {
	signKey  string
	issuer   string
	lifetime time.Duration
}

type authService struct {
	users     store.UserRepository
	validator validators.Validator
	ids       *utils.UUIDGenerator
	tokens    tokenSettings

	logger *logger.Logger
}

// NewAuthService returns the account service. It keeps no mutable state.
func NewAuthService(userRepository store.UserRepository, cfg config.ServerApp, logger *logger.Logger) AuthService {
	return &authService{
		users:     userRepository,
		validator: validators.NewCollectionValidator(),
		ids:       utils.NewUUIDGenerator(),
		tokens: tokenSettings{
			signKey:  cfg.TokenSignKey,
			issuer:   cfg.TokenIssuer,
			lifetime: cfg.TokenDuration,
		},
		logger: logger,
	}
}

// RegisterUser stores a new account under a fresh id with a bcrypt hash of
// the password. A taken login surfaces as [store.ErrLoginAlreadyExists].
func (a *authService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	if err := a.checkCredentials(ctx, user); err != nil {
		return models.User{}, err
	}
	log := logger.FromContext(ctx).With().Str("login", user.Login).Logger()

	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Err(err).Msg("hash password")
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}

	created, err := a.users.CreateUser(ctx, models.User{
		UserID:       a.ids.Generate(),
		Login:        user.Login,
		PasswordHash: string(hash),
	})
	if err != nil {
		log.Err(err).Msg("create user")
		return models.User{}, fmt.Errorf("create user: %w", err)
	}
	return created, nil
}

// Login returns the account matching the credentials, without its hash.
// An unknown login surfaces as [store.ErrNoUserWasFound], a wrong password
// as [ErrWrongPassword].
func (a *authService) Login(ctx context.Context, user models.User) (models.User, error) {
	if err := a.checkCredentials(ctx, user); err != nil {
		return models.User{}, err
	}

	found, err := a.users.FindUserByLogin(ctx, user.Login)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("login", user.Login).Msg("find user")
		return models.User{}, fmt.Errorf("find user: %w", err)
	}

	err = bcrypt.CompareHashAndPassword([]byte(found.PasswordHash), []byte(user.Password))
	if err != nil {
		if !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			logger.FromContext(ctx).Err(err).Str("user_id", found.UserID).Msg("stored hash is unusable")
		}
		return models.User{}, ErrWrongPassword
	}

	found.PasswordHash = ""
	return found, nil
}

func (a *authService) checkCredentials(ctx context.Context, user models.User) error {
	err := a.validator.Validate(ctx, user, validators.FieldLogin, validators.FieldPassword)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("login", user.Login).Msg("bad credentials payload")
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return nil
}

// CreateToken signs a session token for user.
func (a *authService) CreateToken(_ context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokens.issuer, user.UserID, a.tokens.lifetime, a.tokens.signKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}
	return token, nil
}

// ParseToken verifies tokenString. Every failure is [ErrTokenIsExpiredOrInvalid].
func (a *authService) ParseToken(_ context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokens.signKey, a.tokens.issuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}
	return token, nil
}
