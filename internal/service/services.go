package service

import (
	"fmt"

	"github.com/ErikSvanes/flashcards/internal/config"
	"github.com/ErikSvanes/flashcards/internal/logger"
	"github.com/ErikSvanes/flashcards/internal/store"
)

type Services struct {
	AuthService       AuthService
	CollectionService CollectionService
	AppInfoService    AppInfoService
}

func NewServices(repositories *store.Repositories, cfg *config.ServerConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	collectionService := NewCollectionValidationService().
		Wrap(NewCollectionService(repositories.CollectionRepository, logger))

	return &Services{
		AuthService:       NewAuthService(repositories.UserRepository, cfg.App, logger),
		CollectionService: collectionService,
		AppInfoService:    appInfoService,
	}, nil
}
