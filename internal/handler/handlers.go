// Package handler assembles the inbound transport handlers of the backend.
package handler

import (
	"strings"

	"github.com/ErikSvanes/flashcards/internal/config"
	"github.com/ErikSvanes/flashcards/internal/handler/http"
	"github.com/ErikSvanes/flashcards/internal/logger"
	"github.com/ErikSvanes/flashcards/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg *config.ServerConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if strings.TrimSpace(cfg.HTTPAddress) == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{HTTP: http.NewHandler(services, logger)}, nil
}
