package service

import (
	"github.com/ErikSvanes/flashcards/internal/adapter"
	"github.com/ErikSvanes/flashcards/internal/config"
	"github.com/ErikSvanes/flashcards/internal/logger"
	"github.com/ErikSvanes/flashcards/internal/store"
)

type ClientServices struct {
	AuthService       ClientAuthService
	CollectionService ClientCollectionService
	SyncEngine        *SyncEngine
}

func NewClientServices(localStore store.LocalStorage, serverAdapter adapter.ServerAdapter, cfg config.ClientWorkers, logger *logger.Logger) *ClientServices {
	authSvc := NewClientAuthService(localStore, serverAdapter, logger)
	engine := NewSyncEngine(localStore, serverAdapter, authSvc, cfg, logger)

	return &ClientServices{
		AuthService:       authSvc,
		CollectionService: NewClientCollectionService(localStore, authSvc, engine, logger),
		SyncEngine:        engine,
	}
}
