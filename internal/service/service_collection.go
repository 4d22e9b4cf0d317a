package service

import (
	"context"
	"fmt"

	"github.com/ErikSvanes/flashcards/internal/logger"
	"github.com/ErikSvanes/flashcards/internal/store"
	"github.com/ErikSvanes/flashcards/models"
)

type collectionService struct {
	repository store.CollectionRepository

	logger *logger.Logger
}

// NewCollectionService returns the repository-backed [CollectionService].
func NewCollectionService(repository store.CollectionRepository, logger *logger.Logger) CollectionService {
	return &collectionService{repository: repository, logger: logger}
}

func (s *collectionService) UpsertSet(ctx context.Context, userID, setID string, fields models.SetUpdate) error {
	if userID == "" {
		return ErrValidationNoUserID
	}
	if err := s.repository.UpsertSet(ctx, userID, setID, fields); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*collectionService.UpsertSet").Str("set_id", setID).Msg("upsert failed")
		return fmt.Errorf("upsert set %s: %w", setID, err)
	}
	return nil
}

func (s *collectionService) UpsertCard(ctx context.Context, userID, setID string, card models.Card) error {
	if userID == "" {
		return ErrValidationNoUserID
	}
	if err := s.repository.UpsertCard(ctx, userID, setID, card); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*collectionService.UpsertCard").
			Str("set_id", setID).Str("card_id", card.ID).Msg("upsert failed")
		return fmt.Errorf("upsert card %s/%s: %w", setID, card.ID, err)
	}
	return nil
}

func (s *collectionService) UpsertFolder(ctx context.Context, userID, folderID string, fields models.FolderUpdate) error {
	if userID == "" {
		return ErrValidationNoUserID
	}
	if err := s.repository.UpsertFolder(ctx, userID, folderID, fields); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*collectionService.UpsertFolder").Str("folder_id", folderID).Msg("upsert failed")
		return fmt.Errorf("upsert folder %s: %w", folderID, err)
	}
	return nil
}

func (s *collectionService) DeleteSet(ctx context.Context, userID, setID string) error {
	if userID == "" {
		return ErrValidationNoUserID
	}
	if err := s.repository.DeleteSet(ctx, userID, setID); err != nil {
		return fmt.Errorf("delete set %s: %w", setID, err)
	}
	return nil
}

func (s *collectionService) DeleteCard(ctx context.Context, userID, setID, cardID string) error {
	if userID == "" {
		return ErrValidationNoUserID
	}
	if err := s.repository.DeleteCard(ctx, userID, setID, cardID); err != nil {
		return fmt.Errorf("delete card %s/%s: %w", setID, cardID, err)
	}
	return nil
}

// DeleteFolder removes the folder together with its subtree.
func (s *collectionService) DeleteFolder(ctx context.Context, userID, folderID string) error {
	if userID == "" {
		return ErrValidationNoUserID
	}
	if err := s.repository.DeleteFolder(ctx, userID, folderID); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*collectionService.DeleteFolder").Str("folder_id", folderID).Msg("delete failed")
		return fmt.Errorf("delete folder %s: %w", folderID, err)
	}
	return nil
}

func (s *collectionService) GetSets(ctx context.Context, userID string) ([]models.Set, error) {
	if userID == "" {
		return nil, ErrValidationNoUserID
	}
	sets, err := s.repository.GetSets(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get sets: %w", err)
	}
	return sets, nil
}

func (s *collectionService) GetFolders(ctx context.Context, userID string) ([]models.Folder, error) {
	if userID == "" {
		return nil, ErrValidationNoUserID
	}
	folders, err := s.repository.GetFolders(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get folders: %w", err)
	}
	return folders, nil
}
