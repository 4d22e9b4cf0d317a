package service

import (
	"context"
	"fmt"

	"github.com/ErikSvanes/flashcards/internal/validators"
	"github.com/ErikSvanes/flashcards/models"
)

// CollectionValidationService rejects malformed requests before they reach
// the wrapped [CollectionService]. Every rejection wraps
// ErrInvalidDataProvided.
type CollectionValidationService struct {
	inner     CollectionService
	validator validators.Validator
}

func NewCollectionValidationService() CollectionServiceWrapper {
	return &CollectionValidationService{
		validator: validators.NewCollectionValidator(),
	}
}

func (v *CollectionValidationService) UpsertSet(ctx context.Context, userID, setID string, fields models.SetUpdate) error {
	if err := v.validate(ctx, validators.SetRequest{SetID: setID, Fields: fields}); err != nil {
		return err
	}
	return v.inner.UpsertSet(ctx, userID, setID, fields)
}

func (v *CollectionValidationService) UpsertCard(ctx context.Context, userID, setID string, card models.Card) error {
	if err := v.validate(ctx, validators.CardRequest{SetID: setID, Card: card}); err != nil {
		return err
	}
	return v.inner.UpsertCard(ctx, userID, setID, card)
}

func (v *CollectionValidationService) UpsertFolder(ctx context.Context, userID, folderID string, fields models.FolderUpdate) error {
	if err := v.validate(ctx, validators.FolderRequest{FolderID: folderID, Fields: fields}); err != nil {
		return err
	}
	return v.inner.UpsertFolder(ctx, userID, folderID, fields)
}

func (v *CollectionValidationService) DeleteSet(ctx context.Context, userID, setID string) error {
	if err := v.validate(ctx, validators.IDs{setID}); err != nil {
		return err
	}
	return v.inner.DeleteSet(ctx, userID, setID)
}

func (v *CollectionValidationService) DeleteCard(ctx context.Context, userID, setID, cardID string) error {
	if err := v.validate(ctx, validators.IDs{setID, cardID}); err != nil {
		return err
	}
	return v.inner.DeleteCard(ctx, userID, setID, cardID)
}

func (v *CollectionValidationService) DeleteFolder(ctx context.Context, userID, folderID string) error {
	if err := v.validate(ctx, validators.IDs{folderID}); err != nil {
		return err
	}
	return v.inner.DeleteFolder(ctx, userID, folderID)
}

func (v *CollectionValidationService) GetSets(ctx context.Context, userID string) ([]models.Set, error) {
	return v.inner.GetSets(ctx, userID)
}

func (v *CollectionValidationService) GetFolders(ctx context.Context, userID string) ([]models.Folder, error) {
	return v.inner.GetFolders(ctx, userID)
}

func (v *CollectionValidationService) Wrap(wrapper CollectionService) CollectionService {
	v.inner = wrapper
	return v
}

func (v *CollectionValidationService) validate(ctx context.Context, obj any) error {
	if err := v.validator.Validate(ctx, obj); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return nil
}
