package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/ErikSvanes/flashcards/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func ptr(s string) *string { return &s }

func TestCollectionValidator_Sets(t *testing.T) {
	v := NewCollectionValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		req     any
		fields  []string
		wantErr error
	}{
		{
			name: "valid partial update",
			req:  SetRequest{SetID: "s1", Fields: models.SetUpdate{Name: ptr("Bio")}},
		},
		{
			name: "move to root",
			req:  &SetRequest{SetID: "s1", Fields: models.SetUpdate{ParentID: ptr("")}},
		},
		{
			name:    "empty id",
			req:     SetRequest{SetID: " "},
			wantErr: ErrInvalidID,
		},
		{
			name:    "id with slash",
			req:     SetRequest{SetID: "a/b"},
			wantErr: ErrInvalidID,
		},
		{
			name:    "name too long",
			req:     SetRequest{SetID: "s1", Fields: models.SetUpdate{Name: ptr(strings.Repeat("x", maxNameLength+1))}},
			wantErr: ErrNameTooLong,
		},
		{
			name:   "name too long but out of scope",
			req:    SetRequest{SetID: "s1", Fields: models.SetUpdate{Name: ptr(strings.Repeat("x", maxNameLength+1))}},
			fields: []string{FieldID},
		},
		{
			name:    "own parent",
			req:     FolderRequest{FolderID: "f1", Fields: models.FolderUpdate{ParentID: ptr("f1")}},
			wantErr: ErrSelfParent,
		},
		{
			name:    "description too long",
			req:     FolderRequest{FolderID: "f1", Fields: models.FolderUpdate{Description: ptr(strings.Repeat("d", maxDescriptionLength+1))}},
			wantErr: ErrDescriptionTooLong,
		},
		{
			name:    "unknown field",
			req:     SetRequest{SetID: "s1"},
			fields:  []string{"colour"},
			wantErr: ErrUnknownField,
		},
		{
			name:    "unsupported type",
			req:     42,
			wantErr: ErrUnsupportedType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.req, tt.fields...)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCollectionValidator_Cards(t *testing.T) {
	v := NewCollectionValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, CardRequest{SetID: "s1", Card: models.Card{ID: "c1", Term: "t"}}))
	assert.ErrorIs(t, v.Validate(ctx, CardRequest{SetID: "s1", Card: models.Card{}}), ErrInvalidID)
	assert.ErrorIs(t, v.Validate(ctx, &CardRequest{SetID: "s1", Card: models.Card{
		ID:         "c1",
		Definition: strings.Repeat("d", maxCardTextLength+1),
	}}), ErrTextTooLong)
	assert.ErrorIs(t, v.Validate(ctx, CardRequest{SetID: "s1", Card: models.Card{
		ID:        "c1",
		TermImage: "https://example.com/" + strings.Repeat("i", maxImageURLLength),
	}}), ErrImageURLTooLong)
}

func TestCollectionValidator_IDs(t *testing.T) {
	v := NewCollectionValidator()

	assert.NoError(t, v.Validate(context.Background(), IDs{"s1", "c1"}))
	assert.ErrorIs(t, v.Validate(context.Background(), IDs{"s1", ""}), ErrInvalidID)
}

func TestCollectionValidator_User(t *testing.T) {
	v := NewCollectionValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.User{Login: "john", Password: "pw"}))
	assert.ErrorIs(t, v.Validate(ctx, models.User{Password: "pw"}), ErrEmptyLogin)
	assert.ErrorIs(t, v.Validate(ctx, &models.User{Login: "john"}), ErrEmptyPassword)
	assert.NoError(t, v.Validate(ctx, models.User{Login: "john"}, FieldLogin))
	assert.ErrorIs(t, v.Validate(ctx, models.User{Login: strings.Repeat("l", maxLoginLength+1), Password: "pw"}), ErrLoginTooLong)
}
