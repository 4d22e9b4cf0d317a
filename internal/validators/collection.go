package validators

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/ErikSvanes/flashcards/models"
)

// Field name constants used to restrict validation to a subset of checks.
const (
	// FieldID targets the client-assigned identifiers of the request.
	FieldID = "id"

	// FieldName targets the display name of a set or folder.
	FieldName = "name"

	// FieldDescription targets the free-text description of a set or folder.
	FieldDescription = "description"

	// FieldParentID targets the containing folder reference.
	FieldParentID = "parent_id"

	// FieldCardText targets the term and definition of a card.
	FieldCardText = "card_text"

	// FieldImages targets the image URLs of a card.
	FieldImages = "images"

	// FieldLogin targets the account login.
	FieldLogin = "login"

	// FieldPassword targets the account password.
	FieldPassword = "password"
)

const (
	maxIDLength          = 128
	maxNameLength        = 256
	maxDescriptionLength = 4096
	maxCardTextLength    = 20000
	maxImageURLLength    = 2048
	maxLoginLength       = 128
)

// SetRequest is a set upsert as received by the backend.
type SetRequest struct {
	SetID  string
	Fields models.SetUpdate
}

// FolderRequest is a folder upsert as received by the backend.
type FolderRequest struct {
	FolderID string
	Fields   models.FolderUpdate
}

// CardRequest is a card upsert as received by the backend.
type CardRequest struct {
	SetID string
	Card  models.Card
}

// IDs is a list of identifiers taken from a request path.
type IDs []string

// CollectionValidator checks requests against the collection endpoints.
type CollectionValidator struct {
}

func NewCollectionValidator() Validator {
	return &CollectionValidator{}
}

// Validate implements [Validator]. Without fields every check applies.
func (v *CollectionValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	if err := checkFields(fields); err != nil {
		return err
	}

	switch value := obj.(type) {
	case SetRequest:
		return v.validateNode(value.SetID, value.Fields.Name, value.Fields.Description, value.Fields.ParentID, fields)
	case *SetRequest:
		return v.validateNode(value.SetID, value.Fields.Name, value.Fields.Description, value.Fields.ParentID, fields)

	case FolderRequest:
		return v.validateNode(value.FolderID, value.Fields.Name, value.Fields.Description, value.Fields.ParentID, fields)
	case *FolderRequest:
		return v.validateNode(value.FolderID, value.Fields.Name, value.Fields.Description, value.Fields.ParentID, fields)

	case CardRequest:
		return v.validateCard(value, fields)
	case *CardRequest:
		return v.validateCard(*value, fields)

	case IDs:
		return validateIDs(value...)

	case models.User:
		return v.validateUser(value, fields)
	case *models.User:
		return v.validateUser(*value, fields)

	default:
		return ErrUnsupportedType
	}
}

func (v *CollectionValidator) validateNode(id string, name, description, parentID *string, fields []string) error {
	if want(fields, FieldID) {
		if err := validateIDs(id); err != nil {
			return err
		}
	}
	if want(fields, FieldName) && name != nil && utf8.RuneCountInString(*name) > maxNameLength {
		return ErrNameTooLong
	}
	if want(fields, FieldDescription) && description != nil && utf8.RuneCountInString(*description) > maxDescriptionLength {
		return ErrDescriptionTooLong
	}
	if want(fields, FieldParentID) && parentID != nil && *parentID != "" {
		if err := validateIDs(*parentID); err != nil {
			return fmt.Errorf("parent: %w", err)
		}
		if *parentID == id {
			return ErrSelfParent
		}
	}
	return nil
}

func (v *CollectionValidator) validateCard(req CardRequest, fields []string) error {
	if want(fields, FieldID) {
		if err := validateIDs(req.SetID, req.Card.ID); err != nil {
			return err
		}
	}
	if want(fields, FieldCardText) {
		if utf8.RuneCountInString(req.Card.Term) > maxCardTextLength ||
			utf8.RuneCountInString(req.Card.Definition) > maxCardTextLength {
			return ErrTextTooLong
		}
	}
	if want(fields, FieldImages) {
		if len(req.Card.TermImage) > maxImageURLLength || len(req.Card.DefinitionImage) > maxImageURLLength {
			return ErrImageURLTooLong
		}
	}
	return nil
}

func (v *CollectionValidator) validateUser(user models.User, fields []string) error {
	if want(fields, FieldLogin) {
		if strings.TrimSpace(user.Login) == "" {
			return ErrEmptyLogin
		}
		if utf8.RuneCountInString(user.Login) > maxLoginLength {
			return ErrLoginTooLong
		}
	}
	if want(fields, FieldPassword) && user.Password == "" {
		return ErrEmptyPassword
	}
	return nil
}

func validateIDs(ids ...string) error {
	for _, id := range ids {
		if strings.TrimSpace(id) == "" || len(id) > maxIDLength || strings.ContainsAny(id, "/?#") {
			return fmt.Errorf("%w: %q", ErrInvalidID, id)
		}
	}
	return nil
}

var knownFields = []string{
	FieldID, FieldName, FieldDescription, FieldParentID,
	FieldCardText, FieldImages, FieldLogin, FieldPassword,
}

func checkFields(fields []string) error {
	for _, f := range fields {
		if !slices.Contains(knownFields, f) {
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}
	return nil
}

// want reports whether field is in scope. An empty scope means all fields.
func want(fields []string, field string) bool {
	return len(fields) == 0 || slices.Contains(fields, field)
}
