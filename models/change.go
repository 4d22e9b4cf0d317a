package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnknownChangeKind is returned when a persisted change carries a kind
// this build does not know.
var ErrUnknownChangeKind = errors.New("unknown change kind")

// ChangeKind names one variant of [Change]. The values double as the
// persisted "type" tag.
type ChangeKind string

const (
	KindAddSet       ChangeKind = "addSet"
	KindUpdateSet    ChangeKind = "updateSet"
	KindDeleteSet    ChangeKind = "deleteSet"
	KindAddCard      ChangeKind = "addCard"
	KindEditCard     ChangeKind = "editCard"
	KindDeleteCard   ChangeKind = "deleteCard"
	KindAddFolder    ChangeKind = "addFolder"
	KindUpdateFolder ChangeKind = "updateFolder"
	KindDeleteFolder ChangeKind = "deleteFolder"
)

// Change is a single local mutation that still has to be replayed against
// the remote store. The set of implementations is closed: only the types in
// this file satisfy it.
type Change interface {
	// Kind returns the variant tag.
	Kind() ChangeKind

	// TargetID returns the identifier of the entity the change is about.
	TargetID() string

	isChange()
}

// AddSet creates a set. Data carries the full entity.
type AddSet struct {
	Data Set `json:"data"`
}

// UpdateSet applies a partial update to a set.
type UpdateSet struct {
	SetID   string    `json:"setId"`
	Updates SetUpdate `json:"updates"`
}

// DeleteSet removes a set and its cards.
type DeleteSet struct {
	SetID string `json:"setId"`
}

// AddCard creates a card inside SetID.
type AddCard struct {
	SetID string `json:"setId"`
	Data  Card   `json:"data"`
}

// EditCard replaces every field of an existing card.
type EditCard struct {
	SetID string `json:"setId"`
	Data  Card   `json:"data"`
}

// DeleteCard removes a card from SetID.
type DeleteCard struct {
	SetID  string `json:"setId"`
	CardID string `json:"cardId"`
}

// AddFolder creates a folder.
type AddFolder struct {
	Data Folder `json:"data"`
}

// UpdateFolder applies a partial update to a folder.
type UpdateFolder struct {
	FolderID string       `json:"folderId"`
	Updates  FolderUpdate `json:"updates"`
}

// DeleteFolder removes a folder.
type DeleteFolder struct {
	FolderID string `json:"folderId"`
}

func (AddSet) Kind() ChangeKind       { return KindAddSet }
func (UpdateSet) Kind() ChangeKind    { return KindUpdateSet }
func (DeleteSet) Kind() ChangeKind    { return KindDeleteSet }
func (AddCard) Kind() ChangeKind      { return KindAddCard }
func (EditCard) Kind() ChangeKind     { return KindEditCard }
func (DeleteCard) Kind() ChangeKind   { return KindDeleteCard }
func (AddFolder) Kind() ChangeKind    { return KindAddFolder }
func (UpdateFolder) Kind() ChangeKind { return KindUpdateFolder }
func (DeleteFolder) Kind() ChangeKind { return KindDeleteFolder }

func (c AddSet) TargetID() string       { return c.Data.ID }
func (c UpdateSet) TargetID() string    { return c.SetID }
func (c DeleteSet) TargetID() string    { return c.SetID }
func (c AddCard) TargetID() string      { return c.Data.ID }
func (c EditCard) TargetID() string     { return c.Data.ID }
func (c DeleteCard) TargetID() string   { return c.CardID }
func (c AddFolder) TargetID() string    { return c.Data.ID }
func (c UpdateFolder) TargetID() string { return c.FolderID }
func (c DeleteFolder) TargetID() string { return c.FolderID }

func (AddSet) isChange()       {}
func (UpdateSet) isChange()    {}
func (DeleteSet) isChange()    {}
func (AddCard) isChange()      {}
func (EditCard) isChange()     {}
func (DeleteCard) isChange()   {}
func (AddFolder) isChange()    {}
func (UpdateFolder) isChange() {}
func (DeleteFolder) isChange() {}

// PendingChange is one entry of the change queue. ID is the entry identity
// inside the queue; it is unrelated to the entity identifier of the change.
type PendingChange struct {
	ID     uint64
	Change Change
}

type pendingChangeJSON struct {
	ID      uint64          `json:"id"`
	Type    ChangeKind      `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// MarshalJSON encodes the change as {"id","type","payload"}.
func (p PendingChange) MarshalJSON() ([]byte, error) {
	if p.Change == nil {
		return nil, fmt.Errorf("pending change %d: %w", p.ID, ErrUnknownChangeKind)
	}

	payload, err := json.Marshal(p.Change)
	if err != nil {
		return nil, fmt.Errorf("encode %s payload: %w", p.Change.Kind(), err)
	}

	return json.Marshal(pendingChangeJSON{ID: p.ID, Type: p.Change.Kind(), Payload: payload})
}

// UnmarshalJSON decodes the form written by [PendingChange.MarshalJSON].
func (p *PendingChange) UnmarshalJSON(b []byte) error {
	var raw pendingChangeJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	change, err := decodeChange(raw.Type, raw.Payload)
	if err != nil {
		return err
	}

	p.ID = raw.ID
	p.Change = change
	return nil
}

func decodeChange(kind ChangeKind, payload json.RawMessage) (Change, error) {
	switch kind {
	case KindAddSet:
		return decodeAs[AddSet](payload)
	case KindUpdateSet:
		return decodeAs[UpdateSet](payload)
	case KindDeleteSet:
		return decodeAs[DeleteSet](payload)
	case KindAddCard:
		return decodeAs[AddCard](payload)
	case KindEditCard:
		return decodeAs[EditCard](payload)
	case KindDeleteCard:
		return decodeAs[DeleteCard](payload)
	case KindAddFolder:
		return decodeAs[AddFolder](payload)
	case KindUpdateFolder:
		return decodeAs[UpdateFolder](payload)
	case KindDeleteFolder:
		return decodeAs[DeleteFolder](payload)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownChangeKind, kind)
	}
}

func decodeAs[T Change](payload json.RawMessage) (Change, error) {
	var v T
	if err := json.Unmarshal(payload, &v); err != nil {
		return nil, fmt.Errorf("decode %s payload: %w", v.Kind(), err)
	}
	return v, nil
}
