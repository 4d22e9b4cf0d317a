package models

// Card is a single study item. It always belongs to exactly one [Set].
type Card struct {
	// ID is assigned by the client when the card is created and never changes.
	ID string `json:"id"`

	// Term is the prompt side of the card.
	Term string `json:"term"`

	// Definition is the answer side of the card.
	Definition string `json:"definition"`

	// TermImage is an optional image URL shown with the term.
	TermImage string `json:"termImage,omitempty"`

	// DefinitionImage is an optional image URL shown with the definition.
	DefinitionImage string `json:"definitionImage,omitempty"`

	// IsMarkdown marks both sides as markdown.
	IsMarkdown bool `json:"isMarkdown,omitempty"`
}

// Set is a named list of cards placed somewhere in the folder tree.
type Set struct {
	// ID is assigned by the client when the set is created and never changes.
	ID string `json:"id"`

	// Name is the display name of the set.
	Name string `json:"name"`

	// Description is optional free text.
	Description string `json:"description,omitempty"`

	// Cards are kept in creation order.
	Cards []Card `json:"cards"`

	// ParentID is the containing folder. Empty means the root.
	ParentID string `json:"parentId"`
}

// Folder is an inner node of the collection tree.
type Folder struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`

	// ParentID is the containing folder. Empty means the root.
	ParentID string `json:"parentId"`
}

// SetUpdate is a partial update of a [Set]. Only non-nil fields are applied.
// A ParentID pointing to an empty string moves the set to the root.
type SetUpdate struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	ParentID    *string `json:"parentId,omitempty"`
}

// Apply returns a copy of set with the update applied.
func (u SetUpdate) Apply(set Set) Set {
	if u.Name != nil {
		set.Name = *u.Name
	}
	if u.Description != nil {
		set.Description = *u.Description
	}
	if u.ParentID != nil {
		set.ParentID = *u.ParentID
	}
	return set
}

// IsEmpty reports whether the update carries no fields.
func (u SetUpdate) IsEmpty() bool {
	return u.Name == nil && u.Description == nil && u.ParentID == nil
}

// FolderUpdate is a partial update of a [Folder]. Only non-nil fields are
// applied. A ParentID pointing to an empty string moves the folder to the root.
type FolderUpdate struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	ParentID    *string `json:"parentId,omitempty"`
}

// Apply returns a copy of folder with the update applied.
func (u FolderUpdate) Apply(folder Folder) Folder {
	if u.Name != nil {
		folder.Name = *u.Name
	}
	if u.Description != nil {
		folder.Description = *u.Description
	}
	if u.ParentID != nil {
		folder.ParentID = *u.ParentID
	}
	return folder
}

// IsEmpty reports whether the update carries no fields.
func (u FolderUpdate) IsEmpty() bool {
	return u.Name == nil && u.Description == nil && u.ParentID == nil
}

// FullSetUpdate returns the update that recreates every scalar field of set.
func FullSetUpdate(set Set) SetUpdate {
	name, description, parentID := set.Name, set.Description, set.ParentID
	return SetUpdate{Name: &name, Description: &description, ParentID: &parentID}
}

// FullFolderUpdate returns the update that recreates every field of folder.
func FullFolderUpdate(folder Folder) FolderUpdate {
	name, description, parentID := folder.Name, folder.Description, folder.ParentID
	return FolderUpdate{Name: &name, Description: &description, ParentID: &parentID}
}

// ItemKind distinguishes the two node types of the collection tree.
type ItemKind string

const (
	ItemFolder ItemKind = "folder"
	ItemSet    ItemKind = "set"
)

// FolderItem is one entry of a folder listing. Exactly one of Folder and Set
// is non-nil, matching Kind.
type FolderItem struct {
	Kind   ItemKind `json:"type"`
	Folder *Folder  `json:"folder,omitempty"`
	Set    *Set     `json:"set,omitempty"`
}

// Name returns the display name of the underlying node.
func (i FolderItem) Name() string {
	if i.Folder != nil {
		return i.Folder.Name
	}
	if i.Set != nil {
		return i.Set.Name
	}
	return ""
}
