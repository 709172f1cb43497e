package model

import (
	"time"
)

// Default appearance for folders created without explicit styling.
const (
	DefaultFolderColor = "#3b82f6"
	DefaultFolderIcon  = "📁"
)

// Folder is a top-level organizational grouping for projects. Folders may be
// nested; ParentID is nil for root folders.
type Folder struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Color       string  `json:"color"`
	Icon        string  `json:"icon"`
	ParentID    *string `json:"parentId,omitempty"`

	// Path holds the ancestor names from root to this folder, used for
	// breadcrumb display. It must stay consistent with the ParentID chain.
	Path []string `json:"path"`

	// ProjectCount is a cached count of projects owned by this folder.
	ProjectCount int `json:"projectCount"`

	// IsExpanded mirrors the sidebar expansion state on reads. The canonical
	// expansion set lives on the store and is serialized separately.
	IsExpanded bool `json:"-"`

	// LastModified is bumped by any mutation in this folder's subtree and
	// drives the "recently active" sidebar ordering.
	LastModified time.Time `json:"lastModified"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// IsRoot returns true if the folder has no parent.
func (f *Folder) IsRoot() bool {
	return f.ParentID == nil
}

// Breadcrumb returns the display path, e.g. "Work / Clients / Acme".
func (f *Folder) Breadcrumb(sep string) string {
	out := ""
	for i, name := range f.Path {
		if i > 0 {
			out += sep
		}
		out += name
	}
	return out
}
