package board

import (
	"fmt"
	"strings"

	"github.com/RJD02/life-quest/internal/model"
)

// NewFolder carries the caller-supplied fields for AddFolder.
type NewFolder struct {
	Name        string
	Description string
	Color       string
	Icon        string
	ParentID    *string
}

// AddFolder creates a folder. The parent, when given, must exist; the
// breadcrumb path is computed from the ancestor chain.
func (s *Store) AddFolder(in NewFolder) (model.Folder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.TrimSpace(in.Name) == "" {
		return model.Folder{}, validationErr("name", "must not be empty")
	}

	var parentPath []string
	if in.ParentID != nil {
		parent := s.folderAt(*in.ParentID)
		if parent == nil {
			return model.Folder{}, validationErr("parentId", "references an unknown folder")
		}
		parentPath = parent.Path
	}
	if in.Color == "" {
		in.Color = model.DefaultFolderColor
	}
	if in.Icon == "" {
		in.Icon = model.DefaultFolderIcon
	}

	now := s.now()
	f := model.Folder{
		ID:           s.newID(),
		Name:         in.Name,
		Description:  in.Description,
		Color:        in.Color,
		Icon:         in.Icon,
		ParentID:     in.ParentID,
		Path:         append(append([]string(nil), parentPath...), in.Name),
		LastModified: now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.folders = append(s.folders, f)

	s.record(model.EntityFolder, f.ID, model.ActionCreated, fmt.Sprintf("created folder %q", f.Name), nil)
	s.changed()
	return cloneFolder(f), nil
}

// FolderPatch is a partial update; nil fields are left untouched. Setting
// MoveToRoot detaches the folder from its parent.
type FolderPatch struct {
	Name        *string
	Description *string
	Color       *string
	Icon        *string
	ParentID    *string
	MoveToRoot  bool
}

// UpdateFolder applies a partial patch. Unknown ids return ErrNotFound;
// reparenting validates the new parent and rejects cycles.
func (s *Store) UpdateFolder(id string, patch FolderPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f := s.folderAt(id)
	if f == nil {
		return ErrNotFound
	}

	// The whole patch is validated before anything is written; a rejected
	// patch must leave no partial effects behind.
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return validationErr("name", "must not be empty")
	}
	if patch.ParentID != nil {
		if *patch.ParentID == id {
			return validationErr("parentId", "folder cannot be its own parent")
		}
		if s.folderAt(*patch.ParentID) == nil {
			return validationErr("parentId", "references an unknown folder")
		}
		if s.isDescendantLocked(*patch.ParentID, id) {
			return validationErr("parentId", "would create a cycle")
		}
	}

	structural := patch.MoveToRoot
	if patch.ParentID != nil {
		pid := *patch.ParentID
		f.ParentID = &pid
		structural = true
	} else if patch.MoveToRoot {
		f.ParentID = nil
	}

	if patch.Name != nil {
		if *patch.Name != f.Name {
			structural = true
		}
		f.Name = *patch.Name
	}
	if patch.Description != nil {
		f.Description = *patch.Description
	}
	if patch.Color != nil {
		f.Color = *patch.Color
	}
	if patch.Icon != nil {
		f.Icon = *patch.Icon
	}

	now := s.now()
	f.UpdatedAt = now
	f.LastModified = now
	if structural {
		s.refreshPathsLocked()
	}

	s.record(model.EntityFolder, id, model.ActionUpdated, fmt.Sprintf("updated folder %q", f.Name), nil)
	s.changed()
	return nil
}

// DeleteFolder removes a folder and, by policy, its entire subtree: child
// folders, their projects, and all dependent lists, tasks, and comments.
func (s *Store) DeleteFolder(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f := s.folderAt(id)
	if f == nil {
		return ErrNotFound
	}
	name := f.Name
	parentID := f.ParentID

	doomed := s.subtreeLocked(id)
	var projectIDs []string
	for i := range s.projects {
		if doomed.Has(s.projects[i].FolderID) {
			projectIDs = append(projectIDs, s.projects[i].ID)
		}
	}
	s.removeProjectsLocked(projectIDs)

	kept := s.folders[:0]
	for i := range s.folders {
		if !doomed.Has(s.folders[i].ID) {
			kept = append(kept, s.folders[i])
		}
	}
	s.folders = kept
	for fid := range doomed {
		s.expanded.Remove(fid)
	}

	if parentID != nil {
		s.touchFolderLocked(*parentID, s.now())
	}

	s.record(model.EntityFolder, id, model.ActionDeleted, fmt.Sprintf("deleted folder %q", name), nil)
	s.changed()
	return nil
}

// ToggleFolderExpansion flips the sidebar expansion flag. Expansion is UI
// state only: no activity entry, no timestamp bumps.
func (s *Store) ToggleFolderExpansion(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.folderAt(id) == nil {
		return ErrNotFound
	}
	s.expanded.Toggle(id)
	s.changed()
	return nil
}

// BumpFolderLastModified refreshes the recency stamp without touching
// UpdatedAt. It is the hook used by cascading propagation from projects.
func (s *Store) BumpFolderLastModified(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f := s.folderAt(id)
	if f == nil {
		return ErrNotFound
	}
	f.LastModified = s.now()
	s.changed()
	return nil
}

// subtreeLocked returns the ids of the folder and all its descendants.
func (s *Store) subtreeLocked(rootID string) IDSet {
	out := NewIDSet(rootID)
	for {
		grew := false
		for i := range s.folders {
			f := &s.folders[i]
			if f.ParentID != nil && out.Has(*f.ParentID) && !out.Has(f.ID) {
				out.Add(f.ID)
				grew = true
			}
		}
		if !grew {
			return out
		}
	}
}

// isDescendantLocked reports whether candidate sits below ancestor in the
// folder tree.
func (s *Store) isDescendantLocked(candidate, ancestor string) bool {
	seen := NewIDSet()
	cur := s.folderAt(candidate)
	for cur != nil && cur.ParentID != nil {
		if seen.Has(cur.ID) {
			return false
		}
		seen.Add(cur.ID)
		if *cur.ParentID == ancestor {
			return true
		}
		cur = s.folderAt(*cur.ParentID)
	}
	return false
}

// refreshPathsLocked recomputes every folder's breadcrumb path from its
// parent chain. Runs after renames and reparenting so the subtree stays
// consistent.
func (s *Store) refreshPathsLocked() {
	memo := make(map[string][]string, len(s.folders))
	var pathOf func(f *model.Folder, depth int) []string
	pathOf = func(f *model.Folder, depth int) []string {
		if p, ok := memo[f.ID]; ok {
			return p
		}
		// depth guard: a corrupted parent chain must not recurse forever
		if f.ParentID == nil || depth > len(s.folders) {
			memo[f.ID] = []string{f.Name}
			return memo[f.ID]
		}
		parent := s.folderAt(*f.ParentID)
		if parent == nil {
			s.log.Warn().Str("folder_id", f.ID).Msg("folder parent missing, treating as root")
			memo[f.ID] = []string{f.Name}
			return memo[f.ID]
		}
		p := append(append([]string(nil), pathOf(parent, depth+1)...), f.Name)
		memo[f.ID] = p
		return p
	}
	for i := range s.folders {
		s.folders[i].Path = pathOf(&s.folders[i], 0)
	}
}
