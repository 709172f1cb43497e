package board

import (
	"fmt"
	"strings"
	"time"

	"github.com/RJD02/life-quest/internal/model"
)

// NewProject carries the caller-supplied fields for AddProject.
type NewProject struct {
	Name        string
	Description string
	FolderID    string
	Status      model.ProjectStatus
	Priority    model.ProjectPriority
	DueDate     *time.Time
	StartDate   *time.Time
}

// AddProject creates a project inside an existing folder and bumps that
// folder's recency stamp.
func (s *Store) AddProject(in NewProject) (model.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.TrimSpace(in.Name) == "" {
		return model.Project{}, validationErr("name", "must not be empty")
	}
	if s.folderAt(in.FolderID) == nil {
		return model.Project{}, validationErr("folderId", "references an unknown folder")
	}
	if in.Status == "" {
		in.Status = model.ProjectActive
	}
	if in.Priority == "" {
		in.Priority = model.ProjectPriorityMedium
	}

	now := s.now()
	p := model.Project{
		ID:           s.newID(),
		Name:         in.Name,
		Description:  in.Description,
		FolderID:     in.FolderID,
		Status:       in.Status,
		Priority:     in.Priority,
		DueDate:      in.DueDate,
		StartDate:    in.StartDate,
		LastModified: now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.projects = append(s.projects, p)

	s.recountFolderLocked(in.FolderID)
	s.touchFolderLocked(in.FolderID, now)

	s.record(model.EntityProject, p.ID, model.ActionCreated, fmt.Sprintf("created project %q", p.Name), nil)
	s.changed()
	return p, nil
}

// ProjectPatch is a partial update; nil fields are left untouched.
type ProjectPatch struct {
	Name        *string
	Description *string
	FolderID    *string
	Status      *model.ProjectStatus
	Priority    *model.ProjectPriority
	DueDate     *time.Time
	StartDate   *time.Time
}

// UpdateProject applies a partial patch and cascades a recency bump to the
// owning folder. When the patch moves the project to a different folder, both
// the old and the new folder are bumped.
func (s *Store) UpdateProject(id string, patch ProjectPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.projectAt(id)
	if p == nil {
		return ErrNotFound
	}

	// Validate the whole patch before writing anything.
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return validationErr("name", "must not be empty")
	}
	if patch.FolderID != nil && s.folderAt(*patch.FolderID) == nil {
		return validationErr("folderId", "references an unknown folder")
	}

	oldFolder := p.FolderID
	if patch.FolderID != nil && *patch.FolderID != oldFolder {
		p.FolderID = *patch.FolderID
	}
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	if patch.Priority != nil {
		p.Priority = *patch.Priority
	}
	if patch.DueDate != nil {
		d := *patch.DueDate
		p.DueDate = &d
	}
	if patch.StartDate != nil {
		d := *patch.StartDate
		p.StartDate = &d
	}

	now := s.now()
	p.UpdatedAt = now
	p.LastModified = now
	s.touchFolderLocked(p.FolderID, now)
	if p.FolderID != oldFolder {
		s.touchFolderLocked(oldFolder, now)
		s.recountFolderLocked(oldFolder)
		s.recountFolderLocked(p.FolderID)
	}

	s.record(model.EntityProject, id, model.ActionUpdated, fmt.Sprintf("updated project %q", p.Name), nil)
	s.changed()
	return nil
}

// DeleteProject removes a project and, by policy, its task lists, tasks, and
// comments. The former folder gets a recency bump.
func (s *Store) DeleteProject(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.projectAt(id)
	if p == nil {
		return ErrNotFound
	}
	name := p.Name
	folderID := p.FolderID

	s.removeProjectsLocked([]string{id})
	s.recountFolderLocked(folderID)
	s.touchFolderLocked(folderID, s.now())

	s.record(model.EntityProject, id, model.ActionDeleted, fmt.Sprintf("deleted project %q", name), nil)
	s.changed()
	return nil
}

// BumpProjectLastModified refreshes the project's recency stamp and chains to
// its folder. It is the hook used by cascading propagation from tasks.
func (s *Store) BumpProjectLastModified(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.projectAt(id) == nil {
		return ErrNotFound
	}
	s.touchProjectLocked(id, s.now())
	s.changed()
	return nil
}

// removeProjectsLocked drops the given projects along with their lists,
// tasks, and task comments. No per-entity activity entries are recorded; the
// caller logs the root deletion.
func (s *Store) removeProjectsLocked(projectIDs []string) {
	if len(projectIDs) == 0 {
		return
	}
	gone := NewIDSet(projectIDs...)

	doomedTasks := NewIDSet()
	keptTasks := s.tasks[:0]
	for i := range s.tasks {
		if gone.Has(s.tasks[i].ProjectID) {
			doomedTasks.Add(s.tasks[i].ID)
		} else {
			keptTasks = append(keptTasks, s.tasks[i])
		}
	}
	s.tasks = keptTasks

	keptComments := s.comments[:0]
	for i := range s.comments {
		if !doomedTasks.Has(s.comments[i].TaskID) {
			keptComments = append(keptComments, s.comments[i])
		}
	}
	s.comments = keptComments

	keptLists := s.lists[:0]
	for i := range s.lists {
		if !gone.Has(s.lists[i].ProjectID) {
			keptLists = append(keptLists, s.lists[i])
		}
	}
	s.lists = keptLists

	keptProjects := s.projects[:0]
	for i := range s.projects {
		if !gone.Has(s.projects[i].ID) {
			keptProjects = append(keptProjects, s.projects[i])
		}
	}
	s.projects = keptProjects
}
