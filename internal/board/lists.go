package board

import (
	"fmt"
	"strings"

	"github.com/RJD02/life-quest/internal/model"
)

// NewTaskList carries the caller-supplied fields for AddTaskList. A negative
// Position asks the engine to append after the project's current maximum.
type NewTaskList struct {
	Name        string
	Description string
	ProjectID   string
	Position    int
	Color       string
	IsDefault   bool
}

// AddTaskList creates a kanban column for an existing project. No sibling
// renumbering is performed; position is a sort key.
func (s *Store) AddTaskList(in NewTaskList) (model.TaskList, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.TrimSpace(in.Name) == "" {
		return model.TaskList{}, validationErr("name", "must not be empty")
	}
	if s.projectAt(in.ProjectID) == nil {
		return model.TaskList{}, validationErr("projectId", "references an unknown project")
	}

	pos := in.Position
	if pos < 0 {
		pos = 0
		for i := range s.lists {
			if s.lists[i].ProjectID == in.ProjectID && s.lists[i].Position >= pos {
				pos = s.lists[i].Position + 1
			}
		}
	}

	now := s.now()
	l := model.TaskList{
		ID:          s.newID(),
		Name:        in.Name,
		Description: in.Description,
		ProjectID:   in.ProjectID,
		Position:    pos,
		Color:       in.Color,
		IsDefault:   in.IsDefault,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.lists = append(s.lists, l)
	s.touchProjectLocked(in.ProjectID, now)

	s.record(model.EntityList, l.ID, model.ActionCreated, fmt.Sprintf("created list %q", l.Name), nil)
	s.changed()
	return l, nil
}

// ReorderTaskLists rewrites each named list's position to its index in
// orderedListIDs. Every id must name a list of the given project; lists of
// other projects are untouched. This is the canonical way to apply a
// drag-and-drop column reorder.
func (s *Store) ReorderTaskLists(projectID string, orderedListIDs []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.projectAt(projectID) == nil {
		return ErrNotFound
	}
	for _, id := range orderedListIDs {
		l := s.listAt(id)
		if l == nil || l.ProjectID != projectID {
			return validationErr("orderedListIds", fmt.Sprintf("%s is not a list of this project", id))
		}
	}

	now := s.now()
	for idx, id := range orderedListIDs {
		l := s.listAt(id)
		l.Position = idx
		l.UpdatedAt = now
	}
	s.touchProjectLocked(projectID, now)

	s.record(model.EntityProject, projectID, model.ActionUpdated, "reordered task lists", nil)
	s.changed()
	return nil
}

// TaskListPatch is a partial update; nil fields are left untouched.
type TaskListPatch struct {
	Name        *string
	Description *string
	Color       *string
	IsDefault   *bool
}

// UpdateTaskList applies a partial patch to a column.
func (s *Store) UpdateTaskList(id string, patch TaskListPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	l := s.listAt(id)
	if l == nil {
		return ErrNotFound
	}
	if patch.Name != nil {
		if strings.TrimSpace(*patch.Name) == "" {
			return validationErr("name", "must not be empty")
		}
		l.Name = *patch.Name
	}
	if patch.Description != nil {
		l.Description = *patch.Description
	}
	if patch.Color != nil {
		l.Color = *patch.Color
	}
	if patch.IsDefault != nil {
		l.IsDefault = *patch.IsDefault
	}

	now := s.now()
	l.UpdatedAt = now
	s.touchProjectLocked(l.ProjectID, now)

	s.record(model.EntityList, id, model.ActionUpdated, fmt.Sprintf("updated list %q", l.Name), nil)
	s.changed()
	return nil
}

// DeleteTaskList removes a column and, by the same policy as project
// deletion, the tasks and comments inside it.
func (s *Store) DeleteTaskList(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	l := s.listAt(id)
	if l == nil {
		return ErrNotFound
	}
	name, projectID := l.Name, l.ProjectID

	doomedTasks := NewIDSet()
	keptTasks := s.tasks[:0]
	for i := range s.tasks {
		if s.tasks[i].ListID == id {
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
		if s.lists[i].ID != id {
			keptLists = append(keptLists, s.lists[i])
		}
	}
	s.lists = keptLists

	now := s.now()
	s.recountProjectLocked(projectID)
	s.touchProjectLocked(projectID, now)

	s.record(model.EntityList, id, model.ActionDeleted, fmt.Sprintf("deleted list %q", name), nil)
	s.changed()
	return nil
}
