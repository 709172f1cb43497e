package board

import (
	"sort"
	"time"

	"github.com/RJD02/life-quest/internal/model"
)

// Read-side queries. Everything returned here is a copy computed on demand
// from canonical state; callers can never mutate the board through a query
// result.

// Folders returns all folders in insertion order with the sidebar expansion
// flag populated.
func (s *Store) Folders() []model.Folder {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Folder, len(s.folders))
	for i := range s.folders {
		out[i] = cloneFolder(s.folders[i])
		out[i].IsExpanded = s.expanded.Has(out[i].ID)
	}
	return out
}

// Folder returns a single folder by id.
func (s *Store) Folder(id string) (model.Folder, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f := s.folderAt(id)
	if f == nil {
		return model.Folder{}, false
	}
	out := cloneFolder(*f)
	out.IsExpanded = s.expanded.Has(id)
	return out, true
}

// FolderExpanded reports the sidebar expansion state for a folder.
func (s *Store) FolderExpanded(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.expanded.Has(id)
}

// RecentlyModifiedFolders returns up to limit folders ordered by
// lastModified, newest first. Ties fall back to creation time and id so the
// ordering is stable.
func (s *Store) RecentlyModifiedFolders(limit int) []model.Folder {
	all := s.Folders()
	sort.SliceStable(all, func(i, j int) bool {
		a, b := all[i], all[j]
		if !a.LastModified.Equal(b.LastModified) {
			return a.LastModified.After(b.LastModified)
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID < b.ID
	})
	if limit > 0 && limit < len(all) {
		all = all[:limit]
	}
	return all
}

// Projects returns all projects in insertion order.
func (s *Store) Projects() []model.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Project(nil), s.projects...)
}

// Project returns a single project by id.
func (s *Store) Project(id string) (model.Project, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.projectAt(id)
	if p == nil {
		return model.Project{}, false
	}
	return *p, true
}

// ProjectsByFolder returns the projects owned by a folder.
func (s *Store) ProjectsByFolder(folderID string) []model.Project {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []model.Project
	for i := range s.projects {
		if s.projects[i].FolderID == folderID {
			out = append(out, s.projects[i])
		}
	}
	return out
}

// TaskListsByProject returns a project's columns ordered left to right by
// (position, createdAt, id).
func (s *Store) TaskListsByProject(projectID string) []model.TaskList {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []model.TaskList
	for i := range s.lists {
		if s.lists[i].ProjectID == projectID {
			out = append(out, s.lists[i])
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return lessOrdered(out[i].Position, out[j].Position,
			out[i].CreatedAt, out[j].CreatedAt, out[i].ID, out[j].ID)
	})
	return out
}

// TasksByList returns a list's tasks ordered by (position, createdAt, id).
// Position gaps and duplicates are tolerated; the secondary keys keep the
// ordering deterministic.
func (s *Store) TasksByList(listID string) []model.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []model.Task
	for i := range s.tasks {
		if s.tasks[i].ListID == listID {
			out = append(out, cloneTask(s.tasks[i]))
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return lessOrdered(out[i].Position, out[j].Position,
			out[i].CreatedAt, out[j].CreatedAt, out[i].ID, out[j].ID)
	})
	return out
}

// TasksByProject returns all tasks of a project across its lists.
func (s *Store) TasksByProject(projectID string) []model.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []model.Task
	for i := range s.tasks {
		if s.tasks[i].ProjectID == projectID {
			out = append(out, cloneTask(s.tasks[i]))
		}
	}
	return out
}

// Task returns a single task by id.
func (s *Store) Task(id string) (model.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.taskAt(id)
	if t == nil {
		return model.Task{}, false
	}
	return cloneTask(*t), true
}

// TasksByStatus returns all tasks currently in the given status.
func (s *Store) TasksByStatus(status model.TaskStatus) []model.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []model.Task
	for i := range s.tasks {
		if s.tasks[i].Status == status {
			out = append(out, cloneTask(s.tasks[i]))
		}
	}
	return out
}

// InProgressTasks returns the active working set, the filter the sprint view
// feeds from.
func (s *Store) InProgressTasks() []model.Task {
	return s.TasksByStatus(model.StatusInProgress)
}

// CommentsForTask returns a task's comments ordered oldest first.
func (s *Store) CommentsForTask(taskID string) []model.TaskComment {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []model.TaskComment
	for i := range s.comments {
		if s.comments[i].TaskID == taskID {
			out = append(out, s.comments[i])
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// ProjectProgress returns the percentage of the project's tasks that are
// done, in [0, 100]. It is always computed from the task collection, never
// from the cached counters on the project.
func (s *Store) ProjectProgress(projectID string) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	total, done := 0, 0
	for i := range s.tasks {
		if s.tasks[i].ProjectID != projectID {
			continue
		}
		total++
		if s.tasks[i].Status == model.StatusDone {
			done++
		}
	}
	if total == 0 {
		return 0
	}
	return 100 * float64(done) / float64(total)
}

func lessOrdered(posA, posB int, createdA, createdB time.Time, idA, idB string) bool {
	if posA != posB {
		return posA < posB
	}
	if !createdA.Equal(createdB) {
		return createdA.Before(createdB)
	}
	return idA < idB
}
