package board

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/RJD02/life-quest/internal/model"
)

// NewTask carries the caller-supplied fields for AddTask. A negative Position
// appends the task after the list's current tasks. Zero XPValue and
// EstimatedPomodoros fall back to the board defaults.
type NewTask struct {
	Title              string
	Description        string
	ListID             string
	Priority           model.TaskPriority
	Type               model.TaskType
	Position           int
	DueDate            *time.Time
	StartDate          *time.Time
	AssigneeID         string
	ReporterID         string
	Labels             []string
	StoryPoints        *int
	XPValue            int
	EstimatedPomodoros int
	OriginalEstimate   float64
}

// AddTask creates a task in an existing list. The task's ProjectID is taken
// from the list, never from the caller, so the two can't disagree.
func (s *Store) AddTask(in NewTask) (model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.TrimSpace(in.Title) == "" {
		return model.Task{}, validationErr("title", "must not be empty")
	}
	list := s.listAt(in.ListID)
	if list == nil {
		return model.Task{}, validationErr("listId", "references an unknown task list")
	}
	if in.Priority == "" {
		in.Priority = model.PriorityMedium
	}
	if in.Type == "" {
		in.Type = model.TypeTask
	}
	if in.XPValue <= 0 {
		in.XPValue = model.DefaultXPValue
	}
	if in.EstimatedPomodoros <= 0 {
		in.EstimatedPomodoros = model.DefaultEstimatedPomodoros
	}

	pos := in.Position
	if pos < 0 {
		pos = 0
		for i := range s.tasks {
			if s.tasks[i].ListID == in.ListID {
				pos++
			}
		}
	}

	now := s.now()
	t := model.Task{
		ID:                 s.newID(),
		Title:              in.Title,
		Description:        in.Description,
		ProjectID:          list.ProjectID,
		ListID:             in.ListID,
		Status:             model.StatusTodo,
		Priority:           in.Priority,
		Type:               in.Type,
		OriginalEstimate:   in.OriginalEstimate,
		RemainingEstimate:  in.OriginalEstimate,
		DueDate:            in.DueDate,
		StartDate:          in.StartDate,
		AssigneeID:         in.AssigneeID,
		ReporterID:         in.ReporterID,
		Labels:             append([]string(nil), in.Labels...),
		StoryPoints:        in.StoryPoints,
		XPValue:            in.XPValue,
		EstimatedPomodoros: in.EstimatedPomodoros,
		Position:           pos,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	s.tasks = append(s.tasks, t)

	s.recountListLocked(in.ListID)
	s.recountProjectLocked(t.ProjectID)
	s.touchProjectLocked(t.ProjectID, now)

	s.record(model.EntityTask, t.ID, model.ActionCreated, fmt.Sprintf("created task %q", t.Title), nil)
	s.changed()
	return cloneTask(t), nil
}

// TaskPatch is a partial update; nil fields are left untouched.
type TaskPatch struct {
	Title              *string
	Description        *string
	Status             *model.TaskStatus
	Priority           *model.TaskPriority
	Type               *model.TaskType
	OriginalEstimate   *float64
	TimeSpent          *float64
	RemainingEstimate  *float64
	DueDate            *time.Time
	StartDate          *time.Time
	AssigneeID         *string
	ReporterID         *string
	Labels             *[]string
	StoryPoints        *int
	XPValue            *int
	EstimatedPomodoros *int
	ActualPomodoros    *int
	Position           *int
}

// UpdateTask applies a partial patch. Status transitions are permissive;
// entering done stamps CompletedAt and leaving done clears it.
func (s *Store) UpdateTask(id string, patch TaskPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.taskAt(id)
	if t == nil {
		return ErrNotFound
	}

	// Validate the whole patch before writing anything; a rejected patch
	// must not leave a half-applied task behind.
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return validationErr("title", "must not be empty")
	}

	now := s.now()
	if patch.Status != nil && *patch.Status != t.Status {
		s.applyStatusLocked(t, *patch.Status, now)
	}
	if patch.Title != nil {
		t.Title = *patch.Title
	}
	if patch.Description != nil {
		t.Description = *patch.Description
	}
	if patch.Priority != nil {
		t.Priority = *patch.Priority
	}
	if patch.Type != nil {
		t.Type = *patch.Type
	}
	if patch.OriginalEstimate != nil {
		t.OriginalEstimate = *patch.OriginalEstimate
	}
	if patch.TimeSpent != nil {
		if *patch.TimeSpent < t.TimeSpent {
			s.log.Warn().Str("task_id", id).
				Float64("old", t.TimeSpent).Float64("new", *patch.TimeSpent).
				Msg("timeSpent decreased")
		}
		t.TimeSpent = *patch.TimeSpent
	}
	if patch.RemainingEstimate != nil {
		t.RemainingEstimate = *patch.RemainingEstimate
	}
	if patch.DueDate != nil {
		d := *patch.DueDate
		t.DueDate = &d
	}
	if patch.StartDate != nil {
		d := *patch.StartDate
		t.StartDate = &d
	}
	if patch.AssigneeID != nil {
		t.AssigneeID = *patch.AssigneeID
	}
	if patch.ReporterID != nil {
		t.ReporterID = *patch.ReporterID
	}
	if patch.Labels != nil {
		t.Labels = append([]string(nil), (*patch.Labels)...)
	}
	if patch.StoryPoints != nil {
		sp := *patch.StoryPoints
		t.StoryPoints = &sp
	}
	if patch.XPValue != nil {
		t.XPValue = *patch.XPValue
	}
	if patch.EstimatedPomodoros != nil {
		t.EstimatedPomodoros = *patch.EstimatedPomodoros
	}
	if patch.ActualPomodoros != nil {
		t.ActualPomodoros = *patch.ActualPomodoros
	}
	if patch.Position != nil {
		t.Position = *patch.Position
	}

	t.UpdatedAt = now
	s.recountProjectLocked(t.ProjectID)
	s.touchProjectLocked(t.ProjectID, now)

	s.record(model.EntityTask, id, model.ActionUpdated, fmt.Sprintf("updated task %q", t.Title), nil)
	s.changed()
	return nil
}

// MoveTask moves a task to newListID at newPosition. ListID, Position, and
// ProjectID are rewritten together so no read can observe them disagreeing;
// ProjectID always follows the destination list, which makes cross-project
// moves safe. Sibling positions are not renumbered — reads sort by
// (position, createdAt, id).
func (s *Store) MoveTask(taskID, newListID string, newPosition int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.taskAt(taskID)
	if t == nil {
		return ErrNotFound
	}
	dest := s.listAt(newListID)
	if dest == nil {
		return validationErr("newListId", "references an unknown task list")
	}

	oldListID := t.ListID
	oldProjectID := t.ProjectID
	now := s.now()

	t.ListID = newListID
	t.Position = newPosition
	t.ProjectID = dest.ProjectID
	t.UpdatedAt = now

	s.recountListLocked(oldListID)
	s.recountListLocked(newListID)
	s.touchProjectLocked(oldProjectID, now)
	if dest.ProjectID != oldProjectID {
		s.recountProjectLocked(oldProjectID)
		s.recountProjectLocked(dest.ProjectID)
		s.touchProjectLocked(dest.ProjectID, now)
	}

	s.record(model.EntityTask, taskID, model.ActionMoved,
		fmt.Sprintf("moved task %q to %q", t.Title, dest.Name),
		map[string]string{"fromListId": oldListID, "toListId": newListID})
	s.changed()
	return nil
}

// CompleteTask sets the terminal done status and stamps CompletedAt. XP for
// the completion is granted by the gamification collaborator reacting to the
// logged transition, not here.
func (s *Store) CompleteTask(taskID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.taskAt(taskID)
	if t == nil {
		return ErrNotFound
	}
	if t.Status == model.StatusDone {
		return nil
	}

	now := s.now()
	s.applyStatusLocked(t, model.StatusDone, now)
	t.UpdatedAt = now
	s.recountProjectLocked(t.ProjectID)
	s.touchProjectLocked(t.ProjectID, now)

	s.record(model.EntityTask, taskID, model.ActionUpdated,
		fmt.Sprintf("completed task %q", t.Title),
		map[string]string{"status": string(model.StatusDone), "xp": strconv.Itoa(t.XPValue)})
	s.changed()
	return nil
}

// BlockTask marks a task blocked, remembering the status it came from.
func (s *Store) BlockTask(taskID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.taskAt(taskID)
	if t == nil {
		return ErrNotFound
	}
	if t.Status == model.StatusBlocked {
		return nil
	}
	if t.Status.IsTerminal() {
		return validationErr("status", "cannot block a completed task")
	}

	now := s.now()
	s.applyStatusLocked(t, model.StatusBlocked, now)
	t.UpdatedAt = now
	s.touchProjectLocked(t.ProjectID, now)

	s.record(model.EntityTask, taskID, model.ActionUpdated, fmt.Sprintf("blocked task %q", t.Title), nil)
	s.changed()
	return nil
}

// UnblockTask returns a blocked task to the status it was blocked from
// (todo when unknown).
func (s *Store) UnblockTask(taskID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.taskAt(taskID)
	if t == nil {
		return ErrNotFound
	}
	if t.Status != model.StatusBlocked {
		return nil
	}

	restored := model.StatusTodo
	if t.BlockedFrom != nil {
		restored = *t.BlockedFrom
	}
	now := s.now()
	s.applyStatusLocked(t, restored, now)
	t.UpdatedAt = now
	s.touchProjectLocked(t.ProjectID, now)

	s.record(model.EntityTask, taskID, model.ActionUpdated, fmt.Sprintf("unblocked task %q", t.Title), nil)
	s.changed()
	return nil
}

// DeleteTask removes a task and its comments.
func (s *Store) DeleteTask(taskID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.taskAt(taskID)
	if t == nil {
		return ErrNotFound
	}
	title, listID, projectID := t.Title, t.ListID, t.ProjectID

	kept := s.tasks[:0]
	for i := range s.tasks {
		if s.tasks[i].ID != taskID {
			kept = append(kept, s.tasks[i])
		}
	}
	s.tasks = kept

	keptComments := s.comments[:0]
	for i := range s.comments {
		if s.comments[i].TaskID != taskID {
			keptComments = append(keptComments, s.comments[i])
		}
	}
	s.comments = keptComments

	now := s.now()
	s.recountListLocked(listID)
	s.recountProjectLocked(projectID)
	s.touchProjectLocked(projectID, now)

	s.record(model.EntityTask, taskID, model.ActionDeleted, fmt.Sprintf("deleted task %q", title), nil)
	s.changed()
	return nil
}

// applyStatusLocked performs a status transition, maintaining CompletedAt and
// the blocked-from bookkeeping. Transitions are otherwise permissive.
func (s *Store) applyStatusLocked(t *model.Task, next model.TaskStatus, now time.Time) {
	if next == t.Status {
		return
	}
	if next == model.StatusBlocked {
		prev := t.Status
		t.BlockedFrom = &prev
	} else {
		t.BlockedFrom = nil
	}
	if next == model.StatusDone {
		done := now
		t.CompletedAt = &done
	} else if t.Status == model.StatusDone {
		// re-opening a finished task
		t.CompletedAt = nil
	}
	t.Status = next
}
