package board

import (
	"fmt"
	"strings"

	"github.com/RJD02/life-quest/internal/model"
)

// NewComment carries the caller-supplied fields for AddComment. AuthorName is
// snapshotted onto the comment and never re-resolved.
type NewComment struct {
	TaskID     string
	AuthorID   string
	AuthorName string
	Content    string
}

// AddComment attaches a comment to an existing task and bumps the owning
// project's recency stamp. Comment mutations never touch task fields.
func (s *Store) AddComment(in NewComment) (model.TaskComment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.TrimSpace(in.Content) == "" {
		return model.TaskComment{}, validationErr("content", "must not be empty")
	}
	t := s.taskAt(in.TaskID)
	if t == nil {
		return model.TaskComment{}, validationErr("taskId", "references an unknown task")
	}

	now := s.now()
	c := model.TaskComment{
		ID:         s.newID(),
		TaskID:     in.TaskID,
		AuthorID:   in.AuthorID,
		AuthorName: in.AuthorName,
		Content:    in.Content,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	s.comments = append(s.comments, c)
	s.touchProjectLocked(t.ProjectID, now)

	s.record(model.EntityTask, in.TaskID, model.ActionCommented,
		fmt.Sprintf("commented on task %q", t.Title),
		map[string]string{"commentId": c.ID})
	s.changed()
	return c, nil
}

// UpdateComment replaces a comment's content.
func (s *Store) UpdateComment(id, content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.TrimSpace(content) == "" {
		return validationErr("content", "must not be empty")
	}
	c := s.commentAt(id)
	if c == nil {
		return ErrNotFound
	}
	c.Content = content
	c.UpdatedAt = s.now()
	s.changed()
	return nil
}

// DeleteComment removes a comment.
func (s *Store) DeleteComment(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.commentAt(id) == nil {
		return ErrNotFound
	}
	kept := s.comments[:0]
	for i := range s.comments {
		if s.comments[i].ID != id {
			kept = append(kept, s.comments[i])
		}
	}
	s.comments = kept
	s.changed()
	return nil
}
