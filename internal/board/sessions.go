package board

import (
	"fmt"
	"strconv"

	"github.com/RJD02/life-quest/internal/model"
)

// ApplySessionCompleted translates a completed focus session into board
// state: the task's pomodoro counter advances and the owning project earns
// the session's XP. A session without a task is valid and leaves the board
// untouched.
func (s *Store) ApplySessionCompleted(taskID string, xp int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if taskID == "" {
		s.log.Debug().Int("xp", xp).Msg("focus session completed without a task")
		return nil
	}
	t := s.taskAt(taskID)
	if t == nil {
		return ErrNotFound
	}

	now := s.now()
	t.ActualPomodoros++
	t.UpdatedAt = now
	if p := s.projectAt(t.ProjectID); p != nil {
		p.XPEarned += xp
	}
	s.touchProjectLocked(t.ProjectID, now)

	s.record(model.EntityTask, taskID, model.ActionUpdated,
		fmt.Sprintf("logged focus session on task %q", t.Title),
		map[string]string{"xp": strconv.Itoa(xp)})
	s.changed()
	return nil
}
