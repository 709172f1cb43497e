package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddTaskListAppends(t *testing.T) {
	s := testStore()
	f := mustFolder(t, s, "Work", nil)
	p := mustProject(t, s, "Website", f.ID)

	todo := mustList(t, s, "Todo", p.ID)
	doing := mustList(t, s, "Doing", p.ID)
	assert.Equal(t, 0, todo.Position)
	assert.Equal(t, 1, doing.Position)

	// an explicit position is taken as-is, even when it collides
	dup, err := s.AddTaskList(NewTaskList{Name: "Also first", ProjectID: p.ID, Position: 0})
	require.NoError(t, err)
	assert.Equal(t, 0, dup.Position)

	// ties are broken by creation time, so the older list stays left
	lists := s.TaskListsByProject(p.ID)
	require.Len(t, lists, 3)
	assert.Equal(t, todo.ID, lists[0].ID)
	assert.Equal(t, dup.ID, lists[1].ID)
	assert.Equal(t, doing.ID, lists[2].ID)
}

func TestReorderTaskLists(t *testing.T) {
	s := testStore()
	f := mustFolder(t, s, "Work", nil)
	p := mustProject(t, s, "Website", f.ID)
	a := mustList(t, s, "A", p.ID)
	b := mustList(t, s, "B", p.ID)
	c := mustList(t, s, "C", p.ID)

	require.NoError(t, s.ReorderTaskLists(p.ID, []string{c.ID, a.ID, b.ID}))

	lists := s.TaskListsByProject(p.ID)
	require.Len(t, lists, 3)
	assert.Equal(t, c.ID, lists[0].ID)
	assert.Equal(t, a.ID, lists[1].ID)
	assert.Equal(t, b.ID, lists[2].ID)
}

func TestReorderTaskListsValidation(t *testing.T) {
	s := testStore()
	f := mustFolder(t, s, "Work", nil)
	p := mustProject(t, s, "Website", f.ID)
	other := mustProject(t, s, "Other", f.ID)
	a := mustList(t, s, "A", p.ID)
	foreign := mustList(t, s, "X", other.ID)

	assert.ErrorIs(t, s.ReorderTaskLists("nope", nil), ErrNotFound)

	err := s.ReorderTaskLists(p.ID, []string{a.ID, foreign.ID})
	assert.True(t, IsValidation(err))

	// a failed reorder leaves positions untouched
	lists := s.TaskListsByProject(p.ID)
	require.Len(t, lists, 1)
	assert.Equal(t, 0, lists[0].Position)
}

func TestDeleteTaskListCascades(t *testing.T) {
	s := testStore()
	f := mustFolder(t, s, "Work", nil)
	p := mustProject(t, s, "Website", f.ID)
	todo := mustList(t, s, "Todo", p.ID)
	done := mustList(t, s, "Done", p.ID)

	doomed := mustTask(t, s, "In todo", todo.ID)
	kept := mustTask(t, s, "In done", done.ID)
	_, err := s.AddComment(NewComment{TaskID: doomed.ID, AuthorName: "dev", Content: "bye"})
	require.NoError(t, err)

	require.NoError(t, s.DeleteTaskList(todo.ID))

	_, ok := s.Task(doomed.ID)
	assert.False(t, ok)
	assert.Empty(t, s.CommentsForTask(doomed.ID))
	_, ok = s.Task(kept.ID)
	assert.True(t, ok)

	proj, _ := s.Project(p.ID)
	assert.Equal(t, 1, proj.TaskCount)
}
