package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RJD02/life-quest/internal/model"
)

func TestTasksByListOrdering(t *testing.T) {
	s := testStore()
	f := mustFolder(t, s, "Work", nil)
	p := mustProject(t, s, "Website", f.ID)
	l := mustList(t, s, "Todo", p.ID)

	a := mustTask(t, s, "A", l.ID) // position 0
	b := mustTask(t, s, "B", l.ID) // position 1
	c, err := s.AddTask(NewTask{Title: "C", ListID: l.ID, Position: 0})
	require.NoError(t, err)

	// duplicate positions are tolerated; creation time breaks the tie
	tasks := s.TasksByList(l.ID)
	require.Len(t, tasks, 3)
	assert.Equal(t, a.ID, tasks[0].ID)
	assert.Equal(t, c.ID, tasks[1].ID)
	assert.Equal(t, b.ID, tasks[2].ID)

	// gaps are fine too
	far := 100
	require.NoError(t, s.UpdateTask(a.ID, TaskPatch{Position: &far}))
	tasks = s.TasksByList(l.ID)
	assert.Equal(t, a.ID, tasks[2].ID)
}

func TestProjectProgress(t *testing.T) {
	s := testStore()
	f := mustFolder(t, s, "Work", nil)
	p := mustProject(t, s, "Website", f.ID)
	l := mustList(t, s, "Todo", p.ID)

	// no tasks means zero, not a division error
	assert.Equal(t, 0.0, s.ProjectProgress(p.ID))

	t1 := mustTask(t, s, "A", l.ID)
	mustTask(t, s, "B", l.ID)
	mustTask(t, s, "C", l.ID)
	assert.Equal(t, 0.0, s.ProjectProgress(p.ID))

	require.NoError(t, s.CompleteTask(t1.ID))
	assert.InDelta(t, 100.0/3.0, s.ProjectProgress(p.ID), 0.001)
}

func TestProjectProgressIgnoresCachedCounters(t *testing.T) {
	s := testStore()
	f := mustFolder(t, s, "Work", nil)
	p := mustProject(t, s, "Website", f.ID)
	l := mustList(t, s, "Todo", p.ID)
	task := mustTask(t, s, "A", l.ID)
	require.NoError(t, s.CompleteTask(task.ID))

	// corrupt the cached counters through a snapshot round trip
	st := s.Export()
	for i := range st.Projects {
		st.Projects[i].TaskCount = 99
		st.Projects[i].CompletedTaskCount = 0
	}
	s.Restore(st)

	// progress is always derived from the task collection
	assert.Equal(t, 100.0, s.ProjectProgress(p.ID))
}

func TestTasksByStatus(t *testing.T) {
	s := testStore()
	f := mustFolder(t, s, "Work", nil)
	p := mustProject(t, s, "Website", f.ID)
	l := mustList(t, s, "Todo", p.ID)

	a := mustTask(t, s, "A", l.ID)
	mustTask(t, s, "B", l.ID)
	st := model.StatusInProgress
	require.NoError(t, s.UpdateTask(a.ID, TaskPatch{Status: &st}))

	active := s.InProgressTasks()
	require.Len(t, active, 1)
	assert.Equal(t, a.ID, active[0].ID)
	assert.Len(t, s.TasksByStatus(model.StatusTodo), 1)
}

func TestFoldersPopulateExpansion(t *testing.T) {
	s := testStore()
	a := mustFolder(t, s, "A", nil)
	b := mustFolder(t, s, "B", nil)
	require.NoError(t, s.ToggleFolderExpansion(a.ID))

	byID := map[string]model.Folder{}
	for _, f := range s.Folders() {
		byID[f.ID] = f
	}
	assert.True(t, byID[a.ID].IsExpanded)
	assert.False(t, byID[b.ID].IsExpanded)
}

func TestQueryResultsAreCopies(t *testing.T) {
	s := testStore()
	f := mustFolder(t, s, "Work", nil)
	p := mustProject(t, s, "Website", f.ID)
	l := mustList(t, s, "Todo", p.ID)
	task, err := s.AddTask(NewTask{Title: "A", ListID: l.ID, Labels: []string{"x"}})
	require.NoError(t, err)

	got, _ := s.Task(task.ID)
	got.Labels[0] = "mutated"
	got.Title = "mutated"

	again, _ := s.Task(task.ID)
	assert.Equal(t, "A", again.Title)
	assert.Equal(t, []string{"x"}, again.Labels)
}
