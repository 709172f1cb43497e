package board

import (
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RJD02/life-quest/internal/model"
)

// testStore returns a store with a deterministic clock and id sequence. Each
// call to now advances the clock by one second.
func testStore(opts ...func(*Options)) *Store {
	var n int
	clock := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	o := Options{
		Logger: zerolog.Nop(),
		Now: func() time.Time {
			clock = clock.Add(time.Second)
			return clock
		},
		NewID: func() string {
			n++
			return fmt.Sprintf("id-%03d", n)
		},
	}
	for _, f := range opts {
		f(&o)
	}
	return New(o)
}

func mustFolder(t *testing.T, s *Store, name string, parentID *string) model.Folder {
	t.Helper()
	f, err := s.AddFolder(NewFolder{Name: name, ParentID: parentID})
	require.NoError(t, err)
	return f
}

func mustProject(t *testing.T, s *Store, name, folderID string) model.Project {
	t.Helper()
	p, err := s.AddProject(NewProject{Name: name, FolderID: folderID})
	require.NoError(t, err)
	return p
}

func mustList(t *testing.T, s *Store, name, projectID string) model.TaskList {
	t.Helper()
	l, err := s.AddTaskList(NewTaskList{Name: name, ProjectID: projectID, Position: -1})
	require.NoError(t, err)
	return l
}

func mustTask(t *testing.T, s *Store, title, listID string) model.Task {
	t.Helper()
	task, err := s.AddTask(NewTask{Title: title, ListID: listID, Position: -1})
	require.NoError(t, err)
	return task
}

func TestExportRestoreRoundTrip(t *testing.T) {
	s := testStore()
	f := mustFolder(t, s, "Work", nil)
	p := mustProject(t, s, "Website", f.ID)
	l := mustList(t, s, "Todo", p.ID)
	task := mustTask(t, s, "Ship it", l.ID)
	_, err := s.AddComment(NewComment{TaskID: task.ID, AuthorName: "dev", Content: "soon"})
	require.NoError(t, err)
	require.NoError(t, s.ToggleFolderExpansion(f.ID))

	st := s.Export()

	restored := testStore()
	restored.Restore(st)

	assert.Equal(t, st, restored.Export())
	assert.True(t, restored.FolderExpanded(f.ID))

	got, ok := restored.Task(task.ID)
	require.True(t, ok)
	assert.Equal(t, "Ship it", got.Title)
}

func TestRestoreDoesNotCarryActivity(t *testing.T) {
	s := testStore()
	f := mustFolder(t, s, "Work", nil)

	restored := testStore()
	restored.Restore(s.Export())

	assert.Empty(t, restored.Activity(0))
	_, ok := restored.Folder(f.ID)
	assert.True(t, ok)
}

func TestExportIsACopy(t *testing.T) {
	s := testStore()
	f := mustFolder(t, s, "Work", nil)

	st := s.Export()
	st.Folders[0].Name = "mutated"
	st.Folders[0].Path[0] = "mutated"

	got, ok := s.Folder(f.ID)
	require.True(t, ok)
	assert.Equal(t, "Work", got.Name)
	assert.Equal(t, []string{"Work"}, got.Path)
}

func TestOnChangeFiresPerMutation(t *testing.T) {
	calls := 0
	s := testStore(func(o *Options) {
		o.OnChange = func() { calls++ }
	})

	f := mustFolder(t, s, "Work", nil)
	require.Equal(t, 1, calls)

	p := mustProject(t, s, "Website", f.ID)
	mustList(t, s, "Todo", p.ID)
	require.Equal(t, 3, calls)

	// expansion is UI state but still persisted, so it must trigger a save
	require.NoError(t, s.ToggleFolderExpansion(f.ID))
	assert.Equal(t, 4, calls)

	// reads never fire the hook
	s.Folders()
	s.Activity(0)
	assert.Equal(t, 4, calls)
}
