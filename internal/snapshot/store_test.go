package snapshot

import (
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RJD02/life-quest/internal/board"
	"github.com/RJD02/life-quest/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"), zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleState() board.State {
	created := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	return board.State{
		Folders: []model.Folder{{
			ID: "f1", Name: "Work", Color: "#3b82f6", Icon: "📁",
			Path: []string{"Work"}, ProjectCount: 1,
			LastModified: created, CreatedAt: created, UpdatedAt: created,
		}},
		Projects: []model.Project{{
			ID: "p1", Name: "Website", FolderID: "f1",
			Status: model.ProjectActive, Priority: model.ProjectPriorityMedium,
			TaskCount: 1, LastModified: created, CreatedAt: created, UpdatedAt: created,
		}},
		TaskLists: []model.TaskList{{
			ID: "l1", Name: "Todo", ProjectID: "p1", TaskCount: 1,
			CreatedAt: created, UpdatedAt: created,
		}},
		Tasks: []model.Task{{
			ID: "t1", Title: "Ship it", ProjectID: "p1", ListID: "l1",
			Status: model.StatusTodo, Priority: model.PriorityMedium, Type: model.TypeTask,
			XPValue: 25, EstimatedPomodoros: 1,
			CreatedAt: created, UpdatedAt: created,
		}},
		Comments: []model.TaskComment{{
			ID: "c1", TaskID: "t1", AuthorName: "dev", Content: "soon",
			CreatedAt: created, UpdatedAt: created,
		}},
		ExpandedFolderIDs: []string{"f1"},
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := openTestStore(t)
	want := sampleState()

	require.NoError(t, s.Save(want))
	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, ok, err := s.SavedAt()
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSaveOverwritesPreviousSnapshot(t *testing.T) {
	s := openTestStore(t)
	require.NoError(t, s.Save(sampleState()))

	updated := sampleState()
	updated.Tasks[0].Title = "Ship it already"
	require.NoError(t, s.Save(updated))

	got, err := s.Load()
	require.NoError(t, err)
	require.Len(t, got.Tasks, 1)
	assert.Equal(t, "Ship it already", got.Tasks[0].Title)
}

func TestLoadWithoutSnapshotIsEmpty(t *testing.T) {
	s := openTestStore(t)

	got, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, got.Folders)
	assert.Empty(t, got.Tasks)

	_, ok, err := s.SavedAt()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLoadMalformedSnapshotStartsEmpty(t *testing.T) {
	s := openTestStore(t)
	require.NoError(t, s.Save(sampleState()))

	_, err := s.db.Exec(`UPDATE snapshots SET payload = 'not json' WHERE id = 1`)
	require.NoError(t, err)

	got, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, got.Folders)
}

func TestSaverCoalescesRequests(t *testing.T) {
	s := openTestStore(t)

	var saves int32
	export := func() board.State {
		atomic.AddInt32(&saves, 1)
		return sampleState()
	}
	sv := NewSaver(s, export, 20*time.Millisecond, zerolog.Nop())

	for i := 0; i < 5; i++ {
		sv.Request()
	}
	time.Sleep(150 * time.Millisecond)
	assert.EqualValues(t, 1, atomic.LoadInt32(&saves), "burst of requests collapses into one save")

	// closing performs a final save
	sv.Close()
	assert.EqualValues(t, 2, atomic.LoadInt32(&saves))

	got, err := s.Load()
	require.NoError(t, err)
	assert.Len(t, got.Tasks, 1)
}

func TestSaverCloseAfterIdle(t *testing.T) {
	s := openTestStore(t)
	sv := NewSaver(s, func() board.State { return sampleState() }, time.Second, zerolog.Nop())

	// no requests were made; Close still flushes a snapshot
	sv.Close()

	_, ok, err := s.SavedAt()
	require.NoError(t, err)
	assert.True(t, ok)
}
