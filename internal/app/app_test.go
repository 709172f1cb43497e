package app

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RJD02/life-quest/internal/board"
	"github.com/RJD02/life-quest/internal/config"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.SnapshotPath = filepath.Join(t.TempDir(), "board.db")
	cfg.LogFile = ""
	cfg.Notify = false
	return cfg
}

func TestAppPersistsAcrossRestarts(t *testing.T) {
	cfg := testConfig(t)

	a, err := New(cfg, zerolog.Nop())
	require.NoError(t, err)

	f, err := a.Board.AddFolder(board.NewFolder{Name: "Work"})
	require.NoError(t, err)
	require.NoError(t, a.Close())

	b, err := New(cfg, zerolog.Nop())
	require.NoError(t, err)
	defer b.Close()

	got, ok := b.Board.Folder(f.ID)
	require.True(t, ok)
	assert.Equal(t, "Work", got.Name)
}

func TestAppRefusesSecondInstance(t *testing.T) {
	cfg := testConfig(t)

	a, err := New(cfg, zerolog.Nop())
	require.NoError(t, err)
	defer a.Close()

	_, err = New(cfg, zerolog.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already running")
}

func TestSaveNowWritesImmediately(t *testing.T) {
	cfg := testConfig(t)

	a, err := New(cfg, zerolog.Nop())
	require.NoError(t, err)
	defer a.Close()

	_, err = a.Board.AddFolder(board.NewFolder{Name: "Work"})
	require.NoError(t, err)
	require.NoError(t, a.SaveNow())
}
