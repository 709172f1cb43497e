package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/rs/zerolog"

	"github.com/RJD02/life-quest/internal/board"
	"github.com/RJD02/life-quest/internal/config"
	"github.com/RJD02/life-quest/internal/notify"
	"github.com/RJD02/life-quest/internal/snapshot"
)

// App wires the board, persistence, and notifications together. One App
// instance owns the data directory for its lifetime; the file lock keeps a
// second instance from racing on the snapshot.
type App struct {
	Board    *board.Store
	Notifier *notify.Notifier
	Config   config.Config

	store    *snapshot.Store
	saver    *snapshot.Saver
	lockFile *flock.Flock
	log      zerolog.Logger
}

// New loads the snapshot and builds a ready-to-use application instance.
func New(cfg config.Config, logger zerolog.Logger) (*App, error) {
	dataDir := filepath.Dir(cfg.SnapshotPath)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	a := &App{
		Config:   cfg,
		Notifier: notify.NewNotifier(),
		log:      logger,
	}
	a.Notifier.SetEnabled(cfg.Notify)

	// Acquire lock to ensure single instance
	if err := a.acquireLock(dataDir); err != nil {
		return nil, err
	}

	store, err := snapshot.Open(cfg.SnapshotPath, logger)
	if err != nil {
		a.releaseLock()
		return nil, fmt.Errorf("failed to open snapshot store: %w", err)
	}
	a.store = store

	st, err := store.Load()
	if err != nil {
		store.Close()
		a.releaseLock()
		return nil, err
	}

	a.Board = board.New(board.Options{
		ActivityCapacity: cfg.ActivityCapacity,
		Actor:            cfg.Actor,
		Logger:           logger,
		OnChange:         func() { a.requestSave() },
	})
	a.Board.Restore(st)

	a.saver = snapshot.NewSaver(store, a.Board.Export, cfg.SaveDelay(), logger)
	a.Board.Subscribe(a.Notifier.ActivityHandler())

	return a, nil
}

// requestSave indirects through the App so the saver can be wired after the
// board is constructed.
func (a *App) requestSave() {
	if a.saver != nil {
		a.saver.Request()
	}
}

// SaveNow forces a synchronous snapshot write, bypassing the debounce.
func (a *App) SaveNow() error {
	return a.store.Save(a.Board.Export())
}

// acquireLock acquires an exclusive file lock to prevent multiple instances
func (a *App) acquireLock(dataDir string) error {
	lockPath := filepath.Join(dataDir, "lifequest.lock")
	a.lockFile = flock.New(lockPath)

	locked, err := a.lockFile.TryLock()
	if err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}

	if !locked {
		return fmt.Errorf("another instance of lifequest is already running")
	}

	return nil
}

// releaseLock releases the file lock
func (a *App) releaseLock() {
	if a.lockFile != nil {
		a.lockFile.Unlock()
	}
}

// Close flushes the final snapshot and cleans up application resources
func (a *App) Close() error {
	var errs []error

	if a.saver != nil {
		a.saver.Close()
	}
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close snapshot store: %w", err))
		}
	}

	a.releaseLock()

	if len(errs) > 0 {
		return errs[0]
	}
	return nil
}
