package snapshot

import (
	"database/sql"
	"embed"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/RJD02/life-quest/internal/board"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Store persists board snapshots as a JSON payload in a single-row SQLite
// table, the local key-value store for the board's state.
type Store struct {
	db  *sql.DB
	log zerolog.Logger
}

// DefaultDataDir returns the default data directory path
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".lifequest"
	}
	return filepath.Join(home, ".local", "share", "lifequest")
}

// DefaultPath returns the default snapshot database file path
func DefaultPath() string {
	return filepath.Join(DefaultDataDir(), "lifequest.db")
}

// Open opens the snapshot database and runs migrations
func Open(path string, logger zerolog.Logger) (*Store, error) {
	// Ensure the directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	// WAL mode is safer for file-sync tools watching the data dir
	dsn := fmt.Sprintf("file:%s?_journal_mode=WAL&_busy_timeout=5000", path)
	sqlDB, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot database: %w", err)
	}

	// SQLite only supports one writer
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to connect to snapshot database: %w", err)
	}

	s := &Store{db: sqlDB, log: logger}
	if err := s.migrate(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return s, nil
}

// migrate runs database migrations using embedded SQL files
func (s *Store) migrate() error {
	goose.SetLogger(log.New(io.Discard, "", 0))
	goose.SetBaseFS(migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}

	if err := goose.Up(s.db, "migrations"); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

// Save serializes the board state and upserts the snapshot row.
func (s *Store) Save(st board.State) error {
	payload, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO snapshots (id, payload, saved_at) VALUES (1, ?, ?)
		ON CONFLICT (id) DO UPDATE SET payload = excluded.payload, saved_at = excluded.saved_at
	`, string(payload), time.Now())
	if err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}

// Load restores the last saved board state. A missing or malformed snapshot
// yields an empty state rather than an error; the board starts fresh.
func (s *Store) Load() (board.State, error) {
	var payload string
	err := s.db.QueryRow(`SELECT payload FROM snapshots WHERE id = 1`).Scan(&payload)
	if err == sql.ErrNoRows {
		return board.State{}, nil
	}
	if err != nil {
		return board.State{}, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var st board.State
	if err := json.Unmarshal([]byte(payload), &st); err != nil {
		s.log.Warn().Err(err).Msg("snapshot payload malformed, starting with empty state")
		return board.State{}, nil
	}
	return st, nil
}

// SavedAt returns the timestamp of the last persisted snapshot, if any.
func (s *Store) SavedAt() (time.Time, bool, error) {
	var at time.Time
	err := s.db.QueryRow(`SELECT saved_at FROM snapshots WHERE id = 1`).Scan(&at)
	if err == sql.ErrNoRows {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, err
	}
	return at, true, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}
