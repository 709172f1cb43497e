package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/RJD02/life-quest/internal/snapshot"
)

// Config holds the user-tunable settings. Every field has a working default;
// a missing config file is not an error.
type Config struct {
	// SnapshotPath is the SQLite file the board state is saved to.
	SnapshotPath string `yaml:"snapshotPath"`

	// ActivityCapacity bounds the in-memory activity log.
	ActivityCapacity int `yaml:"activityCapacity"`

	// SaveDelaySeconds is the debounce window for background snapshot saves.
	SaveDelaySeconds int `yaml:"saveDelaySeconds"`

	// Actor is recorded on activity entries for mutations made here.
	Actor string `yaml:"actor"`

	// Notify enables desktop notifications for completed tasks.
	Notify bool `yaml:"notify"`

	LogLevel string `yaml:"logLevel"`
	LogFile  string `yaml:"logFile"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		SnapshotPath:     snapshot.DefaultPath(),
		ActivityCapacity: 1000,
		SaveDelaySeconds: int(snapshot.DefaultSaveDelay / time.Second),
		Actor:            "local-user",
		Notify:           true,
		LogLevel:         "info",
		LogFile:          filepath.Join(snapshot.DefaultDataDir(), "lifequest.log"),
	}
}

// DefaultPath returns the default config file location, alongside the data.
func DefaultPath() string {
	return filepath.Join(snapshot.DefaultDataDir(), "config.yml")
}

// Load reads the config file at path, filling unset fields from Default. A
// missing file yields the defaults; a malformed file is an error so typos do
// not silently fall back.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.SnapshotPath == "" {
		cfg.SnapshotPath = snapshot.DefaultPath()
	}
	if cfg.ActivityCapacity <= 0 {
		cfg.ActivityCapacity = 1000
	}
	if cfg.SaveDelaySeconds <= 0 {
		cfg.SaveDelaySeconds = int(snapshot.DefaultSaveDelay / time.Second)
	}
	if cfg.Actor == "" {
		cfg.Actor = "local-user"
	}
	return cfg, nil
}

// SaveDelay returns the debounce window as a duration.
func (c Config) SaveDelay() time.Duration {
	return time.Duration(c.SaveDelaySeconds) * time.Second
}
