package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RJD02/life-quest/internal/config"
)

func TestNewLoggerWritesAndReleasesFile(t *testing.T) {
	cfg := config.Default()
	cfg.LogLevel = "debug"
	cfg.LogFile = filepath.Join(t.TempDir(), "logs", "lifequest.log")

	logger, closeLog := newLogger(cfg)
	logger.Info().Msg("hello from startup")
	closeLog()

	data, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello from startup")
}

func TestNewLoggerWithoutFile(t *testing.T) {
	cfg := config.Default()
	cfg.LogFile = ""

	_, closeLog := newLogger(cfg)
	// stderr logger has no handle to release
	closeLog()
}

func TestConfigPathFromArgs(t *testing.T) {
	assert.Equal(t, "x.yml", configPathFromArgs([]string{"--config", "x.yml"}))
	assert.Equal(t, "y.yml", configPathFromArgs([]string{"task", "add", "--config=y.yml"}))
	assert.Equal(t, config.DefaultPath(), configPathFromArgs([]string{"task", "add"}))
}
