package main

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/RJD02/life-quest/internal/config"
)

var version = "0.1.0"

func main() {
	os.Exit(run())
}

func run() int {
	cfgFlagPath := configPathFromArgs(os.Args[1:])
	cfg, err := config.Load(cfgFlagPath)
	if err != nil {
		logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
		logger.Error().Err(err).Msg("failed to load config")
		return 1
	}

	logger, closeLog := newLogger(cfg)
	defer closeLog()
	return Execute(cfg, logger)
}

// configPathFromArgs pre-scans for --config so the file can be loaded before
// cobra parses flags; logging and app setup need it first.
func configPathFromArgs(args []string) string {
	for i, a := range args {
		if a == "--config" && i+1 < len(args) {
			return args[i+1]
		}
		if len(a) > len("--config=") && a[:len("--config=")] == "--config=" {
			return a[len("--config="):]
		}
	}
	return config.DefaultPath()
}

// newLogger writes structured logs to the configured file so they never mix
// with command output on stdout. An unwritable log file degrades to stderr.
// The returned close function releases the file handle.
func newLogger(cfg config.Config) (zerolog.Logger, func()) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var out *os.File = os.Stderr
	closeLog := func() {}
	if cfg.LogFile != "" {
		os.MkdirAll(filepath.Dir(cfg.LogFile), 0755)
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err == nil {
			out = f
			closeLog = func() { f.Close() }
		}
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger(), closeLog
}
