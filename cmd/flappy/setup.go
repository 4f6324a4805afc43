package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/registry"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagLogPath string
	flagDebug   bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write the log to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log at debug level")
}

// newLogger builds the command logger. With no --log file it writes to
// fallback, which play sets to io.Discard to keep the alt screen clean.
// The returned closer releases the log file.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	w, closer := fallback, func() {}

	if flagLogPath != "" {
		path, err := storage.ExpandHome(flagLogPath)
		if err != nil {
			return nil, nil, err
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closer = f, func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          appName,
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closer, nil
}

// openBackend opens the --store backend. If it cannot be opened the game
// still runs on the memory backend, with a warning.
func openBackend(logger *log.Logger) registry.Backend {
	opts := registry.Options{
		Path:    flagDBPath,
		AppName: appName,
		GameID:  flappy.GameID,
	}

	backend, err := registry.Open(flagStore, opts)
	if err == nil {
		logger.Debug("score store opened", "store", flagStore)
		return backend
	}

	fmt.Fprintf(os.Stderr, "Warning: %v; scores will not be saved\n", err)
	logger.Warn("falling back to memory store", "store", flagStore, "err", err)
	return storage.NewMemory()
}

// historyOf returns the run history of a backend, or nil if it keeps none.
func historyOf(backend registry.Backend) tui.History {
	if h, ok := backend.(tui.History); ok {
		return h
	}
	return nil
}
