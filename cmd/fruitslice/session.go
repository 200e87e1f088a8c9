package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/fruit-slice/internal/core"
	"github.com/vovakirdan/fruit-slice/internal/progress"
	"github.com/vovakirdan/fruit-slice/internal/storage"
)

// Progression backends selectable with --backend.
const (
	backendSQLite = "sqlite"
	backendGData  = "gdata"
)

// appName names the gdata application directory.
const appName = "fruitslice"

// localEnv is everything a local command needs: the score database, the
// player's progression and a logger. Close releases all of it.
type localEnv struct {
	logger  *log.Logger
	logFile *os.File
	scores  *storage.Store
	prog    *progress.Store
}

// newLogger writes to the --log file, or nowhere: the TUI owns the terminal.
func newLogger() (*log.Logger, *os.File) {
	var w io.Writer = io.Discard
	var f *os.File
	if flagLogPath != "" {
		var err error
		f, err = os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: cannot open log file: %v\n", err)
		} else {
			w = f
		}
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "fruitslice",
		Level:           log.DebugLevel,
	})
	return logger, f
}

// openEnv opens the score database and the progression store for
// --profile. A missing database is a warning: the game still runs.
func openEnv() (*localEnv, error) {
	logger, logFile := newLogger()
	env := &localEnv{logger: logger, logFile: logFile}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
		logger.Warn("database unavailable", "path", flagDBPath, "error", err)
		store = nil
	}
	env.scores = store

	persister, err := openPersister(store)
	if err != nil {
		env.Close()
		return nil, err
	}
	env.prog = progress.Open(persister, progress.WithLogger(logger.With("profile", flagProfile)))
	logger.Info("progression loaded", "profile", flagProfile, "backend", flagBackend, "coins", env.prog.Coins())
	return env, nil
}

func openPersister(store *storage.Store) (progress.Persister, error) {
	switch flagBackend {
	case backendSQLite:
		if store == nil {
			// Progress lives in memory for this run only.
			return nil, nil
		}
		return store.Progression(flagProfile), nil
	case backendGData:
		return storage.OpenBlob(appName, flagProfile)
	default:
		return nil, fmt.Errorf("unknown backend %q (use %s or %s)", flagBackend, backendSQLite, backendGData)
	}
}

// Close flushes progression and closes the database.
func (e *localEnv) Close() {
	if e.prog != nil {
		if err := e.prog.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: progress not saved: %v\n", err)
		}
	}
	if e.scores != nil {
		e.scores.Close()
	}
	if e.logFile != nil {
		e.logFile.Close()
	}
}

// runtimeConfig builds the runtime config from flags and the terminal size.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// mustEnv opens the local environment or exits.
func mustEnv() *localEnv {
	env, err := openEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return env
}
