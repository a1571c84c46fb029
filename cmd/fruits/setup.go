package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-fruits/internal/config"
	"github.com/vovakirdan/tui-fruits/internal/core"
	"github.com/vovakirdan/tui-fruits/internal/record"
)

const appName = "tui-fruits"

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// openLogger opens the log file. Bubble Tea owns the terminal, so logs never
// go to stderr while a game runs. The returned closer is never nil.
func openLogger() (*log.Logger, io.Closer, error) {
	level := log.InfoLevel
	if flagDebug {
		level = log.DebugLevel
	}

	var w io.Writer = io.Discard
	var closer io.Closer = io.NopCloser(nil)
	var openErr error
	if flagLog != "" {
		path := expandHome(flagLog)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			openErr = fmt.Errorf("cannot create log directory: %w", err)
		} else if f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644); err != nil {
			openErr = fmt.Errorf("cannot open log file: %w", err)
		} else {
			w, closer = f, f
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Prefix:          "fruits",
		Level:           level,
	})
	return logger, closer, openErr
}

// loadGameConfig loads the config and applies the difficulty preset.
func loadGameConfig() (config.FruitsConfig, config.DifficultyPreset, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.FruitsConfig{}, "", err
	}
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.FruitsConfig{}, "", err
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, preset, nil
}

// openRecords picks the record location: --record, else the per-user data
// dir, else ~/.arcade/records.txt.
func openRecords(logger *log.Logger) (*record.Book, error) {
	if flagRecord != "" {
		store, err := record.NewFileStore(flagRecord)
		if err != nil {
			return nil, err
		}
		return record.NewBook(store), nil
	}

	gd, err := record.OpenGdata(appName)
	if err == nil {
		return record.NewBook(gd), nil
	}
	logger.Warn("data dir unavailable, using fallback record file", "error", err)

	store, err := record.NewFileStore(filepath.Join("~", ".arcade", record.DefaultFile))
	if err != nil {
		return nil, err
	}
	return record.NewBook(store), nil
}

// runtimeConfig builds the runtime config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	cfg.Seed = flagSeed
	return cfg
}
