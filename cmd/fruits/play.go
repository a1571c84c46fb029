package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-fruits/internal/audio"
	"github.com/vovakirdan/tui-fruits/internal/config"
	"github.com/vovakirdan/tui-fruits/internal/core"
	"github.com/vovakirdan/tui-fruits/internal/games/fruits"
	"github.com/vovakirdan/tui-fruits/internal/platform/tui"
	"github.com/vovakirdan/tui-fruits/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start playing right away",
	Long: `Start a game without the title menu.

Controls:
  Left/Right, h/l  - Walk
  Space            - Slice
  A                - Boost (needs a charge)
  Esc/P            - Pause, Enter resumes
  R/Enter          - Play again after game over
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Slower spawns and fall, levels come later
  normal - Default tuning
  hard   - Faster spawns and fall, bigger combos
  fixed  - Normal tuning without level progression

Examples:
  fruits play
  fruits play --difficulty hard
  fruits play --config ./my-fruits.yaml --seed 7`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	return s.play(runtimeConfig(), s.preset)
}

// session holds the collaborators shared by every game started from one
// command invocation.
type session struct {
	cfg     config.FruitsConfig
	preset  config.DifficultyPreset
	logger  *log.Logger
	closers []func() error
	store   *storage.Store
	records fruits.RecordKeeper
	player  audio.Player
}

func openSession() (*session, error) {
	logger, logCloser, logErr := openLogger()
	s := &session{logger: logger, closers: []func() error{logCloser.Close}}
	if logErr != nil {
		s.Close()
		return nil, logErr
	}

	var err error
	if s.cfg, s.preset, err = loadGameConfig(); err != nil {
		s.Close()
		return nil, err
	}
	logger.Debug("config loaded", "source", config.Source(flagConfig), "difficulty", s.preset)

	if s.records, err = openRecords(logger); err != nil {
		s.Close()
		return nil, err
	}

	// The game still works without history.
	if s.store, err = storage.Open(flagDBPath); err != nil {
		logger.Warn("could not open run history", "error", err)
		s.store = nil
	} else {
		s.closers = append(s.closers, s.store.Close)
	}

	s.player, err = audio.Open(flagSound, flagVolume)
	if err != nil {
		logger.Warn("sound disabled", "error", err)
	}
	s.closers = append(s.closers, func() error { s.player.Close(); return nil })

	return s, nil
}

// play runs one game until the player quits.
func (s *session) play(rt core.RuntimeConfig, preset config.DifficultyPreset) error {
	cfg := s.cfg
	if preset != s.preset {
		var err error
		if cfg, err = config.Load(flagConfig); err != nil {
			return err
		}
		config.ApplyPreset(&cfg, preset)
	}

	game, err := fruits.New(cfg, s.records)
	if err != nil {
		return fmt.Errorf("cannot create game: %w", err)
	}

	err = tui.Run(game, tui.Options{
		Runtime:    rt,
		Difficulty: string(preset),
		Store:      s.store,
		Player:     s.player,
		Logger:     s.logger,
	})
	if err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}

// Close releases everything in reverse order of opening.
func (s *session) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil {
			s.logger.Warn("close failed", "error", err)
		}
	}
	s.closers = nil
}
