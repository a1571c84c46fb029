package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-fruits/internal/audio"
	"github.com/vovakirdan/tui-fruits/internal/core"
	"github.com/vovakirdan/tui-fruits/internal/games/fruits"
	"github.com/vovakirdan/tui-fruits/internal/storage"
)

// Options wires the collaborators of a play session. Every field but
// Runtime may be left zero.
type Options struct {
	Runtime    core.RuntimeConfig
	Difficulty string
	Store      *storage.Store
	Player     audio.Player
	Logger     *log.Logger
}

// Model is the Bubble Tea model that drives one fruits game.
type Model struct {
	game     *fruits.Game
	screen   *core.Screen
	opts     Options
	keys     *KeyMapper
	hold     *HoldTracker
	frame    core.InputFrame
	state    core.GameState
	now      time.Time
	runs     int // Finished sessions saved to history
	quitting bool
}

// NewModel creates a model for game and resets it with opts.Runtime.
func NewModel(game *fruits.Game, opts Options) Model {
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = core.DefaultConfig().TickRate
	}
	if opts.Player == nil {
		opts.Player = audio.Silent{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	game.Reset(opts.Runtime)
	opts.Logger.Info("session started",
		"seed", opts.Runtime.Seed,
		"difficulty", opts.Difficulty,
		"tick_rate", opts.Runtime.TickRate,
	)

	return Model{
		game:   game,
		screen: core.NewScreen(opts.Runtime.ScreenW, opts.Runtime.ScreenH),
		opts:   opts,
		keys:   NewKeyMapper(),
		hold:   NewHoldTracker(HoldWindow),
		frame:  core.NewInputFrame(),
		state:  game.State(),
		now:    time.Now(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.Runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.opts.Runtime.ScreenW = msg.Width
		m.opts.Runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey records the key for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		if path, err := m.saveScreenshot(); err != nil {
			m.opts.Logger.Warn("screenshot failed", "error", err)
		} else {
			m.opts.Logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		m.opts.Logger.Info("session ended", "score", m.state.Score, "runs", m.runs)
		return m, tea.Quit
	}

	switch action {
	case core.ActionNone:
	case core.ActionLeft, core.ActionRight:
		m.hold.Touch(action, m.now)
		m.frame.Hold(action)
	case core.ActionPause:
		m.hold.Release()
		m.frame.Press(action)
	default:
		m.frame.Press(action)
	}

	return m, nil
}

// handleTick steps the simulation once and routes its signals.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.now = now
	m.hold.Apply(&m.frame, now)

	result := m.game.Step(m.frame)
	m.state = result.State
	m.frame.Clear()

	m.route(m.game.Drain())
	if m.state.GameOver {
		m.hold.Release()
	}

	return m, tickCmd(m.opts.Runtime.TickRate)
}

// route hands signals to audio, history and the log.
func (m *Model) route(signals []fruits.Signal) {
	audio.PlaySignals(m.opts.Player, signals)

	for _, sig := range signals {
		switch s := sig.(type) {
		case fruits.LevelUpSignal:
			m.opts.Logger.Debug("level up", "level", s.Level, "interval", m.game.SpawnInterval())
		case fruits.PenaltySignal:
			m.opts.Logger.Debug("fruit missed", "x", s.X, "lives", m.game.State().Lives)
		case fruits.GameOverSignal:
			m.finishRun(s)
		}
	}
}

func (m *Model) finishRun(s fruits.GameOverSignal) {
	m.opts.Logger.Info("game over",
		"score", s.Score,
		"level", s.Level,
		"best", s.Best,
		"new_record", s.NewRecord,
		"elapsed", m.game.Elapsed().Round(time.Millisecond),
	)
	if s.RecordErr != nil {
		m.opts.Logger.Error("could not save record", "error", s.RecordErr)
	}

	m.runs++
	if m.opts.Store == nil {
		return
	}
	_, err := m.opts.Store.SaveRun(storage.Run{
		Score:      s.Score,
		Level:      s.Level,
		Duration:   m.game.Elapsed(),
		Difficulty: m.opts.Difficulty,
		Seed:       m.opts.Runtime.Seed,
	})
	if err != nil {
		m.opts.Logger.Warn("could not save run", "error", err)
	}
}

// saveScreenshot writes the current screen to a text file.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	return path, os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// State returns the state after the last tick.
func (m Model) State() core.GameState {
	return m.state
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run plays game until the player quits.
func Run(game *fruits.Game, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
