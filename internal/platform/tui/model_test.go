package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-fruits/internal/config"
	"github.com/vovakirdan/tui-fruits/internal/core"
	"github.com/vovakirdan/tui-fruits/internal/games/fruits"
	"github.com/vovakirdan/tui-fruits/internal/record"
	"github.com/vovakirdan/tui-fruits/internal/storage"
)

type soundLog struct{ played []fruits.Sound }

func (s *soundLog) Play(snd fruits.Sound) { s.played = append(s.played, snd) }
func (s *soundLog) Close()                {}

func newTestModel(t *testing.T, cfg config.FruitsConfig, opts Options) Model {
	t.Helper()
	book := record.NewBook(&record.FileStore{Path: filepath.Join(t.TempDir(), record.DefaultFile)})
	game, err := fruits.New(cfg, book)
	if err != nil {
		t.Fatalf("fruits.New() error = %v", err)
	}
	opts.Runtime = core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 99}
	return NewModel(game, opts)
}

func send(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestModelTickAndRender(t *testing.T) {
	m := newTestModel(t, config.DefaultFruitsConfig(), Options{})

	now := time.Unix(0, 0)
	for i := 0; i < 10; i++ {
		now = now.Add(time.Second / 60)
		m = send(m, TickMsg(now))
	}

	if m.State().Lives != 5 || m.State().GameOver {
		t.Errorf("State() = %+v, expected a running game", m.State())
	}
	if !strings.Contains(m.View(), "Score: 0") {
		t.Error("View() should contain the HUD")
	}
}

func TestModelSliceRoutesSounds(t *testing.T) {
	sounds := &soundLog{}
	m := newTestModel(t, config.DefaultFruitsConfig(), Options{Player: sounds})

	m = send(m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m = send(m, TickMsg(time.Unix(0, 0)))

	if len(sounds.played) != 1 || sounds.played[0] != fruits.SoundSlash {
		t.Errorf("played = %v, expected a lone slash", sounds.played)
	}
}

func TestModelHeldMovementStops(t *testing.T) {
	m := newTestModel(t, config.DefaultFruitsConfig(), Options{})
	m.now = time.Unix(100, 0)

	m = send(m, tea.KeyMsg{Type: tea.KeyRight})
	now := m.now
	for i := 0; i < 30; i++ {
		now = now.Add(time.Second / 60)
		m = send(m, TickMsg(now))
	}

	if !m.hold.last[core.ActionRight].IsZero() {
		t.Error("hold should expire without autorepeat")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, config.DefaultFruitsConfig(), Options{})

	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if next.(Model).View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestModelSavesRunOnGameOver(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	cfg := config.DefaultFruitsConfig()
	cfg.Session.Lives = 1
	sounds := &soundLog{}
	m := newTestModel(t, cfg, Options{Store: store, Difficulty: "hard", Player: sounds})

	now := time.Unix(0, 0)
	for i := 0; i < 60*10 && !m.State().GameOver; i++ {
		now = now.Add(time.Second / 60)
		m = send(m, TickMsg(now))
	}
	if !m.State().GameOver {
		t.Fatal("an idle player should lose the only life")
	}

	runs, err := store.TopRuns("hard", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 || runs[0].Seed != 99 || runs[0].Duration == 0 {
		t.Errorf("runs = %+v, expected one saved run", runs)
	}
	if sounds.played[len(sounds.played)-1] != fruits.SoundGameOver {
		t.Errorf("last sound = %v, expected game over", sounds.played[len(sounds.played)-1])
	}

	m = send(m, runeKey('r'))
	m = send(m, TickMsg(now.Add(time.Second)))
	if m.State().GameOver {
		t.Error("r should start a new session")
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawTextColored(0, 0, "apple", core.ColorRed)
	s.DrawText(0, 1, "kiwi")

	out := RenderScreen(s)
	if !strings.Contains(out, "apple") || !strings.Contains(out, "kiwi") {
		t.Errorf("RenderScreen() lost text: %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected 2 lines, got %q", out)
	}
}

func TestMenuModel(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig(), config.DifficultyNormal, 12)

	step := func(msg tea.KeyMsg) {
		next, _ := m.Update(msg)
		m = next.(MenuModel)
	}

	if !strings.Contains(m.View(), "Best: 12") {
		t.Error("menu should show the record")
	}

	step(tea.KeyMsg{Type: tea.KeyDown})
	step(tea.KeyMsg{Type: tea.KeyRight})
	if m.Difficulty() != config.DifficultyHard {
		t.Errorf("Difficulty() = %v, expected hard", m.Difficulty())
	}
	step(tea.KeyMsg{Type: tea.KeyLeft})
	step(tea.KeyMsg{Type: tea.KeyLeft})
	if m.Difficulty() != config.DifficultyEasy {
		t.Errorf("Difficulty() = %v, expected easy", m.Difficulty())
	}

	step(tea.KeyMsg{Type: tea.KeyUp})
	step(tea.KeyMsg{Type: tea.KeyEnter})
	if m.Choice() != ChoicePlay {
		t.Errorf("Choice() = %v, expected play", m.Choice())
	}
}

func TestScoreboardTabs(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	store.SaveRun(storage.Run{Score: 40, Level: 3, Difficulty: "easy"})
	store.SaveRun(storage.Run{Score: 70, Level: 5, Difficulty: "hard"})

	m := NewScoreboardModel(store, 100, 30)
	if len(m.runs) != 2 {
		t.Fatalf("all tab shows %d runs, expected 2", len(m.runs))
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.difficulty() != "easy" || len(m.runs) != 1 || m.stats.HighScore != 40 {
		t.Errorf("easy tab: difficulty %q runs %d", m.difficulty(), len(m.runs))
	}
	if !strings.Contains(m.View(), "EASY") {
		t.Error("title should name the tab")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	if m.difficulty() != "fixed" || len(m.runs) != 0 {
		t.Errorf("tabs should wrap to fixed, got %q", m.difficulty())
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(ScoreboardModel).IsGoingBack() {
		t.Error("esc should go back")
	}
}

func TestFormatDuration(t *testing.T) {
	if got := formatDuration(83 * time.Second); got != "1:23" {
		t.Errorf("formatDuration(83s) = %q", got)
	}
}
