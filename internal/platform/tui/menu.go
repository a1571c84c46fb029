package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-fruits/internal/config"
	"github.com/vovakirdan/tui-fruits/internal/core"
)

// MenuChoice is what the player picked on the title screen.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoicePlay
	ChoiceScores
	ChoiceQuit
)

type menuItem int

const (
	itemPlay menuItem = iota
	itemDifficulty
	itemScores
	itemQuit
	itemCount
)

// MenuModel is the Bubble Tea model for the title screen.
type MenuModel struct {
	cursor    menuItem
	presets   []config.DifficultyPreset
	preset    int
	best      int
	width     int
	height    int
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	help      help.Model
	choice    MenuChoice
	quitting  bool
}

// NewMenuModel creates the title screen with difficulty preselected.
func NewMenuModel(cfg core.RuntimeConfig, difficulty config.DifficultyPreset, best int) MenuModel {
	presets := config.Presets()
	preset := 0
	for i, p := range presets {
		if p == difficulty {
			preset = i
		}
	}

	h := help.New()
	h.ShowAll = true

	return MenuModel{
		presets:   presets,
		preset:    preset,
		best:      best,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		help:      h,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.choice = ChoiceQuit
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		m.cursor = (m.cursor + itemCount - 1) % itemCount

	case MenuActionDown:
		m.cursor = (m.cursor + 1) % itemCount

	case MenuActionLeft:
		if m.cursor == itemDifficulty {
			m.preset = (m.preset + len(m.presets) - 1) % len(m.presets)
		}

	case MenuActionRight:
		if m.cursor == itemDifficulty {
			m.preset = (m.preset + 1) % len(m.presets)
		}

	case MenuActionScoreboard:
		m.choice = ChoiceScores
		return m, tea.Quit

	case MenuActionSelect:
		switch m.cursor {
		case itemPlay:
			m.choice = ChoicePlay
		case itemDifficulty:
			m.preset = (m.preset + 1) % len(m.presets)
			return m, nil
		case itemScores:
			m.choice = ChoiceScores
		case itemQuit:
			m.choice = ChoiceQuit
			m.quitting = true
		}
		return m, tea.Quit
	}

	return m, nil
}

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
	menuActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(menuTitleStyle.Render(centerText("  F R U I T   S L I C E R  ", m.width)))
	b.WriteString("\n\n")
	b.WriteString(menuDimStyle.Render(centerText(fmt.Sprintf("Best: %d", m.best), m.width)))
	b.WriteString("\n\n")

	for i := menuItem(0); i < itemCount; i++ {
		line := m.itemLabel(i)
		if i == m.cursor {
			b.WriteString(menuActiveStyle.Render(centerText("> "+line, m.width)))
		} else {
			b.WriteString(centerText("  "+line, m.width))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(menuDimStyle.Render(centerText("Up/Down: Navigate  |  Left/Right: Difficulty  |  Tab: Scores  |  Q: Quit", m.width)))
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keyMapper.Keys()))
	b.WriteString("\n")

	return b.String()
}

func (m MenuModel) itemLabel(i menuItem) string {
	switch i {
	case itemPlay:
		return "Play"
	case itemDifficulty:
		return fmt.Sprintf("Difficulty: < %s >", m.Difficulty())
	case itemScores:
		return "Scores"
	default:
		return "Quit"
	}
}

// Choice returns what the player picked.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}

// Difficulty returns the selected preset.
func (m MenuModel) Difficulty() config.DifficultyPreset {
	return m.presets[m.preset]
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Choice     MenuChoice
	Difficulty config.DifficultyPreset
	Config     core.RuntimeConfig
}

// RunMenu runs the title screen and returns the selection.
func RunMenu(cfg core.RuntimeConfig, difficulty config.DifficultyPreset, best int) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(cfg, difficulty, best),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Choice: ChoiceQuit, Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok || m.Choice() == ChoiceNone {
		return MenuResult{Choice: ChoiceQuit, Config: cfg}, nil
	}

	return MenuResult{
		Choice:     m.Choice(),
		Difficulty: m.Difficulty(),
		Config:     m.Config(),
	}, nil
}
