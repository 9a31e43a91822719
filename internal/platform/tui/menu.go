package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/paintball-slug/internal/config"
)

// MenuChoice is what the player picked on the main menu.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoicePlay
	ChoiceShop
	ChoiceScores
)

type menuItem int

const (
	itemPlay menuItem = iota
	itemDifficulty
	itemShop
	itemScores
	itemQuit
)

var menuItems = []menuItem{itemPlay, itemDifficulty, itemShop, itemScores, itemQuit}

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	cursor     int
	difficulty int // index into config.Presets
	totalScore int
	width      int
	height     int
	keyMapper  *KeyMapper
	quitting   bool
	choice     MenuChoice
}

// NewMenuModel creates a new menu model.
func NewMenuModel(preset config.DifficultyPreset, totalScore, width, height int) MenuModel {
	idx := 0
	for i, p := range config.Presets {
		if p == preset {
			idx = i
		}
	}
	return MenuModel{
		difficulty: idx,
		totalScore: totalScore,
		width:      width,
		height:     height,
		keyMapper:  NewKeyMapper(),
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
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(menuItems)-1 {
			m.cursor++
		}

	case MenuActionLeft:
		if menuItems[m.cursor] == itemDifficulty {
			m.difficulty = (m.difficulty + len(config.Presets) - 1) % len(config.Presets)
		}

	case MenuActionRight:
		if menuItems[m.cursor] == itemDifficulty {
			m.difficulty = (m.difficulty + 1) % len(config.Presets)
		}

	case MenuActionSelect:
		switch menuItems[m.cursor] {
		case itemPlay:
			m.choice = ChoicePlay
		case itemDifficulty:
			m.difficulty = (m.difficulty + 1) % len(config.Presets)
		case itemShop:
			m.choice = ChoiceShop
		case itemScores:
			m.choice = ChoiceScores
		case itemQuit:
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m MenuModel) label(it menuItem) string {
	switch it {
	case itemPlay:
		return "Play"
	case itemDifficulty:
		return fmt.Sprintf("Difficulty: < %s >", config.ProfileFor(m.Difficulty()).Label)
	case itemShop:
		return "Upgrade Shop"
	case itemScores:
		return "High Scores"
	}
	return "Quit"
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("  P A I N T B A L L   S L U G  ", m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText(fmt.Sprintf("Total score: %d", m.totalScore), m.width))
	b.WriteString("\n\n")

	for i, it := range menuItems {
		line := "  " + m.label(it)
		if i == m.cursor {
			line = activeStyle.Render("> " + m.label(it))
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Left/Right: Difficulty  |  Enter: Select  |  Q: Quit"
	b.WriteString(dimStyle.Render(centerText(controls, m.width)))
	b.WriteString("\n")

	return b.String()
}

// Choice returns the screen picked by the player, if any.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}

// Difficulty returns the selected preset.
func (m MenuModel) Difficulty() config.DifficultyPreset {
	return config.Presets[m.difficulty]
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
