package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/paintball-slug/internal/profile"
)

// ShopKeyMap defines the key bindings for the upgrade shop.
type ShopKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Buy  key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ShopKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Buy, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ShopKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Buy}, {k.Back, k.Quit}}
}

// DefaultShopKeyMap returns default key bindings.
func DefaultShopKeyMap() ShopKeyMap {
	return ShopKeyMap{
		Up:   key.NewBinding(key.WithKeys("up", "k", "w"), key.WithHelp("up/k", "up")),
		Down: key.NewBinding(key.WithKeys("down", "j", "s"), key.WithHelp("down/j", "down")),
		Buy:  key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "buy")),
		Back: key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShopModel lets the player spend banked score on upgrades.
type ShopModel struct {
	svc       Services
	save      profile.SaveData
	cursor    int
	status    string
	keys      ShopKeyMap
	help      help.Model
	width     int
	quitting  bool
	goingBack bool
}

// NewShopModel creates a shop over the given save record.
func NewShopModel(svc Services, save profile.SaveData, width int) ShopModel {
	return ShopModel{
		svc:   svc,
		save:  save,
		keys:  DefaultShopKeyMap(),
		help:  help.New(),
		width: width,
	}
}

// Init initializes the shop model.
func (m ShopModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the shop.
func (m ShopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(profile.Shop)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Buy):
			m.buy(profile.Shop[m.cursor])
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m *ShopModel) buy(it profile.Item) {
	err := m.save.Purchase(it.ID)
	switch {
	case errors.Is(err, profile.ErrOwned):
		m.status = it.Name + " is already owned."
	case errors.Is(err, profile.ErrInsufficientScore):
		m.status = fmt.Sprintf("Need %d more points for %s.", it.Price-m.save.TotalScore, it.Name)
	case err != nil:
		m.status = err.Error()
	default:
		m.save = m.svc.writeSave(m.save)
		m.svc.logger().Info("upgrade purchased", "item", it.ID, "total", m.save.TotalScore)
		m.status = fmt.Sprintf("Bought %s!", it.Name)
	}
}

// View renders the shop.
func (m ShopModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	ownedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	var rows strings.Builder
	for i, it := range profile.Shop {
		price := fmt.Sprintf("%5d", it.Price)
		if m.save.Upgrades.Owns(it.ID) {
			price = ownedStyle.Render("owned")
		}
		line := fmt.Sprintf("%-16s %s  %s", it.Name, price, dimStyle.Render(it.Desc))
		if i == m.cursor {
			line = activeStyle.Render("> ") + line
		} else {
			line = "  " + line
		}
		rows.WriteString(line)
		rows.WriteString("\n")
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("UPGRADE SHOP", m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText(fmt.Sprintf("Total score: %d", m.save.TotalScore), m.width))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, boxStyle.Render(strings.TrimRight(rows.String(), "\n"))))
	b.WriteString("\n\n")
	if m.status != "" {
		b.WriteString(centerText(m.status, m.width))
		b.WriteString("\n")
	}
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Save returns the save record including any purchases.
func (m ShopModel) Save() profile.SaveData {
	return m.save
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ShopModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ShopModel) IsQuitting() bool {
	return m.quitting
}
