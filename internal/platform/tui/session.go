package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/paintball-slug/internal/config"
	"github.com/vovakirdan/paintball-slug/internal/core"
	"github.com/vovakirdan/paintball-slug/internal/profile"
)

type screen int

const (
	screenMenu screen = iota
	screenGame
	screenShop
	screenScores
)

// SessionModel manages the full session flow: menu -> game/shop/scores -> menu.
// It is the top-level model for both local play and SSH sessions.
type SessionModel struct {
	svc        Services
	config     core.RuntimeConfig
	username   string
	save       profile.SaveData
	difficulty config.DifficultyPreset
	current    screen
	menu       MenuModel
	game       *GameModel
	shop       ShopModel
	scores     ScoreboardModel
	quitting   bool
}

// NewSessionModel creates a session. A positive startLevel skips the menu
// and starts a run at that level.
func NewSessionModel(svc Services, cfg core.RuntimeConfig, preset config.DifficultyPreset, startLevel int) SessionModel {
	m := SessionModel{
		svc:        svc,
		config:     cfg,
		save:       svc.loadSave(),
		difficulty: preset,
	}
	m.menu = NewMenuModel(preset, m.save.TotalScore, cfg.ScreenW, cfg.ScreenH)
	if startLevel > 0 {
		game := NewGameModel(svc, m.save, preset, startLevel, cfg)
		m.game = &game
		m.current = screenGame
	}
	return m
}

// WithUser tags the session with the SSH user name.
func (m SessionModel) WithUser(name string) SessionModel {
	m.username = name
	return m
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	cmds := []tea.Cmd{watchLevels(m.svc.Watcher, m.svc.LevelDir)}
	if m.current == screenGame {
		cmds = append(cmds, m.game.Init())
	}
	return tea.Batch(cmds...)
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	if reload, ok := msg.(levelsReloadedMsg); ok {
		if reload.err == nil {
			m.svc.Levels = reload.catalog
		}
		next := watchLevels(m.svc.Watcher, m.svc.LevelDir)
		if m.current != screenGame {
			if reload.err != nil {
				m.svc.logger().Warn("level reload failed", "path", reload.path, "error", reload.err)
			}
			return m, next
		}
		updated, cmd := m.updateGame(msg)
		return updated, tea.Batch(cmd, next)
	}

	switch m.current {
	case screenGame:
		return m.updateGame(msg)
	case screenShop:
		return m.updateShop(msg)
	case screenScores:
		return m.updateScores(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	m.difficulty = m.menu.Difficulty()
	switch m.menu.Choice() {
	case ChoicePlay:
		game := NewGameModel(m.svc, m.save, m.difficulty, 0, m.config)
		m.game = &game
		m.current = screenGame
		m.svc.logger().Info("run started", "user", m.username, "difficulty", m.difficulty)
		return m, m.game.Init()
	case ChoiceShop:
		m.shop = NewShopModel(m.svc, m.save, m.config.ScreenW)
		m.current = screenShop
		return m, nil
	case ChoiceScores:
		m.scores = NewScoreboardModel(m.svc.Store, m.difficulty, m.config.ScreenW, m.config.ScreenH)
		m.current = screenScores
		return m, nil
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.game = &gameModel
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.BackToMenu() {
		m.save = m.game.Save()
		m.game = nil
		return m.toMenu()
	}

	return m, cmd
}

func (m SessionModel) updateShop(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.shop.Update(msg)
	if shop, ok := newModel.(ShopModel); ok {
		m.shop = shop
	}
	m.save = m.shop.Save()

	if m.shop.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.shop.IsGoingBack() {
		return m.toMenu()
	}
	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scores.Update(msg)
	if scores, ok := newModel.(ScoreboardModel); ok {
		m.scores = scores
	}

	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scores.IsGoingBack() {
		return m.toMenu()
	}
	return m, cmd
}

func (m SessionModel) toMenu() (tea.Model, tea.Cmd) {
	m.current = screenMenu
	m.menu = NewMenuModel(m.difficulty, m.save.TotalScore, m.config.ScreenW, m.config.ScreenH)
	return m, m.menu.Init()
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.current {
	case screenGame:
		return m.game.View()
	case screenShop:
		return m.shop.View()
	case screenScores:
		return m.scores.View()
	}
	return m.menu.View()
}
