package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/paintball-slug/internal/config"
	"github.com/vovakirdan/paintball-slug/internal/core"
	"github.com/vovakirdan/paintball-slug/internal/engine"
	"github.com/vovakirdan/paintball-slug/internal/level"
	"github.com/vovakirdan/paintball-slug/internal/metrics"
	"github.com/vovakirdan/paintball-slug/internal/profile"
	"github.com/vovakirdan/paintball-slug/internal/storage"
)

// Services are the dependencies shared by every screen of a session.
// Store, Recorder and Watcher are optional.
type Services struct {
	Levels   *level.Catalog
	Engine   config.EngineConfig
	Store    *storage.Store
	Recorder *metrics.Recorder
	Logger   *log.Logger

	// Watcher and LevelDir enable hot reload of level files.
	Watcher  *level.Watcher
	LevelDir string
}

func (s Services) logger() *log.Logger {
	if s.Logger == nil {
		return log.New(io.Discard)
	}
	return s.Logger
}

// loadSave reads the save record, falling back to a fresh one.
func (s Services) loadSave() profile.SaveData {
	if s.Store == nil {
		return profile.Default()
	}
	save, err := s.Store.LoadSave()
	if err != nil {
		s.logger().Warn("could not load save record", "error", err)
		return profile.Default()
	}
	return save
}

// writeSave merges save into the store and returns the stored record.
// Without a store, or on failure, save comes back unchanged.
func (s Services) writeSave(save profile.SaveData) profile.SaveData {
	if s.Store == nil {
		return save
	}
	stored, err := s.Store.WriteSave(save)
	if err != nil {
		s.logger().Warn("could not write save record", "error", err)
		return save
	}
	return stored
}

// levelsReloadedMsg carries a freshly loaded catalog after a file change.
type levelsReloadedMsg struct {
	path    string
	catalog *level.Catalog
	err     error
}

// watchLevels waits for the next level file change and reloads the
// level directory.
func watchLevels(w *level.Watcher, dir string) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		path, ok := <-w.Events
		if !ok {
			return nil
		}
		catalog, err := level.LoadDir(dir)
		return levelsReloadedMsg{path: path, catalog: catalog, err: err}
	}
}

// GameModel runs one simulation with back-to-menu capability.
type GameModel struct {
	svc        Services
	sim        *engine.Simulation
	difficulty config.DifficultyPreset
	startLevel int
	screen     *core.Screen
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	hold       *KeyHold
	loop       uint64
	lastTick   time.Time
	status     engine.StepResult
	recorded   bool
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a game model and starts a run.
func NewGameModel(svc Services, save profile.SaveData, preset config.DifficultyPreset, startLevel int, cfg core.RuntimeConfig) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	m := GameModel{
		svc:        svc,
		difficulty: preset,
		startLevel: startLevel,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		hold:       NewKeyHold(keyHoldWindow),
		loop:       tickGen.Add(1),
	}
	m.sim = m.newSimulation(svc.Levels, save)
	m.status = m.sim.Status()
	return m
}

func (m GameModel) newSimulation(levels *level.Catalog, save profile.SaveData) *engine.Simulation {
	return engine.New(levels,
		engine.WithConfig(m.svc.Engine),
		engine.WithDifficulty(config.ProfileFor(m.difficulty)),
		engine.WithSave(save),
		engine.WithSeed(uint64(m.config.Seed)), //#nosec G115 -- seed bits, sign irrelevant
		engine.WithStartLevel(m.startLevel),
		engine.WithLogger(m.svc.logger()),
		engine.WithEventSink(m.svc.Recorder.Sink()),
	)
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate, m.loop)
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil
	case TickMsg:
		if msg.Loop != m.loop {
			return m, nil
		}
		return m.handleTick(msg.Time)
	case levelsReloadedMsg:
		return m.handleReload(msg)
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	}

	// Back to menu (B or Esc) once the run is not being played.
	if m.status.State != engine.StatePlaying &&
		m.keyMapper.MapKeyToMenuAction(msg) == MenuActionBack {
		m.leave()
		m.backToMenu = true
		return m, nil
	}

	k, quit := m.keyMapper.MapKey(msg)
	if quit {
		m.leave()
		m.quitting = true
		return m, tea.Quit
	}
	m.hold.Press(k, time.Now())
	return m, nil
}

// handleMouse fires toward the clicked cell.
func (m GameModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Button != tea.MouseButtonLeft || msg.Action != tea.MouseActionPress {
		return m, nil
	}
	v := newViewport(m.svc.Engine.World, m.screen.Width(), m.screen.Height())
	shake := m.sim.Shake()
	v.offX, v.offY = shake.OffX, shake.OffY
	if !v.inField(msg.Y) {
		return m, nil
	}
	x, y := v.toWorld(msg.X, msg.Y)
	m.sim.Shoot(x, y)
	return m, nil
}

// handleTick advances the simulation by the wall time since the last tick.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := 1 / float64(max(m.config.TickRate, 1))
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick).Seconds()
	}
	m.lastTick = now

	res := m.sim.Step(dt, m.hold.Frame(now))
	m.svc.Recorder.Frame()
	m.status = res

	switch res.State {
	case engine.StateGameOver, engine.StateWon:
		if !m.recorded {
			m.record(res)
			m.recorded = true
		}
	case engine.StatePlaying:
		m.recorded = false
	}

	return m, tickCmd(m.config.TickRate, m.loop)
}

// handleReload swaps in a new level catalog and restarts the current level.
func (m GameModel) handleReload(msg levelsReloadedMsg) (tea.Model, tea.Cmd) {
	logger := m.svc.logger()
	if msg.err != nil {
		logger.Warn("level reload failed", "path", msg.path, "error", msg.err)
		return m, nil
	}
	logger.Info("levels reloaded", "path", msg.path, "levels", msg.catalog.Len())
	m.svc.Levels = msg.catalog
	m.startLevel = m.status.Level
	prev := m.sim
	m.sim = m.newSimulation(msg.catalog, prev.Save())
	m.sim.Continue(prev)
	m.status = m.sim.Status()
	m.recorded = false
	return m, nil
}

// record persists a finished run: the save record with the banked score
// and one run row.
func (m GameModel) record(res engine.StepResult) {
	outcome := storage.OutcomeWon
	if res.State == engine.StateGameOver {
		outcome = string(res.Reason)
	}
	m.svc.Recorder.RunFinished(outcome)
	m.sim.SetSave(m.svc.writeSave(m.sim.Save()))
	if m.svc.Store == nil {
		return
	}
	_, err := m.svc.Store.RecordRun(storage.Run{
		Difficulty:    string(m.difficulty),
		Outcome:       outcome,
		Score:         res.Score,
		Level:         res.Level,
		TimeRemaining: res.TimeRemaining,
	})
	if err != nil {
		m.svc.logger().Warn("could not record run", "error", err)
	}
}

// leave persists the save record when the player walks away. Unfinished
// runs bank nothing.
func (m GameModel) leave() {
	if m.status.State == engine.StatePlaying || m.status.State == engine.StatePaused {
		m.svc.Recorder.RunFinished(storage.OutcomeQuit)
	}
	m.sim.SetSave(m.svc.writeSave(m.sim.Save()))
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	drawSimulation(m.screen, m.sim)

	dir := filepath.Join(os.Getenv("HOME"), ".slug", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("level%d_%s.txt", m.status.Level, timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the game.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	drawSimulation(m.screen, m.sim)
	return RenderScreen(m.screen)
}

// Save returns the simulation's save record.
func (m GameModel) Save() profile.SaveData {
	return m.sim.Save()
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a local session at the main menu, or straight in a game when
// startLevel is positive.
func Run(svc Services, preset config.DifficultyPreset, startLevel int, cfg core.RuntimeConfig) error {
	model := NewSessionModel(svc, cfg, preset, startLevel)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
