package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/paintball-slug/internal/config"
	"github.com/vovakirdan/paintball-slug/internal/core"
	"github.com/vovakirdan/paintball-slug/internal/level"
	"github.com/vovakirdan/paintball-slug/internal/platform/tui"
	"github.com/vovakirdan/paintball-slug/internal/storage"
)

var (
	flagDifficulty string
	flagWatch      bool
	flagStartLevel int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the campaign",
	Long: `Start the game in the terminal at the main menu.

Controls:
  A/D, Left/Right  - Move
  W/Up/Space       - Jump
  S/Down           - Crouch
  C                - Roll
  X/F, mouse click - Shoot
  P/Esc            - Pause
  R                - Restart
  B                - Back to menu (paused or game over)
  Ctrl+S           - Screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy       - Half damage, double ammo, slower traps, half score
  normal     - Base rules
  hard       - More damage, less ammo, faster traps and enemies, double score
  challenge  - Double damage, half ammo, no respawn checkpoints, triple score

Examples:
  slug play
  slug play --difficulty hard
  slug play --level 3
  slug play --levels ./levels --watch`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "normal", "Difficulty preset: easy, normal, hard, challenge")
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload levels when files in --levels change")
	playCmd.Flags().IntVar(&flagStartLevel, "level", 0, "Skip the menu and start at this level number")
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger := newLogger()

	engineCfg, catalog, err := loadEngine()
	if err != nil {
		return err
	}
	if flagStartLevel > 0 {
		if _, ok := catalog.Get(flagStartLevel); !ok {
			return fmt.Errorf("unknown level %d (catalog has %d..%d)", flagStartLevel, catalog.First(), catalog.Max())
		}
	}

	// Get terminal size for the initial layout
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open save database, progress will not be kept", "error", err)
		// Continue without storage - game still works
		store = nil
	} else {
		defer store.Close()
	}

	svc := tui.Services{
		Levels: catalog,
		Engine: engineCfg,
		Store:  store,
		Logger: logger,
	}

	if flagWatch {
		if flagLevelDir == "" {
			return fmt.Errorf("--watch needs --levels")
		}
		watcher, werr := level.NewWatcher(flagLevelDir)
		if werr != nil {
			return fmt.Errorf("watching %s: %w", flagLevelDir, werr)
		}
		defer watcher.Close()
		svc.Watcher = watcher
		svc.LevelDir = flagLevelDir
	}

	return tui.Run(svc, config.ParsePreset(flagDifficulty), flagStartLevel, cfg)
}
