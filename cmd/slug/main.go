// slug is a terminal platformer: a deterministic simulation engine with a
// Bubble Tea front-end, an SSH server and headless tooling.
//
// Usage:
//
//	slug play              - Play the campaign in the terminal
//	slug serve             - Start SSH server for remote play
//	slug sim               - Run the simulation headless and print a snapshot
//	slug levels            - List the level catalog
//	slug shop [buy <id>]   - Show or buy upgrades
//	slug scores [diff]     - Show high scores
//	slug save              - Print the save record
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.slug/slug.db)
//	--config <path>     - Engine config YAML
//	--levels <dir>      - Load levels from a directory instead of the campaign
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/paintball-slug/internal/config"
	"github.com/vovakirdan/paintball-slug/internal/level"
	"github.com/vovakirdan/paintball-slug/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfigPath string
	flagLevelDir   string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "slug",
	Short: "Paintball Slug - a paintball platformer in your terminal",
	Long: `Paintball Slug is a side-view platformer: run, jump and roll through
trap-filled levels, paint enemies out of the way and race the clock.

Available commands:
  play     - Play the campaign
  serve    - Start SSH server for remote play
  sim      - Run the simulation headless
  levels   - List the level catalog
  shop     - Show or buy upgrades
  scores   - View high scores
  save     - Print the save record

Examples:
  slug play --difficulty hard
  slug play --levels ./levels --watch
  slug serve --ssh :2222 --metrics :9090
  slug sim --frames 600 --seed 42 --script run-right`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.slug/slug.db", "Path to save database")
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "Engine config YAML (default: search ~/.slug/configs, ./configs)")
	rootCmd.PersistentFlags().StringVar(&flagLevelDir, "levels", "", "Directory of level YAML files (default: built-in campaign)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(shopCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(saveCmd)
}

// newLogger builds the process logger from --log-level.
func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "slug",
	})
	lvl, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using warn", "level", flagLogLevel)
		lvl = log.WarnLevel
	}
	logger.SetLevel(lvl)
	return logger
}

// loadEngine loads the engine config and the level catalog named by the
// global flags.
func loadEngine() (config.EngineConfig, *level.Catalog, error) {
	cfg, err := config.Load(flagConfigPath)
	if err != nil {
		return cfg, nil, err
	}
	var catalog *level.Catalog
	if flagLevelDir != "" {
		catalog, err = level.LoadDir(flagLevelDir)
	} else {
		catalog, err = level.LoadEmbedded()
	}
	if err != nil {
		return cfg, nil, err
	}
	return cfg, catalog, nil
}

// openStore opens the save database.
func openStore() (*storage.Store, error) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return nil, fmt.Errorf("opening save database: %w", err)
	}
	return store, nil
}
