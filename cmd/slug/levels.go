package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/paintball-slug/internal/level"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the level catalog",
	Long: `Shows every level of the built-in campaign, or of --levels when given.
Loading validates each file, so this also checks a level directory.`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

func runLevels(_ *cobra.Command, _ []string) error {
	_, catalog, err := loadEngine()
	if err != nil {
		return err
	}

	source := "built-in campaign"
	if flagLevelDir != "" {
		source = flagLevelDir
	}
	fmt.Printf("Levels (%s):\n\n", source)

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, def := range catalog.Levels() {
		maxIDLen = max(maxIDLen, len(def.ID))
	}

	fmt.Printf("  %-3s  %-*s  %-16s  %s\n", "#", maxIDLen, "ID", "Name", "Contents")
	fmt.Printf("  %-3s  %-*s  %-16s  %s\n", "-", maxIDLen, "--", "----", "--------")
	for _, def := range catalog.Levels() {
		fmt.Printf("  %-3d  %-*s  %-16s  %s\n", def.Number, maxIDLen, def.ID, def.Name, contents(def))
	}

	fmt.Println()
	fmt.Println("Run 'slug play --level <#>' to start at a level.")
	return nil
}

func contents(def level.Definition) string {
	return fmt.Sprintf("%d traps, %d enemies, %d gates, %d checkpoints",
		len(def.Traps), len(def.Enemies), len(def.Gates), len(def.Checkpoints))
}
