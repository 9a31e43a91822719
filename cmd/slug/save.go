package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/paintball-slug/internal/profile"
)

var flagSaveJSON bool

var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Print the save record",
	Long: `Show the persistent save record: banked total score, owned upgrades,
best remaining times per difficulty and tutorial hints already seen.`,
	Args: cobra.NoArgs,
	RunE: runSave,
}

func init() {
	saveCmd.Flags().BoolVar(&flagSaveJSON, "json", false, "Print the record as JSON")
}

func runSave(_ *cobra.Command, _ []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	save, err := store.LoadSave()
	if err != nil {
		return err
	}

	if flagSaveJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(save)
	}

	fmt.Printf("Total score: %d\n", save.TotalScore)
	fmt.Println()
	fmt.Println("Upgrades:")
	for _, it := range profile.Shop {
		mark := " "
		if save.Upgrades.Owns(it.ID) {
			mark = "x"
		}
		fmt.Printf("  [%s] %s\n", mark, it.Name)
	}

	fmt.Println()
	fmt.Println("Best times (seconds remaining):")
	if len(save.BestTimes) == 0 {
		fmt.Println("  none yet")
	}
	for _, k := range sortedKeys(save.BestTimes) {
		fmt.Printf("  %-10s %.1f\n", k, save.BestTimes[k])
	}

	fmt.Println()
	fmt.Printf("Tutorials seen: %d\n", len(save.TutorialSeen))
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
