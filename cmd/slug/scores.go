package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/paintball-slug/internal/config"
	"github.com/vovakirdan/paintball-slug/internal/storage"
)

var flagClearScores bool

var scoresCmd = &cobra.Command{
	Use:   "scores [difficulty]",
	Short: "Show high scores",
	Long: `Display the top 10 runs for a difficulty, or per-difficulty statistics
when no difficulty is given.

Examples:
  slug scores
  slug scores hard
  slug scores hard --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete the run history of the difficulty")
}

func runScores(_ *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if len(args) == 0 {
		if flagClearScores {
			return fmt.Errorf("--clear needs a difficulty")
		}
		return printStats(store)
	}

	preset := config.ParsePreset(args[0])
	if string(preset) != args[0] {
		return fmt.Errorf("unknown difficulty %q", args[0])
	}
	label := config.ProfileFor(preset).Label

	if flagClearScores {
		if err := store.ClearRuns(string(preset)); err != nil {
			return err
		}
		fmt.Printf("Cleared %s run history.\n", label)
		return nil
	}

	runs, err := store.TopRuns(string(preset), 10)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", label)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'slug play --difficulty %s' to set the first high score!\n", preset)
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-13s  %-5s  %s\n", "Rank", "Score", "Outcome", "Level", "Date")
	fmt.Printf("  %-4s  %-8s  %-13s  %-5s  %s\n", "----", "-----", "-------", "-----", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-8d  %-13s  %-5d  %s\n", i+1, r.Score, r.Outcome, r.Level, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if best, err := store.HighScore(string(preset)); err == nil {
		fmt.Printf("Best: %d\n", best)
	}
	return nil
}

// printStats prints per-difficulty aggregates in preset order.
func printStats(store *storage.Store) error {
	stats, err := store.Stats()
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}
	if len(stats) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	keys := make([]string, 0, len(stats))
	for k := range stats {
		keys = append(keys, k)
	}
	order := make(map[string]int, len(config.Presets))
	for i, p := range config.Presets {
		order[string(p)] = i
	}
	sort.Slice(keys, func(i, j int) bool { return order[keys[i]] < order[keys[j]] })

	fmt.Printf("  %-10s  %-5s  %-5s  %-8s  %-8s  %s\n", "Difficulty", "Runs", "Wins", "Best", "Average", "Last played")
	fmt.Printf("  %-10s  %-5s  %-5s  %-8s  %-8s  %s\n", "----------", "----", "----", "----", "-------", "-----------")
	for _, k := range keys {
		st := stats[k]
		fmt.Printf("  %-10s  %-5d  %-5d  %-8d  %-8.1f  %s\n",
			k, st.Runs, st.Wins, st.HighScore, st.AvgScore, st.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
