package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var flagRecent int

var scoresCmd = &cobra.Command{
	Use:   "scores <variant>",
	Short: "Show high scores for a variant",
	Long: `Display the top 10 high scores, the fastest clear and the most
recent runs for the specified variant.

Examples:
  platformer scores platformer
  platformer scores pits --recent 20`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagRecent, "recent", 5, "Number of recent runs to show")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'platformer list' to see available variants.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'platformer play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	fmt.Println()
	if best, err := store.BestRun(gameID); err == nil && best != nil {
		fmt.Printf("Fastest clear: %s (%d coins, score %d)\n", ticksToTime(best.Ticks), best.Coins, best.Score)
	}
	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Printf("Cleared %d times, average score %.0f\n", stats.Finished, stats.AvgScore)
	}

	if flagRecent <= 0 {
		return
	}
	runs, err := store.RecentRuns(gameID, flagRecent)
	if err != nil || len(runs) == 0 {
		return
	}
	fmt.Println()
	fmt.Println("Recent runs:")
	fmt.Printf("  %-9s  %-8s  %-5s  %-8s  %s\n", "Outcome", "Score", "Coins", "Time", "Date")
	for _, r := range runs {
		fmt.Printf("  %-9s  %-8d  %-5d  %-8s  %s\n",
			r.Outcome, r.Score, r.Coins, ticksToTime(r.Ticks), r.CreatedAt.Format("2006-01-02 15:04"))
	}
}

// ticksToTime formats simulated ticks at the configured tick rate.
func ticksToTime(ticks int) string {
	rate := flagFPS
	if rate <= 0 {
		rate = 60
	}
	return fmt.Sprintf("%.1fs", float64(ticks)/float64(rate))
}
