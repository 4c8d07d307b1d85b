package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/config"
)

var levelsCmd = &cobra.Command{
	Use:   "levels [file]",
	Short: "List embedded levels or check a level file",
	Long: `Without arguments, lists the embedded levels. With a file argument,
parses and validates a custom level and prints its summary.

Examples:
  platformer levels
  platformer levels ./my-level.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runLevels,
}

func runLevels(_ *cobra.Command, args []string) {
	if len(args) == 1 {
		lvl, err := config.LoadLevelFile(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("%s: valid\n\n", args[0])
		printLevelHeader()
		printLevel(lvl)
		return
	}

	printLevelHeader()
	for _, id := range config.LevelIDs() {
		lvl, err := config.EmbeddedLevel(id)
		if err != nil {
			fmt.Fprintf(os.Stderr, "  %-12s  error: %v\n", id, err)
			continue
		}
		printLevel(lvl)
	}
	fmt.Println()
	fmt.Println("Play one with 'platformer play platformer --level <id>'.")
}

func printLevelHeader() {
	fmt.Printf("  %-12s  %-20s  %6s  %6s  %7s  %5s\n", "ID", "Name", "Length", "Ground", "Enemies", "Items")
	fmt.Printf("  %-12s  %-20s  %6s  %6s  %7s  %5s\n", "--", "----", "------", "------", "-------", "-----")
}

func printLevel(l config.Level) {
	fmt.Printf("  %-12s  %-20s  %6.0f  %6d  %7d  %5d\n",
		l.ID, l.Name, l.EndX-l.Spawn.X, len(l.Ground), len(l.Enemies), len(l.Collectibles))
}
