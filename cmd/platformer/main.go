// platformer is a side-scrolling platformer for the terminal.
//
// Usage:
//
//	platformer list              - List available variants
//	platformer play <variant>    - Play a variant
//	platformer menu              - Pick variants and levels interactively
//	platformer serve             - Start SSH server for remote play
//	platformer scores <variant>  - Show high scores and recent runs
//	platformer levels            - List embedded levels
//	platformer config <variant>  - Print a variant's default config
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.platformer/scores.db)
//	--hold-ticks <n>     - Ticks a movement key press stays held
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-platformer/internal/games/platformer"
)

var (
	// Global flags
	flagFPS       int
	flagSeed      int64
	flagDBPath    string
	flagHoldTicks int
	flagLogFile   string
	flagLogLevel  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "platformer",
	Short: "Platformer - run, jump and collect in your terminal",
	Long: `Platformer is a side-scrolling platformer that runs in a terminal,
locally or over SSH.

Variants:
  stage       - flat practice stage with a finish line
  pits        - gaps in the floor and enemies that kill on contact
  platformer  - lives, spikes, pickups, particles and a smooth camera

Examples:
  platformer list
  platformer play platformer
  platformer play pits --difficulty hard
  platformer play platformer --level gauntlet --sound
  platformer menu
  platformer serve --ssh :2222 --spectate :8080
  platformer scores platformer`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.platformer/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().IntVar(&flagHoldTicks, "hold-ticks", 0, "Ticks a movement key press stays held (0 = default)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file path (default ~/.platformer/logs/platformer.log)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(configCmd)
}
