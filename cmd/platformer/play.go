package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play <variant>",
	Short: "Play a variant",
	Long: `Start playing the specified variant.

Controls:
  Left/Right, A/D  - Move (terminals repeat keys; a press holds briefly)
  Space/Up/W       - Jump
  Enter            - Start
  P                - Pause
  R                - Restart
  Esc              - Pause, or leave when paused or over
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Full lives, longer invincibility after a hit
  normal - Enemy speed ramps up from 30%
  hard   - At most two lives, shorter invincibility, ramp from 70%
  fixed  - No progression, stays at config's initial level

Examples:
  platformer play stage
  platformer play platformer --difficulty easy
  platformer play platformer --level gauntlet
  platformer play pits --config ./my-pits.yaml
  platformer play platformer --sound --spectate :8080`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	addGameFlags(playCmd)
	addSoundFlags(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'platformer list' to see available variants.")
		os.Exit(1)
	}
	if err := applyGameFlags(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, logCloser := openLogger()
	player := openAudio(logger)
	hub, stopSpectate := startSpectate(logger)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores disabled", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	hooks := tui.Hooks{Logger: logger, Audio: player, Spectate: hub}
	runErr := tui.Run(game, store, runtimeConfig(), hooks)

	// Clean up before potential exit
	if store != nil {
		store.Close()
	}
	stopSpectate()
	player.Close()
	logCloser.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
