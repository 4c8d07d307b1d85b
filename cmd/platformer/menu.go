package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick variants and levels from a menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a variant.
Press L to choose which level the variants play and Tab for scores.
After a run, Esc returns to the menu.

Examples:
  platformer menu
  platformer menu --fps 30
  platformer menu --sound --db ./scores.db`,
	Run: runMenu,
}

func init() {
	addGameFlags(menuCmd)
	addSoundFlags(menuCmd)
}

func runMenu(_ *cobra.Command, _ []string) {
	if err := applyGameFlags(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, logCloser := openLogger()
	defer logCloser.Close()
	player := openAudio(logger)
	defer player.Close()
	hub, stopSpectate := startSpectate(logger)
	defer stopSpectate()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	} else {
		defer store.Close()
	}

	cfg := runtimeConfig()
	hooks := tui.Hooks{Logger: logger, Audio: player, Spectate: hub}
	levelID := ""

	for {
		result, err := tui.RunMenu(store, cfg, levelID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running menu: %v\n", err)
			return
		}
		cfg = result.Config

		switch {
		case result.Quit:
			return

		case result.WantsScoreboard:
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", sbErr)
				return
			}
			if !goBack {
				return
			}

		case result.WantsLevels:
			id, ok, lvlErr := tui.RunLevelSelector(cfg, levelID)
			if lvlErr != nil {
				fmt.Fprintf(os.Stderr, "Error running level selector: %v\n", lvlErr)
				return
			}
			if ok {
				levelID = id
			}

		default:
			game, createErr := registry.Create(result.GameID)
			if createErr != nil {
				fmt.Fprintf(os.Stderr, "Error creating game: %v\n", createErr)
				continue
			}
			if pg, isPlatformer := game.(*platformer.Game); isPlatformer && levelID != "" {
				pg.UseLevel(levelID)
			}
			if runErr := tui.Run(game, store, cfg, hooks); runErr != nil {
				fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
				return
			}
		}
	}
}
