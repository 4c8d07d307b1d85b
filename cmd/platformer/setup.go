package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-platformer/internal/audio"
	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/logging"
	"github.com/vovakirdan/tui-platformer/internal/spectate"
)

// Flags shared by the commands that run games.
var (
	flagConfig     string
	flagDifficulty string
	flagLevel      string
	flagSound      bool
	flagVolume     float64
	flagSpectate   string
)

func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom variant config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().StringVar(&flagLevel, "level", "", "Embedded level ID or path to a level YAML file")
	cmd.Flags().StringVar(&flagSpectate, "spectate", "", "Serve live snapshots to WebSocket viewers on this address (e.g. :8080)")
}

func addSoundFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects")
	cmd.Flags().Float64Var(&flagVolume, "volume", 0.5, "Sound volume from 0 to 1")
}

// applyGameFlags passes --config, --difficulty and --level to the variants.
func applyGameFlags() error {
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}
	platformer.SetConfigPath(flagConfig)
	platformer.SetDifficultyPreset(flagDifficulty)

	if flagLevel == "" {
		return nil
	}
	if _, err := os.Stat(flagLevel); err == nil {
		if _, err := config.LoadLevelFile(flagLevel); err != nil {
			return err
		}
		platformer.SetLevelPath(flagLevel)
		return nil
	}
	if _, err := config.EmbeddedLevel(flagLevel); err != nil {
		return fmt.Errorf("--level %q is neither a file nor an embedded level", flagLevel)
	}
	platformer.SetLevelID(flagLevel)
	return nil
}

// runtimeConfig builds the runtime config from the terminal size and global flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	if flagHoldTicks > 0 {
		cfg.HoldTicks = flagHoldTicks
	}
	return cfg
}

// openLogger opens the rotating file logger. Failures degrade to a silent logger.
func openLogger() (*log.Logger, io.Closer) {
	opts := logging.DefaultOptions(config.UserDir("logs"))
	if flagLogFile != "" {
		opts.Path = flagLogFile
	}
	opts.Level = flagLogLevel

	logger, closer, err := logging.New(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		logger, closer, _ = logging.New(logging.Options{})
	}
	return logger, closer
}

// openAudio returns a speaker-backed player when --sound is set.
func openAudio(logger *log.Logger) audio.Player {
	if !flagSound {
		return audio.NopPlayer{}
	}
	p, err := audio.NewBeepPlayer(flagVolume)
	if err != nil {
		logger.Warn("sound disabled", "error", err)
		return audio.NopPlayer{}
	}
	return p
}

// startSpectate starts the spectator server when --spectate is set.
// The returned stop function is always safe to call.
func startSpectate(logger *log.Logger) (*spectate.Hub, func()) {
	if flagSpectate == "" {
		return nil, func() {}
	}

	hub := spectate.NewHub(logger)
	srv := spectate.NewServer(flagSpectate, hub)
	go func() {
		if err := srv.ListenAndServe(); err != nil {
			logger.Error("spectate server", "addr", flagSpectate, "error", err)
		}
	}()
	logger.Info("spectate server listening", "addr", flagSpectate)

	return hub, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}
