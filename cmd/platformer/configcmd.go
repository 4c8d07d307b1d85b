package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config <variant>",
	Short: "Print a variant's default config",
	Long: `Print the embedded default YAML for a variant. Save it to
~/.platformer/configs/<variant>.yaml to override the defaults, or pass
it to play with --config.

Examples:
  platformer config platformer > ~/.platformer/configs/platformer.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, args []string) {
	data := config.GetDefaultYAML(args[0])
	if data == nil {
		fmt.Fprintf(os.Stderr, "Error: no default config for %q\n", args[0])
		os.Exit(1)
	}
	os.Stdout.Write(data)
}
