// caves is a procedural cave generator for the terminal.
//
// Usage:
//
//	caves generate           - Generate a cave and print it
//	caves view               - Browse caves interactively
//	caves history            - Browse recorded runs
//	caves presets            - List presets and export formats
//	caves serve              - Start SSH server hosting the viewer
//
// Global flags:
//
//	--config <path>   - Cave config YAML (default: search ~/.caves/configs, ./configs)
//	--preset <name>   - Apply a named preset over the config
//	--seed <value>    - Fixed seed for reproducible caves
//	--db <path>       - Set database path (default: ~/.caves/runs.db)
//	--log-level <l>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-caves/internal/storage"
)

var (
	// Global flags
	flagConfig   string
	flagPreset   string
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "caves",
	Short: "Caves - procedural cave maps in your terminal",
	Long: `Caves grows cave maps from seeded noise with cellular-automaton smoothing,
keeps the large floor regions as rooms, connects every room to the main one
with carved passages, and repairs wall shapes the tile art cannot draw.

Available commands:
  generate - Generate a cave and print it
  view     - Browse caves interactively
  history  - Browse recorded runs
  presets  - List presets and export formats
  serve    - Start SSH server hosting the viewer

Examples:
  caves generate --seed HELLO
  caves generate --preset demo --format yaml --out demo.yaml
  caves view --fit
  caves history
  caves serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to cave config YAML")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "", "Preset applied over the config (see 'caves presets')")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	addParamFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(serveCmd)
}

// newLogger builds the CLI logger from --log-level.
func newLogger() *log.Logger {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "caves",
		Level:           level,
	})
}
