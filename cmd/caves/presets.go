package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-caves/internal/config"
	"github.com/vovakirdan/tui-caves/internal/export"
)

var flagDefaults bool

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List presets and export formats",
	Long: `Shows the named parameter presets and the registered output formats.

With --defaults, prints the built-in cave.yaml instead. Save it to
~/.caves/configs/cave.yaml or ./configs/cave.yaml and edit it to change
what every command starts from.`,
	Example: `  caves presets
  caves presets --defaults > configs/cave.yaml`,
	Args: cobra.NoArgs,
	Run:  runPresets,
}

func init() {
	presetsCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in default config YAML")
}

func runPresets(_ *cobra.Command, _ []string) {
	if flagDefaults {
		os.Stdout.Write(config.GetDefaultYAML())
		return
	}

	fmt.Println("Presets:")
	fmt.Println()
	for _, p := range config.Presets() {
		fmt.Printf("  %-10s  %s\n", p, p.Describe())
	}

	formats := export.List()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, f := range formats {
		if len(f.ID) > maxIDLen {
			maxIDLen = len(f.ID)
		}
	}

	fmt.Println()
	fmt.Println("Formats:")
	fmt.Println()
	fmt.Printf("  %-*s  %-6s  %s\n", maxIDLen, "ID", "Ext", "Title")
	fmt.Printf("  %-*s  %-6s  %s\n", maxIDLen, "--", "---", "-----")
	for _, f := range formats {
		fmt.Printf("  %-*s  %-6s  %s\n", maxIDLen, f.ID, f.Extension, f.Title)
	}

	fmt.Println()
	fmt.Println("Run 'caves generate --preset <name> --format <id>' to use them.")
}
