package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-caves/internal/platform/tui"
	"github.com/vovakirdan/tui-caves/internal/storage"
)

var (
	flagFit       bool
	flagAutoDelay time.Duration
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Browse caves interactively",
	Long: `Open the interactive cave viewer.

Controls:
  R          - Regenerate with a new time seed
  N/P        - Next/previous numeric seed
  +/-        - More/less wall fill
  M          - Toggle wall shape glyphs
  C          - Toggle room coloring
  A          - Auto-cycle seeds
  Ctrl+S     - Record the run and save an ASCII snapshot
  ?          - Toggle help
  Q/Ctrl+C   - Quit

Examples:
  caves view
  caves view --fit
  caves view --preset demo`,
	Args: cobra.NoArgs,
	Run:  runView,
}

func init() {
	viewCmd.Flags().BoolVar(&flagFit, "fit", false, "Size the cave to the terminal")
	viewCmd.Flags().DurationVar(&flagAutoDelay, "auto-delay", 750*time.Millisecond, "Delay between auto-cycle steps")
}

func runView(cmd *cobra.Command, _ []string) {
	logger := newLogger()
	params := mustLoadParams(cmd)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("history disabled", "error", err)
	}
	if store != nil {
		defer store.Close()
	}

	width, height := terminalSize()
	opts := tui.ViewerOptions{
		Params:    params,
		Fit:       flagFit,
		AutoDelay: flagAutoDelay,
	}
	if err := tui.RunViewer(store, opts, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// terminalSize returns the stdout terminal size, or 80x24.
func terminalSize() (int, int) {
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	return width, height
}
