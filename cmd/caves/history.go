package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-caves/internal/platform/tui"
	"github.com/vovakirdan/tui-caves/internal/storage"
)

var (
	flagClear bool
	flagPlain bool
	flagLimit int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse recorded runs",
	Long: `Browse the generation history. Press enter on a run to open it in the viewer.

Examples:
  caves history
  caves history --plain --limit 20
  caves history --clear`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded runs")
	historyCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a plain table instead of the browser")
	historyCmd.Flags().IntVar(&flagLimit, "limit", 10, "Runs to print with --plain")
}

func runHistory(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("History cleared.")
		return
	}

	if flagPlain {
		printHistory(store)
		return
	}

	width, height := terminalSize()
	run, err := tui.RunHistory(store, width, height)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if run == nil {
		return
	}

	params, err := run.Params()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := tui.RunViewer(store, tui.ViewerOptions{Params: params}, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printHistory(store *storage.Store) {
	runs, err := store.RecentRuns(flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'caves generate' to record the first one!")
		return
	}

	// Print header
	fmt.Printf("  %-5s  %-20s  %-9s  %-5s  %-8s  %s\n", "ID", "Seed", "Size", "Rooms", "Passages", "Date")
	fmt.Printf("  %-5s  %-20s  %-9s  %-5s  %-8s  %s\n", "--", "----", "----", "-----", "--------", "----")

	for _, r := range runs {
		size := fmt.Sprintf("%dx%d", r.Width, r.Height)
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-5d  %-20s  %-9s  %-5d  %-8d  %s\n", r.ID, r.Seed, size, r.Rooms, r.Passages, dateStr)
	}

	if sum, err := store.Summary(); err == nil {
		fmt.Println()
		fmt.Printf("Runs: %d  Avg rooms: %.1f  Max rooms: %d\n", sum.Runs, sum.AvgRooms, sum.MaxRooms)
	}
}
