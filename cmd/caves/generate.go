package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-caves/internal/cave"
	"github.com/vovakirdan/tui-caves/internal/export"
	"github.com/vovakirdan/tui-caves/internal/storage"
)

var (
	flagFormat  string
	flagOut     string
	flagStats   bool
	flagFromRun int64
	flagNoSave  bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a cave and print it",
	Long: `Generate one cave map and write it in the chosen format.

Every run is recorded in the history database with its effective seed,
so any cave can be regenerated later with --from-run.

Examples:
  caves generate
  caves generate --seed HELLO --width 120 --height 80
  caves generate --preset caverns --format masks
  caves generate --format yaml --out cave.yaml --stats
  caves generate --from-run 12`,
	Args: cobra.NoArgs,
	Run:  runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&flagFormat, "format", "f", "ascii", "Output format (see 'caves presets')")
	generateCmd.Flags().StringVarP(&flagOut, "out", "o", "", "Write to file instead of stdout")
	generateCmd.Flags().BoolVar(&flagStats, "stats", false, "Print generation statistics to stderr")
	generateCmd.Flags().Int64Var(&flagFromRun, "from-run", 0, "Use the parameters of a recorded run by ID")
	generateCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not record the run in history")
}

func runGenerate(cmd *cobra.Command, _ []string) {
	logger := newLogger()

	if !export.Exists(flagFormat) {
		fmt.Fprintf(os.Stderr, "Error: unknown format %q\n", flagFormat)
		fmt.Fprintln(os.Stderr, "Run 'caves presets' to see available formats.")
		os.Exit(1)
	}

	var store *storage.Store
	if !flagNoSave || flagFromRun != 0 {
		s, err := storage.Open(flagDBPath)
		if err != nil {
			if flagFromRun != 0 {
				fmt.Fprintf(os.Stderr, "Error opening history database: %v\n", err)
				os.Exit(1)
			}
			logger.Warn("history disabled", "error", err)
		}
		store = s
	}
	if store != nil {
		defer store.Close()
	}

	var params cave.Params
	if flagFromRun != 0 {
		params = recordedParams(store, flagFromRun)
		logger.Info("using recorded run", "id", flagFromRun, "seed", params.Seed)
	} else {
		params = mustLoadParams(cmd)
	}

	m, genErr := cave.Generate(params)
	if m == nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", genErr)
		os.Exit(1)
	}
	converged := !errors.Is(genErr, cave.ErrNotConverged)
	if !converged {
		logger.Error("wall repair did not converge", "error", genErr)
	}

	logRun(logger, m)

	if store != nil && !flagNoSave && flagFromRun == 0 {
		if id, err := saveRun(store, m, converged); err != nil {
			logger.Warn("run not recorded", "error", err)
		} else {
			logger.Info("run recorded", "id", id)
		}
	}

	if err := writeOutput(m); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagStats {
		printStats(os.Stderr, m)
	}

	if !converged {
		os.Exit(1)
	}
}

// recordedParams loads the parameters of a recorded run.
func recordedParams(store *storage.Store, id int64) cave.Params {
	run, err := store.RunByID(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading run: %v\n", err)
		os.Exit(1)
	}
	if run == nil {
		fmt.Fprintf(os.Stderr, "Error: no run with ID %d\n", id)
		fmt.Fprintln(os.Stderr, "Run 'caves history' to see recorded runs.")
		os.Exit(1)
	}
	p, err := run.Params()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return p
}

func saveRun(store *storage.Store, m *cave.Map, converged bool) (int64, error) {
	rec, err := storage.NewRunRecord(m, converged)
	if err != nil {
		return 0, err
	}
	return store.SaveRun(rec)
}

func writeOutput(m *cave.Map) error {
	if flagOut == "" {
		return export.Write(os.Stdout, flagFormat, m)
	}

	f, err := os.Create(flagOut)
	if err != nil {
		return fmt.Errorf("cannot create %s: %w", flagOut, err)
	}
	if err := export.Write(f, flagFormat, m); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// logRun logs the run summary at info and per-room detail at debug.
func logRun(logger *log.Logger, m *cave.Map) {
	logger.Info("cave generated",
		"seed", m.Seed,
		"size", fmt.Sprintf("%dx%d", m.Width, m.Height),
		"rooms", m.Stats.Rooms,
		"passages", m.Stats.Passages,
		"repair_passes", m.Stats.RepairPasses,
		"holes_repaired", m.Stats.HolesRepaired,
	)
	for _, r := range m.Rooms {
		logger.Debug("room",
			"id", r.ID,
			"tiles", r.Size(),
			"edge_tiles", len(r.EdgeTiles),
			"connected", r.Connected,
			"main", r.IsMain,
		)
	}
	for _, p := range m.Passages {
		logger.Debug("passage", "from_room", p.RoomA, "to_room", p.RoomB, "from", p.From, "to", p.To)
	}
}

func printStats(w io.Writer, m *cave.Map) {
	st := m.Stats
	fmt.Fprintf(w, "Seed:              %s\n", m.Seed)
	fmt.Fprintf(w, "Size:              %dx%d\n", m.Width, m.Height)
	fmt.Fprintf(w, "Floor:             %d cells (%.1f%%)\n", st.FloorCells, st.FloorRatio*100)
	fmt.Fprintf(w, "Wall:              %d cells\n", st.WallCells)
	fmt.Fprintf(w, "Rooms:             %d (main %d tiles)\n", st.Rooms, st.MainRoomSize)
	fmt.Fprintf(w, "Discarded regions: %d (%d tiles)\n", st.DiscardedRegions, st.DiscardedTiles)
	fmt.Fprintf(w, "Passages:          %d\n", st.Passages)
	fmt.Fprintf(w, "Repair passes:     %d\n", st.RepairPasses)
	fmt.Fprintf(w, "Holes repaired:    %d\n", st.HolesRepaired)
	fmt.Fprintf(w, "Wall shapes:       %d distinct\n", len(st.WallShapes))
}
