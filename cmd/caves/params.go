package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-caves/internal/cave"
	"github.com/vovakirdan/tui-caves/internal/config"
)

var (
	// Parameter overrides
	flagWidth     int
	flagHeight    int
	flagFill      int
	flagSmooth    int
	flagThreshold int
	flagRadius    int
	flagSeed      string
)

// addParamFlags registers the generator overrides as persistent flags.
func addParamFlags(cmd *cobra.Command) {
	f := cmd.PersistentFlags()
	f.IntVar(&flagWidth, "width", 0, "Cave width in cells")
	f.IntVar(&flagHeight, "height", 0, "Cave height in cells")
	f.IntVar(&flagFill, "fill", 0, "Chance (0-100) that a cell starts as wall")
	f.IntVar(&flagSmooth, "smooth", 0, "Smoothing passes")
	f.IntVar(&flagThreshold, "threshold", 0, "Minimum floor region size kept as a room")
	f.IntVar(&flagRadius, "radius", 0, "Passage carve radius")
	f.StringVar(&flagSeed, "seed", "", "Fixed seed (random when not given)")
}

// overrides collects the parameter flags the user actually set.
func overrides(cmd *cobra.Command) config.Overrides {
	var o config.Overrides
	flags := cmd.Flags()
	intFlag := func(name string, v *int) *int {
		if flags.Changed(name) {
			return v
		}
		return nil
	}

	o.Width = intFlag("width", &flagWidth)
	o.Height = intFlag("height", &flagHeight)
	o.FillPercent = intFlag("fill", &flagFill)
	o.Smooth = intFlag("smooth", &flagSmooth)
	o.WallThreshold = intFlag("threshold", &flagThreshold)
	o.PassageRadius = intFlag("radius", &flagRadius)
	if flags.Changed("seed") {
		o.Seed = &flagSeed
	}
	return o
}

// loadParams resolves config file, preset and flag overrides, in that order.
func loadParams(cmd *cobra.Command) (cave.Params, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cave.Params{}, err
	}
	if flagPreset != "" {
		if err := config.ApplyPreset(&cfg, flagPreset); err != nil {
			return cave.Params{}, err
		}
	}
	overrides(cmd).Apply(&cfg)

	p := cfg.Params()
	if err := p.Validate(); err != nil {
		return cave.Params{}, err
	}
	return p, nil
}

// mustLoadParams is loadParams for command handlers.
func mustLoadParams(cmd *cobra.Command) cave.Params {
	p, err := loadParams(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return p
}
