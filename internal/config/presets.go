package config

import (
	"fmt"
	"sort"
)

// Preset is a named set of generator settings.
type Preset string

const (
	PresetDefault Preset = "default"
	PresetCaverns Preset = "caverns"
	PresetTunnels Preset = "tunnels"
	PresetDemo    Preset = "demo"
)

// presetInfo describes what a preset changes.
var presetInfo = map[Preset]string{
	PresetDefault: "reference settings, 100x100",
	PresetCaverns: "open caverns: fill 45, smooth 6",
	PresetTunnels: "tight tunnels: fill 55, threshold 30, radius 1",
	PresetDemo:    "demo map: 120x80, smooth 10, seed HELLO, threshold 200",
}

// Presets returns the known preset names in sorted order.
func Presets() []Preset {
	names := make([]Preset, 0, len(presetInfo))
	for p := range presetInfo {
		names = append(names, p)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// Describe returns a one-line description of a preset.
func (p Preset) Describe() string {
	return presetInfo[p]
}

// ApplyPreset modifies the config based on a named preset.
func ApplyPreset(cfg *CaveConfig, name string) error {
	switch Preset(name) {
	case PresetDefault:
		*cfg = DefaultCaveConfig()
	case PresetCaverns:
		cfg.FillPercent = 45
		cfg.Smooth = 6
	case PresetTunnels:
		cfg.FillPercent = 55
		cfg.WallThreshold = 30
		cfg.PassageRadius = 1
	case PresetDemo:
		cfg.Width = 120
		cfg.Height = 80
		cfg.Smooth = 10
		cfg.WallThreshold = 200
		cfg.UseRandomSeed = false
		cfg.Seed = "HELLO"
	default:
		return fmt.Errorf("config: unknown preset %q", name)
	}
	return nil
}
