// Package config provides YAML-based cave configuration loading and named
// presets for the generator.
package config

import "github.com/vovakirdan/tui-caves/internal/cave"

// CaveConfig is the on-disk shape of the generator parameters.
type CaveConfig struct {
	Width         int          `yaml:"width"`
	Height        int          `yaml:"height"`
	FillPercent   int          `yaml:"fill_percent"`
	Smooth        int          `yaml:"smooth"`
	WallThreshold int          `yaml:"wall_threshold"`
	PassageRadius int          `yaml:"passage_radius"`
	UseRandomSeed bool         `yaml:"use_random_seed"`
	Seed          string       `yaml:"seed"`
	Repair        RepairConfig `yaml:"repair"`
}

// RepairConfig defines the wall hole-repair stage.
type RepairConfig struct {
	Radius       int     `yaml:"radius"`
	MaxPasses    int     `yaml:"max_passes"` // 0 = derived from grid size
	AllowedMasks []uint8 `yaml:"allowed_masks,omitempty"`
}

// FromParams converts generator parameters to their YAML shape.
func FromParams(p cave.Params) CaveConfig {
	return CaveConfig{
		Width:         p.Width,
		Height:        p.Height,
		FillPercent:   p.FillPercent,
		Smooth:        p.Smooth,
		WallThreshold: p.WallThreshold,
		PassageRadius: p.PassageRadius,
		UseRandomSeed: p.UseRandomSeed,
		Seed:          p.Seed,
		Repair: RepairConfig{
			Radius:       p.RepairRadius,
			MaxPasses:    p.MaxRepairPasses,
			AllowedMasks: p.AllowedMasks,
		},
	}
}

// Params converts the config to generator parameters. It does not validate;
// cave.New does.
func (c CaveConfig) Params() cave.Params {
	return cave.Params{
		Width:           c.Width,
		Height:          c.Height,
		FillPercent:     c.FillPercent,
		Smooth:          c.Smooth,
		WallThreshold:   c.WallThreshold,
		PassageRadius:   c.PassageRadius,
		UseRandomSeed:   c.UseRandomSeed,
		Seed:            c.Seed,
		RepairRadius:    c.Repair.Radius,
		MaxRepairPasses: c.Repair.MaxPasses,
		AllowedMasks:    c.Repair.AllowedMasks,
	}
}

// Overrides holds command-line values that replace loaded settings.
// Nil fields leave the config untouched.
type Overrides struct {
	Width         *int
	Height        *int
	FillPercent   *int
	Smooth        *int
	WallThreshold *int
	PassageRadius *int
	Seed          *string
}

// Apply writes every set override into cfg. A seed override switches the
// config to fixed-seed generation.
func (o Overrides) Apply(cfg *CaveConfig) {
	setInt(&cfg.Width, o.Width)
	setInt(&cfg.Height, o.Height)
	setInt(&cfg.FillPercent, o.FillPercent)
	setInt(&cfg.Smooth, o.Smooth)
	setInt(&cfg.WallThreshold, o.WallThreshold)
	setInt(&cfg.PassageRadius, o.PassageRadius)
	if o.Seed != nil {
		cfg.Seed = *o.Seed
		cfg.UseRandomSeed = false
	}
}

func setInt(dst, src *int) {
	if src != nil {
		*dst = *src
	}
}
