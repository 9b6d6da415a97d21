// Package cave implements the cave generation pipeline: seeded noise fill,
// cellular-automaton smoothing, region extraction, room graph construction and
// connection, passage carving, and wall bitmask classification with hole repair.
//
// The package is pure: it performs no I/O and reports progress only through the
// returned Map and Stats.
package cave

import "fmt"

// Params configures a generation run. Use DefaultParams and override fields.
type Params struct {
	Width  int // Grid width, >= 3
	Height int // Grid height, >= 3

	FillPercent   int // Probability (0-100) that an interior cell starts as wall
	Smooth        int // Number of cellular-automaton passes, >= 0
	WallThreshold int // Minimum floor region size kept as a room, >= 0
	PassageRadius int // Corridor carve radius, >= 0

	UseRandomSeed bool   // Seed from the clock instead of Seed
	Seed          string // Fixed seed, used when UseRandomSeed is false

	RepairRadius    int     // Radius carved around a wall hole, >= 2 guarantees progress
	MaxRepairPasses int     // Upper bound on hole-repair passes (0 = (W-2)*(H-2)+1)
	AllowedMasks    []uint8 // Renderable wall bitmask values; nil = DefaultAllowedMasks
}

// DefaultParams returns the reference configuration.
func DefaultParams() Params {
	return Params{
		Width:           100,
		Height:          100,
		FillPercent:     50,
		Smooth:          5,
		WallThreshold:   100,
		PassageRadius:   2,
		UseRandomSeed:   true,
		Seed:            "",
		RepairRadius:    2,
		MaxRepairPasses: 0,
	}
}

// Validate checks that the parameters describe a well-defined grid.
// It returns the first violation found as a ValidationError.
func (p Params) Validate() error {
	if p.Width < 3 || p.Height < 3 {
		return ValidationError{
			Code:    CodeInvalidDimensions,
			Field:   "width/height",
			Message: fmt.Sprintf("dimensions must be at least 3x3, got %dx%d", p.Width, p.Height),
		}
	}
	if p.FillPercent < 0 || p.FillPercent > 100 {
		return ValidationError{
			Code:    CodeInvalidFill,
			Field:   "fill_percent",
			Message: fmt.Sprintf("fill percent must be within 0-100, got %d", p.FillPercent),
		}
	}
	if p.Smooth < 0 {
		return ValidationError{
			Code:    CodeInvalidSmooth,
			Field:   "smooth",
			Message: fmt.Sprintf("smooth passes must be non-negative, got %d", p.Smooth),
		}
	}
	if p.WallThreshold < 0 {
		return ValidationError{
			Code:    CodeInvalidThreshold,
			Field:   "wall_threshold",
			Message: fmt.Sprintf("wall threshold must be non-negative, got %d", p.WallThreshold),
		}
	}
	if p.PassageRadius < 0 {
		return ValidationError{
			Code:    CodeInvalidRadius,
			Field:   "passage_radius",
			Message: fmt.Sprintf("passage radius must be non-negative, got %d", p.PassageRadius),
		}
	}
	if p.RepairRadius < 1 {
		return ValidationError{
			Code:    CodeInvalidRepair,
			Field:   "repair.radius",
			Message: fmt.Sprintf("repair radius must be at least 1, got %d", p.RepairRadius),
		}
	}
	if p.MaxRepairPasses < 0 {
		return ValidationError{
			Code:    CodeInvalidRepair,
			Field:   "repair.max_passes",
			Message: fmt.Sprintf("repair pass bound must be non-negative, got %d", p.MaxRepairPasses),
		}
	}
	return nil
}

// repairBound returns the effective hole-repair pass limit.
//
// With a repair radius of at least 2 and the default allow-list, every pass
// that finds a defect turns at least one interior wall into floor, and an
// all-floor interior has no defects once both sides are at least 4. The
// interior cell count plus one is therefore always enough.
func (p Params) repairBound() int {
	if p.MaxRepairPasses > 0 {
		return p.MaxRepairPasses
	}
	return (p.Width-2)*(p.Height-2) + 1
}

// allowList returns the effective set of renderable masks.
func (p Params) allowList() *MaskSet {
	if p.AllowedMasks == nil {
		return NewMaskSet(DefaultAllowedMasks...)
	}
	return NewMaskSet(p.AllowedMasks...)
}
