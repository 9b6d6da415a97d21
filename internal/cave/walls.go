package cave

import (
	"sort"

	"github.com/vovakirdan/tui-caves/internal/core"
)

// Neighbor weights of a wall bitmask, in row-major order over the 3x3
// neighborhood with the center skipped.
const (
	MaskUpLeft    uint8 = 1
	MaskUp        uint8 = 2
	MaskUpRight   uint8 = 4
	MaskLeft      uint8 = 8
	MaskRight     uint8 = 16
	MaskDownLeft  uint8 = 32
	MaskDown      uint8 = 64
	MaskDownRight uint8 = 128
)

// DefaultAllowedMasks lists the wall shapes the tile art can represent:
// straight edges, outer and inner corners, and solid rock (255).
var DefaultAllowedMasks = []uint8{
	11, 15, 22, 23, 31, 43, 47, 63,
	104, 105, 107, 111, 127,
	150, 151, 159,
	208, 212, 214, 215, 223,
	232, 233, 235, 240, 244, 246,
	248, 249, 251, 252, 254, 255,
}

// MaskSet is a lookup table of bitmask values.
type MaskSet struct {
	allowed [256]bool
}

// NewMaskSet creates a set holding the given values.
func NewMaskSet(values ...uint8) *MaskSet {
	s := &MaskSet{}
	for _, v := range values {
		s.allowed[v] = true
	}
	return s
}

// Contains reports whether v is in the set.
func (s *MaskSet) Contains(v uint8) bool {
	return s.allowed[v]
}

// MaskGrid holds a wall bitmask per cell; floor cells hold 0.
// Cells are stored row-major like core.Grid.
type MaskGrid struct {
	W     int
	H     int
	Masks []uint8
}

// Get returns the mask at (x, y), or 0 out of range.
func (m *MaskGrid) Get(x, y int) uint8 {
	if x < 0 || x >= m.W || y < 0 || y >= m.H {
		return 0
	}
	return m.Masks[y*m.W+x]
}

// Distinct returns the distinct non-zero masks present, ascending.
func (m *MaskGrid) Distinct() []uint8 {
	seen := make(map[uint8]bool)
	for _, v := range m.Masks {
		if v != 0 {
			seen[v] = true
		}
	}
	out := make([]uint8, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// SurroundingWalls computes the 8-neighbor bitmask of (x, y). Neighbors
// outside the grid count as wall.
func SurroundingWalls(g *core.Grid, x, y int) uint8 {
	var mask uint8
	weight := uint8(1)
	for ny := y - 1; ny <= y+1; ny++ {
		for nx := x - 1; nx <= x+1; nx++ {
			if nx == x && ny == y {
				continue
			}
			if g.IsWall(nx, ny) {
				mask |= weight
			}
			weight <<= 1
		}
	}
	return mask
}

// BorderWalls computes a fresh bitmask grid for every wall cell of g.
func BorderWalls(g *core.Grid) *MaskGrid {
	m := &MaskGrid{
		W:     g.W,
		H:     g.H,
		Masks: make([]uint8, g.W*g.H),
	}
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if g.Get(x, y) == core.Wall {
				m.Masks[y*g.W+x] = SurroundingWalls(g, x, y)
			}
		}
	}
	return m
}

// removeHoles carves open every wall whose mask is not renderable and
// returns how many were found. Masks come from the pass's snapshot; walls
// already opened earlier in the pass are skipped.
func (gen *Generator) removeHoles(masks *MaskGrid, allowed *MaskSet) int {
	defects := 0
	for x := 0; x < gen.grid.W; x++ {
		for y := 0; y < gen.grid.H; y++ {
			if gen.grid.Get(x, y) != core.Wall {
				continue
			}
			if allowed.Contains(masks.Get(x, y)) {
				continue
			}
			defects++
			carveCircle(gen.grid, core.C(x, y), gen.params.RepairRadius)
		}
	}
	return defects
}

// repairWalls alternates mask computation and hole removal until a pass
// finds nothing to fix or the pass bound is reached.
func (gen *Generator) repairWalls() error {
	allowed := gen.params.allowList()
	limit := gen.params.repairBound()

	for pass := 1; ; pass++ {
		gen.masks = BorderWalls(gen.grid)
		defects := gen.removeHoles(gen.masks, allowed)
		gen.stats.RepairPasses = pass
		gen.stats.HolesRepaired += defects

		if defects == 0 {
			return nil
		}
		if pass >= limit {
			gen.masks = BorderWalls(gen.grid)
			return &ConvergenceError{Passes: pass, Defects: defects}
		}
	}
}
