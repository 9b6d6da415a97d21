package core

import "fmt"

// Tile is the value of a single grid cell.
type Tile uint8

const (
	Floor Tile = 0
	Wall  Tile = 1
)

// Grid is a fixed-size width x height field of tiles.
// Cells are stored in row-major order: index = y*W + x.
// A new grid is all floor.
type Grid struct {
	W     int
	H     int
	Cells []Tile
}

// NewGrid creates a grid with every cell set to Floor.
func NewGrid(w, h int) *Grid {
	return &Grid{
		W:     w,
		H:     h,
		Cells: make([]Tile, w*h),
	}
}

// index converts a coordinate to a flat array index.
func (g *Grid) index(x, y int) int {
	return y*g.W + x
}

// InRange returns true if (x, y) is within the grid boundaries.
func (g *Grid) InRange(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// OnBorder returns true if (x, y) lies on the outermost ring of the grid.
func (g *Grid) OnBorder(x, y int) bool {
	return x == 0 || y == 0 || x == g.W-1 || y == g.H-1
}

// Get returns the tile at (x, y). It panics if the coordinate is out of range;
// callers check InRange first.
func (g *Grid) Get(x, y int) Tile {
	if !g.InRange(x, y) {
		panic(fmt.Sprintf("core: grid index (%d,%d) out of range %dx%d", x, y, g.W, g.H))
	}
	return g.Cells[g.index(x, y)]
}

// Set stores a tile at (x, y). It panics if the coordinate is out of range.
func (g *Grid) Set(x, y int, t Tile) {
	if !g.InRange(x, y) {
		panic(fmt.Sprintf("core: grid index (%d,%d) out of range %dx%d", x, y, g.W, g.H))
	}
	g.Cells[g.index(x, y)] = t
}

// At returns the tile at c.
func (g *Grid) At(c Coord) Tile {
	return g.Get(c.X, c.Y)
}

// IsWall reports whether (x, y) is a wall. Out-of-range cells count as wall.
func (g *Grid) IsWall(x, y int) bool {
	if !g.InRange(x, y) {
		return true
	}
	return g.Cells[g.index(x, y)] == Wall
}

// Fill sets every cell to t.
func (g *Grid) Fill(t Tile) {
	for i := range g.Cells {
		g.Cells[i] = t
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Tile, len(g.Cells))
	copy(cells, g.Cells)
	return &Grid{
		W:     g.W,
		H:     g.H,
		Cells: cells,
	}
}

// Count returns the number of cells holding t.
func (g *Grid) Count(t Tile) int {
	count := 0
	for _, cell := range g.Cells {
		if cell == t {
			count++
		}
	}
	return count
}

// Equal returns true if two grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.W != other.W || g.H != other.H {
		return false
	}
	for i, cell := range g.Cells {
		if cell != other.Cells[i] {
			return false
		}
	}
	return true
}
