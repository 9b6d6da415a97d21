package cave

import "github.com/vovakirdan/tui-caves/internal/core"

// randomFill seeds the grid with noise. Border cells are always wall; an
// interior cell becomes wall with probability fillPercent/100.
func randomFill(g *core.Grid, src core.Source, fillPercent int) {
	for x := 0; x < g.W; x++ {
		for y := 0; y < g.H; y++ {
			if g.OnBorder(x, y) {
				g.Set(x, y, core.Wall)
				continue
			}
			if src.Between(1, 100) <= fillPercent {
				g.Set(x, y, core.Wall)
			} else {
				g.Set(x, y, core.Floor)
			}
		}
	}
}

// smoothPass runs one cellular-automaton pass in place, column by column.
// More than 4 wall neighbors makes a wall, fewer than 4 makes floor, and
// exactly 4 leaves the cell as it was.
func smoothPass(g *core.Grid) {
	for x := 0; x < g.W; x++ {
		for y := 0; y < g.H; y++ {
			g.Set(x, y, smoothCell(g.Get(x, y), surroundingWallCount(g, x, y)))
		}
	}
}

// smoothCell applies the automaton rule to one cell.
func smoothCell(current core.Tile, walls int) core.Tile {
	switch {
	case walls > 4:
		return core.Wall
	case walls < 4:
		return core.Floor
	default:
		return current
	}
}

// surroundingWallCount counts walls among the 8 neighbors of (x, y).
// Neighbors outside the grid count as wall.
func surroundingWallCount(g *core.Grid, x, y int) int {
	count := 0
	for nx := x - 1; nx <= x+1; nx++ {
		for ny := y - 1; ny <= y+1; ny++ {
			if nx == x && ny == y {
				continue
			}
			if g.IsWall(nx, ny) {
				count++
			}
		}
	}
	return count
}
