package cave

import "github.com/vovakirdan/tui-caves/internal/core"

// Regions returns every maximal orthogonally connected group of cells equal
// to t. Cells are scanned column by column; each region lists its tiles in
// breadth-first discovery order from its first scanned cell.
func Regions(g *core.Grid, t core.Tile) [][]core.Coord {
	var regions [][]core.Coord
	visited := make([]bool, g.W*g.H)

	for x := 0; x < g.W; x++ {
		for y := 0; y < g.H; y++ {
			if visited[y*g.W+x] || g.Get(x, y) != t {
				continue
			}
			regions = append(regions, regionFrom(g, core.C(x, y), visited))
		}
	}

	return regions
}

// regionFrom flood fills from start using an explicit queue, marking every
// reached cell in visited. Diagonal neighbors are never traversed.
func regionFrom(g *core.Grid, start core.Coord, visited []bool) []core.Coord {
	t := g.At(start)
	visited[start.Y*g.W+start.X] = true

	tiles := []core.Coord{start}
	for head := 0; head < len(tiles); head++ {
		cur := tiles[head]
		for _, d := range core.Orthogonal {
			n := cur.Add(d.X, d.Y)
			if !g.InRange(n.X, n.Y) {
				continue
			}
			idx := n.Y*g.W + n.X
			if visited[idx] || g.At(n) != t {
				continue
			}
			visited[idx] = true
			tiles = append(tiles, n)
		}
	}

	return tiles
}
