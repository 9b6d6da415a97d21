package cave

import "github.com/vovakirdan/tui-caves/internal/core"

// Passage records one carved corridor between two rooms.
type Passage struct {
	RoomA int        // Room the corridor starts from
	RoomB int        // Room the corridor leads to
	From  core.Coord // Edge tile of RoomA
	To    core.Coord // Edge tile of RoomB
}

// Line rasterizes the segment from -> to with integer error accumulation.
// It steps along the major axis and returns one tile per step, starting at
// from. The destination itself is not included: the last tile is one step
// short of to, and a zero-length segment yields no tiles.
func Line(from, to core.Coord) []core.Coord {
	x, y := from.X, from.Y
	dx := to.X - from.X
	dy := to.Y - from.Y

	inverted := false
	step := core.Sign(dx)
	gradientStep := core.Sign(dy)
	longest := core.Abs(dx)
	shortest := core.Abs(dy)

	if longest < shortest {
		inverted = true
		longest, shortest = shortest, longest
		step, gradientStep = gradientStep, step
	}

	tiles := make([]core.Coord, 0, longest)
	gradientAcc := longest / 2
	for i := 0; i < longest; i++ {
		tiles = append(tiles, core.C(x, y))

		if inverted {
			y += step
		} else {
			x += step
		}

		gradientAcc += shortest
		if gradientAcc >= longest {
			if inverted {
				x += gradientStep
			} else {
				y += gradientStep
			}
			gradientAcc -= longest
		}
	}
	return tiles
}

// carveCircle opens floor at every offset strictly inside radius around
// center. Cells of the outer ring are forced back to wall so the border
// survives any carve.
func carveCircle(g *core.Grid, center core.Coord, radius int) {
	r2 := radius * radius
	for dx := -radius; dx <= radius; dx++ {
		for dy := -radius; dy <= radius; dy++ {
			if dx*dx+dy*dy >= r2 {
				continue
			}
			x, y := center.X+dx, center.Y+dy
			if !g.InRange(x, y) {
				continue
			}
			if g.OnBorder(x, y) {
				g.Set(x, y, core.Wall)
			} else {
				g.Set(x, y, core.Floor)
			}
		}
	}
}

// createPassage connects two rooms and carves a corridor between their
// chosen edge tiles.
func (gen *Generator) createPassage(c connection) {
	gen.graph.connect(c.roomA, c.roomB)
	gen.passages = append(gen.passages, Passage{
		RoomA: c.roomA,
		RoomB: c.roomB,
		From:  c.tileA,
		To:    c.tileB,
	})

	for _, t := range Line(c.tileA, c.tileB) {
		carveCircle(gen.grid, t, gen.params.PassageRadius)
	}
}
