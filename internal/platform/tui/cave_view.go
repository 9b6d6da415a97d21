package tui

import (
	"github.com/vovakirdan/tui-caves/internal/cave"
	"github.com/vovakirdan/tui-caves/internal/core"
)

// DrawOptions controls how a cave map is drawn into a screen.
type DrawOptions struct {
	Shapes bool // Draw walls with box glyphs chosen from their bitmask
	Rooms  bool // Color floor by room; passage floor gets its own color
}

// Cave glyphs.
const (
	glyphWall    = '#'
	glyphFloor   = '.'
	glyphRock    = ' '
	glyphPillar  = 'o'
	glyphPassage = ','
)

// DrawCave draws m at the top-left of s, clipping to the screen.
func DrawCave(s *core.Screen, m *cave.Map, opts DrawOptions) {
	var owner []int
	if opts.Rooms {
		owner = roomOwners(m)
	}

	for y := 0; y < m.Height && y < s.Height(); y++ {
		for x := 0; x < m.Width && x < s.Width(); x++ {
			if m.Grid.Get(x, y) == core.Wall {
				r := rune(glyphWall)
				if opts.Shapes {
					r = wallGlyph(m.Masks.Get(x, y))
				}
				s.SetColored(x, y, r, core.ColorWall)
				continue
			}

			if owner == nil {
				s.Set(x, y, glyphFloor)
				continue
			}
			id := owner[y*m.Width+x]
			switch {
			case id < 0:
				s.SetColored(x, y, glyphPassage, core.ColorPassage)
			case m.Rooms[id].IsMain:
				s.SetColored(x, y, glyphFloor, core.ColorMainRoom)
			default:
				s.SetColored(x, y, glyphFloor, core.RoomColor(id))
			}
		}
	}
}

// roomOwners maps every cell to the room that owns it, or -1.
func roomOwners(m *cave.Map) []int {
	owner := make([]int, m.Width*m.Height)
	for i := range owner {
		owner[i] = -1
	}
	for _, r := range m.Rooms {
		for _, t := range r.Tiles {
			owner[t.Y*m.Width+t.X] = r.ID
		}
	}
	return owner
}

// wallGlyph picks a box-drawing rune for a wall bitmask. Solid rock is blank;
// inner corners are chosen by their single open diagonal.
func wallGlyph(mask uint8) rune {
	if mask == 255 {
		return glyphRock
	}

	up := mask&cave.MaskUp != 0
	down := mask&cave.MaskDown != 0
	left := mask&cave.MaskLeft != 0
	right := mask&cave.MaskRight != 0

	if up && down && left && right {
		switch 255 - mask {
		case cave.MaskUpLeft:
			return '┘'
		case cave.MaskUpRight:
			return '└'
		case cave.MaskDownLeft:
			return '┐'
		case cave.MaskDownRight:
			return '┌'
		}
		return '┼'
	}

	switch {
	case left && right:
		return '─'
	case up && down:
		return '│'
	case up && left:
		return '┘'
	case up && right:
		return '└'
	case down && left:
		return '┐'
	case down && right:
		return '┌'
	}
	return glyphPillar
}
