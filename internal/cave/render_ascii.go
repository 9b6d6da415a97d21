package cave

import (
	"strings"

	"github.com/vovakirdan/tui-caves/internal/core"
)

// ASCII glyphs used by RenderASCII.
const (
	GlyphWall  = '#'
	GlyphFloor = '.'
)

// RenderASCII draws the grid one row per line: '#' for wall, '.' for floor.
// Used for debugging, golden test outputs and plain-text export.
func RenderASCII(g *core.Grid) string {
	var sb strings.Builder
	sb.Grow(g.W*g.H + g.H)

	for y := 0; y < g.H; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < g.W; x++ {
			if g.Get(x, y) == core.Wall {
				sb.WriteByte(GlyphWall)
			} else {
				sb.WriteByte(GlyphFloor)
			}
		}
	}
	return sb.String()
}
