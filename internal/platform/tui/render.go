package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vovakirdan/tui-caves/internal/core"
)

// ANSI 256-color codes for the reserved cave colors.
var cavePalette = map[core.Color]string{
	core.ColorWall:     "245",
	core.ColorPassage:  "240",
	core.ColorMainRoom: "11",
}

// roomPalette is indexed by room ID modulo core.RoomColors.
var roomPalette = [core.RoomColors]string{"6", "2", "5", "4", "208", "10", "14", "13"}

// Renderer turns screens and status text into styled strings for one output.
// SSH sessions get their own renderer so color detection follows the client.
type Renderer struct {
	cells  map[core.Color]lipgloss.Style
	plain  lipgloss.Style
	status lipgloss.Style
	err    lipgloss.Style
	help   lipgloss.Style
}

// NewRenderer builds the styles on lr. A nil lr uses the process renderer.
func NewRenderer(lr *lipgloss.Renderer) *Renderer {
	if lr == nil {
		lr = lipgloss.DefaultRenderer()
	}

	r := &Renderer{
		cells:  make(map[core.Color]lipgloss.Style, len(cavePalette)+len(roomPalette)),
		plain:  lr.NewStyle(),
		status: lr.NewStyle().Foreground(lipgloss.Color("229")),
		err:    lr.NewStyle().Foreground(lipgloss.Color("9")),
		help:   lr.NewStyle().Foreground(lipgloss.Color("241")),
	}
	for c, code := range cavePalette {
		r.cells[c] = lr.NewStyle().Foreground(lipgloss.Color(code))
	}
	for i, code := range roomPalette {
		r.cells[core.RoomColor(i)] = lr.NewStyle().Foreground(lipgloss.Color(code))
	}
	return r
}

func (r *Renderer) cellStyle(c core.Color) lipgloss.Style {
	if st, ok := r.cells[c]; ok {
		return st
	}
	return r.plain
}

// Screen renders the top rows of s. Adjacent cells with the same color are
// styled as one run to keep escape sequences down.
func (r *Renderer) Screen(s *core.Screen, rows int) string {
	rows = core.Clamp(rows, 0, s.Height())

	var sb strings.Builder
	sb.Grow(s.Width()*rows*2 + rows)

	var run strings.Builder
	for y := 0; y < rows; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color
			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}
			sb.WriteString(r.cellStyle(color).Render(run.String()))
		}
	}
	return sb.String()
}
