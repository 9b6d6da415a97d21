package export

import (
	"bufio"
	"io"
	"strconv"

	"github.com/vovakirdan/tui-caves/internal/cave"
)

func init() {
	Register(masksExporter{})
}

// masksExporter writes the wall bitmask grid, one row per line.
// Floor cells are written as 0.
type masksExporter struct{}

func (masksExporter) ID() string        { return "masks" }
func (masksExporter) Title() string     { return "Wall bitmask grid (space separated)" }
func (masksExporter) Extension() string { return ".masks" }

func (masksExporter) Export(w io.Writer, m *cave.Map) error {
	bw := bufio.NewWriter(w)
	for y := 0; y < m.Masks.H; y++ {
		for x := 0; x < m.Masks.W; x++ {
			if x > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteString(strconv.Itoa(int(m.Masks.Get(x, y))))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
