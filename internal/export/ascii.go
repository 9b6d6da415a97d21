package export

import (
	"io"

	"github.com/vovakirdan/tui-caves/internal/cave"
)

func init() {
	Register(asciiExporter{})
}

// asciiExporter writes '#' for wall and '.' for floor.
type asciiExporter struct{}

func (asciiExporter) ID() string        { return "ascii" }
func (asciiExporter) Title() string     { return "Plain text grid (# wall, . floor)" }
func (asciiExporter) Extension() string { return ".txt" }

func (asciiExporter) Export(w io.Writer, m *cave.Map) error {
	_, err := io.WriteString(w, cave.RenderASCII(m.Grid)+"\n")
	return err
}
