package export

import (
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-caves/internal/cave"
	"github.com/vovakirdan/tui-caves/internal/config"
	"github.com/vovakirdan/tui-caves/internal/core"
)

func init() {
	Register(yamlExporter{})
}

// Snapshot is the YAML document shape of an exported map.
type Snapshot struct {
	Seed     string            `yaml:"seed"`
	Params   config.CaveConfig `yaml:"params"`
	Stats    SnapshotStats     `yaml:"stats"`
	Rooms    []SnapshotRoom    `yaml:"rooms"`
	Passages []SnapshotPassage `yaml:"passages"`
	Grid     []string          `yaml:"grid"`
}

// SnapshotStats mirrors cave.Stats.
type SnapshotStats struct {
	FloorCells       int     `yaml:"floor_cells"`
	WallCells        int     `yaml:"wall_cells"`
	FloorRatio       float64 `yaml:"floor_ratio"`
	Rooms            int     `yaml:"rooms"`
	MainRoomSize     int     `yaml:"main_room_size"`
	DiscardedRegions int     `yaml:"discarded_regions"`
	Passages         int     `yaml:"passages"`
	RepairPasses     int     `yaml:"repair_passes"`
	HolesRepaired    int     `yaml:"holes_repaired"`
	WallShapes       []uint8 `yaml:"wall_shapes,flow"`
}

// SnapshotRoom describes one room without its tile list.
type SnapshotRoom struct {
	ID                 int   `yaml:"id"`
	Tiles              int   `yaml:"tiles"`
	EdgeTiles          int   `yaml:"edge_tiles"`
	Connected          []int `yaml:"connected,flow"`
	IsMain             bool  `yaml:"main,omitempty"`
	AccessibleFromMain bool  `yaml:"accessible"`
}

// SnapshotPassage is one carved corridor.
type SnapshotPassage struct {
	Rooms [2]int     `yaml:"rooms,flow"`
	From  core.Coord `yaml:"from,flow"`
	To    core.Coord `yaml:"to,flow"`
}

// NewSnapshot builds the YAML document for m.
func NewSnapshot(m *cave.Map) Snapshot {
	s := Snapshot{
		Seed:   m.Seed,
		Params: config.FromParams(m.Params),
		Stats: SnapshotStats{
			FloorCells:       m.Stats.FloorCells,
			WallCells:        m.Stats.WallCells,
			FloorRatio:       m.Stats.FloorRatio,
			Rooms:            m.Stats.Rooms,
			MainRoomSize:     m.Stats.MainRoomSize,
			DiscardedRegions: m.Stats.DiscardedRegions,
			Passages:         m.Stats.Passages,
			RepairPasses:     m.Stats.RepairPasses,
			HolesRepaired:    m.Stats.HolesRepaired,
			WallShapes:       m.Stats.WallShapes,
		},
		Grid: strings.Split(cave.RenderASCII(m.Grid), "\n"),
	}
	for _, r := range m.Rooms {
		s.Rooms = append(s.Rooms, SnapshotRoom{
			ID:                 r.ID,
			Tiles:              r.Size(),
			EdgeTiles:          len(r.EdgeTiles),
			Connected:          r.Connected,
			IsMain:             r.IsMain,
			AccessibleFromMain: r.AccessibleFromMain,
		})
	}
	for _, p := range m.Passages {
		s.Passages = append(s.Passages, SnapshotPassage{
			Rooms: [2]int{p.RoomA, p.RoomB},
			From:  p.From,
			To:    p.To,
		})
	}
	return s
}

// yamlExporter writes a full snapshot of the run.
type yamlExporter struct{}

func (yamlExporter) ID() string        { return "yaml" }
func (yamlExporter) Title() string     { return "YAML snapshot (params, rooms, passages, stats, grid)" }
func (yamlExporter) Extension() string { return ".yaml" }

func (yamlExporter) Export(w io.Writer, m *cave.Map) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(NewSnapshot(m)); err != nil {
		return err
	}
	return enc.Close()
}
