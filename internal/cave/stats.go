package cave

import "github.com/vovakirdan/tui-caves/internal/core"

// Stats summarizes a generation run.
type Stats struct {
	FloorCells       int
	WallCells        int
	FloorRatio       float64
	Rooms            int
	MainRoomSize     int
	EdgeTiles        int
	DiscardedRegions int // Floor regions below the threshold, filled as wall
	DiscardedTiles   int
	Passages         int
	RepairPasses     int // Mask/repair passes run, including the final clean one
	HolesRepaired    int
	WallShapes       []uint8 // Distinct wall bitmasks present, ascending
}

// fill derives the grid and room counters from a finished map.
func (s *Stats) fill(m *Map) {
	total := m.Width * m.Height
	s.FloorCells = m.Grid.Count(core.Floor)
	s.WallCells = total - s.FloorCells
	s.FloorRatio = float64(s.FloorCells) / float64(total)
	s.Rooms = len(m.Rooms)
	s.Passages = len(m.Passages)
	s.WallShapes = m.Masks.Distinct()
	s.EdgeTiles = 0
	for _, r := range m.Rooms {
		s.EdgeTiles += len(r.EdgeTiles)
	}
	if main := m.MainRoom(); main != nil {
		s.MainRoomSize = main.Size()
	}
}
