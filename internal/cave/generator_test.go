package cave

import (
	"errors"
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-caves/internal/core"
)

func fixedParams(seed string) Params {
	p := DefaultParams()
	p.Width = 60
	p.Height = 40
	p.UseRandomSeed = false
	p.Seed = seed
	return p
}

func TestGenerateDeterministic(t *testing.T) {
	p := fixedParams("HELLO")

	a, err := Generate(p)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	b, err := Generate(p)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if !a.Grid.Equal(b.Grid) {
		t.Error("same seed should produce identical grids")
	}
	if !reflect.DeepEqual(a.Masks.Masks, b.Masks.Masks) {
		t.Error("same seed should produce identical wall masks")
	}
	if len(a.Rooms) != len(b.Rooms) {
		t.Fatalf("room count differs: %d vs %d", len(a.Rooms), len(b.Rooms))
	}
	for i := range a.Rooms {
		ra, rb := a.Rooms[i], b.Rooms[i]
		if !reflect.DeepEqual(ra.Tiles, rb.Tiles) ||
			!reflect.DeepEqual(ra.EdgeTiles, rb.EdgeTiles) ||
			!reflect.DeepEqual(ra.Connected, rb.Connected) {
			t.Errorf("room %d differs between runs", i)
		}
	}
	if !reflect.DeepEqual(a.Passages, b.Passages) {
		t.Error("same seed should produce identical passages")
	}
	if a.Seed != "HELLO" {
		t.Errorf("expected seed HELLO, got %q", a.Seed)
	}
}

func TestGenerateRecordsRandomSeed(t *testing.T) {
	p := fixedParams("")
	p.UseRandomSeed = true

	first, err := Generate(p)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if first.Seed == "" {
		t.Fatal("time-seeded run should record its seed")
	}
	if first.Params.UseRandomSeed {
		t.Error("recorded params should use the fixed seed")
	}

	again, err := Generate(first.Params)
	if err != nil {
		t.Fatalf("regenerate failed: %v", err)
	}
	if !first.Grid.Equal(again.Grid) {
		t.Error("the recorded params should reproduce the grid")
	}
}

func TestGenerateInvariants(t *testing.T) {
	for _, seed := range []string{"a", "b", "caves", "HELLO", "1234"} {
		t.Run(seed, func(t *testing.T) {
			m, err := Generate(fixedParams(seed))
			if err != nil {
				t.Fatalf("generate failed: %v", err)
			}
			checkBorder(t, m.Grid)
			checkMasks(t, m)
			checkRoomGraph(t, m)

			if len(m.Rooms) > 0 {
				if got := len(Regions(m.Grid, core.Floor)); got != 1 {
					t.Errorf("floor should be one connected region, got %d", got)
				}
			}
			if m.Stats.FloorCells+m.Stats.WallCells != m.Width*m.Height {
				t.Error("stats cell counts should cover the grid")
			}
		})
	}
}

func checkBorder(t *testing.T, g *core.Grid) {
	t.Helper()
	for x := 0; x < g.W; x++ {
		for y := 0; y < g.H; y++ {
			if g.OnBorder(x, y) && g.Get(x, y) != core.Wall {
				t.Fatalf("border cell (%d,%d) is floor", x, y)
			}
		}
	}
}

func checkMasks(t *testing.T, m *Map) {
	t.Helper()
	allowed := m.Params.allowList()
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if m.Grid.Get(x, y) != core.Wall {
				continue
			}
			mask := m.Masks.Get(x, y)
			if mask != SurroundingWalls(m.Grid, x, y) {
				t.Fatalf("stale mask at (%d,%d)", x, y)
			}
			if !allowed.Contains(mask) {
				t.Fatalf("disallowed mask %d at (%d,%d)", mask, x, y)
			}
		}
	}
}

func checkRoomGraph(t *testing.T, m *Map) {
	t.Helper()
	mains := 0
	for i, r := range m.Rooms {
		if r.ID != i {
			t.Errorf("room %d has ID %d", i, r.ID)
		}
		if r.IsMain {
			mains++
		}
		if !r.AccessibleFromMain {
			t.Errorf("room %d is not accessible from main", r.ID)
		}
		if r.Size() < m.Params.WallThreshold {
			t.Errorf("room %d is below the threshold", r.ID)
		}
		for _, id := range r.Connected {
			if id == r.ID {
				t.Errorf("room %d is connected to itself", r.ID)
			}
			if !m.Rooms[id].IsConnected(r.ID) {
				t.Errorf("connection %d-%d is not symmetric", r.ID, id)
			}
		}
	}
	if len(m.Rooms) > 0 && mains != 1 {
		t.Errorf("expected exactly one main room, got %d", mains)
	}
	if main := m.MainRoom(); main != nil && main.ID != len(m.Rooms)-1 {
		t.Error("main room should be the last in size order")
	}
}

func TestGenerateOpenCave(t *testing.T) {
	p := Params{
		Width:         10,
		Height:        10,
		FillPercent:   0,
		Smooth:        0,
		WallThreshold: 1,
		PassageRadius: 2,
		Seed:          "open",
		RepairRadius:  2,
	}

	m, err := Generate(p)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if len(m.Rooms) != 1 {
		t.Fatalf("expected 1 room, got %d", len(m.Rooms))
	}
	main := m.MainRoom()
	if main == nil || main.Size() != 64 {
		t.Errorf("expected a 64 tile main room, got %+v", main)
	}
	if len(m.Passages) != 0 {
		t.Errorf("a single room needs no passages, got %d", len(m.Passages))
	}
	if m.Stats.HolesRepaired != 0 {
		t.Errorf("an open room has no holes, repaired %d", m.Stats.HolesRepaired)
	}
}

func TestGenerateSolidCave(t *testing.T) {
	p := fixedParams("solid")
	p.FillPercent = 100

	m, err := Generate(p)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if len(m.Rooms) != 0 || m.MainRoom() != nil {
		t.Errorf("solid cave should have no rooms, got %d", len(m.Rooms))
	}
	if m.Grid.Count(core.Floor) != 0 {
		t.Error("solid cave should stay solid")
	}
	if m.Stats.MainRoomSize != 0 {
		t.Errorf("expected main room size 0, got %d", m.Stats.MainRoomSize)
	}
}

func TestProcessMapConnectsTwoRegions(t *testing.T) {
	p := DefaultParams()
	p.Width, p.Height = 30, 12
	p.WallThreshold = 1
	gen := newGenerator(p, "", nil)
	gen.grid.Fill(core.Wall)
	carveRect(gen.grid, 2, 1, 5, 10)  // 50 tiles
	carveRect(gen.grid, 20, 1, 6, 10) // 60 tiles

	gen.processMap()

	rooms := gen.graph.rooms
	if len(rooms) != 2 {
		t.Fatalf("expected 2 rooms, got %d", len(rooms))
	}
	if rooms[0].Size() != 50 || rooms[1].Size() != 60 {
		t.Errorf("expected sizes 50 and 60, got %d and %d", rooms[0].Size(), rooms[1].Size())
	}
	if !rooms[1].IsMain {
		t.Error("larger room should be main")
	}
	if len(gen.passages) != 1 {
		t.Fatalf("expected exactly one passage, got %d", len(gen.passages))
	}
	for _, r := range rooms {
		if !r.AccessibleFromMain {
			t.Errorf("room %d should be accessible", r.ID)
		}
	}
	if got := len(Regions(gen.grid, core.Floor)); got != 1 {
		t.Errorf("passage should join the floor into one region, got %d", got)
	}
}

func TestBuildRoomsDiscardsSmallRegions(t *testing.T) {
	p := DefaultParams()
	p.Width, p.Height = 20, 10
	p.WallThreshold = 10
	gen := newGenerator(p, "", nil)
	gen.grid.Fill(core.Wall)
	carveRect(gen.grid, 1, 1, 2, 2)  // 4 tiles, discarded
	carveRect(gen.grid, 10, 1, 5, 5) // 25 tiles

	gen.buildRooms()

	if len(gen.graph.rooms) != 1 {
		t.Fatalf("expected 1 room, got %d", len(gen.graph.rooms))
	}
	if gen.grid.Get(1, 1) != core.Wall {
		t.Error("small region should be filled with wall")
	}
	if gen.stats.DiscardedRegions != 1 || gen.stats.DiscardedTiles != 4 {
		t.Errorf("expected 1 discarded region of 4 tiles, got %d/%d",
			gen.stats.DiscardedRegions, gen.stats.DiscardedTiles)
	}
}

func carveRect(g *core.Grid, x, y, w, h int) {
	for dx := 0; dx < w; dx++ {
		for dy := 0; dy < h; dy++ {
			g.Set(x+dx, y+dy, core.Floor)
		}
	}
}

func TestGenerateNotConverged(t *testing.T) {
	p := fixedParams("stuck")
	p.FillPercent = 100
	p.AllowedMasks = []uint8{}
	p.MaxRepairPasses = 1

	m, err := Generate(p)
	if !errors.Is(err, ErrNotConverged) {
		t.Fatalf("expected ErrNotConverged, got %v", err)
	}
	var convErr *ConvergenceError
	if !errors.As(err, &convErr) {
		t.Fatalf("expected *ConvergenceError, got %T", err)
	}
	if convErr.Passes != 1 || convErr.Defects == 0 {
		t.Errorf("unexpected convergence details: %+v", convErr)
	}
	if m == nil {
		t.Fatal("partial map should be returned with the error")
	}
	checkBorder(t, m.Grid)
}

func TestNewWithSource(t *testing.T) {
	p := fixedParams("scripted")
	p.Width, p.Height = 10, 10
	p.Smooth = 0
	p.WallThreshold = 1
	src := &scriptedSource{values: []int{100}}

	gen, err := NewWithSource(p, src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m, err := gen.Generate()
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if src.calls != 64 {
		t.Errorf("expected one draw per interior cell, got %d", src.calls)
	}
	if len(m.Rooms) != 1 {
		t.Errorf("an all-floor interior should be one room, got %d", len(m.Rooms))
	}

	p.Width = 2
	if _, err := NewWithSource(p, src); err == nil {
		t.Error("expected validation error")
	}
}

func TestMapIsSnapshot(t *testing.T) {
	m, err := Generate(fixedParams("snapshot"))
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	before := m.Grid.Clone()

	m2, err := Generate(fixedParams("snapshot"))
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	m2.Grid.Fill(core.Floor)

	if !m.Grid.Equal(before) {
		t.Error("maps from separate runs should not share state")
	}
}

func TestStatsWallShapesAllowed(t *testing.T) {
	m, err := Generate(fixedParams("shapes"))
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	shapes := m.Stats.WallShapes
	if len(shapes) == 0 {
		t.Fatal("expected at least one wall shape")
	}
	allowed := NewMaskSet(DefaultAllowedMasks...)
	for i, v := range shapes {
		if !allowed.Contains(v) {
			t.Errorf("wall shape %d survived repair", v)
		}
		if i > 0 && shapes[i-1] >= v {
			t.Errorf("wall shapes not ascending: %v", shapes)
		}
	}
}
