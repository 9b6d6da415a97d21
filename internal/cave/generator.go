package cave

import (
	"strconv"
	"time"

	"github.com/vovakirdan/tui-caves/internal/core"
)

// Map is the finished output of a generation run. It is a snapshot: the
// generator keeps no reference to it once Generate returns.
type Map struct {
	Width    int
	Height   int
	Seed     string // Effective seed; generating with it and UseRandomSeed=false reproduces the map
	Params   Params
	Grid     *core.Grid
	Masks    *MaskGrid
	Rooms    []Room
	Passages []Passage
	Stats    Stats
}

// MainRoom returns the largest room, or nil when the map has no rooms.
func (m *Map) MainRoom() *Room {
	for i := range m.Rooms {
		if m.Rooms[i].IsMain {
			return &m.Rooms[i]
		}
	}
	return nil
}

// Generator runs the pipeline for one set of parameters. A Generator is
// single-use state and not safe for concurrent use.
type Generator struct {
	params   Params
	seed     string
	src      core.Source
	grid     *core.Grid
	masks    *MaskGrid
	graph    roomGraph
	passages []Passage
	stats    Stats
}

// New validates p and prepares a generator. Time-seeded runs draw a seed
// from the clock and record it in the returned Map.
func New(p Params) (*Generator, error) {
	if p.UseRandomSeed {
		p.Seed = strconv.FormatInt(time.Now().UnixNano(), 10)
	}
	return NewWithSource(p, core.NewSeededSource(p.Seed))
}

// NewWithSource validates p and prepares a generator drawing from src.
// Params.Seed and UseRandomSeed are recorded but not used for sampling.
func NewWithSource(p Params, src core.Source) (*Generator, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return newGenerator(p, p.Seed, src), nil
}

func newGenerator(p Params, seed string, src core.Source) *Generator {
	return &Generator{
		params: p,
		seed:   seed,
		src:    src,
		grid:   core.NewGrid(p.Width, p.Height),
	}
}

// Generate runs the full pipeline. On ErrNotConverged the partially repaired
// map is still returned alongside the error.
func Generate(p Params) (*Map, error) {
	gen, err := New(p)
	if err != nil {
		return nil, err
	}
	return gen.Generate()
}

// Generate runs fill, smoothing, room extraction and connection, then wall
// repair, and returns the resulting snapshot.
func (gen *Generator) Generate() (*Map, error) {
	randomFill(gen.grid, gen.src, gen.params.FillPercent)
	for i := 0; i < gen.params.Smooth; i++ {
		smoothPass(gen.grid)
	}

	gen.processMap()
	err := gen.repairWalls()

	return gen.snapshot(), err
}

// processMap turns large floor regions into rooms and connects them.
func (gen *Generator) processMap() {
	gen.buildRooms()
	if len(gen.graph.rooms) == 0 {
		return
	}
	gen.connectClosestRooms()
}

// buildRooms extracts floor regions, walls in those below the threshold, and
// marks the largest remaining room as main.
func (gen *Generator) buildRooms() {
	var rooms []*Room
	for _, region := range Regions(gen.grid, core.Floor) {
		if len(region) < gen.params.WallThreshold {
			for _, t := range region {
				gen.grid.Set(t.X, t.Y, core.Wall)
			}
			gen.stats.DiscardedRegions++
			gen.stats.DiscardedTiles += len(region)
			continue
		}
		rooms = append(rooms, newRoom(region, gen.grid))
	}

	sortRooms(rooms)
	gen.graph = roomGraph{rooms: rooms}

	if len(rooms) == 0 {
		return
	}
	main := rooms[len(rooms)-1]
	main.IsMain = true
	main.AccessibleFromMain = true
}

// snapshot copies the generator state into an independent Map.
func (gen *Generator) snapshot() *Map {
	rooms := make([]Room, len(gen.graph.rooms))
	for i, r := range gen.graph.rooms {
		rooms[i] = *r
		rooms[i].Connected = append([]int(nil), r.Connected...)
	}

	masks := gen.masks
	if masks == nil {
		masks = BorderWalls(gen.grid)
	}

	m := &Map{
		Width:    gen.params.Width,
		Height:   gen.params.Height,
		Seed:     gen.seed,
		Params:   gen.params,
		Grid:     gen.grid.Clone(),
		Masks:    &MaskGrid{W: masks.W, H: masks.H, Masks: append([]uint8(nil), masks.Masks...)},
		Rooms:    rooms,
		Passages: append([]Passage(nil), gen.passages...),
	}
	m.Params.Seed = gen.seed
	m.Params.UseRandomSeed = false
	m.Stats = gen.stats
	m.Stats.fill(m)
	return m
}
