package cave

import (
	"sort"

	"github.com/vovakirdan/tui-caves/internal/core"
)

// Room is a floor region large enough to keep. Rooms reference each other by
// index into the owning room list, never by pointer.
type Room struct {
	ID        int          // Position in the size-sorted room list
	Tiles     []core.Coord // Floor tiles at extraction time
	EdgeTiles []core.Coord // Tiles touching a wall at extraction time
	Connected []int        // Sorted IDs of directly connected rooms

	IsMain             bool
	AccessibleFromMain bool
}

// newRoom builds a room from a region. Edge tiles are the region tiles with at
// least one orthogonal wall neighbor in the current grid.
func newRoom(tiles []core.Coord, g *core.Grid) *Room {
	r := &Room{Tiles: tiles}
	for _, t := range tiles {
		for _, d := range core.Orthogonal {
			if g.IsWall(t.X+d.X, t.Y+d.Y) {
				r.EdgeTiles = append(r.EdgeTiles, t)
				break
			}
		}
	}
	return r
}

// Size returns the number of floor tiles in the room.
func (r *Room) Size() int {
	return len(r.Tiles)
}

// IsConnected reports whether the room is directly connected to room id.
func (r *Room) IsConnected(id int) bool {
	i := sort.SearchInts(r.Connected, id)
	return i < len(r.Connected) && r.Connected[i] == id
}

// addConnection inserts id keeping Connected sorted and duplicate-free.
func (r *Room) addConnection(id int) {
	i := sort.SearchInts(r.Connected, id)
	if i < len(r.Connected) && r.Connected[i] == id {
		return
	}
	r.Connected = append(r.Connected, 0)
	copy(r.Connected[i+1:], r.Connected[i:])
	r.Connected[i] = id
}

// roomGraph is the flat, index-addressed set of rooms of one run.
type roomGraph struct {
	rooms []*Room
}

// sortRooms orders rooms ascending by size, keeping discovery order among
// equal sizes, and assigns IDs from the sorted position.
func sortRooms(rooms []*Room) {
	sort.SliceStable(rooms, func(i, j int) bool {
		return rooms[i].Size() < rooms[j].Size()
	})
	for i, r := range rooms {
		r.ID = i
	}
}

// connect links rooms a and b symmetrically. If either side is reachable from
// the main room, reachability spreads through the newly joined component.
func (rg *roomGraph) connect(a, b int) {
	ra, rb := rg.rooms[a], rg.rooms[b]
	ra.addConnection(b)
	rb.addConnection(a)

	switch {
	case ra.AccessibleFromMain && !rb.AccessibleFromMain:
		rg.spreadAccess(b)
	case rb.AccessibleFromMain && !ra.AccessibleFromMain:
		rg.spreadAccess(a)
	}
}

// spreadAccess marks every room reachable from start as accessible from the
// main room. Breadth-first with a visited set, so cycles terminate.
func (rg *roomGraph) spreadAccess(start int) {
	visited := make([]bool, len(rg.rooms))
	visited[start] = true
	queue := []int{start}

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		rg.rooms[id].AccessibleFromMain = true

		for _, next := range rg.rooms[id].Connected {
			if !visited[next] {
				visited[next] = true
				queue = append(queue, next)
			}
		}
	}
}

// partition splits room IDs into those reachable from the main room and the rest.
func (rg *roomGraph) partition() (reachable, unreachable []int) {
	for _, r := range rg.rooms {
		if r.AccessibleFromMain {
			reachable = append(reachable, r.ID)
		} else {
			unreachable = append(unreachable, r.ID)
		}
	}
	return reachable, unreachable
}
