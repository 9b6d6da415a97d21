package cave

import "github.com/vovakirdan/tui-caves/internal/core"

// connection is the best edge-tile pair found so far between two rooms.
type connection struct {
	found        bool
	distance     int
	roomA, roomB int
	tileA, tileB core.Coord
}

// consider compares every edge-tile pair of a and b against the current best.
// Ties keep the pair found first.
func (c *connection) consider(a, b *Room) {
	for _, ta := range a.EdgeTiles {
		for _, tb := range b.EdgeTiles {
			d := ta.DistSq(tb)
			if c.found && d >= c.distance {
				continue
			}
			c.found = true
			c.distance = d
			c.roomA, c.roomB = a.ID, b.ID
			c.tileA, c.tileB = ta, tb
		}
	}
}

// connectClosestRooms links every room into one graph reachable from the
// main room.
func (gen *Generator) connectClosestRooms() {
	gen.connectIsolatedRooms()
	gen.connectToMainRoom()
}

// connectIsolatedRooms gives every room that still has no connection a
// passage to its nearest other room.
func (gen *Generator) connectIsolatedRooms() {
	rooms := gen.graph.rooms
	for _, a := range rooms {
		if len(a.Connected) > 0 {
			continue
		}

		var best connection
		for _, b := range rooms {
			if a.ID == b.ID || a.IsConnected(b.ID) {
				continue
			}
			best.consider(a, b)
		}

		if best.found {
			gen.createPassage(best)
		}
	}
}

// connectToMainRoom repeatedly carves the shortest passage between the rooms
// reachable from the main room and the rest until none are left out. Each
// round makes at least one more room reachable.
func (gen *Generator) connectToMainRoom() {
	rooms := gen.graph.rooms
	for {
		reachable, unreachable := gen.graph.partition()
		if len(unreachable) == 0 || len(reachable) == 0 {
			return
		}

		var best connection
		for _, a := range unreachable {
			for _, b := range reachable {
				best.consider(rooms[a], rooms[b])
			}
		}

		// Rooms always touch a wall, so a pair exists whenever both sides are non-empty.
		if !best.found {
			return
		}
		gen.createPassage(best)
	}
}
