package core

// Color selects the foreground of a screen cell. The terminal palette a
// color maps to is chosen by the renderer.
type Color uint8

// Reserved colors for cave elements.
const (
	ColorDefault Color = iota
	ColorWall
	ColorPassage
	ColorMainRoom
	colorRoomBase
)

// RoomColors is the number of distinct colors cycled through for rooms
// other than the main room.
const RoomColors = 8

// RoomColor returns the color for the room with the given ID.
func RoomColor(id int) Color {
	return colorRoomBase + Color(Abs(id)%RoomColors)
}
