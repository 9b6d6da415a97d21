package core

import (
	"strings"
	"testing"
)

func rows(s *Screen) []string {
	return strings.Split(s.String(), "\n")
}

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(6, 3)

	if s.Width() != 6 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, expected 6x3", s.Width(), s.Height())
	}
	if got := s.String(); got != "      \n      \n      " {
		t.Errorf("new screen should be spaces, got %q", got)
	}
}

func TestNewScreenNegativeSize(t *testing.T) {
	s := NewScreen(-2, 4)
	if s.Width() != 0 || s.Height() != 4 {
		t.Errorf("negative width should clamp to 0, got %dx%d", s.Width(), s.Height())
	}
}

func TestScreenOutOfBounds(t *testing.T) {
	s := NewScreen(4, 4)

	for _, p := range []Coord{{-1, 0}, {4, 0}, {0, -1}, {0, 4}} {
		s.Set(p.X, p.Y, 'A')
		if cell := s.GetCell(p.X, p.Y); cell != blank {
			t.Errorf("GetCell%v = %+v, expected blank", p, cell)
		}
	}
	if strings.ContainsRune(s.String(), 'A') {
		t.Error("out-of-bounds writes should be dropped")
	}
}

func TestScreenSetColoredAndClear(t *testing.T) {
	s := NewScreen(6, 3)
	s.SetColored(2, 1, '#', ColorWall)
	s.DrawTextColored(0, 2, "ab", RoomColor(3))

	if cell := s.GetCell(2, 1); cell.Rune != '#' || cell.Color != ColorWall {
		t.Errorf("GetCell(2, 1) = %+v, expected wall '#'", cell)
	}
	if cell := s.GetCell(1, 2); cell.Rune != 'b' || cell.Color != RoomColor(3) {
		t.Errorf("GetCell(1, 2) = %+v, expected room-colored 'b'", cell)
	}

	s.Clear()
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if cell := s.GetCell(x, y); cell != blank {
				t.Fatalf("after Clear, (%d, %d) = %+v", x, y, cell)
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	tests := []struct {
		name     string
		draw     func(s *Screen)
		expected string
	}{
		{"plain", func(s *Screen) { s.DrawText(1, 0, "cave") }, " cave "},
		{"clipped right", func(s *Screen) { s.DrawText(4, 0, "cave") }, "    ca"},
		{"clipped left", func(s *Screen) { s.DrawText(-2, 0, "cave") }, "ve    "},
		{"centered", func(s *Screen) { s.DrawTextCentered(0, "ab") }, "  ab  "},
		{"multibyte", func(s *Screen) { s.DrawText(0, 0, "┌─┐") }, "┌─┐   "},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScreen(6, 1)
			tc.draw(s)
			if got := s.String(); got != tc.expected {
				t.Errorf("got %q, expected %q", got, tc.expected)
			}
		})
	}
}

func TestScreenResizeKeepsTopLeft(t *testing.T) {
	s := NewScreen(6, 3)
	s.DrawText(0, 0, "abcdef")
	s.DrawText(0, 2, "ghijkl")

	s.Resize(4, 2)
	if got := s.String(); got != "abcd\n    " {
		t.Errorf("after shrink = %q", got)
	}

	s.Resize(5, 3)
	r := rows(s)
	if len(r) != 3 || r[0] != "abcd " || r[2] != "     " {
		t.Errorf("after grow = %q", r)
	}
}

func TestRoomColorCycles(t *testing.T) {
	if RoomColor(0) != RoomColor(RoomColors) {
		t.Error("RoomColor should cycle after RoomColors entries")
	}
	if RoomColor(0) == RoomColor(1) {
		t.Error("Neighboring room IDs should get distinct colors")
	}
	for id := 0; id < RoomColors; id++ {
		switch RoomColor(id) {
		case ColorDefault, ColorWall, ColorPassage, ColorMainRoom:
			t.Errorf("RoomColor(%d) collides with a reserved color", id)
		}
	}
	if RoomColor(-1) != RoomColor(1) {
		t.Error("Negative IDs should map like their absolute value")
	}
}
