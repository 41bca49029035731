package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c != blankCell {
				t.Errorf("New screen should be blank, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenSetCellBounds(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetCell(5, 5, Cell{Rune: 'X'})
	if r := s.GetCell(5, 5).Rune; r != 'X' {
		t.Errorf("GetCell(5, 5).Rune = %q, expected 'X'", r)
	}

	// Out of bounds writes are dropped
	for _, p := range [][2]int{{-1, 0}, {100, 0}, {0, -1}, {0, 100}} {
		s.SetCell(p[0], p[1], Cell{Rune: 'A'})
		if c := s.GetCell(p[0], p[1]); c != blankCell {
			t.Errorf("GetCell(%d, %d) = %+v, expected blank", p[0], p[1], c)
		}
	}
}

func TestScreenDrawColorTextClips(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawColorText(2, 1, "Hello", Color{})
	if row := s.Row(1); !strings.HasPrefix(row, "  Hello ") {
		t.Errorf("Row(1) = %q", row)
	}

	s.DrawColorText(18, 0, "Hello", Color{})
	if row := s.Row(0); !strings.HasSuffix(row, "He") {
		t.Errorf("Text should be clipped at right boundary, row 0 = %q", row)
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi", Color{})

	x := (20 - 2) / 2
	if s.GetCell(x, 2).Rune != 'H' || s.GetCell(x+1, 2).Rune != 'i' {
		t.Errorf("DrawTextCentered: row 2 = %q", s.Row(2))
	}
}

func TestScreenDrawRect(t *testing.T) {
	tests := []struct {
		name   string
		r      Rect
		inside [][2]int
		out    [][2]int
	}{
		{"interior", NewRect(2, 2, 3, 3), [][2]int{{2, 2}, {4, 4}}, [][2]int{{1, 1}, {5, 5}}},
		{"clipped", NewRect(8, 8, 5, 5), [][2]int{{9, 9}}, [][2]int{{7, 7}}},
		{"empty", NewRect(3, 3, 0, 2), nil, [][2]int{{3, 3}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScreen(10, 10)
			s.DrawRect(tc.r, Cell{Rune: '#'})
			for _, p := range tc.inside {
				if r := s.GetCell(p[0], p[1]).Rune; r != '#' {
					t.Errorf("expected '#' at %v, got %q", p, r)
				}
			}
			for _, p := range tc.out {
				if r := s.GetCell(p[0], p[1]).Rune; r != ' ' {
					t.Errorf("expected ' ' at %v, got %q", p, r)
				}
			}
		})
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawColorText(0, 0, "AAAAA", Color{})
	s.DrawColorText(0, 1, "BBBBB", Color{})
	s.DrawColorText(0, 2, "CCCCC", Color{})

	result := s.String()
	expected := "AAAAA\nBBBBB\nCCCCC"

	if result != expected {
		t.Errorf("String() = %q, expected %q", result, expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawColorText(0, 0, "Hello", Color{})
	s.DrawColorText(0, 5, "World", Color{})

	// Resize smaller - should preserve top-left content
	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}
	if row0 := s.Row(0); !strings.HasPrefix(row0, "Hello") {
		t.Errorf("Content should be preserved, row 0 = %q", row0)
	}

	// Resize larger - old content should still be there
	s.Resize(15, 8)
	if row0 := s.Row(0); !strings.HasPrefix(row0, "Hello") {
		t.Errorf("Content should be preserved after enlarging, row 0 = %q", row0)
	}
	if row5 := s.Row(5); strings.TrimSpace(row5) != "" {
		t.Errorf("Cropped rows should not come back, row 5 = %q", row5)
	}
}

func TestScreenRowOutOfBounds(t *testing.T) {
	s := NewScreen(10, 5)
	if row := s.Row(-1); row != "          " {
		t.Errorf("Out of bounds row should be spaces, got %q", row)
	}
	if row := s.Row(5); len(row) != 10 {
		t.Errorf("Out of bounds row length = %d, expected 10", len(row))
	}
}

func TestScreenColorCells(t *testing.T) {
	s := NewScreen(10, 3)
	red := RGB(240, 46, 46)
	s.DrawColorText(1, 1, "ab", red)

	if c := s.GetCell(1, 1); c.Rune != 'a' || c.Color != red {
		t.Errorf("GetCell(1, 1) = %+v, expected 'a' in red", c)
	}
	if c := s.GetCell(0, 1); c.Color != (Color{}) {
		t.Errorf("Untouched cell should keep default color, got %+v", c.Color)
	}

	s.Resize(5, 2)
	if c := s.GetCell(2, 1); c.Rune != 'b' || c.Color != red {
		t.Errorf("Resize should preserve colored cells, got %+v", c)
	}

	s.Clear()
	if c := s.GetCell(1, 1); c.Rune != ' ' || c.Color != (Color{}) {
		t.Errorf("Clear should reset cells, got %+v", c)
	}
}
