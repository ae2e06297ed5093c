package core

import (
	"strings"
	"testing"
)

// rows builds the expected String() output from literal rows.
func rows(lines ...string) string {
	return strings.Join(lines, "\n")
}

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(4, 2)

	if s.Width() != 4 || s.Height() != 2 {
		t.Fatalf("size = %dx%d, want 4x2", s.Width(), s.Height())
	}
	if got := s.String(); got != rows("    ", "    ") {
		t.Errorf("String() = %q", got)
	}
	if s.Bounds() != NewRect(0, 0, 4, 2) {
		t.Errorf("Bounds() = %+v", s.Bounds())
	}
}

func TestScreenClipsOffscreenWrites(t *testing.T) {
	s := NewScreen(3, 3)

	tests := []struct {
		name string
		x, y int
	}{
		{"left", -1, 1},
		{"right", 3, 1},
		{"above", 1, -1},
		{"below", 1, 3},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s.Set(tc.x, tc.y, 'X')
			if got := s.Get(tc.x, tc.y); got != ' ' {
				t.Errorf("Get(%d, %d) = %q, want space", tc.x, tc.y, got)
			}
		})
	}

	if got := s.String(); strings.ContainsRune(got, 'X') {
		t.Errorf("offscreen write leaked onto the screen:\n%s", got)
	}
}

func TestScreenDrawTextClipsAtEdge(t *testing.T) {
	s := NewScreen(6, 2)
	s.DrawText(3, 0, "2048")
	s.DrawText(-2, 1, "4096")

	want := rows("   204", "96    ")
	if got := s.String(); got != want {
		t.Errorf("String() =\n%q\nwant\n%q", got, want)
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 1)
	s.DrawTextCentered(0, "WIN")

	if got := s.Row(0); got != "    WIN    " {
		t.Errorf("Row(0) = %q", got)
	}
}

func TestScreenDrawBoxAndRect(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawRect(s.Bounds(), '#')
	box := NewRect(0, 0, 5, 3)
	s.DrawRect(box, ' ')
	s.DrawBox(box)

	want := rows(
		"┌───┐#",
		"│   │#",
		"└───┘#",
		"######",
	)
	if got := s.String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
}

func TestScreenColors(t *testing.T) {
	s := NewScreen(5, 1)
	s.DrawTextColored(1, 0, "16", ColorOrange)
	s.Set(4, 0, '!')

	tests := []struct {
		x    int
		want Cell
	}{
		{0, Cell{Rune: ' ', Color: ColorDefault}},
		{1, Cell{Rune: '1', Color: ColorOrange}},
		{2, Cell{Rune: '6', Color: ColorOrange}},
		{4, Cell{Rune: '!', Color: ColorDefault}},
	}
	for _, tc := range tests {
		if got := s.GetCell(tc.x, 0); got != tc.want {
			t.Errorf("GetCell(%d, 0) = %+v, want %+v", tc.x, got, tc.want)
		}
	}

	s.Clear()
	if got := s.GetCell(1, 0); got != blank {
		t.Errorf("after Clear GetCell(1, 0) = %+v", got)
	}
}

func TestScreenResizeKeepsOverlap(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawTextColored(0, 0, "abc", ColorRed)
	s.DrawText(0, 1, "def")

	s.Resize(2, 3)
	if got := s.String(); got != rows("ab", "de", "  ") {
		t.Errorf("shrink width: %q", got)
	}
	if s.GetCell(1, 0).Color != ColorRed {
		t.Error("Resize should keep colors")
	}

	s.Resize(4, 1)
	if got := s.String(); got != "ab  " {
		t.Errorf("grow width: %q", got)
	}
}

func TestScreenRowOutOfRange(t *testing.T) {
	s := NewScreen(3, 1)
	if got := s.Row(5); got != "   " {
		t.Errorf("Row(5) = %q", got)
	}
}
