package core

import "testing"

func TestRectEdgesAndCenter(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 || r.Bottom() != 25 {
		t.Errorf("edges = (%d, %d), want (25, 25)", r.Right(), r.Bottom())
	}
	if cx, cy := r.Center(); cx != 15 || cy != 17 {
		t.Errorf("Center() = (%d, %d), want (15, 17)", cx, cy)
	}
}

func TestRectCenteredIn(t *testing.T) {
	outer := NewRect(0, 0, 80, 24)

	tests := []struct {
		name string
		w, h int
		want Rect
	}{
		{"classic board", 29, 13, Rect{X: 25, Y: 5, W: 29, H: 13}},
		{"odd remainder rounds left", 30, 10, Rect{X: 25, Y: 7, W: 30, H: 10}},
		{"exact fit", 80, 24, Rect{X: 0, Y: 0, W: 80, H: 24}},
		{"too wide", 100, 10, Rect{X: 0, Y: 7, W: 100, H: 10}},
		{"too tall", 10, 40, Rect{X: 35, Y: 0, W: 10, H: 40}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := outer.CenteredIn(tc.w, tc.h); got != tc.want {
				t.Errorf("CenteredIn(%d, %d) = %+v, want %+v", tc.w, tc.h, got, tc.want)
			}
		})
	}

	inner := NewRect(10, 4, 20, 10).CenteredIn(4, 2)
	if inner != (Rect{X: 18, Y: 8, W: 4, H: 2}) {
		t.Errorf("offset rect: got %+v", inner)
	}
}
