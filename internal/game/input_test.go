package game

import "testing"

func TestNormalizeCursor(t *testing.T) {
	cases := []struct {
		cx, cy       float64
		w, h         int
		wantX, wantY float64
	}{
		{0, 0, 800, 600, 0, 1},
		{400, 300, 800, 600, 0.5, 0.5},
		{800, 600, 800, 600, 1, 0},
		{-80, 900, 800, 600, -0.1, -0.5},
		{10, 10, 0, 600, -1, -1},
	}
	for _, c := range cases {
		x, y := normalizeCursor(c.cx, c.cy, c.w, c.h)
		if x != c.wantX || y != c.wantY {
			t.Errorf("normalizeCursor(%v, %v, %d, %d) = %v, %v; want %v, %v", c.cx, c.cy, c.w, c.h, x, y, c.wantX, c.wantY)
		}
	}
}

func TestPressEdge(t *testing.T) {
	held := map[int]bool{}
	steps := []struct {
		down, want bool
	}{
		{false, false},
		{true, true},
		{true, false},
		{false, false},
		{true, true},
	}
	for i, s := range steps {
		if got := pressEdge(held, 1, s.down); got != s.want {
			t.Fatalf("step %d: pressEdge(%v) = %v", i, s.down, got)
		}
	}
}
