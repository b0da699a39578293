package core

import "testing"

func TestByteGridClampsDimensions(t *testing.T) {
	g := NewByteGrid(0, -3)
	if g.W != 1 || g.H != 1 {
		t.Fatalf("expected 1x1 grid, got %dx%d", g.W, g.H)
	}
	if len(g.Cells()) != 1 {
		t.Fatalf("expected 1 cell, got %d", len(g.Cells()))
	}
}

func TestByteGridSetAndAt(t *testing.T) {
	g := NewByteGrid(4, 3)
	g.Set(3, 2, 7)
	g.Set(4, 0, 9)
	g.Set(-1, 0, 9)

	if got := g.At(3, 2); got != 7 {
		t.Fatalf("expected 7 at (3,2), got %d", got)
	}
	if got := g.Cells()[g.Index(3, 2)]; got != 7 {
		t.Fatalf("expected backing slice to hold 7, got %d", got)
	}
	if got := g.At(4, 0); got != 0 {
		t.Fatalf("out-of-range read should be 0, got %d", got)
	}
	for i, v := range g.Cells() {
		if i != g.Index(3, 2) && v != 0 {
			t.Fatalf("out-of-range write leaked into index %d", i)
		}
	}

	g.Clear()
	if got := g.At(3, 2); got != 0 {
		t.Fatalf("expected Clear to zero the grid, got %d", got)
	}
}

func TestSizeWrap(t *testing.T) {
	s := Size{W: 5, H: 3}
	cases := []struct {
		x, y   int
		wx, wy int
	}{
		{-1, -1, 4, 2},
		{5, 3, 0, 0},
		{2, 1, 2, 1},
		{-6, 7, 4, 1},
	}
	for _, c := range cases {
		x, y := s.Wrap(c.x, c.y)
		if x != c.wx || y != c.wy {
			t.Fatalf("Wrap(%d,%d) = (%d,%d), expected (%d,%d)", c.x, c.y, x, y, c.wx, c.wy)
		}
	}
	if s.Area() != 15 {
		t.Fatalf("expected area 15, got %d", s.Area())
	}
}
