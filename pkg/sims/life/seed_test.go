package life

import (
	"slices"
	"testing"
)

func TestResetDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 32
	cfg.Height = 24
	cfg.Seed = 99
	cfg.Density = 0.3
	cfg.Colors = 5

	sim := NewWithConfig(cfg)
	sim.Reset(0)
	initial := append([]uint8(nil), sim.Cells()...)
	if sim.Living() == 0 {
		t.Fatal("seeding at density 0.3 produced an empty field")
	}
	for i, v := range initial {
		if int(v) > cfg.Colors {
			t.Fatalf("cell %d seeded with color %d outside the first %d colors", i, v, cfg.Colors)
		}
	}

	sim.GoToGeneration(9)
	sim.Reset(0)
	if !slices.Equal(initial, sim.Cells()) {
		t.Fatal("Reset with config seed not deterministic")
	}
	if sim.Generation() != 1 {
		t.Fatalf("expected generation 1 after Reset, got %d", sim.Generation())
	}

	sim.Reset(777)
	seeded := append([]uint8(nil), sim.Cells()...)
	sim.Reset(777)
	if !slices.Equal(seeded, sim.Cells()) {
		t.Fatal("Reset with explicit seed not deterministic")
	}
	if slices.Equal(initial, seeded) {
		t.Fatal("different seeds should produce different initial fields")
	}
}

func TestResetSeedsTheAnchor(t *testing.T) {
	sim := NewWithConfig(Config{Width: 16, Height: 16, Seed: 5, Density: 0.4, Colors: 3})
	sim.Reset(0)
	start := append([]uint8(nil), sim.Cells()...)
	if len(sim.FirstGeneration()) != sim.Living() {
		t.Fatalf("anchor holds %d cells, %d are alive", len(sim.FirstGeneration()), sim.Living())
	}

	sim.GoToGeneration(12)
	sim.ResetToFirstGeneration()
	if !slices.Equal(start, sim.Cells()) {
		t.Fatal("seeded cells were not restored by ResetToFirstGeneration")
	}
}

func TestPlaceWrapsAroundEdges(t *testing.T) {
	sim := New(6, 6)
	if n := sim.Place(Point{Row: 5, Col: 5}, Glider, Orange); n != len(Glider) {
		t.Fatalf("placed %d cells, expected %d", n, len(Glider))
	}
	for _, p := range []Point{{5, 0}, {0, 1}, {1, 5}, {1, 0}, {1, 1}} {
		if sim.ColorAt(p.Row, p.Col) != Orange {
			t.Fatalf("expected orange glider cell at %v", p)
		}
	}
	if got := len(sim.EditsAt(1)); got != len(Glider) {
		t.Fatalf("expected %d journaled edits, got %d", len(Glider), got)
	}
}

func TestGliderTravelsAcrossTorus(t *testing.T) {
	sim := New(8, 8)
	sim.Place(Point{}, Glider, Green)
	start := append([]uint8(nil), sim.Cells()...)

	// A glider moves one cell diagonally every four generations, so after
	// 4*8 generations it is back where it started on an 8x8 torus.
	sim.GoToGeneration(1 + 4*8)
	if !slices.Equal(start, sim.Cells()) {
		t.Fatal("glider did not wrap back to its starting position")
	}
}
