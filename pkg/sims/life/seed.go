package life

import random "colorlife/pkg/core"

// Glider is the standard south-east travelling glider, relative to its top-left corner.
var Glider = []Point{{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}}

// Blinker is a period-2 oscillator in its horizontal phase.
var Blinker = []Point{{0, 0}, {0, 1}, {0, 2}}

// seedRandom revives cells through the edit path so they become part of the
// current generation's journal (and the anchor at generation 1).
func (s *Simulation) seedRandom(seed int64) {
	rng := random.NewRNG(seed)
	colors := s.cfg.Colors
	if colors <= 0 {
		colors = 1
	}
	if colors > NumColors {
		colors = NumColors
	}
	for row := 0; row < s.field.Height(); row++ {
		for col := 0; col < s.field.Width(); col++ {
			if !rng.Chance(s.cfg.Density) {
				continue
			}
			s.edit(row, col, true, Color(1+rng.Uint8n(uint8(colors))))
		}
	}
}

// Place revives pattern offset by origin, wrapping around the field edges,
// and returns the number of cells revived. It is recorded like any manual edit.
func (s *Simulation) Place(origin Point, pattern []Point, color Color) int {
	s.mu.Lock()
	placed := 0
	for _, p := range pattern {
		col, row := s.field.Size().Wrap(origin.Col+p.Col, origin.Row+p.Row)
		if s.edit(row, col, true, color) {
			placed++
		}
	}
	s.mu.Unlock()
	if placed > 0 {
		s.notify()
	}
	return placed
}
