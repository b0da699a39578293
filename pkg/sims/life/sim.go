package life

import "colorlife/internal/core"

var _ core.Sim = (*Simulation)(nil)

// Name returns the simulation identifier.
func (s *Simulation) Name() string { return "life" }

// Size returns the grid dimensions.
func (s *Simulation) Size() core.Size { return s.field.Size() }

// Reset clears the game and seeds generation 1 at random. A zero seed uses
// the configured one.
func (s *Simulation) Reset(seed int64) {
	if seed == 0 {
		seed = s.cfg.Seed
	}
	s.mu.Lock()
	s.resetAll()
	s.seedRandom(seed)
	s.mu.Unlock()
	s.notify()
}

// Step advances the simulation by one generation.
func (s *Simulation) Step() { s.LoadNextGeneration() }

// Cells exposes the current colors in row-major order, 0 for dead cells. The
// buffer is owned by the simulation and refreshed on every call.
func (s *Simulation) Cells() []uint8 {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.field.cells {
		s.display.Cells()[i] = uint8(s.field.cells[i].color)
	}
	return s.display.Cells()
}
