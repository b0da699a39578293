package life

import (
	"sort"
	"sync"

	"colorlife/internal/core"
)

// Edit is a manually introduced cell change.
type Edit struct {
	Point
	Alive bool
	Color Color
}

// Simulation owns a Field and the replay state needed to revisit any
// generation: the living cells of generation 1 and a journal of manual edits
// keyed by the generation that was current when they were made. Rule-driven
// transitions are never journaled; they are recomputed on replay.
type Simulation struct {
	mu sync.Mutex

	cfg        Config
	field      *Field
	generation int
	edits      map[int][]Edit
	anchor     map[Point]Color
	pending    []Point
	display    *core.ByteGrid

	observers []Observer
}

// New returns an empty simulation with the provided dimensions.
func New(width, height int) *Simulation {
	cfg := DefaultConfig()
	cfg.Width = width
	cfg.Height = height
	return NewWithConfig(cfg)
}

// NewWithConfig returns an empty simulation configured from cfg.
func NewWithConfig(cfg Config) *Simulation {
	f := NewField(cfg.Width, cfg.Height)
	cfg.Width, cfg.Height = f.Width(), f.Height()
	return &Simulation{
		cfg:        cfg,
		field:      f,
		generation: 1,
		edits:      map[int][]Edit{},
		anchor:     map[Point]Color{},
		display:    core.NewByteGrid(f.Width(), f.Height()),
	}
}

// ReviveCellAt brings the cell at (row, col) to life with color. It returns
// false without any effect when the coordinate is outside the field.
func (s *Simulation) ReviveCellAt(row, col int, color Color) bool {
	s.mu.Lock()
	ok := s.edit(row, col, true, color)
	s.mu.Unlock()
	if ok {
		s.notify()
	}
	return ok
}

// KillCellAt kills the cell at (row, col). It returns false without any
// effect when the coordinate is outside the field.
func (s *Simulation) KillCellAt(row, col int) bool {
	s.mu.Lock()
	ok := s.edit(row, col, false, Dead)
	s.mu.Unlock()
	if ok {
		s.notify()
	}
	return ok
}

func (s *Simulation) edit(row, col int, alive bool, color Color) bool {
	if !s.field.SetCellAt(row, col, alive, color) {
		return false
	}
	p := Point{Row: row, Col: col}
	stored := s.field.ColorAt(row, col)
	if s.generation == 1 {
		if alive {
			s.anchor[p] = stored
		} else {
			delete(s.anchor, p)
		}
	}
	s.edits[s.generation] = append(s.edits[s.generation], Edit{Point: p, Alive: alive, Color: stored})
	s.pending = append(s.pending, p)
	return true
}

// LoadNextGeneration advances by one generation and replays the manual edits
// journaled for the generation that becomes current.
func (s *Simulation) LoadNextGeneration() {
	s.mu.Lock()
	s.loadNext()
	s.mu.Unlock()
	s.notify()
}

func (s *Simulation) loadNext() {
	s.pending = append(s.pending, s.field.Step()...)
	s.generation++
	for _, e := range s.edits[s.generation] {
		s.field.SetCellAt(e.Row, e.Col, e.Alive, e.Color)
		s.pending = append(s.pending, e.Point)
	}
}

// ResetToFirstGeneration restores the living cells of generation 1 and makes
// it current again. The edit journal is kept.
func (s *Simulation) ResetToFirstGeneration() {
	s.mu.Lock()
	s.resetToFirst()
	s.mu.Unlock()
	s.notify()
}

func (s *Simulation) resetToFirst() {
	keep := make(map[Point]struct{}, len(s.anchor))
	for p := range s.anchor {
		keep[p] = struct{}{}
	}
	s.pending = append(s.pending, s.field.KillAllExcept(keep)...)
	for _, e := range s.firstGeneration() {
		c, _ := s.field.CellAt(e.Row, e.Col)
		if c.alive && c.color == e.Color {
			continue
		}
		s.field.SetCellAt(e.Row, e.Col, true, e.Color)
		s.pending = append(s.pending, e.Point)
	}
	s.generation = 1
}

// ResetGameOfLife kills every cell and forgets the starting configuration
// and all journaled edits.
func (s *Simulation) ResetGameOfLife() {
	s.mu.Lock()
	s.resetAll()
	s.mu.Unlock()
	s.notify()
}

func (s *Simulation) resetAll() {
	s.pending = append(s.pending, s.field.KillAll()...)
	s.anchor = map[Point]Color{}
	s.edits = map[int][]Edit{}
	s.generation = 1
}

// ResetOrClear resets to generation 1 when a later generation is current and
// clears the whole game otherwise.
func (s *Simulation) ResetOrClear() {
	s.mu.Lock()
	if s.generation > 1 {
		s.resetToFirst()
	} else {
		s.resetAll()
	}
	s.mu.Unlock()
	s.notify()
}

// GoToGeneration makes generation n current. Going backwards replays from
// generation 1, so every visit to n yields the same cells. Non-positive n and
// the current generation are ignored.
func (s *Simulation) GoToGeneration(n int) {
	s.mu.Lock()
	if n <= 0 || n == s.generation {
		s.mu.Unlock()
		return
	}
	s.goTo(n)
	s.mu.Unlock()
	s.notify()
}

func (s *Simulation) goTo(n int) {
	if n < s.generation {
		s.resetToFirst()
	}
	for s.generation < n {
		s.loadNext()
	}
}

// DrainPendingUpdates returns the coordinates changed since the previous
// call and empties the queue. A coordinate may appear more than once.
func (s *Simulation) DrainPendingUpdates() []Point {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.pending
	s.pending = nil
	return out
}

// Generation returns the current generation number, starting at 1.
func (s *Simulation) Generation() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation
}

// Width returns the number of columns.
func (s *Simulation) Width() int { return s.field.Width() }

// Height returns the number of rows.
func (s *Simulation) Height() int { return s.field.Height() }

// Living returns the number of living cells.
func (s *Simulation) Living() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.field.Living()
}

// Coverage returns the percentage of living cells truncated to one decimal.
func (s *Simulation) Coverage() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.field.Coverage()
}

// AliveAt reports whether the cell at (row, col) is alive.
func (s *Simulation) AliveAt(row, col int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.field.AliveAt(row, col)
}

// ColorAt returns the color at (row, col), Dead for dead or out-of-range cells.
func (s *Simulation) ColorAt(row, col int) Color {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.field.ColorAt(row, col)
}

// EditsAt returns a copy of the edits journaled for generation gen.
func (s *Simulation) EditsAt(gen int) []Edit {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Edit(nil), s.edits[gen]...)
}

// EditCount returns the total number of journaled edits.
func (s *Simulation) EditCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, list := range s.edits {
		n += len(list)
	}
	return n
}

// FirstGeneration returns the living cells of generation 1 in row-major order.
func (s *Simulation) FirstGeneration() []Edit {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.firstGeneration()
}

func (s *Simulation) firstGeneration() []Edit {
	out := make([]Edit, 0, len(s.anchor))
	for p, c := range s.anchor {
		out = append(out, Edit{Point: p, Alive: true, Color: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}
