package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Area returns the number of cells covered by the size.
func (s Size) Area() int { return s.W * s.H }

// Contains reports whether (x, y) lies inside the grid.
func (s Size) Contains(x, y int) bool {
	return x >= 0 && x < s.W && y >= 0 && y < s.H
}

// Wrap applies toroidal wrapping to the provided coordinates.
func (s Size) Wrap(x, y int) (int, int) {
	x = (x%s.W + s.W) % s.W
	y = (y%s.H + s.H) % s.H
	return x, y
}

// Sim defines the minimal contract the host layer drives a cellular automaton through.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}
