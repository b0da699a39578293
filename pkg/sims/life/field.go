package life

import (
	"fmt"

	"colorlife/internal/core"
)

// Field is a fixed-size toroidal grid of cells.
type Field struct {
	size   core.Size
	cells  []Cell
	living int
}

type change struct {
	at    Point
	alive bool
	color Color
}

// NewField allocates an empty field. Non-positive dimensions are clamped to 1.
func NewField(width, height int) *Field {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	f := &Field{size: core.Size{W: width, H: height}, cells: make([]Cell, width*height)}
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			f.cells[f.index(row, col)] = newCell(row, col)
		}
	}
	return f
}

// Width returns the number of columns.
func (f *Field) Width() int { return f.size.W }

// Height returns the number of rows.
func (f *Field) Height() int { return f.size.H }

// Size returns the field dimensions.
func (f *Field) Size() core.Size { return f.size }

// Living returns the number of living cells.
func (f *Field) Living() int { return f.living }

// Contains reports whether (row, col) is inside the field.
func (f *Field) Contains(row, col int) bool { return f.size.Contains(col, row) }

func (f *Field) index(row, col int) int { return row*f.size.W + col }

// CellAt returns a copy of the cell at (row, col).
func (f *Field) CellAt(row, col int) (Cell, bool) {
	if !f.Contains(row, col) {
		return Cell{}, false
	}
	return f.cells[f.index(row, col)], true
}

// AliveAt reports whether the cell at (row, col) is alive. Out of bounds is dead.
func (f *Field) AliveAt(row, col int) bool {
	c, ok := f.CellAt(row, col)
	return ok && c.alive
}

// ColorAt returns the color at (row, col), Dead when out of bounds.
func (f *Field) ColorAt(row, col int) Color {
	c, ok := f.CellAt(row, col)
	if !ok {
		return Dead
	}
	return c.color
}

// SetCellAt updates the cell at (row, col). It returns false and leaves the
// field untouched when the coordinate is outside the grid.
func (f *Field) SetCellAt(row, col int, alive bool, color Color) bool {
	if !f.Contains(row, col) {
		return false
	}
	f.setAt(f.index(row, col), alive, color)
	return true
}

func (f *Field) setAt(idx int, alive bool, color Color) {
	c := &f.cells[idx]
	was := c.alive
	c.set(alive, color)
	switch {
	case !was && c.alive:
		f.living++
	case was && !c.alive:
		f.living--
	}
}

// Step applies one generation of the color-inheriting Conway rules and
// returns the toggled coordinates in row-major order. All decisions are made
// against the grid as it was before the call.
func (f *Field) Step() []Point {
	w, h := f.size.W, f.size.H
	var changes []change
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			alive := f.cells[f.index(row, col)].alive
			n := f.NeighborCount(row, col)
			switch {
			case !alive && n == 3:
				changes = append(changes, change{at: Point{row, col}, alive: true, color: f.dominantColor(row, col)})
			case alive && (n < 2 || n > 3):
				changes = append(changes, change{at: Point{row, col}})
			}
		}
	}

	toggled := make([]Point, 0, len(changes))
	for _, ch := range changes {
		f.setAt(f.index(ch.at.Row, ch.at.Col), ch.alive, ch.color)
		toggled = append(toggled, ch.at)
	}
	return toggled
}

// KillAll kills every living cell and returns their coordinates.
func (f *Field) KillAll() []Point {
	return f.KillAllExcept(nil)
}

// KillAllExcept kills every living cell whose coordinate is not in keep.
func (f *Field) KillAllExcept(keep map[Point]struct{}) []Point {
	var killed []Point
	for i := range f.cells {
		c := &f.cells[i]
		if !c.alive {
			continue
		}
		if _, ok := keep[c.Point()]; ok {
			continue
		}
		f.setAt(i, false, Dead)
		killed = append(killed, c.Point())
	}
	return killed
}

// Coverage returns the percentage of living cells truncated to one decimal.
func (f *Field) Coverage() float64 {
	permille := f.living * 1000 / f.size.Area()
	return float64(permille) / 10
}

// NeighborCount returns the number of living cells among the eight toroidal
// neighbours of (row, col), or 0 when the coordinate is outside the grid. A
// wrapped coordinate that lands on the cell itself is not counted.
func (f *Field) NeighborCount(row, col int) int {
	if !f.Contains(row, col) {
		return 0
	}
	count := 0
	f.eachNeighbor(row, col, func(c *Cell) {
		if c.alive {
			count++
		}
	})
	return count
}

func (f *Field) eachNeighbor(row, col int, fn func(c *Cell)) {
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			nc, nr := f.size.Wrap(col+dc, row+dr)
			if nr == row && nc == col {
				continue
			}
			fn(&f.cells[f.index(nr, nc)])
		}
	}
}

// dominantColor returns the most frequent color among the living neighbours
// of (row, col). Ties go to the lowest color value.
func (f *Field) dominantColor(row, col int) Color {
	var counts [256]int
	f.eachNeighbor(row, col, func(c *Cell) {
		if c.alive {
			counts[c.color]++
		}
	})
	best, bestN := Dead, 0
	for color := 1; color < len(counts); color++ {
		if counts[color] > bestN {
			best, bestN = Color(color), counts[color]
		}
	}
	return best
}

// checkLiving panics when the cached living count disagrees with the grid.
func (f *Field) checkLiving() {
	n := 0
	for i := range f.cells {
		if f.cells[i].alive {
			n++
		}
	}
	if n != f.living {
		panic(fmt.Sprintf("life: living count %d does not match %d alive cells", f.living, n))
	}
}
