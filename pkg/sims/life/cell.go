package life

// Color is a palette index. Dead is reserved for cells that are not alive.
type Color uint8

const (
	Dead Color = iota
	Red
	Green
	Blue
	Yellow
	Pink
	Cyan
	Orange
	Magenta
)

// DefaultColor is used when a cell is revived without a usable color.
const DefaultColor = Red

// NumColors is the number of living colors in the palette.
const NumColors = int(Magenta)

// Point identifies a cell by row and column.
type Point struct {
	Row, Col int
}

// Cell is a single grid position with a life state and a color.
type Cell struct {
	row, col int
	alive    bool
	color    Color
}

func newCell(row, col int) Cell {
	return Cell{row: row, col: col, color: Dead}
}

// Row returns the cell's row.
func (c Cell) Row() int { return c.row }

// Col returns the cell's column.
func (c Cell) Col() int { return c.col }

// Point returns the cell's coordinate.
func (c Cell) Point() Point { return Point{Row: c.row, Col: c.col} }

// Alive reports whether the cell is alive.
func (c Cell) Alive() bool { return c.alive }

// Color returns the cell's color, Dead for dead cells.
func (c Cell) Color() Color { return c.color }

// set updates the state and keeps dead cells on the Dead color.
func (c *Cell) set(alive bool, color Color) {
	if !alive {
		c.alive, c.color = false, Dead
		return
	}
	if color == Dead {
		color = DefaultColor
	}
	c.alive, c.color = true, color
}
