// Package board provides the square coordinate space and the mutable value
// store that the 2048 engine plays on.
//
// Coordinates are 1-based. A cell (I, J) is row I (counted from the top) and
// column J (counted from the left).
package board

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownDirection is returned by ParseDirection for unrecognised input.
var ErrUnknownDirection = errors.New("board: unknown direction")

// Cell identifies one grid position.
type Cell struct {
	I int // Row, 1 at the top
	J int // Column, 1 at the left
}

// String returns "(i,j)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.I, c.J)
}

// Direction is one of the four move directions.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every direction in declaration order.
var Directions = []Direction{Up, Down, Left, Right}

// Delta returns the (di, dj) offset of one step in this direction.
func (d Direction) Delta() (di, dj int) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	default:
		return 0, 0
	}
}

// String returns the lower-case direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// ParseDirection accepts full names, initials and vim keys.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u", "k":
		return Up, nil
	case "down", "d", "j":
		return Down, nil
	case "left", "l", "h":
		return Left, nil
	case "right", "r":
		return Right, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}

// Span is an inclusive index range. A span with From > To runs backwards.
type Span struct {
	From int
	To   int
}

// Ascending returns the span 1..n.
func Ascending(n int) Span {
	return Span{From: 1, To: n}
}

// Reversed returns the same indices in the opposite order.
func (s Span) Reversed() Span {
	return Span{From: s.To, To: s.From}
}

// Indices expands the span in order.
func (s Span) Indices() []int {
	step := 1
	n := s.To - s.From
	if n < 0 {
		step = -1
		n = -n
	}
	out := make([]int, 0, n+1)
	for k := s.From; ; k += step {
		out = append(out, k)
		if k == s.To {
			break
		}
	}
	return out
}

// Grid is the W×W coordinate space. It holds no values.
type Grid struct {
	width int
}

// NewGrid creates a grid of the given width. Panics if width < 1.
func NewGrid(width int) Grid {
	if width < 1 {
		panic(fmt.Sprintf("board: invalid width %d", width))
	}
	return Grid{width: width}
}

// Width returns the side length.
func (g Grid) Width() int {
	return g.width
}

// Contains reports whether c lies inside the grid.
func (g Grid) Contains(c Cell) bool {
	return c.I >= 1 && c.I <= g.width && c.J >= 1 && c.J <= g.width
}

// CellAt returns the cell at (i, j), or false if it is outside the grid.
func (g Grid) CellAt(i, j int) (Cell, bool) {
	c := Cell{I: i, J: j}
	if !g.Contains(c) {
		return Cell{}, false
	}
	return c, true
}

// Cell returns the cell at (i, j). The caller must have checked bounds;
// out-of-range coordinates panic.
func (g Grid) Cell(i, j int) Cell {
	c, ok := g.CellAt(i, j)
	if !ok {
		panic(fmt.Sprintf("board: cell (%d,%d) outside %dx%d grid", i, j, g.width, g.width))
	}
	return c
}

// AllCells returns all W² cells in row-major order.
func (g Grid) AllCells() []Cell {
	cells := make([]Cell, 0, g.width*g.width)
	for i := 1; i <= g.width; i++ {
		for j := 1; j <= g.width; j++ {
			cells = append(cells, Cell{I: i, J: j})
		}
	}
	return cells
}

// Row returns the cells of row i at the columns in js, in span order.
// Columns outside the grid are skipped.
func (g Grid) Row(i int, js Span) []Cell {
	var cells []Cell
	for _, j := range js.Indices() {
		if c, ok := g.CellAt(i, j); ok {
			cells = append(cells, c)
		}
	}
	return cells
}

// Column returns the cells of column j at the rows in is, in span order.
// Rows outside the grid are skipped.
func (g Grid) Column(is Span, j int) []Cell {
	var cells []Cell
	for _, i := range is.Indices() {
		if c, ok := g.CellAt(i, j); ok {
			cells = append(cells, c)
		}
	}
	return cells
}

// Neighbour returns the adjacent cell in direction d, or false at the edge.
func (g Grid) Neighbour(c Cell, d Direction) (Cell, bool) {
	di, dj := d.Delta()
	if di == 0 && dj == 0 {
		return Cell{}, false
	}
	return g.CellAt(c.I+di, c.J+dj)
}

// index converts a cell to its row-major offset.
func (g Grid) index(c Cell) int {
	return (c.I-1)*g.width + (c.J - 1)
}
