package board

import (
	"fmt"
	"strings"
)

// Board assigns an optional value to every cell of a Grid.
// Cells are stored in row-major order and are never missing, only empty.
type Board[V comparable] struct {
	Grid
	values []Maybe[V]
}

// New creates an empty board of the given width.
func New[V comparable](width int) *Board[V] {
	g := NewGrid(width)
	return &Board[V]{
		Grid:   g,
		values: make([]Maybe[V], width*width),
	}
}

// mustIndex returns the storage offset of c or panics if c is off the board.
func (b *Board[V]) mustIndex(c Cell) int {
	if !b.Contains(c) {
		panic(fmt.Sprintf("board: cell %v outside %dx%d board", c, b.width, b.width))
	}
	return b.index(c)
}

// Get returns the value at c's position.
func (b *Board[V]) Get(c Cell) Maybe[V] {
	return b.values[b.mustIndex(c)]
}

// At is Get for raw coordinates.
func (b *Board[V]) At(i, j int) Maybe[V] {
	return b.Get(b.Cell(i, j))
}

// Set overwrites the value at c's position.
func (b *Board[V]) Set(c Cell, v Maybe[V]) {
	b.values[b.mustIndex(c)] = v
}

// Filter returns the cells whose value satisfies pred.
func (b *Board[V]) Filter(pred func(Maybe[V]) bool) []Cell {
	var cells []Cell
	for _, c := range b.AllCells() {
		if pred(b.values[b.index(c)]) {
			cells = append(cells, c)
		}
	}
	return cells
}

// Find returns the first cell (row-major) whose value satisfies pred.
func (b *Board[V]) Find(pred func(Maybe[V]) bool) (Cell, bool) {
	for _, c := range b.AllCells() {
		if pred(b.values[b.index(c)]) {
			return c, true
		}
	}
	return Cell{}, false
}

// Any reports whether some value satisfies pred.
func (b *Board[V]) Any(pred func(Maybe[V]) bool) bool {
	for _, v := range b.values {
		if pred(v) {
			return true
		}
	}
	return false
}

// All reports whether every value satisfies pred.
func (b *Board[V]) All(pred func(Maybe[V]) bool) bool {
	for _, v := range b.values {
		if !pred(v) {
			return false
		}
	}
	return true
}

// Clear empties every cell.
func (b *Board[V]) Clear() {
	clear(b.values)
}

// Copy returns an independent board with the same values.
func (b *Board[V]) Copy() *Board[V] {
	nb := New[V](b.width)
	nb.SetEntireBoardFrom(b)
	return nb
}

// SetEntireBoardFrom overwrites every value from other.
// Boards of different widths panic.
func (b *Board[V]) SetEntireBoardFrom(other *Board[V]) {
	if other.width != b.width {
		panic(fmt.Sprintf("board: width mismatch %d != %d", other.width, b.width))
	}
	copy(b.values, other.values)
}

// Equal reports whether both boards have the same width and values.
func (b *Board[V]) Equal(other *Board[V]) bool {
	if other == nil || other.width != b.width {
		return false
	}
	for k, v := range b.values {
		if other.values[k] != v {
			return false
		}
	}
	return true
}

// String renders one row per line, empty cells as ".".
func (b *Board[V]) String() string {
	var sb strings.Builder
	for i := 1; i <= b.width; i++ {
		if i > 1 {
			sb.WriteByte('\n')
		}
		for j := 1; j <= b.width; j++ {
			if j > 1 {
				sb.WriteByte(' ')
			}
			sb.WriteString(b.values[b.index(Cell{I: i, J: j})].String())
		}
	}
	return sb.String()
}
