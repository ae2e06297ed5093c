package t2048

import (
	"slices"

	"github.com/vovakirdan/tui-2048/internal/board"
)

// Line returns the k-th row or column of g ordered toward dir.
// Index 0 of the result is the cell on the edge tiles slide toward.
func Line(g board.Grid, dir board.Direction, k int) []board.Cell {
	span := board.Ascending(g.Width())
	switch dir {
	case board.Left:
		return g.Row(k, span)
	case board.Right:
		return g.Row(k, span.Reversed())
	case board.Up:
		return g.Column(span, k)
	case board.Down:
		return g.Column(span.Reversed(), k)
	default:
		panic("t2048: unknown direction " + dir.String())
	}
}

// MoveValues slides and merges every line of b toward dir.
// Reports whether any cell changed. All lines are processed even after the
// first one moves.
func MoveValues[V comparable](b *board.Board[V], dir board.Direction, double func(V) V) bool {
	moved := false
	for k := 1; k <= b.Width(); k++ {
		if moveLine(b, Line(b.Grid, dir, k), double) {
			moved = true
		}
	}
	return moved
}

// moveLine applies the merge rule to one line and writes it back if it
// changed.
func moveLine[V comparable](b *board.Board[V], cells []board.Cell, double func(V) V) bool {
	before := make([]board.Maybe[V], len(cells))
	for k, c := range cells {
		before[k] = b.Get(c)
	}

	after := make([]board.Maybe[V], len(cells))
	for k, v := range MoveAndMergeEqual(before, double) {
		after[k] = board.Some(v)
	}

	if slices.Equal(before, after) {
		return false
	}

	for k, c := range cells {
		b.Set(c, after[k])
	}
	return true
}
