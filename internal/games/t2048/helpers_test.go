package t2048

import (
	"github.com/vovakirdan/tui-2048/internal/board"
)

// maybes converts ints to a line, 0 meaning empty.
func maybes(vals ...int) []board.Maybe[int] {
	line := make([]board.Maybe[int], len(vals))
	for k, v := range vals {
		if v != 0 {
			line[k] = board.Some(v)
		}
	}
	return line
}

// boardFrom builds a board from rows, 0 meaning empty.
func boardFrom(rows [][]int) *board.Board[int] {
	b := board.New[int](len(rows))
	for i, row := range rows {
		for j, v := range row {
			if v != 0 {
				b.Set(b.Cell(i+1, j+1), board.Some(v))
			}
		}
	}
	return b
}

// rowsOf dumps a board as rows, 0 meaning empty.
func rowsOf(b *board.Board[int]) [][]int {
	rows := make([][]int, b.Width())
	for i := range rows {
		rows[i] = make([]int, b.Width())
		for j := range rows[i] {
			rows[i][j] = b.At(i+1, j+1).OrElse(0)
		}
	}
	return rows
}

// queueSpawner places 2s on the given cells in order, then stops.
func queueSpawner(cells ...board.Cell) (Spawner, *int) {
	calls := 0
	return SpawnerFunc(func(*board.Board[int]) (board.Cell, int, bool) {
		if calls >= len(cells) {
			return board.Cell{}, 0, false
		}
		c := cells[calls]
		calls++
		return c, 2, true
	}), &calls
}
