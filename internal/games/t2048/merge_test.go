package t2048

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/board"
)

func TestMoveAndMergeEqual(t *testing.T) {
	tests := []struct {
		name     string
		input    []board.Maybe[int]
		expected []int
	}{
		{"no double merge", maybes(2, 2, 4), []int{4, 4}},
		{"gap then pair", maybes(2, 0, 2, 2), []int{4, 2}},
		{"lone tile", maybes(0, 2, 0), []int{2}},
		{"two pairs", maybes(2, 2, 2, 2), []int{4, 4}},
		{"odd run", maybes(2, 2, 2), []int{4, 2}},
		{"merge after plain tile", maybes(8, 4, 4), []int{8, 8}},
		{"merged four stays", maybes(4, 4, 8), []int{8, 8}},
		{"no merge possible", maybes(2, 4, 8, 16), []int{2, 4, 8, 16}},
		{"gaps everywhere", maybes(0, 0, 2, 0, 0, 2), []int{4}},
		{"all empty", maybes(0, 0, 0, 0), []int{}},
		{"empty line", maybes(), []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := MoveAndMergeEqual(tt.input, Double)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("MoveAndMergeEqual(%v) = %v, want %v", tt.input, result, tt.expected)
			}
			if len(result) > len(tt.input) {
				t.Errorf("result longer than input: %d > %d", len(result), len(tt.input))
			}
		})
	}
}

func TestMoveAndMergeEqualCustomRule(t *testing.T) {
	line := []board.Maybe[string]{board.Some("a"), board.Some("a"), board.None[string](), board.Some("b")}
	concat := func(s string) string { return s + s }

	result := MoveAndMergeEqual(line, concat)

	want := []string{"aa", "b"}
	if !reflect.DeepEqual(result, want) {
		t.Errorf("MoveAndMergeEqual = %v, want %v", result, want)
	}
}

func TestMoveAndMergeEqualLeavesInputAlone(t *testing.T) {
	input := maybes(2, 2, 0, 4)
	orig := append([]board.Maybe[int](nil), input...)

	MoveAndMergeEqual(input, Double)

	if !reflect.DeepEqual(input, orig) {
		t.Errorf("input modified: %v, want %v", input, orig)
	}
}

func TestLineOrder(t *testing.T) {
	g := board.NewGrid(4)

	tests := []struct {
		dir  board.Direction
		k    int
		want []board.Cell
	}{
		{board.Left, 2, []board.Cell{{I: 2, J: 1}, {I: 2, J: 2}, {I: 2, J: 3}, {I: 2, J: 4}}},
		{board.Right, 2, []board.Cell{{I: 2, J: 4}, {I: 2, J: 3}, {I: 2, J: 2}, {I: 2, J: 1}}},
		{board.Up, 3, []board.Cell{{I: 1, J: 3}, {I: 2, J: 3}, {I: 3, J: 3}, {I: 4, J: 3}}},
		{board.Down, 3, []board.Cell{{I: 4, J: 3}, {I: 3, J: 3}, {I: 2, J: 3}, {I: 1, J: 3}}},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			got := Line(g, tt.dir, tt.k)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Line(%v, %d) = %v, want %v", tt.dir, tt.k, got, tt.want)
			}
		})
	}
}

func TestMoveValues(t *testing.T) {
	start := [][]int{
		{2, 2, 0, 0},
		{4, 0, 4, 0},
		{2, 2, 2, 2},
		{0, 0, 0, 2},
	}

	tests := []struct {
		dir      board.Direction
		expected [][]int
	}{
		{board.Left, [][]int{
			{4, 0, 0, 0},
			{8, 0, 0, 0},
			{4, 4, 0, 0},
			{2, 0, 0, 0},
		}},
		{board.Right, [][]int{
			{0, 0, 0, 4},
			{0, 0, 0, 8},
			{0, 0, 4, 4},
			{0, 0, 0, 2},
		}},
		{board.Up, [][]int{
			{2, 4, 4, 4},
			{4, 0, 2, 0},
			{2, 0, 0, 0},
			{0, 0, 0, 0},
		}},
		{board.Down, [][]int{
			{0, 0, 0, 0},
			{2, 0, 0, 0},
			{4, 0, 4, 0},
			{2, 4, 2, 4},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			b := boardFrom(start)
			moved := MoveValues(b, tt.dir, Double)

			if !moved {
				t.Errorf("MoveValues(%v) should report movement", tt.dir)
			}
			if got := rowsOf(b); !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("MoveValues(%v):\ngot  %v\nwant %v", tt.dir, got, tt.expected)
			}
		})
	}
}

func TestMoveValuesNoChange(t *testing.T) {
	rows := [][]int{
		{2, 4, 0, 0},
		{8, 0, 0, 0},
		{0, 0, 0, 0},
		{16, 2, 0, 0},
	}
	b := boardFrom(rows)

	if MoveValues(b, board.Left, Double) {
		t.Error("Left on a packed board should not move")
	}
	if !b.Equal(boardFrom(rows)) {
		t.Errorf("board changed on a no-op move:\n%v", b)
	}
}

func TestMoveValuesProcessesEveryLine(t *testing.T) {
	// The first column moves, so the last one must still be processed.
	b := boardFrom([][]int{
		{0, 0, 0},
		{2, 0, 4},
		{0, 0, 0},
	})

	if !MoveValues(b, board.Up, Double) {
		t.Fatal("Up should move")
	}
	want := [][]int{
		{2, 0, 4},
		{0, 0, 0},
		{0, 0, 0},
	}
	if got := rowsOf(b); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}
