package t2048

import (
	"fmt"

	"github.com/vovakirdan/tui-2048/internal/board"
)

const (
	// DefaultWidth is the side length of the classic board.
	DefaultWidth = 4
	// DefaultTarget is the tile that wins the classic game.
	DefaultTarget = 2048
)

// EngineConfig sets up an Engine. Zero fields take the defaults, except that
// NoTarget disables winning altogether.
type EngineConfig struct {
	Width    int
	Target   int
	NoTarget bool
}

// Engine is the 2048 state machine: a live board, an undo stack of board
// snapshots, and the spawner that places new tiles.
//
// An Engine is not safe for concurrent use. Each player owns one.
type Engine struct {
	board   *board.Board[int]
	history []*board.Board[int]
	spawner Spawner
	target  int
}

// NewEngine creates an engine with an empty board. Call Initialize before
// playing.
func NewEngine(cfg EngineConfig, spawner Spawner) *Engine {
	width := cfg.Width
	if width == 0 {
		width = DefaultWidth
	}
	target := cfg.Target
	if target == 0 {
		target = DefaultTarget
	}
	if cfg.NoTarget {
		target = 0
	}

	return &Engine{
		board:   board.New[int](width),
		spawner: spawner,
		target:  target,
	}
}

// Initialize clears the board and history, spawns two tiles and records the
// starting position.
func (e *Engine) Initialize() {
	clear(e.history)
	e.history = e.history[:0]
	e.board.Clear()

	e.spawn()
	e.spawn()

	e.push()
}

// CanMove reports whether the board has at least one empty cell.
// A full board may still have merges left; see HasLegalMove.
func (e *Engine) CanMove() bool {
	return e.board.Any(board.Maybe[int].IsNone)
}

// HasLegalMove reports whether some direction would change the board:
// an empty cell exists or two orthogonal neighbours hold the same value.
func (e *Engine) HasLegalMove() bool {
	if e.CanMove() {
		return true
	}
	for _, c := range e.board.AllCells() {
		v := e.board.Get(c)
		for _, d := range board.Directions {
			if n, ok := e.board.Neighbour(c, d); ok && e.board.Get(n) == v {
				return true
			}
		}
	}
	return false
}

// HasWon reports whether any tile equals the target.
// Always false when the engine has no target.
func (e *Engine) HasWon() bool {
	if e.target == 0 {
		return false
	}
	return e.board.Any(func(v board.Maybe[int]) bool { return v.Is(e.target) })
}

// ProcessMove slides the board toward dir. If anything moved, one new tile
// is spawned and the previous position becomes undoable. A move that changes
// nothing leaves both the board and the history untouched.
func (e *Engine) ProcessMove(dir board.Direction) bool {
	e.push()
	if !MoveValues(e.board, dir, Double) {
		e.pop()
		return false
	}
	e.spawn()
	return true
}

// Undo restores the most recent snapshot. Returns false if there is none.
func (e *Engine) Undo() bool {
	if len(e.history) == 0 {
		return false
	}
	e.board.SetEntireBoardFrom(e.pop())
	return true
}

// Get returns the tile at row i, column j. Coordinates outside the board panic.
func (e *Engine) Get(i, j int) board.Maybe[int] {
	return e.board.At(i, j)
}

// Width returns the board side length.
func (e *Engine) Width() int {
	return e.board.Width()
}

// Target returns the winning tile, or 0 when there is none.
func (e *Engine) Target() int {
	return e.target
}

// HistoryLen returns the number of snapshots on the undo stack.
func (e *Engine) HistoryLen() int {
	return len(e.history)
}

// MaxTile returns the highest tile on the board, 0 when empty.
func (e *Engine) MaxTile() int {
	maxVal := 0
	for _, c := range e.board.AllCells() {
		if v := e.board.Get(c).OrElse(0); v > maxVal {
			maxVal = v
		}
	}
	return maxVal
}

// Board returns a copy of the live board.
func (e *Engine) Board() *board.Board[int] {
	return e.board.Copy()
}

// spawn asks the spawner for one tile. A spawner that targets an occupied or
// off-board cell panics.
func (e *Engine) spawn() {
	c, v, ok := e.spawner.NextValue(e.board)
	if !ok {
		return
	}
	if !e.board.Contains(c) {
		panic(fmt.Sprintf("t2048: spawner chose %v outside the board", c))
	}
	if e.board.Get(c).IsSome() {
		panic(fmt.Sprintf("t2048: spawner chose occupied cell %v", c))
	}
	e.board.Set(c, board.Some(v))
}

func (e *Engine) push() {
	e.history = append(e.history, e.board.Copy())
}

func (e *Engine) pop() *board.Board[int] {
	last := e.history[len(e.history)-1]
	e.history[len(e.history)-1] = nil
	e.history = e.history[:len(e.history)-1]
	return last
}
