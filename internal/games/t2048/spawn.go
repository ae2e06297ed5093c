package t2048

import (
	"math/rand"

	"github.com/vovakirdan/tui-2048/internal/board"
)

// Spawner decides where the next tile appears and what it holds.
// It returns false when the board has no empty cell. The returned cell must
// be empty.
type Spawner interface {
	NextValue(b *board.Board[int]) (board.Cell, int, bool)
}

// SpawnerFunc adapts a plain function to Spawner.
type SpawnerFunc func(b *board.Board[int]) (board.Cell, int, bool)

// NextValue calls f.
func (f SpawnerFunc) NextValue(b *board.Board[int]) (board.Cell, int, bool) {
	return f(b)
}

// DefaultFourProbability is the chance of a spawned tile being 4.
const DefaultFourProbability = 0.10

// RandomSpawner places a 2 (or, with FourProbability, a 4) on a uniformly
// chosen empty cell. The same seed yields the same sequence of spawns.
type RandomSpawner struct {
	rng             *rand.Rand
	FourProbability float64
}

// NewRandomSpawner creates a spawner seeded with seed.
func NewRandomSpawner(seed int64, fourProbability float64) *RandomSpawner {
	return &RandomSpawner{
		rng:             rand.New(rand.NewSource(seed)),
		FourProbability: fourProbability,
	}
}

// NextValue picks an empty cell and a value.
func (s *RandomSpawner) NextValue(b *board.Board[int]) (board.Cell, int, bool) {
	empty := b.Filter(board.Maybe[int].IsNone)
	if len(empty) == 0 {
		return board.Cell{}, 0, false
	}

	cell := empty[s.rng.Intn(len(empty))]

	value := 2
	if s.rng.Float64() < s.FourProbability {
		value = 4
	}
	return cell, value, true
}

// ScriptedSpawner always places Value in the first empty cell, scanning rows
// top to bottom. Used for replays and tests where spawns must be predictable.
type ScriptedSpawner struct {
	Value int
}

// NextValue returns the first empty cell.
func (s ScriptedSpawner) NextValue(b *board.Board[int]) (board.Cell, int, bool) {
	c, ok := b.Find(board.Maybe[int].IsNone)
	if !ok {
		return board.Cell{}, 0, false
	}
	return c, s.Value, true
}
