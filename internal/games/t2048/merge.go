package t2048

import "github.com/vovakirdan/tui-2048/internal/board"

// MoveAndMergeEqual compacts one line toward index 0 and merges equal
// neighbours. Empty entries are dropped. A value produced by a merge never
// merges again in the same pass, so [2, 2, 4] becomes [4, 4], not [8].
//
// The result is never longer than line; callers pad it back to width.
func MoveAndMergeEqual[V comparable](line []board.Maybe[V], double func(V) V) []V {
	out := make([]V, 0, len(line))
	merged := false

	for _, m := range line {
		v, ok := m.Get()
		if !ok {
			continue
		}

		if n := len(out); n > 0 && !merged && out[n-1] == v {
			out[n-1] = double(v)
			merged = true
			continue
		}

		out = append(out, v)
		merged = false
	}

	return out
}

// Double is the 2048 merge rule.
func Double(v int) int {
	return v * 2
}
