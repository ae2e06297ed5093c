package t2048

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateWon         GameStateType = "won"
	StateGameOver    GameStateType = "game_over"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick    uint64
	Variant string
	Width   int
	Target  int     // 0 for endless
	Board   [][]int // Row-major, 0 for empty cells
	MaxTile int
	History int // Undo stack depth
	State   GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.paused:
		state = StatePaused
	case g.won:
		state = StateWon
	case g.gameOver:
		state = StateGameOver
	}

	w := g.engine.Width()
	rows := make([][]int, w)
	for i := range rows {
		rows[i] = make([]int, w)
		for j := range rows[i] {
			rows[i][j] = g.engine.Get(i+1, j+1).OrElse(0)
		}
	}

	return Snapshot{
		Tick:    g.tick,
		Variant: g.variant.ID,
		Width:   w,
		Target:  g.engine.Target(),
		Board:   rows,
		MaxTile: g.engine.MaxTile(),
		History: g.engine.HistoryLen(),
		State:   state,
	}
}
