package t2048

import (
	"time"

	"github.com/vovakirdan/tui-2048/internal/board"
	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

// Game adapts an Engine to the platform's tick loop.
type Game struct {
	variant  Variant
	width    int
	target   int
	fourProb float64

	engine *Engine
	tick   uint64

	// Screen dimensions
	screenW int
	screenH int

	// Game state flags
	won      bool
	gameOver bool
	paused   bool
	tooSmall bool
}

// New creates a game for the given variant with default spawn settings.
func New(v Variant) *Game {
	return &Game{
		variant:  v,
		width:    v.Width,
		target:   v.Target,
		fourProb: DefaultFourProbability,
	}
}

func init() {
	for _, v := range Variants {
		registry.Register(v.ID, func() registry.Game {
			return New(v)
		})
	}
}

// Configure applies user configuration. Call before Reset.
func (g *Game) Configure(cfg config.T2048Config) {
	g.width = g.variant.Width
	if cfg.Board.Width != 0 {
		g.width = cfg.Board.Width
	}
	g.target = g.variant.Target
	if cfg.Board.Target != 0 && !g.variant.Endless() {
		g.target = cfg.Board.Target
	}
	g.fourProb = cfg.Spawn.FourProbability
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.variant.Title
}

// Reset starts a new game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g.engine = NewEngine(EngineConfig{
		Width:    g.width,
		Target:   g.target,
		NoTarget: g.target == 0,
	}, NewRandomSpawner(seed, g.fourProb))
	g.engine.Initialize()

	g.tick = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.won = false
	g.gameOver = false
	g.paused = false
	g.updateStatus()

	g.checkScreenSize()
}

// Resize updates the screen dimensions without restarting.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	boardW, boardH := boardSize(g.width)
	minW := boardW + 4
	minH := boardH + hudHeight + 2
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick. At most one move is applied per tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	// Handle pause
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	// Undo works in every state, including after a win or a loss
	if in.Has(core.ActionUndo) {
		moved := g.engine.Undo()
		g.updateStatus()
		return core.StepResult{State: g.State(), Moved: moved}
	}

	// Restart is handled by the platform
	if g.won || g.gameOver {
		return core.StepResult{State: g.State()}
	}

	var dir board.Direction
	switch {
	case in.Has(core.ActionUp):
		dir = board.Up
	case in.Has(core.ActionDown):
		dir = board.Down
	case in.Has(core.ActionLeft):
		dir = board.Left
	case in.Has(core.ActionRight):
		dir = board.Right
	default:
		return core.StepResult{State: g.State()}
	}

	moved := g.engine.ProcessMove(dir)
	if moved {
		g.updateStatus()
	}
	return core.StepResult{State: g.State(), Moved: moved}
}

// updateStatus recomputes the win and game over flags from the board.
func (g *Game) updateStatus() {
	g.won = g.engine.HasWon()
	g.gameOver = !g.won && !g.engine.HasLegalMove()
}

// Engine exposes the underlying engine.
func (g *Game) Engine() *Engine {
	return g.engine
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	s := core.GameState{
		Won:      g.won,
		GameOver: g.gameOver,
		Paused:   g.paused || g.tooSmall,
	}
	if g.engine != nil {
		s.MaxTile = g.engine.MaxTile()
	}
	return s
}
