package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
	"unicode"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/board"
	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

// ErrBadMove is returned for a move string containing an unknown step.
var ErrBadMove = errors.New("bad move")

var (
	flagReplayWidth    int
	flagReplayTarget   int
	flagReplayEndless  bool
	flagReplayScripted bool
)

var replayCmd = &cobra.Command{
	Use:   "replay <moves>",
	Short: "Replay a move string and print every board",
	Long: `Run a sequence of moves through the engine without a UI and print the
board after each one.

Moves are U, D, L, R (case-insensitive) and Z for undo. Spaces are ignored.
With --seed the random spawns are reproducible; --scripted always spawns a 2
in the first empty cell instead.

Examples:
  t2048 replay LLUR --seed 42
  t2048 replay "RRDD Z L" --scripted
  t2048 replay LURD --width 3 --target 64`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().IntVar(&flagReplayWidth, "width", t2048.DefaultWidth, "Board width")
	replayCmd.Flags().IntVar(&flagReplayTarget, "target", t2048.DefaultTarget, "Winning tile")
	replayCmd.Flags().BoolVar(&flagReplayEndless, "endless", false, "Disable the winning tile")
	replayCmd.Flags().BoolVar(&flagReplayScripted, "scripted", false, "Spawn 2s in the first empty cell instead of at random")
}

func runReplay(_ *cobra.Command, args []string) error {
	gameCfg, err := config.LoadT2048(flagConfig)
	if err != nil {
		return err
	}

	gameCfg.Board.Width = flagReplayWidth
	gameCfg.Board.Target = flagReplayTarget
	if err := gameCfg.Validate(); err != nil {
		return fmt.Errorf("replay: %w", err)
	}

	var spawner t2048.Spawner = t2048.ScriptedSpawner{Value: 2}
	if !flagReplayScripted {
		seed := flagSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		spawner = t2048.NewRandomSpawner(seed, gameCfg.Spawn.FourProbability)
	}

	engine := t2048.NewEngine(t2048.EngineConfig{
		Width:    gameCfg.Board.Width,
		Target:   gameCfg.Board.Target,
		NoTarget: flagReplayEndless,
	}, spawner)

	return replay(os.Stdout, engine, args[0])
}

// replayStep is one parsed character of a move string.
type replayStep struct {
	undo bool
	dir  board.Direction
}

// parseMoves validates the whole move string before anything is played.
func parseMoves(moves string) ([]replayStep, error) {
	var steps []replayStep
	for i, r := range moves {
		if unicode.IsSpace(r) {
			continue
		}
		switch unicode.ToLower(r) {
		case 'z':
			steps = append(steps, replayStep{undo: true})
		case 'u', 'd', 'l', 'r':
			dir, err := board.ParseDirection(string(r))
			if err != nil {
				return nil, err
			}
			steps = append(steps, replayStep{dir: dir})
		default:
			return nil, fmt.Errorf("%w %q at offset %d", ErrBadMove, r, i)
		}
	}
	return steps, nil
}

// replay initializes the engine, plays moves and writes every board to w.
func replay(w io.Writer, engine *t2048.Engine, moves string) error {
	steps, err := parseMoves(moves)
	if err != nil {
		return err
	}

	engine.Initialize()
	fmt.Fprintf(w, "start\n%s\n", engine.Board())

	for n, step := range steps {
		var label string
		var changed bool
		if step.undo {
			label = "undo"
			changed = engine.Undo()
		} else {
			label = step.dir.String()
			changed = engine.ProcessMove(step.dir)
		}

		status := "no change"
		if changed {
			status = "ok"
		}
		fmt.Fprintf(w, "\n#%d %s (%s)\n%s\n", n+1, label, status, engine.Board())
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("-", 2*engine.Width()))
	switch {
	case engine.HasWon():
		fmt.Fprintf(w, "won: reached %d\n", engine.Target())
	case !engine.HasLegalMove():
		fmt.Fprintf(w, "stuck: max tile %d\n", engine.MaxTile())
	default:
		fmt.Fprintf(w, "in play: max tile %d\n", engine.MaxTile())
	}
	return nil
}
