package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/board"
	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

func TestParseMoves(t *testing.T) {
	steps, err := parseMoves("uD l\tRz")
	if err != nil {
		t.Fatalf("parseMoves: %v", err)
	}

	want := []replayStep{
		{dir: board.Up},
		{dir: board.Down},
		{dir: board.Left},
		{dir: board.Right},
		{undo: true},
	}
	if len(steps) != len(want) {
		t.Fatalf("got %d steps, want %d", len(steps), len(want))
	}
	for i := range want {
		if steps[i] != want[i] {
			t.Errorf("step %d = %+v, want %+v", i, steps[i], want[i])
		}
	}
}

func TestParseMovesRejectsUnknown(t *testing.T) {
	_, err := parseMoves("LLx")
	if !errors.Is(err, ErrBadMove) {
		t.Fatalf("expected ErrBadMove, got %v", err)
	}
}

func scriptedEngine(target int) *t2048.Engine {
	return t2048.NewEngine(t2048.EngineConfig{Width: 2, Target: target}, t2048.ScriptedSpawner{Value: 2})
}

func TestReplayPrintsEveryBoard(t *testing.T) {
	var out bytes.Buffer
	if err := replay(&out, scriptedEngine(8), "L L z"); err != nil {
		t.Fatalf("replay: %v", err)
	}

	got := out.String()
	for _, want := range []string{
		"start\n2 2\n. .\n",
		"#1 left (ok)\n4 2\n. .\n",
		"#2 left (no change)\n4 2\n. .\n",
		"#3 undo (ok)\n2 2\n. .\n",
		"in play: max tile 2\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestReplayReportsWin(t *testing.T) {
	var out bytes.Buffer
	if err := replay(&out, scriptedEngine(4), "L"); err != nil {
		t.Fatalf("replay: %v", err)
	}
	if !strings.Contains(out.String(), "won: reached 4") {
		t.Errorf("expected win line:\n%s", out.String())
	}
}

func TestReplayBadMovePlaysNothing(t *testing.T) {
	var out bytes.Buffer
	err := replay(&out, scriptedEngine(8), "L?")
	if !errors.Is(err, ErrBadMove) {
		t.Fatalf("expected ErrBadMove, got %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("nothing should be printed for an invalid move string, got:\n%s", out.String())
	}
}

func TestRunReplayRejectsBadBoardFlags(t *testing.T) {
	width, target, scripted := flagReplayWidth, flagReplayTarget, flagReplayScripted
	t.Cleanup(func() {
		flagReplayWidth, flagReplayTarget, flagReplayScripted = width, target, scripted
	})
	flagReplayScripted = true

	tests := []struct {
		name          string
		width, target int
	}{
		{"negative width", -1, t2048.DefaultTarget},
		{"width too large", 1 << 20, t2048.DefaultTarget},
		{"target not a power of two", t2048.DefaultWidth, 3},
		{"target below four", t2048.DefaultWidth, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flagReplayWidth, flagReplayTarget = tt.width, tt.target

			err := runReplay(nil, []string{"L"})
			if !errors.Is(err, config.ErrInvalidConfig) {
				t.Fatalf("runReplay(width=%d, target=%d) = %v, want ErrInvalidConfig", tt.width, tt.target, err)
			}
		})
	}
}
