package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

var flagDifficulty string

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing the given 2048 variant. Without a variant the picker
menu is shown first, and backing out of a game returns to it.

Controls:
  Arrows/WASD/HJKL  - Slide tiles
  U/Z/Backspace     - Undo
  P/Esc             - Pause
  R                 - Restart (after a win or game over)
  Q/Ctrl+C          - Quit
  Ctrl+S            - Save a screenshot

Difficulty options (chance of a spawned 4):
  easy   - 5%
  normal - 10%
  hard   - 25%

Examples:
  t2048 play
  t2048 play 2048
  t2048 play 2048_5x5 --difficulty hard
  t2048 play 2048_endless --config ./my-2048.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

// runtimeConfig sizes the session to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

func runPlay(_ *cobra.Command, args []string) {
	gameCfg, err := config.LoadT2048(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var preset *config.DifficultyPreset
	if flagDifficulty != "" {
		p, parseErr := config.ParsePreset(flagDifficulty)
		if parseErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", parseErr)
			os.Exit(1)
		}
		preset = &p
	}

	if len(args) == 1 && !registry.Exists(args[0]) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", args[0])
		fmt.Fprintln(os.Stderr, "Run 't2048 list' to see available variants.")
		os.Exit(1)
	}

	logger, closeLog, err := openLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	cfg := runtimeConfig()

	for {
		gameID := ""
		if len(args) == 1 {
			gameID = args[0]
		} else {
			menuResult, menuErr := tui.RunMenu(cfg)
			if menuErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", menuErr)
				return
			}
			cfg = menuResult.Config
			if menuResult.Quit {
				return
			}
			gameID = menuResult.GameID
		}

		chosen := preset
		if chosen == nil && !gameCfg.HasCustomSpawn() {
			chosen, err = tui.RunDifficultySelector(cfg)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return
			}
			if chosen == nil {
				if len(args) == 1 {
					return
				}
				continue
			}
		}

		sessionCfg := gameCfg
		difficulty := "custom"
		if chosen != nil {
			config.ApplyPreset(&sessionCfg, *chosen)
			difficulty = string(*chosen)
		}

		game, createErr := registry.Create(gameID)
		if createErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", createErr)
			os.Exit(1)
		}

		logger.Info("starting game", "variant", gameID, "difficulty", difficulty, "four_probability", sessionCfg.Spawn.FourProbability)
		back, runErr := tui.Run(game, tui.Options{
			Runtime: cfg,
			Game:    sessionCfg,
			Logger:  logger.With("variant", gameID),
		})
		if runErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
			return
		}

		// A fixed variant plays once; the menu loop continues on "back".
		if len(args) == 1 || !back {
			return
		}
	}
}
