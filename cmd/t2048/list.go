package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available variants",
	Long:  `Shows every registered 2048 variant with its board size and target.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No variants available.")
		return
	}

	fmt.Println("Available variants:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Printf("  %-*s  %-5s  %-7s  %s\n", maxIDLen, "ID", "Board", "Target", "Title")
	fmt.Printf("  %-*s  %-5s  %-7s  %s\n", maxIDLen, "--", "-----", "------", "-----")

	for _, g := range games {
		board, target := "?", "?"
		if v := t2048.GetVariant(g.ID); v != nil {
			board = fmt.Sprintf("%dx%d", v.Width, v.Width)
			target = "endless"
			if !v.Endless() {
				target = fmt.Sprint(v.Target)
			}
		}
		fmt.Printf("  %-*s  %-5s  %-7s  %s\n", maxIDLen, g.ID, board, target, g.Title)
	}

	fmt.Println()
	fmt.Println("Run 't2048 play <id>' to play a variant.")
}
