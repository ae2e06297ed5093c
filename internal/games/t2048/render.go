package t2048

import (
	"fmt"
	"math/bits"
	"strconv"

	"github.com/vovakirdan/tui-2048/internal/core"
)

const (
	cellWidth  = 7 // Width of each cell (including left border)
	cellHeight = 2 // Height of each cell (including top border)
	hudHeight  = 3
)

// boardSize returns the drawn size of a width×width board including borders.
func boardSize(width int) (w, h int) {
	return width*cellWidth + 1, width*cellHeight + 1
}

// tilePalette colors tiles by exponent: index k is the color of 2^k.
var tilePalette = []core.Color{
	core.ColorGray,         // unused
	core.ColorWhite,        // 2
	core.ColorBrightWhite,  // 4
	core.ColorOrange,       // 8
	core.ColorOrange,       // 16
	core.ColorRed,          // 32
	core.ColorBrightRed,    // 64
	core.ColorYellow,       // 128
	core.ColorYellow,       // 256
	core.ColorBrightYellow, // 512
	core.ColorGreen,        // 1024
	core.ColorBrightYellow, // 2048
}

// beyondPalette cycles for tiles above 2048.
var beyondPalette = []core.Color{core.ColorMagenta, core.ColorCyan, core.ColorBlue}

// TileColor returns the color used to draw a tile value.
func TileColor(v int) core.Color {
	if v <= 0 {
		return core.ColorDefault
	}
	exp := bits.Len(uint(v)) - 1
	if exp < len(tilePalette) {
		return tilePalette[exp]
	}
	return beyondPalette[(exp-len(tilePalette))%len(beyondPalette)]
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardW, boardH := boardSize(g.engine.Width())
	area := dst.Bounds().CenteredIn(boardW, boardH+hudHeight+1)
	boardX := area.X
	boardY := area.Y + hudHeight + 1

	g.renderHUD(dst, boardX, area.Y, boardW)
	g.renderBoard(dst, boardX, boardY)
	g.renderOverlays(dst, core.NewRect(boardX, boardY, boardW, boardH))
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title, max tile, target and undo depth.
func (g *Game) renderHUD(dst *core.Screen, boardX, topY, boardW int) {
	title := g.variant.Title
	dst.DrawText(boardX+(boardW-len(title))/2, topY, title)

	maxTile := g.engine.MaxTile()
	maxStr := "Max: "
	dst.DrawText(boardX, topY+1, maxStr)
	dst.DrawTextColored(boardX+len(maxStr), topY+1, strconv.Itoa(maxTile), TileColor(maxTile))

	infoStr := "Endless"
	if t := g.engine.Target(); t != 0 {
		infoStr = fmt.Sprintf("Target: %d", t)
	}
	infoX := max(boardX, boardX+boardW-len(infoStr))
	dst.DrawText(infoX, topY+1, infoStr)

	undoStr := fmt.Sprintf("Undo: %d", max(0, g.engine.HistoryLen()-1))
	dst.DrawText(boardX+(boardW-len(undoStr))/2, topY+2, undoStr)
}

// renderBoard draws the grid with tiles.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	n := g.engine.Width()

	// Draw grid borders
	for y := range n + 1 {
		for x := range n + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight
			dst.Set(px, py, junction(x, y, n))

			// Draw horizontal line to the right
			if x < n {
				for i := 1; i < cellWidth; i++ {
					dst.Set(px+i, py, '─')
				}
			}

			// Draw vertical line down
			if y < n {
				for i := 1; i < cellHeight; i++ {
					dst.Set(px, py+i, '│')
				}
			}
		}
	}

	// Draw tiles
	for i := 1; i <= n; i++ {
		for j := 1; j <= n; j++ {
			val, ok := g.engine.Get(i, j).Get()
			if !ok {
				continue
			}

			cellX := boardX + (j-1)*cellWidth + 1
			cellY := boardY + (i-1)*cellHeight + 1

			valStr := strconv.Itoa(val)
			padLeft := max(0, (cellWidth-1-len(valStr))/2)
			dst.DrawTextColored(cellX+padLeft, cellY, valStr, TileColor(val))
		}
	}
}

// junction returns the box-drawing rune at grid line crossing (x, y).
func junction(x, y, n int) rune {
	switch {
	case y == 0 && x == 0:
		return '┌'
	case y == 0 && x == n:
		return '┐'
	case y == n && x == 0:
		return '└'
	case y == n && x == n:
		return '┘'
	case y == 0:
		return '┬'
	case y == n:
		return '┴'
	case x == 0:
		return '├'
	case x == n:
		return '┤'
	default:
		return '┼'
	}
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, area core.Rect) {
	cx, cy := area.Center()

	switch {
	case g.paused:
		g.drawOverlay(dst, cx, cy, "PAUSED", "Press P to resume")
	case g.won:
		g.drawOverlay(dst, cx, cy, "YOU WIN!", fmt.Sprintf("Reached %d", g.engine.Target()), "U: undo  R: restart")
	case g.gameOver:
		maxStr := fmt.Sprintf("Max tile: %d", g.engine.MaxTile())
		g.drawOverlay(dst, cx, cy, "GAME OVER", maxStr, "U: undo  R: restart")
	}
}

// drawOverlay draws a centered text box.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.NewRect(centerX-boxW/2, centerY-boxH/2, boxW, boxH)

	// Clear area behind overlay
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, box.Y+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/HJKL: Move | U: Undo | P: Pause | R: Restart | Q: Quit"
}
