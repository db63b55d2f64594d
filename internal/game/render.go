package game

import (
	"fmt"

	"github.com/vovakirdan/tui-pipeworks/internal/core"
	"github.com/vovakirdan/tui-pipeworks/internal/pipes"
)

// Glyphs for each pipe kind and rotation.
var (
	startGlyphs = [4]rune{'▶', '▼', '◀', '▲'}
	elbowGlyphs = [4]rune{'╚', '╔', '╗', '╝'}
)

const (
	straightHGlyph = '═'
	straightVGlyph = '║'
	crossGlyph     = '╬'
	blockedGlyph   = '▓'
	emptyGlyph     = '·'
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}
	if g.board == nil {
		return
	}

	g.renderBoard(dst)
	g.renderQueue(dst)
	g.renderStatus(dst)

	switch {
	case g.gameOver:
		g.renderOverlay(dst, "Game Over", "Press R to restart")
	case g.stageClear:
		g.renderOverlay(dst, fmt.Sprintf("Stage %d clear!", g.stage), "Press Enter for the next stage")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	var hud string
	if g.scores != nil {
		hud = fmt.Sprintf(" Pipeworks | Score: %d | Stage: %d | Target: %d | Longest path: %d",
			g.scores.Total(), g.stage, g.scores.Target(), g.longest)
	} else {
		hud = " Pipeworks"
	}
	dst.DrawTextWithColor(0, 0, hud, core.ColorCyan)

	for x := 0; x < dst.Width(); x++ {
		dst.SetWithColor(x, 1, '─', core.ColorGray)
	}

	controls := " ←↑↓→: Cursor | Space: Place | F: Flow | X: Stop | P: Pause"
	dst.DrawTextWithColor(0, 2, controls, core.ColorGray)

	for x := 0; x < dst.Width(); x++ {
		dst.SetWithColor(x, 3, '─', core.ColorGray)
	}
}

// renderBoard draws the grid, the water overlay and the cursor.
func (g *Game) renderBoard(dst *core.Screen) {
	for _, c := range g.board.AllCoords() {
		x := g.gridOffsetX + c.Col*g.cellW
		y := g.gridOffsetY + c.Row*g.cellH

		glyph, color := g.tileAppearance(c)
		dst.SetWithColor(x, y, glyph, color)

		// Stitch horizontally adjacent pipes together.
		filler := ' '
		if g.hasRightLink(c) {
			filler = '═'
		}
		dst.SetWithColor(x+1, y, filler, color)
	}

	// Cursor brackets
	cx := g.gridOffsetX + g.cursor.Col*g.cellW
	cy := g.gridOffsetY + g.cursor.Row*g.cellH
	dst.SetWithColor(cx-1, cy, '[', core.ColorBrightYellow)
	dst.SetWithColor(cx+1, cy, ']', core.ColorBrightYellow)
}

// tileAppearance picks the glyph and color for one board cell.
func (g *Game) tileAppearance(c pipes.Coord) (rune, core.Color) {
	t := g.board.At(c)

	if t.Blocked {
		return blockedGlyph, core.ColorGray
	}

	var glyph rune
	switch t.Kind {
	case pipes.Empty:
		return emptyGlyph, core.ColorGray
	case pipes.Start:
		glyph = startGlyphs[t.Rotation%4]
	case pipes.Straight:
		if t.Rotation%2 == 0 {
			glyph = straightHGlyph
		} else {
			glyph = straightVGlyph
		}
	case pipes.Elbow:
		glyph = elbowGlyphs[t.Rotation%4]
	case pipes.Cross:
		glyph = crossGlyph
	default:
		glyph = '?'
	}

	color := core.ColorWhite
	if t.Kind == pipes.Start {
		color = core.ColorBrightGreen
	}
	if g.water != nil && g.water.HasWater(c) {
		if g.water.Fill(c) >= 1 {
			color = core.ColorBrightBlue
		} else {
			color = core.ColorCyan
		}
	}
	return glyph, color
}

// hasRightLink reports whether a cell and its right neighbor share ports.
func (g *Game) hasRightLink(c pipes.Coord) bool {
	return pipes.Connected(g.board, c, c.Step(pipes.DirRight))
}

// renderQueue draws the upcoming pipes below the grid.
func (g *Game) renderQueue(dst *core.Screen) {
	if g.queue == nil {
		return
	}

	y := g.gridOffsetY + g.board.Rows*g.cellH + 1
	dst.DrawTextWithColor(g.gridOffsetX, y, "Next:", core.ColorGray)

	x := g.gridOffsetX + 6
	for i, item := range g.queue.Items() {
		glyph := queueGlyph(item)
		color := core.ColorWhite
		if i == 0 {
			color = core.ColorBrightYellow
		}
		dst.SetWithColor(x+i*2, y, glyph, color)
	}
}

// queueGlyph picks the display glyph for a queued pipe.
func queueGlyph(item pipes.QueueItem) rune {
	switch item.Kind {
	case pipes.Straight:
		if item.Rotation%2 == 0 {
			return straightHGlyph
		}
		return straightVGlyph
	case pipes.Elbow:
		return elbowGlyphs[item.Rotation%4]
	case pipes.Cross:
		return crossGlyph
	default:
		return '?'
	}
}

// renderStatus draws the flow progress line below the queue.
func (g *Game) renderStatus(dst *core.Screen) {
	y := g.gridOffsetY + g.board.Rows*g.cellH + 2

	var status string
	switch {
	case g.flow != nil && g.flow.Active():
		status = fmt.Sprintf("Water flowing... %d/%d tiles", g.scores.FlowDistance(), g.scores.Target())
	case g.lastResult != nil:
		status = fmt.Sprintf("Flow ended: %s (%d/%d tiles)",
			g.lastResult.Reason, g.lastResult.TilesTraversed, g.lastResult.Target)
	default:
		status = "Place pipes, then press F to release the water"
	}
	dst.DrawTextWithColor(g.gridOffsetX, y, status, core.ColorGray)
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	boxW := maxLen + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}
