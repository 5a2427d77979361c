package lightsout

import (
	"fmt"

	"github.com/vovakirdan/lightsout/internal/core"
)

// Fill runes. A lit cell glows from the centre out; an unlit cell shades
// from top to bottom.
const (
	litCore   = '█'
	litRim    = '▓'
	unlitTop  = '▒'
	unlitBase = '░'
	hintMark  = '◆'
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	// Check screen size
	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)
	g.renderBoard(dst)
	g.renderFooter(dst)
	g.renderOverlays(dst)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")

	w, h := MinScreenSize(g.rows, g.cols)
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need at least %dx%d", w, h))
}

// renderHUD draws the title and counters.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextCenteredColor(0, "L I G H T S   O U T", core.ColorBrightMagenta)

	stats := fmt.Sprintf("Level %d   Moves %d   Won %d", g.level+1, g.moves, g.gamesWon)
	if g.cfg.Display.ShowLitCount {
		stats += fmt.Sprintf("   Lit %d", g.grid.LitCount())
	}
	dst.DrawTextCentered(1, stats)
}

// renderBoard draws every cell, the cursor and the hint.
func (g *Game) renderBoard(dst *core.Screen) {
	for i := 0; i < g.rows; i++ {
		for j := 0; j < g.cols; j++ {
			r := g.layout.CellRect(i, j)
			if g.grid.IsOn(i, j) {
				drawLit(dst, r)
			} else {
				drawUnlit(dst, r)
			}
		}
	}

	if g.hintShown && !g.grid.LightsOut() {
		cx, cy := g.layout.CellRect(g.hint.Row, g.hint.Col).Center()
		dst.SetColor(cx, cy, hintMark, core.ColorBrightYellow)
	}

	if !g.grid.LightsOut() {
		g.renderCursor(dst)
	}
}

// drawLit fills a lit cell: bright core with a darker rim.
func drawLit(dst *core.Screen, r core.Rect) {
	dst.DrawRectColor(r, litRim, core.ColorHotPink)
	inner := r.Inset(1)
	if inner.W > 0 && inner.H > 0 {
		dst.DrawRectColor(inner, litCore, core.ColorPink)
		return
	}
	// Too small for a rim: light the whole cell.
	dst.DrawRectColor(r, litCore, core.ColorPink)
}

// drawUnlit fills an unlit cell: lighter top half over a darker base.
func drawUnlit(dst *core.Screen, r core.Rect) {
	top := core.NewRect(r.X, r.Y, r.W, (r.H+1)/2)
	dst.DrawRectColor(r, unlitBase, core.ColorPurple)
	if r.H > 1 {
		dst.DrawRectColor(top, unlitTop, core.ColorLavender)
	}
}

// renderCursor outlines the cell under the keyboard cursor.
func (g *Game) renderCursor(dst *core.Screen) {
	r := g.layout.CellRect(g.cursor.Row, g.cursor.Col)
	if g.layout.Gap > 0 {
		// Draw on the gap surrounding the cell.
		dst.DrawBoxColor(core.NewRect(r.X-1, r.Y-1, r.W+2, r.H+2), core.ColorBrightWhite)
		return
	}
	// No gap: bracket the cell's first row.
	dst.SetColor(r.X, r.Y, '[', core.ColorBrightWhite)
	dst.SetColor(r.Right()-1, r.Y, ']', core.ColorBrightWhite)
}

// renderFooter draws the controls line.
func (g *Game) renderFooter(dst *core.Screen) {
	controls := "Arrows: Move  Space/Click: Toggle  ?: Hint  N: New  P: Pause  Q: Quit"
	if len(controls) > g.screenW {
		controls = "Space: Toggle  ?: Hint  Q: Quit"
	}
	dst.DrawTextCenteredColor(g.screenH-1, controls, core.ColorGray)
}

// renderOverlays draws win and pause banners over the board.
func (g *Game) renderOverlays(dst *core.Screen) {
	_, midY := g.layout.Board.Center()

	switch {
	case g.paused:
		g.drawBanner(dst, midY, "PAUSED", "Press P to resume", core.ColorBrightYellow)
	case g.restartTicks > 0:
		detail := fmt.Sprintf("Solved in %d moves", g.moves)
		if g.par >= 0 {
			detail = fmt.Sprintf("Solved in %d moves (par %d)", g.moves, g.par)
		}
		g.drawBanner(dst, midY, "LIGHTS OUT!", detail, core.ColorBrightGreen)
	}
}

// drawBanner draws a boxed two-line message centered at row y.
func (g *Game) drawBanner(dst *core.Screen, y int, title, detail string, c core.Color) {
	w := core.Max(len(title), len(detail)) + 4
	box := core.NewRect((g.screenW-w)/2, y-2, w, 4)
	dst.DrawRect(box, ' ')
	dst.DrawBoxColor(box, c)
	dst.DrawTextCenteredColor(y-1, title, c)
	dst.DrawTextCentered(y, detail)
}
