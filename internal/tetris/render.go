package tetris

import (
	"github.com/vovakirdan/tui-tetris/internal/core"
)

const (
	hudHeight  = 1 // title line above the board
	blockRune  = '█'
	emptyRune  = '·'
	borderSize = 1
)

// boardSize returns the screen footprint of the bordered playfield.
func (g *Game) boardSize() (w, h int) {
	return Cols*g.blockWidth() + 2*borderSize, Rows + 2*borderSize
}

func (g *Game) blockWidth() int {
	return core.Clamp(g.cfg.Render.BlockWidth, 1, 4)
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardW, boardH := g.boardSize()
	area := dst.Bounds().Centered(boardW, boardH+hudHeight)
	board := core.NewRect(area.X, area.Y+hudHeight, boardW, boardH)

	dst.DrawTextColored(board.X+(boardW-len("TETRIS"))/2, area.Y, "TETRIS", core.ColorBrightWhite)
	dst.DrawBox(board, core.ColorDarkGray)

	g.renderGrid(dst, board)
	g.renderPiece(dst, board)
	g.renderOverlays(dst, board)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// drawBlock fills one playfield cell. Rows above the field are skipped.
func (g *Game) drawBlock(dst *core.Screen, board core.Rect, row, col int, r rune, c core.Color) {
	if row < 0 {
		return
	}
	bw := g.blockWidth()
	x := board.X + borderSize + col*bw
	y := board.Y + borderSize + row
	for i := 0; i < bw; i++ {
		dst.SetColored(x+i, y, r, c)
	}
}

// renderGrid draws locked cells and faint dots for empty ones.
func (g *Game) renderGrid(dst *core.Screen, board core.Rect) {
	grid := g.sim.Grid()
	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			if v, ok := grid.At(row, col).Variant(); ok {
				g.drawBlock(dst, board, row, col, blockRune, ColorOf(v))
				continue
			}
			bw := g.blockWidth()
			dst.SetColored(board.X+borderSize+col*bw+bw/2, board.Y+borderSize+row, emptyRune, core.ColorDarkGray)
		}
	}
}

// renderPiece draws the falling piece over the grid.
func (g *Game) renderPiece(dst *core.Screen, board core.Rect) {
	p := g.sim.Piece()
	color := ColorOf(p.Variant)
	for _, cell := range p.Cells() {
		g.drawBlock(dst, board, cell.Y, cell.X, blockRune, color)
	}
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, board core.Rect) {
	switch {
	case g.sim.Over():
		g.drawOverlay(dst, board, "GAME OVER", "R: restart")
	case g.paused:
		g.drawOverlay(dst, board, "PAUSED", "P: resume")
	}
}

// drawOverlay draws a boxed message centered on the board.
func (g *Game) drawOverlay(dst *core.Screen, board core.Rect, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	box := board.Centered(maxLen+4, len(lines)+2)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorBrightWhite)

	for i, line := range lines {
		x := box.X + (box.W-len(line))/2
		dst.DrawText(x, box.Y+1+i, line)
	}
}
