package window

import (
	"image/color"

	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// BorderColor is the frame around the playfield.
var BorderColor = color.RGBA{R: 80, G: 80, B: 80, A: 255}

// Rect is a filled rectangle in window pixels.
type Rect struct {
	X, Y, W, H float32
	Color      color.RGBA
}

// Layout places the board in a window of (Cols+2)x(Rows+2) blocks: one
// block of border on every side.
type Layout struct {
	BlockSize int
}

// Size returns the window size in pixels.
func (l Layout) Size() (int, int) {
	return (tetris.Cols + 2) * l.BlockSize, (tetris.Rows + 2) * l.BlockSize
}

// Border returns the four border strips.
func (l Layout) Border() []Rect {
	bs := float32(l.BlockSize)
	w, h := l.Size()
	fw, fh := float32(w), float32(h)
	return []Rect{
		{X: 0, Y: 0, W: fw, H: bs, Color: BorderColor},
		{X: 0, Y: fh - bs, W: fw, H: bs, Color: BorderColor},
		{X: 0, Y: bs, W: bs, H: fh - 2*bs, Color: BorderColor},
		{X: fw - bs, Y: bs, W: bs, H: fh - 2*bs, Color: BorderColor},
	}
}

// block returns the rectangle of the playfield cell at (row, col). Cells
// leave a one-pixel gap to their right and bottom neighbours.
func (l Layout) block(row, col int, c color.RGBA) Rect {
	bs := float32(l.BlockSize)
	size := bs - 1
	if size < 1 {
		size = bs
	}
	return Rect{
		X:     float32(col+1) * bs,
		Y:     float32(row+1) * bs,
		W:     size,
		H:     size,
		Color: c,
	}
}

// Blocks returns the locked cells followed by the falling piece. Piece
// cells above the playfield are not drawn.
func (l Layout) Blocks(sim *tetris.Simulation) []Rect {
	var out []Rect
	for row := range tetris.Rows {
		for col := range tetris.Cols {
			if v, ok := sim.CellAt(row, col); ok {
				out = append(out, l.block(row, col, tetris.RGBA(v)))
			}
		}
	}

	c := tetris.RGBA(sim.Piece().Variant)
	for _, p := range sim.PieceCells() {
		if p.Y < 0 {
			continue
		}
		out = append(out, l.block(p.Y, p.X, c))
	}
	return out
}
