// Package ebiten runs the windowed frontend on Ebitengine.
package ebiten

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-tetris/internal/platform/window"
)

type game struct {
	session *window.Session
	layout  window.Layout
}

var _ ebiten.Game = new(game)

func readControls() window.Controls {
	return window.Controls{
		Left:     inpututil.IsKeyJustPressed(ebiten.KeyLeft),
		Right:    inpututil.IsKeyJustPressed(ebiten.KeyRight),
		Rotate:   inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeyUp),
		SoftDrop: ebiten.IsKeyPressed(ebiten.KeyDown),
		Restart:  inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeyEnter),
		Quit:     inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}
}

func (g *game) Update() error {
	if !g.session.Update(time.Now(), readControls()) {
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	for _, r := range g.layout.Border() {
		vector.DrawFilledRect(screen, r.X, r.Y, r.W, r.H, r.Color, false)
	}
	sim := g.session.Simulation()
	for _, r := range g.layout.Blocks(sim) {
		vector.DrawFilledRect(screen, r.X, r.Y, r.W, r.H, r.Color, false)
	}
	if sim.Over() {
		ebitenutil.DebugPrintAt(screen, "GAME OVER\nR: restart", g.layout.BlockSize+4, g.layout.BlockSize+4)
	}
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.layout.Size()
}

// Run opens a window sized to the layout and blocks until it is closed or
// Escape is pressed.
func Run(title string, session *window.Session, layout window.Layout) error {
	w, h := layout.Size()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(title)

	// RunGame returns nil when Update returns ebiten.Termination.
	return ebiten.RunGame(&game{session: session, layout: layout})
}
