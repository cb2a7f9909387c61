package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// Spawn origin of every new piece.
const (
	SpawnX = 4
	SpawnY = 0
)

// Piece is a positioned, oriented instance of a variant. X and Y locate the
// top-left corner of the shape's bounding box on the grid.
type Piece struct {
	Shape   Shape
	X, Y    int
	Variant Variant
}

// NewPiece returns v in its spawn orientation at the spawn origin.
func NewPiece(v Variant) Piece {
	return Piece{
		Shape:   ShapeOf(v),
		X:       SpawnX,
		Y:       SpawnY,
		Variant: v,
	}
}

// Cells returns the absolute grid coordinates of the occupied cells.
// Points may have negative Y while the piece pokes above the field.
func (p Piece) Cells() []core.Point {
	pts := p.Shape.Cells()
	for i := range pts {
		pts[i] = pts[i].Add(p.X, p.Y)
	}
	return pts
}

// Fits reports whether the piece can sit on g where it is.
func (p Piece) Fits(g *Grid) bool {
	return CanPlace(g, p.Shape, p.X, p.Y)
}
