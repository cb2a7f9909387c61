package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

func TestCatalogLayouts(t *testing.T) {
	tests := []struct {
		variant Variant
		layout  string
		rows    int
		cols    int
	}{
		{I, "####", 1, 4},
		{J, "#../###", 2, 3},
		{L, "..#/###", 2, 3},
		{O, "##/##", 2, 2},
		{S, ".##/##.", 2, 3},
		{T, ".#./###", 2, 3},
		{Z, "##./.##", 2, 3},
	}

	for _, tc := range tests {
		t.Run(tc.variant.String(), func(t *testing.T) {
			s := ShapeOf(tc.variant)
			assert.Equal(t, tc.layout, s.String())
			assert.Equal(t, tc.rows, s.Rows())
			assert.Equal(t, tc.cols, s.Cols())
			assert.Len(t, s.Cells(), 4, "every tetromino has four cells")
		})
	}
}

func TestRotateClockwiseAboutCorner(t *testing.T) {
	tests := []struct {
		variant Variant
		rotated string
	}{
		{I, "#/#/#/#"},
		{J, "##/#./#."},
		{L, "#./#./##"},
		{O, "##/##"},
		{S, "#./##/.#"},
		{T, "#./##/#."},
		{Z, ".#/##/#."},
	}

	for _, tc := range tests {
		t.Run(tc.variant.String(), func(t *testing.T) {
			assert.Equal(t, tc.rotated, ShapeOf(tc.variant).Rotate().String())
		})
	}
}

func TestRotateCycle(t *testing.T) {
	for _, v := range Variants {
		s := ShapeOf(v)
		r := s
		for i := 0; i < 4; i++ {
			r = r.Rotate()
		}
		assert.Equal(t, s, r, "%s: four rotations should restore the original", v)
	}

	// I alternates between exactly two distinct layouts
	i0 := ShapeOf(I)
	i1 := i0.Rotate()
	assert.NotEqual(t, i0, i1)
	assert.Equal(t, 4, i1.Rows())
	assert.Equal(t, 1, i1.Cols())
	assert.Equal(t, i0, i1.Rotate())

	// O is rotationally symmetric
	assert.Equal(t, ShapeOf(O), ShapeOf(O).Rotate())
}

func TestShapeCells(t *testing.T) {
	cells := ShapeOf(T).Cells()
	expected := []core.Point{{X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}}
	assert.Equal(t, expected, cells)
}

func TestNewShapePanicsOnBadLayout(t *testing.T) {
	assert.Panics(t, func() { NewShape() })
	assert.Panics(t, func() { NewShape("#####") })
	assert.Panics(t, func() { NewShape("##", "#") })
	assert.Panics(t, func() { ShapeOf(O).At(2, 0) })
}

func TestVariantHelpers(t *testing.T) {
	for i, v := range Variants {
		require.True(t, v.Valid())
		assert.Equal(t, Variant(i), v)
		assert.NotEqual(t, core.ColorDefault, ColorOf(v))
		assert.Equal(t, uint8(255), RGBA(v).A)
	}

	assert.Equal(t, "IJLOSTZ", I.String()+J.String()+L.String()+O.String()+S.String()+T.String()+Z.String())
	assert.False(t, Variant(7).Valid())
	assert.Equal(t, "Variant(9)", Variant(9).String())
	assert.Panics(t, func() { ShapeOf(Variant(7)) })
}

func TestPieceCells(t *testing.T) {
	p := NewPiece(I)

	assert.Equal(t, SpawnX, p.X)
	assert.Equal(t, SpawnY, p.Y)
	assert.Equal(t, []core.Point{{X: 4, Y: 0}, {X: 5, Y: 0}, {X: 6, Y: 0}, {X: 7, Y: 0}}, p.Cells())
}
