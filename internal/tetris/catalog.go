package tetris

import (
	"fmt"
	"image/color"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

var catalog = [VariantCount]Shape{
	I: NewShape("####"),
	J: NewShape(
		"#..",
		"###",
	),
	L: NewShape(
		"..#",
		"###",
	),
	O: NewShape(
		"##",
		"##",
	),
	S: NewShape(
		".##",
		"##.",
	),
	T: NewShape(
		".#.",
		"###",
	),
	Z: NewShape(
		"##.",
		".##",
	),
}

var terminalColors = [VariantCount]core.Color{
	I: core.ColorBrightCyan,
	J: core.ColorBlue,
	L: core.ColorOrange,
	O: core.ColorBrightYellow,
	S: core.ColorGreen,
	T: core.ColorMagenta,
	Z: core.ColorRed,
}

var windowColors = [VariantCount]color.RGBA{
	I: {R: 102, G: 191, B: 255, A: 255}, // sky blue
	J: {R: 0, G: 121, B: 241, A: 255},
	L: {R: 255, G: 161, B: 0, A: 255},
	O: {R: 253, G: 249, B: 0, A: 255},
	S: {R: 0, G: 228, B: 48, A: 255},
	T: {R: 200, G: 122, B: 255, A: 255}, // purple
	Z: {R: 230, G: 41, B: 55, A: 255},
}

// ShapeOf returns the spawn orientation of a variant.
func ShapeOf(v Variant) Shape {
	mustValid(v)
	return catalog[v]
}

// ColorOf returns the terminal display color of a variant.
func ColorOf(v Variant) core.Color {
	mustValid(v)
	return terminalColors[v]
}

// RGBA returns the true-color display color of a variant.
func RGBA(v Variant) color.RGBA {
	mustValid(v)
	return windowColors[v]
}

func mustValid(v Variant) {
	if !v.Valid() {
		panic(fmt.Sprintf("tetris: invalid variant %d", uint8(v)))
	}
}
