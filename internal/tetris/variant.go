// Package tetris implements the falling-block simulation: the shape catalog,
// the playfield grid, collision testing, rotation, locking and row clearing.
//
// The simulation owns no clock, no input device and no renderer. Frontends
// call its mutators and read its state through accessors.
package tetris

import "fmt"

// Variant identifies one of the seven tetrominoes.
type Variant uint8

const (
	I Variant = iota
	J
	L
	O
	S
	T
	Z
)

// VariantCount is the number of distinct variants.
const VariantCount = 7

// Variants lists every variant in declaration order.
var Variants = [VariantCount]Variant{I, J, L, O, S, T, Z}

// Valid reports whether v names one of the seven variants.
func (v Variant) Valid() bool {
	return v < VariantCount
}

// String returns the single-letter name of the variant.
func (v Variant) String() string {
	if !v.Valid() {
		return fmt.Sprintf("Variant(%d)", uint8(v))
	}
	return string("IJLOSTZ"[v])
}
