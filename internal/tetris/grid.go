package tetris

import "fmt"

// Playfield dimensions. They never change.
const (
	Rows = 20
	Cols = 10
)

// Cell is one playfield square: Empty or occupied by a variant.
type Cell uint8

// Empty is the unoccupied cell value.
const Empty Cell = 0

// Filled returns the cell value for a square occupied by v.
func Filled(v Variant) Cell {
	mustValid(v)
	return Cell(v) + 1
}

// Variant returns the occupying variant, or false for an empty cell.
func (c Cell) Variant() (Variant, bool) {
	if c == Empty {
		return 0, false
	}
	return Variant(c - 1), true
}

// Grid is the fixed Rows×Cols playfield, stored flat in row-major order.
// Row 0 is the top. Indexing outside the field panics.
type Grid struct {
	cells [Rows * Cols]Cell
}

func index(row, col int) int {
	if row < 0 || row >= Rows || col < 0 || col >= Cols {
		panic(fmt.Sprintf("tetris: cell (%d,%d) outside %dx%d grid", row, col, Rows, Cols))
	}
	return row*Cols + col
}

// At returns the cell at (row, col).
func (g *Grid) At(row, col int) Cell {
	return g.cells[index(row, col)]
}

// Set stores a cell value at (row, col).
func (g *Grid) Set(row, col int, c Cell) {
	g.cells[index(row, col)] = c
}

// Occupied reports whether (row, col) holds a locked block.
func (g *Grid) Occupied(row, col int) bool {
	return g.At(row, col) != Empty
}

// RowComplete reports whether every cell of the row is occupied.
func (g *Grid) RowComplete(row int) bool {
	base := index(row, 0)
	for _, c := range g.cells[base : base+Cols] {
		if c == Empty {
			return false
		}
	}
	return true
}

// RowEmpty reports whether the row has no occupied cell.
func (g *Grid) RowEmpty(row int) bool {
	base := index(row, 0)
	for _, c := range g.cells[base : base+Cols] {
		if c != Empty {
			return false
		}
	}
	return true
}

// ClearRows removes every complete row and returns how many were removed.
//
// The scan runs from the bottom row upward. When row r is complete, rows
// 0..r-1 shift down one place, row 0 becomes empty, and row r is examined
// again since it now holds the former row above. The scan stops once it
// reaches row 0, so multiple and non-adjacent complete rows go in one call.
// Row 0 is never tested in place: a complete row 0 is only removed once a
// clear further down has shifted it into the scanned range.
func (g *Grid) ClearRows() int {
	cleared := 0
	row := Rows - 1
	for row > 0 {
		if g.RowComplete(row) {
			g.collapse(row)
			cleared++
			continue
		}
		row--
	}
	return cleared
}

// collapse drops rows 0..row-1 onto row and empties row 0.
func (g *Grid) collapse(row int) {
	copy(g.cells[Cols:(row+1)*Cols], g.cells[:row*Cols])
	clear(g.cells[:Cols])
}

// String renders the grid as Rows lines of variant letters and '.'.
func (g *Grid) String() string {
	buf := make([]byte, 0, Rows*(Cols+1))
	for row := 0; row < Rows; row++ {
		if row > 0 {
			buf = append(buf, '\n')
		}
		for col := 0; col < Cols; col++ {
			if v, ok := g.At(row, col).Variant(); ok {
				buf = append(buf, v.String()...)
			} else {
				buf = append(buf, '.')
			}
		}
	}
	return string(buf)
}
