package tetris

// CanPlace reports whether shape fits with its top-left corner at column x,
// row y. Every occupied cell must land in columns [0, Cols) and above row
// Rows, and must not overlap an occupied grid cell. Cells above the field
// (negative rows) are allowed and never checked against the grid.
//
// Every mutation of the current piece goes through this predicate.
func CanPlace(g *Grid, shape Shape, x, y int) bool {
	for r := 0; r < shape.rows; r++ {
		for c := 0; c < shape.cols; c++ {
			if !shape.cells[r*shape.cols+c] {
				continue
			}
			col, row := x+c, y+r
			if col < 0 || col >= Cols || row >= Rows {
				return false
			}
			if row >= 0 && g.cells[row*Cols+col] != Empty {
				return false
			}
		}
	}
	return true
}
