package tetris

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// maxShapeSide bounds both dimensions of any shape's bounding box.
const maxShapeSide = 4

// Shape is the occupied/empty layout of a piece's bounding box in one
// orientation. It is a value type: rotation returns a new Shape and two
// shapes compare equal with == exactly when their layouts match.
type Shape struct {
	rows  int
	cols  int
	cells [maxShapeSide * maxShapeSide]bool // row-major, rows*cols used
}

// NewShape builds a shape from one string per row, '#' marking an occupied
// cell and any other byte an empty one. All rows must have the same length.
// Malformed layouts are programmer errors and panic.
func NewShape(rows ...string) Shape {
	if len(rows) == 0 || len(rows) > maxShapeSide {
		panic(fmt.Sprintf("tetris: shape needs 1..%d rows, got %d", maxShapeSide, len(rows)))
	}
	cols := len(rows[0])
	if cols == 0 || cols > maxShapeSide {
		panic(fmt.Sprintf("tetris: shape needs 1..%d columns, got %d", maxShapeSide, cols))
	}

	s := Shape{rows: len(rows), cols: cols}
	for r, row := range rows {
		if len(row) != cols {
			panic(fmt.Sprintf("tetris: ragged shape row %d: %q", r, row))
		}
		for c := 0; c < cols; c++ {
			s.cells[r*cols+c] = row[c] == '#'
		}
	}
	return s
}

// Rows returns the height of the bounding box.
func (s Shape) Rows() int {
	return s.rows
}

// Cols returns the width of the bounding box.
func (s Shape) Cols() int {
	return s.cols
}

// At reports whether the cell at (r, c) of the bounding box is occupied.
func (s Shape) At(r, c int) bool {
	if r < 0 || r >= s.rows || c < 0 || c >= s.cols {
		panic(fmt.Sprintf("tetris: shape cell (%d,%d) outside %dx%d box", r, c, s.rows, s.cols))
	}
	return s.cells[r*s.cols+c]
}

// Cells returns the occupied cells relative to the bounding box's top-left
// corner, as (X=column, Y=row) points in row-major order.
func (s Shape) Cells() []core.Point {
	pts := make([]core.Point, 0, 4)
	for r := 0; r < s.rows; r++ {
		for c := 0; c < s.cols; c++ {
			if s.cells[r*s.cols+c] {
				pts = append(pts, core.Point{X: c, Y: r})
			}
		}
	}
	return pts
}

// Rotate returns the shape turned 90° clockwise about its bounding-box
// corner: cell (r, c) of the R×C source lands on (c, R-1-r) of a C×R result.
func (s Shape) Rotate() Shape {
	out := Shape{rows: s.cols, cols: s.rows}
	for r := 0; r < s.rows; r++ {
		for c := 0; c < s.cols; c++ {
			out.cells[c*out.cols+(s.rows-1-r)] = s.cells[r*s.cols+c]
		}
	}
	return out
}

// String renders the layout as '#'/'.' rows separated by '/'.
func (s Shape) String() string {
	var sb strings.Builder
	for r := 0; r < s.rows; r++ {
		if r > 0 {
			sb.WriteByte('/')
		}
		for c := 0; c < s.cols; c++ {
			if s.cells[r*s.cols+c] {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
