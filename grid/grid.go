package grid

import (
	"strings"
)

// Grid is an immutable rectangular array of byte symbols.
// Rows and Cols are fixed at construction; cells are stored row-major.
type Grid struct {
	rows, cols int
	cells      []byte
}

// Parse builds a Grid from newline-delimited text. A trailing newline and
// carriage returns are ignored. Returns ErrEmptyGrid if the text has no cells,
// ErrNonRectangular if any row length differs.
// Complexity: O(R×C) time and memory.
func Parse(text string) (*Grid, error) {
	text = strings.ReplaceAll(text, "\r", "")
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return nil, ErrEmptyGrid
	}
	lines := strings.Split(text, "\n")
	rows := make([][]byte, len(lines))
	for i, line := range lines {
		rows[i] = []byte(line)
	}

	return New(rows)
}

// New constructs a Grid from a non-empty, rectangular 2-D slice.
// It deep-copies the input so later mutation of rows cannot leak in.
func New(rows [][]byte) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	cells := make([]byte, 0, h*w)
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		cells = append(cells, row...)
	}

	return &Grid{rows: h, cols: w, cells: cells}, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Dimensions returns (rows, cols).
func (g *Grid) Dimensions() (rows, cols int) {
	return g.rows, g.cols
}

// Len returns the total number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// InBounds reports whether p lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(p Point) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// At returns the symbol at p, or ErrOutOfBounds.
func (g *Grid) At(p Point) (byte, error) {
	if !g.InBounds(p) {
		return 0, OutOfBounds(p)
	}
	return g.cells[g.Index(p)], nil
}

// MustAt returns the symbol at p. It panics if p is out of bounds, so callers
// must have checked InBounds first.
func (g *Grid) MustAt(p Point) byte {
	return g.cells[g.Index(p)]
}

// Index maps p to its row-major index: Row*Cols + Col.
func (g *Grid) Index(p Point) int {
	return p.Row*g.cols + p.Col
}

// Coordinate converts a row-major index back to a Point.
func (g *Grid) Coordinate(idx int) Point {
	return Point{Row: idx / g.cols, Col: idx % g.cols}
}

// Find returns the first cell (row-major) holding sym.
func (g *Grid) Find(sym byte) (Point, bool) {
	for i, c := range g.cells {
		if c == sym {
			return g.Coordinate(i), true
		}
	}
	return Point{}, false
}

// Points returns every cell coordinate in row-major order.
func (g *Grid) Points() []Point {
	pts := make([]Point, len(g.cells))
	for i := range g.cells {
		pts[i] = g.Coordinate(i)
	}
	return pts
}

// Neighbors4 returns the in-bounds orthogonal neighbors of p in
// Up, Right, Down, Left order.
func (g *Grid) Neighbors4(p Point) []Point {
	out := make([]Point, 0, 4)
	for _, d := range Directions {
		if q := p.Step(d); g.InBounds(q) {
			out = append(out, q)
		}
	}
	return out
}

// Row returns a copy of row r.
func (g *Grid) Row(r int) []byte {
	out := make([]byte, g.cols)
	copy(out, g.cells[r*g.cols:(r+1)*g.cols])
	return out
}

// Clone returns a mutable deep copy of the cells as rows.
func (g *Grid) Clone() [][]byte {
	out := make([][]byte, g.rows)
	for r := range out {
		out[r] = g.Row(r)
	}
	return out
}

// String re-serializes the grid as newline-terminated rows.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(len(g.cells) + g.rows)
	for r := 0; r < g.rows; r++ {
		sb.Write(g.cells[r*g.cols : (r+1)*g.cols])
		sb.WriteByte('\n')
	}
	return sb.String()
}
