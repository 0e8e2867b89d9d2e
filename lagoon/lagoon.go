package lagoon

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridsolve/bfs"
	"github.com/katalvlaran/gridsolve/grid"
	"github.com/katalvlaran/gridsolve/puzzle"
)

const (
	trench = '#'
	ground = '.'
)

// MaxDigArea caps the bounding box Dig will rasterize.
const MaxDigArea = 1 << 24

// ErrTooLarge indicates a plan whose bounding box exceeds MaxDigArea.
var ErrTooLarge = errors.New("lagoon: plan too large to rasterize")

// Solver wires the day into the puzzle registry.
var Solver = puzzle.New(18, "Lavaduct Lagoon", Parse, PartOne, PartTwo)

// PartOne measures the plan as written by flood fill.
func PartOne(p Plan) (int, error) { return Volume(p) }

// PartTwo measures the colour-decoded plan.
func PartTwo(p Plan) (int, error) {
	d, err := p.Decode()
	if err != nil {
		return 0, err
	}
	return ShoelaceVolume(d)
}

// Dig rasterizes the trench into its bounding box: '#' for dug cells and
// '.' for untouched ground. The second result is the origin in grid
// coordinates.
func Dig(p Plan) (*grid.Grid, grid.Point, error) {
	if err := p.checkClosed(); err != nil {
		return nil, grid.Point{}, err
	}
	corners := p.Corners()
	lo, hi := corners[0], corners[0]
	for _, c := range corners[1:] {
		lo.Row, lo.Col = min(lo.Row, c.Row), min(lo.Col, c.Col)
		hi.Row, hi.Col = max(hi.Row, c.Row), max(hi.Col, c.Col)
	}
	rows, cols := hi.Row-lo.Row+1, hi.Col-lo.Col+1
	if rows*cols > MaxDigArea {
		return nil, grid.Point{}, fmt.Errorf("%w: %dx%d", ErrTooLarge, rows, cols)
	}

	cells := make([][]byte, rows)
	for r := range cells {
		cells[r] = make([]byte, cols)
		for c := range cells[r] {
			cells[r][c] = ground
		}
	}
	origin := grid.Point{Row: -lo.Row, Col: -lo.Col}
	cur := origin
	cells[cur.Row][cur.Col] = trench
	for _, s := range p {
		for i := 0; i < s.Len; i++ {
			cur = cur.Step(s.Dir)
			cells[cur.Row][cur.Col] = trench
		}
	}

	g, err := grid.New(cells)
	if err != nil {
		return nil, grid.Point{}, err
	}
	return g, origin, nil
}

// Volume counts the lagoon cells by rasterizing the trench and flood-filling
// the ground reachable from the border. Everything the fill misses is trench
// or enclosed by it.
func Volume(p Plan) (int, error) {
	g, _, err := Dig(p)
	if err != nil {
		return 0, err
	}
	rows, cols := g.Dimensions()

	var seeds []grid.Point
	for _, q := range g.Points() {
		onBorder := q.Row == 0 || q.Row == rows-1 || q.Col == 0 || q.Col == cols-1
		if onBorder && g.MustAt(q) == ground {
			seeds = append(seeds, q)
		}
	}
	if len(seeds) == 0 {
		return g.Len(), nil
	}

	outside, err := bfs.FloodFill(seeds, func(q grid.Point) ([]grid.Point, error) {
		var out []grid.Point
		for _, n := range g.Neighbors4(q) {
			if g.MustAt(n) == ground {
				out = append(out, n)
			}
		}
		return out, nil
	})
	if err != nil {
		return 0, err
	}
	return g.Len() - len(outside.Order), nil
}

// ShoelaceVolume counts the lagoon cells from the trench corners alone.
// The plan must not cross itself.
func ShoelaceVolume(p Plan) (int, error) {
	if err := p.checkClosed(); err != nil {
		return 0, err
	}
	pts := p.Corners()
	var twice int64
	for i := 0; i+1 < len(pts); i++ {
		a, b := pts[i], pts[i+1]
		twice += int64(a.Col)*int64(b.Row) - int64(b.Col)*int64(a.Row)
	}
	if twice < 0 {
		twice = -twice
	}
	boundary := int64(p.Perimeter())
	// Pick: area = interior + boundary/2 - 1.
	interior := twice/2 - boundary/2 + 1
	return int(interior + boundary), nil
}
