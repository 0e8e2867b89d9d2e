package pipemaze

import (
	"github.com/katalvlaran/gridsolve/bfs"
	"github.com/katalvlaran/gridsolve/grid"
)

// Kind classifies a tile relative to the loop.
type Kind uint8

const (
	// Exterior tiles are connected to the area outside the grid.
	Exterior Kind = iota
	// OnLoop tiles are part of the loop itself.
	OnLoop
	// Interior tiles are enclosed by the loop.
	Interior
)

// Classification partitions every tile into exactly one Kind.
type Classification struct {
	rows, cols int
	kinds      []Kind

	Loop, Interior, Exterior int
}

// At returns the kind of tile p.
func (c *Classification) At(p grid.Point) Kind {
	return c.kinds[p.Row*c.cols+p.Col]
}

// Classify labels every tile by flood-filling the exterior.
//
// Pipes can touch without connecting, and the outside may squeeze between
// them, so the fill runs on a 3× upscaled grid where each tile becomes a
// 3×3 block with the pipe drawn through its center. A one-block margin
// surrounds the upscaled grid so the exterior is a single region. A tile is
// exterior iff the fill reaches the center of its block.
func (l *Loop) Classify() (*Classification, error) {
	rows, cols := l.maze.Grid.Dimensions()
	h, w := 3*rows+2, 3*cols+2
	wall := make([]bool, h*w)
	center := func(p grid.Point) grid.Point {
		return grid.Point{Row: 3*p.Row + 2, Col: 3*p.Col + 2}
	}
	for p := range l.Distance {
		c := center(p)
		wall[c.Row*w+c.Col] = true
		for _, d := range pipes[l.symbol(p)] {
			q := c.Step(d)
			wall[q.Row*w+q.Col] = true
		}
	}

	inside := func(p grid.Point) bool {
		return p.Row >= 0 && p.Row < h && p.Col >= 0 && p.Col < w
	}
	next := func(p grid.Point) ([]grid.Point, error) {
		out := make([]grid.Point, 0, 4)
		for _, d := range grid.Directions {
			q := p.Step(d)
			if inside(q) && !wall[q.Row*w+q.Col] {
				out = append(out, q)
			}
		}
		return out, nil
	}
	outside, err := bfs.BFS(grid.Point{}, next)
	if err != nil {
		return nil, err
	}

	cl := &Classification{rows: rows, cols: cols, kinds: make([]Kind, rows*cols)}
	for i := range cl.kinds {
		p := grid.Point{Row: i / cols, Col: i % cols}
		switch {
		case l.Contains(p):
			cl.kinds[i] = OnLoop
			cl.Loop++
		case outside.Reached(center(p)):
			cl.kinds[i] = Exterior
			cl.Exterior++
		default:
			cl.kinds[i] = Interior
			cl.Interior++
		}
	}
	return cl, nil
}
