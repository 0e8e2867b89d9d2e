package pipemaze

import (
	"fmt"

	"github.com/katalvlaran/gridsolve/bfs"
	"github.com/katalvlaran/gridsolve/grid"
	"github.com/katalvlaran/gridsolve/puzzle"
)

// Solver wires the day into the puzzle registry.
var Solver = puzzle.New(10, "Pipe Maze", Parse, PartOne, PartTwo)

// Maze is the parsed pipe grid and the location of its start tile.
type Maze struct {
	Grid  *grid.Grid
	Start grid.Point
}

// Parse reads the pipe grid. The grid must contain a start tile.
func Parse(text string) (*Maze, error) {
	g, err := grid.Parse(text)
	if err != nil {
		return nil, err
	}
	s, ok := g.Find(start)
	if !ok {
		return nil, fmt.Errorf("%w: no start tile %q", grid.ErrMalformedInput, start)
	}
	return &Maze{Grid: g, Start: s}, nil
}

// PartOne returns the loop distance from the start to the farthest loop tile.
func PartOne(m *Maze) (int, error) {
	loop, err := m.FindLoop()
	if err != nil {
		return 0, err
	}
	return loop.Farthest, nil
}

// PartTwo returns the number of tiles enclosed by the loop.
func PartTwo(m *Maze) (int, error) {
	loop, err := m.FindLoop()
	if err != nil {
		return 0, err
	}
	return loop.Enclosed(), nil
}

// Neighbors is the loop-pipe rule: the tiles p's pipe opens towards whose
// own pipe opens back towards p. The start tile opens every way, so from it
// only the adjacent pipes pointing at it qualify.
func (m *Maze) Neighbors(p grid.Point) ([]grid.Point, error) {
	sym, err := m.Grid.At(p)
	if err != nil {
		return nil, err
	}
	var out []grid.Point
	for _, d := range grid.Directions {
		ok, err := opens(sym, d, p)
		if err != nil {
			return nil, err
		}
		q := p.Step(d)
		if !ok || !m.Grid.InBounds(q) {
			continue
		}
		back, err := opens(m.Grid.MustAt(q), d.Reverse(), q)
		if err != nil {
			return nil, err
		}
		if back {
			out = append(out, q)
		}
	}
	return out, nil
}

// Loop is the result of searching and normalizing the pipe loop.
type Loop struct {
	maze *Maze

	// Distance maps every loop tile to its loop distance from the start.
	Distance map[grid.Point]int
	// Farthest is the largest loop distance.
	Farthest int
	// StartShape is the concrete pipe symbol the start tile stands for.
	StartShape byte
}

// FindLoop runs the search and start-tile normalization phases.
// Returns ErrOutOfBounds if Start lies outside the grid, ErrUnsolvable if
// the start tile does not sit on a closed loop, ErrUnknownSymbol for stray
// symbols.
//
// Pipes next to the start may point at it without belonging to the loop.
// Each candidate chain is traced until it comes back to the start or dead
// ends, and only the first closed chain is kept.
func (m *Maze) FindLoop() (*Loop, error) {
	if !m.Grid.InBounds(m.Start) {
		return nil, grid.OutOfBounds(m.Start)
	}

	candidates, err := m.Neighbors(m.Start)
	if err != nil {
		return nil, err
	}
	var chain []grid.Point
	for _, c := range candidates {
		if chain, err = m.trace(c); err != nil {
			return nil, err
		}
		if chain != nil {
			break
		}
	}
	if chain == nil {
		return nil, fmt.Errorf("%w: start tile %v is not on a closed loop (%d candidate pipes)",
			grid.ErrUnsolvable, m.Start, len(candidates))
	}

	// The chain leaves through one loop neighbor and returns through the other.
	shape, ok := shapeOf(direction(m.Start, chain[1]), direction(m.Start, chain[len(chain)-1]))
	if !ok {
		return nil, fmt.Errorf("%w: no pipe shape for start tile", grid.ErrUnsolvable)
	}

	onLoop := make(map[grid.Point]bool, len(chain))
	for _, p := range chain {
		onLoop[p] = true
	}
	res, err := bfs.BFS(m.Start, m.Neighbors, bfs.WithFilterNeighbor(func(_, q grid.Point) bool {
		return onLoop[q]
	}))
	if err != nil {
		return nil, err
	}
	_, far, _ := res.Farthest()

	return &Loop{
		maze:       m,
		Distance:   res.Depth,
		Farthest:   far,
		StartShape: shape,
	}, nil
}

// trace follows the pipe chain that leaves the start tile through first.
// It returns the chain in walk order, start tile first, if the chain closes
// back on the start, and nil if it dead-ends.
func (m *Maze) trace(first grid.Point) ([]grid.Point, error) {
	chain := []grid.Point{m.Start}
	prev, cur := m.Start, first
	// Every tile appears at most once on a chain.
	for n := m.Grid.Len(); n > 0; n-- {
		if cur == m.Start {
			return chain, nil
		}
		chain = append(chain, cur)

		dirs, ok := pipes[m.Grid.MustAt(cur)]
		if !ok {
			return nil, nil
		}
		d := dirs[0]
		if cur.Step(d) == prev {
			d = dirs[1]
		}
		next := cur.Step(d)
		if !m.Grid.InBounds(next) {
			return nil, nil
		}
		back, err := opens(m.Grid.MustAt(next), d.Reverse(), next)
		if err != nil {
			return nil, err
		}
		if !back {
			return nil, nil
		}
		prev, cur = cur, next
	}
	return nil, nil
}

// direction returns the heading from p to its orthogonal neighbor q.
func direction(p, q grid.Point) grid.Direction {
	for _, d := range grid.Directions {
		if p.Step(d) == q {
			return d
		}
	}
	panic(fmt.Sprintf("pipemaze: %v and %v are not adjacent", p, q))
}

// Contains reports whether p is a loop tile.
func (l *Loop) Contains(p grid.Point) bool {
	_, ok := l.Distance[p]
	return ok
}

// Len returns the number of loop tiles.
func (l *Loop) Len() int { return len(l.Distance) }

// symbol returns the tile at p with the start tile normalized.
func (l *Loop) symbol(p grid.Point) byte {
	if p == l.maze.Start {
		return l.StartShape
	}
	return l.maze.Grid.MustAt(p)
}

// Enclosed counts non-loop tiles inside the loop. Scanning each row from
// the left edge, the scan is inside after crossing an odd number of loop
// tiles that connect upwards.
func (l *Loop) Enclosed() int {
	rows, cols := l.maze.Grid.Dimensions()
	count := 0
	for r := 0; r < rows; r++ {
		inside := false
		for c := 0; c < cols; c++ {
			p := grid.Point{Row: r, Col: c}
			switch {
			case l.Contains(p):
				if northward(l.symbol(p)) {
					inside = !inside
				}
			case inside:
				count++
			}
		}
	}
	return count
}
