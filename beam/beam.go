package beam

import (
	"context"
	"fmt"
	"runtime"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gridsolve/bfs"
	"github.com/katalvlaran/gridsolve/grid"
	"github.com/katalvlaran/gridsolve/puzzle"
)

// Log is the package logger.
var Log = logrus.New()

// Solver wires the day into the puzzle registry.
var Solver = puzzle.New(16, "The Floor Will Be Lava", Parse, PartOne, PartTwo)

// State is a beam at Pos travelling towards Dir.
type State struct {
	Pos grid.Point
	Dir grid.Direction
}

// Parse reads the contraption layout.
func Parse(text string) (*grid.Grid, error) {
	return grid.Parse(text)
}

// PartOne energizes from the top-left corner heading right.
func PartOne(g *grid.Grid) (int, error) {
	return Energize(g, State{Pos: grid.Point{}, Dir: grid.Right})
}

// PartTwo returns the best energized count over every edge entry.
func PartTwo(g *grid.Grid) (int, error) {
	best, _, err := BestEntry(context.Background(), g)
	return best, err
}

// Headings returns the headings a beam leaves sym with after arriving with
// heading d. Returns ErrUnknownSymbol for symbols outside ". / \ - |".
func Headings(sym byte, d grid.Direction, at grid.Point) ([]grid.Direction, error) {
	switch sym {
	case '.':
		return []grid.Direction{d}, nil
	case '/':
		// right↔up, left↔down
		switch d {
		case grid.Right:
			return []grid.Direction{grid.Up}, nil
		case grid.Up:
			return []grid.Direction{grid.Right}, nil
		case grid.Left:
			return []grid.Direction{grid.Down}, nil
		default:
			return []grid.Direction{grid.Left}, nil
		}
	case '\\':
		// right↔down, left↔up
		switch d {
		case grid.Right:
			return []grid.Direction{grid.Down}, nil
		case grid.Down:
			return []grid.Direction{grid.Right}, nil
		case grid.Left:
			return []grid.Direction{grid.Up}, nil
		default:
			return []grid.Direction{grid.Left}, nil
		}
	case '-':
		if d.Vertical() {
			return []grid.Direction{grid.Left, grid.Right}, nil
		}
		return []grid.Direction{d}, nil
	case '|':
		if !d.Vertical() {
			return []grid.Direction{grid.Up, grid.Down}, nil
		}
		return []grid.Direction{d}, nil
	}
	return nil, grid.UnknownSymbol(sym, at)
}

// Rule returns the light-beam neighbor function for g. Beams that would
// leave the grid are dropped.
func Rule(g *grid.Grid) bfs.NeighborFunc[State] {
	return func(s State) ([]State, error) {
		sym, err := g.At(s.Pos)
		if err != nil {
			return nil, err
		}
		dirs, err := Headings(sym, s.Dir, s.Pos)
		if err != nil {
			return nil, err
		}
		out := make([]State, 0, len(dirs))
		for _, d := range dirs {
			if q := s.Pos.Step(d); g.InBounds(q) {
				out = append(out, State{Pos: q, Dir: d})
			}
		}
		return out, nil
	}
}

// Energize counts the distinct cells crossed by a beam entering at start.
// Returns ErrOutOfBounds if start lies outside the grid.
func Energize(g *grid.Grid, start State) (int, error) {
	return EnergizeContext(context.Background(), g, start)
}

// EnergizeContext is Energize with a search that stops with ctx.Err() once
// ctx is done.
func EnergizeContext(ctx context.Context, g *grid.Grid, start State) (int, error) {
	if !g.InBounds(start.Pos) {
		return 0, grid.OutOfBounds(start.Pos)
	}
	res, err := bfs.BFS(start, Rule(g), bfs.WithContext[State](ctx))
	if err != nil {
		return 0, err
	}
	cells := make(map[grid.Point]struct{}, len(res.Order))
	for _, s := range res.Order {
		cells[s.Pos] = struct{}{}
	}
	return len(cells), nil
}

// Entries lists every edge cell with the heading pointing into the grid:
// top row down, bottom row up, left column right, right column left.
func Entries(g *grid.Grid) []State {
	rows, cols := g.Dimensions()
	out := make([]State, 0, 2*(rows+cols))
	for c := 0; c < cols; c++ {
		out = append(out,
			State{Pos: grid.Point{Row: 0, Col: c}, Dir: grid.Down},
			State{Pos: grid.Point{Row: rows - 1, Col: c}, Dir: grid.Up},
		)
	}
	for r := 0; r < rows; r++ {
		out = append(out,
			State{Pos: grid.Point{Row: r, Col: 0}, Dir: grid.Right},
			State{Pos: grid.Point{Row: r, Col: cols - 1}, Dir: grid.Left},
		)
	}
	return out
}

// BestEntry energizes from every entry concurrently and returns the best
// count with the entry that produced it (the first in Entries order on ties).
func BestEntry(ctx context.Context, g *grid.Grid) (int, State, error) {
	entries := Entries(g)
	counts := make([]int, len(entries))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i, e := range entries {
		i, e := i, e
		eg.Go(func() error {
			n, err := EnergizeContext(ctx, g, e)
			if err != nil {
				return fmt.Errorf("entry %v %v: %w", e.Pos, e.Dir, err)
			}
			counts[i] = n
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return 0, State{}, err
	}

	best := 0
	for i, n := range counts {
		if n > counts[best] {
			best = i
		}
	}
	Log.WithFields(logrus.Fields{
		"entries":   len(entries),
		"best":      counts[best],
		"entry_pos": entries[best].Pos,
		"entry_dir": entries[best].Dir,
	}).Debug("best entry")

	return counts[best], entries[best], nil
}
