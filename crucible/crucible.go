package crucible

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridsolve/dijkstra"
	"github.com/katalvlaran/gridsolve/grid"
	"github.com/katalvlaran/gridsolve/puzzle"
)

// ErrInvalidRule indicates a Rule with MinRun < 1 or MaxRun < MinRun.
var ErrInvalidRule = errors.New("crucible: invalid run rule")

var (
	// Standard crucibles turn after at most three blocks.
	Standard = Rule{MinRun: 1, MaxRun: 3}
	// Ultra crucibles move four to ten blocks between turns.
	Ultra = Rule{MinRun: 4, MaxRun: 10}
)

// Solver wires the day into the puzzle registry.
var Solver = puzzle.New(17, "Clumsy Crucible", Parse, PartOne, PartTwo)

// Rule bounds the number of consecutive blocks moved in one direction.
type Rule struct {
	MinRun int
	MaxRun int
}

// Validate reports ErrInvalidRule for unusable bounds.
func (r Rule) Validate() error {
	if r.MinRun < 1 || r.MaxRun < r.MinRun {
		return fmt.Errorf("%w: min %d, max %d", ErrInvalidRule, r.MinRun, r.MaxRun)
	}
	return nil
}

// State is the crucible at Pos having moved Run blocks heading Dir.
// Run is zero only before the first move.
type State struct {
	Pos grid.Point
	Dir grid.Direction
	Run int
}

// City is the heat-loss map.
type City struct {
	rows, cols int
	loss       []int64
}

// Parse reads a grid of decimal digits.
func Parse(text string) (*City, error) {
	g, err := grid.Parse(text)
	if err != nil {
		return nil, err
	}
	c := &City{rows: g.Rows(), cols: g.Cols(), loss: make([]int64, g.Len())}
	for i, p := range g.Points() {
		sym := g.MustAt(p)
		if sym < '0' || sym > '9' {
			return nil, grid.UnknownSymbol(sym, p)
		}
		c.loss[i] = int64(sym - '0')
	}
	return c, nil
}

// Dimensions returns the city size.
func (c *City) Dimensions() (rows, cols int) { return c.rows, c.cols }

// Loss returns the heat lost entering p. p must be in bounds.
func (c *City) Loss(p grid.Point) int64 { return c.loss[p.Row*c.cols+p.Col] }

func (c *City) inBounds(p grid.Point) bool {
	return p.Row >= 0 && p.Row < c.rows && p.Col >= 0 && p.Col < c.cols
}

// Moves returns the transition function of the crucible under r.
func (c *City) Moves(r Rule) dijkstra.EdgeFunc[State] {
	return func(s State) ([]dijkstra.Edge[State], error) {
		out := make([]dijkstra.Edge[State], 0, 3)
		for _, d := range grid.Directions {
			run := 1
			if s.Run > 0 {
				switch {
				case d == s.Dir.Reverse():
					continue
				case d == s.Dir:
					if s.Run >= r.MaxRun {
						continue
					}
					run = s.Run + 1
				case s.Run < r.MinRun:
					continue
				}
			}
			q := s.Pos.Step(d)
			if !c.inBounds(q) {
				continue
			}
			out = append(out, dijkstra.Edge[State]{
				To:   State{Pos: q, Dir: d, Run: run},
				Cost: c.Loss(q),
			})
		}
		return out, nil
	}
}

// MinHeatLoss returns the least heat lost travelling from the top-left to the
// bottom-right block under r.
func MinHeatLoss(c *City, r Rule) (int, error) {
	_, _, cost, err := search(c, r)
	return int(cost), err
}

// Path returns one cheapest route from the top-left to the bottom-right block
// under r, start state included, and its heat loss.
func Path(c *City, r Rule) ([]State, int, error) {
	res, end, cost, err := search(c, r, dijkstra.WithReturnPath())
	if err != nil {
		return nil, 0, err
	}
	path, err := res.PathTo(end)
	if err != nil {
		return nil, 0, err
	}
	return path, int(cost), nil
}

func search(c *City, r Rule, opts ...dijkstra.Option) (*dijkstra.Result[State], State, int64, error) {
	if err := r.Validate(); err != nil {
		return nil, State{}, 0, err
	}
	start := State{}
	target := grid.Point{Row: c.rows - 1, Col: c.cols - 1}

	res, err := dijkstra.Dijkstra(start, c.Moves(r), opts...)
	if err != nil {
		return nil, State{}, 0, err
	}
	end, cost, ok := res.Cheapest(func(s State) bool {
		return s.Pos == target && (s.Run == 0 || s.Run >= r.MinRun)
	})
	if !ok {
		return nil, State{}, 0, fmt.Errorf("%w: %v not reachable with runs %d..%d",
			grid.ErrUnsolvable, target, r.MinRun, r.MaxRun)
	}
	return res, end, cost, nil
}

// PartOne routes a standard crucible.
func PartOne(c *City) (int, error) { return MinHeatLoss(c, Standard) }

// PartTwo routes an ultra crucible.
func PartTwo(c *City) (int, error) { return MinHeatLoss(c, Ultra) }
