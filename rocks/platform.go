package rocks

import (
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridsolve/cycle"
	"github.com/katalvlaran/gridsolve/grid"
	"github.com/katalvlaran/gridsolve/puzzle"
)

// Log is the package logger.
var Log = logrus.New()

// Solver wires the day into the puzzle registry.
var Solver = puzzle.New(14, "Parabolic Reflector Dish", Parse, PartOne, PartTwo)

// SpinCycles is the number of spin cycles part two asks for.
const SpinCycles = 1_000_000_000

const (
	round = 'O'
	cube  = '#'
	empty = '.'
)

// spin is the tilt order of one spin cycle.
var spin = [4]grid.Direction{grid.Up, grid.Left, grid.Down, grid.Right}

// Parse reads the platform and checks every symbol is a rock or empty space.
func Parse(text string) (*grid.Grid, error) {
	g, err := grid.Parse(text)
	if err != nil {
		return nil, err
	}
	if _, err := NewPlatform(g); err != nil {
		return nil, err
	}
	return g, nil
}

// PartOne tilts north once and returns the north load.
func PartOne(g *grid.Grid) (int, error) {
	p, err := NewPlatform(g)
	if err != nil {
		return 0, err
	}
	p.Tilt(grid.Up)
	return p.NorthLoad(), nil
}

// PartTwo returns the north load after SpinCycles spin cycles.
func PartTwo(g *grid.Grid) (int, error) {
	return LoadAfter(g, SpinCycles)
}

// Platform is a mutable working copy of the grid.
type Platform struct {
	rows, cols int
	cells      [][]byte
}

// NewPlatform clones g into a Platform. Returns ErrUnknownSymbol for any
// symbol other than 'O', '#' or '.'.
func NewPlatform(g *grid.Grid) (*Platform, error) {
	cells := g.Clone()
	for r, row := range cells {
		for c, sym := range row {
			if sym != round && sym != cube && sym != empty {
				return nil, grid.UnknownSymbol(sym, grid.Point{Row: r, Col: c})
			}
		}
	}
	rows, cols := g.Dimensions()
	return &Platform{rows: rows, cols: cols, cells: cells}, nil
}

// Clone returns an independent copy of p.
func (p *Platform) Clone() *Platform {
	cells := make([][]byte, p.rows)
	for r := range cells {
		cells[r] = append([]byte(nil), p.cells[r]...)
	}
	return &Platform{rows: p.rows, cols: p.cols, cells: cells}
}

// lanes returns, for a tilt towards d, the first cell of every lane (the one
// against the destination wall), the heading pointing away from that wall
// and the lane length.
func (p *Platform) lanes(d grid.Direction) (starts []grid.Point, away grid.Direction, n int) {
	switch d {
	case grid.Up, grid.Down:
		row := 0
		if d == grid.Down {
			row = p.rows - 1
		}
		for c := 0; c < p.cols; c++ {
			starts = append(starts, grid.Point{Row: row, Col: c})
		}
		return starts, d.Reverse(), p.rows
	default:
		col := 0
		if d == grid.Right {
			col = p.cols - 1
		}
		for r := 0; r < p.rows; r++ {
			starts = append(starts, grid.Point{Row: r, Col: col})
		}
		return starts, d.Reverse(), p.cols
	}
}

// Tilt rolls every round rock as far as possible towards d. Each lane is
// scanned from the destination wall outwards, so a rock always meets the
// rocks nearer the wall already settled.
func (p *Platform) Tilt(d grid.Direction) {
	starts, away, n := p.lanes(d)
	for _, s := range starts {
		free := s
		for k := 0; k < n; k++ {
			at := s.StepN(away, k)
			switch p.cells[at.Row][at.Col] {
			case cube:
				free = at.Step(away)
			case round:
				p.cells[at.Row][at.Col] = empty
				p.cells[free.Row][free.Col] = round
				free = free.Step(away)
			}
		}
	}
}

// SpinCycle tilts north, west, south, then east.
func (p *Platform) SpinCycle() {
	for _, d := range spin {
		p.Tilt(d)
	}
}

// NorthLoad sums, over every round rock, its distance from the south edge
// counted in rows (a rock on the last row weighs 1).
func (p *Platform) NorthLoad() int {
	load := 0
	for r, row := range p.cells {
		for _, sym := range row {
			if sym == round {
				load += p.rows - r
			}
		}
	}
	return load
}

// Rocks returns the round-rock positions in row-major order.
func (p *Platform) Rocks() []grid.Point {
	var out []grid.Point
	for r, row := range p.cells {
		for c, sym := range row {
			if sym == round {
				out = append(out, grid.Point{Row: r, Col: c})
			}
		}
	}
	return out
}

// Key identifies the configuration by value. Cube rocks never move, so
// equal keys mean equal round-rock sets.
func (p *Platform) Key() string {
	var sb strings.Builder
	sb.Grow(p.rows * p.cols)
	for _, row := range p.cells {
		sb.Write(row)
	}
	return sb.String()
}

// String renders the platform as newline-terminated rows.
func (p *Platform) String() string {
	var sb strings.Builder
	for _, row := range p.cells {
		sb.Write(row)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// LoadAfter returns the north load after n spin cycles, detecting the cycle
// the configurations fall into and projecting n onto it.
func LoadAfter(g *grid.Grid, n int) (int, error) {
	seed, err := NewPlatform(g)
	if err != nil {
		return 0, err
	}
	step := func(p *Platform) *Platform {
		q := p.Clone()
		q.SpinCycle()
		return q
	}
	res, err := cycle.Detect(seed, step, (*Platform).Key)
	if err != nil {
		return 0, err
	}
	Log.WithFields(logrus.Fields{
		"offset": res.Offset,
		"period": res.Period,
	}).Debug("spin cycle repeats")

	p, err := res.At(n)
	if err != nil {
		return 0, err
	}
	return p.NorthLoad(), nil
}
