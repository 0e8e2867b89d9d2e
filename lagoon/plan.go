package lagoon

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/gridsolve/grid"
)

// Step digs Len cells heading Dir. Color is the six hex digits of the
// step's colour code, without the leading '#'.
type Step struct {
	Dir   grid.Direction
	Len   int
	Color string
}

// Plan is an ordered dig plan starting at the origin.
type Plan []Step

var letters = map[string]grid.Direction{
	"U": grid.Up,
	"R": grid.Right,
	"D": grid.Down,
	"L": grid.Left,
}

// hexDirs maps the last colour digit to a heading.
var hexDirs = [4]grid.Direction{grid.Right, grid.Down, grid.Left, grid.Up}

// Parse reads lines of the form "R 6 (#70c710)". The plan must return to
// its starting cell.
func Parse(text string) (Plan, error) {
	text = strings.TrimRight(strings.ReplaceAll(text, "\r", ""), "\n")
	if text == "" {
		return nil, fmt.Errorf("%w: empty dig plan", grid.ErrMalformedInput)
	}
	lines := strings.Split(text, "\n")
	plan := make(Plan, 0, len(lines))
	for i, line := range lines {
		s, err := parseStep(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		plan = append(plan, s)
	}
	if err := plan.checkClosed(); err != nil {
		return nil, err
	}
	return plan, nil
}

func parseStep(line string) (Step, error) {
	f := strings.Fields(line)
	if len(f) != 3 {
		return Step{}, fmt.Errorf("%w: want 3 fields, got %q", grid.ErrMalformedInput, line)
	}
	d, ok := letters[f[0]]
	if !ok {
		return Step{}, fmt.Errorf("%w: direction %q", grid.ErrMalformedInput, f[0])
	}
	n, err := strconv.Atoi(f[1])
	if err != nil || n < 1 {
		return Step{}, fmt.Errorf("%w: length %q", grid.ErrMalformedInput, f[1])
	}
	c := f[2]
	if len(c) != 9 || !strings.HasPrefix(c, "(#") || !strings.HasSuffix(c, ")") {
		return Step{}, fmt.Errorf("%w: colour %q", grid.ErrMalformedInput, c)
	}
	c = c[2:8]
	if _, err := strconv.ParseUint(c, 16, 32); err != nil {
		return Step{}, fmt.Errorf("%w: colour %q", grid.ErrMalformedInput, c)
	}
	return Step{Dir: d, Len: n, Color: c}, nil
}

// Decode reads the real instruction hidden in the colour: five hex digits
// of length followed by one digit of heading (0 R, 1 D, 2 L, 3 U).
func (s Step) Decode() (Step, error) {
	if len(s.Color) != 6 {
		return Step{}, fmt.Errorf("%w: colour %q", grid.ErrMalformedInput, s.Color)
	}
	n, err := strconv.ParseInt(s.Color[:5], 16, 64)
	if err != nil {
		return Step{}, fmt.Errorf("%w: colour %q", grid.ErrMalformedInput, s.Color)
	}
	k := s.Color[5] - '0'
	if k > 3 || n < 1 {
		return Step{}, fmt.Errorf("%w: colour %q", grid.ErrMalformedInput, s.Color)
	}
	return Step{Dir: hexDirs[k], Len: int(n), Color: s.Color}, nil
}

// Decode decodes every step. The decoded plan must still close.
func (p Plan) Decode() (Plan, error) {
	out := make(Plan, len(p))
	for i, s := range p {
		d, err := s.Decode()
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
		out[i] = d
	}
	if err := out.checkClosed(); err != nil {
		return nil, err
	}
	return out, nil
}

// Corners returns the trench vertices, the origin first and last.
func (p Plan) Corners() []grid.Point {
	pts := make([]grid.Point, 0, len(p)+1)
	cur := grid.Point{}
	pts = append(pts, cur)
	for _, s := range p {
		cur = cur.StepN(s.Dir, s.Len)
		pts = append(pts, cur)
	}
	return pts
}

// Perimeter returns the number of trench cells on a non-crossing plan.
func (p Plan) Perimeter() int {
	n := 0
	for _, s := range p {
		n += s.Len
	}
	return n
}

func (p Plan) checkClosed() error {
	pts := p.Corners()
	if end := pts[len(pts)-1]; end != (grid.Point{}) {
		return fmt.Errorf("%w: trench ends at %v, not at the origin", grid.ErrMalformedInput, end)
	}
	return nil
}
