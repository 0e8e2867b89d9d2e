package grid

import "fmt"

// Point is a (Row, Col) cell coordinate. It is comparable and usable as a map key.
type Point struct {
	Row, Col int
}

// String renders the point as "(row,col)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Add returns p shifted by q.
func (p Point) Add(q Point) Point {
	return Point{Row: p.Row + q.Row, Col: p.Col + q.Col}
}

// Step returns the neighbor of p one cell towards d.
func (p Point) Step(d Direction) Point {
	return p.Add(d.Delta())
}

// StepN returns the point n cells from p towards d.
func (p Point) StepN(d Direction, n int) Point {
	delta := d.Delta()
	return Point{Row: p.Row + delta.Row*n, Col: p.Col + delta.Col*n}
}

// Direction is one of the four orthogonal headings.
type Direction uint8

const (
	// Up moves towards row 0.
	Up Direction = iota
	// Right moves towards the last column.
	Right
	// Down moves towards the last row.
	Down
	// Left moves towards column 0.
	Left
)

// Directions lists the four headings in clockwise order starting at Up.
var Directions = [4]Direction{Up, Right, Down, Left}

// offsets is indexed by Direction.
var offsets = [4]Point{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// Delta returns the (row, col) offset of one step towards d.
func (d Direction) Delta() Point {
	return offsets[d&3]
}

// Reverse returns the opposite heading.
func (d Direction) Reverse() Direction {
	return (d + 2) & 3
}

// TurnRight returns d rotated clockwise.
func (d Direction) TurnRight() Direction {
	return (d + 1) & 3
}

// TurnLeft returns d rotated counter-clockwise.
func (d Direction) TurnLeft() Direction {
	return (d + 3) & 3
}

// Vertical reports whether d is Up or Down.
func (d Direction) Vertical() bool {
	return d == Up || d == Down
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}
