package grid

import (
	"errors"
	"fmt"
)

// Error taxonomy shared by every solver built on top of grid.
var (
	// ErrMalformedInput indicates a structural parse failure.
	ErrMalformedInput = errors.New("grid: malformed input")
	// ErrOutOfBounds indicates coordinate arithmetic escaped the grid.
	ErrOutOfBounds = errors.New("grid: position out of bounds")
	// ErrUnknownSymbol indicates a cell symbol outside the expected alphabet.
	ErrUnknownSymbol = errors.New("grid: unknown symbol")
	// ErrUnsolvable indicates a search ended without reaching a required terminal state.
	ErrUnsolvable = errors.New("grid: unsolvable input")
)

var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = fmt.Errorf("%w: grid must have at least one row and one column", ErrMalformedInput)
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = fmt.Errorf("%w: all rows must have the same length", ErrMalformedInput)
)

// UnknownSymbol wraps ErrUnknownSymbol with the offending symbol and position.
func UnknownSymbol(sym byte, p Point) error {
	return fmt.Errorf("%w: %q at %v", ErrUnknownSymbol, sym, p)
}

// OutOfBounds wraps ErrOutOfBounds with the offending position.
func OutOfBounds(p Point) error {
	return fmt.Errorf("%w: %v", ErrOutOfBounds, p)
}
