package cycle

import (
	"errors"
	"fmt"
)

var (
	// ErrNilStep is returned when the transform or key function is nil.
	ErrNilStep = errors.New("cycle: step and key funcs must be non-nil")

	// ErrNoCycle is returned when MaxSteps is reached before any repeat.
	ErrNoCycle = errors.New("cycle: no repeat within step limit")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("cycle: invalid option supplied")

	// ErrNegativeIndex is returned by At for n < 0.
	ErrNegativeIndex = errors.New("cycle: negative iteration index")
)

// Options configures Detect.
type Options struct {
	// MaxSteps, if > 0, caps the number of transform applications.
	MaxSteps int

	err error
}

// Option configures Detect via functional arguments.
type Option func(*Options)

// WithMaxSteps caps the number of transform applications (0 = no cap).
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}

// Result is the recorded prefix of the sequence plus its cycle shape.
//   - States[i] is T^i(seed), for i in [0, Offset+Period).
//   - Offset is the index of the first state that repeats.
//   - Period is the distance between the repeat and its first occurrence.
type Result[S any] struct {
	States []S
	Offset int
	Period int
}

// Index maps iteration n onto an index of States.
func (r *Result[S]) Index(n int) (int, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeIndex, n)
	}
	if n < len(r.States) {
		return n, nil
	}
	return r.Offset + (n-r.Offset)%r.Period, nil
}

// At returns T^n(seed).
func (r *Result[S]) At(n int) (S, error) {
	i, err := r.Index(n)
	if err != nil {
		var zero S
		return zero, err
	}
	return r.States[i], nil
}
