package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrNilNeighborFunc is returned when no NeighborFunc is supplied.
	ErrNilNeighborFunc = errors.New("bfs: neighbor func is nil")

	// ErrNoSeeds is returned by FloodFill when the seed list is empty.
	ErrNoSeeds = errors.New("bfs: no seed states")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNeighbors wraps a failure reported by the NeighborFunc.
	ErrNeighbors = errors.New("bfs: neighbor expansion error")
)

// NeighborFunc returns the successor states of s. It must be pure and
// should return successors in a deterministic order.
type NeighborFunc[S comparable] func(s S) ([]S, error)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option[S comparable] func(*Options[S])

// Options holds parameters and callbacks to customize BFS execution.
type Options[S comparable] struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when visiting a state. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(s S, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	MaxDepth int

	// FilterNeighbor can skip transitions by returning false.
	FilterNeighbor func(curr, next S) bool

	err error
}

// DefaultOptions returns Options with background context, no depth limit,
// no filtering and a no-op visit hook.
func DefaultOptions[S comparable]() Options[S] {
	return Options[S]{
		Ctx:            context.Background(),
		OnVisit:        func(S, int) error { return nil },
		MaxDepth:       0,
		FilterNeighbor: func(_, _ S) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext[S comparable](ctx context.Context) Option[S] {
	return func(o *Options[S]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit[S comparable](fn func(s S, depth int) error) Option[S] {
	return func(o *Options[S]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: no limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth[S comparable](d int) Option[S] {
	return func(o *Options[S]) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips transitions when fn returns false.
func WithFilterNeighbor[S comparable](fn func(curr, next S) bool) Option[S] {
	return func(o *Options[S]) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result holds the outcome of a BFS traversal:
//   - Order: states in visit sequence.
//   - Depth: distance (in edges) from the nearest seed.
//   - Parent: predecessor in the BFS tree; seeds have no entry.
type Result[S comparable] struct {
	Order  []S
	Depth  map[S]int
	Parent map[S]S
}

// Reached reports whether s was discovered.
func (r *Result[S]) Reached(s S) bool {
	_, ok := r.Depth[s]
	return ok
}

// Farthest returns the first-visited state with the largest depth.
// ok is false for an empty result.
func (r *Result[S]) Farthest() (s S, depth int, ok bool) {
	depth = -1
	for _, v := range r.Order {
		if d := r.Depth[v]; d > depth {
			s, depth, ok = v, d, true
		}
	}
	if !ok {
		depth = 0
	}
	return s, depth, ok
}

// PathTo reconstructs the path from a seed to dest.
// Returns an error if dest was not reached.
func (r *Result[S]) PathTo(dest S) ([]S, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("bfs: no path to %v", dest)
	}
	path := []S{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
