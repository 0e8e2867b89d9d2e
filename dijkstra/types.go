package dijkstra

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilEdgeFunc indicates that no EdgeFunc was passed to Dijkstra.
	ErrNilEdgeFunc = errors.New("dijkstra: edge func is nil")

	// ErrNegativeWeight indicates that a negative edge cost was produced.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrEdges wraps a failure reported by the EdgeFunc.
	ErrEdges = errors.New("dijkstra: edge expansion error")
)

// Infinity marks an unreached state.
const Infinity int64 = math.MaxInt64

// Edge is a transition to To costing Cost.
type Edge[S comparable] struct {
	To   S
	Cost int64
}

// EdgeFunc returns the outgoing transitions of s. It must be pure.
type EdgeFunc[S comparable] func(s S) ([]Edge[S], error)

// Options configures the behavior of the Dijkstra algorithm.
//
// ReturnPath  – if true, Result.Prev is populated.
// MaxDistance – states whose distance would exceed this cap are not explored.
//
//	Must be ≥ 0. Default is Infinity (no cap).
type Options struct {
	ReturnPath  bool
	MaxDistance int64

	err error
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithReturnPath enables generation of the predecessor map in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// A negative value is reported as ErrBadMaxDistance when Dijkstra runs.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = fmt.Errorf("%w: got %d", ErrBadMaxDistance, max)
			return
		}
		o.MaxDistance = max
	}
}

// DefaultOptions returns Options with no path recording and no distance cap.
func DefaultOptions() Options {
	return Options{
		ReturnPath:  false,
		MaxDistance: Infinity,
	}
}

// Result holds shortest distances from the source.
//
// Dist maps every reached state to its minimum cost; unreached states are
// absent (Distance reports them as Infinity). Prev is nil unless
// WithReturnPath was given; Prev[v] == u means the best path to v ends u→v.
type Result[S comparable] struct {
	Source S
	Dist   map[S]int64
	Prev   map[S]S
}

// Distance returns the cost to reach s, or Infinity.
func (r *Result[S]) Distance(s S) int64 {
	if d, ok := r.Dist[s]; ok {
		return d
	}
	return Infinity
}

// Cheapest returns the state with minimal cost among those satisfying match.
// Ties are broken arbitrarily; ok is false if no reached state matches.
func (r *Result[S]) Cheapest(match func(S) bool) (best S, cost int64, ok bool) {
	cost = Infinity
	for s, d := range r.Dist {
		if d < cost && match(s) {
			best, cost, ok = s, d, true
		}
	}
	return best, cost, ok
}

// PathTo rebuilds the source → dest path from Prev.
// Returns an error if paths were not recorded or dest was not reached.
func (r *Result[S]) PathTo(dest S) ([]S, error) {
	if r.Prev == nil {
		return nil, errors.New("dijkstra: predecessor map not recorded (use WithReturnPath)")
	}
	if _, ok := r.Dist[dest]; !ok {
		return nil, fmt.Errorf("dijkstra: no path to %v", dest)
	}
	path := []S{dest}
	for cur := dest; cur != r.Source; {
		cur = r.Prev[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}
