package dijkstra

import (
	"container/heap"
	"fmt"
)

// Dijkstra computes shortest distances from source to every state reachable
// through next. It accepts functional options (WithReturnPath, WithMaxDistance).
//
// Preconditions and validation (in order):
//  1. next must be non-nil (ErrNilEdgeFunc).
//  2. options must be valid (ErrBadMaxDistance).
//  3. every produced edge cost must be ≥ 0 (ErrNegativeWeight).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra[S comparable](source S, next EdgeFunc[S], opts ...Option) (*Result[S], error) {
	// 1. Validate the edge func
	if next == nil {
		return nil, ErrNilEdgeFunc
	}
	// 2. Apply options and surface any recorded violation
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 3. Prepare runner state
	r := &runner[S]{
		next:    next,
		options: cfg,
		res: &Result[S]{
			Source: source,
			Dist:   make(map[S]int64),
		},
		visited: make(map[S]bool),
	}
	if cfg.ReturnPath {
		r.res.Prev = make(map[S]S)
	}

	// 4. Seed the heap and run the main loop
	r.init()
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.res, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[S comparable] struct {
	next    EdgeFunc[S]
	options Options
	res     *Result[S]
	visited map[S]bool // finalized states
	pq      statePQ[S]
}

// init seeds the heap with the source at distance 0.
func (r *runner[S]) init() {
	r.res.Dist[r.res.Source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &stateItem[S]{state: r.res.Source, dist: 0})
}

// process repeatedly extracts the closest unfinalized state and relaxes its edges.
// Stale heap entries (already finalized states) are skipped.
func (r *runner[S]) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*stateItem[S])
		u := item.state
		// skip stale entries
		if r.visited[u] {
			continue
		}
		// everything left in the heap is farther than the cap
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[u] = true

		if err := r.relax(u, item.dist); err != nil {
			return err
		}
	}

	return nil
}

// relax attempts to improve the distance of every successor of u.
// Only strictly better distances overwrite Dist/Prev and push a heap entry.
func (r *runner[S]) relax(u S, du int64) error {
	edges, err := r.next(u)
	if err != nil {
		return fmt.Errorf("%w: expanding %v: %w", ErrEdges, u, err)
	}
	for _, e := range edges {
		if e.Cost < 0 {
			return fmt.Errorf("%w: %v→%v weight=%d", ErrNegativeWeight, u, e.To, e.Cost)
		}
		newDist := du + e.Cost
		if newDist > r.options.MaxDistance {
			continue
		}
		if newDist >= r.res.Distance(e.To) {
			continue
		}
		r.res.Dist[e.To] = newDist
		if r.res.Prev != nil {
			r.res.Prev[e.To] = u
		}
		heap.Push(&r.pq, &stateItem[S]{state: e.To, dist: newDist})
	}

	return nil
}

// stateItem is a heap entry: a state and the distance it was pushed with.
type stateItem[S comparable] struct {
	state S
	dist  int64
}

// statePQ is a min-heap of *stateItem ordered by dist ascending.
// Outdated entries stay in the heap and are ignored when popped.
type statePQ[S comparable] []*stateItem[S]

func (pq statePQ[S]) Len() int           { return len(pq) }
func (pq statePQ[S]) Less(i, j int) bool { return pq[i].dist < pq[j].dist }
func (pq statePQ[S]) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

func (pq *statePQ[S]) Push(x interface{}) { *pq = append(*pq, x.(*stateItem[S])) }

func (pq *statePQ[S]) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
