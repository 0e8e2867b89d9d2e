package bfs

import (
	"context"
	"fmt"

	"github.com/gammazero/deque"
)

// queueItem pairs a state with its BFS depth.
type queueItem[S comparable] struct {
	state S
	depth int
}

// walker encapsulates mutable BFS state.
type walker[S comparable] struct {
	next  NeighborFunc[S]
	opts  Options[S]
	ctx   context.Context
	queue deque.Deque[queueItem[S]]
	res   *Result[S]
}

// BFS runs breadth-first search from start, applying any number of
// functional Options.
// Returns ErrNilNeighborFunc for a nil rule, ErrOptionViolation for bad
// options, ErrNeighbors wrapping a rule failure, or any hook error.
// The partial result is returned alongside an error.
func BFS[S comparable](start S, next NeighborFunc[S], opts ...Option[S]) (*Result[S], error) {
	return run([]S{start}, next, opts)
}

// FloodFill runs a multi-seed BFS: every seed starts at depth 0 and the
// search grows all regions simultaneously. Duplicate seeds are ignored.
// Returns ErrNoSeeds for an empty seed list.
func FloodFill[S comparable](seeds []S, next NeighborFunc[S], opts ...Option[S]) (*Result[S], error) {
	if len(seeds) == 0 {
		return nil, ErrNoSeeds
	}
	return run(seeds, next, opts)
}

func run[S comparable](seeds []S, next NeighborFunc[S], opts []Option[S]) (*Result[S], error) {
	// Validate the rule
	if next == nil {
		return nil, ErrNilNeighborFunc
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions[S]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Prepare walker
	w := &walker[S]{
		next: next,
		opts: o,
		ctx:  o.Ctx,
		res: &Result[S]{
			Depth:  make(map[S]int),
			Parent: make(map[S]S),
		},
	}
	// Seed queue with every distinct seed (no parent)
	for _, s := range seeds {
		if !w.res.Reached(s) {
			w.enqueue(s, 0, s, false)
		}
	}

	// Main loop
	return w.res, w.loop()
}

// enqueue records the depth and parent of s and appends it to the queue.
func (w *walker[S]) enqueue(s S, d int, parent S, hasParent bool) {
	w.res.Depth[s] = d
	if hasParent {
		w.res.Parent[s] = parent
	}
	w.queue.PushBack(queueItem[S]{state: s, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[S]) loop() error {
	for w.queue.Len() > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue.PopFront()
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}
	return nil
}

// visit records the state in Order and calls OnVisit.
func (w *walker[S]) visit(item queueItem[S]) error {
	w.res.Order = append(w.res.Order, item.state)
	if err := w.opts.OnVisit(item.state, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", item.state, err)
	}
	return nil
}

// enqueueNeighbors expands item, applies filtering and MaxDepth,
// and enqueues each unseen successor.
func (w *walker[S]) enqueueNeighbors(item queueItem[S]) error {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	succ, err := w.next(item.state)
	if err != nil {
		return fmt.Errorf("%w: expanding %v: %w", ErrNeighbors, item.state, err)
	}
	for _, s := range succ {
		if !w.opts.FilterNeighbor(item.state, s) {
			continue
		}
		// first time seen?
		if !w.res.Reached(s) {
			w.enqueue(s, nextDepth, item.state, true)
		}
	}
	return nil
}
