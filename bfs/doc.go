// Package bfs provides breadth-first search over an implicit state graph,
// returning unweighted shortest-path depths, parent links and visit order.
//
// The graph is never materialized: callers supply a NeighborFunc mapping a
// state to its successor states. Any comparable type can be a state, so a
// plain grid.Point works for flood fills and a (position, direction) struct
// works for searches that must tell apart arrivals from different headings.
//
// Guarantees:
//
//   - A state is enqueued only the first time it is discovered, so every
//     state is visited at most once and the search terminates on any finite
//     state space, even when the graph contains cycles.
//   - Depth[s] is the minimum number of edges from a seed to s.
//   - Visit order is non-decreasing in depth.
//
// Options:
//
//   - WithContext:        cancellation checked once per dequeue.
//   - WithOnVisit:        hook per visited state; an error aborts the search.
//   - WithMaxDepth:       stop expanding past a depth (0 = no limit).
//   - WithFilterNeighbor: prune transitions.
//
// Complexity: O(S + T) time and O(S) memory, S = reachable states,
// T = transitions produced by the NeighborFunc.
package bfs
