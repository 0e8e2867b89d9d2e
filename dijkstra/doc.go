// Package dijkstra provides Dijkstra's shortest-path algorithm over an
// implicit, weighted state graph with non-negative edge costs.
//
// Overview:
//
//   - States are any comparable type. Callers encode whatever auxiliary
//     dimensions make the search Markovian (heading, run length, ...)
//     directly in the state, so the state space stays finite and the
//     textbook algorithm applies unmodified.
//   - An EdgeFunc yields the outgoing (state, cost) pairs of a state.
//   - A min-heap orders the frontier by accumulated cost; a state is
//     re-pushed whenever a strictly smaller cost is found for it.
//   - The search runs until the heap is exhausted, so Dist holds the true
//     shortest distance to every reachable state.
//
// Key features:
//
//   - ReturnPath: keep the predecessor map so each path can be rebuilt.
//   - MaxDistance: stop expanding states beyond a cost cap.
//   - Cheapest: minimum cost over all states matching a predicate, which is
//     how a terminal *position* is resolved across its auxiliary states.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V), V = reachable states, E = transitions.
//   - Space: O(V + E) under the lazy decrease-key strategy.
//
// Error handling (sentinel errors):
//
//   - ErrNilEdgeFunc:    no EdgeFunc supplied.
//   - ErrNegativeWeight: an EdgeFunc produced a negative cost.
//   - ErrBadMaxDistance: WithMaxDistance received a negative value.
package dijkstra
