// Package beam solves the light-beam energizing puzzle (day 16).
//
// A beam enters the grid and travels cell to cell. Mirrors ('/' and '\')
// turn it, splitters ('-' and '|') hit side-on split it in two, and every
// other case lets it pass. A cell is energized if any beam crosses it.
//
// The search state is (position, heading): crossing a cell again with a
// different heading is a new state to explore, while crossing it again with
// the same heading is not. That is what makes the search terminate on
// grids where mirrors form loops.
//
// Part one enters at the top-left corner heading right; part two tries
// every edge cell heading inwards and keeps the best count. The entries
// are independent, so part two evaluates them concurrently over the shared,
// read-only grid.
package beam
