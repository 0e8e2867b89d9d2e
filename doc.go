// Package gridsolve is a set of solvers for grid-search puzzles: pipe loops,
// tilting rocks, light beams, heat-loss routing and lagoon digging.
//
// Every puzzle follows the same shape. Parse a 2-D character grid, run a
// bounded search over states built from a position plus whatever the rule
// needs to be Markovian (a heading, a run length), and fold the result into
// a single number.
//
// The reusable pieces live in their own packages:
//
//	grid/       Grid, Point and Direction; parsing and bounds checks
//	bfs/        generic breadth-first search and multi-seed flood fill
//	dijkstra/   generic Dijkstra over comparable states
//	cycle/      cycle detection over deterministic state sequences
//	puzzle/     the Solver contract and the day registry
//
// One package per day builds on them:
//
//	pipemaze/   day 10, the farthest loop tile and the enclosed tiles
//	rocks/      day 14, tilting and spin-cycle load via cycle projection
//	beam/       day 16, energized cells from one or every edge entry
//	crucible/   day 17, least heat loss under a run-length rule
//	lagoon/     day 18, lagoon volume by flood fill and by shoelace
//
// config/ and inputs/ back the gridsolve command in cmd/gridsolve, which
// runs any subset of days over plain, gzip or zstd input files.
package gridsolve
