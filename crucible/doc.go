// Package crucible solves the minimum heat-loss routing puzzle (day 17).
//
// A crucible starts at the top-left block of the city and must reach the
// bottom-right block. Entering a block costs that block's digit. The
// crucible can never reverse, and a Rule bounds how far it moves in one
// direction: it must turn after MaxRun blocks and may only turn or stop
// once it has gone MinRun blocks.
//
// The search state carries (position, heading, run length), so the state
// space stays finite and plain Dijkstra over it gives the exact answer.
// The answer is the cheapest state at the destination whose run length
// satisfies the rule, whatever its heading.
package crucible
