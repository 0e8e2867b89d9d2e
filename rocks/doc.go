// Package rocks solves the tilting-platform puzzle (day 14).
//
// Round rocks ('O') roll when the platform is tilted, stopping at the edge,
// at a cube rock ('#') or at a rock that already settled. Part one tilts
// north once and reports the load on the north beams; part two runs a
// billion spin cycles (north, west, south, east) and reports the load, which
// is only feasible because the configurations fall into a cycle that can be
// projected forward.
package rocks
