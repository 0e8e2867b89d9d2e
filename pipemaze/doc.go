// Package pipemaze solves the pipe-loop puzzle (day 10).
//
// The input is a grid of pipe tiles with a single start tile 'S' sitting on
// a closed loop. Part one is the distance (in tiles along the loop) to the
// point farthest from the start; part two counts tiles enclosed by the loop.
//
// The work is a three-phase pipeline:
//
//  1. search:    every pipe pointing at 'S' is traced until its chain
//     closes back on 'S' or dead-ends; the closed chain is the loop, and a
//     BFS restricted to it gives the loop distances;
//  2. normalize: the start tile's real shape is inferred from the two loop
//     neighbors the closed chain leaves and re-enters through;
//  3. classify:  interior tiles are counted with a horizontal-ray parity
//     rule, or by flood-filling the exterior on a 3× upscaled grid.
//
// The grid itself is never mutated; the normalized start shape lives on Loop.
package pipemaze
