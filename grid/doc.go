// Package grid models a puzzle input as an immutable 2-D grid of byte symbols.
//
// What:
//
//   - Grid wraps a rectangular block of text (one byte per cell).
//   - Point addresses a cell by (Row, Col); Direction moves between cells.
//   - Neighbors4 and Step give orthogonal adjacency for search rules.
//   - Clone hands out a mutable working copy for puzzles that transform cells.
//
// Why:
//
//   - Every grid puzzle shares the same parse, bounds and adjacency code;
//     only the neighbor rule on top of it changes.
//
// Complexity:
//
//   - Parse / New: O(R×C) time and memory.
//   - At, InBounds, Step: O(1).
//
// Errors:
//
//   - ErrMalformedInput: structural parse failure (ErrEmptyGrid, ErrNonRectangular wrap it).
//   - ErrOutOfBounds:    coordinate outside [0,rows)×[0,cols).
//   - ErrUnknownSymbol:  a neighbor rule met a symbol outside its alphabet.
//   - ErrUnsolvable:     a search exhausted its frontier without a required terminal.
package grid
