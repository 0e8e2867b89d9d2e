// Package lagoon solves the lava lagoon digging puzzle (day 18).
//
// A dig plan is a closed walk of straight trench segments. The lagoon is the
// trench plus every cell it encloses. Two ways to measure it are provided:
//
//   - Volume rasterizes the trench into a grid and flood-fills the exterior
//     from every open border cell; the lagoon is whatever the fill cannot
//     reach. It needs memory proportional to the bounding box.
//   - ShoelaceVolume works on the corner points only: the shoelace formula
//     gives the polygon area and Pick's theorem converts it to a cell count
//     (interior + boundary = area + boundary/2 + 1). It handles the decoded
//     part-two plans whose segments run to hundreds of thousands of cells.
//
// Both agree on any plan small enough to rasterize.
package lagoon
