// Package puzzle defines the contract every daily solver exposes and a small
// registry the CLI dispatches through.
//
// A day is the triple (Parse, PartOne, PartTwo). New adapts that triple,
// whatever the parsed input type, into a Solver. Solve parses once and then
// runs both parts concurrently on the same parsed value, so part functions
// must treat their input as read-only and clone anything they transform.
//
// A day either yields both answers or fails outright; there are no partial
// answers and no retries.
package puzzle
