package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/gridsolve/bfs"
	"github.com/katalvlaran/gridsolve/grid"
)

// ExampleBFS demonstrates BFS layering on a 3×3 grid with a wall in the middle.
// The rule never steps onto '#', so the center cell is unreachable.
func ExampleBFS() {
	g, _ := grid.Parse("...\n.#.\n...\n")
	next := func(p grid.Point) ([]grid.Point, error) {
		var out []grid.Point
		for _, q := range g.Neighbors4(p) {
			if g.MustAt(q) != '#' {
				out = append(out, q)
			}
		}
		return out, nil
	}

	res, err := bfs.BFS(grid.Point{}, next)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	far, depth, _ := res.Farthest()
	fmt.Println(len(res.Order), far, depth)
	fmt.Println(res.Reached(grid.Point{Row: 1, Col: 1}))

	// Output:
	// 8 (2,2) 4
	// false
}
