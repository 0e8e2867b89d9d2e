package crucible_test

import (
	"fmt"

	"github.com/katalvlaran/gridsolve/crucible"
	"github.com/katalvlaran/gridsolve/grid"
)

// ExamplePath routes around a wall of nines.
func ExamplePath() {
	c, _ := crucible.Parse("111119\n999199\n999111\n")
	path, cost, _ := crucible.Path(c, crucible.Standard)
	var route []grid.Point
	for _, s := range path[1:] {
		route = append(route, s.Pos)
	}
	fmt.Println(route)
	fmt.Println(cost)
	// Output:
	// [(0,1) (0,2) (0,3) (1,3) (2,3) (2,4) (2,5)]
	// 7
}
