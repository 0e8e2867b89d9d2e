package pipemaze_test

import (
	"fmt"

	"github.com/katalvlaran/gridsolve/pipemaze"
)

// ExampleMaze_FindLoop walks the square loop around a single enclosed tile.
func ExampleMaze_FindLoop() {
	m, err := pipemaze.Parse(".....\n.S-7.\n.|.|.\n.L-J.\n.....\n")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	loop, err := m.FindLoop()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("loop=%d farthest=%d start=%c enclosed=%d\n",
		loop.Len(), loop.Farthest, loop.StartShape, loop.Enclosed())

	// Output:
	// loop=8 farthest=4 start=F enclosed=1
}
