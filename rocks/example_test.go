package rocks_test

import (
	"fmt"

	"github.com/katalvlaran/gridsolve/grid"
	"github.com/katalvlaran/gridsolve/rocks"
)

// ExamplePlatform_Tilt rolls two rocks north against a cube rock.
func ExamplePlatform_Tilt() {
	g, _ := grid.Parse("#..\n.O.\nOO.\n")
	p, err := rocks.NewPlatform(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	p.Tilt(grid.Up)
	fmt.Print(p)
	fmt.Println("load:", p.NorthLoad())

	// Output:
	// #O.
	// OO.
	// ...
	// load: 7
}
