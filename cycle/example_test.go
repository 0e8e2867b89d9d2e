package cycle_test

import (
	"fmt"

	"github.com/katalvlaran/gridsolve/cycle"
)

// ExampleDetect projects a quadratic map mod 23 a billion steps ahead.
func ExampleDetect() {
	next := func(x int) int { return (x*x + 1) % 23 }
	res, err := cycle.Detect(3, next, func(x int) int { return x })
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	v, _ := res.At(1_000_000_000)
	fmt.Println(res.States, res.Offset, res.Period, v)

	// Output:
	// [3 10 9 13] 2 2 9
}
