package pipemaze

import (
	"github.com/katalvlaran/gridsolve/grid"
)

const (
	start  = 'S'
	ground = '.'
)

// pipes maps each pipe symbol to the two headings it connects.
var pipes = map[byte][2]grid.Direction{
	'|': {grid.Up, grid.Down},
	'-': {grid.Left, grid.Right},
	'L': {grid.Up, grid.Right},
	'J': {grid.Up, grid.Left},
	'7': {grid.Down, grid.Left},
	'F': {grid.Right, grid.Down},
}

// shapeOf returns the pipe symbol connecting exactly a and b.
func shapeOf(a, b grid.Direction) (byte, bool) {
	for sym, dirs := range pipes {
		if (dirs[0] == a && dirs[1] == b) || (dirs[0] == b && dirs[1] == a) {
			return sym, true
		}
	}
	return 0, false
}

// opens reports whether sym has an opening towards d. The start tile opens
// every way until it has been normalized.
func opens(sym byte, d grid.Direction, at grid.Point) (bool, error) {
	switch sym {
	case start:
		return true, nil
	case ground:
		return false, nil
	}
	dirs, ok := pipes[sym]
	if !ok {
		return false, grid.UnknownSymbol(sym, at)
	}
	return dirs[0] == d || dirs[1] == d, nil
}

// northward reports whether sym connects upwards; a row scan toggles
// inside/outside exactly on such tiles.
func northward(sym byte) bool {
	return sym == '|' || sym == 'L' || sym == 'J'
}
