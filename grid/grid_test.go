package grid_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridsolve/grid"
)

//----------------------------------------------------------------------------//
// Parse and New Tests
//----------------------------------------------------------------------------//

// TestParse_Errors verifies that Parse rejects empty or ragged inputs.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		text string
		err  error
	}{
		{"Empty", "", grid.ErrEmptyGrid},
		{"OnlyNewlines", "\n\n", grid.ErrEmptyGrid},
		{"NonRectangular", "ab\nc\n", grid.ErrNonRectangular},
		{"BlankMiddleRow", "ab\n\ncd", grid.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.Parse(tc.text)
			if !errors.Is(err, tc.err) {
				t.Errorf("Parse(%q) error = %v; want %v", tc.text, err, tc.err)
			}
			if !errors.Is(err, grid.ErrMalformedInput) {
				t.Errorf("Parse(%q) error = %v; want it to wrap ErrMalformedInput", tc.text, err)
			}
		})
	}
}

// TestNew_Errors covers the slice constructor.
func TestNew_Errors(t *testing.T) {
	_, err := grid.New(nil)
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)
	_, err = grid.New([][]byte{{}})
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)
	_, err = grid.New([][]byte{[]byte("ab"), []byte("c")})
	assert.ErrorIs(t, err, grid.ErrNonRectangular)
}

// TestNew_DeepCopy ensures later writes to the source rows do not leak in.
func TestNew_DeepCopy(t *testing.T) {
	rows := [][]byte{[]byte("ab"), []byte("cd")}
	g, err := grid.New(rows)
	require.NoError(t, err)
	rows[0][0] = 'X'
	assert.Equal(t, byte('a'), g.MustAt(grid.Point{Row: 0, Col: 0}))
}

// TestParse_Dimensions checks that re-serialization recovers the row/column counts.
func TestParse_Dimensions(t *testing.T) {
	cases := []struct {
		text       string
		rows, cols int
	}{
		{"a", 1, 1},
		{"abc\n", 1, 3},
		{"ab\r\ncd\r\nef\r\n", 3, 2},
		{".....\n.S-7.\n.|.|.\n.L-J.\n.....\n", 5, 5},
	}
	for _, tc := range cases {
		g, err := grid.Parse(tc.text)
		require.NoError(t, err)
		r, c := g.Dimensions()
		assert.Equal(t, tc.rows, r)
		assert.Equal(t, tc.cols, c)

		again, err := grid.Parse(g.String())
		require.NoError(t, err)
		r2, c2 := again.Dimensions()
		assert.Equal(t, r, r2)
		assert.Equal(t, c, c2)
		assert.Equal(t, g.String(), again.String())
	}
}

//----------------------------------------------------------------------------//
// Access Tests
//----------------------------------------------------------------------------//

// TestAt_Bounds checks At on a 2×3 grid.
func TestAt_Bounds(t *testing.T) {
	g, err := grid.Parse("abc\ndef")
	require.NoError(t, err)

	sym, err := g.At(grid.Point{Row: 1, Col: 2})
	require.NoError(t, err)
	assert.Equal(t, byte('f'), sym)

	invalid := []grid.Point{{Row: -1, Col: 0}, {Row: 2, Col: 0}, {Row: 0, Col: 3}, {Row: 0, Col: -1}}
	for _, p := range invalid {
		_, err := g.At(p)
		if !errors.Is(err, grid.ErrOutOfBounds) {
			t.Errorf("At(%v) error = %v; want ErrOutOfBounds", p, err)
		}
		if g.InBounds(p) {
			t.Errorf("InBounds(%v)=true; want false", p)
		}
	}
}

// TestIndexCoordinate verifies row-major index conversion round-trips.
func TestIndexCoordinate(t *testing.T) {
	g, err := grid.Parse("abcd\nefgh\nijkl")
	require.NoError(t, err)
	for i := 0; i < g.Len(); i++ {
		p := g.Coordinate(i)
		assert.Equal(t, i, g.Index(p))
	}
	assert.Equal(t, grid.Point{Row: 2, Col: 1}, g.Coordinate(9))
}

// TestFind locates the first matching symbol.
func TestFind(t *testing.T) {
	g, err := grid.Parse("..S\nS..")
	require.NoError(t, err)
	p, ok := g.Find('S')
	require.True(t, ok)
	assert.Equal(t, grid.Point{Row: 0, Col: 2}, p)
	_, ok = g.Find('#')
	assert.False(t, ok)
}

// TestNeighbors4 checks corner, edge and inner cells.
func TestNeighbors4(t *testing.T) {
	g, err := grid.Parse("...\n...\n...")
	require.NoError(t, err)
	assert.Equal(t, []grid.Point{{Row: 0, Col: 1}, {Row: 1, Col: 0}}, g.Neighbors4(grid.Point{}))
	assert.Len(t, g.Neighbors4(grid.Point{Row: 1, Col: 1}), 4)
	assert.Len(t, g.Neighbors4(grid.Point{Row: 0, Col: 1}), 3)
}

// TestClone ensures the working copy is independent of the grid.
func TestClone(t *testing.T) {
	g, err := grid.Parse("O.\n.#")
	require.NoError(t, err)
	c := g.Clone()
	c[0][0] = '.'
	assert.Equal(t, byte('O'), g.MustAt(grid.Point{}))
	assert.Equal(t, "O.\n.#\n", g.String())
}

//----------------------------------------------------------------------------//
// Direction Tests
//----------------------------------------------------------------------------//

func TestDirection(t *testing.T) {
	for _, d := range grid.Directions {
		assert.Equal(t, d, d.Reverse().Reverse())
		assert.Equal(t, d, d.TurnLeft().TurnRight())
		assert.Equal(t, d.Reverse(), d.TurnRight().TurnRight())
		back := grid.Point{}.Step(d).Step(d.Reverse())
		assert.Equal(t, grid.Point{}, back)
	}
	assert.True(t, grid.Up.Vertical())
	assert.False(t, grid.Left.Vertical())
	assert.Equal(t, grid.Point{Row: 3, Col: -6}, grid.Point{Row: 3}.StepN(grid.Left, 6))
	assert.Equal(t, "down", grid.Down.String())
}
