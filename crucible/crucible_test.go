package crucible_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridsolve/crucible"
	"github.com/katalvlaran/gridsolve/grid"
)

const example = `2413432311323
3215453535623
3255245654254
3446585845452
4546657867536
1438598798454
4457876987766
3637877979653
4654967986887
4564679986453
1224686865563
2546548887735
4322674655533
`

const unfortunate = `111111111111
999999999991
999999999991
999999999991
999999999991
`

func TestParts(t *testing.T) {
	c, err := crucible.Parse(example)
	require.NoError(t, err)

	one, err := crucible.PartOne(c)
	require.NoError(t, err)
	assert.Equal(t, 102, one)

	two, err := crucible.PartTwo(c)
	require.NoError(t, err)
	assert.Equal(t, 94, two)
}

func TestMinHeatLoss(t *testing.T) {
	tests := []struct {
		name  string
		input string
		rule  crucible.Rule
		want  int
	}{
		{"ultra must keep going", unfortunate, crucible.Ultra, 71},
		{"standard on same map", unfortunate, crucible.Standard, 59},
		{"detour around a wall", "111119\n999199\n999111\n", crucible.Standard, 7},
		{"run of exactly three", "1234\n", crucible.Standard, 9},
		{"two by two", "19\n11\n", crucible.Standard, 2},
		{"single block", "5\n", crucible.Standard, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, err := crucible.Parse(tc.input)
			require.NoError(t, err)
			got, err := crucible.MinHeatLoss(c, tc.rule)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestMinHeatLoss_Unsolvable(t *testing.T) {
	// A single row longer than MaxRun+1 cannot be crossed without turning.
	c, err := crucible.Parse("11111\n")
	require.NoError(t, err)
	_, err = crucible.MinHeatLoss(c, crucible.Standard)
	assert.ErrorIs(t, err, grid.ErrUnsolvable)
}

func TestRuleValidate(t *testing.T) {
	c, err := crucible.Parse("12\n34\n")
	require.NoError(t, err)
	for _, r := range []crucible.Rule{{MinRun: 0, MaxRun: 3}, {MinRun: 4, MaxRun: 3}} {
		_, err := crucible.MinHeatLoss(c, r)
		assert.ErrorIs(t, err, crucible.ErrInvalidRule)
	}
	assert.NoError(t, crucible.Standard.Validate())
	assert.NoError(t, crucible.Ultra.Validate())
}

func TestParse_UnknownSymbol(t *testing.T) {
	_, err := crucible.Parse("12\n3x\n")
	assert.ErrorIs(t, err, grid.ErrUnknownSymbol)
	assert.Contains(t, err.Error(), "(1,1)")
}

// A cheapest path must be a legal walk whose losses add up to its cost.
func TestPath_Consistent(t *testing.T) {
	c, err := crucible.Parse(example)
	require.NoError(t, err)
	rows, cols := c.Dimensions()

	for _, r := range []crucible.Rule{crucible.Standard, crucible.Ultra} {
		path, cost, err := crucible.Path(c, r)
		require.NoError(t, err)
		require.NotEmpty(t, path)

		assert.Equal(t, crucible.State{}, path[0])
		last := path[len(path)-1]
		assert.Equal(t, grid.Point{Row: rows - 1, Col: cols - 1}, last.Pos)
		assert.GreaterOrEqual(t, last.Run, r.MinRun)

		var sum int64
		for i := 1; i < len(path); i++ {
			prev, cur := path[i-1], path[i]
			assert.Equal(t, prev.Pos.Step(cur.Dir), cur.Pos, "step %d", i)
			assert.LessOrEqual(t, cur.Run, r.MaxRun)
			if i > 1 && cur.Dir != prev.Dir {
				assert.NotEqual(t, prev.Dir.Reverse(), cur.Dir, "reversal at step %d", i)
				assert.GreaterOrEqual(t, prev.Run, r.MinRun, "early turn at step %d", i)
				assert.Equal(t, 1, cur.Run)
			}
			sum += c.Loss(cur.Pos)
		}
		assert.Equal(t, int64(cost), sum)
	}
}
