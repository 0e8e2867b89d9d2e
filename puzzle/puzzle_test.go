package puzzle_test

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/gridsolve/puzzle"
)

func TestMain(m *testing.M) {
	puzzle.Log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	m.Run()
}

// sumDay parses whitespace-separated integers; part one sums, part two multiplies.
func sumDay() puzzle.Solver {
	parse := func(text string) ([]int, error) {
		var out []int
		for _, f := range strings.Fields(text) {
			n, err := strconv.Atoi(f)
			if err != nil {
				return nil, err
			}
			out = append(out, n)
		}
		return out, nil
	}
	sum := func(in []int) (int, error) {
		s := 0
		for _, n := range in {
			s += n
		}
		return s, nil
	}
	product := func(in []int) (int, error) {
		p := 1
		for _, n := range in {
			p *= n
		}
		return p, nil
	}
	return puzzle.New(1, "Sum", parse, sum, product)
}

// SolverSuite exercises the Solver adapter and Registry.
type SolverSuite struct {
	suite.Suite
}

func (s *SolverSuite) TestSolve() {
	ans, err := sumDay().Solve(context.Background(), "2 3 4\n")
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1, ans.Day)
	require.Equal(s.T(), 9, ans.PartOne)
	require.Equal(s.T(), 24, ans.PartTwo)
}

func (s *SolverSuite) TestParseError() {
	_, err := sumDay().Solve(context.Background(), "2 x")
	require.Error(s.T(), err)
	require.Contains(s.T(), err.Error(), "day 1: parse")
}

func (s *SolverSuite) TestPartError() {
	boom := errors.New("boom")
	sv := puzzle.New(2, "Fails",
		func(string) (int, error) { return 0, nil },
		func(int) (int, error) { return 1, nil },
		func(int) (int, error) { return 0, boom },
	)
	_, err := sv.Solve(context.Background(), "")
	require.ErrorIs(s.T(), err, boom)
	require.Contains(s.T(), err.Error(), "part two")
}

func (s *SolverSuite) TestContextDone() {
	release := make(chan struct{})
	defer close(release)
	slow := func(int) (int, error) { <-release; return 0, nil }
	sv := puzzle.New(3, "Slow", func(string) (int, error) { return 0, nil }, slow, slow)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err := sv.Solve(ctx, "")
	require.ErrorIs(s.T(), err, context.DeadlineExceeded)
}

func (s *SolverSuite) TestRegistry() {
	other := puzzle.New(7, "Other",
		func(string) (int, error) { return 0, nil },
		func(int) (int, error) { return 0, nil },
		func(int) (int, error) { return 0, nil },
	)
	reg, err := puzzle.NewRegistry(other, sumDay())
	require.NoError(s.T(), err)
	require.Equal(s.T(), []int{1, 7}, reg.Days())

	got, err := reg.Lookup(7)
	require.NoError(s.T(), err)
	require.Equal(s.T(), "Other", got.Title())

	_, err = reg.Lookup(8)
	require.ErrorIs(s.T(), err, puzzle.ErrUnknownDay)

	_, err = puzzle.NewRegistry(sumDay(), sumDay())
	require.ErrorIs(s.T(), err, puzzle.ErrDuplicateDay)
}

func TestSolverSuite(t *testing.T) {
	suite.Run(t, new(SolverSuite))
}
