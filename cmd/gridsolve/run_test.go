package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridsolve/config"
	"github.com/katalvlaran/gridsolve/inputs"
	"github.com/katalvlaran/gridsolve/lagoon"
	"github.com/katalvlaran/gridsolve/puzzle"
	"github.com/katalvlaran/gridsolve/rocks"
)

const rocksInput = `O....#....
O.OO#....#
.....##...
OO.#O....O
.O.....O#.
O.#..O.#.#
..O..#O..O
.......O..
#....###..
#OO..#....
`

const lagoonInput = `R 6 (#70c710)
D 5 (#0dc571)
L 2 (#5713f0)
D 2 (#d2c081)
R 2 (#59c680)
D 2 (#411b91)
L 5 (#8ceee2)
U 2 (#caa173)
L 1 (#1b58a2)
U 2 (#caa171)
R 2 (#7807d2)
U 3 (#a77fa3)
L 2 (#015232)
U 2 (#7a21e3)
`

func testRegistry(t *testing.T) *puzzle.Registry {
	t.Helper()
	reg, err := puzzle.NewRegistry(rocks.Solver, lagoon.Solver)
	require.NoError(t, err)
	return reg
}

func testConfig(t *testing.T, dir string) config.Config {
	t.Helper()
	cfg, err := config.Load("")
	require.NoError(t, err)
	cfg.InputDir = dir
	return cfg
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "day14.txt"), []byte(rocksInput), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "day18.txt"), []byte(lagoonInput), 0o644))

	jobs, err := plan(testConfig(t, dir), testRegistry(t), 0, "")
	require.NoError(t, err)
	require.Len(t, jobs, 2)

	answers, err := run(context.Background(), 2, jobs)
	require.NoError(t, err)
	require.Len(t, answers, 2)
	assert.Equal(t, [3]int{14, 136, 64}, [3]int{answers[0].Day, answers[0].PartOne, answers[0].PartTwo})
	assert.Equal(t, [3]int{18, 62, 952408144115}, [3]int{answers[1].Day, answers[1].PartOne, answers[1].PartTwo})
}

func TestRun_MissingInput(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "day18.txt"), []byte(lagoonInput), 0o644))

	jobs, err := plan(testConfig(t, dir), testRegistry(t), 0, "")
	require.NoError(t, err)

	answers, err := run(context.Background(), 1, jobs)
	assert.ErrorIs(t, err, inputs.ErrNotFound)
	for _, a := range answers {
		assert.Equal(t, 18, a.Day)
	}
}

func TestPlan(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.txt")
	require.NoError(t, os.WriteFile(path, []byte(lagoonInput), 0o644))
	cfg := testConfig(t, dir)
	reg := testRegistry(t)

	jobs, err := plan(cfg, reg, 18, path)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	text, err := jobs[0].load()
	require.NoError(t, err)
	assert.Equal(t, lagoonInput, text)

	cfg.Days = []int{18}
	jobs, err = plan(cfg, reg, 0, "")
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, 18, jobs[0].solver.Day())

	_, err = plan(cfg, reg, 0, path)
	assert.ErrorIs(t, err, errInputNeedsDay)

	_, err = plan(cfg, reg, 3, "")
	assert.ErrorIs(t, err, puzzle.ErrUnknownDay)
}

func TestSetupLogging(t *testing.T) {
	cfg, err := config.Parse([]byte("mode: development\nlog_level: debug\n"))
	require.NoError(t, err)
	setupLogging(cfg)

	text, ok := log.Formatter.(*logrus.TextFormatter)
	require.True(t, ok, "development mode logs text")
	assert.False(t, text.ForceColors, "colors follow the terminal")
	assert.Equal(t, logrus.DebugLevel, rocks.Log.GetLevel())

	cfg, err = config.Parse([]byte("mode: production\n"))
	require.NoError(t, err)
	setupLogging(cfg)
	assert.IsType(t, &logrus.JSONFormatter{}, puzzle.Log.Formatter)
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
}
