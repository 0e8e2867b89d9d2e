package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gridsolve/config"
	"github.com/katalvlaran/gridsolve/inputs"
	"github.com/katalvlaran/gridsolve/puzzle"
)

var errInputNeedsDay = errors.New("-input requires -day")

// job is one day to solve and where its input comes from.
type job struct {
	solver puzzle.Solver
	load   func() (string, error)
}

// plan resolves which days to run. day and inputPath come from the command
// line and take precedence over cfg.
func plan(cfg config.Config, reg *puzzle.Registry, day int, inputPath string) ([]job, error) {
	if inputPath != "" && day == 0 {
		return nil, errInputNeedsDay
	}
	days := cfg.Days
	switch {
	case day != 0:
		days = []int{day}
	case len(days) == 0:
		days = reg.Days()
	}

	jobs := make([]job, 0, len(days))
	for _, d := range days {
		d := d
		s, err := reg.Lookup(d)
		if err != nil {
			return nil, err
		}
		load := func() (string, error) { return inputs.ForDay(cfg.InputDir, d) }
		if inputPath != "" {
			load = func() (string, error) { return inputs.Load(inputPath) }
		}
		jobs = append(jobs, job{solver: s, load: load})
	}
	return jobs, nil
}

// run solves jobs with at most workers in flight and returns the answers in
// job order. On failure it returns the answers that did complete.
func run(ctx context.Context, workers int, jobs []job) ([]puzzle.Answer, error) {
	answers := make([]puzzle.Answer, len(jobs))
	solved := make([]bool, len(jobs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, j := range jobs {
		i, j := i, j
		g.Go(func() error {
			text, err := j.load()
			if err != nil {
				return fmt.Errorf("day %d: %w", j.solver.Day(), err)
			}
			a, err := j.solver.Solve(ctx, text)
			if err != nil {
				return err
			}
			log.WithFields(logrus.Fields{
				"day":     a.Day,
				"title":   j.solver.Title(),
				"elapsed": a.Elapsed.Round(time.Microsecond),
			}).Info("solved")
			answers[i], solved[i] = a, true
			return nil
		})
	}
	err := g.Wait()

	out := make([]puzzle.Answer, 0, len(jobs))
	for i, a := range answers {
		if solved[i] {
			out = append(out, a)
		}
	}
	return out, err
}
