package puzzle

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Log is the package logger; the CLI configures its level and formatter.
var Log = logrus.New()

var (
	// ErrUnknownDay is returned by Registry.Lookup for an unregistered day.
	ErrUnknownDay = errors.New("puzzle: day not registered")
	// ErrDuplicateDay is returned by NewRegistry when two solvers share a day.
	ErrDuplicateDay = errors.New("puzzle: day registered twice")
)

// Answer holds both results of one day.
type Answer struct {
	Day     int
	PartOne int
	PartTwo int
	Elapsed time.Duration
}

// Solver runs one day end to end.
type Solver interface {
	Day() int
	Title() string
	Solve(ctx context.Context, text string) (Answer, error)
}

// ParseFunc turns raw puzzle text into the day's parsed input.
type ParseFunc[T any] func(text string) (T, error)

// PartFunc computes one answer from the parsed input.
type PartFunc[T any] func(in T) (int, error)

type solver[T any] struct {
	day     int
	title   string
	parse   ParseFunc[T]
	partOne PartFunc[T]
	partTwo PartFunc[T]
}

// New adapts a (parse, part one, part two) triple into a Solver.
func New[T any](day int, title string, parse ParseFunc[T], partOne, partTwo PartFunc[T]) Solver {
	return &solver[T]{day: day, title: title, parse: parse, partOne: partOne, partTwo: partTwo}
}

func (s *solver[T]) Day() int      { return s.day }
func (s *solver[T]) Title() string { return s.title }

// Solve parses text and runs both parts concurrently. It returns early with
// ctx.Err() if ctx is done before both parts finish.
func (s *solver[T]) Solve(ctx context.Context, text string) (Answer, error) {
	start := time.Now()
	log := Log.WithFields(logrus.Fields{"day": s.day, "title": s.title})

	in, err := s.parse(text)
	if err != nil {
		return Answer{}, fmt.Errorf("day %d: parse: %w", s.day, err)
	}
	log.WithField("elapsed", time.Since(start)).Debug("input parsed")

	ans := Answer{Day: s.day}
	var g errgroup.Group
	g.Go(func() error {
		v, err := s.partOne(in)
		if err != nil {
			return fmt.Errorf("day %d: part one: %w", s.day, err)
		}
		ans.PartOne = v
		return nil
	})
	g.Go(func() error {
		v, err := s.partTwo(in)
		if err != nil {
			return fmt.Errorf("day %d: part two: %w", s.day, err)
		}
		ans.PartTwo = v
		return nil
	})

	done := make(chan error, 1)
	go func() { done <- g.Wait() }()
	select {
	case <-ctx.Done():
		return Answer{}, ctx.Err()
	case err := <-done:
		if err != nil {
			return Answer{}, err
		}
	}

	ans.Elapsed = time.Since(start)
	log.WithFields(logrus.Fields{
		"part_one": ans.PartOne,
		"part_two": ans.PartTwo,
		"elapsed":  ans.Elapsed,
	}).Debug("solved")

	return ans, nil
}

// Registry maps day numbers to solvers.
type Registry struct {
	byDay map[int]Solver
}

// NewRegistry indexes solvers by day. Two solvers for the same day are an error.
func NewRegistry(solvers ...Solver) (*Registry, error) {
	r := &Registry{byDay: make(map[int]Solver, len(solvers))}
	for _, s := range solvers {
		if _, dup := r.byDay[s.Day()]; dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateDay, s.Day())
		}
		r.byDay[s.Day()] = s
	}
	return r, nil
}

// Lookup returns the solver for day.
func (r *Registry) Lookup(day int) (Solver, error) {
	s, ok := r.byDay[day]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDay, day)
	}
	return s, nil
}

// Days returns the registered days in ascending order.
func (r *Registry) Days() []int {
	days := make([]int, 0, len(r.byDay))
	for d := range r.byDay {
		days = append(days, d)
	}
	sort.Ints(days)
	return days
}
