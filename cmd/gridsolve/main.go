// Command gridsolve runs the grid puzzle solvers over input files.
//
//	gridsolve -c gridsolve.yaml [-day N] [-input path]
//
// Without -day every configured day (or every registered day) is solved.
// -input overrides the input file and requires -day.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridsolve/beam"
	"github.com/katalvlaran/gridsolve/config"
	"github.com/katalvlaran/gridsolve/crucible"
	"github.com/katalvlaran/gridsolve/lagoon"
	"github.com/katalvlaran/gridsolve/pipemaze"
	"github.com/katalvlaran/gridsolve/puzzle"
	"github.com/katalvlaran/gridsolve/rocks"
)

var log = logrus.New()

func main() {
	var (
		configPath string
		day        int
		inputPath  string
	)
	flag.StringVar(&configPath, "config", "", "path to YAML config")
	flag.StringVar(&configPath, "c", "", "path to YAML config (shorthand)")
	flag.IntVar(&day, "day", 0, "solve only this day")
	flag.StringVar(&inputPath, "input", "", "input file for -day")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.WithError(err).Fatal("failed to load config")
	}
	setupLogging(cfg)
	log.WithFields(cfg.Fields()).Debug("config loaded")

	reg, err := puzzle.NewRegistry(
		pipemaze.Solver,
		rocks.Solver,
		beam.Solver,
		crucible.Solver,
		lagoon.Solver,
	)
	if err != nil {
		log.WithError(err).Fatal("failed to build registry")
	}

	jobs, err := plan(cfg, reg, day, inputPath)
	if err != nil {
		log.WithError(err).Fatal("bad arguments")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout.Duration)
	defer cancel()

	answers, err := run(ctx, cfg.Workers, jobs)
	for _, a := range answers {
		fmt.Printf("day %d part 1: %d\n", a.Day, a.PartOne)
		fmt.Printf("day %d part 2: %d\n", a.Day, a.PartTwo)
	}
	if err != nil {
		log.WithError(err).Error("run failed")
		stop()
		cancel()
		os.Exit(1)
	}
}

// setupLogging points every package logger at the configured level and
// formatter.
func setupLogging(cfg config.Config) {
	var formatter logrus.Formatter = &logrus.JSONFormatter{}
	if cfg.Development() {
		formatter = &logrus.TextFormatter{FullTimestamp: true}
	}
	for _, l := range []*logrus.Logger{log, puzzle.Log, rocks.Log, beam.Log} {
		l.SetOutput(os.Stderr)
		l.SetLevel(cfg.Level())
		l.SetFormatter(formatter)
	}
}
