// Command pathbench benchmarks the A* engine over every graph instance
// found in a directory and prints per-graph aggregates.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"pathbench/astar"
	"pathbench/bench"
	"pathbench/internal/graphio"
	"pathbench/internal/report"
)

type config struct {
	graphDir  string
	runs      int
	heuristic string
	format    string
}

func parseFlags(args []string) (*config, error) {
	fs := flag.NewFlagSet("pathbench", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var cfg config
	fs.StringVar(&cfg.graphDir, "graphs", "graphs", "directory scanned for .txt and .json graph instances")
	fs.IntVar(&cfg.runs, "runs", bench.DefaultRuns, "timed searches per graph")
	fs.StringVar(&cfg.heuristic, "heuristic", astar.HeuristicEuclidean, "heuristic: euclidean|manhattan|zero")
	fs.StringVar(&cfg.format, "format", "text", "report format: text|json")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if cfg.runs < 1 {
		return nil, fmt.Errorf("bad -runs %d: %w", cfg.runs, bench.ErrRunCount)
	}
	cfg.heuristic = strings.ToLower(strings.TrimSpace(cfg.heuristic))
	switch cfg.heuristic {
	case astar.HeuristicEuclidean, astar.HeuristicManhattan, astar.HeuristicZero:
	default:
		return nil, fmt.Errorf("unknown -heuristic %q (want euclidean, manhattan or zero)", cfg.heuristic)
	}
	switch cfg.format {
	case "text", "json":
	default:
		return nil, fmt.Errorf("unknown -format %q (want text or json)", cfg.format)
	}
	return &cfg, nil
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := parseFlags(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	logger := zerolog.New(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = os.Stderr
		w.TimeFormat = time.TimeOnly
	})).With().Timestamp().Logger()

	paths, err := graphio.Discover(cfg.graphDir)
	if err != nil {
		logger.Error().Err(err).Msg("failed to discover graph instances")
		return 1
	}
	if len(paths) == 0 {
		logger.Error().Str("dir", cfg.graphDir).Msg("no .txt or .json graph instances found")
		return 1
	}
	logger.Info().
		Int("graphs", len(paths)).
		Int("runs", cfg.runs).
		Str("heuristic", cfg.heuristic).
		Msg("starting benchmark")

	var (
		records []report.Record
		failed  int
	)
	for _, path := range paths {
		rec, err := benchFile(path, cfg)
		if err != nil {
			logger.Error().Err(err).Str("path", path).Msg("skipping graph")
			failed++
			continue
		}
		records = append(records, rec)
	}

	switch cfg.format {
	case "json":
		if err := report.WriteJSON(os.Stdout, records); err != nil {
			logger.Error().Err(err).Msg("failed to write report")
			return 1
		}
	default:
		for _, rec := range records {
			if err := rec.WriteText(os.Stdout); err != nil {
				logger.Error().Err(err).Msg("failed to write report")
				return 1
			}
		}
	}

	if failed > 0 {
		logger.Warn().Int("failed", failed).Int("benchmarked", len(records)).Msg("finished with failures")
		return 1
	}
	logger.Info().Int("benchmarked", len(records)).Msg("finished")
	return 0
}

func benchFile(path string, cfg *config) (report.Record, error) {
	inst, err := graphio.LoadFile(path)
	if err != nil {
		return report.Record{}, err
	}
	g := inst.Graph

	h, err := astar.HeuristicByName(cfg.heuristic, g, g.Goal)
	if err != nil {
		return report.Record{}, err
	}
	agg, err := bench.Run(g, g.Start, g.Goal, h, cfg.runs)
	if err != nil {
		return report.Record{}, err
	}
	return report.New(inst.Name, g.NumNodes(), g.Start, g.Goal, cfg.heuristic, agg), nil
}
