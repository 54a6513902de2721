// Package bench times repeated executions of the search engine and
// aggregates the outcome.
package bench

import (
	"errors"
	"fmt"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"pathbench/astar"
)

// DefaultRuns is the run count configuration surfaces fall back to.
const DefaultRuns = 100

var ErrRunCount = errors.New("run count must be at least 1")

// Aggregate summarizes one benchmark: the path cost captured from the
// first run, arithmetic means of the effort counters, and per-run wall
// time statistics.
type Aggregate struct {
	Runs             int
	PathCost         float64
	AvgNodesExpanded float64
	AvgSteps         float64
	TotalTime        time.Duration
	AvgTime          time.Duration
	MinTime          time.Duration
	MaxTime          time.Duration
	StdDevTime       time.Duration
}

// Run executes Search exactly runs times on g and aggregates the
// results. Every run is timed individually with the monotonic clock,
// and the timed region is exactly the Search invocation. The engine is
// deterministic, so the path cost is captured from the first run and
// the counter means equal the per-run values.
//
// A Search error aborts the benchmark; an unreachable goal does not
// (the sentinel path cost flows into the aggregate).
func Run(g *astar.Graph, start, goal int, h astar.Heuristic, runs int) (Aggregate, error) {
	if runs < 1 {
		return Aggregate{}, fmt.Errorf("%w: got %d", ErrRunCount, runs)
	}

	var (
		samples       = make([]float64, 0, runs)
		totalExpanded int
		totalSteps    int
		pathCost      float64
	)
	for i := 0; i < runs; i++ {
		t0 := time.Now()
		res, err := astar.Search(g, start, goal, h)
		elapsed := time.Since(t0)
		if err != nil {
			return Aggregate{}, fmt.Errorf("run %d: %w", i+1, err)
		}

		samples = append(samples, float64(elapsed.Nanoseconds()))
		totalExpanded += res.NodesExpanded
		totalSteps += res.Steps
		if i == 0 {
			pathCost = res.PathCost
		}
	}

	agg := Aggregate{
		Runs:             runs,
		PathCost:         pathCost,
		AvgNodesExpanded: float64(totalExpanded) / float64(runs),
		AvgSteps:         float64(totalSteps) / float64(runs),
		TotalTime:        time.Duration(floats.Sum(samples)),
		AvgTime:          time.Duration(stat.Mean(samples, nil)),
		MinTime:          time.Duration(floats.Min(samples)),
		MaxTime:          time.Duration(floats.Max(samples)),
	}
	if runs > 1 {
		agg.StdDevTime = time.Duration(stat.StdDev(samples, nil))
	}
	return agg, nil
}
