// Package report renders benchmark outcomes for humans and machines.
package report

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"

	"pathbench/bench"
)

// Record is one graph's benchmark outcome together with the instance
// metadata reporting needs. Times are nanoseconds.
type Record struct {
	GraphName        string  `json:"graphName"`
	NumNodes         int     `json:"numNodes"`
	Start            int     `json:"start"`
	Goal             int     `json:"goal"`
	Heuristic        string  `json:"heuristic"`
	Runs             int     `json:"runs"`
	AvgNodesExpanded float64 `json:"avgNodesExpanded"`
	AvgSteps         float64 `json:"avgSteps"`
	AvgTimeNs        int64   `json:"avgTimeNs"`
	MinTimeNs        int64   `json:"minTimeNs"`
	MaxTimeNs        int64   `json:"maxTimeNs"`
	StdDevTimeNs     int64   `json:"stdDevTimeNs"`
	TotalTimeNs      int64   `json:"totalTimeNs"`
	PathCost         float64 `json:"pathCost"`
}

// New assembles a Record from instance metadata and harness output.
func New(name string, numNodes, start, goal int, heuristic string, agg bench.Aggregate) Record {
	return Record{
		GraphName:        name,
		NumNodes:         numNodes,
		Start:            start,
		Goal:             goal,
		Heuristic:        heuristic,
		Runs:             agg.Runs,
		AvgNodesExpanded: agg.AvgNodesExpanded,
		AvgSteps:         agg.AvgSteps,
		AvgTimeNs:        agg.AvgTime.Nanoseconds(),
		MinTimeNs:        agg.MinTime.Nanoseconds(),
		MaxTimeNs:        agg.MaxTime.Nanoseconds(),
		StdDevTimeNs:     agg.StdDevTime.Nanoseconds(),
		TotalTimeNs:      agg.TotalTime.Nanoseconds(),
		PathCost:         agg.PathCost,
	}
}

// WriteText writes the classic per-graph console block.
func (r Record) WriteText(w io.Writer) error {
	_, err := fmt.Fprintf(w,
		"Processing graph: %s\n"+
			"Number of nodes: %d\n"+
			"Start node: %d, Goal node: %d\n"+
			"Heuristic: %s, Runs: %d\n"+
			"Average nodes expanded: %.2f, Average steps: %.2f\n"+
			"Average execution time: %.6f ms (%d ns)\n"+
			"Minimum execution time: %.6f ms, Maximum: %.6f ms\n"+
			"Path cost to goal: %g\n"+
			"----------------------------------------\n",
		r.GraphName,
		r.NumNodes,
		r.Start, r.Goal,
		r.Heuristic, r.Runs,
		r.AvgNodesExpanded, r.AvgSteps,
		float64(r.AvgTimeNs)/1e6, r.AvgTimeNs,
		float64(r.MinTimeNs)/1e6, float64(r.MaxTimeNs)/1e6,
		r.PathCost,
	)
	return err
}

// WriteJSON writes records as an indented JSON array.
func WriteJSON(w io.Writer, records []Record) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal records: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write records: %w", err)
	}
	return nil
}
