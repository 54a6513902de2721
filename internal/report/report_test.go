package report

import (
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pathbench/bench"
)

func sampleRecord() Record {
	agg := bench.Aggregate{
		Runs:             100,
		PathCost:         2,
		AvgNodesExpanded: 3,
		AvgSteps:         3,
		TotalTime:        150 * time.Millisecond,
		AvgTime:          1500 * time.Microsecond,
		MinTime:          time.Millisecond,
		MaxTime:          2 * time.Millisecond,
		StdDevTime:       250 * time.Microsecond,
	}
	return New("triangle", 3, 0, 2, "euclidean", agg)
}

func TestNew(t *testing.T) {
	r := sampleRecord()

	assert.Equal(t, "triangle", r.GraphName)
	assert.Equal(t, 3, r.NumNodes)
	assert.Equal(t, 0, r.Start)
	assert.Equal(t, 2, r.Goal)
	assert.Equal(t, "euclidean", r.Heuristic)
	assert.Equal(t, 100, r.Runs)
	assert.Equal(t, 3.0, r.AvgNodesExpanded)
	assert.Equal(t, 3.0, r.AvgSteps)
	assert.Equal(t, int64(1500000), r.AvgTimeNs)
	assert.Equal(t, int64(1000000), r.MinTimeNs)
	assert.Equal(t, int64(2000000), r.MaxTimeNs)
	assert.Equal(t, int64(250000), r.StdDevTimeNs)
	assert.Equal(t, int64(150000000), r.TotalTimeNs)
	assert.Equal(t, 2.0, r.PathCost)
}

func TestWriteText(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, sampleRecord().WriteText(&sb))

	want := "Processing graph: triangle\n" +
		"Number of nodes: 3\n" +
		"Start node: 0, Goal node: 2\n" +
		"Heuristic: euclidean, Runs: 100\n" +
		"Average nodes expanded: 3.00, Average steps: 3.00\n" +
		"Average execution time: 1.500000 ms (1500000 ns)\n" +
		"Minimum execution time: 1.000000 ms, Maximum: 2.000000 ms\n" +
		"Path cost to goal: 2\n" +
		"----------------------------------------\n"
	assert.Equal(t, want, sb.String())
}

func TestWriteTextUnreachable(t *testing.T) {
	r := sampleRecord()
	r.PathCost = -1

	var sb strings.Builder
	require.NoError(t, r.WriteText(&sb))
	assert.Contains(t, sb.String(), "Path cost to goal: -1\n")
}

func TestWriteJSON(t *testing.T) {
	records := []Record{sampleRecord()}

	var sb strings.Builder
	require.NoError(t, WriteJSON(&sb, records))

	out := sb.String()
	assert.True(t, strings.HasSuffix(out, "\n"))
	assert.Contains(t, out, `"graphName": "triangle"`)

	var decoded []Record
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, records, decoded)
}

func TestWriteJSONEmpty(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, WriteJSON(&sb, nil))
	assert.Equal(t, "null\n", sb.String())
}
