// Package graphio loads, writes and discovers benchmark graph
// instances in the text and JSON on-disk formats.
package graphio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/paulmach/orb"

	"pathbench/astar"
)

var ErrBadFormat = errors.New("malformed graph file")

// Instance is a named benchmark graph.
type Instance struct {
	Name  string
	Graph *astar.Graph
}

// Parse reads a text-format instance:
//
//	name
//	numNodes
//	x y          (numNodes lines)
//	start goal
//	numEdges
//	u v w        (numEdges lines, inserted in both directions)
//
// Everything after the name line is whitespace-delimited. The returned
// instance is fully validated.
func Parse(r io.Reader) (*Instance, error) {
	br := bufio.NewReader(r)

	name, err := br.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: name line: %v", ErrBadFormat, err)
	}
	name = strings.TrimSpace(name)

	var numNodes int
	if _, err := fmt.Fscan(br, &numNodes); err != nil {
		return nil, fmt.Errorf("%w: node count: %v", ErrBadFormat, err)
	}
	if numNodes < 1 {
		return nil, fmt.Errorf("%w: node count %d", ErrBadFormat, numNodes)
	}

	coords := make([]orb.Point, numNodes)
	for i := range coords {
		var x, y float64
		if _, err := fmt.Fscan(br, &x, &y); err != nil {
			return nil, fmt.Errorf("%w: coordinates of node %d: %v", ErrBadFormat, i, err)
		}
		coords[i] = orb.Point{x, y}
	}

	g := astar.NewGraph(coords)
	if _, err := fmt.Fscan(br, &g.Start, &g.Goal); err != nil {
		return nil, fmt.Errorf("%w: start/goal line: %v", ErrBadFormat, err)
	}

	var numEdges int
	if _, err := fmt.Fscan(br, &numEdges); err != nil {
		return nil, fmt.Errorf("%w: edge count: %v", ErrBadFormat, err)
	}
	if numEdges < 0 {
		return nil, fmt.Errorf("%w: edge count %d", ErrBadFormat, numEdges)
	}
	for i := 0; i < numEdges; i++ {
		var u, v int
		var w float64
		if _, err := fmt.Fscan(br, &u, &v, &w); err != nil {
			return nil, fmt.Errorf("%w: edge %d: %v", ErrBadFormat, i, err)
		}
		if err := g.AddEdge(u, v, w); err != nil {
			return nil, fmt.Errorf("edge %d: %w", i, err)
		}
	}

	if err := g.Validate(); err != nil {
		return nil, err
	}
	return &Instance{Name: name, Graph: g}, nil
}

// LoadFile loads an instance from path, dispatching on the extension
// (.json for the JSON format, the text format otherwise). A blank name
// falls back to the file's base name.
func LoadFile(path string) (*Instance, error) {
	var (
		inst *Instance
		err  error
	)
	if strings.EqualFold(filepath.Ext(path), ".json") {
		var data []byte
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read graph file: %w", err)
		}
		inst, err = UnmarshalInstance(data)
	} else {
		var f *os.File
		f, err = os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open graph file: %w", err)
		}
		defer f.Close()
		inst, err = Parse(f)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if inst.Name == "" {
		inst.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return inst, nil
}

// WriteText emits inst in the text format Parse reads.
func WriteText(w io.Writer, inst *Instance) error {
	g := inst.Graph
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, inst.Name)
	fmt.Fprintln(bw, g.NumNodes())
	for _, p := range g.Coords {
		fmt.Fprintf(bw, "%g %g\n", p.X(), p.Y())
	}
	fmt.Fprintf(bw, "%d %d\n", g.Start, g.Goal)

	edges := undirectedEdges(g)
	fmt.Fprintln(bw, len(edges))
	for _, e := range edges {
		fmt.Fprintf(bw, "%d %d %g\n", e.U, e.V, e.Cost)
	}
	return bw.Flush()
}
