package graphio

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"github.com/paulmach/orb"

	"pathbench/astar"
)

// instanceDoc is the JSON document shape. Coordinates marshal as
// [x, y] pairs; edges are stored once and inserted symmetrically on
// load.
type instanceDoc struct {
	Name        string       `json:"name"`
	Coordinates []orb.Point  `json:"coordinates"`
	Start       int          `json:"start"`
	Goal        int          `json:"goal"`
	Edges       []edgeRecord `json:"edges"`
}

type edgeRecord struct {
	U    int     `json:"u"`
	V    int     `json:"v"`
	Cost float64 `json:"cost"`
}

// undirectedEdges lists each edge once (u < v), in adjacency order.
func undirectedEdges(g *astar.Graph) []edgeRecord {
	var out []edgeRecord
	for u, adj := range g.Edges {
		for _, e := range adj {
			if u < e.To {
				out = append(out, edgeRecord{U: u, V: e.To, Cost: e.Cost})
			}
		}
	}
	return out
}

// MarshalInstance encodes inst as an indented JSON document.
func MarshalInstance(inst *Instance) ([]byte, error) {
	doc := instanceDoc{
		Name:        inst.Name,
		Coordinates: inst.Graph.Coords,
		Start:       inst.Graph.Start,
		Goal:        inst.Graph.Goal,
		Edges:       undirectedEdges(inst.Graph),
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal instance: %w", err)
	}
	return data, nil
}

// UnmarshalInstance decodes and validates a JSON instance document.
func UnmarshalInstance(data []byte) (*Instance, error) {
	var doc instanceDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadFormat, err)
	}
	if len(doc.Coordinates) < 1 {
		return nil, fmt.Errorf("%w: node count %d", ErrBadFormat, len(doc.Coordinates))
	}

	g := astar.NewGraph(doc.Coordinates)
	g.Start, g.Goal = doc.Start, doc.Goal
	for i, e := range doc.Edges {
		if err := g.AddEdge(e.U, e.V, e.Cost); err != nil {
			return nil, fmt.Errorf("edge %d: %w", i, err)
		}
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return &Instance{Name: doc.Name, Graph: g}, nil
}

// SaveJSON writes inst to path as JSON.
func SaveJSON(inst *Instance, path string) error {
	data, err := MarshalInstance(inst)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write instance file: %w", err)
	}
	return nil
}
