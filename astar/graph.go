package astar

import (
	"errors"
	"fmt"

	"github.com/paulmach/orb"
)

var (
	ErrEmptyGraph     = errors.New("graph has no nodes")
	ErrNodeOutOfRange = errors.New("node index out of range")
	ErrNegativeWeight = errors.New("edge weight is negative")
	ErrSelfEdge       = errors.New("self edges are not supported")
)

// Edge is one directed half of an undirected connection.
type Edge struct {
	To   int     // index of the neighbor node
	Cost float64 // non-negative traversal cost
}

// Graph is a weighted undirected graph over dense node indices
// 0..NumNodes()-1. Coordinates are consumed only by heuristics; the
// search itself works on the adjacency lists. A Graph must not be
// mutated while a search or benchmark is running on it.
type Graph struct {
	Coords []orb.Point // node coordinates, indexed by node
	Edges  [][]Edge    // adjacency lists, indexed by node
	Start  int         // designated start node
	Goal   int         // designated goal node
}

// NewGraph creates an edgeless graph over the given node coordinates.
func NewGraph(coords []orb.Point) *Graph {
	return &Graph{
		Coords: coords,
		Edges:  make([][]Edge, len(coords)),
	}
}

// NumNodes returns the number of nodes.
func (g *Graph) NumNodes() int { return len(g.Coords) }

// NumEdges returns the number of undirected edges.
func (g *Graph) NumEdges() int {
	total := 0
	for _, adj := range g.Edges {
		total += len(adj)
	}
	return total / 2
}

// AddEdge inserts an undirected edge by appending a directed half to
// both endpoint lists.
func (g *Graph) AddEdge(u, v int, cost float64) error {
	n := g.NumNodes()
	if u < 0 || u >= n {
		return fmt.Errorf("%w: edge endpoint %d (graph has %d nodes)", ErrNodeOutOfRange, u, n)
	}
	if v < 0 || v >= n {
		return fmt.Errorf("%w: edge endpoint %d (graph has %d nodes)", ErrNodeOutOfRange, v, n)
	}
	if u == v {
		return fmt.Errorf("%w: node %d", ErrSelfEdge, u)
	}
	if cost < 0 {
		return fmt.Errorf("%w: edge %d-%d has weight %g", ErrNegativeWeight, u, v, cost)
	}
	g.Edges[u] = append(g.Edges[u], Edge{To: v, Cost: cost})
	g.Edges[v] = append(g.Edges[v], Edge{To: u, Cost: cost})
	return nil
}

// Validate checks the structural invariants: at least one node, one
// adjacency list per node, endpoints in range, non-negative weights,
// and start/goal in range.
func (g *Graph) Validate() error {
	n := g.NumNodes()
	if n == 0 {
		return ErrEmptyGraph
	}
	if len(g.Edges) != n {
		return fmt.Errorf("adjacency size %d does not match node count %d", len(g.Edges), n)
	}
	if g.Start < 0 || g.Start >= n {
		return fmt.Errorf("%w: start node %d (graph has %d nodes)", ErrNodeOutOfRange, g.Start, n)
	}
	if g.Goal < 0 || g.Goal >= n {
		return fmt.Errorf("%w: goal node %d (graph has %d nodes)", ErrNodeOutOfRange, g.Goal, n)
	}
	for u, adj := range g.Edges {
		for _, e := range adj {
			if e.To < 0 || e.To >= n {
				return fmt.Errorf("%w: node %d has an edge to %d (graph has %d nodes)", ErrNodeOutOfRange, u, e.To, n)
			}
			if e.Cost < 0 {
				return fmt.Errorf("%w: edge %d-%d has weight %g", ErrNegativeWeight, u, e.To, e.Cost)
			}
		}
	}
	return nil
}
