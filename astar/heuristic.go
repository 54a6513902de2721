package astar

import (
	"fmt"
	"math"
	"strings"

	"github.com/paulmach/orb/planar"
)

// Heuristic estimates the remaining cost from a node to the goal.
// Estimates must be non-negative. Admissibility (never overestimating)
// is the caller's responsibility and is not checked at runtime.
type Heuristic func(node int) float64

// Names accepted by HeuristicByName.
const (
	HeuristicEuclidean = "euclidean"
	HeuristicManhattan = "manhattan"
	HeuristicZero      = "zero"
)

// Euclidean returns the straight-line distance to goal. Admissible and
// consistent when edge weights are the Euclidean lengths of the edges.
func Euclidean(g *Graph, goal int) Heuristic {
	coords := g.Coords
	target := coords[goal]
	return func(node int) float64 {
		return planar.Distance(coords[node], target)
	}
}

// Manhattan returns the L1 distance to goal. Note that this
// overestimates relative to Euclidean edge lengths; it is admissible
// only for grid-like weight regimes.
func Manhattan(g *Graph, goal int) Heuristic {
	coords := g.Coords
	target := coords[goal]
	return func(node int) float64 {
		p := coords[node]
		return math.Abs(p.X()-target.X()) + math.Abs(p.Y()-target.Y())
	}
}

// Zero is the null heuristic; with it Search degenerates to Dijkstra's
// algorithm.
func Zero(int) float64 { return 0 }

// HeuristicByName resolves a configuration name to a strategy bound to
// g and goal. Names are matched case-insensitively.
func HeuristicByName(name string, g *Graph, goal int) (Heuristic, error) {
	if goal < 0 || goal >= g.NumNodes() {
		return nil, fmt.Errorf("%w: goal node %d (graph has %d nodes)", ErrNodeOutOfRange, goal, g.NumNodes())
	}
	switch strings.ToLower(strings.TrimSpace(name)) {
	case HeuristicEuclidean:
		return Euclidean(g, goal), nil
	case HeuristicManhattan:
		return Manhattan(g, goal), nil
	case HeuristicZero:
		return Zero, nil
	default:
		return nil, fmt.Errorf("unknown heuristic %q (want euclidean, manhattan or zero)", name)
	}
}
