package astar

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/yourbasic/bit"
)

// Unreachable is the path cost reported when no start-goal path exists.
const Unreachable = -1

// Result carries the outcome of one search.
type Result struct {
	PathCost      float64 // cost of the cheapest path, or Unreachable
	NodesExpanded int     // pops that survived the staleness check
	Steps         int     // total pops, stale entries included
}

// Search runs A* from start to goal on g and reports the cheapest path
// cost together with the effort counters. An unreachable goal is not an
// error; it yields PathCost == Unreachable. Errors are reserved for
// invalid input: an empty graph or an out-of-range start or goal.
//
// Edge weights must be non-negative; construction through AddEdge and
// the loaders guarantees this, and Search does not re-scan the graph.
// The search is deterministic: identical inputs produce an identical
// Result on every invocation.
func Search(g *Graph, start, goal int, h Heuristic) (Result, error) {
	if g == nil || g.NumNodes() == 0 {
		return Result{}, ErrEmptyGraph
	}
	n := g.NumNodes()
	if start < 0 || start >= n {
		return Result{}, fmt.Errorf("%w: start node %d (graph has %d nodes)", ErrNodeOutOfRange, start, n)
	}
	if goal < 0 || goal >= n {
		return Result{}, fmt.Errorf("%w: goal node %d (graph has %d nodes)", ErrNodeOutOfRange, goal, n)
	}

	dist := make([]float64, n)
	for i := range dist {
		dist[i] = math.Inf(1)
	}
	dist[start] = 0

	closed := new(bit.Set)
	open := make(frontier, 0, 64)
	heap.Push(&open, entry{node: start, g: 0, f: h(start)})

	var res Result
	for open.Len() > 0 {
		cur := heap.Pop(&open).(entry)
		res.Steps++

		// A cheaper path to this node was queued after this entry.
		if cur.g > dist[cur.node] {
			continue
		}
		res.NodesExpanded++

		// The goal is neither closed nor expanded into its neighbors.
		if cur.node == goal {
			break
		}
		closed.Add(cur.node)

		for _, e := range g.Edges[cur.node] {
			if closed.Contains(e.To) {
				continue
			}
			newG := cur.g + e.Cost
			if newG < dist[e.To] {
				dist[e.To] = newG
				heap.Push(&open, entry{node: e.To, g: newG, f: newG + h(e.To)})
			}
		}
	}

	if math.IsInf(dist[goal], 1) {
		res.PathCost = Unreachable
	} else {
		res.PathCost = dist[goal]
	}
	return res, nil
}
