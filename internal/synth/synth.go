// Package synth generates random geometric benchmark instances:
// uniformly sampled nodes connected within a radius, with optional
// obstacle polygons that reject samples and edges.
package synth

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/rs/zerolog"
	"github.com/yourbasic/bit"

	"pathbench/astar"
	"pathbench/internal/graphio"
)

// sampleAttemptFactor bounds rejection sampling at factor*Nodes tries.
const sampleAttemptFactor = 10

// Config controls instance generation.
type Config struct {
	Name      string          // instance name; derived from the parameters when blank
	Nodes     int             // number of sampled nodes
	Radius    float64         // connection radius
	Bounds    orb.Bound       // sampling region; zero value means the unit square
	Seed      int64           // random seed; 0 means time-based
	Obstacles []orb.Polygon   // regions no node or edge may enter
	Logger    *zerolog.Logger // nil means silent
}

// Generate builds a random geometric instance: Nodes points sampled
// uniformly in Bounds outside the obstacles, every pair within Radius
// connected with its Euclidean distance as the weight unless the edge
// crosses an obstacle, and start/goal snapped to the nodes nearest the
// region's min and max corners. A fixed seed reproduces the instance
// exactly.
func Generate(cfg Config) (*graphio.Instance, error) {
	if cfg.Nodes < 1 {
		return nil, fmt.Errorf("node count must be at least 1, got %d", cfg.Nodes)
	}
	if cfg.Radius <= 0 {
		return nil, fmt.Errorf("connection radius must be positive, got %g", cfg.Radius)
	}

	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}

	bounds := cfg.Bounds
	if bounds.Min == bounds.Max {
		bounds = orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{1, 1}}
	}
	if bounds.Max.X() <= bounds.Min.X() || bounds.Max.Y() <= bounds.Min.Y() {
		return nil, fmt.Errorf("degenerate bounds %v", bounds)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	// Rejection-sample node positions outside the obstacles.
	spanX := bounds.Max.X() - bounds.Min.X()
	spanY := bounds.Max.Y() - bounds.Min.Y()
	coords := make([]orb.Point, 0, cfg.Nodes)
	maxAttempts := cfg.Nodes * sampleAttemptFactor
	for attempts := 0; len(coords) < cfg.Nodes; attempts++ {
		if attempts >= maxAttempts {
			return nil, fmt.Errorf("sampled only %d of %d nodes after %d attempts; obstacles cover too much of the region",
				len(coords), cfg.Nodes, attempts)
		}
		p := orb.Point{
			bounds.Min.X() + rng.Float64()*spanX,
			bounds.Min.Y() + rng.Float64()*spanY,
		}
		if insideAny(p, cfg.Obstacles) {
			continue
		}
		coords = append(coords, p)
	}

	g := astar.NewGraph(coords)

	// Connect every pair within the radius, each pair once.
	idx, err := newPointIndex(coords)
	if err != nil {
		return nil, err
	}
	rejected := 0
	for u, p := range coords {
		neighbors, err := idx.within(p, cfg.Radius)
		if err != nil {
			return nil, err
		}
		for _, v := range neighbors {
			if v <= u {
				continue
			}
			if !segmentClear(p, coords[v], cfg.Obstacles) {
				rejected++
				continue
			}
			if err := g.AddEdge(u, v, planar.Distance(p, coords[v])); err != nil {
				return nil, err
			}
		}
	}

	g.Start = idx.nearest(bounds.Min)
	g.Goal = idx.nearest(bounds.Max)

	name := cfg.Name
	if name == "" {
		name = fmt.Sprintf("synthetic_%dn_seed%d", cfg.Nodes, seed)
	}

	logger.Info().
		Str("name", name).
		Int("nodes", g.NumNodes()).
		Int("edges", g.NumEdges()).
		Int("rejectedEdges", rejected).
		Int("start", g.Start).
		Int("goal", g.Goal).
		Bool("goalReachable", reachable(g, g.Start, g.Goal)).
		Msg("generated instance")

	return &graphio.Instance{Name: name, Graph: g}, nil
}

// reachable reports whether goal can be reached from start.
func reachable(g *astar.Graph, start, goal int) bool {
	visited := new(bit.Set)
	visited.Add(start)
	queue := []int{start}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		if u == goal {
			return true
		}
		for _, e := range g.Edges[u] {
			if !visited.Contains(e.To) {
				visited.Add(e.To)
				queue = append(queue, e.To)
			}
		}
	}
	return false
}
