package synth

import (
	"fmt"
	"slices"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// pointEntry adapts one sampled node to R-tree storage.
type pointEntry struct {
	id   int
	rect rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (p *pointEntry) Bounds() rtreego.Rect { return p.rect }

// pointIndex answers radius and nearest-node queries over the sampled
// node positions.
type pointIndex struct {
	tree   *rtreego.Rtree
	coords []orb.Point
}

func newPointIndex(coords []orb.Point) (*pointIndex, error) {
	tree := rtreego.NewTree(2, 25, 50) // 2D, min 25, max 50 entries per node
	for i, p := range coords {
		rect := rtreego.Point{p.X(), p.Y()}.ToRect(1e-9)
		tree.Insert(&pointEntry{id: i, rect: rect})
	}
	return &pointIndex{tree: tree, coords: coords}, nil
}

// within returns the node ids at most radius away from p, sorted so the
// edge insertion order never depends on tree internals.
func (idx *pointIndex) within(p orb.Point, radius float64) ([]int, error) {
	box, err := rtreego.NewRect(
		rtreego.Point{p.X() - radius, p.Y() - radius},
		[]float64{2 * radius, 2 * radius},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build query box: %w", err)
	}

	var ids []int
	for _, item := range idx.tree.SearchIntersect(box) {
		entry := item.(*pointEntry)
		if planar.Distance(idx.coords[entry.id], p) <= radius {
			ids = append(ids, entry.id)
		}
	}
	slices.Sort(ids)
	return ids, nil
}

// nearest returns the node id closest to p.
func (idx *pointIndex) nearest(p orb.Point) int {
	item := idx.tree.NearestNeighbor(rtreego.Point{p.X(), p.Y()})
	if item == nil {
		return 0
	}
	return item.(*pointEntry).id
}
