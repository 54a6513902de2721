package synth

import (
	"fmt"
	"math"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"
)

// LoadObstacles reads obstacle polygons from a GeoJSON
// FeatureCollection; Polygon and MultiPolygon features contribute, any
// other geometry is ignored.
func LoadObstacles(path string) ([]orb.Polygon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read obstacle file: %w", err)
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	var polys []orb.Polygon
	for _, f := range fc.Features {
		switch geom := f.Geometry.(type) {
		case orb.Polygon:
			polys = append(polys, geom)
		case orb.MultiPolygon:
			polys = append(polys, geom...)
		}
	}
	return polys, nil
}

// insideAny reports whether p lies inside any obstacle.
func insideAny(p orb.Point, obstacles []orb.Polygon) bool {
	for _, poly := range obstacles {
		if planar.PolygonContains(poly, p) {
			return true
		}
	}
	return false
}

// segmentClear reports whether the segment a-b avoids every obstacle:
// its midpoint lies outside and it crosses no ring segment. Endpoints
// are sampled outside obstacles before edges are attempted.
func segmentClear(a, b orb.Point, obstacles []orb.Polygon) bool {
	if len(obstacles) == 0 {
		return true
	}
	mid := orb.Point{(a.X() + b.X()) / 2, (a.Y() + b.Y()) / 2}
	for _, poly := range obstacles {
		if planar.PolygonContains(poly, mid) {
			return false
		}
		for _, ring := range poly {
			for i := 0; i+1 < len(ring); i++ {
				if segmentsIntersect(a, b, ring[i], ring[i+1]) {
					return false
				}
			}
		}
	}
	return true
}

// segmentsIntersect checks if segments p1-p2 and p3-p4 intersect,
// counting collinear overlap.
func segmentsIntersect(p1, p2, p3, p4 orb.Point) bool {
	d1 := direction(p3, p4, p1)
	d2 := direction(p3, p4, p2)
	d3 := direction(p1, p2, p3)
	d4 := direction(p1, p2, p4)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}

	// Collinear cases
	if d1 == 0 && onSegment(p3, p4, p1) {
		return true
	}
	if d2 == 0 && onSegment(p3, p4, p2) {
		return true
	}
	if d3 == 0 && onSegment(p1, p2, p3) {
		return true
	}
	if d4 == 0 && onSegment(p1, p2, p4) {
		return true
	}
	return false
}

// direction calculates the cross product to determine orientation.
func direction(p1, p2, p3 orb.Point) float64 {
	return (p3.X()-p1.X())*(p2.Y()-p1.Y()) - (p2.X()-p1.X())*(p3.Y()-p1.Y())
}

// onSegment checks if point q lies within the bounding box of segment
// p-r; callers only use it on collinear triples.
func onSegment(p, r, q orb.Point) bool {
	return q.X() <= math.Max(p.X(), r.X()) && q.X() >= math.Min(p.X(), r.X()) &&
		q.Y() <= math.Max(p.Y(), r.Y()) && q.Y() >= math.Min(p.Y(), r.Y())
}
