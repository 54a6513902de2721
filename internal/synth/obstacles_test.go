package synth

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegmentsIntersect(t *testing.T) {
	cases := []struct {
		name           string
		a, b, c, d     orb.Point
		wantIntersects bool
	}{
		{"crossing", orb.Point{0, 0}, orb.Point{2, 2}, orb.Point{0, 2}, orb.Point{2, 0}, true},
		{"parallel", orb.Point{0, 0}, orb.Point{2, 0}, orb.Point{0, 1}, orb.Point{2, 1}, false},
		{"disjoint", orb.Point{0, 0}, orb.Point{1, 0}, orb.Point{2, 2}, orb.Point{3, 3}, false},
		{"touching endpoint", orb.Point{0, 0}, orb.Point{1, 0}, orb.Point{1, 0}, orb.Point{2, 1}, true},
		{"collinear overlap", orb.Point{0, 0}, orb.Point{2, 0}, orb.Point{1, 0}, orb.Point{3, 0}, true},
		{"collinear disjoint", orb.Point{0, 0}, orb.Point{1, 0}, orb.Point{2, 0}, orb.Point{3, 0}, false},
		{"t shape", orb.Point{0, 0}, orb.Point{2, 0}, orb.Point{1, -1}, orb.Point{1, 1}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wantIntersects, segmentsIntersect(tc.a, tc.b, tc.c, tc.d))
			// Either order of the two segments agrees.
			assert.Equal(t, tc.wantIntersects, segmentsIntersect(tc.c, tc.d, tc.a, tc.b))
		})
	}
}

func TestSegmentClear(t *testing.T) {
	obstacle := orb.Polygon{orb.Ring{{1, 1}, {2, 1}, {2, 2}, {1, 2}, {1, 1}}}
	obstacles := []orb.Polygon{obstacle}

	t.Run("no obstacles", func(t *testing.T) {
		assert.True(t, segmentClear(orb.Point{0, 0}, orb.Point{5, 5}, nil))
	})
	t.Run("clear of the obstacle", func(t *testing.T) {
		assert.True(t, segmentClear(orb.Point{0, 0}, orb.Point{0.5, 3}, obstacles))
	})
	t.Run("crossing through", func(t *testing.T) {
		assert.False(t, segmentClear(orb.Point{0, 0}, orb.Point{3, 3}, obstacles))
	})
	t.Run("clipping a corner", func(t *testing.T) {
		assert.False(t, segmentClear(orb.Point{0.5, 1.5}, orb.Point{1.5, 0.5}, obstacles))
	})
}

func TestInsideAny(t *testing.T) {
	obstacle := orb.Polygon{orb.Ring{{0, 0}, {4, 0}, {4, 4}, {0, 4}, {0, 0}}}
	obstacles := []orb.Polygon{obstacle}

	assert.True(t, insideAny(orb.Point{2, 2}, obstacles))
	assert.False(t, insideAny(orb.Point{5, 5}, obstacles))
	assert.False(t, insideAny(orb.Point{2, 2}, nil))
}

func TestLoadObstacles(t *testing.T) {
	const doc = `{
  "type": "FeatureCollection",
  "features": [
    {
      "type": "Feature",
      "properties": {"name": "block"},
      "geometry": {
        "type": "Polygon",
        "coordinates": [[[0, 0], [1, 0], [1, 1], [0, 1], [0, 0]]]
      }
    },
    {
      "type": "Feature",
      "properties": {},
      "geometry": {
        "type": "MultiPolygon",
        "coordinates": [
          [[[2, 2], [3, 2], [3, 3], [2, 3], [2, 2]]],
          [[[5, 5], [6, 5], [6, 6], [5, 6], [5, 5]]]
        ]
      }
    },
    {
      "type": "Feature",
      "properties": {},
      "geometry": {"type": "Point", "coordinates": [9, 9]}
    }
  ]
}`
	dir := t.TempDir()
	path := filepath.Join(dir, "obstacles.geojson")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	polys, err := LoadObstacles(path)
	require.NoError(t, err)

	// One polygon feature plus two from the multipolygon; the point
	// feature is ignored.
	require.Len(t, polys, 3)
	assert.True(t, insideAny(orb.Point{0.5, 0.5}, polys))
	assert.True(t, insideAny(orb.Point{5.5, 5.5}, polys))
	assert.False(t, insideAny(orb.Point{4, 4.5}, polys))

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadObstacles(filepath.Join(dir, "nope.geojson"))
		assert.Error(t, err)
	})
	t.Run("not geojson", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.geojson")
		require.NoError(t, os.WriteFile(bad, []byte("{"), 0644))
		_, err := LoadObstacles(bad)
		assert.Error(t, err)
	})
}
