package arrange

import (
	"testing"

	"github.com/radevgit/offroad/broadphase"
	"github.com/radevgit/offroad/geo"
)

func TestSplitAllCutsCrossingSegments(t *testing.T) {
	edges := []geo.Edge{
		geo.NewSegment(geo.Point{X: -1, Y: 0}, geo.Point{X: 1, Y: 0}),
		geo.NewSegment(geo.Point{X: 0, Y: -1}, geo.Point{X: 0, Y: 1}),
	}
	out := splitAll(edges, broadphase.NewFlatIndex())
	if len(out) != 4 {
		t.Fatalf("splitAll produced %d edges, want 4", len(out))
	}
	hasCrossing := false
	for _, e := range out {
		if e.A == (geo.Point{X: 0, Y: 0}) || e.B == (geo.Point{X: 0, Y: 0}) {
			hasCrossing = true
		}
	}
	if !hasCrossing {
		t.Errorf("no split edge touches the crossing point (0,0)")
	}
}

func TestSplitAllLeavesDisjointEdgesAlone(t *testing.T) {
	edges := []geo.Edge{
		geo.NewSegment(geo.Point{X: 0, Y: 0}, geo.Point{X: 1, Y: 0}),
		geo.NewSegment(geo.Point{X: 5, Y: 5}, geo.Point{X: 6, Y: 5}),
	}
	out := splitAll(edges, broadphase.NewFlatIndex())
	if len(out) != 2 {
		t.Errorf("splitAll changed %d disjoint edges, want 2 unchanged", len(out))
	}
}

func TestSplitAllConvergesOnTripleCrossing(t *testing.T) {
	edges := []geo.Edge{
		geo.NewSegment(geo.Point{X: -2, Y: 0}, geo.Point{X: 2, Y: 0}),
		geo.NewSegment(geo.Point{X: 0, Y: -2}, geo.Point{X: 0, Y: 2}),
		geo.NewSegment(geo.Point{X: -2, Y: -2}, geo.Point{X: 2, Y: 2}),
	}
	out := splitAll(edges, broadphase.NewFlatIndex())
	// All three edges pass through the origin, so every pair meets at that
	// one shared point; each of the three original edges is cut there once,
	// into two pieces: six edges total.
	if len(out) != 6 {
		t.Fatalf("splitAll produced %d edges, want 6", len(out))
	}
}
