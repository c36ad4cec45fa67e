package arrange

import (
	"testing"

	"github.com/radevgit/offroad/geo"
	"github.com/radevgit/offroad/offroadcfg"
)

func TestReconcileEmptyInput(t *testing.T) {
	if got := Reconcile(nil); got != nil {
		t.Errorf("Reconcile(nil) = %v, want nil", got)
	}
}

func TestReconcileUnitSquare(t *testing.T) {
	cycles := Reconcile(unitSquareEdges())
	if len(cycles) == 0 {
		t.Fatalf("Reconcile() found no cycles for a closed square")
	}
	for _, c := range cycles {
		if len(c) < 2 {
			t.Errorf("Reconcile() returned a degenerate cycle with %d edges", len(c))
		}
	}
}

func TestReconcileTwoDisjointTriangles(t *testing.T) {
	triangle := func(ox, oy float64) []geo.Edge {
		a := geo.Point{X: ox, Y: oy}
		b := geo.Point{X: ox + 1, Y: oy}
		c := geo.Point{X: ox, Y: oy + 1}
		return []geo.Edge{
			geo.NewSegment(a, b),
			geo.NewSegment(b, c),
			geo.NewSegment(c, a),
		}
	}
	edges := append(triangle(0, 0), triangle(10, 10)...)
	cycles := Reconcile(edges)
	if len(cycles) == 0 {
		t.Fatalf("Reconcile() found no cycles for two disjoint triangles")
	}
	for _, c := range cycles {
		if len(c) != 3 {
			t.Errorf("cycle has %d edges, want 3 for a plain triangle face", len(c))
		}
	}
}

func TestReconcileSplitsXCrossing(t *testing.T) {
	// A figure-eight: two segments crossing once in the middle. After
	// splitting, the pipeline sees four half-segments radiating from the
	// crossing point, none of which close into a cycle on their own (an
	// open chain), so Reconcile should not fabricate a cycle out of them.
	edges := []geo.Edge{
		geo.NewSegment(geo.Point{X: -1, Y: -1}, geo.Point{X: 1, Y: 1}),
		geo.NewSegment(geo.Point{X: -1, Y: 1}, geo.Point{X: 1, Y: -1}),
	}
	cycles := Reconcile(edges)
	if len(cycles) != 0 {
		t.Errorf("Reconcile() fabricated %d cycles from an open X-crossing, want 0", len(cycles))
	}
	for _, c := range cycles {
		if len(c) < 2 {
			t.Errorf("Reconcile() kept a degenerate open-chain cycle with %d edges", len(c))
		}
	}
}

func TestReconcileWithOptionsUsesFlatBackend(t *testing.T) {
	opts := offroadcfg.Default()
	opts.Backend = offroadcfg.BackendFlat
	cycles := ReconcileWithOptions(unitSquareEdges(), opts)
	if len(cycles) == 0 {
		t.Fatalf("ReconcileWithOptions() found no cycles for a closed square")
	}
	for _, c := range cycles {
		if len(c) < 2 {
			t.Errorf("ReconcileWithOptions() returned a degenerate cycle with %d edges", len(c))
		}
	}
}

func TestReconcileWithOptionsRejectsInvalidOptions(t *testing.T) {
	opts := offroadcfg.Default()
	opts.MergeTol = 0
	if got := ReconcileWithOptions(unitSquareEdges(), opts); got != nil {
		t.Errorf("ReconcileWithOptions() with an invalid MergeTol = %v, want nil", got)
	}
}

func TestReconcileWithOptionsHonorsFixedGridCellSize(t *testing.T) {
	opts := offroadcfg.Default()
	opts.GridCellSize = 0.5
	cycles := ReconcileWithOptions(unitSquareEdges(), opts)
	if len(cycles) == 0 {
		t.Fatalf("ReconcileWithOptions() found no cycles with a fixed grid cell size")
	}
}
