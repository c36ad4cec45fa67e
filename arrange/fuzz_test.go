package arrange

import (
	"testing"

	fuzz "github.com/google/gofuzz"

	"github.com/radevgit/offroad/geo"
)

// jitteredSquare returns the unit square's four edges with each vertex
// perturbed by a small random offset, used to check that Reconcile tolerates
// near-but-not-exact endpoint coincidence the way a real offset generator's
// floating point noise would produce.
func jitteredSquare(f *fuzz.Fuzzer) []geo.Edge {
	corners := [4]geo.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	jitter := func(p geo.Point) geo.Point {
		var nx, ny int16
		f.Fuzz(&nx)
		f.Fuzz(&ny)
		const scale = 1e-13
		return geo.Point{X: p.X + float64(nx)*scale, Y: p.Y + float64(ny)*scale}
	}
	edges := make([]geo.Edge, 4)
	for i := range corners {
		edges[i] = geo.NewSegment(jitter(corners[i]), jitter(corners[(i+1)%4]))
	}
	return edges
}

func TestReconcileToleratesJitteredSquare(t *testing.T) {
	f := fuzz.New().NilChance(0).NumElements(1, 1)
	for trial := 0; trial < 50; trial++ {
		edges := jitteredSquare(f)
		cycles := Reconcile(edges)
		if len(cycles) == 0 {
			t.Fatalf("trial %d: Reconcile() found no cycles for a near-square input", trial)
		}
		for _, c := range cycles {
			if len(c) < 2 {
				t.Errorf("trial %d: Reconcile() produced a degenerate cycle with %d edges", trial, len(c))
			}
		}
	}
}
