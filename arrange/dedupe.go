package arrange

import "github.com/radevgit/offroad/geo"

// dedupeKey identifies two edges as the "same" edge between the same pair of
// vertices for deduplication purposes: same endpoints (order-independent for
// segments; in order for arcs, since the CCW arcs U->V and V->U on one circle
// are its two complementary pieces), same curvature sign, the same radius up
// to dedupeRadiusBucket, and — for arcs — the same center up to the same
// bucket. Two arcs that share a radius but sit on different centers (centers
// mirrored across the chord between the same pair of vertices, say) are
// distinct edges and must not collapse; only center and
// radius together pin down an arc's supporting circle. This mirrors the
// edge-processor merge-join the teacher library's S2Builder uses to collapse
// duplicate input edges before snapping, keyed here on geometry instead of
// S2 cell ids.
type dedupeKey struct {
	lo, hi VertexID
	bucket int64
	cx, cy int64
	sign   int8
}

const dedupeRadiusBucket = 1e6

func radiusSign(e geo.Edge) int8 {
	if e.IsSegment() {
		return 0
	}
	return 1
}

func bucketOf(e geo.Edge) int64 {
	if e.IsSegment() || e.R <= 0 {
		return 0
	}
	return int64(e.R * dedupeRadiusBucket)
}

// centerBucketOf returns e's arc center, independently rounded on each axis
// to dedupeRadiusBucket precision so two centers that differ by more than
// floating-point noise hash to different keys. Segments have no center and
// always bucket to the origin.
func centerBucketOf(e geo.Edge) (int64, int64) {
	if e.IsSegment() {
		return 0, 0
	}
	return int64(e.C.X * dedupeRadiusBucket), int64(e.C.Y * dedupeRadiusBucket)
}

func keyOf(ge GraphEdge) dedupeKey {
	lo, hi := ge.U, ge.V
	if lo > hi && ge.Geom.IsSegment() {
		lo, hi = hi, lo
	}
	cx, cy := centerBucketOf(ge.Geom)
	return dedupeKey{
		lo:     lo,
		hi:     hi,
		bucket: bucketOf(ge.Geom),
		cx:     cx,
		cy:     cy,
		sign:   radiusSign(ge.Geom),
	}
}

// dedupeParallelEdges removes exact duplicate edges from g: once two edges
// connect the same vertex pair with the same curve (a segment in either
// direction, or an arc from the same U to the same V with matching radius
// and center buckets), only the first survives. Parallel
// edges that merely share a vertex pair and radius but differ in center are
// kept — they are distinct supporting circles, not duplicates. Adjacency is
// rebuilt from the surviving edge set; EdgeIDs are reassigned densely.
func dedupeParallelEdges(g *Graph) *Graph {
	seen := make(map[dedupeKey]bool, len(g.Edges))
	out := &Graph{Vertices: g.Vertices}

	for _, ge := range g.Edges {
		k := keyOf(ge)
		if seen[k] {
			continue
		}
		seen[k] = true
		out.Edges = append(out.Edges, ge)
	}

	out.Adjacency = make([][]Incidence, len(out.Vertices))
	for eid, ge := range out.Edges {
		out.Adjacency[ge.U] = append(out.Adjacency[ge.U], Incidence{Edge: EdgeID(eid), End: geo.EndA})
		out.Adjacency[ge.V] = append(out.Adjacency[ge.V], Incidence{Edge: EdgeID(eid), End: geo.EndB})
	}
	return out
}
