package arrange

import (
	"github.com/radevgit/offroad/broadphase"
	"github.com/radevgit/offroad/geo"
)

// endpointUnionFind clusters endpoints by single-linkage: two endpoints are
// merged whenever they lie within tolerance of each other, and clusters are
// snapped to their centroid. This mirrors the union-find edge merging the
// teacher library's graph builder uses to collapse duplicate vertices, with
// the neighbor search swapped from an S2 cell covering to a planar
// broad-phase query.
type endpointUnionFind struct {
	parent []int
	sum    []geo.Point
	count  []int
}

func newEndpointUnionFind(points []geo.Point) *endpointUnionFind {
	u := &endpointUnionFind{
		parent: make([]int, len(points)),
		sum:    make([]geo.Point, len(points)),
		count:  make([]int, len(points)),
	}
	for i, p := range points {
		u.parent[i] = i
		u.sum[i] = p
		u.count[i] = 1
	}
	return u
}

func (u *endpointUnionFind) find(i int) int {
	for u.parent[i] != i {
		u.parent[i] = u.parent[u.parent[i]]
		i = u.parent[i]
	}
	return i
}

func (u *endpointUnionFind) union(i, j int) {
	ri, rj := u.find(i), u.find(j)
	if ri == rj {
		return
	}
	u.parent[ri] = rj
	u.sum[rj] = u.sum[rj].Add(u.sum[ri])
	u.count[rj] += u.count[ri]
}

func (u *endpointUnionFind) centroid(i int) geo.Point {
	r := u.find(i)
	return u.sum[r].Div(float64(u.count[r]))
}

// MergeCloseEndpoints clusters every pair of edge endpoints within tolerance
// of each other and snaps each cluster to its centroid, rewriting *edges in
// place. Edges that become degenerate after snapping — a straight edge whose
// endpoints coincide, or an arc whose endpoint separation and radius both
// collapse to a point — are dropped. Each surviving arc has AdjustConsistency
// applied so its center stays consistent with its (possibly moved)
// endpoints.
//
// Endpoint indices are 2*i for edge i's A and 2*i+1 for its B, which is the
// indexing convention the rest of this function's helpers assume.
func MergeCloseEndpoints(edges *[]geo.Edge, tolerance float64) {
	in := *edges
	if len(in) == 0 {
		return
	}

	points := make([]geo.Point, 0, len(in)*2)
	for _, e := range in {
		points = append(points, e.A, e.B)
	}

	index := broadphase.NewGridIndex(tolerance * 8)
	for i, p := range points {
		index.Add(int64(i), geo.AABB{MinX: p.X, MaxX: p.X, MinY: p.Y, MaxY: p.Y})
	}

	uf := newEndpointUnionFind(points)
	for i, p := range points {
		box := geo.AABB{MinX: p.X, MaxX: p.X, MinY: p.Y, MaxY: p.Y}.Expanded(tolerance)
		for _, j := range index.Query(box) {
			if int(j) <= i {
				continue
			}
			if p.Distance(points[j]) <= tolerance {
				uf.union(i, int(j))
			}
		}
	}

	out := make([]geo.Edge, 0, len(in))
	for i, e := range in {
		a := uf.centroid(2 * i)
		b := uf.centroid(2*i + 1)
		moved := e
		moved.A = a
		moved.B = b
		if !moved.IsSegment() {
			moved = geo.AdjustConsistency(moved)
		}
		if isDegenerate(moved, tolerance) {
			continue
		}
		out = append(out, moved)
	}
	*edges = out
}

// isDegenerate reports whether e has collapsed to (effectively) a point: its
// two endpoints are within tolerance, and for an arc its radius is also
// within tolerance of zero. A coincident-endpoint arc with a real radius is a
// full circle, not a degenerate edge, and is kept.
func isDegenerate(e geo.Edge, tolerance float64) bool {
	if e.IsSegment() {
		return e.A.Distance(e.B) <= tolerance
	}
	span := e.A.Distance(e.B)
	if span > tolerance {
		return false
	}
	return e.R <= tolerance
}
