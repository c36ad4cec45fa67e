package geo

import "sort"

// SplitAt cuts e into consecutive sub-edges at the given interior points,
// which need not be sorted or deduplicated; SplitAt orders them by Param and
// collapses points within eps of each other or of an endpoint. Each returned
// sub-edge is a fresh Edge sharing e's curve (same C and R) but with new
// endpoints and a new id. If no interior points survive filtering, SplitAt
// returns a single-element slice containing e unchanged.
func SplitAt(e Edge, points []Point, eps float64) []Edge {
	type paramPoint struct {
		t float64
		p Point
	}
	pts := make([]paramPoint, 0, len(points))
	for _, p := range points {
		t := e.Param(p)
		if t <= eps || t >= 1-eps {
			continue
		}
		pts = append(pts, paramPoint{t: t, p: p})
	}
	if len(pts) == 0 {
		return []Edge{e}
	}
	sort.Slice(pts, func(i, j int) bool { return pts[i].t < pts[j].t })

	deduped := pts[:1]
	for _, pp := range pts[1:] {
		if pp.t-deduped[len(deduped)-1].t <= eps {
			continue
		}
		deduped = append(deduped, pp)
	}

	out := make([]Edge, 0, len(deduped)+1)
	prev := e.A
	for _, pp := range deduped {
		out = append(out, subEdge(e, prev, pp.p))
		prev = pp.p
	}
	out = append(out, subEdge(e, prev, e.B))
	return out
}

// subEdge returns the piece of e's supporting curve running from a to b,
// sharing e's center and radius.
func subEdge(e Edge, a, b Point) Edge {
	if e.IsSegment() {
		return NewSegment(a, b)
	}
	return NewArc(a, b, e.C, e.R)
}
