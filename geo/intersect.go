package geo

import "math"

// intersectEps bounds the numerical slack used when classifying roots as
// lying within a segment's parameter range or an arc's angular sweep.
const intersectEps = 1e-9

// Intersect returns the 0, 1 or 2 points at which e1 and e2 properly meet.
// Both segment and arc edges are handled; the dispatch is purely on whether
// each operand is a segment (infinite radius) or an arc.
func Intersect(e1, e2 Edge) []Point {
	switch {
	case e1.IsSegment() && e2.IsSegment():
		return intersectSegmentSegment(e1, e2)
	case e1.IsSegment() && !e2.IsSegment():
		return intersectSegmentArc(e1, e2)
	case !e1.IsSegment() && e2.IsSegment():
		return intersectSegmentArc(e2, e1)
	default:
		return intersectArcArc(e1, e2)
	}
}

func intersectSegmentSegment(e1, e2 Edge) []Point {
	d1 := e1.B.Sub(e1.A)
	d2 := e2.B.Sub(e2.A)
	denom := d1.Cross(d2)
	if math.Abs(denom) < 1e-15 {
		// Parallel or collinear; the raw offset generator is not expected to
		// produce overlapping collinear segments. Report no intersection.
		return nil
	}
	diff := e2.A.Sub(e1.A)
	t := diff.Cross(d2) / denom
	u := diff.Cross(d1) / denom
	if t < -intersectEps || t > 1+intersectEps || u < -intersectEps || u > 1+intersectEps {
		return nil
	}
	return []Point{e1.A.Add(d1.Mul(clamp01(t)))}
}

// clamp01 guards against the point landing a hair outside [0,1] due to the
// tolerance used in the range check above.
func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

func intersectSegmentArc(seg, arc Edge) []Point {
	d := seg.B.Sub(seg.A)
	f := seg.A.Sub(arc.C)
	a := d.Dot(d)
	if a == 0 {
		return nil
	}
	b := 2 * f.Dot(d)
	c := f.Dot(f) - arc.R*arc.R
	disc := b*b - 4*a*c
	if disc < 0 {
		return nil
	}
	sq := math.Sqrt(disc)
	t1 := (-b - sq) / (2 * a)
	t2 := (-b + sq) / (2 * a)

	var out []Point
	for _, t := range []float64{t1, t2} {
		if t < -intersectEps || t > 1+intersectEps {
			continue
		}
		p := seg.A.Add(d.Mul(clamp01(t)))
		if arc.angleContains(p) {
			out = appendUnique(out, p)
		}
	}
	return out
}

func intersectArcArc(e1, e2 Edge) []Point {
	d := e2.C.Sub(e1.C)
	dist := d.Norm()
	if dist < 1e-15 {
		// Concentric circles: either disjoint or coincident, never a finite
		// transverse intersection set.
		return nil
	}
	if dist > e1.R+e2.R+intersectEps || dist < math.Abs(e1.R-e2.R)-intersectEps {
		return nil
	}
	// Standard circle-circle intersection via the radical line.
	a := (dist*dist + e1.R*e1.R - e2.R*e2.R) / (2 * dist)
	h2 := e1.R*e1.R - a*a
	if h2 < 0 {
		h2 = 0
	}
	h := math.Sqrt(h2)
	mid := e1.C.Add(d.Mul(a / dist))
	perp := Point{-d.Y, d.X}.Mul(1 / dist)

	var out []Point
	for _, p := range []Point{mid.Add(perp.Mul(h)), mid.Sub(perp.Mul(h))} {
		if e1.angleContains(p) && e2.angleContains(p) {
			out = appendUnique(out, p)
		}
	}
	return out
}

// appendUnique appends p to pts unless a near-duplicate (within
// intersectEps) is already present, collapsing a tangential contact's
// doubled root into the single split point spec.md calls for.
func appendUnique(pts []Point, p Point) []Point {
	for _, q := range pts {
		if p.Distance(q) < intersectEps {
			return pts
		}
	}
	return append(pts, p)
}

// Tangent is the package-level form of Edge.Tangent, given for symmetry with
// the other free functions in this file.
func Tangent(e Edge, end EndOfEdge) Point { return e.Tangent(end) }
