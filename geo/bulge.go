package geo

import "math"

// Bulge returns the signed bulge factor of e, the inverse of EdgeFromBulge:
// tan(theta/4), with the sign recording which side of the chord A-B the
// center falls on. With the center to the left of A->B, theta is the CCW
// sweep from A to B and the result is positive. With the center to the
// right, the CCW sweep is the major arc, theta is 2*pi minus that sweep,
// and the result is negative. Segments have bulge 0. This is the convention
// shared by most 2D CAD/CAM polyline formats. Like EdgeFromBulge, it is only
// exact for included angles of at most a semicircle (|bulge| <= 1); this
// matches the fillet-sized arcs an offset generator produces in practice.
func (e Edge) Bulge() float64 {
	if e.IsSegment() {
		return 0
	}
	sweep := e.sweepAngle()
	chord := e.B.Sub(e.A)
	perp := rotate90CCW(chord)
	mid := e.A.Add(e.B).Mul(0.5)
	if perp.Dot(e.C.Sub(mid)) < 0 {
		return -math.Tan((2*math.Pi - sweep) / 4)
	}
	return math.Tan(sweep / 4)
}

// EdgeFromBulge builds the edge from a to b whose bulge is the given value.
// A bulge of 0 yields a straight segment; otherwise the included angle is
// 4*atan(|bulge|) and the center is placed on whichever side of the chord
// the sign of bulge selects. Since an Edge always sweeps CCW from a to b, a
// negative bulge yields the major arc of that circle: its CCW sweep is 2*pi
// minus the included angle.
func EdgeFromBulge(a, b Point, bulge float64) Edge {
	if bulge == 0 {
		return NewSegment(a, b)
	}
	chord := b.Sub(a)
	chordLen := chord.Norm()
	if chordLen == 0 {
		return NewSegment(a, b)
	}
	theta := 4 * math.Atan(math.Abs(bulge))
	r := chordLen / (2 * math.Sin(theta/2))
	mid := a.Add(b).Mul(0.5)
	h := r * math.Cos(theta/2)
	perpUnit := rotate90CCW(chord).Div(chordLen)
	sign := 1.0
	if bulge < 0 {
		sign = -1
	}
	c := mid.Add(perpUnit.Mul(h * sign))
	return NewArc(a, b, c, r)
}
