package geo

import "math"

// AdjustConsistency nudges an arc's center so that |C-A| = |C-B| = R holds
// to within the library's internal precision, without moving the arc's
// direction (which side of AB the center sits on is preserved). Segments
// are returned unchanged.
func AdjustConsistency(e Edge) Edge {
	if e.IsSegment() {
		return e
	}
	mid := e.A.Add(e.B).Mul(0.5)
	half := e.A.Distance(e.B) / 2
	h2 := e.R*e.R - half*half
	if h2 < 0 {
		h2 = 0
	}
	h := math.Sqrt(h2)

	chord := e.B.Sub(e.A)
	n := chord.Norm()
	if n == 0 {
		return e
	}
	perp := Point{-chord.Y, chord.X}.Div(n)

	// Preserve which side of the chord the existing center lies on.
	sign := 1.0
	if perp.Dot(e.C.Sub(mid)) < 0 {
		sign = -1
	}
	e.C = mid.Add(perp.Mul(h * sign))
	return e
}
