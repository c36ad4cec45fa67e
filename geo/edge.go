package geo

import (
	"math"
	"sync/atomic"
)

// EndOfEdge names one of an Edge's two endpoints.
type EndOfEdge int8

const (
	// EndA is the edge's start endpoint, A.
	EndA EndOfEdge = iota
	// EndB is the edge's end endpoint, B.
	EndB
)

var nextEdgeID int64

// freshID hands out a process-wide unique edge id. Split results are always
// given fresh ids rather than inheriting one from the edge they came from;
// patching stable ids across a split is fragile (see package arrange's
// splitter notes), so the core never tries.
func freshID() int64 {
	return atomic.AddInt64(&nextEdgeID, 1)
}

// Edge is a single 2D arc, possibly of infinite radius (a straight segment).
// Traversal runs from A to B. The arc sweep, when R is finite, is always the
// counter-clockwise one from A to B on the circle centered at C with radius R.
type Edge struct {
	A, B, C Point
	R       float64
	id      int64
}

// NewSegment builds a straight edge from a to b.
func NewSegment(a, b Point) Edge {
	return Edge{A: a, B: b, R: math.Inf(1), id: freshID()}
}

// NewArc builds a CCW arc from a to b on the circle centered at c with radius r.
func NewArc(a, b, c Point, r float64) Edge {
	return Edge{A: a, B: b, C: c, R: r, id: freshID()}
}

// ID returns the edge's stable identity, used by the broad-phase index.
func (e Edge) ID() int64 { return e.id }

// WithID returns a copy of e carrying a specific id. Nothing in this module
// calls it; split results always receive fresh ids.
func (e Edge) WithID(id int64) Edge {
	e.id = id
	return e
}

// IsSegment reports whether e is a straight edge (infinite radius).
func (e Edge) IsSegment() bool { return math.IsInf(e.R, 1) }

// Chord returns the straight-line distance between the two endpoints.
func (e Edge) Chord() float64 { return e.A.Distance(e.B) }

// forwardTangent returns the unit tangent of e's supporting curve at point p,
// oriented in the direction of CCW travel. For a segment this is the same
// vector everywhere on the edge; for an arc it depends on p's angular
// position relative to the center.
func (e Edge) forwardTangent(p Point) Point {
	if e.IsSegment() {
		return e.B.Sub(e.A).Normalize()
	}
	return rotate90CCW(p.Sub(e.C)).Normalize()
}

// Tangent returns the unit tangent of e at the named endpoint, pointing away
// from that endpoint and into the body of the edge. At A this is the forward
// direction of travel; at B it is the reverse of the forward direction,
// since continuing to travel CCW past B leaves the edge.
func (e Edge) Tangent(end EndOfEdge) Point {
	if end == EndA {
		return e.forwardTangent(e.A)
	}
	return e.forwardTangent(e.B).Neg()
}

// angleAt returns the angle of p around e's center, in radians, undefined
// for segments.
func (e Edge) angleAt(p Point) float64 {
	return math.Atan2(p.Y-e.C.Y, p.X-e.C.X)
}

// sweepAngle returns the total CCW angle swept from A to B, in (0, 2*pi].
// A full circle (A == B within floating error) sweeps the whole 2*pi.
func (e Edge) sweepAngle() float64 {
	a := e.angleAt(e.A)
	b := e.angleAt(e.B)
	d := ccwDelta(a, b)
	if d <= 1e-15 {
		return 2 * math.Pi
	}
	return d
}

// ccwDelta returns the non-negative angle traveled going CCW from "from" to
// "to", always in [0, 2*pi).
func ccwDelta(from, to float64) float64 {
	d := math.Mod(to-from, 2*math.Pi)
	if d < 0 {
		d += 2 * math.Pi
	}
	return d
}

// Param returns a value in [0, 1] giving p's position along e, assuming p
// lies on e's supporting line or circle. 0 is A, 1 is B. It is the ordering
// key used to split an edge at several interior points.
func (e Edge) Param(p Point) float64 {
	if e.IsSegment() {
		ab := e.B.Sub(e.A)
		denom := ab.Dot(ab)
		if denom == 0 {
			return 0
		}
		return p.Sub(e.A).Dot(ab) / denom
	}
	sweep := e.sweepAngle()
	if sweep == 0 {
		return 0
	}
	return ccwDelta(e.angleAt(e.A), e.angleAt(p)) / sweep
}

// angleContains reports whether the direction of p as seen from the center
// lies within e's CCW sweep from A to B (inclusive of the endpoints).
func (e Edge) angleContains(p Point) bool {
	sweep := e.sweepAngle()
	d := ccwDelta(e.angleAt(e.A), e.angleAt(p))
	return d <= sweep+1e-12
}
