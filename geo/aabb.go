package geo

import "math"

// AABB is an axis-aligned bounding box. A box with MinX > MaxX (or
// MinY > MaxY) is empty, mirroring r1.Interval's empty-interval convention
// in the teacher library this package descends from.
type AABB struct {
	MinX, MaxX, MinY, MaxY float64
}

// EmptyAABB returns an empty box.
func EmptyAABB() AABB {
	return AABB{MinX: 1, MaxX: 0, MinY: 1, MaxY: 0}
}

// IsEmpty reports whether the box contains no points.
func (b AABB) IsEmpty() bool { return b.MinX > b.MaxX || b.MinY > b.MaxY }

// Overlaps reports whether b and o intersect on both axes, inclusive of
// shared boundaries.
func (b AABB) Overlaps(o AABB) bool {
	if b.IsEmpty() || o.IsEmpty() {
		return false
	}
	return b.MinX <= o.MaxX && o.MinX <= b.MaxX &&
		b.MinY <= o.MaxY && o.MinY <= b.MaxY
}

// Expanded returns b grown by margin on every side.
func (b AABB) Expanded(margin float64) AABB {
	if b.IsEmpty() {
		return b
	}
	return AABB{
		MinX: b.MinX - margin, MaxX: b.MaxX + margin,
		MinY: b.MinY - margin, MaxY: b.MaxY + margin,
	}
}

// Union returns the smallest box containing both b and o.
func (b AABB) Union(o AABB) AABB {
	if b.IsEmpty() {
		return o
	}
	if o.IsEmpty() {
		return b
	}
	return AABB{
		MinX: math.Min(b.MinX, o.MinX), MaxX: math.Max(b.MaxX, o.MaxX),
		MinY: math.Min(b.MinY, o.MinY), MaxY: math.Max(b.MaxY, o.MaxY),
	}
}

// aabbFromPoints returns the tight box around a set of points.
func aabbFromPoints(pts ...Point) AABB {
	if len(pts) == 0 {
		return EmptyAABB()
	}
	b := AABB{MinX: pts[0].X, MaxX: pts[0].X, MinY: pts[0].Y, MaxY: pts[0].Y}
	for _, p := range pts[1:] {
		b.MinX = math.Min(b.MinX, p.X)
		b.MaxX = math.Max(b.MaxX, p.X)
		b.MinY = math.Min(b.MinY, p.Y)
		b.MaxY = math.Max(b.MaxY, p.Y)
	}
	return b
}

// compassAngles are the angles of a circle's four axis extrema, in CCW
// order starting from angle 0.
var compassAngles = [4]float64{0, math.Pi / 2, math.Pi, 3 * math.Pi / 2}

// AABB returns the bounding box of e: for a segment, the endpoint box; for
// an arc, the endpoint box extended by whichever compass-point extrema
// (0, 90, 180, 270 degrees around the center) the CCW sweep from A to B
// actually crosses.
func (e Edge) AABB() AABB {
	box := aabbFromPoints(e.A, e.B)
	if e.IsSegment() {
		return box
	}
	sweep := e.sweepAngle()
	startAngle := e.angleAt(e.A)
	for _, ang := range compassAngles {
		if ccwDelta(startAngle, ang) <= sweep+1e-12 {
			box = box.Union(aabbFromPoints(e.pointAtAngle(ang)))
		}
	}
	return box
}

// pointAtAngle returns the point on e's circle at the given absolute angle.
func (e Edge) pointAtAngle(angle float64) Point {
	return e.C.Add(Point{math.Cos(angle), math.Sin(angle)}.Mul(e.R))
}
