package geo

import (
	"math"
	"testing"
)

func TestAdjustConsistencySegmentNoop(t *testing.T) {
	e := NewSegment(Point{0, 0}, Point{1, 1})
	got := AdjustConsistency(e)
	if got.A != e.A || got.B != e.B {
		t.Errorf("AdjustConsistency changed a segment's endpoints")
	}
}

func TestAdjustConsistencyRepairsDriftedCenter(t *testing.T) {
	e := NewArc(Point{1, 0}, Point{0, 1}, Point{0.01, 0.01}, 1)
	got := AdjustConsistency(e)
	if math.Abs(got.C.Distance(got.A)-got.R) > 1e-9 {
		t.Errorf("center %v is not R=%v from A=%v", got.C, got.R, got.A)
	}
	if math.Abs(got.C.Distance(got.B)-got.R) > 1e-9 {
		t.Errorf("center %v is not R=%v from B=%v", got.C, got.R, got.B)
	}
}
