package geo

import (
	"math"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	a := Point{1, 2}
	b := Point{3, -1}
	if got := a.Add(b); got != (Point{4, 1}) {
		t.Errorf("Add(%v,%v) = %v, want (4,1)", a, b, got)
	}
	if got := a.Sub(b); got != (Point{-2, 3}) {
		t.Errorf("Sub(%v,%v) = %v, want (-2,3)", a, b, got)
	}
	if got := a.Mul(2); got != (Point{2, 4}) {
		t.Errorf("Mul(%v,2) = %v, want (2,4)", a, got)
	}
	if got := a.Dot(b); got != 1 {
		t.Errorf("Dot(%v,%v) = %v, want 1", a, b, got)
	}
	if got := a.Cross(b); got != -7 {
		t.Errorf("Cross(%v,%v) = %v, want -7", a, b, got)
	}
}

func TestNorm(t *testing.T) {
	p := Point{3, 4}
	if got := p.Norm(); got != 5 {
		t.Errorf("Norm(%v) = %v, want 5", p, got)
	}
}

func TestNormalize(t *testing.T) {
	p := Point{3, 4}.Normalize()
	if math.Abs(p.Norm()-1) > 1e-12 {
		t.Errorf("Normalize() did not produce a unit vector: %v", p)
	}
	zero := Point{0, 0}.Normalize()
	if zero != (Point{0, 0}) {
		t.Errorf("Normalize() of zero vector = %v, want (0,0)", zero)
	}
}

func TestDistance(t *testing.T) {
	a := Point{0, 0}
	b := Point{3, 4}
	if got := a.Distance(b); got != 5 {
		t.Errorf("Distance(%v,%v) = %v, want 5", a, b, got)
	}
}
