// Package geo provides the planar geometry primitives the reconciliation
// pipeline in package arrange treats as an external collaborator: point
// arithmetic, arc/segment edges, bounding boxes, pairwise intersection,
// tangent vectors and arc-consistency adjustment.
package geo

/*
 * Copyright 2005 Google Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

import (
	"fmt"
	"math"
)

// Point carries forward r2.Vector's arithmetic (add/sub/scale/dot/cross/
// normalize) under the name this package's callers actually use: a 2D point
// on an edge, not an abstract vector. LessThan/CompareTo/Abs, which nothing
// here needs, are dropped; rotate90CCW is added, since the arc and bulge math
// in edge.go and bulge.go both need a quarter-turn and would otherwise each
// hand-roll their own.
type Point struct {
	X, Y float64
}

func (p Point) String() string { return fmt.Sprintf("(%v, %v)", p.X, p.Y) }

// Norm returns the point's distance from the origin.
func (p Point) Norm() float64 { return math.Sqrt(p.Dot(p)) }

// Norm2 returns the square of Norm.
func (p Point) Norm2() float64 { return p.Dot(p) }

// Normalize returns a unit vector in the same direction as p.
// The zero vector normalizes to itself.
func (p Point) Normalize() Point {
	if p == (Point{0, 0}) {
		return p
	}
	return p.Mul(1 / p.Norm())
}

// Neg returns the negated point.
func (p Point) Neg() Point { return Point{-p.X, -p.Y} }

// Add returns the vector sum of p and o.
func (p Point) Add(o Point) Point { return Point{p.X + o.X, p.Y + o.Y} }

// Sub returns the vector difference of p and o.
func (p Point) Sub(o Point) Point { return Point{p.X - o.X, p.Y - o.Y} }

// Mul returns p scaled by m.
func (p Point) Mul(m float64) Point { return Point{p.X * m, p.Y * m} }

// Div returns p divided by m.
func (p Point) Div(m float64) Point { return Point{p.X / m, p.Y / m} }

// Dot returns the dot product of p and o.
func (p Point) Dot(o Point) float64 { return p.X*o.X + p.Y*o.Y }

// Cross returns the (scalar, z-component of the) cross product of p and o.
func (p Point) Cross(o Point) float64 { return p.X*o.Y - p.Y*o.X }

// Distance returns the Euclidean distance between p and o.
func (p Point) Distance(o Point) float64 { return p.Sub(o).Norm() }

// Equals reports bit-exact equality.
func (p Point) Equals(o Point) bool { return p.X == o.X && p.Y == o.Y }

// rotate90CCW returns p rotated 90 degrees counter-clockwise about the origin.
func rotate90CCW(p Point) Point { return Point{-p.Y, p.X} }
