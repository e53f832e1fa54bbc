// Package model defines the core data types for region-based room placement:
// geometry primitives, rooms, regions, adjacency requirements, solver settings,
// and the result/drawing structures consumed by exporters.
package model

import "math"

// geomEps is the tolerance for float coordinate comparisons. Candidate
// positions are produced by flush arithmetic against placed rectangles, so
// edge-touch tests must not be defeated by float rounding.
const geomEps = 1e-9

// Point2D represents a 2D coordinate.
type Point2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rect is an axis-aligned rectangle anchored at its lower-left corner.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Area returns the rectangle area.
func (r Rect) Area() float64 {
	return r.W * r.H
}

// Center returns the rectangle's center point.
func (r Rect) Center() Point2D {
	return Point2D{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Overlaps reports whether the two rectangles share interior area.
// Rectangles that merely touch along an edge or corner do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X+r.W > o.X+geomEps && o.X+o.W > r.X+geomEps &&
		r.Y+r.H > o.Y+geomEps && o.Y+o.H > r.Y+geomEps
}

// Adjacent reports whether the two rectangles share a full or partial edge:
// their x-extents touch and their y-projections overlap, or vice versa.
// Corner-only contact (touching edges with zero projection overlap) is not
// adjacency.
func (r Rect) Adjacent(o Rect) bool {
	if approxEqual(r.X+r.W, o.X) || approxEqual(o.X+o.W, r.X) {
		return r.Y+r.H > o.Y+geomEps && o.Y+o.H > r.Y+geomEps
	}
	if approxEqual(r.Y+r.H, o.Y) || approxEqual(o.Y+o.H, r.Y) {
		return r.X+r.W > o.X+geomEps && o.X+o.W > r.X+geomEps
	}
	return false
}

// CenterDistance returns the Euclidean distance between the two rectangles'
// centers.
func (r Rect) CenterDistance(o Rect) float64 {
	rc, oc := r.Center(), o.Center()
	return math.Hypot(rc.X-oc.X, rc.Y-oc.Y)
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) <= geomEps
}
