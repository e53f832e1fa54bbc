package model

import "fmt"

// aspectEps clamps degenerate denominators when computing aspect ratios.
const aspectEps = 0.01

// Region is an allowed placement area given by its corner coordinates,
// with X2 > X1 and Y2 > Y1. Regions may overlap each other; a room only
// needs to fit inside one of them.
type Region struct {
	X1   float64 `json:"x1"`
	Y1   float64 `json:"y1"`
	X2   float64 `json:"x2"`
	Y2   float64 `json:"y2"`
	Name string  `json:"name"`
}

// NewRegion creates a region, validating the corner invariant. An empty name
// defaults to "Region (x1,y1)-(x2,y2)".
func NewRegion(x1, y1, x2, y2 float64, name string) (Region, error) {
	if x2 <= x1 || y2 <= y1 {
		return Region{}, fmt.Errorf("region %q: corners must satisfy x2>x1 and y2>y1, got (%g,%g)-(%g,%g)", name, x1, y1, x2, y2)
	}
	if name == "" {
		name = fmt.Sprintf("Region (%g,%g)-(%g,%g)", x1, y1, x2, y2)
	}
	return Region{X1: x1, Y1: y1, X2: x2, Y2: y2, Name: name}, nil
}

// Width returns the region's horizontal extent.
func (g Region) Width() float64 {
	return g.X2 - g.X1
}

// Height returns the region's vertical extent.
func (g Region) Height() float64 {
	return g.Y2 - g.Y1
}

// Area returns the region area.
func (g Region) Area() float64 {
	return g.Width() * g.Height()
}

// Rect returns the region as a rectangle.
func (g Region) Rect() Rect {
	return Rect{X: g.X1, Y: g.Y1, W: g.Width(), H: g.Height()}
}

// Contains reports whether a w×h rectangle placed at (x, y) lies entirely
// within the region.
func (g Region) Contains(w, h, x, y float64) bool {
	return x >= g.X1-geomEps && x+w <= g.X2+geomEps &&
		y >= g.Y1-geomEps && y+h <= g.Y2+geomEps
}

// AspectRatio returns width/height with the denominator clamped so that a
// degenerate region cannot divide by zero.
func (g Region) AspectRatio() float64 {
	h := g.Height()
	if h < aspectEps {
		h = aspectEps
	}
	return g.Width() / h
}

// IsNarrow reports whether the region is elongated beyond the threshold in
// either direction.
func (g Region) IsNarrow(threshold float64) bool {
	ratio := g.AspectRatio()
	return ratio > threshold || ratio < 1/threshold
}

// SamplePositions enumerates grid origins inside the region, spaced by step,
// at which a w×h rectangle still fits.
func (g Region) SamplePositions(w, h, step float64) []Point2D {
	var positions []Point2D
	for x := g.X1; x <= g.X2-w+geomEps; x += step {
		for y := g.Y1; y <= g.Y2-h+geomEps; y += step {
			positions = append(positions, Point2D{X: x, Y: y})
		}
	}
	return positions
}
