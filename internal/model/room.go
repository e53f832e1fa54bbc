package model

import (
	"fmt"
	"math"
)

// Room is a placeable rectangular entity. Width and Height always describe
// the current orientation; Rotate swaps them. A room is placed when Region
// is non-nil, in which case X and Y give its lower-left corner. The solver
// mutates rooms in place during a run; ClearPlacement returns a room to its
// initial unplaced, unrotated state.
type Room struct {
	ID      int
	Name    string
	Width   float64
	Height  float64
	X       float64
	Y       float64
	Rotated bool
	Region  *Region // nil while unplaced
}

// NewRoom creates an unplaced room. An empty name defaults to "Room <id>".
func NewRoom(id int, name string, width, height float64) *Room {
	if name == "" {
		name = fmt.Sprintf("Room %d", id)
	}
	return &Room{ID: id, Name: name, Width: width, Height: height}
}

// Rotate swaps the room's width and height and toggles the rotation flag.
// Rotating twice restores the original dimensions and flag.
func (r *Room) Rotate() {
	r.Width, r.Height = r.Height, r.Width
	r.Rotated = !r.Rotated
}

// Area returns the room area. Rotation does not change it.
func (r *Room) Area() float64 {
	return r.Width * r.Height
}

// Perimeter returns the room perimeter.
func (r *Room) Perimeter() float64 {
	return 2 * (r.Width + r.Height)
}

// BaseWidth returns the width in the room's original (unrotated) orientation.
func (r *Room) BaseWidth() float64 {
	if r.Rotated {
		return r.Height
	}
	return r.Width
}

// BaseHeight returns the height in the room's original orientation.
func (r *Room) BaseHeight() float64 {
	if r.Rotated {
		return r.Width
	}
	return r.Height
}

// Placed reports whether the room has been assigned a position and region.
func (r *Room) Placed() bool {
	return r.Region != nil
}

// Rect returns the room's rectangle. ok is false while the room is unplaced;
// the returned rectangle is undefined in that case.
func (r *Room) Rect() (rect Rect, ok bool) {
	if !r.Placed() {
		return Rect{}, false
	}
	return Rect{X: r.X, Y: r.Y, W: r.Width, H: r.Height}, true
}

// PlaceAt positions the room at (x, y) inside the given region.
func (r *Room) PlaceAt(x, y float64, region *Region) {
	r.X, r.Y = x, y
	r.Region = region
}

// ClearPlacement resets the room to unplaced: position and region are
// cleared and the original orientation is restored.
func (r *Room) ClearPlacement() {
	if r.Rotated {
		r.Rotate()
	}
	r.X, r.Y = 0, 0
	r.Region = nil
}

// Overlaps reports whether the two rooms' rectangles share interior area.
// Unplaced rooms overlap nothing.
func (r *Room) Overlaps(o *Room) bool {
	ra, ok := r.Rect()
	if !ok {
		return false
	}
	rb, ok := o.Rect()
	if !ok {
		return false
	}
	return ra.Overlaps(rb)
}

// AdjacentTo reports whether the two rooms share an edge. Unplaced rooms are
// adjacent to nothing.
func (r *Room) AdjacentTo(o *Room) bool {
	ra, ok := r.Rect()
	if !ok {
		return false
	}
	rb, ok := o.Rect()
	if !ok {
		return false
	}
	return ra.Adjacent(rb)
}

// DistanceTo returns the center-to-center distance between the two rooms,
// or +Inf if either is unplaced.
func (r *Room) DistanceTo(o *Room) float64 {
	ra, ok := r.Rect()
	if !ok {
		return math.Inf(1)
	}
	rb, ok := o.Rect()
	if !ok {
		return math.Inf(1)
	}
	return ra.CenterDistance(rb)
}
