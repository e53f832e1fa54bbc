package model

// AdjacencyScore summarizes how many declared adjacency requirements the
// final placement satisfies. Ratio is 1.0 when no requirements exist.
type AdjacencyScore struct {
	Satisfied int     `json:"satisfied"`
	Total     int     `json:"total"`
	Ratio     float64 `json:"ratio"`
}

// RoomPlacement records one placed room's final state. Width and Height are
// the oriented dimensions (already swapped when Rotated is true).
type RoomPlacement struct {
	RoomID  int     `json:"room_id"`
	Name    string  `json:"name"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	Rotated bool    `json:"rotated"`
	Region  string  `json:"region"`
}

// Rect returns the placement's rectangle.
func (p RoomPlacement) Rect() Rect {
	return Rect{X: p.X, Y: p.Y, W: p.Width, H: p.Height}
}

// UnplacedRoom identifies a room the solver could not place.
type UnplacedRoom struct {
	RoomID int     `json:"room_id"`
	Name   string  `json:"name"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// SolveResult is the full outcome of one placement run.
type SolveResult struct {
	Placements     []RoomPlacement `json:"placements"`
	Unplaced       []UnplacedRoom  `json:"unplaced,omitempty"`
	PlacedCount    int             `json:"placed_count"`
	TotalCount     int             `json:"total_count"`
	Score          AdjacencyScore  `json:"score"`
	ElapsedSeconds float64         `json:"elapsed_seconds"`
}

// DrawingRect is a labeled rectangle in a plan drawing.
type DrawingRect struct {
	Rect  Rect   `json:"rect"`
	Label string `json:"label"`
}

// DrawingRoom is a placed room in a plan drawing.
type DrawingRoom struct {
	ID    int    `json:"id"`
	Rect  Rect   `json:"rect"`
	Label string `json:"label"`
}

// DrawingEdge is a declared adjacency requirement between two placed rooms,
// drawn center to center and tagged with whether the rooms actually share an
// edge in the final placement.
type DrawingEdge struct {
	FromID    int     `json:"from_id"`
	ToID      int     `json:"to_id"`
	From      Point2D `json:"from"`
	To        Point2D `json:"to"`
	Satisfied bool    `json:"satisfied"`
}

// Drawing is a visualization-ready export of a finished layout: the allowed
// regions, the placed rooms, and the adjacency edges with both endpoints
// placed. It is a pure read of final state.
type Drawing struct {
	Regions []DrawingRect `json:"regions"`
	Rooms   []DrawingRoom `json:"rooms"`
	Edges   []DrawingEdge `json:"edges"`
}

// Bounds returns the rectangle enclosing all regions and placed rooms.
// Renderers use it to scale the drawing onto a page.
func (d Drawing) Bounds() Rect {
	var rects []Rect
	for _, g := range d.Regions {
		rects = append(rects, g.Rect)
	}
	for _, r := range d.Rooms {
		rects = append(rects, r.Rect)
	}
	if len(rects) == 0 {
		return Rect{}
	}
	minX, minY := rects[0].X, rects[0].Y
	maxX, maxY := rects[0].X+rects[0].W, rects[0].Y+rects[0].H
	for _, r := range rects[1:] {
		if r.X < minX {
			minX = r.X
		}
		if r.Y < minY {
			minY = r.Y
		}
		if r.X+r.W > maxX {
			maxX = r.X + r.W
		}
		if r.Y+r.H > maxY {
			maxY = r.Y + r.H
		}
	}
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// BuildDrawing assembles a Drawing from regions, final placements, and the
// adjacency requirements. An edge is emitted for every declared (room →
// neighbor) entry whose endpoints are both placed.
func BuildDrawing(regions []Region, placements []RoomPlacement, adjacency AdjacencyMap) Drawing {
	d := Drawing{}
	for _, g := range regions {
		d.Regions = append(d.Regions, DrawingRect{Rect: g.Rect(), Label: g.Name})
	}

	byID := make(map[int]RoomPlacement, len(placements))
	for _, p := range placements {
		byID[p.RoomID] = p
		d.Rooms = append(d.Rooms, DrawingRoom{ID: p.RoomID, Rect: p.Rect(), Label: p.Name})
	}

	for _, p := range placements {
		for _, nid := range adjacency.Neighbors(p.RoomID) {
			neighbor, ok := byID[nid]
			if !ok {
				continue
			}
			pr, nr := p.Rect(), neighbor.Rect()
			d.Edges = append(d.Edges, DrawingEdge{
				FromID:    p.RoomID,
				ToID:      nid,
				From:      pr.Center(),
				To:        nr.Center(),
				Satisfied: pr.Adjacent(nr),
			})
		}
	}
	return d
}
