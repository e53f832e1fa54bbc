package engine

import (
	"fmt"
	"sort"

	"github.com/planwright/floorplan/internal/model"
)

// candidate is one concrete position a room could take: oriented dimensions,
// bottom-left corner, the region that contains it, and its score.
type candidate struct {
	x, y    float64
	w, h    float64
	rotated bool
	region  *model.Region
	score   float64
}

func (c candidate) rect() model.Rect {
	return model.Rect{X: c.x, Y: c.y, W: c.w, H: c.h}
}

// generateCandidates produces the scored, descending-ordered position list
// for a room given the current placed set. Positions come from three tiers:
// alongside placed rooms the room is required to touch; failing that,
// alongside any placed room; failing that, a grid sweep of every region.
// Every candidate returned is fully contained in its region; overlap with
// placed rooms is checked by the caller at try time.
func (s *Solver) generateCandidates(room *model.Room) []candidate {
	var anchors []*model.Room
	for _, id := range s.adjacency.Neighbors(room.ID) {
		for _, p := range s.placed {
			if p.ID == id {
				anchors = append(anchors, p)
			}
		}
	}
	if len(anchors) == 0 {
		anchors = s.placed
	}

	var cands []candidate
	if len(anchors) > 0 {
		cands = s.anchoredCandidates(room, anchors)
	}
	if len(cands) == 0 {
		cands = s.gridCandidates(room)
	}

	sort.SliceStable(cands, func(i, j int) bool {
		return cands[i].score > cands[j].score
	})
	return cands
}

// anchoredCandidates emits positions flush against each anchor's four sides,
// sliding along the shared edge in StepSize increments, in both orientations
// when rotation is allowed. Duplicate positions arising from distinct
// anchors are collapsed.
func (s *Solver) anchoredCandidates(room *model.Room, anchors []*model.Room) []candidate {
	seen := make(map[string]struct{})
	var cands []candidate

	add := func(x, y, w, h float64, rotated bool) {
		key := fmt.Sprintf("%.9f|%.9f|%t", x, y, rotated)
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		rect := model.Rect{X: x, Y: y, W: w, H: h}
		// Overlapping regions each yield their own candidate with their
		// own fit score; a snug region ranks the same position higher.
		for i := range s.regions {
			region := &s.regions[i]
			if !region.Contains(w, h, x, y) {
				continue
			}
			cands = append(cands, candidate{
				x: x, y: y, w: w, h: h,
				rotated: rotated,
				region:  region,
				score:   s.scorePosition(room, rect, *region),
			})
		}
	}

	step := float64(s.settings.StepSize)
	for _, anchor := range anchors {
		ar, ok := anchor.Rect()
		if !ok {
			continue
		}
		s.emitAlongside(add, ar, room.BaseWidth(), room.BaseHeight(), false, step)
		if s.settings.AllowRotation && room.BaseWidth() != room.BaseHeight() {
			s.emitAlongside(add, ar, room.BaseHeight(), room.BaseWidth(), true, step)
		}
	}
	return cands
}

// emitAlongside generates the flush positions for oriented dimensions (w, h)
// against every side of the anchor rectangle, plus slide offsets along the
// shared edge in both directions. Offsets stay below the smaller of the two
// perpendicular extents so the shared edge never degenerates to a corner
// touch.
func (s *Solver) emitAlongside(add func(x, y, w, h float64, rotated bool), ar model.Rect, w, h float64, rotated bool, step float64) {
	// Right and left sides share the vertical edge; slide along y.
	vLimit := min(h, ar.H)
	for off := 0.0; off < vLimit; off += step {
		add(ar.X+ar.W, ar.Y+off, w, h, rotated)
		add(ar.X-w, ar.Y+off, w, h, rotated)
		if off > 0 {
			add(ar.X+ar.W, ar.Y-off, w, h, rotated)
			add(ar.X-w, ar.Y-off, w, h, rotated)
		}
	}
	// Top and bottom sides share the horizontal edge; slide along x.
	hLimit := min(w, ar.W)
	for off := 0.0; off < hLimit; off += step {
		add(ar.X+off, ar.Y+ar.H, w, h, rotated)
		add(ar.X+off, ar.Y-h, w, h, rotated)
		if off > 0 {
			add(ar.X-off, ar.Y+ar.H, w, h, rotated)
			add(ar.X-off, ar.Y-h, w, h, rotated)
		}
	}
}

// gridCandidates sweeps every region in StepSize increments. Used when no
// room is placed yet, or when no anchored position survived containment.
func (s *Solver) gridCandidates(room *model.Room) []candidate {
	var cands []candidate
	step := float64(s.settings.StepSize)

	emit := func(w, h float64, rotated bool) {
		for i := range s.regions {
			region := &s.regions[i]
			for _, pt := range region.SamplePositions(w, h, step) {
				rect := model.Rect{X: pt.X, Y: pt.Y, W: w, H: h}
				cands = append(cands, candidate{
					x: pt.X, y: pt.Y, w: w, h: h,
					rotated: rotated,
					region:  region,
					score:   s.scorePosition(room, rect, *region),
				})
			}
		}
	}

	emit(room.BaseWidth(), room.BaseHeight(), false)
	if s.settings.AllowRotation && room.BaseWidth() != room.BaseHeight() {
		emit(room.BaseHeight(), room.BaseWidth(), true)
	}
	return cands
}

// scorePosition combines the adjacency gain a position would realize against
// the current placed set with how snugly the room fills its region.
func (s *Solver) scorePosition(room *model.Room, rect model.Rect, region model.Region) float64 {
	return adjacencyScoreWeight*s.adjacencyGain(room, rect) + fitScoreWeight*fitScore(rect, region)
}

// adjacencyGain counts the requirements a hypothetical placement would
// satisfy: a full point for each placed room this room requires to be
// adjacent, and a half point for each placed room that requires this one.
// Both directions of a mutual requirement accumulate.
func (s *Solver) adjacencyGain(room *model.Room, rect model.Rect) float64 {
	gain := 0.0
	for _, p := range s.placed {
		pr, ok := p.Rect()
		if !ok || !rect.Adjacent(pr) {
			continue
		}
		if s.adjacency.Requires(room.ID, p.ID) {
			gain += 1.0
		}
		if s.adjacency.Requires(p.ID, room.ID) {
			gain += 0.5
		}
	}
	return gain
}

// fitScore measures how tightly a rectangle fills its region: the room area
// divided by the area plus the total clearance to the four region edges. A
// room flush with all edges scores 1.
func fitScore(rect model.Rect, region model.Region) float64 {
	clearance := (rect.X - region.X1) +
		(region.X2 - (rect.X + rect.W)) +
		(rect.Y - region.Y1) +
		(region.Y2 - (rect.Y + rect.H))
	if clearance < 0 {
		clearance = 0
	}
	return rect.Area() / (rect.Area() + clearance)
}
