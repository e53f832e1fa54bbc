// Package engine implements the region-based room placement search: room
// ordering heuristics, adjacency-driven candidate generation, a
// deadline-bounded backtracking search, and a greedy fallback pass.
package engine

import (
	"time"

	"github.com/planwright/floorplan/internal/model"
)

// Weights combining adjacency and fit when scoring a candidate position.
// Adjacency dominates: a position that satisfies a requirement beats any
// amount of snug region fit.
const (
	adjacencyScoreWeight = 0.8
	fitScoreWeight       = 0.2
)

// Solver places rooms inside regions so that rooms do not overlap, every
// placed room lies inside its region, and as many adjacency requirements as
// possible are satisfied.
//
// A Solver is single-threaded and owns its rooms exclusively for the
// duration of a PlaceRooms call; it mutates them in place. Rooms are
// reusable across runs: each run starts by clearing all placements.
type Solver struct {
	settings  model.SolveSettings
	rooms     []*model.Room
	regions   []model.Region
	adjacency model.AdjacencyMap

	placed  []*model.Room
	undoLog []roomState
}

// New creates a solver. Settings are validated up front; an unrecognized
// sort method or malformed numeric setting is rejected before any placement
// work.
func New(settings model.SolveSettings, rooms []*model.Room, regions []model.Region, adjacency model.AdjacencyMap) (*Solver, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if adjacency == nil {
		adjacency = model.AdjacencyMap{}
	}
	return &Solver{
		settings:  settings,
		rooms:     rooms,
		regions:   regions,
		adjacency: adjacency,
	}, nil
}

// Settings returns the solver configuration.
func (s *Solver) Settings() model.SolveSettings {
	return s.settings
}

// Rooms returns the working room list in its current order. After
// PlaceRooms the order reflects the configured sort method.
func (s *Solver) Rooms() []*model.Room {
	return s.rooms
}

// Placed returns the rooms placed by the last run, in placement order.
func (s *Solver) Placed() []*model.Room {
	return s.placed
}

// Unplaced returns the rooms the last run could not place.
func (s *Solver) Unplaced() []*model.Room {
	var out []*model.Room
	for _, r := range s.rooms {
		if !r.Placed() {
			out = append(out, r)
		}
	}
	return out
}

// ClearPlacements resets every room to unplaced and empties the placed list,
// making the rooms reusable for another run.
func (s *Solver) ClearPlacements() {
	for _, r := range s.rooms {
		r.ClearPlacement()
	}
	s.placed = s.placed[:0]
	s.undoLog = s.undoLog[:0]
}

// PlaceRooms runs one full placement: clear state, sort rooms, attempt the
// backtracking search under the configured deadline, and on total or partial
// failure clear state again and run the greedy fallback over the same order.
// A timeout of zero skips backtracking entirely. Returns the number of rooms
// placed. The operation always completes; rooms that fit nowhere are simply
// left unplaced.
func (s *Solver) PlaceRooms() int {
	s.ClearPlacements()
	s.sortRooms()

	if s.settings.TimeoutSeconds > 0 {
		deadline := time.Now().Add(time.Duration(s.settings.TimeoutSeconds * float64(time.Second)))
		if s.backtrack(deadline) {
			return len(s.placed)
		}
		s.ClearPlacements()
	}

	s.greedy()
	return len(s.placed)
}

// Result assembles the run outcome for reporting and persistence.
func (s *Solver) Result(elapsed time.Duration) model.SolveResult {
	res := model.SolveResult{
		PlacedCount:    len(s.placed),
		TotalCount:     len(s.rooms),
		Score:          s.AdjacencyScore(),
		ElapsedSeconds: elapsed.Seconds(),
	}
	for _, r := range s.placed {
		res.Placements = append(res.Placements, model.RoomPlacement{
			RoomID:  r.ID,
			Name:    r.Name,
			X:       r.X,
			Y:       r.Y,
			Width:   r.Width,
			Height:  r.Height,
			Rotated: r.Rotated,
			Region:  r.Region.Name,
		})
	}
	for _, r := range s.Unplaced() {
		res.Unplaced = append(res.Unplaced, model.UnplacedRoom{
			RoomID: r.ID,
			Name:   r.Name,
			Width:  r.Width,
			Height: r.Height,
		})
	}
	return res
}

// Drawing builds the visualization-ready export for the current placement.
func (s *Solver) Drawing() model.Drawing {
	return model.BuildDrawing(s.regions, s.Result(0).Placements, s.adjacency)
}

// roomState is an undo-log entry capturing a room's full placement state
// before a tentative commit. Restoring it does not depend on replaying
// mutations in reverse order.
type roomState struct {
	room    *model.Room
	x, y    float64
	w, h    float64
	rotated bool
	region  *model.Region
}

// commit tentatively places a room at the candidate position, pushing an
// undo-log entry first and appending the room to the placed list.
func (s *Solver) commit(room *model.Room, c candidate) {
	s.undoLog = append(s.undoLog, roomState{
		room: room,
		x:    room.X, y: room.Y,
		w: room.Width, h: room.Height,
		rotated: room.Rotated,
		region:  room.Region,
	})
	if c.rotated != room.Rotated {
		room.Rotate()
	}
	room.PlaceAt(c.x, c.y, c.region)
	s.placed = append(s.placed, room)
}

// rollback undoes the most recent commit.
func (s *Solver) rollback() {
	st := s.undoLog[len(s.undoLog)-1]
	s.undoLog = s.undoLog[:len(s.undoLog)-1]
	st.room.X, st.room.Y = st.x, st.y
	st.room.Width, st.room.Height = st.w, st.h
	st.room.Rotated = st.rotated
	st.room.Region = st.region
	s.placed = s.placed[:len(s.placed)-1]
}

// overlapsPlaced reports whether a rectangle collides with any placed room.
func (s *Solver) overlapsPlaced(rect model.Rect) bool {
	for _, p := range s.placed {
		pr, ok := p.Rect()
		if ok && rect.Overlaps(pr) {
			return true
		}
	}
	return false
}
