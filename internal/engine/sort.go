package engine

import (
	"sort"

	"github.com/planwright/floorplan/internal/model"
)

// sortRooms reorders the working room list according to the configured sort
// method. All methods sort descending so that the hardest rooms are placed
// while the floor is still empty. The sort is stable: rooms that compare
// equal keep their input order, which keeps runs reproducible.
func (s *Solver) sortRooms() {
	if s.settings.SortMethod == model.SortDegreeArea {
		// Two explicit keys: adjacency degree first, area breaks ties.
		sort.SliceStable(s.rooms, func(i, j int) bool {
			di := s.adjacency.Degree(s.rooms[i].ID)
			dj := s.adjacency.Degree(s.rooms[j].ID)
			if di != dj {
				return di > dj
			}
			return s.rooms[i].Area() > s.rooms[j].Area()
		})
		return
	}
	key := s.sortKey()
	sort.SliceStable(s.rooms, func(i, j int) bool {
		return key(s.rooms[i]) > key(s.rooms[j])
	})
}

// sortKey returns the scoring function for the single-key methods.
// degree_area sorts on two keys and is handled in sortRooms directly.
// Validate has already rejected unknown methods, so the default arm is
// unreachable in normal operation but keeps the dispatch total.
func (s *Solver) sortKey() func(*model.Room) float64 {
	switch s.settings.SortMethod {
	case model.SortArea:
		return func(r *model.Room) float64 { return r.Area() }
	case model.SortAdjacency:
		return func(r *model.Room) float64 { return float64(s.adjacency.Degree(r.ID)) }
	case model.SortWidth:
		return func(r *model.Room) float64 { return r.Width }
	case model.SortHeight:
		return func(r *model.Room) float64 { return r.Height }
	case model.SortPerimeter:
		return func(r *model.Room) float64 { return r.Perimeter() }
	case model.SortHybrid:
		return s.hybridKey()
	default:
		return func(r *model.Room) float64 { return r.Area() }
	}
}

// hybridKey blends raw adjacency degree and normalized area using the
// configured weights. Degree stays unscaled so each required neighbor
// contributes a full weight step regardless of how connected the rest of the
// plan is.
func (s *Solver) hybridKey() func(*model.Room) float64 {
	maxArea := s.maxRoomArea()
	return func(r *model.Room) float64 {
		return s.settings.AdjacencyWeight*float64(s.adjacency.Degree(r.ID)) +
			s.settings.AreaWeight*r.Area()/maxArea
	}
}

// maxRoomArea returns the largest room area, clamped away from zero so it is
// safe to divide by.
func (s *Solver) maxRoomArea() float64 {
	max := 0.0
	for _, r := range s.rooms {
		if a := r.Area(); a > max {
			max = a
		}
	}
	if max <= 0 {
		return 1
	}
	return max
}
