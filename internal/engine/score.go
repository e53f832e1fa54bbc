package engine

import "github.com/planwright/floorplan/internal/model"

// AdjacencyScore evaluates the current placement against the declared
// adjacency requirements of the placed rooms. Each directed entry of a placed
// room counts once; an entry is satisfied when the neighbor is also placed and
// the two share an edge. Requirements belonging to rooms left unplaced do not
// count toward the total. With no countable requirements the ratio is a
// vacuous 1.
func (s *Solver) AdjacencyScore() model.AdjacencyScore {
	byID := make(map[int]*model.Room, len(s.placed))
	for _, r := range s.placed {
		byID[r.ID] = r
	}

	var score model.AdjacencyScore
	for _, from := range s.placed {
		for _, nid := range s.adjacency[from.ID] {
			score.Total++
			to := byID[nid]
			if to != nil && from.AdjacentTo(to) {
				score.Satisfied++
			}
		}
	}
	if score.Total == 0 {
		score.Ratio = 1.0
	} else {
		score.Ratio = float64(score.Satisfied) / float64(score.Total)
	}
	return score
}
