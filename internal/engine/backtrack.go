package engine

import (
	"time"

	"github.com/planwright/floorplan/internal/model"
)

// frame is one level of the placement search: the room being placed, its
// candidate list frozen at push time, and a cursor into it.
type frame struct {
	room  *model.Room
	cands []candidate
	next  int
}

// backtrack attempts to place every room using depth-first search over
// candidate positions, managed as an explicit frame stack rather than
// recursion. Returns true only if all rooms end up placed. On deadline
// expiry the search stops wherever it is and reports failure; the caller
// falls back to the greedy pass.
func (s *Solver) backtrack(deadline time.Time) bool {
	if len(s.rooms) == 0 {
		return true
	}

	stack := []frame{{room: s.rooms[0], cands: s.generateCandidates(s.rooms[0])}}
	for len(stack) > 0 {
		if time.Now().After(deadline) {
			return false
		}

		top := &stack[len(stack)-1]
		placed := false
		for top.next < len(top.cands) {
			c := top.cands[top.next]
			top.next++
			if s.overlapsPlaced(c.rect()) {
				continue
			}
			s.commit(top.room, c)
			placed = true
			break
		}

		if placed {
			if len(stack) == len(s.rooms) {
				return true
			}
			next := s.rooms[len(stack)]
			stack = append(stack, frame{room: next, cands: s.generateCandidates(next)})
			continue
		}

		// Candidates exhausted: discard this frame and undo the
		// parent's tentative placement so it advances to its next
		// candidate.
		stack = stack[:len(stack)-1]
		if len(stack) > 0 {
			s.rollback()
		}
	}
	return false
}
