package engine

// greedy places rooms one pass in sorted order, committing each room to its
// best-scoring candidate that does not collide with anything already placed.
// Rooms with no viable position are skipped rather than failing the run, so
// greedy always terminates with a partial (possibly complete) placement.
func (s *Solver) greedy() {
	for _, room := range s.rooms {
		for _, c := range s.generateCandidates(room) {
			if s.overlapsPlaced(c.rect()) {
				continue
			}
			s.commit(room, c)
			break
		}
	}
}
