package model

// AdjacencyMap records which rooms should end up sharing an edge: it maps a
// room id to the ids of its required neighbors. The relation is directed for
// scoring purposes (a reverse-direction match counts at half weight during
// the search), though callers conventionally supply it symmetrically. Ids
// that name no known room are tolerated; they simply never count as
// satisfied.
type AdjacencyMap map[int][]int

// Neighbors returns the required neighbor ids for a room, or nil.
func (m AdjacencyMap) Neighbors(id int) []int {
	return m[id]
}

// Degree returns the number of required neighbors declared for a room.
func (m AdjacencyMap) Degree(id int) int {
	return len(m[id])
}

// Requires reports whether room `from` declares `to` as a required neighbor.
func (m AdjacencyMap) Requires(from, to int) bool {
	for _, id := range m[from] {
		if id == to {
			return true
		}
	}
	return false
}
