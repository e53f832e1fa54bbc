package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planwright/floorplan/internal/model"
)

// placeForTest marks a room as placed without going through the search.
func placeForTest(s *Solver, room *model.Room, x, y float64, region *model.Region) {
	room.PlaceAt(x, y, region)
	s.placed = append(s.placed, room)
}

func TestFitScore(t *testing.T) {
	region := testRegion(t, 0, 0, 10, 10, "Main")

	snug := fitScore(model.Rect{X: 0, Y: 0, W: 10, H: 10}, region)
	assert.Equal(t, 1.0, snug, "a room filling the region has no clearance")

	loose := fitScore(model.Rect{X: 0, Y: 0, W: 5, H: 5}, region)
	assert.InDelta(t, 25.0/35.0, loose, 1e-9, "clearance is 5 on each far side")

	offset := fitScore(model.Rect{X: 3, Y: 2, W: 5, H: 5}, region)
	assert.InDelta(t, loose, offset, 1e-9, "total clearance is position independent")
}

func TestGenerateCandidates_GridWhenNothingPlaced(t *testing.T) {
	rooms := []*model.Room{model.NewRoom(1, "A", 3, 3)}
	regions := []model.Region{testRegion(t, 0, 0, 5, 5, "Main")}

	solver, err := New(defaultTestSettings(), rooms, regions, nil)
	require.NoError(t, err)

	cands := solver.generateCandidates(rooms[0])
	// 3x3 origins on a unit grid in a 5x5 region: x,y in {0,1,2}.
	assert.Len(t, cands, 9)
	for _, c := range cands {
		assert.NotNil(t, c.region)
		assert.True(t, c.region.Contains(c.w, c.h, c.x, c.y))
	}
}

func TestGenerateCandidates_AnchoredAgainstRequiredNeighbor(t *testing.T) {
	anchor := model.NewRoom(1, "A", 3, 4)
	mover := model.NewRoom(2, "B", 2, 3)
	regions := []model.Region{testRegion(t, 0, 0, 10, 10, "Main")}
	adjacency := model.AdjacencyMap{2: {1}, 1: {2}}

	solver, err := New(defaultTestSettings(), []*model.Room{anchor, mover}, regions, adjacency)
	require.NoError(t, err)
	placeForTest(solver, anchor, 0, 0, &solver.regions[0])

	cands := solver.generateCandidates(mover)
	require.NotEmpty(t, cands)

	// Every anchored candidate touches the anchor, so the best-scored one
	// must realize the mutual requirement.
	anchorRect, ok := anchor.Rect()
	require.True(t, ok)
	best := cands[0]
	assert.True(t, best.rect().Adjacent(anchorRect))

	expected := adjacencyScoreWeight*1.5 + fitScoreWeight*fitScore(best.rect(), solver.regions[0])
	assert.InDelta(t, expected, best.score, 1e-9, "forward and reverse requirements both count")

	// Scores are sorted descending.
	for i := 1; i < len(cands); i++ {
		assert.GreaterOrEqual(t, cands[i-1].score, cands[i].score)
	}
}

func TestGenerateCandidates_EmitsEveryContainingRegion(t *testing.T) {
	// The snug region overlaps the big one. A position inside both must
	// yield one candidate per region, and the snug assignment wins on fit.
	anchor := model.NewRoom(1, "A", 5, 5)
	mover := model.NewRoom(2, "B", 5, 5)
	regions := []model.Region{
		testRegion(t, 0, 0, 20, 20, "Big"),
		testRegion(t, 5, 0, 10, 5, "Snug"),
	}
	adjacency := model.AdjacencyMap{2: {1}}

	solver, err := New(defaultTestSettings(), []*model.Room{anchor, mover}, regions, adjacency)
	require.NoError(t, err)
	placeForTest(solver, anchor, 0, 0, &solver.regions[0])

	cands := solver.generateCandidates(mover)
	require.NotEmpty(t, cands)

	var names []string
	for _, c := range cands {
		if c.x == 5 && c.y == 0 {
			names = append(names, c.region.Name)
		}
	}
	assert.ElementsMatch(t, []string{"Big", "Snug"}, names)

	// Flush in Snug and adjacent to the anchor: a perfect score, so the
	// snug assignment must rank first overall.
	best := cands[0]
	assert.Equal(t, "Snug", best.region.Name)
	assert.Equal(t, 5.0, best.x)
	assert.Equal(t, 0.0, best.y)
	assert.InDelta(t, adjacencyScoreWeight*1.0+fitScoreWeight*1.0, best.score, 1e-9)
}

func TestGenerateCandidates_RotationGate(t *testing.T) {
	anchor := model.NewRoom(1, "A", 4, 4)
	mover := model.NewRoom(2, "B", 3, 2)
	regions := []model.Region{testRegion(t, 0, 0, 20, 20, "Main")}

	settings := defaultTestSettings()
	settings.AllowRotation = false
	solver, err := New(settings, []*model.Room{anchor, mover}, regions, nil)
	require.NoError(t, err)
	placeForTest(solver, anchor, 5, 5, &solver.regions[0])

	for _, c := range solver.generateCandidates(mover) {
		assert.False(t, c.rotated, "rotation disabled must not emit rotated candidates")
	}

	settings.AllowRotation = true
	solver2, err := New(settings, []*model.Room{anchor, mover}, regions, nil)
	require.NoError(t, err)
	placeForTest(solver2, anchor, 5, 5, &solver2.regions[0])

	sawRotated := false
	for _, c := range solver2.generateCandidates(mover) {
		if c.rotated {
			sawRotated = true
			break
		}
	}
	assert.True(t, sawRotated)
}

func TestGenerateCandidates_FallsBackToGridWhenAnchorsUnusable(t *testing.T) {
	// The anchor sits flush in a tiny region; no position alongside it fits
	// inside any region, so the generator must fall back to grid sampling
	// in the second region.
	anchor := model.NewRoom(1, "A", 2, 2)
	mover := model.NewRoom(2, "B", 2, 2)
	regions := []model.Region{
		testRegion(t, 0, 0, 2, 2, "Tiny"),
		testRegion(t, 50, 50, 60, 60, "Far"),
	}
	adjacency := model.AdjacencyMap{2: {1}}

	solver, err := New(defaultTestSettings(), []*model.Room{anchor, mover}, regions, adjacency)
	require.NoError(t, err)
	placeForTest(solver, anchor, 0, 0, &solver.regions[0])

	cands := solver.generateCandidates(mover)
	require.NotEmpty(t, cands)

	viable := 0
	for _, c := range cands {
		if !solver.overlapsPlaced(c.rect()) {
			assert.Equal(t, "Far", c.region.Name, "only the far region has free space")
			viable++
		}
	}
	assert.Greater(t, viable, 0)
}

func TestAdjacencyGainDirectionality(t *testing.T) {
	a := model.NewRoom(1, "A", 2, 2)
	b := model.NewRoom(2, "B", 2, 2)
	regions := []model.Region{testRegion(t, 0, 0, 10, 10, "Main")}

	touching := model.Rect{X: 2, Y: 0, W: 2, H: 2}

	// Forward requirement only.
	solver, err := New(defaultTestSettings(), []*model.Room{a, b}, regions, model.AdjacencyMap{2: {1}})
	require.NoError(t, err)
	placeForTest(solver, a, 0, 0, &solver.regions[0])
	assert.Equal(t, 1.0, solver.adjacencyGain(b, touching))

	// Reverse requirement only.
	a.ClearPlacement()
	solver2, err := New(defaultTestSettings(), []*model.Room{a, b}, regions, model.AdjacencyMap{1: {2}})
	require.NoError(t, err)
	placeForTest(solver2, a, 0, 0, &solver2.regions[0])
	assert.Equal(t, 0.5, solver2.adjacencyGain(b, touching))

	// No touch, no gain.
	assert.Equal(t, 0.0, solver2.adjacencyGain(b, model.Rect{X: 5, Y: 5, W: 2, H: 2}))
}
