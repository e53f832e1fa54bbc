package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planwright/floorplan/internal/model"
)

func TestBacktrack_ExpiredDeadlineFailsAndLeavesCleanState(t *testing.T) {
	rooms := []*model.Room{
		model.NewRoom(1, "A", 3, 3),
		model.NewRoom(2, "B", 3, 3),
	}
	regions := []model.Region{testRegion(t, 0, 0, 10, 10, "Main")}

	solver, err := New(defaultTestSettings(), rooms, regions, nil)
	require.NoError(t, err)
	solver.sortRooms()

	assert.False(t, solver.backtrack(time.Now().Add(-time.Second)))

	solver.ClearPlacements()
	solver.greedy()
	assert.Len(t, solver.Placed(), 2, "greedy fallback still succeeds")
}

func TestBacktrack_UndoRestoresRotationState(t *testing.T) {
	room := model.NewRoom(1, "A", 4, 2)
	regions := []model.Region{testRegion(t, 0, 0, 10, 10, "Main")}

	solver, err := New(defaultTestSettings(), []*model.Room{room}, regions, nil)
	require.NoError(t, err)

	solver.commit(room, candidate{x: 1, y: 2, w: 2, h: 4, rotated: true, region: &solver.regions[0]})
	require.True(t, room.Rotated)
	require.True(t, room.Placed())

	solver.rollback()
	assert.False(t, room.Rotated)
	assert.False(t, room.Placed())
	assert.Equal(t, 4.0, room.Width)
	assert.Empty(t, solver.Placed())
}
