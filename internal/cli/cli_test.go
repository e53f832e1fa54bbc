package cli

import (
	"context"
	"os"
	"testing"

	charmlog "github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planwright/floorplan/internal/model"
)

func TestLoggerContextRoundTrip(t *testing.T) {
	logger := newLogger(os.Stderr, charmlog.DebugLevel)
	ctx := withLogger(context.Background(), logger)
	assert.Same(t, logger, loggerFromContext(ctx))

	assert.NotNil(t, loggerFromContext(context.Background()), "missing logger falls back to default")
}

func TestMergeRoomsRenumbersCollisions(t *testing.T) {
	existing := []model.RoomSpec{
		{ID: 1, Name: "A", Width: 2, Height: 2},
		{ID: 3, Name: "B", Width: 2, Height: 2},
	}
	imported := []model.RoomSpec{
		{ID: 1, Name: "C", Width: 2, Height: 2},
		{ID: 2, Name: "D", Width: 2, Height: 2},
	}

	merged := mergeRooms(existing, imported)
	require.Len(t, merged, 4)

	seen := map[int]bool{}
	for _, r := range merged {
		assert.False(t, seen[r.ID], "duplicate ID %d after merge", r.ID)
		seen[r.ID] = true
	}
	assert.Equal(t, "C", merged[2].Name)
	assert.Equal(t, 2, merged[2].ID, "collision moves to the first free ID")
	assert.Equal(t, "D", merged[3].Name)
	assert.Equal(t, 4, merged[3].ID, "ID 2 was taken by the renumbered room")
}

func TestSortMethodNamesMatchModel(t *testing.T) {
	names := sortMethodNames()
	require.Len(t, names, len(model.SortMethods))
	assert.Contains(t, names, "hybrid")
	assert.Contains(t, names, "degree_area")
}

func TestSolveProjectStoresResult(t *testing.T) {
	region, err := model.NewRegion(0, 0, 10, 10, "Main")
	require.NoError(t, err)

	proj := model.NewProject("Test")
	proj.Regions = []model.Region{region}
	proj.Rooms = []model.RoomSpec{
		{ID: 1, Name: "A", Width: 3, Height: 4},
		{ID: 2, Name: "B", Width: 2, Height: 3},
	}
	proj.Adjacency = model.AdjacencyMap{1: {2}}
	proj.Settings.TimeoutSeconds = 5

	result, err := solveProject(&proj, newLogger(os.Stderr, charmlog.ErrorLevel))
	require.NoError(t, err)
	assert.Equal(t, 2, result.PlacedCount)
	require.NotNil(t, proj.Result)
	assert.Equal(t, result, *proj.Result)
}
