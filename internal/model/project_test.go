package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProjectDefaults(t *testing.T) {
	p := NewProject("")
	assert.Equal(t, "Untitled", p.Name)
	assert.Len(t, p.ID, 8)
	assert.NoError(t, p.Settings.Validate())
}

func TestProjectValidate(t *testing.T) {
	region, err := NewRegion(0, 0, 10, 10, "Main")
	require.NoError(t, err)

	p := NewProject("Test")
	p.Regions = []Region{region}
	p.Rooms = []RoomSpec{
		{ID: 1, Name: "A", Width: 3, Height: 4},
		{ID: 2, Name: "B", Width: 2, Height: 3},
	}
	assert.NoError(t, p.Validate())

	p.Rooms = append(p.Rooms, RoomSpec{ID: 1, Name: "Dup", Width: 1, Height: 1})
	assert.Error(t, p.Validate(), "duplicate room IDs")

	p.Rooms = p.Rooms[:2]
	p.Rooms[0].Width = 0
	assert.Error(t, p.Validate(), "non-positive dimensions")

	p.Rooms[0].Width = 3
	p.Regions[0].X2 = p.Regions[0].X1
	assert.Error(t, p.Validate(), "degenerate region")
}

func TestProjectBuildRooms(t *testing.T) {
	p := NewProject("Test")
	p.Rooms = []RoomSpec{
		{ID: 1, Name: "A", Width: 3, Height: 4},
		{ID: 2, Name: "", Width: 2, Height: 3},
	}

	rooms := p.BuildRooms()
	require.Len(t, rooms, 2)
	assert.Equal(t, "A", rooms[0].Name)
	assert.Equal(t, "Room 2", rooms[1].Name)
	assert.False(t, rooms[0].Placed())
}
