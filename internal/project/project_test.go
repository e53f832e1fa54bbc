package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planwright/floorplan/internal/model"
)

func sampleProject(t *testing.T) model.Project {
	t.Helper()
	region, err := model.NewRegion(0, 0, 10, 10, "Main")
	require.NoError(t, err)

	proj := model.NewProject("Test Plan")
	proj.Regions = []model.Region{region}
	proj.Rooms = []model.RoomSpec{
		{ID: 1, Name: "Kitchen", Width: 4, Height: 3},
		{ID: 2, Name: "Bath", Width: 2, Height: 2},
	}
	proj.Adjacency = model.AdjacencyMap{1: {2}}
	return proj
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plans", "test.json")
	proj := sampleProject(t)

	require.NoError(t, Save(path, proj))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, proj.ID, loaded.ID)
	assert.Equal(t, proj.Name, loaded.Name)
	assert.Equal(t, proj.Rooms, loaded.Rooms)
	assert.Equal(t, proj.Regions, loaded.Regions)
	assert.Equal(t, proj.Adjacency, loaded.Adjacency)
	assert.Equal(t, proj.Settings, loaded.Settings)
}

func TestSaveRejectsInvalidProject(t *testing.T) {
	proj := sampleProject(t)
	proj.Rooms[1].ID = 1 // duplicate

	err := Save(filepath.Join(t.TempDir(), "bad.json"), proj)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.True(t, os.IsNotExist(err))
}

func TestLoadRejectsMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSaveCreatesBackupOnOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.json")
	proj := sampleProject(t)

	require.NoError(t, Save(path, proj))
	backups, err := Backups(path)
	require.NoError(t, err)
	assert.Empty(t, backups, "first save has nothing to back up")

	proj.Name = "Renamed"
	require.NoError(t, Save(path, proj))
	backups, err = Backups(path)
	require.NoError(t, err)
	require.Len(t, backups, 1)

	// The backup holds the pre-overwrite version.
	require.NoError(t, RestoreBackup(backups[0], path))
	restored, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Test Plan", restored.Name)
}

func TestRestoreBackupRejectsNonBackupFiles(t *testing.T) {
	err := RestoreBackup("project.json", "project.json")
	assert.Error(t, err)
}
