package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planwright/floorplan/internal/model"
)

func sampleResult(t *testing.T) (model.Drawing, model.SolveResult) {
	t.Helper()

	region, err := model.NewRegion(0, 0, 10, 10, "Main")
	require.NoError(t, err)

	result := model.SolveResult{
		Placements: []model.RoomPlacement{
			{RoomID: 1, Name: "Kitchen", X: 0, Y: 0, Width: 3, Height: 4, Region: "Main"},
			{RoomID: 2, Name: "Living Room", X: 3, Y: 0, Width: 4, Height: 5, Rotated: true, Region: "Main"},
		},
		Unplaced: []model.UnplacedRoom{
			{RoomID: 3, Name: "Garage", Width: 9, Height: 9},
		},
		PlacedCount: 2,
		TotalCount:  3,
		Score:       model.AdjacencyScore{Satisfied: 1, Total: 2, Ratio: 0.5},
	}
	adjacency := model.AdjacencyMap{1: {2}, 2: {3}}
	drawing := model.BuildDrawing([]model.Region{region}, result.Placements, adjacency)
	return drawing, result
}

func requireNonEmptyFile(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestExportPDF(t *testing.T) {
	drawing, result := sampleResult(t)
	path := filepath.Join(t.TempDir(), "plan.pdf")

	require.NoError(t, ExportPDF(path, "Test Plan", drawing, result))
	requireNonEmptyFile(t, path)
}

func TestExportPDF_EmptyDrawing(t *testing.T) {
	err := ExportPDF(filepath.Join(t.TempDir(), "plan.pdf"), "Empty", model.Drawing{}, model.SolveResult{})
	assert.Error(t, err)
}

func TestExportDXF(t *testing.T) {
	drawing, _ := sampleResult(t)
	path := filepath.Join(t.TempDir(), "plan.dxf")

	require.NoError(t, ExportDXF(path, drawing))
	requireNonEmptyFile(t, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), layerRooms)
	assert.Contains(t, string(data), layerRegions)
}

func TestExportSchedule(t *testing.T) {
	_, result := sampleResult(t)
	path := filepath.Join(t.TempDir(), "schedule.xlsx")

	require.NoError(t, ExportSchedule(path, result))
	requireNonEmptyFile(t, path)
}

func TestExportSchedule_NoRooms(t *testing.T) {
	err := ExportSchedule(filepath.Join(t.TempDir(), "schedule.xlsx"), model.SolveResult{})
	assert.Error(t, err)
}

func TestExportLabels(t *testing.T) {
	_, result := sampleResult(t)
	path := filepath.Join(t.TempDir(), "labels.pdf")

	require.NoError(t, ExportLabels(path, result))
	requireNonEmptyFile(t, path)
}

func TestExportLabels_NothingPlaced(t *testing.T) {
	err := ExportLabels(filepath.Join(t.TempDir(), "labels.pdf"), model.SolveResult{})
	assert.Error(t, err)
}

func TestCollectLabelInfos(t *testing.T) {
	_, result := sampleResult(t)
	labels := CollectLabelInfos(result)
	require.Len(t, labels, 2)
	assert.Equal(t, "Kitchen", labels[0].Name)
	assert.Equal(t, "Main", labels[0].Region)
	assert.True(t, labels[1].Rotated)
}
