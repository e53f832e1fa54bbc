package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegionValidation(t *testing.T) {
	_, err := NewRegion(5, 0, 5, 10, "degenerate width")
	assert.Error(t, err)

	_, err = NewRegion(0, 10, 10, 0, "inverted corners")
	assert.Error(t, err)

	region, err := NewRegion(1, 2, 4, 8, "")
	require.NoError(t, err)
	assert.Equal(t, "Region (1,2)-(4,8)", region.Name)
	assert.Equal(t, 3.0, region.Width())
	assert.Equal(t, 6.0, region.Height())
	assert.Equal(t, 18.0, region.Area())
}

func TestRegionContains(t *testing.T) {
	region, err := NewRegion(0, 0, 10, 8, "")
	require.NoError(t, err)

	assert.True(t, region.Contains(10, 8, 0, 0), "exact fit")
	assert.True(t, region.Contains(3, 3, 7, 5), "flush with far corner")
	assert.False(t, region.Contains(3, 3, 8, 5), "spills over right edge")
	assert.False(t, region.Contains(3, 3, -1, 0), "starts outside")
}

func TestRegionSamplePositions(t *testing.T) {
	region, err := NewRegion(0, 0, 4, 3, "")
	require.NoError(t, err)

	pts := region.SamplePositions(2, 1, 1)
	// x in {0,1,2}, y in {0,1,2}
	assert.Len(t, pts, 9)
	assert.Contains(t, pts, Point2D{X: 2, Y: 2})

	assert.Empty(t, region.SamplePositions(5, 1, 1), "room wider than region")
}

func TestRegionNarrowness(t *testing.T) {
	corridor, err := NewRegion(0, 0, 12, 2, "")
	require.NoError(t, err)
	square, err := NewRegion(0, 0, 5, 5, "")
	require.NoError(t, err)

	assert.True(t, corridor.IsNarrow(3))
	assert.False(t, square.IsNarrow(3))
	assert.InDelta(t, 6.0, corridor.AspectRatio(), 1e-9)
}
