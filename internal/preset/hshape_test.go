package preset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHShapeLayout(t *testing.T) {
	regions, err := HShape(30, 20, 4)
	require.NoError(t, err)
	require.Len(t, regions, 7)

	byName := map[string]int{}
	for i, r := range regions {
		byName[r.Name] = i
	}

	left := regions[byName["Left Wing"]]
	assert.Equal(t, 0.0, left.X1)
	assert.Equal(t, 10.0, left.X2)
	assert.Equal(t, 20.0, left.Height())

	right := regions[byName["Right Wing"]]
	assert.Equal(t, 20.0, right.X1)
	assert.Equal(t, 30.0, right.X2)

	corridor := regions[byName["Corridor"]]
	assert.Equal(t, 10.0, corridor.X1)
	assert.Equal(t, 20.0, corridor.X2)
	assert.Equal(t, 8.0, corridor.Y1, "corridor is vertically centered")
	assert.Equal(t, 12.0, corridor.Y2)

	// Corner regions straddle the wing boundary and butt against the corridor.
	upperLeft := regions[byName["Upper Left Corner"]]
	assert.Equal(t, 7.0, upperLeft.X1)
	assert.Equal(t, 13.0, upperLeft.X2)
	assert.Equal(t, 12.0, upperLeft.Y1)
	assert.Equal(t, 20.0, upperLeft.Y2)

	lowerRight := regions[byName["Lower Right Corner"]]
	assert.Equal(t, 17.0, lowerRight.X1)
	assert.Equal(t, 23.0, lowerRight.X2)
	assert.Equal(t, 0.0, lowerRight.Y1)
	assert.Equal(t, 8.0, lowerRight.Y2)
}

func TestHShapeRejectsOversizedCorridor(t *testing.T) {
	_, err := HShape(30, 20, 20)
	assert.Error(t, err, "corridor as tall as the plan leaves no corner regions")

	_, err = HShape(0, 20, 4)
	assert.Error(t, err)
}
