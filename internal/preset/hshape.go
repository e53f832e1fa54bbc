// Package preset provides ready-made region layouts for common floor plan
// shapes.
package preset

import (
	"fmt"

	"github.com/planwright/floorplan/internal/model"
)

// HShape builds the seven regions of an H-shaped floor plan: two full-height
// wings each a third of the total width, a horizontal corridor centered
// vertically between them, and four overlapping corner regions straddling
// the wing edges above and below the corridor. The corners give the solver
// room to bridge placements across the wing boundary.
//
// The corridor must be strictly narrower than the total height, and all
// three dimensions must be positive; otherwise one of the region
// constructors fails and the error is returned.
func HShape(width, height, corridorWidth float64) ([]model.Region, error) {
	wingWidth := width / 3
	corridorY := (height - corridorWidth) / 2

	specs := []struct {
		x1, y1, x2, y2 float64
		name           string
	}{
		{0, 0, wingWidth, height, "Left Wing"},
		{wingWidth, corridorY, width - wingWidth, corridorY + corridorWidth, "Corridor"},
		{width - wingWidth, 0, width, height, "Right Wing"},
		{wingWidth * 0.7, corridorY + corridorWidth, wingWidth * 1.3, height, "Upper Left Corner"},
		{wingWidth * 0.7, 0, wingWidth * 1.3, corridorY, "Lower Left Corner"},
		{width - wingWidth*1.3, corridorY + corridorWidth, width - wingWidth*0.7, height, "Upper Right Corner"},
		{width - wingWidth*1.3, 0, width - wingWidth*0.7, corridorY, "Lower Right Corner"},
	}

	regions := make([]model.Region, 0, len(specs))
	for _, sp := range specs {
		region, err := model.NewRegion(sp.x1, sp.y1, sp.x2, sp.y2, sp.name)
		if err != nil {
			return nil, fmt.Errorf("h-shape %s: %w", sp.name, err)
		}
		regions = append(regions, region)
	}
	return regions, nil
}
