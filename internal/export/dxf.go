package export

import (
	"fmt"

	"github.com/planwright/floorplan/internal/model"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/drawing"
	"github.com/yofu/dxf/table"
)

// DXF layer names for the exported plan.
const (
	layerRegions    = "REGIONS"
	layerRooms      = "ROOMS"
	layerLabels     = "LABELS"
	layerAdjOK      = "ADJ_OK"
	layerAdjMissing = "ADJ_MISSING"
)

const (
	dxfTextHeight  = 0.25
	dxfLabelInsetX = 0.1
	dxfLabelInsetY = 0.15
)

// ExportDXF writes the floor plan drawing as a layered DXF file: region
// outlines, room outlines with text labels, and adjacency connectors split
// onto satisfied and missing layers so CAD viewers can toggle them.
func ExportDXF(path string, drawing model.Drawing) error {
	bounds := drawing.Bounds()
	if bounds.W <= 0 || bounds.H <= 0 {
		return fmt.Errorf("nothing to export: drawing is empty")
	}

	d := dxf.NewDrawing()

	layers := []struct {
		name  string
		color color.ColorNumber
		lt    *table.LineType
	}{
		{layerRegions, color.Grey128, table.LT_CONTINUOUS},
		{layerRooms, color.Cyan, table.LT_CONTINUOUS},
		{layerLabels, color.White, table.LT_CONTINUOUS},
		{layerAdjOK, color.Green, table.LT_CONTINUOUS},
		{layerAdjMissing, color.Red, table.LT_HIDDEN},
	}
	for _, l := range layers {
		if _, err := d.AddLayer(l.name, l.color, l.lt, false); err != nil {
			return fmt.Errorf("failed to create layer %s: %w", l.name, err)
		}
	}

	if err := d.ChangeLayer(layerRegions); err != nil {
		return err
	}
	for _, region := range drawing.Regions {
		drawRect(d, region.Rect)
	}

	if err := d.ChangeLayer(layerRooms); err != nil {
		return err
	}
	for _, room := range drawing.Rooms {
		drawRect(d, room.Rect)
	}

	if err := d.ChangeLayer(layerLabels); err != nil {
		return err
	}
	for _, region := range drawing.Regions {
		d.Text(region.Label, region.Rect.X+dxfLabelInsetX, region.Rect.Y+region.Rect.H-dxfTextHeight-dxfLabelInsetY, 0.0, dxfTextHeight)
	}
	for _, room := range drawing.Rooms {
		center := room.Rect.Center()
		d.Text(room.Label, center.X, center.Y, 0.0, dxfTextHeight)
	}

	for _, edge := range drawing.Edges {
		layer := layerAdjOK
		if !edge.Satisfied {
			layer = layerAdjMissing
		}
		if err := d.ChangeLayer(layer); err != nil {
			return err
		}
		d.Line(edge.From.X, edge.From.Y, 0.0, edge.To.X, edge.To.Y, 0.0)
	}

	return d.SaveAs(path)
}

// drawRect adds the four edges of a rectangle as LINE entities on the
// drawing's current layer.
func drawRect(d *drawing.Drawing, r model.Rect) {
	x2 := r.X + r.W
	y2 := r.Y + r.H
	d.Line(r.X, r.Y, 0.0, x2, r.Y, 0.0)
	d.Line(x2, r.Y, 0.0, x2, y2, 0.0)
	d.Line(x2, y2, 0.0, r.X, y2, 0.0)
	d.Line(r.X, y2, 0.0, r.X, r.Y, 0.0)
}
