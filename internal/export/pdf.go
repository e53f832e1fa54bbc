// Package export provides functionality for exporting room placement results
// to various file formats.
package export

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"
	"github.com/planwright/floorplan/internal/model"
)

// roomColor represents an RGB fill color for a placed room.
type roomColor struct {
	R, G, B int
}

// roomColors is the palette cycled through for room fills.
var roomColors = []roomColor{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 244, G: 67, B: 54},  // red
	{R: 255, G: 235, B: 59}, // yellow
	{R: 121, G: 85, B: 72},  // brown
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	legendHeight = 14.0
	drawAreaTop  = marginTop + headerHeight + 8.0
)

// ExportPDF renders the floor plan drawing and solve statistics to a
// single-page PDF. Regions are drawn as labeled outlines, rooms as filled
// rectangles, and adjacency requirements as center-to-center connectors:
// solid green when satisfied, dashed red when not.
func ExportPDF(path string, title string, drawing model.Drawing, result model.SolveResult) error {
	bounds := drawing.Bounds()
	if bounds.W <= 0 || bounds.H <= 0 {
		return fmt.Errorf("nothing to export: drawing is empty")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)
	pdf.AddPage()

	// Title
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	// Stats line
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Rooms placed: %d / %d | Adjacencies satisfied: %d / %d (%.0f%%) | Solve time: %.2fs",
		result.PlacedCount, result.TotalCount,
		result.Score.Satisfied, result.Score.Total, result.Score.Ratio*100,
		result.ElapsedSeconds)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	// Scale the drawing to fit the page, centered horizontally.
	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom - legendHeight
	scale := math.Min(drawWidth/bounds.W, drawHeight/bounds.H)
	offsetX := marginLeft + (drawWidth-bounds.W*scale)/2
	offsetY := drawAreaTop

	// Plan coordinates are y-up, page coordinates y-down; tx/ty map a plan
	// rectangle's bottom-left corner to its page top-left corner.
	tx := func(x float64) float64 { return offsetX + (x-bounds.X)*scale }
	ty := func(y, h float64) float64 { return offsetY + (bounds.Y+bounds.H-y-h)*scale }

	// Region outlines
	pdf.SetFillColor(235, 242, 250)
	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.4)
	for _, region := range drawing.Regions {
		pdf.Rect(tx(region.Rect.X), ty(region.Rect.Y, region.Rect.H), region.Rect.W*scale, region.Rect.H*scale, "FD")
	}
	pdf.SetFont("Helvetica", "I", 7)
	pdf.SetTextColor(90, 90, 90)
	for _, region := range drawing.Regions {
		labelW := pdf.GetStringWidth(region.Label)
		if labelW < region.Rect.W*scale-2 {
			pdf.SetXY(tx(region.Rect.X)+1, ty(region.Rect.Y, region.Rect.H)+1)
			pdf.CellFormat(labelW, 3, region.Label, "", 0, "L", false, 0, "")
		}
	}

	// Placed rooms
	for i, room := range drawing.Rooms {
		col := roomColors[i%len(roomColors)]
		rw := room.Rect.W * scale
		rh := room.Rect.H * scale
		rx := tx(room.Rect.X)
		ry := ty(room.Rect.Y, room.Rect.H)

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.3)
		pdf.Rect(rx, ry, rw, rh, "FD")

		if rw > 12 && rh > 6 {
			pdf.SetFont("Helvetica", "", labelFontSize(rw, rh))
			pdf.SetTextColor(0, 0, 0)

			label := room.Label
			dims := fmt.Sprintf("%.0fx%.0f", room.Rect.W, room.Rect.H)
			labelW := pdf.GetStringWidth(label)
			dimsW := pdf.GetStringWidth(dims)

			if labelW < rw-2 {
				pdf.SetXY(rx+(rw-labelW)/2, ry+rh/2-4)
				pdf.CellFormat(labelW, 4, label, "", 0, "C", false, 0, "")
			}
			if rh > 12 && dimsW < rw-2 {
				pdf.SetXY(rx+(rw-dimsW)/2, ry+rh/2)
				pdf.CellFormat(dimsW, 4, dims, "", 0, "C", false, 0, "")
			}
		}
	}

	// Adjacency connectors between room centers
	for _, edge := range drawing.Edges {
		x1 := tx(edge.From.X)
		y1 := ty(edge.From.Y, 0)
		x2 := tx(edge.To.X)
		y2 := ty(edge.To.Y, 0)
		if edge.Satisfied {
			pdf.SetDrawColor(0, 140, 0)
			pdf.SetLineWidth(0.5)
		} else {
			pdf.SetDrawColor(200, 0, 0)
			pdf.SetLineWidth(0.4)
			pdf.SetDashPattern([]float64{1.5, 1.5}, 0)
		}
		pdf.Line(x1, y1, x2, y2)
		pdf.SetDashPattern([]float64{}, 0)
	}

	drawUnplacedLegend(pdf, result.Unplaced, offsetY+bounds.H*scale+5)

	// Footer
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, "Generated by floorplan - Room Placement Solver", "", 0, "C", false, 0, "")

	return pdf.OutputFileAndClose(path)
}

// drawUnplacedLegend lists rooms the solver could not place, if any.
func drawUnplacedLegend(pdf *fpdf.Fpdf, unplaced []model.UnplacedRoom, startY float64) {
	if len(unplaced) == 0 {
		return
	}

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetTextColor(200, 0, 0)
	pdf.SetXY(marginLeft, startY)
	pdf.CellFormat(30, 4, "Not placed:", "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	pdf.SetTextColor(0, 0, 0)
	xPos := marginLeft + 32
	maxX := pageWidth - marginRight

	for _, room := range unplaced {
		label := fmt.Sprintf("%s (%.0fx%.0f)", room.Name, room.Width, room.Height)
		labelW := pdf.GetStringWidth(label) + 6

		if xPos+labelW > maxX {
			startY += 5
			xPos = marginLeft
		}

		pdf.SetXY(xPos, startY)
		pdf.CellFormat(labelW, 4, label, "", 0, "L", false, 0, "")
		xPos += labelW + 2
	}
}

// labelFontSize returns an appropriate font size based on the rectangle dimensions.
func labelFontSize(w, h float64) float64 {
	minDim := math.Min(w, h)
	switch {
	case minDim > 40:
		return 8
	case minDim > 20:
		return 7
	default:
		return 6
	}
}
