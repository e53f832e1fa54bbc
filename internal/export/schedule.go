package export

import (
	"fmt"

	"github.com/planwright/floorplan/internal/model"
	"github.com/xuri/excelize/v2"
)

// scheduleHeaders is the column layout of the room schedule worksheet.
var scheduleHeaders = []string{"ID", "Name", "Width", "Height", "Area", "X", "Y", "Rotated", "Region", "Status"}

// ExportSchedule writes the solve result as an Excel room schedule: one row
// per room with its placement, followed by unplaced rooms and a summary
// block with the adjacency score.
func ExportSchedule(path string, result model.SolveResult) error {
	if result.TotalCount == 0 {
		return fmt.Errorf("no rooms to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Room Schedule"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	for col, header := range scheduleHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return err
		}
	}

	row := 2
	for _, p := range result.Placements {
		values := []interface{}{
			p.RoomID, p.Name, p.Width, p.Height, p.Width * p.Height,
			p.X, p.Y, p.Rotated, p.Region, "placed",
		}
		if err := writeScheduleRow(f, sheet, row, values); err != nil {
			return err
		}
		row++
	}
	for _, u := range result.Unplaced {
		values := []interface{}{
			u.RoomID, u.Name, u.Width, u.Height, u.Width * u.Height,
			nil, nil, nil, nil, "unplaced",
		}
		if err := writeScheduleRow(f, sheet, row, values); err != nil {
			return err
		}
		row++
	}

	// Summary block below the table
	row++
	summary := []struct {
		label string
		value interface{}
	}{
		{"Rooms placed", fmt.Sprintf("%d / %d", result.PlacedCount, result.TotalCount)},
		{"Adjacencies satisfied", fmt.Sprintf("%d / %d", result.Score.Satisfied, result.Score.Total)},
		{"Adjacency score", result.Score.Ratio},
		{"Solve time (s)", result.ElapsedSeconds},
	}
	for _, item := range summary {
		labelCell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		valueCell, err := excelize.CoordinatesToCellName(2, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, labelCell, item.label); err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, valueCell, item.value); err != nil {
			return err
		}
		row++
	}

	if err := f.SetColWidth(sheet, "A", "J", 12); err != nil {
		return err
	}

	return f.SaveAs(path)
}

// writeScheduleRow fills one worksheet row. Nil values leave the cell empty.
func writeScheduleRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	for col, v := range values {
		if v == nil {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}
