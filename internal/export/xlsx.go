package export

import (
	"bytes"
	"fmt"

	"github.com/diegoclair/cleaning-rotation-bot/internal/domain/entity"
	"github.com/xuri/excelize/v2"
)

const SheetName = "Schedule"

var xlsxHeader = []string{"Week", "From", "To", "Unit", "Name", "Current"}

var xlsxWidths = []struct {
	from, to string
	width    float64
}{
	{"A", "C", 14},
	{"D", "E", 18},
	{"F", "F", 10},
}

// XLSX builds a spreadsheet with one row per duty week
func XLSX(assignments []entity.Assignment) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}

	for _, w := range xlsxWidths {
		if err := f.SetColWidth(SheetName, w.from, w.to, w.width); err != nil {
			return nil, fmt.Errorf("failed to set column width: %w", err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for i, title := range xlsxHeader {
		if err := f.SetCellValue(SheetName, cell(i, 1), title); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}
	if err := f.SetCellStyle(SheetName, cell(0, 1), cell(len(xlsxHeader)-1, 1), headerStyle); err != nil {
		return nil, fmt.Errorf("failed to style header: %w", err)
	}

	for i, a := range assignments {
		row := i + 2
		current := ""
		if a.IsCurrentWeek {
			current = "yes"
		}

		values := []interface{}{
			a.Key(),
			a.StartDate.Format(entity.WeekKeyLayout),
			a.EndDate.Format(entity.WeekKeyLayout),
			a.Unit.Number,
			a.Unit.Name,
			current,
		}
		for col, value := range values {
			if value == "" {
				continue
			}
			if err := f.SetCellValue(SheetName, cell(col, row), value); err != nil {
				return nil, fmt.Errorf("failed to write week %s: %w", a.Key(), err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write spreadsheet: %w", err)
	}

	return buf, nil
}

func cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col+1, row)
	return name
}
