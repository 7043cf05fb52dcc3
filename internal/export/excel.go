package export

import (
	"fmt"

	"github.com/piwi3910/SquarePack/internal/model"
	"github.com/xuri/excelize/v2"
)

// Sheet names written by ExportExcel.
const (
	SheetPlacements = "Placements"
	SheetSummary    = "Summary"
)

var placementHeaders = []string{"ID", "Label", "Width", "Height", "Rotated", "X", "Y"}

// ExportExcel writes a workbook with one row per placed rectangle and a
// summary sheet. The placement sheet's columns are readable by the importer.
func ExportExcel(path string, result model.Result, settings model.Settings) error {
	if err := checkResult(result); err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetPlacements); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(SheetSummary); err != nil {
		return fmt.Errorf("create summary sheet: %w", err)
	}

	rows := make([][]interface{}, 0, len(result.Rectangles)+1)
	rows = append(rows, toRow(placementHeaders))
	for _, r := range result.Rectangles {
		rows = append(rows, []interface{}{r.ID, r.Label, r.Width, r.Height, r.Rotated, r.X(), r.Y()})
	}
	if err := writeRows(f, SheetPlacements, rows); err != nil {
		return err
	}

	bound := model.CalculateLowerBound(result.Rectangles, settings.Margin)
	summary := [][]interface{}{
		{"Metric", "Value"},
		{"Width", result.Width},
		{"Height", result.Height},
		{"Area", result.Area()},
		{"Used Area", result.UsedArea()},
		{"Efficiency %", result.Efficiency()},
		{"Lower Bound Side", bound.MinSide},
		{"Space Size", settings.SpaceSize},
		{"Margin", settings.Margin},
		{"Trials", result.Trials},
		{"Successful Trials", result.SuccessfulTrials},
		{"Best Trial", result.BestTrial},
		{"Policy", string(result.Policy)},
		{"Algorithm", string(result.Algorithm)},
		{"Seed", settings.Seed},
	}
	if err := writeRows(f, SheetSummary, summary); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("write workbook %s: %w", path, err)
	}
	return nil
}

func toRow(cells []string) []interface{} {
	row := make([]interface{}, len(cells))
	for i, c := range cells {
		row[i] = c
	}
	return row
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		for j, cell := range row {
			ref, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return fmt.Errorf("cell reference: %w", err)
			}
			if err := f.SetCellValue(sheet, ref, cell); err != nil {
				return fmt.Errorf("set %s!%s: %w", sheet, ref, err)
			}
		}
	}
	return nil
}
