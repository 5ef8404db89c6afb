// Package output serializes a finished table for download.
package output

import (
	"github.com/xuri/excelize/v2"

	"github.com/platekit/platesort/pkg/platesort/models"
)

// SheetName is the single sheet written to the export workbook.
const SheetName = "Sorted"

// ToXLSX serializes a table into xlsx bytes: the column names as the first
// row, every data row below, no index column. Number cells are written as
// numbers so spreadsheet tools keep them sortable.
func ToXLSX(t models.Table) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return nil, err
	}

	for col, name := range t.Columns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(SheetName, cell, name); err != nil {
			return nil, err
		}
	}

	for r, row := range t.Rows {
		for c, cellValue := range row {
			if cellValue.IsMissing() {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return nil, err
			}
			var v interface{}
			if cellValue.Kind == models.Number {
				v = cellValue.Num
			} else {
				v = cellValue.Str
			}
			if err := f.SetCellValue(SheetName, cell, v); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
