// Package layout derives the global 384-position and reorders tables under
// the selected plate layout mode.
package layout

import (
	"math"

	"github.com/platekit/platesort/pkg/platesort/models"
	"github.com/platekit/platesort/pkg/platesort/wellorder"
)

// GlobalIndexColumn is the derived column added by ComputeGlobalIndex.
const GlobalIndexColumn = "Global_384_Position"

// plateGroupSize is the number of 96-well plates mapped onto one 384-well
// plate.
const plateGroupSize = 4

// ComputeGlobalIndex returns a copy of the table with the derived
// Global_384_Position column. For each row the plate id is coerced to a
// number and the 384-well label ranked in the 16x24 grid; when both resolve
// the position is plateGroup*384 + localRank, otherwise the derived cell is
// Missing. Recomputing overwrites a previously derived column in place.
func ComputeGlobalIndex(t models.Table) models.Table {
	out := t.Clone()

	col, exists := out.ColumnIndex(GlobalIndexColumn)
	if !exists {
		out.Columns = append(out.Columns, GlobalIndexColumn)
		col = len(out.Columns) - 1
	}

	plateCol, hasPlate := out.ColumnIndex(models.FieldPlate)
	wellCol, hasWell := out.ColumnIndex(models.FieldWell384)

	for i, row := range out.Rows {
		derived := models.MissingCell()
		if hasPlate && hasWell {
			if g, ok := globalPosition(row[plateCol], row[wellCol]); ok {
				derived = models.NumberCell(float64(g))
			}
		}
		if exists {
			out.Rows[i][col] = derived
		} else {
			out.Rows[i] = append(row, derived)
		}
	}
	return out
}

func globalPosition(plateCell, wellCell models.Cell) (int, bool) {
	plate, ok := plateCell.Number()
	if !ok {
		return 0, false
	}
	local, ok := wellorder.Rank384(wellCell.Text())
	if !ok {
		return 0, false
	}
	group := int(math.Floor((plate - 1) / plateGroupSize))
	return group*384 + local, true
}
