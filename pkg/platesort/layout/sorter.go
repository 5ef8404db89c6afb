package layout

import (
	"math"
	"sort"

	"github.com/platekit/platesort/pkg/platesort/models"
	"github.com/platekit/platesort/pkg/platesort/wellorder"
)

// Mode selects the target addressing scheme for ordering.
type Mode string

const (
	// Mode96 orders by plate then the interleaved 96-well sequence.
	Mode96 Mode = "96-well layout"
	// Mode384 orders by the precomputed Global_384_Position.
	Mode384 Mode = "384-well layout"
)

// sortKey is precomputed per reconcilable row. Primary/secondary are chosen
// by mode; unrankable values get +Inf or the well-order sentinel so they
// sort after every ranked row while the stable sort keeps their relative
// order.
type sortKey struct {
	primary   float64
	secondary float64
}

// SortByMode returns a new table containing every input row exactly once:
// the reconcilable rows (Plate, 96 Well and 384 Well all present) sorted for
// the given mode, followed by the remaining rows in their original relative
// order. Any unrecognized mode returns the input unchanged.
func SortByMode(t models.Table, mode Mode) models.Table {
	if mode != Mode96 && mode != Mode384 {
		return t
	}

	reconcilable, other := partition(t)

	keys := make(map[int]sortKey, len(reconcilable))
	for _, r := range reconcilable {
		keys[r] = rowKey(t, r, mode)
	}
	sort.SliceStable(reconcilable, func(i, j int) bool {
		a, b := keys[reconcilable[i]], keys[reconcilable[j]]
		if a.primary != b.primary {
			return a.primary < b.primary
		}
		return a.secondary < b.secondary
	})

	out := models.Table{
		Columns: append([]string(nil), t.Columns...),
		Rows:    make([][]models.Cell, 0, len(t.Rows)),
	}
	for _, r := range reconcilable {
		out.Rows = append(out.Rows, append([]models.Cell(nil), t.Rows[r]...))
	}
	for _, r := range other {
		out.Rows = append(out.Rows, append([]models.Cell(nil), t.Rows[r]...))
	}
	return out
}

// partition splits row indices by presence of the three canonical fields.
// Presence only: the values are not validated here.
func partition(t models.Table) (reconcilable, other []int) {
	cols := make([]int, 0, 3)
	for _, f := range models.CanonicalFields() {
		i, ok := t.ColumnIndex(f)
		if !ok {
			// A canonical column missing entirely means no row reconciles.
			return nil, allIndices(len(t.Rows))
		}
		cols = append(cols, i)
	}

	for r, row := range t.Rows {
		present := true
		for _, c := range cols {
			if row[c].IsMissing() {
				present = false
				break
			}
		}
		if present {
			reconcilable = append(reconcilable, r)
		} else {
			other = append(other, r)
		}
	}
	return reconcilable, other
}

func allIndices(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func rowKey(t models.Table, row int, mode Mode) sortKey {
	switch mode {
	case Mode96:
		plate := math.Inf(1)
		if v, ok := t.Cell(row, models.FieldPlate).Number(); ok {
			plate = v
		}
		rank := wellorder.Rank96(t.Cell(row, models.FieldWell96).Text())
		return sortKey{primary: plate, secondary: float64(rank)}
	default: // Mode384
		global := math.Inf(1)
		if v, ok := t.Cell(row, GlobalIndexColumn).Number(); ok {
			global = v
		}
		return sortKey{primary: global}
	}
}
