package models

// Canonical field names. These are the column names the sorting stages
// operate on after reconciliation renames whatever the sheet actually used.
const (
	FieldPlate   = "Plate"
	FieldWell96  = "96 Well"
	FieldWell384 = "384 Well"
)

// CanonicalFields returns the three required field names in their fixed
// reconciliation order.
func CanonicalFields() []string {
	return []string{FieldPlate, FieldWell96, FieldWell384}
}

// Table is an ordered sequence of rows sharing one column schema.
// Column names are not guaranteed unique before reconciliation.
// Every row has exactly len(Columns) cells.
type Table struct {
	Columns []string
	Rows    [][]Cell
}

// ColumnIndex returns the index of the first column with the given name.
func (t Table) ColumnIndex(name string) (int, bool) {
	for i, c := range t.Columns {
		if c == name {
			return i, true
		}
	}
	return 0, false
}

// Cell returns the cell at the given row under the first column with the
// given name, or a Missing cell when the column does not exist.
func (t Table) Cell(row int, column string) Cell {
	i, ok := t.ColumnIndex(column)
	if !ok || row < 0 || row >= len(t.Rows) {
		return MissingCell()
	}
	return t.Rows[row][i]
}

// Clone returns a deep copy. Transform stages return fresh tables so that
// concurrent invocations never share row storage.
func (t Table) Clone() Table {
	out := Table{
		Columns: append([]string(nil), t.Columns...),
		Rows:    make([][]Cell, len(t.Rows)),
	}
	for i, row := range t.Rows {
		out.Rows[i] = append([]Cell(nil), row...)
	}
	return out
}
