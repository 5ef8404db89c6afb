// Package models defines the table data structures shared by the
// reconciliation and sorting stages.
package models

import "strconv"

// CellKind discriminates the three states a raw spreadsheet cell can be in.
type CellKind int

const (
	// Missing is a blank cell. It projects to the empty string and is
	// excluded from column-name candidacy and field presence checks.
	Missing CellKind = iota
	// Number is a numeric cell (integers and decimals share float64).
	Number
	// Text is any other non-empty cell.
	Text
)

// Cell is a tagged value: exactly one of the payload fields is meaningful,
// selected by Kind.
type Cell struct {
	Kind CellKind
	Num  float64
	Str  string
}

// MissingCell returns the blank cell.
func MissingCell() Cell { return Cell{Kind: Missing} }

// NumberCell returns a numeric cell.
func NumberCell(v float64) Cell { return Cell{Kind: Number, Num: v} }

// TextCell returns a text cell.
func TextCell(s string) Cell { return Cell{Kind: Text, Str: s} }

// Coerce converts a raw string cell into a Cell.
// Empty string becomes Missing; otherwise an integer parse is tried first,
// then a float parse, then the value is kept as text.
func Coerce(s string) Cell {
	if s == "" {
		return MissingCell()
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return NumberCell(float64(i))
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return NumberCell(f)
	}
	return TextCell(s)
}

// IsMissing reports whether the cell is blank.
func (c Cell) IsMissing() bool { return c.Kind == Missing }

// Text is the stringified projection used for matching and display.
// Missing projects to "", Number to its shortest decimal form.
func (c Cell) Text() string {
	switch c.Kind {
	case Number:
		return strconv.FormatFloat(c.Num, 'f', -1, 64)
	case Text:
		return c.Str
	default:
		return ""
	}
}

// Number returns the numeric value of the cell. Text cells that parse as a
// number count as numeric; everything else reports ok=false.
func (c Cell) Number() (float64, bool) {
	switch c.Kind {
	case Number:
		return c.Num, true
	case Text:
		if f, err := strconv.ParseFloat(c.Str, 64); err == nil {
			return f, true
		}
	}
	return 0, false
}
