// Package parser reads raw spreadsheet input (xlsx or csv) into untyped cell
// grids and materializes tables against a chosen header row.
package parser

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"

	"github.com/platekit/platesort/pkg/platesort/models"
)

// PreviewRows is the number of leading raw rows exposed for header detection.
const PreviewRows = 20

// ReadFile reads an .xlsx or .csv file into a raw cell grid.
func ReadFile(path string) ([][]models.Cell, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return ReadCSV(f)
	case ".xlsx", ".xlsm":
		return ReadXLSX(f)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// ReadXLSX reads the first sheet of a workbook into a raw cell grid.
func ReadXLSX(r io.Reader) ([][]models.Cell, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", ErrMalformedInput)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	return coerceGrid(rows), nil
}

// ReadCSV reads comma-separated input into a raw cell grid. Bytes that are
// not valid UTF-8 get exactly one fallback decode as windows-1252; input
// that still fails to parse is a hard error.
func ReadCSV(r io.Reader) ([][]models.Cell, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	if !utf8.Valid(data) {
		decoded, err := charmap.Windows1252.NewDecoder().Bytes(data)
		if err != nil {
			return nil, fmt.Errorf("%w: undecodable byte stream", ErrMalformedInput)
		}
		data = decoded
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	return coerceGrid(records), nil
}

// Preview returns the first PreviewRows rows of a raw grid.
func Preview(raw [][]models.Cell) [][]models.Cell {
	if len(raw) <= PreviewRows {
		return raw
	}
	return raw[:PreviewRows]
}

// WithHeader builds a table from a raw grid using the row at headerRow as
// the column schema. Rows above the header are dropped, rows below become
// data. Each row is padded or truncated to the schema width, which is the
// widest row from the header down (trailing blank cells are not preserved
// by xlsx readers, so the header alone cannot define the width).
func WithHeader(raw [][]models.Cell, headerRow int) (models.Table, error) {
	if headerRow < 0 || headerRow >= len(raw) {
		return models.Table{}, fmt.Errorf("header row %d out of range (0..%d)", headerRow, len(raw)-1)
	}

	width := 0
	for _, row := range raw[headerRow:] {
		if len(row) > width {
			width = len(row)
		}
	}

	columns := make([]string, width)
	for i, c := range raw[headerRow] {
		columns[i] = c.Text()
	}

	table := models.Table{
		Columns: columns,
		Rows:    make([][]models.Cell, 0, len(raw)-headerRow-1),
	}
	for _, row := range raw[headerRow+1:] {
		cells := make([]models.Cell, width)
		for i := range cells {
			if i < len(row) {
				cells[i] = row[i]
			} else {
				cells[i] = models.MissingCell()
			}
		}
		table.Rows = append(table.Rows, cells)
	}
	return table, nil
}

func coerceGrid(rows [][]string) [][]models.Cell {
	out := make([][]models.Cell, len(rows))
	for i, row := range rows {
		cells := make([]models.Cell, len(row))
		for j, v := range row {
			cells[j] = models.Coerce(v)
		}
		out[i] = cells
	}
	return out
}
