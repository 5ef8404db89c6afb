package platesort

import (
	"github.com/platekit/platesort/pkg/platesort/layout"
	"github.com/platekit/platesort/pkg/platesort/models"
	"github.com/platekit/platesort/pkg/platesort/output"
	"github.com/platekit/platesort/pkg/platesort/parser"
	"github.com/platekit/platesort/pkg/platesort/reconcile"
)

// Result is the outcome of one processing run.
type Result struct {
	// Table is the reordered table, canonical columns renamed and the
	// derived global 384-position appended.
	Table models.Table
	// HeaderRow is the 0-based row that was used as the header.
	HeaderRow int
	// Mapping records which sheet columns won the three canonical fields.
	Mapping *reconcile.Mapping
	// Warnings are informational ambiguity notes from column matching.
	// They never block the pipeline.
	Warnings []string
	// Path is the input the table came from, for error reporting.
	Path string
}

// Process runs the full pipeline on one input file: read, locate the header,
// reconcile columns, derive the global 384-position, and reorder for the
// selected mode.
func Process(path string, opts Options) (*Result, error) {
	raw, err := parser.ReadFile(path)
	if err != nil {
		return nil, newProcessError(path, "read", err)
	}
	return ProcessRaw(raw, opts, path)
}

// ProcessRaw is Process over an already-materialized raw grid. The path is
// used only for error reporting.
func ProcessRaw(raw [][]models.Cell, opts Options, path string) (*Result, error) {
	headerRow, mapping, warnings, err := locateHeader(raw, opts)
	if err != nil {
		return nil, newProcessError(path, "header", err)
	}

	table, err := parser.WithHeader(raw, headerRow)
	if err != nil {
		return nil, newProcessError(path, "header", err)
	}

	table = mapping.Apply(table)
	table = layout.ComputeGlobalIndex(table)
	table = layout.SortByMode(table, opts.Mode)

	return &Result{
		Table:     table,
		HeaderRow: headerRow,
		Mapping:   mapping,
		Warnings:  warnings,
		Path:      path,
	}, nil
}

// Export serializes a result table into downloadable xlsx bytes.
func Export(r *Result) ([]byte, error) {
	data, err := output.ToXLSX(r.Table)
	if err != nil {
		return nil, newProcessError(r.Path, "export", err)
	}
	return data, nil
}

func locateHeader(raw [][]models.Cell, opts Options) (int, *reconcile.Mapping, []string, error) {
	preview := parser.Preview(raw)

	if opts.HeaderRow != nil {
		row := *opts.HeaderRow
		if row < 0 || row >= len(raw) {
			return 0, nil, nil, ErrHeaderNotFound
		}
		mapping, warnings, ok := reconcile.MatchColumns(raw[row])
		if !ok {
			return 0, nil, nil, ErrColumnsNotFound
		}
		return row, mapping, warnings, nil
	}

	row, mapping, warnings := reconcile.FindHeaderRow(preview)
	if row == reconcile.NoHeader {
		return 0, nil, nil, ErrHeaderNotFound
	}
	return row, mapping, warnings, nil
}
