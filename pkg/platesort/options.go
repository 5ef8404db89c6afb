// Package platesort reorders laboratory plate records between the 96-well
// and 384-well layouts.
package platesort

import "github.com/platekit/platesort/pkg/platesort/layout"

// Options configures one processing run.
type Options struct {
	// Mode selects the target layout ordering. Unrecognized values leave
	// the row order untouched.
	Mode layout.Mode
	// HeaderRow forces a 0-based header row instead of auto-detection.
	// Nil means detect.
	HeaderRow *int
}

// DefaultOptions returns the default run configuration: 96-well layout with
// header auto-detection.
func DefaultOptions() Options {
	return Options{Mode: layout.Mode96}
}

// WithHeaderRow returns a copy of the options with a forced header row.
func (o Options) WithHeaderRow(row int) Options {
	o.HeaderRow = &row
	return o
}
