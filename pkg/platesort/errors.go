package platesort

import (
	"errors"
	"fmt"
)

// ErrHeaderNotFound indicates no row in the preview window satisfied either
// header matching strategy and no header row was forced.
var ErrHeaderNotFound = errors.New("header row not found")

// ErrColumnsNotFound indicates a forced header row whose cells could not be
// mapped onto the required fields.
var ErrColumnsNotFound = errors.New("required columns not found")

// ProcessError wraps a failure in one stage of the pipeline.
type ProcessError struct {
	Path  string
	Stage string // "read", "header", "export"
	Err   error
}

func (e *ProcessError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("processing (%s): %v", e.Stage, e.Err)
	}
	return fmt.Sprintf("processing %q (%s): %v", e.Path, e.Stage, e.Err)
}

func (e *ProcessError) Unwrap() error {
	return e.Err
}

func newProcessError(path, stage string, err error) *ProcessError {
	return &ProcessError{Path: path, Stage: stage, Err: err}
}
