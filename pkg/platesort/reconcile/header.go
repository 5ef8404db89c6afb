package reconcile

import "github.com/platekit/platesort/pkg/platesort/models"

// ScanWindow is the maximum number of preview rows inspected for a header.
const ScanWindow = 20

// NoHeader is the row index returned when no header row was found.
const NoHeader = -1

// FindHeaderRow scans the preview window for the row to treat as the header.
// The fuzzy strategy is tried first: the first row whose cells map onto all
// three canonical fields wins, and its mapping and ambiguity warnings are
// returned. When no row fuzzy-matches, the exact strategy is tried as a
// fallback and a successful row gets the identity mapping.
//
// Failure is soft: (NoHeader, nil, nil) and the caller decides the fallback.
func FindHeaderRow(preview [][]models.Cell) (int, *Mapping, []string) {
	n := len(preview)
	if n > ScanWindow {
		n = ScanWindow
	}

	for i := 0; i < n; i++ {
		if m, warnings, ok := MatchColumns(preview[i]); ok {
			return i, m, warnings
		}
	}

	if i := FindHeaderRowExact(preview, models.CanonicalFields()); i != NoHeader {
		return i, Identity(), nil
	}

	return NoHeader, nil, nil
}

// FindHeaderRowExact returns the first row within the scan window whose cell
// values, taken as a set, contain every required name verbatim
// (case-sensitive). NoHeader when no row qualifies.
func FindHeaderRowExact(preview [][]models.Cell, required []string) int {
	n := len(preview)
	if n > ScanWindow {
		n = ScanWindow
	}

	for i := 0; i < n; i++ {
		values := make(map[string]bool, len(preview[i]))
		for _, c := range preview[i] {
			values[c.Text()] = true
		}
		found := true
		for _, name := range required {
			if !values[name] {
				found = false
				break
			}
		}
		if found {
			return i
		}
	}
	return NoHeader
}
