package reconcile

import (
	"fmt"
	"sort"
	"strings"

	"github.com/platekit/platesort/pkg/platesort/models"
)

// searchTerms maps each canonical field to the normalized text it is
// matched by.
var searchTerms = map[string]string{
	models.FieldPlate:   "plate",
	models.FieldWell96:  "96 well",
	models.FieldWell384: "384 well",
}

// Mapping assigns each canonical field name the actual column text that won
// its match. The mapping is total: it holds all three fields or it was never
// produced. The same actual column may win two fields; no cross-field
// uniqueness is imposed.
type Mapping struct {
	fields map[string]string
}

// Actual returns the sheet column text matched to a canonical field.
func (m *Mapping) Actual(field string) (string, bool) {
	a, ok := m.fields[field]
	return a, ok
}

// Identity returns the mapping that assigns every canonical field its own
// name, used when the header matched the exact names directly.
func Identity() *Mapping {
	m := &Mapping{fields: make(map[string]string, 3)}
	for _, f := range models.CanonicalFields() {
		m.fields[f] = f
	}
	return m
}

// Apply renames the matched columns to their canonical names and returns a
// new table. All occurrences of a matched column text are renamed; every
// other column, duplicates included, passes through unchanged. Fields are
// applied in the fixed order Plate, 96 Well, 384 Well, so a column that won
// two fields ends up with the later field's name.
func (m *Mapping) Apply(t models.Table) models.Table {
	rename := make(map[string]string, 3)
	for _, field := range models.CanonicalFields() {
		if actual, ok := m.fields[field]; ok {
			rename[actual] = field
		}
	}

	out := t.Clone()
	for i, col := range out.Columns {
		if canonical, ok := rename[col]; ok {
			out.Columns[i] = canonical
		}
	}
	return out
}

type scored struct {
	text  string
	score int
}

// MatchColumns attempts to map all three canonical fields onto the cell
// values of one candidate header row. It returns the mapping and any
// ambiguity warnings, or ok=false when any field has no qualifying column.
// Partial matches are not kept.
func MatchColumns(cells []models.Cell) (*Mapping, []string, bool) {
	candidates := candidateTexts(cells)
	if len(candidates) == 0 {
		return nil, nil, false
	}

	fields := make(map[string]string, 3)
	var warnings []string
	for _, field := range models.CanonicalFields() {
		term := searchTerms[field]

		var qualified []scored
		for _, text := range candidates {
			if s := Score(term, Normalize(text)); s >= matchThreshold {
				qualified = append(qualified, scored{text: text, score: s})
			}
		}
		if len(qualified) == 0 {
			return nil, nil, false
		}

		sort.SliceStable(qualified, func(i, j int) bool {
			if qualified[i].score != qualified[j].score {
				return qualified[i].score > qualified[j].score
			}
			return len(qualified[i].text) < len(qualified[j].text)
		})

		best := qualified[0]
		fields[field] = best.text
		if len(qualified) > 1 && qualified[1].score >= ambiguityThreshold {
			warnings = append(warnings, ambiguityWarning(field, best.text, qualified[1:]))
		}
	}

	return &Mapping{fields: fields}, warnings, true
}

// candidateTexts projects cells to their text form, dropping blanks.
// Duplicate texts stay: two identical column names are a real ambiguity and
// must be able to trigger a warning.
func candidateTexts(cells []models.Cell) []string {
	var out []string
	for _, c := range cells {
		if text := c.Text(); text != "" {
			out = append(out, text)
		}
	}
	return out
}

func ambiguityWarning(field, chosen string, rest []scored) string {
	var runners []string
	for _, s := range rest {
		if s.score < ambiguityThreshold || len(runners) == 2 {
			break
		}
		runners = append(runners, fmt.Sprintf("%q", s.text))
	}
	return fmt.Sprintf("ambiguous %s column: using %q, also matched %s",
		field, chosen, strings.Join(runners, ", "))
}
