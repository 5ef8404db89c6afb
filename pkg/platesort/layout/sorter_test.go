package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platekit/platesort/pkg/platesort/models"
)

func sampleTable() models.Table {
	t := models.Table{
		Columns: []string{models.FieldPlate, models.FieldWell96, models.FieldWell384, "Sample"},
		Rows: [][]models.Cell{
			{models.NumberCell(2), models.TextCell("A1"), models.TextCell("B1"), models.TextCell("s1")},
			{models.NumberCell(1), models.TextCell("B1"), models.TextCell("A2"), models.TextCell("s2")},
			{models.MissingCell(), models.TextCell("A1"), models.TextCell("A1"), models.TextCell("s3")},
			{models.NumberCell(1), models.TextCell("A1"), models.TextCell("A1"), models.TextCell("s4")},
			{models.NumberCell(10), models.TextCell("A1"), models.TextCell("C1"), models.TextCell("s5")},
			{models.NumberCell(1), models.TextCell("A2"), models.MissingCell(), models.TextCell("s6")},
		},
	}
	return ComputeGlobalIndex(t)
}

func samples(t models.Table) []string {
	out := make([]string, len(t.Rows))
	for i := range t.Rows {
		out[i] = t.Cell(i, "Sample").Text()
	}
	return out
}

func TestSortByMode96(t *testing.T) {
	out := SortByMode(sampleTable(), Mode96)

	// Reconcilable rows by (plate, interleave rank), then the two rows with
	// a missing field in original order. Plate 10 sorts after plate 2
	// numerically.
	assert.Equal(t, []string{"s4", "s2", "s1", "s5", "s3", "s6"}, samples(out))
}

func TestSortByMode384(t *testing.T) {
	out := SortByMode(sampleTable(), Mode384)

	// Global positions: s4=1, s2=2, s1=25, s5=817 (plate group 2, C1).
	assert.Equal(t, []string{"s4", "s2", "s1", "s5", "s3", "s6"}, samples(out))
}

func TestSortByModePermutation(t *testing.T) {
	in := sampleTable()
	for _, mode := range []Mode{Mode96, Mode384, Mode("unknown")} {
		out := SortByMode(in, mode)
		require.Len(t, out.Rows, len(in.Rows), "mode %q", mode)

		counts := map[string]int{}
		for i := range in.Rows {
			counts[in.Cell(i, "Sample").Text()]++
		}
		for i := range out.Rows {
			counts[out.Cell(i, "Sample").Text()]--
		}
		for s, c := range counts {
			assert.Zero(t, c, "row %q count drift under mode %q", s, mode)
		}
	}
}

func TestSortByModeIdempotent(t *testing.T) {
	for _, mode := range []Mode{Mode96, Mode384} {
		once := SortByMode(sampleTable(), mode)
		twice := SortByMode(once, mode)
		assert.Equal(t, samples(once), samples(twice), "mode %q", mode)
	}
}

func TestSortByModeUnknownIsIdentity(t *testing.T) {
	in := sampleTable()
	out := SortByMode(in, Mode("list view"))
	assert.Equal(t, samples(in), samples(out))
}

func TestSortByModeUnrankedWell96SortsLastInPlate(t *testing.T) {
	table := models.Table{
		Columns: []string{models.FieldPlate, models.FieldWell96, models.FieldWell384, "Sample"},
		Rows: [][]models.Cell{
			{models.NumberCell(1), models.TextCell("Z9"), models.TextCell("A1"), models.TextCell("odd")},
			{models.NumberCell(1), models.TextCell("H12"), models.TextCell("A2"), models.TextCell("last-known")},
			{models.NumberCell(2), models.TextCell("A1"), models.TextCell("A3"), models.TextCell("next-plate")},
		},
	}

	out := SortByMode(table, Mode96)
	// The unranked label stays within plate 1, after every known well.
	assert.Equal(t, []string{"last-known", "odd", "next-plate"}, samples(out))
}

func TestSortByMode384MissingGlobalSortsLast(t *testing.T) {
	table := models.Table{
		Columns: []string{models.FieldPlate, models.FieldWell96, models.FieldWell384, GlobalIndexColumn},
		Rows: [][]models.Cell{
			// Reconcilable but unrankable in the 384 grid: no global index.
			{models.NumberCell(1), models.TextCell("A1"), models.TextCell("Q99"), models.MissingCell()},
			{models.NumberCell(1), models.TextCell("B1"), models.TextCell("B1"), models.NumberCell(25)},
			{models.NumberCell(1), models.TextCell("A2"), models.TextCell("A1"), models.NumberCell(1)},
		},
	}

	out := SortByMode(table, Mode384)
	assert.Equal(t, "A1", out.Cell(0, models.FieldWell384).Text())
	assert.Equal(t, "B1", out.Cell(1, models.FieldWell384).Text())
	assert.Equal(t, "Q99", out.Cell(2, models.FieldWell384).Text())
}

func TestSortByModeRecombine(t *testing.T) {
	// 5 reconcilable + 2 missing a field: sorted rows first, then the others
	// untouched and in original order.
	table := models.Table{
		Columns: []string{models.FieldPlate, models.FieldWell96, models.FieldWell384},
		Rows: [][]models.Cell{
			{models.NumberCell(1), models.TextCell("B1"), models.TextCell("C1")},
			{models.NumberCell(1), models.TextCell("A1"), models.MissingCell()},
			{models.NumberCell(1), models.TextCell("A2"), models.TextCell("A2")},
			{models.NumberCell(1), models.TextCell("A1"), models.TextCell("A1")},
			{models.MissingCell(), models.TextCell("A1"), models.TextCell("A1")},
			{models.NumberCell(1), models.TextCell("B2"), models.TextCell("C2")},
			{models.NumberCell(1), models.TextCell("A3"), models.TextCell("A3")},
		},
	}

	out := SortByMode(table, Mode96)
	require.Len(t, out.Rows, 7)

	wells := make([]string, 7)
	for i := range out.Rows {
		wells[i] = out.Cell(i, models.FieldWell96).Text()
	}
	// Interleave order: A1, B1, A2, B2, A3; then the two non-reconcilable
	// rows (A1-with-missing-384, A1-with-missing-plate) as they appeared.
	assert.Equal(t, []string{"A1", "B1", "A2", "B2", "A3", "A1", "A1"}, wells)
	assert.True(t, out.Cell(5, models.FieldWell384).IsMissing())
	assert.True(t, out.Cell(6, models.FieldPlate).IsMissing())
}

func TestSortByModeMissingCanonicalColumn(t *testing.T) {
	table := models.Table{
		Columns: []string{"Sample"},
		Rows: [][]models.Cell{
			{models.TextCell("a")},
			{models.TextCell("b")},
		},
	}
	out := SortByMode(table, Mode96)
	assert.Equal(t, []string{"a", "b"}, samples(out))
}

func TestSortByMode96NonNumericPlateSortsLast(t *testing.T) {
	table := models.Table{
		Columns: []string{models.FieldPlate, models.FieldWell96, models.FieldWell384},
		Rows: [][]models.Cell{
			{models.TextCell("QC"), models.TextCell("A1"), models.TextCell("A1")},
			{models.NumberCell(7), models.TextCell("A1"), models.TextCell("A1")},
		},
	}

	out := SortByMode(table, Mode96)
	v, ok := out.Cell(0, models.FieldPlate).Number()
	require.True(t, ok)
	assert.Equal(t, float64(7), v)
	assert.Equal(t, "QC", out.Cell(1, models.FieldPlate).Text())
}
