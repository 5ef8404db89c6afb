// Package wellorder holds the static well-label orderings for the 96-well
// interleave and the 384-well grid. Both tables are built once at package
// init, never mutated afterwards, and safe for unsynchronized reads.
package wellorder

import (
	"fmt"
	"strings"
)

// UnknownRank is the sentinel rank for labels outside the 96-well order.
// It is larger than any valid rank so unknown wells sort after the known
// ones within their plate.
const UnknownRank = 10000

// rowPairs96 lists the interleaved row-letter pairs of the custom 96-well
// order: each pair is traversed column 1..12, alternating the two letters
// (A1,B1,A2,B2,...,A12,B12, then C1,D1,...).
var rowPairs96 = [4][2]string{{"A", "B"}, {"C", "D"}, {"E", "F"}, {"G", "H"}}

var (
	sequence96 []string
	rank96     map[string]int
	rank384    map[string]int
)

func init() {
	sequence96 = make([]string, 0, 96)
	for _, pair := range rowPairs96 {
		for col := 1; col <= 12; col++ {
			sequence96 = append(sequence96, fmt.Sprintf("%s%d", pair[0], col))
			sequence96 = append(sequence96, fmt.Sprintf("%s%d", pair[1], col))
		}
	}
	rank96 = make(map[string]int, 96)
	for i, w := range sequence96 {
		rank96[w] = i
	}

	// 384-well grid, row-major, rank 1..384.
	rank384 = make(map[string]int, 384)
	for r, letter := range strings.Split("ABCDEFGHIJKLMNOP", "") {
		for col := 1; col <= 24; col++ {
			rank384[fmt.Sprintf("%s%d", letter, col)] = r*24 + col
		}
	}
}

func normalize(label string) string {
	return strings.ToUpper(strings.TrimSpace(label))
}

// Rank96 returns the 0-based position of a 96-well label in the interleaved
// order, or UnknownRank when the label is not one of the 96 valid wells.
func Rank96(label string) int {
	if r, ok := rank96[normalize(label)]; ok {
		return r
	}
	return UnknownRank
}

// Rank384 returns the 1-based row-major position of a 384-well label in the
// 16x24 grid. ok is false for labels outside the grid.
func Rank384(label string) (int, bool) {
	r, ok := rank384[normalize(label)]
	return r, ok
}

// Sequence96 returns the full interleaved 96-well order.
// The returned slice is a copy.
func Sequence96() []string {
	return append([]string(nil), sequence96...)
}
