// Package reconcile locates the header row of a raw sheet and maps its
// column names onto the three canonical fields by fuzzy text matching.
package reconcile

import "strings"

// punct is the fixed punctuation set removed during normalization. Each
// occurrence becomes a space so "96-Well#" and "96 Well" normalize alike.
var punct = strings.NewReplacer(
	"#", " ",
	"-", " ",
	"_", " ",
	".", " ",
	"/", " ",
	`\`, " ",
	":", " ",
	";", " ",
	"(", " ",
	")", " ",
	"[", " ",
	"]", " ",
)

// Normalize lowercases, replaces the punctuation set with spaces, collapses
// whitespace runs, and trims.
func Normalize(s string) string {
	s = punct.Replace(strings.ToLower(s))
	return strings.Join(strings.Fields(s), " ")
}
