// Package levenshtein provides edit distance for fuzzy slug matching.
package levenshtein

import "github.com/agext/levenshtein"

// Distance returns the Levenshtein distance between a and b with unit
// costs for insertion, deletion and substitution. Runes are compared,
// not bytes.
func Distance(a, b string) int {
	return levenshtein.Distance(a, b, nil)
}
