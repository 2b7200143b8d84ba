package boolexpr

import (
	"sort"

	"github.com/dmsolve/truthtable/src/lexicon"
	"github.com/samber/lo"
)

// Variables returns the sorted, duplicate-free single-letter variable names
// referenced by the raw expression. Operator phrases are stripped first, and
// only ASCII letters count as variables, so leftover Cyrillic fragments and
// punctuation are ignored. An expression without variables yields an empty,
// non-nil slice.
func Variables(expression string) []string {
	cleaned := lexicon.StripOperators(expression)

	names := make([]string, 0)
	for _, r := range cleaned {
		if (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') {
			names = append(names, string(r))
		}
	}

	names = lo.Uniq(names)
	sort.Strings(names)
	return names
}
