package lexicon_test

import (
	"testing"

	"github.com/dmsolve/truthtable/src/lexicon"
	"github.com/stretchr/testify/assert"
)

func TestCanonicalize(t *testing.T) {
	testCases := map[string]string{
		"A конъюнкция B":      "A  AND  B",
		"A дизъюнкция B":      "A  OR  B",
		"A импликация B":      "A  IMPLIES  B",
		"A эквивалентность B": "A  EQUIV  B",
		"A исключающее или B": "A  XOR  B",
		"отрицание(A)":        " NOT (A)",
		"(A конъюнкция B)":    "(A  AND  B)",

		// unmatched text passes through unchanged
		"A что-то B": "A что-то B",
		"A":          "A",
	}

	for raw, expected := range testCases {
		t.Run(raw, func(t *testing.T) {
			assert.Equal(t, expected, lexicon.Canonicalize(raw))
		})
	}
}

func TestLocalize(t *testing.T) {
	testCases := map[string]string{
		"(A AND B)":     "(A конъюнкция B)",
		"(A OR B)":      "(A дизъюнкция B)",
		"(A IMPLIES B)": "(A импликация B)",
		"(A EQUIV B)":   "(A эквивалентность B)",
		"NOT(A)":        "отрицание(A)",

		// XOR must be replaced before OR
		"(A XOR B)": "(A исключающее или B)",

		"((A AND B) OR NOT(C))": "((A конъюнкция B) дизъюнкция отрицание(C))",
	}

	for canonical, expected := range testCases {
		t.Run(canonical, func(t *testing.T) {
			assert.Equal(t, expected, lexicon.Localize(canonical))
		})
	}
}

func TestStripOperators(t *testing.T) {
	testCases := map[string]string{
		"A конъюнкция B":      "A   B",
		"A исключающее или B": "A   B",
		"отрицание(A)":        " (A)",
		"A":                   "A",
	}

	for raw, expected := range testCases {
		t.Run(raw, func(t *testing.T) {
			assert.Equal(t, expected, lexicon.StripOperators(raw))
		})
	}
}

func TestIsTag(t *testing.T) {
	for _, tag := range []string{"AND", "OR", "IMPLIES", "NOT", "EQUIV", "XOR"} {
		assert.True(t, lexicon.IsTag(tag), tag)
	}

	assert.False(t, lexicon.IsTag("A"))
	assert.False(t, lexicon.IsTag("конъюнкция"))
	assert.False(t, lexicon.IsTag(""))
}

func TestEntriesAreOrderedLongestFirst(t *testing.T) {
	entries := lexicon.Entries()
	assert.Len(t, entries, 6)

	for i := 1; i < len(entries); i++ {
		assert.GreaterOrEqual(t,
			len(entries[i-1].Phrase), len(entries[i].Phrase),
			"entry %d is longer than entry %d", i, i-1,
		)
	}
}
