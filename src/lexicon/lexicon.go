package lexicon

import "strings"

// Canonical operator tags. Localized operator phrases are normalized to these
// before an expression is tokenized.
const (
	And     = "AND"
	Or      = "OR"
	Implies = "IMPLIES"
	Not     = "NOT"
	Equiv   = "EQUIV"
	Xor     = "XOR"
)

// Entry is one row of the operator table: a localized phrase and the
// canonical tag it maps to.
type Entry struct {
	Phrase string
	Tag    string
}

// entries is ordered longest phrase first so that a replacement can never
// partially match a longer phrase. The table is read-only.
var entries = []Entry{
	{"эквивалентность", Equiv},
	{"исключающее или", Xor},
	{"конъюнкция", And},
	{"дизъюнкция", Or},
	{"импликация", Implies},
	{"отрицание", Not},
}

// localizeOrder lists tags longest first. OR is a substring of XOR, so
// localizing OR before XOR would mangle step text like "(A XOR B)".
var localizeOrder = []string{Implies, Equiv, And, Not, Xor, Or}

var tags = map[string]string{
	Xor:     "исключающее или",
	Equiv:   "эквивалентность",
	And:     "конъюнкция",
	Or:      "дизъюнкция",
	Implies: "импликация",
	Not:     "отрицание",
}

// Canonicalize replaces every localized operator phrase with its
// whitespace-padded canonical tag. The result is safe to split on whitespace
// and parentheses. Text that matches no phrase passes through unchanged.
func Canonicalize(raw string) string {
	out := raw
	for _, e := range entries {
		out = strings.ReplaceAll(out, e.Phrase, " "+e.Tag+" ")
	}
	return out
}

// StripOperators replaces every localized operator phrase with a single
// space, leaving only variables, parentheses and leftover punctuation.
func StripOperators(raw string) string {
	out := raw
	for _, e := range entries {
		out = strings.ReplaceAll(out, e.Phrase, " ")
	}
	return out
}

// Localize maps canonical tags in display text back to their localized
// phrases, e.g. "(A AND B)" becomes "(A конъюнкция B)".
func Localize(s string) string {
	out := s
	for _, tag := range localizeOrder {
		out = strings.ReplaceAll(out, tag, tags[tag])
	}
	return out
}

// IsTag reports whether token is a canonical operator tag.
func IsTag(token string) bool {
	_, ok := tags[token]
	return ok
}

// Entries returns a copy of the operator table, longest phrase first.
func Entries() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}
