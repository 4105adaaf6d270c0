// Package city turns free-form city input into the forms used for lookups
// and for display.
package city

import (
	"strings"
	"unicode"
)

// maxJoins is how many spaces are folded into "+" separators.
const maxJoins = 2

// Query is a normalized city name.
type Query struct {
	Raw     string `json:"raw"`
	Query   string `json:"query"`   // lowercased, first two spaces replaced by "+"
	Display string `json:"display"` // title-cased, "+" back to spaces
}

// Normalize canonicalizes raw input. "new york" becomes
// {Query: "new+york", Display: "New York"}. Only the first two spaces are
// joined; any further spaces are kept as they are.
func Normalize(raw string) Query {
	q := strings.Replace(strings.ToLower(raw), " ", "+", maxJoins)
	return Query{
		Raw:     raw,
		Query:   q,
		Display: strings.Replace(titleCase(q), "+", " ", maxJoins),
	}
}

// Blank reports whether the query has no usable characters.
func (q Query) Blank() bool {
	return strings.TrimSpace(strings.ReplaceAll(q.Query, "+", " ")) == ""
}

// titleCase upper-cases the first cased letter of every word and lowercases
// the rest. Any uncased rune (space, "+", digit, apostrophe) starts a new
// word, so "o'neil" becomes "O'Neil" and "upon" becomes "Upon".
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevCased := false
	for _, r := range s {
		if prevCased {
			r = unicode.ToLower(r)
		} else {
			r = unicode.ToTitle(r)
		}
		prevCased = unicode.IsUpper(r) || unicode.IsLower(r) || unicode.IsTitle(r)
		b.WriteRune(r)
	}
	return b.String()
}
