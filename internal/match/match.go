// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package match compares user keywords against catalog text.
//
// Substring mode suits short catalog names (make, model, part name).
// Token-set mode suits free-text problem descriptions, where a keyword phrase
// and a description rarely share an exact substring but often share a word.
package match

import (
	"strings"
	"unicode"

	"github.com/clipperhouse/uax29/v2/words"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// lower folds s to lower case. A Caser holds state, so each call builds its own.
func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// Substring reports whether keyword occurs in field, ignoring case.
// An empty keyword matches every field.
func Substring(keyword, field string) bool {
	if keyword == "" {
		return true
	}
	return strings.Contains(lower(field), lower(keyword))
}

// Tokens splits phrase on Unicode word boundaries (UAX #29), lower-cases the
// pieces and drops those without a letter or digit (spaces, punctuation).
// Order and duplicates are preserved.
func Tokens(phrase string) []string {
	if phrase == "" {
		return nil
	}
	var out []string
	seg := words.FromString(lower(phrase))
	for seg.Next() {
		tok := seg.Value()
		if isWord(tok) {
			out = append(out, tok)
		}
	}
	return out
}

func isWord(tok string) bool {
	for _, r := range tok {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// TokenSet is a set of lower-cased word tokens.
type TokenSet map[string]struct{}

// NewTokenSet tokenizes phrase into a set.
func NewTokenSet(phrase string) TokenSet {
	toks := Tokens(phrase)
	set := make(TokenSet, len(toks))
	for _, t := range toks {
		set[t] = struct{}{}
	}
	return set
}

// Intersects reports whether s and other share at least one token.
// An empty set intersects nothing.
func (s TokenSet) Intersects(other TokenSet) bool {
	small, large := s, other
	if len(small) > len(large) {
		small, large = large, small
	}
	for t := range small {
		if _, ok := large[t]; ok {
			return true
		}
	}
	return false
}

// Overlaps reports whether keyword and field share a word token.
func Overlaps(keyword, field string) bool {
	return NewTokenSet(keyword).Intersects(NewTokenSet(field))
}
