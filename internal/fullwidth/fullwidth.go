// Package fullwidth maps printable ASCII to its fullwidth Unicode forms
// (ｌｉｋｅ　ｔｈｉｓ).
package fullwidth

import "strings"

// WideSpace is the ideographic space (U+3000), the fullwidth counterpart of
// the ASCII space.
const WideSpace = '　'

// offset between a printable ASCII codepoint and its fullwidth form,
// e.g. 'A' (U+0041) → 'Ａ' (U+FF21).
const offset = 0xFEE0

// Rune returns the fullwidth form of r. Printable ASCII ('!'..'~') shifts
// into the fullwidth block, space becomes WideSpace, and everything else
// (controls, newlines, non-ASCII) passes through unchanged. Fullwidth glyphs
// are outside the input range, so applying Rune twice equals applying it once.
func Rune(r rune) rune {
	switch {
	case r == ' ':
		return WideSpace
	case r >= '!' && r <= '~':
		return r + offset
	default:
		return r
	}
}

// String converts every rune of s with Rune.
func String(s string) string {
	return strings.Map(Rune, s)
}

// Join converts each word and joins them with a single WideSpace, none at
// the ends.
func Join(words []string) string {
	conv := make([]string, len(words))
	for i, w := range words {
		conv[i] = String(w)
	}
	return strings.Join(conv, string(WideSpace))
}
