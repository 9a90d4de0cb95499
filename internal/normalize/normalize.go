// Package normalize provides canonical forms for serial identifiers and
// journal names. Every comparison in the registry and resolver goes
// through these functions, so both sides of a lookup always see the same
// shape.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// notApplicable lists sentinel values that sources use for "no identifier".
//
//nolint:gochecknoglobals // Static lookup table for identifier normalization
var notApplicable = map[string]bool{
	"N/A": true,
	"NA":  true,
	"-":   true,
	"—":   true,
	"无":   true,
}

// ISSN canonicalizes a serial identifier to NNNN-NNNC form.
//
// Whitespace is stripped, the check character is uppercased, and an
// 8-character unhyphenated code gains a hyphen after the 4th character.
// Empty input and "not applicable" sentinels normalize to the empty
// string. The function is idempotent: an already-canonical identifier
// passes through unchanged.
func ISSN(raw string) string {
	s := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, raw)

	s = strings.ToUpper(s)
	if s == "" || notApplicable[s] {
		return ""
	}

	if len(s) == 8 && !strings.Contains(s, "-") {
		s = s[:4] + "-" + s[4:]
	}

	return s
}

// NameKey reduces a journal name to its lookup key: NFKC-folded (source
// tables carry full-width CJK punctuation and letters), uppercased, with
// every non-alphanumeric rune removed.
//
// "The Journal of Biological Chemistry" and "JOURNAL  OF BIOLOGICAL
// CHEMISTRY." do not produce the same key (the article survives); the key
// is an exact-name fast path, not a fuzzy form.
func NameKey(raw string) string {
	s := norm.NFKC.String(raw)
	s = strings.ToUpper(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
