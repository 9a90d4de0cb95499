// Package match scores how plausibly a short or abbreviated journal name
// denotes the same journal as a canonical full name, without an external
// abbreviation dictionary. It is the final stage of the resolution
// cascade: cheap token alignment with explicit guards against the false
// positives that citation metadata is full of.
package match

import (
	"strings"
	"unicode"
)

// MatchThreshold is the minimum score at which an approximate candidate
// is accepted by the resolver.
const MatchThreshold = 80.0

// stopwords are dropped from both sides before alignment.
//
//nolint:gochecknoglobals // Static vocabulary
var stopwords = map[string]bool{
	"THE": true,
	"A":   true,
	"AN":  true,
}

// danglingConnectors are words a query must not end on. A query truncated
// mid-phrase ("Journal of") is inherently ambiguous and never scores.
//
//nolint:gochecknoglobals // Static vocabulary
var danglingConnectors = map[string]bool{
	"OF":  true,
	"AND": true,
	"THE": true,
	"A":   true,
	"AN":  true,
	"IN":  true,
	"ON":  true,
	"FOR": true,
}

// Tokenize uppercases, maps "&" to the word AND, replaces every remaining
// non-alphanumeric rune with a space, splits, and drops stopwords.
func Tokenize(s string) []string {
	s = strings.ToUpper(s)
	s = strings.ReplaceAll(s, "&", " AND ")
	s = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return ' '
	}, s)

	fields := strings.Fields(s)
	tokens := fields[:0]
	for _, f := range fields {
		if !stopwords[f] {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// Score rates query against target on a 0..100 scale.
//
// The score is the fraction of query tokens that align against target
// tokens in order, where a query token matches a target token if it is a
// literal prefix of it, or an abbreviation of it (character subsequence
// sharing the first character, licensing NATL→NATIONAL, UNIV→UNIVERSITY).
// Unmatched target words are skipped; unmatched query words are not.
//
// Guards: a query with more tokens than the target scores 0 (an
// abbreviation cannot be longer than what it abbreviates), and a query
// ending on a dangling connector scores 0. Near-perfect scores (>= 90)
// pay a capped penalty of 2 points per surplus target word, so a tight
// match outranks one buried in a longer qualifier chain.
func Score(query, target string) float64 {
	qt := Tokenize(query)
	tt := Tokenize(target)

	if len(qt) == 0 || len(qt) > len(tt) {
		return 0
	}
	if danglingConnectors[qt[len(qt)-1]] {
		return 0
	}

	matched := 0
	ti := 0
	for qi := 0; qi < len(qt) && ti < len(tt); ti++ {
		if tokenMatches(qt[qi], tt[ti]) {
			matched++
			qi++
		}
	}

	score := float64(matched) / float64(len(qt)) * 100

	if score >= 90 {
		extra := len(tt) - matched
		if extra > 0 {
			penalty := float64(extra) * 2
			if penalty > 20 {
				penalty = 20
			}
			score -= penalty
		}
	}

	if score < 0 {
		return 0
	}
	return score
}

// tokenMatches reports whether query token q plausibly abbreviates target
// token t. Comparison is rune-wise; the sources carry CJK and full-width
// text, so byte indexing would compare mid-rune.
func tokenMatches(q, t string) bool {
	if strings.HasPrefix(t, q) {
		return true
	}
	qr := []rune(q)
	tr := []rune(t)
	if qr[0] != tr[0] {
		return false
	}
	return isSubsequence(qr, tr)
}

// isSubsequence reports whether the runes of q appear in t in order.
func isSubsequence(q, t []rune) bool {
	ti := 0
	for qi := 0; qi < len(q); qi++ {
		for ti < len(t) && t[ti] != q[qi] {
			ti++
		}
		if ti == len(t) {
			return false
		}
		ti++
	}
	return true
}
