// Package id generates stable synthetic identifiers for registry records.
package id

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// JournalPrefix is the type prefix for journal record IDs.
const JournalPrefix = "jrn"

// Generate creates a prefixed unique ID using NanoID
// (e.g. "jrn-V1StGXR8_Z5jdHi6B-myT").
//
// The synthetic ID is what makes dual-indexed records safe to serialize:
// two identifier keys point at one record ID, and a record that carries
// only an EISSN keeps the same identity across build and load passes.
func Generate(prefix string) (string, error) {
	id, err := gonanoid.New()
	if err != nil {
		return "", fmt.Errorf("generate nanoid: %w", err)
	}
	return prefix + "-" + id, nil
}

// MustGenerate is like Generate but panics if ID generation fails. Used
// during the offline build, where failure should abort the run.
func MustGenerate(prefix string) string {
	id, err := Generate(prefix)
	if err != nil {
		panic(fmt.Sprintf("failed to generate ID: %v", err))
	}
	return id
}
