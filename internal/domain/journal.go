// Package domain contains the core types shared across the JournalScope server.
package domain

// Journal is the canonical registry record for a serial publication.
//
// A journal is uniquely identified by its (ISSN, EISSN) pair; at least one
// of the two is present for any record reachable through the identifier
// index. When a journal carries both identifiers, the registry stores one
// record and points both identifier keys at it, so a metric merged under
// the EISSN is visible under the ISSN and vice versa.
//
// Optional string fields use the empty string for "absent"; optional
// numeric fields use nil so that a genuine zero is distinguishable.
type Journal struct {
	// ID is a stable synthetic identifier (jrn- prefix + NanoID), assigned
	// at build time. It is the dedup key for dual-indexed records and the
	// arena key in the serialized artifact, so records that only carry an
	// EISSN survive repeated serialization passes intact.
	ID string `json:"id"`

	// Name is the canonical display name from the primary source dataset.
	Name string `json:"name"`

	ISSN  string `json:"issn,omitempty"`
	EISSN string `json:"eissn,omitempty"`

	// Category is the subject-area label from the classification source.
	Category string `json:"category,omitempty"`

	// Tier is the ordinal classification division (1 is best); Rank keeps
	// the raw rank expression, e.g. "1 [30/840]".
	Tier *int   `json:"tier,omitempty"`
	Rank string `json:"rank,omitempty"`

	// ImpactFactor and ImpactQuartile come from the secondary metrics
	// source. Quartile is one of "Q1".."Q4".
	ImpactFactor   *float64 `json:"impact_factor,omitempty"`
	ImpactQuartile string   `json:"impact_quartile,omitempty"`

	IsTop              bool `json:"is_top"`
	IsFastTrackSupport bool `json:"is_fast_track_support"`
	IsWarningListed    bool `json:"is_warning_listed"`
	IsMegaJournal      bool `json:"is_mega_journal"`

	// Aliases are alternative names that resolve to this record through
	// the name index. Empty for most journals.
	Aliases []string `json:"aliases,omitempty"`
}

// HasIdentifier reports whether the record carries at least one serial
// identifier.
func (j *Journal) HasIdentifier() bool {
	return j.ISSN != "" || j.EISSN != ""
}

// Identifiers returns the record's normalized identifiers in ISSN, EISSN
// order, skipping absent ones.
func (j *Journal) Identifiers() []string {
	ids := make([]string, 0, 2)
	if j.ISSN != "" {
		ids = append(ids, j.ISSN)
	}
	if j.EISSN != "" {
		ids = append(ids, j.EISSN)
	}
	return ids
}
