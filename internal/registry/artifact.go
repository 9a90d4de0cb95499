package registry

import (
	"time"

	"github.com/journalscope/journalscope-server/internal/domain"
)

// ArtifactVersion identifies the artifact layout. Bump on breaking
// changes to the record shape or the index layout.
const ArtifactVersion = 1

// Artifact is the flat serialized form of a registry.
//
// A flat document cannot express two keys sharing one record instance, so
// the artifact keeps an explicit indirection: Identifiers maps normalized
// identifier strings to record IDs, and Journals is the record arena
// keyed by ID. Both identifier keys of a dual-indexed journal point at
// the same arena entry, and the sharing survives any number of
// serialize/load round trips.
type Artifact struct {
	Version     int                        `json:"version"`
	BuiltAt     time.Time                  `json:"built_at"`
	Order       []string                   `json:"order"`
	Identifiers map[string]string          `json:"identifiers"`
	Journals    map[string]*domain.Journal `json:"journals"`
}

// Artifact snapshots the registry into its serializable form.
func (r *Registry) Artifact() *Artifact {
	return &Artifact{
		Version:     ArtifactVersion,
		BuiltAt:     time.Now().UTC(),
		Order:       r.order,
		Identifiers: r.idents,
		Journals:    r.journals,
	}
}

// Restore rebuilds a registry from a decoded artifact.
func Restore(a *Artifact) (*Registry, error) {
	return Load(a.Journals, a.Identifiers, a.Order)
}
