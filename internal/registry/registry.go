// Package registry builds and holds the canonical journal record set.
//
// The registry is a build-then-freeze artifact: the offline build step
// constructs it from the two source tables, it is persisted, and at query
// time it is loaded wholesale and never mutated. Because no query path
// writes to it, a loaded registry is safe to share across any number of
// concurrent resolutions without locking.
package registry

import (
	"fmt"
	"iter"

	"github.com/journalscope/journalscope-server/internal/domain"
)

// Registry is the canonical record set with its identifier index.
//
// Records live once in an arena keyed by synthetic record ID; the
// identifier index maps normalized ISSN/EISSN strings into the arena. A
// journal carrying both identifiers has two index entries pointing at the
// same record, so a metric merged under either identifier is visible
// under both.
type Registry struct {
	journals map[string]*domain.Journal
	idents   map[string]string

	// order holds record IDs in insertion order. First-wins name
	// collisions and first-seen score ties depend on it being stable.
	order []string
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		journals: make(map[string]*domain.Journal),
		idents:   make(map[string]string),
	}
}

// Add places a record in the arena and indexes it under each identifier
// it carries. The record must have an ID.
func (r *Registry) Add(j *domain.Journal) {
	if _, ok := r.journals[j.ID]; !ok {
		r.order = append(r.order, j.ID)
	}
	r.journals[j.ID] = j
	for _, ident := range j.Identifiers() {
		r.idents[ident] = j.ID
	}
}

// ByIdent looks up a record by normalized identifier.
func (r *Registry) ByIdent(ident string) (*domain.Journal, bool) {
	if ident == "" {
		return nil, false
	}
	id, ok := r.idents[ident]
	if !ok {
		return nil, false
	}
	j, ok := r.journals[id]
	return j, ok
}

// Get looks up a record by synthetic ID.
func (r *Registry) Get(id string) (*domain.Journal, bool) {
	j, ok := r.journals[id]
	return j, ok
}

// Len returns the number of distinct records (not index entries).
func (r *Registry) Len() int {
	return len(r.journals)
}

// Journals iterates distinct records in insertion order. A dual-indexed
// record is yielded exactly once.
func (r *Registry) Journals() iter.Seq[*domain.Journal] {
	return func(yield func(*domain.Journal) bool) {
		for _, id := range r.order {
			if !yield(r.journals[id]) {
				return
			}
		}
	}
}

// Order returns the record IDs in insertion order. The returned slice is
// the registry's own; callers must not mutate it.
func (r *Registry) Order() []string {
	return r.order
}

// Load reconstructs a registry from persisted parts: the record arena,
// the identifier index, and the insertion order. It validates that every
// indexed identifier and ordered ID resolves into the arena.
func Load(journals map[string]*domain.Journal, idents map[string]string, order []string) (*Registry, error) {
	if len(order) != len(journals) {
		return nil, fmt.Errorf("registry order lists %d records, arena has %d", len(order), len(journals))
	}
	for _, recID := range order {
		if _, ok := journals[recID]; !ok {
			return nil, fmt.Errorf("ordered record %s missing from arena", recID)
		}
	}
	for ident, recID := range idents {
		if _, ok := journals[recID]; !ok {
			return nil, fmt.Errorf("identifier %s points at missing record %s", ident, recID)
		}
	}
	return &Registry{journals: journals, idents: idents, order: order}, nil
}
