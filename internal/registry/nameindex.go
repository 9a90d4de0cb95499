package registry

import (
	"github.com/journalscope/journalscope-server/internal/domain"
	"github.com/journalscope/journalscope-server/internal/normalize"
)

// NameIndex is the O(1) exact-name fast path: one normalized name key
// maps to exactly one record. It owns no records of its own; it holds
// back-references into the registry that built it.
type NameIndex struct {
	reg   *Registry
	byKey map[string]string
}

// BuildNameIndex derives the name index from a finished registry.
//
// Records are visited once each in insertion order; the canonical name
// and then each alias are inserted only if the key is absent. On
// collision the first-inserted record wins and later ones are silently
// dropped — a documented first-wins policy, not a "most complete" pick.
func BuildNameIndex(r *Registry) *NameIndex {
	ix := &NameIndex{
		reg:   r,
		byKey: make(map[string]string, r.Len()),
	}

	for j := range r.Journals() {
		ix.insert(j.Name, j.ID)
		for _, alias := range j.Aliases {
			ix.insert(alias, j.ID)
		}
	}

	return ix
}

func (ix *NameIndex) insert(name, recID string) {
	key := normalize.NameKey(name)
	if key == "" {
		return
	}
	if _, exists := ix.byKey[key]; !exists {
		ix.byKey[key] = recID
	}
}

// Lookup resolves a raw name through the normalized key.
func (ix *NameIndex) Lookup(name string) (*domain.Journal, bool) {
	key := normalize.NameKey(name)
	if key == "" {
		return nil, false
	}
	recID, ok := ix.byKey[key]
	if !ok {
		return nil, false
	}
	return ix.reg.Get(recID)
}

// Len returns the number of indexed name keys.
func (ix *NameIndex) Len() int {
	return len(ix.byKey)
}
