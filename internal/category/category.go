// Package category decides which subject-area classifications fall outside
// the target domain of the registry. Excluded journals are dropped during
// the primary build pass and their identifiers are suppressed so the
// metrics source cannot reintroduce them.
package category

import "github.com/journalscope/journalscope-server/internal/normalize"

// DefaultExcluded lists the subject-area labels considered out of domain.
// The build step can override this via configuration.
//
//nolint:gochecknoglobals // Static vocabulary, overridable per build
var DefaultExcluded = []string{
	"Literature",
	"History",
	"Philosophy",
	"Art",
	"Law",
	"Education",
	"Economics",
	"Management Science",
	"Sociology",
	"Political Science",
	"Engineering",
	"Mathematics",
}

// Filter matches subject-category labels against an excluded set.
// Labels are compared through the normalized name key, so case,
// punctuation, and full-width variants all match.
type Filter struct {
	excluded map[string]bool
}

// NewFilter builds a filter from the given labels. An empty slice means
// nothing is excluded.
func NewFilter(labels []string) *Filter {
	excluded := make(map[string]bool, len(labels))
	for _, l := range labels {
		if key := normalize.NameKey(l); key != "" {
			excluded[key] = true
		}
	}
	return &Filter{excluded: excluded}
}

// NewDefaultFilter builds a filter over DefaultExcluded.
func NewDefaultFilter() *Filter {
	return NewFilter(DefaultExcluded)
}

// Excluded reports whether the category label is out of domain. An empty
// label is never excluded.
func (f *Filter) Excluded(label string) bool {
	key := normalize.NameKey(label)
	if key == "" {
		return false
	}
	return f.excluded[key]
}
