// Package resolver answers journal queries against a frozen registry.
//
// A Resolver is constructed once from a loaded registry and never mutated
// afterwards, so it is safe to share across concurrent requests without
// locking. When the registry artifact cannot be loaded the resolver runs
// in a "not loaded" state where every query is a no-match: a missing
// artifact degrades the consuming surface, it must not crash it.
package resolver

import (
	"context"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/journalscope/journalscope-server/internal/domain"
	"github.com/journalscope/journalscope-server/internal/match"
	"github.com/journalscope/journalscope-server/internal/normalize"
	"github.com/journalscope/journalscope-server/internal/registry"
)

// Status reports whether the registry is resident and how big it is.
type Status struct {
	Loaded  bool      `json:"loaded"`
	Entries int       `json:"entries"`
	BuiltAt time.Time `json:"built_at,omitzero"`
}

// candidate pairs a record with the first rune of its normalized name,
// precomputed so the approximate stage can prune cheaply.
type candidate struct {
	journal *domain.Journal
	first   rune
}

// Resolver resolves queries through an ordered cascade: identifier
// lookups, exact normalized name, parenthetical-stripped name, then
// approximate abbreviation scoring.
type Resolver struct {
	reg        *registry.Registry
	names      *registry.NameIndex
	candidates []candidate
	builtAt    time.Time
	logger     *slog.Logger
}

// Loader is the slice of the store the resolver needs at startup.
type Loader interface {
	LoadRegistry(ctx context.Context) (*registry.Registry, error)
}

// New freezes a loaded registry into a resolver, deriving the name index
// and the pruned candidate list.
func New(reg *registry.Registry, builtAt time.Time, logger *slog.Logger) *Resolver {
	r := &Resolver{
		reg:     reg,
		names:   registry.BuildNameIndex(reg),
		builtAt: builtAt,
		logger:  logger,
	}

	for j := range reg.Journals() {
		key := normalize.NameKey(j.Name)
		if key == "" {
			continue
		}
		first, _ := utf8.DecodeRuneInString(key)
		r.candidates = append(r.candidates, candidate{journal: j, first: first})
	}

	return r
}

// NewUnloaded creates a resolver with no registry. Every query resolves
// to no-match.
func NewUnloaded(logger *slog.Logger) *Resolver {
	return &Resolver{logger: logger}
}

// Load makes the single startup load attempt against the store. On
// failure it logs and returns an unloaded resolver; it never errors.
func Load(ctx context.Context, loader Loader, builtAt time.Time, logger *slog.Logger) *Resolver {
	reg, err := loader.LoadRegistry(ctx)
	if err != nil {
		if logger != nil {
			logger.Warn("Registry load failed; resolver will answer no-match", "error", err)
		}
		return NewUnloaded(logger)
	}
	return New(reg, builtAt, logger)
}

// Resolve runs the cascade and returns the matched record, or nil for
// no-match. Each stage operates on its own normalized form of the query
// and short-circuits on the first hit.
func (r *Resolver) Resolve(q domain.Query) *domain.Journal {
	if r.reg == nil {
		return nil
	}

	// 1-2. Exact identifier lookups win over anything name-based.
	if j, ok := r.reg.ByIdent(normalize.ISSN(q.ISSN)); ok {
		return j
	}
	if j, ok := r.reg.ByIdent(normalize.ISSN(q.EISSN)); ok {
		return j
	}

	if q.Name == "" {
		return nil
	}

	// 3. Exact normalized name.
	if j, ok := r.names.Lookup(q.Name); ok {
		return j
	}

	// 4. Parenthetical qualifier strip: "Science (New York)" retries as
	// "Science". A leading parenthesis is not a qualifier.
	name := q.Name
	if idx := strings.Index(name, "("); idx > 0 {
		name = name[:idx]
		if j, ok := r.names.Lookup(name); ok {
			return j
		}
	}

	// 5. Approximate abbreviation match over first-letter-pruned
	// candidates. First-seen wins score ties (candidates are in registry
	// insertion order).
	return r.approximate(name)
}

func (r *Resolver) approximate(name string) *domain.Journal {
	key := normalize.NameKey(name)
	if key == "" {
		return nil
	}
	first, _ := utf8.DecodeRuneInString(key)

	var best *domain.Journal
	bestScore := 0.0

	for _, c := range r.candidates {
		if c.first != first {
			continue
		}
		if score := match.Score(name, c.journal.Name); score > bestScore {
			bestScore = score
			best = c.journal
		}
	}

	if bestScore < match.MatchThreshold {
		return nil
	}
	return best
}

// ResolveBatch resolves a keyed map of queries into a same-shaped map.
// No-matches appear as nil values.
func (r *Resolver) ResolveBatch(queries map[string]domain.Query) map[string]*domain.Journal {
	results := make(map[string]*domain.Journal, len(queries))
	for key, q := range queries {
		results[key] = r.Resolve(q)
	}
	return results
}

// Status reports load state and entry count.
func (r *Resolver) Status() Status {
	if r.reg == nil {
		return Status{}
	}
	return Status{
		Loaded:  true,
		Entries: r.reg.Len(),
		BuiltAt: r.builtAt,
	}
}
