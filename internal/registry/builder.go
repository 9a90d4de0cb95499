package registry

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/journalscope/journalscope-server/internal/category"
	"github.com/journalscope/journalscope-server/internal/domain"
	"github.com/journalscope/journalscope-server/internal/id"
	"github.com/journalscope/journalscope-server/internal/ingest"
	"github.com/journalscope/journalscope-server/internal/normalize"
)

// Column names in the primary (classification) source table.
const (
	colJournal  = "Journal"
	colIdent    = "ISSN/EISSN"
	colCategory = "Category"
	colDivision = "Division"
	colTop      = "Top"
	colSupport  = "Support"
	colNote     = "Note"
	colWarning  = "Warning"
	colAliases  = "Aliases"
)

// Column names in the secondary (impact metrics) source table. The impact
// factor column embeds the census year ("IF(2024)") and is matched by
// prefix.
const (
	colISSN     = "ISSN"
	colEISSN    = "eISSN"
	colIFPrefix = "IF"
	colQuartile = "Quartile"
)

// Marker values in the primary source's flag columns. Top requires the
// exact token; the others are substring markers, with the mega marker
// matched case-insensitively.
const (
	markerTop     = "是"
	markerSupport = "支持"
	markerMega    = "mega"
	markerWarning = "预警"
)

// divisionPattern matches a classification division expression: a leading
// integer followed by a bracketed rank/total, e.g. "1 [30/840]".
var divisionPattern = regexp.MustCompile(`^(\d+)\s*\[\d+/\d+\]`)

// Stats collects build counters for the offline step's report.
type Stats struct {
	PrimaryRows   int // data rows read from the classification source
	SecondaryRows int // data rows read from the metrics source
	Records       int // distinct records in the finished registry
	Excluded      int // primary rows dropped by the category filter
	Suppressed    int // secondary rows dropped via the suppression set
	MetricMerged  int // secondary rows merged into an existing record
	MetricCreated int // secondary rows that created a new record
	SkippedNoName int // rows dropped for missing a journal name
}

// Builder runs the two-phase registry merge.
type Builder struct {
	filter *category.Filter
	newID  func() string
}

// NewBuilder creates a builder using the given category filter.
func NewBuilder(filter *category.Filter) *Builder {
	return &Builder{
		filter: filter,
		newID:  func() string { return id.MustGenerate(id.JournalPrefix) },
	}
}

// Build merges the two sources into a registry.
//
// The primary source defines the domain-filtered universe: every
// non-excluded row becomes a record, indexed under both of its normalized
// identifiers. The secondary source can only extend that universe — it
// merges metrics into identifier-matched records or creates genuinely new
// minimal ones, and it can never resurrect a journal the category filter
// excluded, because excluded identifiers are suppressed across sources.
func (b *Builder) Build(primary, secondary []ingest.Row) (*Registry, Stats) {
	reg := New()
	stats := Stats{}
	suppressed := make(map[string]bool)

	b.buildPrimary(reg, primary, suppressed, &stats)
	b.mergeSecondary(reg, secondary, suppressed, &stats)

	stats.Records = reg.Len()
	return reg, stats
}

func (b *Builder) buildPrimary(reg *Registry, rows []ingest.Row, suppressed map[string]bool, stats *Stats) {
	stats.PrimaryRows = len(rows)

	for _, row := range rows {
		name := row.Get(colJournal)
		if name == "" {
			stats.SkippedNoName++
			continue
		}

		issn, eissn := splitIdentPair(row.Get(colIdent))

		if b.filter.Excluded(row.Get(colCategory)) {
			if issn != "" {
				suppressed[issn] = true
			}
			if eissn != "" {
				suppressed[eissn] = true
			}
			stats.Excluded++
			continue
		}

		tier, rank := parseDivision(row.Get(colDivision))

		j := &domain.Journal{
			ID:                 b.newID(),
			Name:               name,
			ISSN:               issn,
			EISSN:              eissn,
			Category:           row.Get(colCategory),
			Tier:               tier,
			Rank:               rank,
			IsTop:              row.Get(colTop) == markerTop,
			IsFastTrackSupport: strings.Contains(row.Get(colSupport), markerSupport),
			IsMegaJournal:      containsFold(row.Get(colNote), markerMega),
			IsWarningListed:    strings.Contains(row.Get(colWarning), markerWarning),
			Aliases:            splitAliases(row.Get(colAliases)),
		}

		reg.Add(j)
	}
}

func (b *Builder) mergeSecondary(reg *Registry, rows []ingest.Row, suppressed map[string]bool, stats *Stats) {
	stats.SecondaryRows = len(rows)

	for _, row := range rows {
		issn := normalize.ISSN(row.Get(colISSN))
		eissn := normalize.ISSN(row.Get(colEISSN))

		if (issn != "" && suppressed[issn]) || (eissn != "" && suppressed[eissn]) {
			stats.Suppressed++
			continue
		}

		j, found := reg.ByIdent(issn)
		if !found {
			j, found = reg.ByIdent(eissn)
		}

		if found {
			mergeMetrics(j, row)
			stats.MetricMerged++
			continue
		}

		name := row.Get(colJournal)
		if name == "" || (issn == "" && eissn == "") {
			stats.SkippedNoName++
			continue
		}

		j = &domain.Journal{
			ID:    b.newID(),
			Name:  name,
			ISSN:  issn,
			EISSN: eissn,
		}
		mergeMetrics(j, row)
		reg.Add(j)
		stats.MetricCreated++
	}
}

// mergeMetrics folds the metrics row into a record. A blank or
// unparseable incoming value never clears an existing one.
func mergeMetrics(j *domain.Journal, row ingest.Row) {
	if raw := row.GetPrefix(colIFPrefix); raw != "" {
		if ifactor, err := strconv.ParseFloat(raw, 64); err == nil {
			j.ImpactFactor = &ifactor
		}
	}
	if q := row.Get(colQuartile); q != "" {
		j.ImpactQuartile = q
	}
}

// splitIdentPair splits the primary source's slash-joined "ISSN/EISSN"
// field and normalizes both parts.
func splitIdentPair(raw string) (issn, eissn string) {
	before, after, _ := strings.Cut(raw, "/")
	return normalize.ISSN(before), normalize.ISSN(after)
}

// parseDivision extracts the tier from a division expression like
// "1 [30/840]". Anything that does not match the pattern yields no tier
// and no rank.
func parseDivision(raw string) (*int, string) {
	m := divisionPattern.FindStringSubmatch(raw)
	if m == nil {
		return nil, ""
	}
	tier, err := strconv.Atoi(m[1])
	if err != nil {
		return nil, ""
	}
	return &tier, raw
}

func splitAliases(raw string) []string {
	if raw == "" {
		return nil
	}
	var aliases []string
	for part := range strings.SplitSeq(raw, ";") {
		if part = strings.TrimSpace(part); part != "" {
			aliases = append(aliases, part)
		}
	}
	return aliases
}

// containsFold reports whether s contains substr, case-insensitively.
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
