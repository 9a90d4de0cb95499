package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/journalscope/journalscope-server/internal/domain"
	"github.com/journalscope/journalscope-server/internal/errors"
)

// maxBatchSize caps a single batch request.
const maxBatchSize = 500

func (s *Server) registerResolveRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "resolveJournal",
		Method:      http.MethodPost,
		Path:        "/api/v1/resolve",
		Summary:     "Resolve a journal",
		Description: "Resolves a single query (ISSN, EISSN, and/or name) against the registry",
		Tags:        []string{"Resolve"},
	}, s.handleResolve)

	huma.Register(s.api, huma.Operation{
		OperationID: "resolveJournalBatch",
		Method:      http.MethodPost,
		Path:        "/api/v1/resolve/batch",
		Summary:     "Resolve a batch of journals",
		Description: "Resolves a keyed map of queries in one round trip",
		Tags:        []string{"Resolve"},
	}, s.handleResolveBatch)
}

// === DTOs ===

// QueryRequest describes one lookup. Any combination of fields may be
// set; identifiers are tried before the name.
type QueryRequest struct {
	ISSN  string `json:"issn,omitempty" doc:"Print ISSN, hyphenated or bare"`
	EISSN string `json:"eissn,omitempty" doc:"Electronic ISSN, hyphenated or bare"`
	Name  string `json:"name,omitempty" doc:"Journal name or abbreviation"`
}

// JournalResponse is the API shape of a registry record.
type JournalResponse struct {
	ID                 string   `json:"id" doc:"Stable record ID"`
	Name               string   `json:"name" doc:"Canonical journal name"`
	ISSN               string   `json:"issn,omitempty" doc:"Print ISSN"`
	EISSN              string   `json:"eissn,omitempty" doc:"Electronic ISSN"`
	Category           string   `json:"category,omitempty" doc:"Subject area"`
	Tier               *int     `json:"tier,omitempty" doc:"Classification division, 1 is best"`
	Rank               string   `json:"rank,omitempty" doc:"Raw rank expression"`
	ImpactFactor       *float64 `json:"impact_factor,omitempty" doc:"Latest impact factor"`
	ImpactQuartile     string   `json:"impact_quartile,omitempty" doc:"Impact quartile Q1..Q4"`
	IsTop              bool     `json:"is_top" doc:"Flagged as a top journal"`
	IsFastTrackSupport bool     `json:"is_fast_track_support" doc:"Flagged as fast-track supported"`
	IsWarningListed    bool     `json:"is_warning_listed" doc:"On the warning list"`
	IsMegaJournal      bool     `json:"is_mega_journal" doc:"Flagged as a mega journal"`
	Aliases            []string `json:"aliases,omitempty" doc:"Alternative names"`
}

// ResolveResult pairs a match flag with the record, so a no-match is an
// explicit result rather than an error.
type ResolveResult struct {
	Matched bool             `json:"matched" doc:"Whether a record matched"`
	Journal *JournalResponse `json:"journal,omitempty" doc:"Matched record, absent on no-match"`
}

// ResolveInput wraps the single-resolve request body for Huma.
type ResolveInput struct {
	Body QueryRequest
}

// ResolveOutput wraps the single-resolve response for Huma.
type ResolveOutput struct {
	Body ResolveResult
}

// ResolveBatchInput wraps the batch request body for Huma.
type ResolveBatchInput struct {
	Body struct {
		Queries map[string]QueryRequest `json:"queries" doc:"Caller-keyed queries"`
	}
}

// ResolveBatchOutput wraps the batch response for Huma.
type ResolveBatchOutput struct {
	Body struct {
		Results map[string]ResolveResult `json:"results" doc:"Results under the callers' keys"`
	}
}

// === Handlers ===

func (s *Server) handleResolve(_ context.Context, input *ResolveInput) (*ResolveOutput, error) {
	// An all-absent query is a legal no-match, not a validation failure.
	q := toQuery(input.Body)
	j := s.resolver.Resolve(q)

	s.logger.Debug("Resolve request",
		"issn", q.ISSN,
		"eissn", q.EISSN,
		"name", q.Name,
		"matched", j != nil,
	)

	return &ResolveOutput{Body: toResult(j)}, nil
}

func (s *Server) handleResolveBatch(_ context.Context, input *ResolveBatchInput) (*ResolveBatchOutput, error) {
	if len(input.Body.Queries) == 0 {
		return nil, errors.Validation("queries must not be empty")
	}
	if len(input.Body.Queries) > maxBatchSize {
		return nil, errors.Validation("batch exceeds maximum size")
	}

	queries := make(map[string]domain.Query, len(input.Body.Queries))
	for key, q := range input.Body.Queries {
		queries[key] = toQuery(q)
	}

	matches := s.resolver.ResolveBatch(queries)

	out := &ResolveBatchOutput{}
	out.Body.Results = make(map[string]ResolveResult, len(matches))
	matched := 0
	for key, j := range matches {
		if j != nil {
			matched++
		}
		out.Body.Results[key] = toResult(j)
	}

	s.logger.Debug("Batch resolve request", "queries", len(queries), "matched", matched)

	return out, nil
}

// === Helpers ===

func toQuery(q QueryRequest) domain.Query {
	return domain.Query{ISSN: q.ISSN, EISSN: q.EISSN, Name: q.Name}
}

func toResult(j *domain.Journal) ResolveResult {
	if j == nil {
		return ResolveResult{Matched: false}
	}
	return ResolveResult{Matched: true, Journal: toJournalResponse(j)}
}

func toJournalResponse(j *domain.Journal) *JournalResponse {
	return &JournalResponse{
		ID:                 j.ID,
		Name:               j.Name,
		ISSN:               j.ISSN,
		EISSN:              j.EISSN,
		Category:           j.Category,
		Tier:               j.Tier,
		Rank:               j.Rank,
		ImpactFactor:       j.ImpactFactor,
		ImpactQuartile:     j.ImpactQuartile,
		IsTop:              j.IsTop,
		IsFastTrackSupport: j.IsFastTrackSupport,
		IsWarningListed:    j.IsWarningListed,
		IsMegaJournal:      j.IsMegaJournal,
		Aliases:            j.Aliases,
	}
}
