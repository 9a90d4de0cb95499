package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/journalscope/journalscope-server/internal/errors"
	"github.com/journalscope/journalscope-server/internal/normalize"
)

func (s *Server) registerJournalRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "getJournalByIdent",
		Method:      http.MethodGet,
		Path:        "/api/v1/journals/{ident}",
		Summary:     "Get journal by identifier",
		Description: "Looks up a single record by ISSN or EISSN straight from the store",
		Tags:        []string{"Journals"},
	}, s.handleGetJournal)
}

// JournalInput identifies one record by serial identifier.
type JournalInput struct {
	Ident string `path:"ident" doc:"ISSN or EISSN, hyphenated or bare"`
}

// JournalOutput wraps a single record for Huma.
type JournalOutput struct {
	Body JournalResponse
}

func (s *Server) handleGetJournal(ctx context.Context, input *JournalInput) (*JournalOutput, error) {
	ident := normalize.ISSN(input.Ident)
	if ident == "" {
		return nil, errors.Validation("identifier is required")
	}

	if s.store == nil {
		return nil, errors.Unavailable("registry store not configured")
	}

	j, err := s.store.GetJournalByIdent(ctx, ident)
	if err != nil {
		return nil, err
	}

	return &JournalOutput{Body: *toJournalResponse(j)}, nil
}
