package api

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
)

func (s *Server) registerStatusRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "registryStatus",
		Method:      http.MethodGet,
		Path:        "/api/v1/status",
		Summary:     "Registry status",
		Description: "Reports whether the registry is loaded and how many records it holds",
		Tags:        []string{"Status"},
	}, s.handleStatus)
}

// StatusResponse reports resolver load state.
type StatusResponse struct {
	Loaded  bool      `json:"loaded" doc:"Whether a registry artifact is resident"`
	Entries int       `json:"entries" doc:"Number of registry records"`
	BuiltAt time.Time `json:"built_at,omitzero" doc:"When the artifact was built"`
	Version string    `json:"version" doc:"API version"`
}

// StatusOutput wraps the status response for Huma.
type StatusOutput struct {
	Body StatusResponse
}

func (s *Server) handleStatus(_ context.Context, _ *struct{}) (*StatusOutput, error) {
	st := s.resolver.Status()
	return &StatusOutput{
		Body: StatusResponse{
			Loaded:  st.Loaded,
			Entries: st.Entries,
			BuiltAt: st.BuiltAt,
			Version: APIVersion,
		},
	}, nil
}
