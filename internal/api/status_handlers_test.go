package api

import (
	"io"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/journalscope/journalscope-server/internal/config"
	"github.com/journalscope/journalscope-server/internal/logger"
	"github.com/journalscope/journalscope-server/internal/resolver"
)

func TestStatus_Loaded(t *testing.T) {
	ts := newTestServer(t)

	resp := ts.api.Get("/api/v1/status")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"loaded":true`)
	assert.Contains(t, resp.Body.String(), `"entries":2`)
}

func TestStatus_Unloaded(t *testing.T) {
	log := logger.New(logger.Config{Writer: io.Discard, Format: "json"})
	cfg := &config.ServerConfig{RateLimitRPS: 1000, RateLimitBurst: 1000}
	s := NewServer(cfg, nil, resolver.NewUnloaded(log.Logger), log)
	t.Cleanup(s.Close)
	api := humatest.Wrap(t, s.api)

	resp := api.Get("/api/v1/status")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"loaded":false`)

	// Unloaded resolver still answers resolve requests, as no-match.
	resp = api.Post("/api/v1/resolve", map[string]any{"issn": "0092-8674"})
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"matched":false`)
}

func TestHealth_ReportsComponents(t *testing.T) {
	ts := newTestServer(t)

	resp := ts.api.Get("/health")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"status":"healthy"`)
	assert.Contains(t, resp.Body.String(), `"database"`)
	assert.Contains(t, resp.Body.String(), `"resolver"`)
}

func TestHealth_DegradedWithoutStore(t *testing.T) {
	log := logger.New(logger.Config{Writer: io.Discard, Format: "json"})
	cfg := &config.ServerConfig{RateLimitRPS: 1000, RateLimitBurst: 1000}
	s := NewServer(cfg, nil, resolver.NewUnloaded(log.Logger), log)
	t.Cleanup(s.Close)
	api := humatest.Wrap(t, s.api)

	resp := api.Get("/health")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"status":"degraded"`)
}
