package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/journalscope/journalscope-server/internal/domain"
	"github.com/journalscope/journalscope-server/internal/registry"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(t.TempDir(), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func testRegistry() *registry.Registry {
	reg := registry.New()
	reg.Add(&domain.Journal{
		ID:    "jrn-cell",
		Name:  "Cell",
		ISSN:  "0092-8674",
		EISSN: "1097-4172",
		IsTop: true,
	})
	reg.Add(&domain.Journal{
		ID:   "jrn-nature",
		Name: "Nature",
		ISSN: "0028-0836",
	})
	return reg
}

func TestWriteAndLoadRegistry(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.WriteRegistry(ctx, testRegistry()))

	loaded, err := s.LoadRegistry(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, loaded.Len())

	byISSN, ok := loaded.ByIdent("0092-8674")
	require.True(t, ok)
	byEISSN, ok := loaded.ByIdent("1097-4172")
	require.True(t, ok)
	assert.Same(t, byISSN, byEISSN, "dual-indexed record must load as one instance")
	assert.True(t, byISSN.IsTop)
}

func TestLoadRegistry_PreservesOrder(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.WriteRegistry(ctx, testRegistry()))

	loaded, err := s.LoadRegistry(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"jrn-cell", "jrn-nature"}, loaded.Order())
}

func TestLoadRegistry_NotBuilt(t *testing.T) {
	s := newTestStore(t)

	_, err := s.LoadRegistry(context.Background())
	assert.ErrorIs(t, err, ErrNotBuilt)
}

func TestManifest(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.WriteRegistry(ctx, testRegistry()))

	manifest, err := s.Manifest(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, manifest.Count)
	assert.Equal(t, registry.ArtifactVersion, manifest.Version)
	assert.False(t, manifest.BuiltAt.IsZero())
}

func TestGetJournalByIdent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.WriteRegistry(ctx, testRegistry()))

	j, err := s.GetJournalByIdent(ctx, "0028-0836")
	require.NoError(t, err)
	assert.Equal(t, "Nature", j.Name)

	_, err = s.GetJournalByIdent(ctx, "9999-9999")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.GetJournalByIdent(ctx, "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestWriteRegistry_ReplacesPreviousArtifact(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.WriteRegistry(ctx, testRegistry()))

	small := registry.New()
	small.Add(&domain.Journal{ID: "jrn-one", Name: "One", ISSN: "1111-1111"})
	require.NoError(t, s.WriteRegistry(ctx, small))

	loaded, err := s.LoadRegistry(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, loaded.Len())
	_, ok := loaded.ByIdent("0092-8674")
	assert.False(t, ok)
}
