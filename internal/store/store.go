// Package store persists the registry artifact in a Badger database.
//
// The layout mirrors the artifact's indirection: records live once under
// journal:<id>, identifier keys under ident:<normalized> hold the record
// ID they point at, and meta:manifest records the build metadata plus the
// insertion order the name index and tie-breaks depend on.
package store

import (
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
)

// Key prefixes in the database.
const (
	keyJournalPrefix = "journal:"
	keyIdentPrefix   = "ident:"
	keyManifest      = "meta:manifest"
)

// Store wraps a Badger database instance holding one registry artifact.
type Store struct {
	db     *badger.DB
	logger *slog.Logger
}

// New opens (or creates) a store for writing. Used by the offline build.
func New(path string, logger *slog.Logger) (*Store, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil      // Disable Badger's internal logging
	opts.SyncWrites = true // The artifact is written once; sync everything
	opts.CompactL0OnClose = true

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger db: %w", err)
	}

	if logger != nil {
		logger.Info("Registry store opened", "path", path)
	}

	return &Store{db: db, logger: logger}, nil
}

// OpenReadOnly opens an existing store for querying. Fails if no artifact
// has been built at the path.
func OpenReadOnly(path string, logger *slog.Logger) (*Store, error) {
	opts := badger.DefaultOptions(path).
		WithReadOnly(true)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger db read-only: %w", err)
	}

	if logger != nil {
		logger.Info("Registry store opened read-only", "path", path)
	}

	return &Store{db: db, logger: logger}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
