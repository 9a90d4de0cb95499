package store

import (
	"context"
	"encoding/json/v2"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/journalscope/journalscope-server/internal/domain"
	"github.com/journalscope/journalscope-server/internal/registry"
)

// Manifest records build metadata for the persisted artifact, including
// the record insertion order that first-wins semantics depend on.
type Manifest struct {
	Version int       `json:"version"`
	BuiltAt time.Time `json:"built_at"`
	Count   int       `json:"count"`
	Order   []string  `json:"order"`
}

// WriteRegistry persists a finished registry, replacing any previous
// artifact at this path. The manifest is written last so a partially
// written artifact is never mistaken for a complete one.
func (s *Store) WriteRegistry(ctx context.Context, reg *registry.Registry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := s.db.DropAll(); err != nil {
		return fmt.Errorf("failed to clear previous artifact: %w", err)
	}

	art := reg.Artifact()

	wb := s.db.NewWriteBatch()
	defer wb.Cancel()

	for recID, j := range art.Journals {
		data, err := json.Marshal(j)
		if err != nil {
			return fmt.Errorf("failed to marshal journal %s: %w", recID, err)
		}
		if err := wb.Set([]byte(keyJournalPrefix+recID), data); err != nil {
			return fmt.Errorf("failed to write journal %s: %w", recID, err)
		}
	}

	for ident, recID := range art.Identifiers {
		if err := wb.Set([]byte(keyIdentPrefix+ident), []byte(recID)); err != nil {
			return fmt.Errorf("failed to write identifier %s: %w", ident, err)
		}
	}

	if err := wb.Flush(); err != nil {
		return fmt.Errorf("failed to flush artifact batch: %w", err)
	}

	manifest := Manifest{
		Version: art.Version,
		BuiltAt: art.BuiltAt,
		Count:   len(art.Journals),
		Order:   art.Order,
	}
	data, err := json.Marshal(manifest)
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyManifest), data)
	})
	if err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("Registry artifact written",
			"records", manifest.Count,
			"identifiers", len(art.Identifiers),
		)
	}

	return nil
}

// LoadRegistry reads the whole artifact back into an in-memory registry.
// Returns ErrNotBuilt when the store has no manifest.
func (s *Store) LoadRegistry(ctx context.Context) (*registry.Registry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	manifest, err := s.Manifest(ctx)
	if err != nil {
		return nil, err
	}

	journals := make(map[string]*domain.Journal, manifest.Count)
	idents := make(map[string]string)

	err = s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(keyJournalPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.ValidForPrefix(opts.Prefix); it.Next() {
			item := it.Item()
			recID := string(item.Key()[len(keyJournalPrefix):])
			err := item.Value(func(val []byte) error {
				var j domain.Journal
				if err := json.Unmarshal(val, &j); err != nil {
					return fmt.Errorf("failed to unmarshal journal %s: %w", recID, err)
				}
				journals[recID] = &j
				return nil
			})
			if err != nil {
				return err
			}
		}

		opts = badger.DefaultIteratorOptions
		opts.Prefix = []byte(keyIdentPrefix)
		it2 := txn.NewIterator(opts)
		defer it2.Close()

		for it2.Rewind(); it2.ValidForPrefix(opts.Prefix); it2.Next() {
			item := it2.Item()
			ident := string(item.Key()[len(keyIdentPrefix):])
			err := item.Value(func(val []byte) error {
				idents[ident] = string(val)
				return nil
			})
			if err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	reg, err := registry.Load(journals, idents, manifest.Order)
	if err != nil {
		return nil, fmt.Errorf("artifact is inconsistent: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("Registry loaded", "records", reg.Len(), "identifiers", len(idents))
	}

	return reg, nil
}

// Manifest reads the artifact manifest. Returns ErrNotBuilt when absent.
func (s *Store) Manifest(ctx context.Context) (*Manifest, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var manifest Manifest
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyManifest))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotBuilt
		}
		if err != nil {
			return fmt.Errorf("failed to read manifest: %w", err)
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &manifest)
		})
	})
	if err != nil {
		return nil, err
	}

	return &manifest, nil
}

// GetJournalByIdent resolves a single record by normalized identifier
// without loading the whole artifact. Returns ErrNotFound on a miss.
func (s *Store) GetJournalByIdent(ctx context.Context, ident string) (*domain.Journal, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if ident == "" {
		return nil, ErrNotFound
	}

	var j domain.Journal
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyIdentPrefix + ident))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to read identifier key: %w", err)
		}

		var recID []byte
		recID, err = item.ValueCopy(nil)
		if err != nil {
			return fmt.Errorf("failed to copy identifier value: %w", err)
		}

		item, err = txn.Get([]byte(keyJournalPrefix + string(recID)))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound.WithCause(fmt.Errorf("identifier %s points at missing record %s", ident, recID))
		}
		if err != nil {
			return fmt.Errorf("failed to read journal key: %w", err)
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &j)
		})
	})
	if err != nil {
		return nil, err
	}

	return &j, nil
}
