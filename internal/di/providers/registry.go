package providers

import (
	"context"
	"time"

	"github.com/samber/do/v2"

	"github.com/journalscope/journalscope-server/internal/config"
	"github.com/journalscope/journalscope-server/internal/logger"
	"github.com/journalscope/journalscope-server/internal/resolver"
	"github.com/journalscope/journalscope-server/internal/store"
)

// StoreHandle wraps the store with shutdown capability. Store is nil when
// no artifact exists at the configured path; the server then runs in a
// degraded no-match state instead of refusing to start.
type StoreHandle struct {
	*store.Store
}

// Shutdown implements do.Shutdownable.
func (h *StoreHandle) Shutdown() error {
	if h.Store == nil {
		return nil
	}
	return h.Close()
}

// ProvideStore provides the registry store, opened read-only.
func ProvideStore(i do.Injector) (*StoreHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	st, err := store.OpenReadOnly(cfg.Store.Path, log.Logger)
	if err != nil {
		log.WithError(err).Warn("Registry store unavailable; serving without it",
			"path", cfg.Store.Path,
		)
		return &StoreHandle{}, nil
	}

	return &StoreHandle{Store: st}, nil
}

// ProvideResolver provides the query resolver, loading the registry from
// the store once at startup.
func ProvideResolver(i do.Injector) (*resolver.Resolver, error) {
	log := do.MustInvoke[*logger.Logger](i)
	storeHandle := do.MustInvoke[*StoreHandle](i)

	if storeHandle.Store == nil {
		return resolver.NewUnloaded(log.Logger), nil
	}

	ctx := context.Background()

	var builtAt time.Time
	if manifest, err := storeHandle.Manifest(ctx); err == nil {
		builtAt = manifest.BuiltAt
	}

	return resolver.Load(ctx, storeHandle.Store, builtAt, log.Logger), nil
}
