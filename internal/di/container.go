// Package di provides dependency injection configuration for the JournalScope server.
package di

import (
	"github.com/samber/do/v2"

	"github.com/journalscope/journalscope-server/internal/config"
	"github.com/journalscope/journalscope-server/internal/di/providers"
	"github.com/journalscope/journalscope-server/internal/logger"
	"github.com/journalscope/journalscope-server/internal/resolver"
)

// NewContainer creates and configures the DI container with all providers.
// opts carries the flag values parsed in main.
func NewContainer(opts config.Options) *do.RootScope {
	injector := do.New()

	do.ProvideValue(injector, opts)

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)

	// Registry layer
	do.Provide(injector, providers.ProvideStore)
	do.Provide(injector, providers.ProvideResolver)

	// Server
	do.Provide(injector, providers.ProvideHTTPServer)

	return injector
}

// Bootstrap initializes all services and returns handles for lifecycle management.
// This triggers lazy initialization of all core services.
func Bootstrap(injector *do.RootScope) error {
	if _, err := do.Invoke[*config.Config](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*logger.Logger](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*providers.StoreHandle](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*resolver.Resolver](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*providers.HTTPServerHandle](injector); err != nil {
		return err
	}
	return nil
}
