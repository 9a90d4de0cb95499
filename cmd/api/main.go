// Package main provides the entry point for the JournalScope server application.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/samber/do/v2"

	"github.com/journalscope/journalscope-server/internal/config"
	"github.com/journalscope/journalscope-server/internal/di"
	"github.com/journalscope/journalscope-server/internal/logger"
)

func main() {
	var opts config.Options
	flag.StringVar(&opts.Environment, "env", "", "Environment (development or production)")
	flag.StringVar(&opts.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.StringVar(&opts.Port, "port", "", "HTTP port to listen on")
	flag.StringVar(&opts.StorePath, "store", "", "Path to the registry store")
	flag.Parse()

	// Create DI container
	injector := di.NewContainer(opts)

	// Bootstrap all services
	if err := di.Bootstrap(injector); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to bootstrap server: %v\n", err)
		os.Exit(1)
	}

	// Get logger for shutdown messages
	log := do.MustInvoke[*logger.Logger](injector)

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	// Shutdown all services in reverse order
	// The DI container handles shutdown order automatically
	if err := injector.Shutdown(); err != nil {
		log.Error("Shutdown error", "error", err)
	}

	log.Info("Server stopped")
}
