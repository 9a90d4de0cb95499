// Package main provides the offline registry build tool.
//
// It reads the two source tables (classification and impact metrics),
// runs the two-phase merge, and writes the finished artifact into the
// Badger store the API server reads at startup. Optionally it also
// exports the registry as one flat JSON document.
//
// Usage:
//
//	go run ./cmd/seed -primary data/classification.csv -secondary data/metrics.csv -store data/registry
//	go run ./cmd/seed -artifact registry.json   # additionally export JSON
package main

import (
	"context"
	"encoding/json/v2"
	"flag"
	"fmt"
	"os"

	"github.com/journalscope/journalscope-server/internal/category"
	"github.com/journalscope/journalscope-server/internal/config"
	"github.com/journalscope/journalscope-server/internal/ingest"
	"github.com/journalscope/journalscope-server/internal/logger"
	"github.com/journalscope/journalscope-server/internal/registry"
	"github.com/journalscope/journalscope-server/internal/store"
)

func main() {
	var opts config.Options
	flag.StringVar(&opts.PrimaryPath, "primary", "", "Path to the classification source table")
	flag.StringVar(&opts.SecondaryPath, "secondary", "", "Path to the impact metrics source table")
	flag.StringVar(&opts.StorePath, "store", "", "Path to the registry store to write")
	flag.StringVar(&opts.ArtifactPath, "artifact", "", "Optional path for a flat JSON export")
	flag.StringVar(&opts.Excluded, "exclude", "", "Comma-separated category overrides for the exclusion filter")
	flag.StringVar(&opts.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.Parse()

	cfg, err := config.Load(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{
		Level:       logger.ParseLevel(cfg.Logger.Level),
		Environment: cfg.App.Environment,
	})

	if err := run(cfg, log); err != nil {
		log.Fatal("Registry build failed", "error", err)
	}
}

func run(cfg *config.Config, log *logger.Logger) error {
	primary, err := readTable(cfg.Build.PrimaryPath)
	if err != nil {
		return fmt.Errorf("primary source: %w", err)
	}
	secondary, err := readTable(cfg.Build.SecondaryPath)
	if err != nil {
		return fmt.Errorf("secondary source: %w", err)
	}

	filter := category.NewDefaultFilter()
	if len(cfg.Build.ExcludedCategories) > 0 {
		filter = category.NewFilter(cfg.Build.ExcludedCategories)
		log.Info("Using category overrides", "excluded", len(cfg.Build.ExcludedCategories))
	}

	builder := registry.NewBuilder(filter)
	reg, stats := builder.Build(primary, secondary)

	log.Info("Registry built",
		"primary_rows", stats.PrimaryRows,
		"secondary_rows", stats.SecondaryRows,
		"records", stats.Records,
		"excluded", stats.Excluded,
		"suppressed", stats.Suppressed,
		"metrics_merged", stats.MetricMerged,
		"metrics_created", stats.MetricCreated,
		"skipped_no_name", stats.SkippedNoName,
	)

	st, err := store.New(cfg.Store.Path, log.Logger)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	if err := st.WriteRegistry(context.Background(), reg); err != nil {
		return fmt.Errorf("write artifact: %w", err)
	}

	if cfg.Build.ArtifactPath != "" {
		if err := exportArtifact(reg, cfg.Build.ArtifactPath); err != nil {
			return fmt.Errorf("export artifact: %w", err)
		}
		log.Info("Artifact exported", "path", cfg.Build.ArtifactPath)
	}

	return nil
}

// readTable reads and parses one source table.
func readTable(path string) ([]ingest.Row, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	rows := ingest.ParseTable(string(data))
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s contains no data rows", path)
	}
	return rows, nil
}

// exportArtifact writes the registry's flat JSON form next to the store.
func exportArtifact(reg *registry.Registry, path string) error {
	data, err := json.Marshal(reg.Artifact())
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
