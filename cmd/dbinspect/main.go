// Package main provides a read-only inspection tool for the registry store.
//
// Usage:
//
//	STORE_PATH=data/registry go run ./cmd/dbinspect             # summary
//	STORE_PATH=data/registry go run ./cmd/dbinspect 0092-8674   # look up one identifier
package main

import (
	"context"
	"encoding/json/v2"
	"fmt"
	"log"
	"os"

	"github.com/journalscope/journalscope-server/internal/normalize"
	"github.com/journalscope/journalscope-server/internal/store"
)

func main() {
	storePath := os.Getenv("STORE_PATH")
	if storePath == "" {
		storePath = "data/registry"
	}

	st, err := store.OpenReadOnly(storePath, nil)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer st.Close()

	ctx := context.Background()

	fmt.Println("=== Registry Inspection ===")
	fmt.Println()

	manifest, err := st.Manifest(ctx)
	if err != nil {
		log.Fatalf("Failed to read manifest: %v", err)
	}

	fmt.Printf("Artifact version: %d\n", manifest.Version)
	fmt.Printf("Built at:         %s\n", manifest.BuiltAt)
	fmt.Printf("Records:          %d\n", manifest.Count)
	fmt.Println()

	// With an identifier argument, look up and dump that record.
	if len(os.Args) > 1 {
		ident := normalize.ISSN(os.Args[1])
		if ident == "" {
			log.Fatalf("Not a usable identifier: %q", os.Args[1])
		}

		j, err := st.GetJournalByIdent(ctx, ident)
		if err != nil {
			log.Fatalf("Lookup failed for %s: %v", ident, err)
		}

		data, err := json.Marshal(j, json.Deterministic(true))
		if err != nil {
			log.Fatalf("Failed to render record: %v", err)
		}
		fmt.Println(string(data))
		return
	}

	// Otherwise show the first few records in insertion order.
	reg, err := st.LoadRegistry(ctx)
	if err != nil {
		log.Fatalf("Failed to load registry: %v", err)
	}

	shown := 0
	for j := range reg.Journals() {
		if shown >= 10 {
			fmt.Printf("... and %d more records\n", reg.Len()-shown)
			break
		}
		fmt.Printf("%-14s %-40s issn=%-9s eissn=%-9s", j.ID, truncate(j.Name, 40), j.ISSN, j.EISSN)
		if j.Tier != nil {
			fmt.Printf(" tier=%d", *j.Tier)
		}
		if j.ImpactFactor != nil {
			fmt.Printf(" if=%.1f", *j.ImpactFactor)
		}
		fmt.Println()
		shown++
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
