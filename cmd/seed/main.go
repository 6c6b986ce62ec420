// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command seed builds an in-memory royalty registry and logs what the
// traversal queries return for it.
//
// # Startup Sequence
//
//  1. Load configuration from environment variables.
//  2. Initialize structured logger.
//  3. Register books, authors and contracts.
//  4. Log per-author totals and the contracts for SEED_DATE.
//
// Nothing is persisted; the registry lives for the duration of the process.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/taibuivan/bookroyalty/internal/core/catalog"
	"github.com/taibuivan/bookroyalty/internal/platform/config"
	"github.com/taibuivan/bookroyalty/internal/platform/constants"
	"github.com/taibuivan/bookroyalty/internal/platform/logger"
)

type signing struct {
	author    string
	book      string
	date      string
	royalties int
}

func main() {
	// ── 1. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// ── 2. Logger ─────────────────────────────────────────────────────────
	log := logger.New(cfg, os.Stdout)
	slog.SetDefault(log)

	log.Info("seed_starting",
		slog.String("environment", cfg.Environment),
		slog.String(constants.FieldVersion, constants.AppVersion),
	)

	// ── 3. Registry ───────────────────────────────────────────────────────
	registry := catalog.NewRegistry(log)
	must(log, seed(registry, cfg.SeedDate), "seed registry")

	// ── 4. Report ─────────────────────────────────────────────────────────
	for _, author := range registry.Authors() {
		log.Info("author_summary",
			slog.String(constants.FieldName, author.Name()),
			slog.Int(constants.FieldCount, len(author.Contracts())),
			slog.Int64(constants.FieldRoyalties, author.TotalRoyalties()),
		)
	}

	contracts, err := registry.ContractsByDate(cfg.SeedDate)
	must(log, err, "query contracts by date")

	log.Info("contracts_by_date",
		slog.String(constants.FieldDate, cfg.SeedDate),
		slog.Int(constants.FieldCount, len(contracts)),
	)
	for _, contract := range contracts {
		log.Info("contract", slog.String("contract", contract.String()))
	}
}

// seed registers a small fixed catalog. Half of the contracts are signed on
// date so the date query has something to sort.
func seed(registry *catalog.Registry, date string) error {
	signings := []signing{
		{"Terry Pratchett", "Good Omens", date, 10},
		{"Neil Gaiman", "Good Omens", date, 10},
		{"Terry Pratchett", "Mort", "1987-11-12", 12},
		{"Neil Gaiman", "American Gods", date, 15},
		{"Ursula K. Le Guin", "The Left Hand of Darkness", "1969-03-01", 8},
		{"Ursula K. Le Guin", "A Wizard of Earthsea", date, 9},
	}

	authors := map[string]*catalog.Author{}
	books := map[string]*catalog.Book{}

	for _, s := range signings {
		author, ok := authors[s.author]
		if !ok {
			created, err := registry.NewAuthor(s.author)
			if err != nil {
				return fmt.Errorf("new author %q: %w", s.author, err)
			}
			author, authors[s.author] = created, created
		}

		book, ok := books[s.book]
		if !ok {
			created, err := registry.NewBook(s.book)
			if err != nil {
				return fmt.Errorf("new book %q: %w", s.book, err)
			}
			book, books[s.book] = created, created
		}

		if _, err := author.SignContract(book, s.date, s.royalties); err != nil {
			return fmt.Errorf("sign %s / %s: %w", s.author, s.book, err)
		}
	}

	return nil
}

// must logs a structured fatal error and terminates the process if err is non-nil.
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("seed failure",
			slog.String("context", context),
			slog.Any(constants.FieldError, err),
		)
		os.Exit(1)
	}
}
