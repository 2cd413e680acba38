// K-Beauty Hub - Product Knowledge Base and Recommendation Engine
// Copyright 2026 Monaim Knight (Monaim-knight)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Monaim-knight/k-beauty-hub-sub000

// Package main is the admin entry point for the product knowledge base.
//
// kbhub loads a catalog snapshot, resyncs the in-memory knowledge base from
// it, runs one query operation, and prints the result as JSON. It is the
// catalog-management consumer of the knowledge base facade, an in-process
// tool with no network surface.
//
// # Usage
//
//	kbhub -catalog products.json -search "snail"
//	kbhub -catalog products.json -skin-type "Dry Skin" -benefits Hydration,Soothing
//	kbhub -catalog products.json -trending 10
//	kbhub -catalog products.json -get cosrx-advanced-snail-96
//	kbhub -catalog products.json -stats
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest
// priority wins): environment variables (KBHUB_ prefix), an optional
// config.yaml, and built-in defaults. The catalog path flag overrides
// KBHUB_CATALOG_PATH.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-json"

	"github.com/Monaim-knight/k-beauty-hub-sub000/internal/catalog"
	"github.com/Monaim-knight/k-beauty-hub-sub000/internal/config"
	"github.com/Monaim-knight/k-beauty-hub-sub000/internal/knowledge"
	"github.com/Monaim-knight/k-beauty-hub-sub000/internal/logging"
	"github.com/Monaim-knight/k-beauty-hub-sub000/internal/models"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "kbhub: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		catalogPath = flag.String("catalog", "", "path to the catalog snapshot (JSON array of products)")
		search      = flag.String("search", "", "run a scored search for the given query")
		skinType    = flag.String("skin-type", "", "skin type preference for recommendations")
		benefits    = flag.String("benefits", "", "comma-separated benefit preferences for recommendations")
		recommend   = flag.Bool("recommend", false, "run personalized recommendations")
		trending    = flag.Int("trending", 0, "list the top N trending products")
		get         = flag.String("get", "", "look up a product by id (records a detail view)")
		stats       = flag.Bool("stats", false, "print knowledge base statistics")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})
	logger := logging.Logger()

	kb, err := knowledge.New(&knowledge.Config{
		RecommendLimit:  cfg.Engine.RecommendLimit,
		TrendingLimit:   cfg.Engine.TrendingLimit,
		SearchCacheSize: cfg.Engine.SearchCacheSize,
		SearchCacheTTL:  cfg.Engine.SearchCacheTTL,
	}, logger)
	if err != nil {
		return err
	}

	path := *catalogPath
	if path == "" {
		path = cfg.Catalog.Path
	}
	if path == "" {
		return fmt.Errorf("no catalog snapshot: pass -catalog or set KBHUB_CATALOG_PATH")
	}

	products, err := catalog.Load(path)
	if err != nil {
		return err
	}
	if err := kb.Resync(products); err != nil {
		return err
	}
	logger.Info().Int("products", len(products)).Str("catalog", path).Msg("knowledge base ready")

	switch {
	case *search != "":
		return printJSON(kb.Search(*search))

	case *recommend || *skinType != "" || *benefits != "":
		prefs := models.Preferences{SkinType: *skinType}
		if *benefits != "" {
			for _, b := range strings.Split(*benefits, ",") {
				if b = strings.TrimSpace(b); b != "" {
					prefs.Benefits = append(prefs.Benefits, b)
				}
			}
		}
		return printJSON(kb.Recommend(prefs))

	case *trending > 0:
		return printJSON(kb.Trending(*trending))

	case *get != "":
		rec, ok := kb.Get(*get)
		if !ok {
			return fmt.Errorf("product %q not found", *get)
		}
		kb.RecordHit(*get)
		return printJSON(rec)

	case *stats:
		return printJSON(kb.Stats())

	default:
		flag.Usage()
		return fmt.Errorf("no operation requested")
	}
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
