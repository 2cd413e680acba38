// K-Beauty Hub - Product Knowledge Base and Recommendation Engine
// Copyright 2026 Monaim Knight (Monaim-knight)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Monaim-knight/k-beauty-hub-sub000

// Package knowledge implements the product knowledge base and
// recommendation engine: an in-memory index over the product catalog that
// derives semantic attributes from free-text descriptions, answers ranked
// search queries, produces personalized and trending recommendations, and
// tracks per-product query analytics.
//
// # Architecture
//
// Data flows leaf-first through the package: catalog records pass through
// Extract, the enriched records land in the Store, and the query engine
// scores store snapshots. The pieces are:
//
//   - Vocabulary tables (vocabulary.go): curated keyword, benefit,
//     skin-type, ingredient, and routine-hint tables. Pure data.
//   - Attribute extraction (extract.go): a pure function deriving attribute
//     sets by multi-pattern substring matching (textmatch package) against
//     normalized product text.
//   - Store (store.go): the authoritative RWMutex-guarded collection of
//     enriched records and analytics counters, with an explicit
//     insertion-order index.
//   - Query engine (search.go, recommend.go): stateless scoring over store
//     snapshots, covering weighted full-text search, preference scoring,
//     and trending by analytics counter.
//   - KnowledgeBase (kb.go): the facade consumed by the storefront,
//     chatbot, and admin tooling. Adds ingestion validation, search-result
//     caching, structured logging, and Prometheus metrics.
//
// # Determinism
//
// Extraction output is a pure function of (name, description, category);
// result ordering everywhere ties back to an explicit first-ingest order
// rather than map iteration order. Equal search scores, equal preference
// scores, and equal trending counters all break ties by first-ingest order.
//
// # Thread Safety
//
// All KnowledgeBase and Store operations are safe for concurrent use.
// Reads share a lock and run concurrently; mutations are exclusive; Resync
// swaps the full contents in one critical section so readers never observe
// a partially rebuilt catalog.
package knowledge
