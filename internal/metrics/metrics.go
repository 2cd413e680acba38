// K-Beauty Hub - Product Knowledge Base and Recommendation Engine
// Copyright 2026 Monaim Knight (Monaim-knight)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Monaim-knight/k-beauty-hub-sub000

// Package metrics provides Prometheus instrumentation for the knowledge
// base: ingestion outcomes, query volumes, and search cache efficiency.
// Collectors register on the default registry; exposition is left to the
// host application.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Products tracks the current number of products in the store.
	Products = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "kbhub_products",
			Help: "Current number of products in the knowledge store",
		},
	)

	// IngestTotal counts ingestion attempts by outcome.
	IngestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kbhub_ingest_total",
			Help: "Total product ingestion attempts",
		},
		[]string{"operation", "result"}, // operation: add, bulk_add, resync; result: ok, rejected
	)

	// QueriesTotal counts read-path queries by kind.
	QueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kbhub_queries_total",
			Help: "Total knowledge base queries",
		},
		[]string{"kind"}, // search, recommend, trending, get, stats
	)

	// SearchResults observes result-set sizes for scored searches.
	SearchResults = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "kbhub_search_results",
			Help:    "Number of products returned per search",
			Buckets: []float64{0, 1, 2, 5, 10, 20, 50, 100},
		},
	)

	// SearchCacheHits counts searches served from the result cache.
	SearchCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "kbhub_search_cache_hits_total",
			Help: "Total search cache hits",
		},
	)

	// SearchCacheMisses counts searches that had to be scored.
	SearchCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "kbhub_search_cache_misses_total",
			Help: "Total search cache misses",
		},
	)

	// AnalyticsHits counts recorded product analytics events.
	AnalyticsHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "kbhub_analytics_hits_total",
			Help: "Total recorded product view/hit events",
		},
	)
)
