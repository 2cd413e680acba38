// K-Beauty Hub - Product Knowledge Base and Recommendation Engine
// Copyright 2026 Monaim Knight (Monaim-knight)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Monaim-knight/k-beauty-hub-sub000

package knowledge

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/Monaim-knight/k-beauty-hub-sub000/internal/cache"
	"github.com/Monaim-knight/k-beauty-hub-sub000/internal/metrics"
	"github.com/Monaim-knight/k-beauty-hub-sub000/internal/models"
	"github.com/Monaim-knight/k-beauty-hub-sub000/internal/validation"
)

// ErrMalformedProduct is returned when a raw product fails structural
// validation at the ingestion boundary. The store is never mutated by a
// rejected ingestion, not even partially for batch operations.
var ErrMalformedProduct = errors.New("malformed product")

// Config contains the knowledge base tunables.
type Config struct {
	// RecommendLimit caps personalized recommendation results.
	RecommendLimit int

	// TrendingLimit is the default Trending result count.
	TrendingLimit int

	// SearchCacheSize is the search-result cache capacity. Zero disables
	// the cache.
	SearchCacheSize int

	// SearchCacheTTL bounds staleness of cached search results.
	SearchCacheTTL time.Duration
}

// DefaultConfig returns the default knowledge base configuration.
func DefaultConfig() *Config {
	return &Config{
		RecommendLimit:  5,
		TrendingLimit:   5,
		SearchCacheSize: 512,
		SearchCacheTTL:  5 * time.Minute,
	}
}

// Validate checks configuration bounds.
func (c *Config) Validate() error {
	if c.RecommendLimit < 1 {
		return fmt.Errorf("recommend limit must be >= 1, got %d", c.RecommendLimit)
	}
	if c.TrendingLimit < 1 {
		return fmt.Errorf("trending limit must be >= 1, got %d", c.TrendingLimit)
	}
	if c.SearchCacheSize < 0 {
		return fmt.Errorf("search cache size must be >= 0, got %d", c.SearchCacheSize)
	}
	return nil
}

// KnowledgeBase is the public facade over the store, the extractor, and the
// query engine. It is the only surface consumed by the rest of the
// application (storefront, chatbot, admin tooling).
//
// A KnowledgeBase is explicitly constructed and owned by the host; there is
// no process-global instance. It is safe for concurrent use.
type KnowledgeBase struct {
	cfg    Config
	store  *Store
	logger zerolog.Logger

	// searchCache memoizes Search results by normalized query. Purged on
	// every mutation; nil when caching is disabled.
	searchCache *cache.LRU[[]models.ProductRecord]
}

// New creates a knowledge base with the given configuration. A nil cfg uses
// defaults.
func New(cfg *Config, logger zerolog.Logger) (*KnowledgeBase, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	kb := &KnowledgeBase{
		cfg:    *cfg,
		store:  NewStore(),
		logger: logger.With().Str("component", "knowledge").Logger(),
	}
	if cfg.SearchCacheSize > 0 {
		kb.searchCache = cache.NewLRU[[]models.ProductRecord](cfg.SearchCacheSize, cfg.SearchCacheTTL)
	}
	return kb, nil
}

// AddProduct validates and ingests a single raw product. An existing id is
// replaced wholesale; its analytics counter is preserved.
func (kb *KnowledgeBase) AddProduct(raw models.RawProduct) error {
	if err := validateRaw(raw); err != nil {
		metrics.IngestTotal.WithLabelValues("add", "rejected").Inc()
		kb.logger.Warn().Err(err).Str("product_id", raw.ID).Msg("product rejected")
		return err
	}

	kb.store.Upsert(raw)
	kb.invalidate()
	metrics.IngestTotal.WithLabelValues("add", "ok").Inc()
	metrics.Products.Set(float64(kb.store.Len()))
	kb.logger.Debug().Str("product_id", raw.ID).Msg("product ingested")
	return nil
}

// AddProducts validates and ingests a batch of raw products. The whole
// batch is validated up front; on error nothing is ingested. Duplicate ids
// within a batch are last-write-wins. Unlisted products are untouched;
// this is bulk upsert, not a resync.
func (kb *KnowledgeBase) AddProducts(raws []models.RawProduct) error {
	if err := validateBatch(raws); err != nil {
		metrics.IngestTotal.WithLabelValues("bulk_add", "rejected").Inc()
		kb.logger.Warn().Err(err).Int("count", len(raws)).Msg("batch rejected")
		return err
	}

	for _, raw := range raws {
		kb.store.Upsert(raw)
	}
	kb.invalidate()
	metrics.IngestTotal.WithLabelValues("bulk_add", "ok").Inc()
	metrics.Products.Set(float64(kb.store.Len()))
	kb.logger.Info().Int("count", len(raws)).Msg("batch ingested")
	return nil
}

// RemoveProduct deletes a product and its analytics counter. It reports
// whether the product existed.
func (kb *KnowledgeBase) RemoveProduct(id string) bool {
	removed := kb.store.Remove(id)
	if removed {
		kb.invalidate()
		metrics.Products.Set(float64(kb.store.Len()))
		kb.logger.Debug().Str("product_id", id).Msg("product removed")
	}
	return removed
}

// Resync destructively rebuilds the store from a fresh catalog snapshot:
// every record and every analytics counter is dropped, then raws are
// ingested. The whole batch is validated up front; on error the existing
// store contents are left untouched.
func (kb *KnowledgeBase) Resync(raws []models.RawProduct) error {
	if err := validateBatch(raws); err != nil {
		metrics.IngestTotal.WithLabelValues("resync", "rejected").Inc()
		kb.logger.Warn().Err(err).Int("count", len(raws)).Msg("resync rejected")
		return err
	}

	kb.store.Resync(raws)
	kb.invalidate()
	metrics.IngestTotal.WithLabelValues("resync", "ok").Inc()
	metrics.Products.Set(float64(kb.store.Len()))
	kb.logger.Info().Int("count", len(raws)).Msg("catalog resynced")
	return nil
}

// Get returns the enriched record for id. Absence is not an error.
func (kb *KnowledgeBase) Get(id string) (models.ProductRecord, bool) {
	metrics.QueriesTotal.WithLabelValues("get").Inc()
	return kb.store.Get(id)
}

// All returns a snapshot of every record in first-ingest order.
func (kb *KnowledgeBase) All() []models.ProductRecord {
	return kb.store.All()
}

// RecordHit registers one qualifying access for id: a rendered detail view
// or a search-result hit. Consumers call this explicitly; queries never
// record hits on their own. Unknown ids are safely ignored.
func (kb *KnowledgeBase) RecordHit(id string) {
	kb.store.IncrementAnalytics(id)
	metrics.AnalyticsHits.Inc()
}

// Search returns products relevant to query, best matches first. Results
// are served from the cache when the catalog has not changed since they
// were scored.
func (kb *KnowledgeBase) Search(query string) []models.ProductRecord {
	metrics.QueriesTotal.WithLabelValues("search").Inc()

	key := searchCacheKey(query)
	if kb.searchCache != nil {
		if cached, ok := kb.searchCache.Get(key); ok {
			metrics.SearchCacheHits.Inc()
			return cached
		}
		metrics.SearchCacheMisses.Inc()
	}

	results := kb.store.Search(query)
	metrics.SearchResults.Observe(float64(len(results)))
	if kb.searchCache != nil {
		kb.searchCache.Add(key, results)
	}
	kb.logger.Debug().Str("query", query).Int("results", len(results)).Msg("search")
	return results
}

// Recommend returns up to the configured limit of personalized
// recommendations for prefs. With empty preferences the ranking reduces to
// rating and review volume.
func (kb *KnowledgeBase) Recommend(prefs models.Preferences) []models.ProductRecord {
	metrics.QueriesTotal.WithLabelValues("recommend").Inc()
	return kb.store.Recommend(prefs, kb.cfg.RecommendLimit)
}

// Trending returns up to limit products by analytics counter descending.
// A non-positive limit uses the configured default.
func (kb *KnowledgeBase) Trending(limit int) []models.ProductRecord {
	metrics.QueriesTotal.WithLabelValues("trending").Inc()
	if limit <= 0 {
		limit = kb.cfg.TrendingLimit
	}
	return kb.store.Trending(limit)
}

// Stats reports the knowledge base statistics snapshot: product count,
// distinct categories, summed analytics counters, and the top-3 trending
// records.
func (kb *KnowledgeBase) Stats() models.Stats {
	metrics.QueriesTotal.WithLabelValues("stats").Inc()
	return models.Stats{
		TotalProducts: kb.store.Len(),
		Categories:    kb.store.Categories(),
		TotalQueries:  kb.store.TotalHits(),
		TopProducts:   kb.store.Trending(3),
	}
}

// invalidate drops all cached search results after a mutation.
func (kb *KnowledgeBase) invalidate() {
	if kb.searchCache != nil {
		kb.searchCache.Purge()
	}
}

// searchCacheKey normalizes a query the same way Search does, so cache hits
// follow the scoring semantics.
func searchCacheKey(query string) string {
	return normalizeQuery(query)
}

// validateRaw checks a single raw product's structural contract.
func validateRaw(raw models.RawProduct) error {
	if verr := validation.ValidateStruct(&raw); verr != nil {
		return fmt.Errorf("%w: %w", ErrMalformedProduct, verr)
	}
	return nil
}

// validateBatch checks every item and reports all failures at once, so an
// ingestion caller can fix a whole snapshot in one pass.
func validateBatch(raws []models.RawProduct) error {
	var failures []string
	for i, raw := range raws {
		if verr := validation.ValidateStruct(&raw); verr != nil {
			failures = append(failures, fmt.Sprintf("item %d (id %q): %s", i, raw.ID, verr.Error()))
		}
	}
	if len(failures) > 0 {
		return fmt.Errorf("%w: %s", ErrMalformedProduct, joinFailures(failures))
	}
	return nil
}

func joinFailures(failures []string) string {
	out := failures[0]
	for _, f := range failures[1:] {
		out += "; " + f
	}
	return out
}
