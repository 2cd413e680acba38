// K-Beauty Hub - Product Knowledge Base and Recommendation Engine
// Copyright 2026 Monaim Knight (Monaim-knight)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Monaim-knight/k-beauty-hub-sub000

package knowledge

import (
	"sort"
	"strings"

	"github.com/Monaim-knight/k-beauty-hub-sub000/internal/models"
)

// Relevance weights for scored search. Weights are additive and
// non-negative; a criterion contributes at most once per record.
const (
	weightName        = 10
	weightCategory    = 5
	weightKeyword     = 3
	weightBenefit     = 3
	weightIngredient  = 2
	weightDescription = 1
)

// scored pairs a record with its relevance score for sorting.
type scored struct {
	rec   models.ProductRecord
	score float64
}

// sortScoredDesc orders by score descending. The sort is stable and the
// input is built in first-ingest order, so equal scores keep first-ingest
// order. That is the tie-break contract observable to callers.
func sortScoredDesc(items []scored) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].score > items[j].score
	})
}

func collectRecords(items []scored, limit int) []models.ProductRecord {
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	out := make([]models.ProductRecord, len(items))
	for i, it := range items {
		out[i] = it.rec
	}
	return out
}

// Search scores every record against query and returns matches ordered by
// descending relevance, ties in first-ingest order. Records that match no
// criterion are excluded. A blank query returns no results.
//
// Search is read-only: it never touches analytics counters. Hit recording
// is the caller's explicit responsibility.
func (s *Store) Search(query string) []models.ProductRecord {
	q := normalizeQuery(query)
	if q == "" {
		return nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var results []scored
	for _, id := range s.order {
		rec, ok := s.records[id]
		if !ok {
			continue
		}
		if score := relevance(rec, q); score > 0 {
			results = append(results, scored{rec: rec, score: float64(score)})
		}
	}

	sortScoredDesc(results)
	return collectRecords(results, 0)
}

// relevance computes the integer relevance score of rec for the lowered
// query q.
func relevance(rec models.ProductRecord, q string) int {
	score := 0
	if strings.Contains(strings.ToLower(rec.Name), q) {
		score += weightName
	}
	if strings.Contains(strings.ToLower(rec.Category), q) {
		score += weightCategory
	}
	if anyContains(rec.Keywords, q) {
		score += weightKeyword
	}
	if anyContains(rec.Benefits, q) {
		score += weightBenefit
	}
	if anyContains(rec.Ingredients, q) {
		score += weightIngredient
	}
	if strings.Contains(strings.ToLower(rec.Description), q) {
		score += weightDescription
	}
	return score
}

// normalizeQuery lowers and trims a query string. Scoring and the search
// cache share this normalization.
func normalizeQuery(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// anyContains reports whether any element of set contains q as a substring.
func anyContains(set []string, q string) bool {
	for _, s := range set {
		if strings.Contains(strings.ToLower(s), q) {
			return true
		}
	}
	return false
}
