// K-Beauty Hub - Product Knowledge Base and Recommendation Engine
// Copyright 2026 Monaim Knight (Monaim-knight)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Monaim-knight/k-beauty-hub-sub000

package knowledge

import (
	"github.com/Monaim-knight/k-beauty-hub-sub000/internal/models"
)

// Preference scoring terms. Personalization terms dominate; rating and
// review volume act as quality priors so an empty preference set still
// yields a "generally well-regarded products" ranking.
const (
	skinTypeBonus = 5.0
	benefitBonus  = 3.0 // per matching benefit, uncapped
	ratingFactor  = 0.5
	reviewDivisor = 100.0
	reviewCap     = 5.0
)

// Recommend scores every record against prefs and returns the top limit
// records with score > 0, ordered by descending score, ties in first-ingest
// order.
func (s *Store) Recommend(prefs models.Preferences, limit int) []models.ProductRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var results []scored
	for _, id := range s.order {
		rec, ok := s.records[id]
		if !ok {
			continue
		}
		if score := preferenceScore(rec, prefs); score > 0 {
			results = append(results, scored{rec: rec, score: score})
		}
	}

	sortScoredDesc(results)
	return collectRecords(results, limit)
}

// preferenceScore computes the personalization score of rec for prefs.
func preferenceScore(rec models.ProductRecord, prefs models.Preferences) float64 {
	score := 0.0

	if prefs.SkinType != "" && rec.HasSkinType(prefs.SkinType) {
		score += skinTypeBonus
	}
	for _, b := range prefs.Benefits {
		if rec.HasBenefit(b) {
			score += benefitBonus
		}
	}

	score += rec.Rating * ratingFactor

	reviewScore := float64(rec.ReviewCount) / reviewDivisor
	if reviewScore > reviewCap {
		reviewScore = reviewCap
	}
	score += reviewScore

	return score
}

// Trending returns up to limit records ordered by analytics counter
// descending, ties in first-ingest order. Counters whose record has been
// removed are silently skipped.
func (s *Store) Trending(limit int) []models.ProductRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var results []scored
	for _, id := range s.order {
		rec, ok := s.records[id]
		if !ok {
			continue
		}
		results = append(results, scored{rec: rec, score: float64(s.counters[id])})
	}

	sortScoredDesc(results)
	return collectRecords(results, limit)
}
