// K-Beauty Hub - Product Knowledge Base and Recommendation Engine
// Copyright 2026 Monaim Knight (Monaim-knight)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Monaim-knight/k-beauty-hub-sub000

package knowledge

import (
	"reflect"
	"testing"

	"github.com/Monaim-knight/k-beauty-hub-sub000/internal/models"
)

func TestSearch_SnailScenario(t *testing.T) {
	s := NewStore()
	s.Upsert(snailEssence())

	results := s.Search("snail")
	if len(results) != 1 {
		t.Fatalf("Search(snail) returned %d results, want 1", len(results))
	}

	rec, _ := s.Get("cosrx-snail-96")
	// Name (10) + keyword (3) + ingredient (2) + description (1) = 16.
	if got := relevance(rec, "snail"); got != 16 {
		t.Errorf("relevance = %d, want 16", got)
	}
}

func TestSearch_Weights(t *testing.T) {
	rec := models.ProductRecord{
		RawProduct: models.RawProduct{
			ID:          "p",
			Name:        "Rice Toner",
			Description: "A mild daily toner with rice extract",
			Category:    "skincare",
		},
		Keywords:    []string{"toner", "rice"},
		Benefits:    []string{"Hydration"},
		Ingredients: []string{"rice extract"},
	}

	tests := []struct {
		name     string
		query    string
		expected int
	}{
		{"name+keyword+ingredient+description", "rice", 10 + 3 + 2 + 1},
		{"category only", "skincare", 5},
		{"benefit only", "hydration", 3},
		{"description only", "mild", 1},
		{"no criterion", "retinol", 0},
		{"query is case-insensitive", "RICE", 10 + 3 + 2 + 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := relevance(rec, normalizeQuery(tt.query)); got != tt.expected {
				t.Errorf("relevance(%q) = %d, want %d", tt.query, got, tt.expected)
			}
		})
	}
}

func TestSearch_ExcludesZeroScores(t *testing.T) {
	s := NewStore()
	s.Upsert(rawProduct("p1", "Snail Essence", "skincare"))
	s.Upsert(rawProduct("p2", "Velvet Lip Tint", "makeup"))

	results := s.Search("snail")
	if got := storeIDs(results); !reflect.DeepEqual(got, []string{"p1"}) {
		t.Errorf("Search(snail) = %v, want [p1]", got)
	}
}

func TestSearch_OrdersByScoreDescending(t *testing.T) {
	s := NewStore()
	// Ingredient + description match only.
	s.Upsert(models.RawProduct{ID: "weak", Name: "Daily Cream", Description: "with a hint of ginseng", Category: "skincare"})
	// Name match on top of that scores strictly higher.
	s.Upsert(models.RawProduct{ID: "strong", Name: "Ginseng Essence", Description: "concentrated ginseng root", Category: "skincare"})

	got := storeIDs(s.Search("ginseng"))
	if !reflect.DeepEqual(got, []string{"strong", "weak"}) {
		t.Errorf("Search order = %v, want [strong weak]", got)
	}
}

func TestSearch_TieBreakIsInsertionOrder(t *testing.T) {
	s := NewStore()
	s.Upsert(rawProduct("first", "Rose Water", "bodycare"))
	s.Upsert(rawProduct("second", "Rose Water", "bodycare"))
	s.Upsert(rawProduct("third", "Rose Water", "bodycare"))

	got := storeIDs(s.Search("rose"))
	expected := []string{"first", "second", "third"}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Search tie order = %v, want %v", got, expected)
	}

	// Removing and re-ingesting moves a product to the back of the order.
	s.Remove("first")
	s.Upsert(rawProduct("first", "Rose Water", "bodycare"))
	got = storeIDs(s.Search("rose"))
	expected = []string{"second", "third", "first"}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Search tie order after re-add = %v, want %v", got, expected)
	}
}

func TestSearch_BlankQuery(t *testing.T) {
	s := NewStore()
	s.Upsert(snailEssence())

	if got := s.Search(""); got != nil {
		t.Errorf("Search(\"\") = %v, want nil", got)
	}
	if got := s.Search("   "); got != nil {
		t.Errorf("Search(whitespace) = %v, want nil", got)
	}
}

func TestSearch_DoesNotMutateAnalytics(t *testing.T) {
	s := NewStore()
	s.Upsert(snailEssence())

	s.Search("snail")
	s.Search("snail")

	if got := s.TotalHits(); got != 0 {
		t.Errorf("TotalHits() = %d after searches, want 0 (search is read-only)", got)
	}
}

func TestSearch_Monotonicity(t *testing.T) {
	// A query matching strictly more criteria never scores lower.
	rec := models.ProductRecord{
		RawProduct: models.RawProduct{
			ID:          "p",
			Name:        "Green Tea Serum",
			Description: "antioxidant green tea serum",
			Category:    "skincare",
		},
		Keywords:    []string{"serum", "green tea"},
		Ingredients: []string{"green tea"},
	}

	// "green tea" matches name, keyword, ingredient, description;
	// "antioxidant" matches description only.
	more := relevance(rec, "green tea")
	fewer := relevance(rec, "antioxidant")
	if more < fewer {
		t.Errorf("relevance(green tea) = %d < relevance(antioxidant) = %d", more, fewer)
	}
}
