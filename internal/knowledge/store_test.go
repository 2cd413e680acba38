// K-Beauty Hub - Product Knowledge Base and Recommendation Engine
// Copyright 2026 Monaim Knight (Monaim-knight)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Monaim-knight/k-beauty-hub-sub000

package knowledge

import (
	"fmt"
	"reflect"
	"sync"
	"testing"

	"github.com/Monaim-knight/k-beauty-hub-sub000/internal/models"
)

func rawProduct(id, name, category string) models.RawProduct {
	return models.RawProduct{
		ID:       id,
		Name:     name,
		Category: category,
	}
}

func storeIDs(records []models.ProductRecord) []string {
	ids := make([]string, len(records))
	for i, r := range records {
		ids[i] = r.ID
	}
	return ids
}

func TestStore_UpsertGet(t *testing.T) {
	s := NewStore()
	s.Upsert(snailEssence())

	rec, ok := s.Get("cosrx-snail-96")
	if !ok {
		t.Fatal("Get() = false, want true")
	}
	if rec.Name != "COSRX Advanced Snail 96 Mucin Power Essence" {
		t.Errorf("Name = %q", rec.Name)
	}
	if len(rec.Keywords) == 0 || len(rec.SkinTypes) == 0 || len(rec.UsageHints) == 0 {
		t.Error("derived fields should be populated on ingest")
	}
	if rec.AddedAt.IsZero() {
		t.Error("AddedAt should be set on ingest")
	}
}

func TestStore_ReingestIsIdempotent(t *testing.T) {
	s := NewStore()
	raw := snailEssence()

	s.Upsert(raw)
	s.IncrementAnalytics(raw.ID)
	s.IncrementAnalytics(raw.ID)
	first, _ := s.Get(raw.ID)

	s.Upsert(raw)

	if s.Len() != 1 {
		t.Errorf("Len() = %d after re-ingest, want 1", s.Len())
	}
	if got := s.Counter(raw.ID); got != 2 {
		t.Errorf("Counter() = %d after re-ingest, want 2 (preserved)", got)
	}
	second, _ := s.Get(raw.ID)
	if !second.AddedAt.Equal(first.AddedAt) {
		t.Errorf("AddedAt changed on re-ingest: %v vs %v", second.AddedAt, first.AddedAt)
	}
}

func TestStore_ReingestReplacesWholesale(t *testing.T) {
	s := NewStore()
	s.Upsert(models.RawProduct{
		ID:          "p1",
		Name:        "Hydrating Toner",
		Description: "Deep hydration for dry skin",
		Category:    "skincare",
	})

	// Re-ingest with different text: derived fields must be recomputed,
	// not merged.
	s.Upsert(models.RawProduct{
		ID:          "p1",
		Name:        "Soothing Toner",
		Description: "Calms sensitive skin",
		Category:    "skincare",
	})

	rec, _ := s.Get("p1")
	if rec.HasBenefit("Hydration") {
		t.Errorf("Benefits = %v, stale Hydration label survived re-ingest", rec.Benefits)
	}
	if !rec.HasBenefit("Soothing") {
		t.Errorf("Benefits = %v, want Soothing", rec.Benefits)
	}
}

func TestStore_Remove(t *testing.T) {
	s := NewStore()
	s.Upsert(rawProduct("p1", "Toner", "skincare"))
	s.IncrementAnalytics("p1")

	if !s.Remove("p1") {
		t.Error("Remove(p1) = false, want true")
	}
	if s.Remove("p1") {
		t.Error("Remove(p1) twice = true, want false")
	}
	if _, ok := s.Get("p1"); ok {
		t.Error("Get() = true after Remove")
	}
	if got := s.Counter("p1"); got != 0 {
		t.Errorf("Counter() = %d after Remove, want 0", got)
	}
	if got := s.TotalHits(); got != 0 {
		t.Errorf("TotalHits() = %d after Remove, want 0", got)
	}
}

func TestStore_AllInsertionOrder(t *testing.T) {
	s := NewStore()
	s.Upsert(rawProduct("c", "Cleanser", "skincare"))
	s.Upsert(rawProduct("a", "Toner", "skincare"))
	s.Upsert(rawProduct("b", "Essence", "skincare"))

	// Re-ingesting keeps the original order slot.
	s.Upsert(rawProduct("c", "Foam Cleanser", "skincare"))

	got := storeIDs(s.All())
	expected := []string{"c", "a", "b"}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("All() order = %v, want %v", got, expected)
	}
}

func TestStore_IncrementAnalyticsUnknownID(t *testing.T) {
	s := NewStore()

	// Must never fail, and must not create a dangling counter.
	s.IncrementAnalytics("ghost")

	if got := s.TotalHits(); got != 0 {
		t.Errorf("TotalHits() = %d, want 0", got)
	}
}

func TestStore_Categories(t *testing.T) {
	s := NewStore()
	s.Upsert(rawProduct("p1", "Toner", "skincare"))
	s.Upsert(rawProduct("p2", "Lip Tint", "makeup"))
	s.Upsert(rawProduct("p3", "Essence", "skincare"))
	s.Upsert(rawProduct("p4", "Body Lotion", "bodycare"))

	got := s.Categories()
	expected := []string{"bodycare", "makeup", "skincare"}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Categories() = %v, want %v", got, expected)
	}
}

func TestStore_Resync(t *testing.T) {
	s := NewStore()
	s.Upsert(rawProduct("old1", "Toner", "skincare"))
	s.Upsert(rawProduct("old2", "Essence", "skincare"))
	s.IncrementAnalytics("old1")

	fresh := []models.RawProduct{
		rawProduct("new1", "Cleanser", "skincare"),
		rawProduct("old2", "Essence", "skincare"),
	}
	s.Resync(fresh)

	if s.Len() != 2 {
		t.Errorf("Len() = %d after resync, want 2", s.Len())
	}
	if _, ok := s.Get("old1"); ok {
		t.Error("old1 should not survive resync")
	}
	if got := s.TotalHits(); got != 0 {
		t.Errorf("TotalHits() = %d after resync, want 0 (counters cleared)", got)
	}
	// Even the surviving id's counter is reset: resync is destructive.
	if got := s.Counter("old2"); got != 0 {
		t.Errorf("Counter(old2) = %d after resync, want 0", got)
	}

	got := storeIDs(s.All())
	if !reflect.DeepEqual(got, []string{"new1", "old2"}) {
		t.Errorf("All() order = %v, want [new1 old2]", got)
	}
}

func TestStore_ResyncDuplicateIDsLastWriteWins(t *testing.T) {
	s := NewStore()
	s.Resync([]models.RawProduct{
		rawProduct("p1", "First Name", "skincare"),
		rawProduct("p1", "Second Name", "skincare"),
	})

	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
	rec, _ := s.Get("p1")
	if rec.Name != "Second Name" {
		t.Errorf("Name = %q, want Second Name (last write wins)", rec.Name)
	}
}

func TestStore_ConcurrentReadersAndWriters(t *testing.T) {
	s := NewStore()
	for i := 0; i < 20; i++ {
		s.Upsert(rawProduct(fmt.Sprintf("p%d", i), "Hydrating Toner", "skincare"))
	}

	var wg sync.WaitGroup
	for g := 0; g < 4; g++ {
		wg.Add(3)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				s.Search("hydrating")
				s.Trending(5)
				s.All()
			}
		}(g)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				id := fmt.Sprintf("p%d", (g*100+i)%20)
				s.IncrementAnalytics(id)
				s.Upsert(rawProduct(id, "Hydrating Toner", "skincare"))
			}
		}(g)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 20; i++ {
				s.Resync([]models.RawProduct{
					rawProduct("p0", "Hydrating Toner", "skincare"),
					rawProduct("p1", "Soothing Essence", "skincare"),
				})
			}
		}(g)
	}
	wg.Wait()

	// Readers during a resync must see either the old or the new catalog,
	// never a partial one. A final resync establishes a known state.
	s.Resync([]models.RawProduct{rawProduct("p0", "Hydrating Toner", "skincare")})
	if got := s.Len(); got != 1 {
		t.Errorf("Len() = %d after final resync, want 1", got)
	}
}
