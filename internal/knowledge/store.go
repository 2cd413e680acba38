// K-Beauty Hub - Product Knowledge Base and Recommendation Engine
// Copyright 2026 Monaim Knight (Monaim-knight)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Monaim-knight/k-beauty-hub-sub000

package knowledge

import (
	"sort"
	"sync"
	"time"

	"github.com/Monaim-knight/k-beauty-hub-sub000/internal/models"
)

// Store is the authoritative in-memory product collection: enriched records
// and their analytics counters, keyed by product id.
//
// A single RWMutex guards the whole store: reads run concurrently, writes
// are exclusive, and Resync swaps the full contents under the write lock so
// readers never observe a partially rebuilt store.
//
// Map iteration order is never exposed. An explicit insertion-order index
// backs every listing and every tie-break observable to callers.
type Store struct {
	mu       sync.RWMutex
	records  map[string]models.ProductRecord
	counters map[string]int64
	order    []string // product ids in first-ingest order
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		records:  make(map[string]models.ProductRecord),
		counters: make(map[string]int64),
	}
}

// Upsert extracts attributes for raw and inserts or replaces its enriched
// record. Re-ingesting an existing id replaces the record wholesale
// (derived fields recomputed, no partial merge) but preserves its analytics
// counter, its first-ingest order slot, and its original AddedAt.
func (s *Store) Upsert(raw models.RawProduct) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.upsertLocked(raw)
}

func (s *Store) upsertLocked(raw models.RawProduct) {
	attrs := Extract(raw)
	rec := models.ProductRecord{
		RawProduct:  raw,
		Keywords:    attrs.Keywords,
		Benefits:    attrs.Benefits,
		SkinTypes:   attrs.SkinTypes,
		Ingredients: attrs.Ingredients,
		UsageHints:  attrs.UsageHints,
		AddedAt:     time.Now(),
	}

	if prev, exists := s.records[raw.ID]; exists {
		rec.AddedAt = prev.AddedAt
	} else {
		s.order = append(s.order, raw.ID)
	}
	s.records[raw.ID] = rec

	if _, exists := s.counters[raw.ID]; !exists {
		s.counters[raw.ID] = 0
	}
}

// Remove deletes the record and its analytics counter for id. It reports
// whether a record existed.
func (s *Store) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.records[id]; !exists {
		return false
	}
	delete(s.records, id)
	delete(s.counters, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// Get returns the enriched record for id.
func (s *Store) Get(id string) (models.ProductRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[id]
	return rec, ok
}

// All returns a snapshot of every record in first-ingest order.
func (s *Store) All() []models.ProductRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.ProductRecord, 0, len(s.order))
	for _, id := range s.order {
		if rec, ok := s.records[id]; ok {
			out = append(out, rec)
		}
	}
	return out
}

// Len returns the number of records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// IncrementAnalytics adds one qualifying access to id's counter. It never
// fails: incrementing an id with no record is a no-op, so the analytics
// path stays non-erroring for callers.
func (s *Store) IncrementAnalytics(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.records[id]; !exists {
		return
	}
	s.counters[id]++
}

// Counter returns the analytics counter for id (zero if absent).
func (s *Store) Counter(id string) int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.counters[id]
}

// TotalHits returns the sum of all analytics counters.
func (s *Store) TotalHits() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total int64
	for _, n := range s.counters {
		total += n
	}
	return total
}

// Categories returns the distinct categories currently present, sorted.
func (s *Store) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{})
	for _, rec := range s.records {
		if rec.Category == "" {
			continue
		}
		seen[rec.Category] = struct{}{}
	}

	out := make([]string, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// Resync atomically replaces the entire store contents with raws: all
// records AND all analytics counters are cleared, then every item is
// upserted. This is a destructive full rebuild, unlike bulk upsert which
// leaves unlisted items untouched. Readers never observe the intermediate
// state.
func (s *Store) Resync(raws []models.RawProduct) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = make(map[string]models.ProductRecord, len(raws))
	s.counters = make(map[string]int64, len(raws))
	s.order = s.order[:0]

	for _, raw := range raws {
		s.upsertLocked(raw)
	}
}
