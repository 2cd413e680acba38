// K-Beauty Hub - Product Knowledge Base and Recommendation Engine
// Copyright 2026 Monaim Knight (Monaim-knight)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Monaim-knight/k-beauty-hub-sub000

// Package catalog adapts the external product catalog boundary: it parses
// catalog snapshots (a JSON array of raw products) supplied by catalog
// management. It never touches the knowledge store itself; callers feed the
// parsed products to the knowledge base facade.
package catalog

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"

	"github.com/Monaim-knight/k-beauty-hub-sub000/internal/models"
)

// Parse decodes a catalog snapshot from r. The snapshot is a JSON array of
// raw products in the catalog wire shape. Structural validation of the
// individual products happens at the knowledge base ingestion boundary, not
// here; Parse only rejects malformed JSON.
func Parse(r io.Reader) ([]models.RawProduct, error) {
	var products []models.RawProduct
	dec := json.NewDecoder(r)
	if err := dec.Decode(&products); err != nil {
		return nil, fmt.Errorf("failed to decode catalog snapshot: %w", err)
	}
	return products, nil
}

// Load reads and decodes a catalog snapshot file.
func Load(path string) ([]models.RawProduct, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog snapshot: %w", err)
	}
	defer f.Close()

	products, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("catalog snapshot %s: %w", path, err)
	}
	return products, nil
}
