// K-Beauty Hub - Product Knowledge Base and Recommendation Engine
// Copyright 2026 Monaim Knight (Monaim-knight)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Monaim-knight/k-beauty-hub-sub000

// Package models defines the data shapes exchanged between the external
// product catalog, the knowledge base, and its consumers.
package models

import (
	"time"
)

// RawProduct is the catalog-supplied shape of a product. It carries no
// derived attributes; those are computed by the knowledge base on ingest.
//
// Business rules on these fields (e.g. OriginalPrice >= Price) belong to
// catalog management and are deliberately not validated here. Only the
// structural contract is enforced at the ingestion boundary.
type RawProduct struct {
	ID            string  `json:"id" validate:"required"`
	Name          string  `json:"name" validate:"required"`
	Description   string  `json:"description"`
	Price         float64 `json:"price" validate:"min=0"`
	OriginalPrice float64 `json:"original_price" validate:"min=0"`
	Category      string  `json:"category"`
	Rating        float64 `json:"rating" validate:"min=0,max=5"`
	ReviewCount   int     `json:"review_count" validate:"min=0"`
	InStock       bool    `json:"in_stock"`
	IsNew         bool    `json:"is_new"`
	IsFeatured    bool    `json:"is_featured"`
}

// ProductRecord is a raw product enriched with derived attributes. Records
// are owned by the knowledge store; the derived fields are always recomputed
// from (Name, Description, Category) on ingest and never accepted from the
// caller.
type ProductRecord struct {
	RawProduct

	// Derived attribute sets, in deterministic vocabulary order.
	Keywords    []string `json:"keywords"`
	Benefits    []string `json:"benefits"`
	SkinTypes   []string `json:"skin_types"`
	Ingredients []string `json:"ingredients"`

	// UsageHints is an ordered sequence of routine-step hints.
	UsageHints []string `json:"usage_hints"`

	// AddedAt is set once at ingestion and never mutated, even when the
	// same id is re-ingested.
	AddedAt time.Time `json:"added_at"`
}

// Preferences describes a consumer's personalization input for
// recommendation scoring. Both fields are optional; an empty value yields a
// "generally well-regarded products" ranking.
type Preferences struct {
	SkinType string   `json:"skin_type,omitempty"`
	Benefits []string `json:"benefits,omitempty"`
}

// Stats is the knowledge base statistics snapshot for dashboards.
type Stats struct {
	TotalProducts int             `json:"total_products"`
	Categories    []string        `json:"categories"`
	TotalQueries  int64           `json:"total_queries"`
	TopProducts   []ProductRecord `json:"top_products"`
}

// HasBenefit reports whether the record's derived benefit set contains the
// given label.
func (p *ProductRecord) HasBenefit(label string) bool {
	for _, b := range p.Benefits {
		if b == label {
			return true
		}
	}
	return false
}

// HasSkinType reports whether the record's derived skin-type set contains
// the given label.
func (p *ProductRecord) HasSkinType(label string) bool {
	for _, s := range p.SkinTypes {
		if s == label {
			return true
		}
	}
	return false
}
