// K-Beauty Hub - Product Knowledge Base and Recommendation Engine
// Copyright 2026 Monaim Knight (Monaim-knight)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Monaim-knight/k-beauty-hub-sub000

package knowledge

import (
	"strings"

	"github.com/Monaim-knight/k-beauty-hub-sub000/internal/models"
)

// DerivedAttributes is the output of attribute extraction: the keyword,
// benefit, skin-type, and ingredient sets plus the routine-step hint for an
// enriched product record.
type DerivedAttributes struct {
	Keywords    []string
	Benefits    []string
	SkinTypes   []string
	Ingredients []string
	UsageHints  []string
}

// Extract derives attributes from a raw product by matching the vocabulary
// tables against its normalized text. It is a pure function of
// (Name, Description, Category): re-extracting the same input always yields
// identical output, in vocabulary table order.
//
// Extract never fails and never returns an empty skin-type set or an empty
// usage-hint sequence; absent matches degrade to the documented fallbacks.
func Extract(raw models.RawProduct) DerivedAttributes {
	blob := normalize(raw)

	attrs := DerivedAttributes{
		Keywords:    keywordMatcher.Labels(blob),
		Benefits:    benefitMatcher.Labels(blob),
		SkinTypes:   skinTypeMatcher.Labels(blob),
		Ingredients: ingredientMatcher.Labels(blob),
	}

	if len(attrs.SkinTypes) == 0 {
		attrs.SkinTypes = []string{SkinTypeFallback}
	}
	attrs.UsageHints = []string{usageHint(raw.Category, raw.Name)}

	return attrs
}

// normalize folds the match-relevant text fields into one lowercase blob.
// Matching is pure substring containment over this blob: no tokenization,
// no stemming.
func normalize(raw models.RawProduct) string {
	return strings.ToLower(raw.Name + " " + raw.Description + " " + raw.Category)
}

// usageHint resolves the single routine-step hint for a product. Skincare
// products are matched against the routine-step rules by name, in rule
// order; other categories get the generic hint.
func usageHint(category, name string) string {
	if !strings.EqualFold(strings.TrimSpace(category), CategorySkincare) {
		return GenericUsageHint
	}

	lowered := strings.ToLower(name)
	for _, r := range routineHints {
		if strings.Contains(lowered, r.trigger) {
			return r.label
		}
	}
	return FallbackUsageHint
}
