// K-Beauty Hub - Product Knowledge Base and Recommendation Engine
// Copyright 2026 Monaim Knight (Monaim-knight)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Monaim-knight/k-beauty-hub-sub000

package knowledge

import (
	"github.com/Monaim-knight/k-beauty-hub-sub000/internal/textmatch"
)

// Vocabulary tables for attribute derivation. These are pure data: the
// matching loop lives in the textmatch package and the extractor. Table
// order is significant: derived sets come out in table order, which keeps
// extraction output deterministic.

// keywordTerms is the beauty-domain keyword vocabulary. A term is included
// in a product's keyword set iff it occurs as a substring of the normalized
// product text.
var keywordTerms = []string{
	"hydration",
	"hydrating",
	"moisturizing",
	"brightening",
	"glow",
	"glowing",
	"radiance",
	"snail",
	"mucin",
	"essence",
	"serum",
	"ampoule",
	"toner",
	"cleanser",
	"cream",
	"lotion",
	"mask",
	"sunscreen",
	"spf",
	"niacinamide",
	"retinol",
	"collagen",
	"ceramide",
	"peptide",
	"soothing",
	"calming",
	"gentle",
	"acne",
	"blemish",
	"pore",
	"sebum",
	"wrinkle",
	"firming",
	"anti-aging",
	"exfoliating",
	"plump",
	"dewy",
	"matte",
	"lightweight",
	"nourishing",
}

// rule is a trigger-substring to output-label pair. A rule fires when its
// trigger occurs anywhere in the normalized product text.
type rule struct {
	trigger string
	label   string
}

// benefitRules maps description language to benefit labels. Several
// triggers share a label; duplicates collapse in the output set.
var benefitRules = []rule{
	{"hydrat", "Hydration"},
	{"moistur", "Hydration"},
	{"plump", "Hydration"},
	{"bright", "Brightening"},
	{"glow", "Brightening"},
	{"radian", "Brightening"},
	{"dark spot", "Brightening"},
	{"anti-aging", "Anti-Aging"},
	{"wrinkle", "Anti-Aging"},
	{"firm", "Anti-Aging"},
	{"elastic", "Anti-Aging"},
	{"sooth", "Soothing"},
	{"calm", "Soothing"},
	{"irritat", "Soothing"},
	{"acne", "Acne Care"},
	{"blemish", "Acne Care"},
	{"breakout", "Acne Care"},
	{"trouble", "Acne Care"},
	{"pore", "Pore Care"},
	{"sebum", "Pore Care"},
	{"blackhead", "Pore Care"},
	{"spf", "UV Protection"},
	{"sunscreen", "UV Protection"},
	{"sun protection", "UV Protection"},
	{"exfoliat", "Exfoliation"},
	{"peeling", "Exfoliation"},
	{"nourish", "Nourishment"},
	{"repair", "Barrier Repair"},
	{"barrier", "Barrier Repair"},
}

// SkinTypeFallback is emitted when no skin-type rule fires. The skin-type
// set is never empty.
const SkinTypeFallback = "All Skin Types"

// skinTypeRules maps skin-type markers to canonical labels.
var skinTypeRules = []rule{
	{"dry skin", "Dry Skin"},
	{"dryness", "Dry Skin"},
	{"dehydrat", "Dry Skin"},
	{"oily", "Oily Skin"},
	{"sebum", "Oily Skin"},
	{"combination", "Combination Skin"},
	{"sensitive", "Sensitive Skin"},
	{"gentle", "Sensitive Skin"},
	{"all skin types", "All Skin Types"},
}

// ingredientTerms is the cosmetic actives and extracts vocabulary.
var ingredientTerms = []string{
	"snail mucin",
	"snail secretion",
	"niacinamide",
	"hyaluronic acid",
	"centella asiatica",
	"cica",
	"green tea",
	"tea tree",
	"vitamin c",
	"vitamin e",
	"retinol",
	"ceramide",
	"collagen",
	"peptide",
	"propolis",
	"honey",
	"rice extract",
	"ginseng",
	"mugwort",
	"aloe vera",
	"salicylic acid",
	"glycolic acid",
	"lactic acid",
	"panthenol",
	"squalane",
	"shea butter",
	"licorice",
	"bamboo",
	"birch juice",
	"galactomyces",
}

// CategorySkincare is the category whose products get routine-step hints.
const CategorySkincare = "skincare"

// routineHints maps product-name substrings to routine-step hints for
// skincare products. Evaluated in order; the first match wins.
var routineHints = []rule{
	{"cleansing", "Use as the first step of your routine"},
	{"cleanser", "Use as the first step of your routine"},
	{"toner", "Apply after cleansing"},
	{"essence", "Apply after toner, before serum"},
	{"ampoule", "Apply after essence, before moisturizer"},
	{"serum", "Apply after essence, before moisturizer"},
	{"moisturizer", "Apply as the final step of your evening routine"},
	{"cream", "Apply as the final step of your evening routine"},
	{"mask", "Use 1-2 times a week after cleansing"},
	{"sunscreen", "Apply every morning as the last step of your routine"},
	{"spf", "Apply every morning as the last step of your routine"},
}

// GenericUsageHint is emitted for non-skincare categories.
const GenericUsageHint = "Use as directed for best results"

// FallbackUsageHint is emitted when no routine-step rule matches.
const FallbackUsageHint = "Follow product instructions"

// Prebuilt matchers over the tables above. Built once at package init and
// read-only afterwards, so extraction stays lock-free.
var (
	keywordMatcher    = newTermMatcher(keywordTerms)
	benefitMatcher    = newRuleMatcher(benefitRules)
	skinTypeMatcher   = newRuleMatcher(skinTypeRules)
	ingredientMatcher = newTermMatcher(ingredientTerms)
)

func newTermMatcher(terms []string) *textmatch.Matcher {
	m := textmatch.New()
	m.AddTerms(terms...)
	return m.Build()
}

func newRuleMatcher(rules []rule) *textmatch.Matcher {
	m := textmatch.New()
	for _, r := range rules {
		m.Add(r.trigger, r.label)
	}
	return m.Build()
}
