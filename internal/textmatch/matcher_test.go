// K-Beauty Hub - Product Knowledge Base and Recommendation Engine
// Copyright 2026 Monaim Knight (Monaim-knight)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Monaim-knight/k-beauty-hub-sub000

package textmatch

import (
	"reflect"
	"testing"
)

func TestMatcher_Labels(t *testing.T) {
	m := New()
	m.Add("hydrat", "Hydration")
	m.Add("moistur", "Hydration")
	m.Add("bright", "Brightening")
	m.Add("sooth", "Soothing")
	m.Build()

	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "single trigger",
			text:     "a brightening toner",
			expected: []string{"Brightening"},
		},
		{
			name:     "two triggers one label collapses",
			text:     "hydrating and moisturizing cream",
			expected: []string{"Hydration"},
		},
		{
			name:     "labels in registration order not text order",
			text:     "soothing then brightening then hydrating",
			expected: []string{"Hydration", "Brightening", "Soothing"},
		},
		{
			name:     "case insensitive",
			text:     "HYDRATING ESSENCE",
			expected: []string{"Hydration"},
		},
		{
			name:     "no triggers",
			text:     "plain water",
			expected: nil,
		},
		{
			name:     "empty text",
			text:     "",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := m.Labels(tt.text)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("Labels(%q) = %v, want %v", tt.text, result, tt.expected)
			}
		})
	}
}

func TestMatcher_OverlappingPatterns(t *testing.T) {
	m := New()
	m.AddTerms("glow", "glowing", "snail", "snail mucin")
	m.Build()

	result := m.Labels("glowing skin with snail mucin")
	expected := []string{"glow", "glowing", "snail", "snail mucin"}
	if !reflect.DeepEqual(result, expected) {
		t.Errorf("Labels() = %v, want %v", result, expected)
	}
}

func TestMatcher_SubstringMidWord(t *testing.T) {
	// Pure substring containment: no token boundaries.
	m := New()
	m.Add("hydrat", "Hydration")
	m.Build()

	if got := m.Labels("dehydrated skin"); !reflect.DeepEqual(got, []string{"Hydration"}) {
		t.Errorf("Labels() = %v, want [Hydration]", got)
	}
}

func TestMatcher_Matches(t *testing.T) {
	m := New()
	m.AddTerms("toner", "essence")
	m.Build()

	if !m.Matches("rice toner") {
		t.Error("Matches() = false, want true")
	}
	if m.Matches("lipstick") {
		t.Error("Matches() = true, want false")
	}
}

func TestMatcher_EmptyAndUnbuilt(t *testing.T) {
	t.Run("empty matcher", func(t *testing.T) {
		m := New().Build()
		if got := m.Labels("anything"); got != nil {
			t.Errorf("Labels() = %v, want nil", got)
		}
	})

	t.Run("unbuilt matcher returns nothing", func(t *testing.T) {
		m := New()
		m.Add("snail", "snail")
		if got := m.Labels("snail"); got != nil {
			t.Errorf("Labels() = %v, want nil before Build", got)
		}
	})

	t.Run("empty trigger ignored", func(t *testing.T) {
		m := New()
		m.Add("", "nothing")
		m.Build()
		if m.Len() != 0 {
			t.Errorf("Len() = %d, want 0", m.Len())
		}
	})
}

func TestMatcher_Deterministic(t *testing.T) {
	m := New()
	m.AddTerms("snail", "mucin", "essence", "glow")
	m.Build()

	text := "snail mucin essence for a healthy glow"
	first := m.Labels(text)
	for i := 0; i < 50; i++ {
		if got := m.Labels(text); !reflect.DeepEqual(got, first) {
			t.Fatalf("Labels() varied across calls: %v vs %v", got, first)
		}
	}
}
