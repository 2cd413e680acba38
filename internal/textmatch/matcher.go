// K-Beauty Hub - Product Knowledge Base and Recommendation Engine
// Copyright 2026 Monaim Knight (Monaim-knight)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Monaim-knight/k-beauty-hub-sub000

// Package textmatch provides multi-pattern substring matching using the
// Aho-Corasick algorithm. It finds every vocabulary term present in a text
// in O(n + m + z) time instead of scanning the text once per term.
//
// The knowledge base uses one Matcher per vocabulary table (keywords,
// benefit rules, skin-type rules, ingredients). Matching is pure substring
// containment: no tokenization, no stemming.
package textmatch

import (
	"strings"
)

// Matcher is a build-once automaton over (trigger, label) pairs. Several
// triggers may share one label (e.g. "hydrat" and "moistur" both labelled
// "Hydration"); Labels collapses duplicates.
//
// A Matcher is immutable after Build and safe for concurrent readers.
// Add and Build are not safe to call concurrently with reads.
type Matcher struct {
	root     *node
	patterns []pattern
	built    bool
}

// pattern is a trigger substring with its output label.
type pattern struct {
	trigger string
	label   string
}

// node is a state in the automaton trie.
type node struct {
	children map[rune]*node
	failure  *node
	output   []int // indices of patterns ending at this state
}

func newNode() *node {
	return &node{children: make(map[rune]*node)}
}

// New creates an empty matcher.
func New() *Matcher {
	return &Matcher{root: newNode()}
}

// Add registers a trigger substring with the label it emits when found.
// Triggers are matched case-insensitively. Empty triggers are ignored.
// Must be called before Build.
func (m *Matcher) Add(trigger, label string) {
	if trigger == "" {
		return
	}
	m.patterns = append(m.patterns, pattern{
		trigger: strings.ToLower(trigger),
		label:   label,
	})
	m.built = false
}

// AddTerms registers terms that emit themselves as their label, for
// vocabularies where the matched word is the output (keywords, ingredients).
func (m *Matcher) AddTerms(terms ...string) {
	for _, t := range terms {
		m.Add(t, strings.ToLower(t))
	}
}

// Build constructs the automaton. Must be called after the last Add and
// before the first query.
func (m *Matcher) Build() *Matcher {
	if m.built {
		return m
	}

	m.root = newNode()
	for i, p := range m.patterns {
		cur := m.root
		for _, ch := range p.trigger {
			next := cur.children[ch]
			if next == nil {
				next = newNode()
				cur.children[ch] = next
			}
			cur = next
		}
		cur.output = append(cur.output, i)
	}

	// Failure links via BFS; each link points at the longest proper
	// suffix state, and output lists are merged along the way.
	queue := make([]*node, 0, len(m.root.children))
	for _, child := range m.root.children {
		child.failure = m.root
		queue = append(queue, child)
	}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for ch, child := range cur.children {
			queue = append(queue, child)

			fail := cur.failure
			for fail != nil && fail.children[ch] == nil {
				fail = fail.failure
			}
			if fail == nil {
				child.failure = m.root
			} else {
				child.failure = fail.children[ch]
				child.output = append(child.output, child.failure.output...)
			}
		}
	}

	m.built = true
	return m
}

// Labels returns the distinct labels of every pattern whose trigger occurs
// as a substring of text, in pattern registration order. Registration order
// makes the output deterministic regardless of where triggers occur in the
// text.
func (m *Matcher) Labels(text string) []string {
	hits := m.find(strings.ToLower(text))
	if len(hits) == 0 {
		return nil
	}

	labels := make([]string, 0, len(hits))
	emitted := make(map[string]struct{}, len(hits))
	for i, p := range m.patterns {
		if !hits[i] {
			continue
		}
		if _, dup := emitted[p.label]; dup {
			continue
		}
		emitted[p.label] = struct{}{}
		labels = append(labels, p.label)
	}
	return labels
}

// Matches reports whether any registered trigger occurs in text.
func (m *Matcher) Matches(text string) bool {
	return len(m.find(strings.ToLower(text))) > 0
}

// Len returns the number of registered patterns.
func (m *Matcher) Len() int {
	return len(m.patterns)
}

// find runs the automaton over lowered text and returns the set of pattern
// indices that matched at least once.
func (m *Matcher) find(lowered string) map[int]bool {
	if !m.built || len(m.patterns) == 0 {
		return nil
	}

	var hits map[int]bool
	cur := m.root
	for _, ch := range lowered {
		for cur != nil && cur.children[ch] == nil {
			cur = cur.failure
		}
		if cur == nil {
			cur = m.root
			continue
		}
		cur = cur.children[ch]

		for _, idx := range cur.output {
			if hits == nil {
				hits = make(map[int]bool)
			}
			hits[idx] = true
		}
	}
	return hits
}
