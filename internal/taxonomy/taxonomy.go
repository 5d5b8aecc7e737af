// Package taxonomy provides the canonical reference set of skill, knowledge,
// ability and industry terms that raw job-posting skills are matched against.
//
// A Taxonomy is immutable once built and safe for concurrent use.
package taxonomy

import (
	"regexp"
	"sort"
	"strings"
	"sync"
)

// minFuzzyScore is the lowest word-overlap score that counts as a match.
const minFuzzyScore = 0.6

// minIndexedWordLength is the shortest word kept in the word index.
const minIndexedWordLength = 3

var (
	separatorRun  = regexp.MustCompile(`[-/]+`)
	whitespaceRun = regexp.MustCompile(`\s+`)
	indexSplit    = regexp.MustCompile(`[\s/-]+`)
)

// stopWords are ignored when comparing word overlap.
var stopWords = map[string]bool{
	"and": true, "the": true, "for": true, "with": true, "from": true,
	"into": true, "that": true, "this": true, "have": true, "has": true,
	"been": true, "are": true, "was": true, "were": true, "will": true,
	"can": true, "may": true,
}

// entry is one canonical term in lookup order.
type entry struct {
	key       string
	canonical string
	tokens    map[string]struct{}
}

// Taxonomy is the canonical reference universe.
type Taxonomy struct {
	entries   []entry
	exact     map[string]int
	wordIndex map[string][]string
}

// New builds a Taxonomy from one or more term lists. Lists are concatenated
// in the order given; that order is also the fuzzy-match tie-break order.
// When two terms fold to the same lowercase key the later one wins but keeps
// the earlier position.
func New(lists ...[]string) *Taxonomy {
	t := &Taxonomy{
		exact:     make(map[string]int),
		wordIndex: make(map[string][]string),
	}

	for _, list := range lists {
		for _, term := range list {
			term = strings.TrimSpace(term)
			if term == "" {
				continue
			}
			key := strings.ToLower(term)
			if idx, ok := t.exact[key]; ok {
				t.entries[idx].canonical = term
				continue
			}
			t.exact[key] = len(t.entries)
			t.entries = append(t.entries, entry{
				key:       key,
				canonical: term,
				tokens:    tokenSet(collapse(key)),
			})
		}
	}

	for _, e := range t.entries {
		seen := make(map[string]bool)
		for _, word := range indexSplit.Split(e.key, -1) {
			if len(word) < minIndexedWordLength || seen[word] {
				continue
			}
			seen[word] = true
			t.wordIndex[word] = append(t.wordIndex[word], e.canonical)
		}
	}

	return t
}

var (
	defaultOnce     sync.Once
	defaultTaxonomy *Taxonomy
)

// Default returns the production taxonomy built from the O*NET skills,
// knowledge and abilities lists plus the energy and trades industry terms.
func Default() *Taxonomy {
	defaultOnce.Do(func() {
		defaultTaxonomy = New(ONetSkills, ONetKnowledge, ONetAbilities, IndustryTerms)
	})
	return defaultTaxonomy
}

// Len returns the number of distinct canonical terms.
func (t *Taxonomy) Len() int {
	return len(t.entries)
}

// Lookup returns the canonical form of an exact, case-insensitive match.
func (t *Taxonomy) Lookup(term string) (string, bool) {
	idx, ok := t.exact[strings.ToLower(term)]
	if !ok {
		return "", false
	}
	return t.entries[idx].canonical, true
}

// Match maps a normalized skill string to its canonical reference term.
// It tries an exact lookup, then a lookup with separators collapsed, then a
// word-overlap score against every term. Returns false when nothing scores
// at least 0.6.
func (t *Taxonomy) Match(normalized string) (string, bool) {
	lower := strings.ToLower(normalized)
	if len(lower) < 2 {
		return "", false
	}

	if idx, ok := t.exact[lower]; ok {
		return t.entries[idx].canonical, true
	}

	collapsed := collapse(lower)
	if idx, ok := t.exact[collapsed]; ok {
		return t.entries[idx].canonical, true
	}

	skillTokens := tokenSet(collapsed)
	if len(skillTokens) == 0 {
		return "", false
	}

	best := -1
	bestScore := 0.0
	for i, e := range t.entries {
		if len(e.tokens) == 0 {
			continue
		}
		overlap := 0
		for tok := range skillTokens {
			if _, ok := e.tokens[tok]; ok {
				overlap++
			}
		}
		if overlap == 0 {
			continue
		}
		skillCoverage := float64(overlap) / float64(len(skillTokens))
		refCoverage := float64(overlap) / float64(len(e.tokens))
		score := (skillCoverage + refCoverage) / 2
		if score >= minFuzzyScore && score > bestScore {
			best = i
			bestScore = score
		}
	}

	if best < 0 {
		return "", false
	}
	return t.entries[best].canonical, true
}

// All returns every canonical term sorted alphabetically.
func (t *Taxonomy) All() []string {
	out := make([]string, len(t.entries))
	for i, e := range t.entries {
		out[i] = e.canonical
	}
	sort.Strings(out)
	return out
}

// TermsContaining returns the canonical terms that contain word, in lookup
// order. Words shorter than three characters are not indexed.
func (t *Taxonomy) TermsContaining(word string) []string {
	terms := t.wordIndex[strings.ToLower(strings.TrimSpace(word))]
	if len(terms) == 0 {
		return nil
	}
	out := make([]string, len(terms))
	copy(out, terms)
	return out
}

// collapse folds hyphen and slash runs to a single space and squeezes whitespace.
func collapse(s string) string {
	s = separatorRun.ReplaceAllString(s, " ")
	s = whitespaceRun.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// tokenSet splits a collapsed string into its comparable words.
func tokenSet(collapsed string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, tok := range strings.Fields(collapsed) {
		if len(tok) < 2 || stopWords[tok] {
			continue
		}
		set[tok] = struct{}{}
	}
	return set
}
