package stopfilter

import "strings"

// Set is a fixed collection of excluded words. It is built once at startup
// from the built-in English list plus a curated custom list and is
// read-only afterwards.
type Set struct {
	stops map[string]struct{}
}

// New creates a set from the given word lists.
func New(lists ...[]string) *Set {
	s := &Set{stops: make(map[string]struct{})}
	for _, list := range lists {
		for _, w := range list {
			s.Add(w)
		}
	}
	return s
}

// Default returns the union of the English stopword list and the curated
// custom exclusions used by the strategy-books report.
func Default() *Set {
	return New(English, CustomDefault)
}

// IsStop checks if a word is excluded.
func (s *Set) IsStop(word string) bool {
	_, ok := s.stops[word]
	return ok
}

// Add adds a word to the set.
func (s *Set) Add(word string) {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return
	}
	s.stops[word] = struct{}{}
}

// AddAll adds every word in the list.
func (s *Set) AddAll(words []string) {
	for _, w := range words {
		s.Add(w)
	}
}

// Len returns the number of excluded words.
func (s *Set) Len() int {
	return len(s.stops)
}

// Filter returns the tokens that are not in the set, preserving order and
// multiplicity. Filtering runs on raw token streams before any frequency
// aggregation so tf and idf reflect the reduced vocabulary.
func (s *Set) Filter(tokens []string) []string {
	if len(tokens) == 0 {
		return nil
	}
	kept := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if !s.IsStop(tok) {
			kept = append(kept, tok)
		}
	}
	return kept
}
