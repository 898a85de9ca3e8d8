package token

import "strings"

// Set is an immutable stop-word set. The zero value matches nothing.
type Set struct {
	words map[string]struct{}
}

// NewSet builds a stop-word set. Words are matched case-insensitively.
func NewSet(words []string) Set {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			m[w] = struct{}{}
		}
	}
	return Set{words: m}
}

// Contains reports whether w is a stop word.
func (s Set) Contains(w string) bool {
	_, ok := s.words[strings.ToLower(w)]
	return ok
}

// Len returns the number of words in the set.
func (s Set) Len() int { return len(s.words) }

// DefaultStopWords is the stock English stop-word list: articles,
// conjunctions, and common prepositions.
func DefaultStopWords() []string {
	return []string{
		"a", "an", "and", "are", "as", "at", "be", "but", "by", "for",
		"from", "has", "he", "if", "in", "into", "is", "it", "its", "no",
		"not", "of", "on", "or", "such", "that", "the", "their", "then",
		"there", "these", "they", "this", "to", "was", "were", "will",
		"with", "would",
	}
}

// Tokenizer splits free text into significant lowercase terms.
type Tokenizer struct {
	stop Set
}

// NewTokenizer creates a tokenizer with the given stop-word set.
func NewTokenizer(stop Set) *Tokenizer {
	return &Tokenizer{stop: stop}
}

// Tokenize splits freeText on whitespace, lowercases each token, and drops
// empties and stop words. Blank input yields an empty slice, which disables
// relevance filtering for the request.
func (t *Tokenizer) Tokenize(freeText string) []string {
	fields := strings.Fields(freeText)
	if len(fields) == 0 {
		return nil
	}
	terms := make([]string, 0, len(fields))
	for _, f := range fields {
		w := strings.ToLower(f)
		if t.stop.Contains(w) {
			continue
		}
		terms = append(terms, w)
	}
	return terms
}
