package relevance

import (
	"strings"

	"github.com/cliphaven/clipdex/internal/domain/listing"
)

// Scored pairs a candidate with its relevance score.
type Scored[T listing.Candidate] struct {
	Doc     T
	Matches int
}

// Score annotates each candidate with the number of distinct terms found as
// a case-insensitive substring of its primary text field.
//
// With no terms every candidate passes with score 0 and the sort stage falls
// back to its default order. With terms present, candidates matching none of
// them are excluded entirely: appearing in text-search results requires at
// least one matching term.
func Score[T listing.Candidate](candidates []T, terms []string) []Scored[T] {
	if len(terms) == 0 {
		out := make([]Scored[T], len(candidates))
		for i, c := range candidates {
			out[i] = Scored[T]{Doc: c}
		}
		return out
	}

	distinct := dedupe(terms)
	out := make([]Scored[T], 0, len(candidates))
	for _, c := range candidates {
		text := strings.ToLower(c.SearchText())
		matches := 0
		for _, term := range distinct {
			if strings.Contains(text, term) {
				matches++
			}
		}
		if matches == 0 {
			continue
		}
		out = append(out, Scored[T]{Doc: c, Matches: matches})
	}
	return out
}

// dedupe keeps the first occurrence of each term, preserving order.
func dedupe(terms []string) []string {
	seen := make(map[string]struct{}, len(terms))
	out := make([]string, 0, len(terms))
	for _, t := range terms {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
