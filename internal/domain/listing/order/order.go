package order

import (
	"sort"

	"github.com/cliphaven/clipdex/internal/domain/listing"
	"github.com/cliphaven/clipdex/internal/domain/listing/query"
	"github.com/cliphaven/clipdex/internal/domain/listing/relevance"
)

// Sort orders scored rows in place by the resolved comparator chain:
//
//  1. relevance score descending, when the request carried free text;
//  2. the caller's sort key in the caller's direction, when supplied;
//  3. otherwise creation time descending;
//
// with ties at every level broken by id ascending. The id tie-break makes
// the order total, so repeated requests against an unchanged data set
// paginate identically.
func Sort[T listing.Candidate](rows []relevance.Scored[T], req *query.Request) {
	key := req.SortKey()
	desc := req.SortDir() == query.Desc
	byScore := req.HasFreeText()

	sort.Slice(rows, func(i, j int) bool {
		a, b := &rows[i], &rows[j]

		if byScore && a.Matches != b.Matches {
			return a.Matches > b.Matches
		}

		if key != "" {
			av, aok := a.Doc.SortValue(key)
			bv, bok := b.Doc.SortValue(key)
			if aok && bok && av != bv {
				if desc {
					return av > bv
				}
				return av < bv
			}
		} else if a.Doc.CreatedAt() != b.Doc.CreatedAt() {
			return a.Doc.CreatedAt() > b.Doc.CreatedAt()
		}

		return a.Doc.ID() < b.Doc.ID()
	})
}
