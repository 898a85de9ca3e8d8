package predicate

import (
	"github.com/cliphaven/clipdex/internal/domain/listing/query"
	"github.com/cliphaven/clipdex/internal/domain/listing/scope"
)

// Indexed field names shared with the store schema.
const (
	FieldPublished = "is_published"
	FieldOwner     = "owner_id"
	FieldParent    = "video_id"
)

// Clause is a single equality condition on an indexed tag field.
type Clause struct {
	field string
	value string
}

// Field returns the indexed field name.
func (c Clause) Field() string { return c.field }

// Value returns the required field value.
func (c Clause) Value() string { return c.value }

// Predicate is the structural (non-text) filter of a listing request.
// It is declarative: the store driver compiles it into its own query syntax.
type Predicate struct {
	clauses []Clause
}

// Clauses returns the equality conditions in build order.
func (p Predicate) Clauses() []Clause { return p.clauses }

// IsEmpty reports whether the predicate matches everything.
func (p Predicate) IsEmpty() bool { return len(p.clauses) == 0 }

// Build composes the structural predicate for a validated request.
//
// Video scope always gates on publication; unpublished videos are never
// listable. Comment scope has no publication flag and instead scopes to the
// parent video. The owner clause only appears when the request carried a
// well-formed owner id (query.New already dropped malformed ones).
func Build(req *query.Request) Predicate {
	var p Predicate
	switch req.Scope() {
	case scope.Video:
		p.clauses = append(p.clauses, Clause{field: FieldPublished, value: "1"})
	case scope.Comment:
		p.clauses = append(p.clauses, Clause{field: FieldParent, value: req.Parent()})
	}
	if owner := req.Owner(); owner != "" {
		p.clauses = append(p.clauses, Clause{field: FieldOwner, value: owner})
	}
	return p
}
