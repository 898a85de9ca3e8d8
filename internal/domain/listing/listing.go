// Package listing defines the contract every listable entity satisfies.
// The relevance, order, and page stages are generic over Candidate so the
// same engine serves both video and comment listings.
package listing

// Candidate is a read-only view of a stored document considered for a
// listing result. Implementations must not be mutated by the engine.
type Candidate interface {
	// ID is the document identifier, unique within the scope.
	ID() string
	// OwnerID is the authoring user's identifier.
	OwnerID() string
	// SearchText is the text relevance terms match against (title for
	// videos, content for comments).
	SearchText() string
	// CreatedAt is the creation time in unix milliseconds.
	CreatedAt() int64
	// SortValue resolves a caller-requested sort key to a numeric value.
	// The second return is false when the entity has no such field.
	SortValue(key string) (float64, bool)
}
