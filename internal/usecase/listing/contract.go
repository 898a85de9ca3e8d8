package listing

import (
	"context"

	domauth "github.com/cliphaven/clipdex/internal/domain/author"
	domcom "github.com/cliphaven/clipdex/internal/domain/comment"
	"github.com/cliphaven/clipdex/internal/domain/listing/predicate"
	domvid "github.com/cliphaven/clipdex/internal/domain/video"
)

// VideoSource fetches the full video set matching a predicate.
type VideoSource interface {
	FindByPredicate(ctx context.Context, p predicate.Predicate) ([]*domvid.Video, error)
}

// CommentSource fetches the full comment set matching a predicate.
type CommentSource interface {
	FindByPredicate(ctx context.Context, p predicate.Predicate) ([]*domcom.Comment, error)
}

// AuthorLookup resolves user IDs to author summaries, with placeholders
// for users that no longer exist.
type AuthorLookup interface {
	Lookup(ctx context.Context, ids []string) (map[string]domauth.Summary, error)
}

// Observer receives pipeline measurements.
type Observer interface {
	ObserveCandidates(scope string, count int)
}
