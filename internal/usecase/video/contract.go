package video

import (
	"context"

	domauth "github.com/cliphaven/clipdex/internal/domain/author"
	domvid "github.com/cliphaven/clipdex/internal/domain/video"
)

// Store defines the storage contract for video records.
type Store interface {
	Upsert(ctx context.Context, v *domvid.Video) error
	Get(ctx context.Context, id string) (domvid.Video, error)
	Delete(ctx context.Context, id string) error
	IncrementViews(ctx context.Context, id string) (int64, error)
}

// AuthorLookup resolves user IDs to author summaries.
type AuthorLookup interface {
	Lookup(ctx context.Context, ids []string) (map[string]domauth.Summary, error)
}
