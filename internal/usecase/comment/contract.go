package comment

import (
	"context"

	domcom "github.com/cliphaven/clipdex/internal/domain/comment"
	domvid "github.com/cliphaven/clipdex/internal/domain/video"
)

// Store defines the storage contract for comment records.
type Store interface {
	Upsert(ctx context.Context, c *domcom.Comment) error
	Get(ctx context.Context, id string) (domcom.Comment, error)
	Delete(ctx context.Context, id string) error
}

// VideoReader checks that the parent video exists before a comment is added.
type VideoReader interface {
	Get(ctx context.Context, id string) (domvid.Video, error)
}
