package comment

import (
	"context"

	domcom "github.com/cliphaven/clipdex/internal/domain/comment"
	domvid "github.com/cliphaven/clipdex/internal/domain/video"
)

type storeMock struct {
	upsertFn func(ctx context.Context, c *domcom.Comment) error
	getFn    func(ctx context.Context, id string) (domcom.Comment, error)
	deleteFn func(ctx context.Context, id string) error
}

func (m *storeMock) Upsert(ctx context.Context, c *domcom.Comment) error { return m.upsertFn(ctx, c) }
func (m *storeMock) Get(ctx context.Context, id string) (domcom.Comment, error) {
	return m.getFn(ctx, id)
}
func (m *storeMock) Delete(ctx context.Context, id string) error { return m.deleteFn(ctx, id) }

type videoReaderMock struct {
	getFn func(ctx context.Context, id string) (domvid.Video, error)
}

func (m *videoReaderMock) Get(ctx context.Context, id string) (domvid.Video, error) {
	return m.getFn(ctx, id)
}
