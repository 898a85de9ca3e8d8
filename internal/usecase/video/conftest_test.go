package video

import (
	"context"

	domauth "github.com/cliphaven/clipdex/internal/domain/author"
	domvid "github.com/cliphaven/clipdex/internal/domain/video"
)

type storeMock struct {
	upsertFn    func(ctx context.Context, v *domvid.Video) error
	getFn       func(ctx context.Context, id string) (domvid.Video, error)
	deleteFn    func(ctx context.Context, id string) error
	incrViewsFn func(ctx context.Context, id string) (int64, error)
}

func (m *storeMock) Upsert(ctx context.Context, v *domvid.Video) error { return m.upsertFn(ctx, v) }
func (m *storeMock) Get(ctx context.Context, id string) (domvid.Video, error) {
	return m.getFn(ctx, id)
}
func (m *storeMock) Delete(ctx context.Context, id string) error { return m.deleteFn(ctx, id) }
func (m *storeMock) IncrementViews(ctx context.Context, id string) (int64, error) {
	return m.incrViewsFn(ctx, id)
}

type authorLookupMock struct {
	lookupFn func(ctx context.Context, ids []string) (map[string]domauth.Summary, error)
}

func (m *authorLookupMock) Lookup(ctx context.Context, ids []string) (map[string]domauth.Summary, error) {
	return m.lookupFn(ctx, ids)
}

func fixedClock(svc *Service, millis int64) {
	svc.now = func() int64 { return millis }
}

func fixedID(svc *Service, id string) {
	svc.newID = func() string { return id }
}
