package listing

import (
	"context"

	domauth "github.com/cliphaven/clipdex/internal/domain/author"
	domcom "github.com/cliphaven/clipdex/internal/domain/comment"
	"github.com/cliphaven/clipdex/internal/domain/listing/predicate"
	domvid "github.com/cliphaven/clipdex/internal/domain/video"
)

type videoSourceMock struct {
	findFn func(ctx context.Context, p predicate.Predicate) ([]*domvid.Video, error)
}

func (m *videoSourceMock) FindByPredicate(ctx context.Context, p predicate.Predicate) ([]*domvid.Video, error) {
	return m.findFn(ctx, p)
}

type commentSourceMock struct {
	findFn func(ctx context.Context, p predicate.Predicate) ([]*domcom.Comment, error)
}

func (m *commentSourceMock) FindByPredicate(ctx context.Context, p predicate.Predicate) ([]*domcom.Comment, error) {
	return m.findFn(ctx, p)
}

type authorLookupMock struct {
	lookupFn func(ctx context.Context, ids []string) (map[string]domauth.Summary, error)
}

func (m *authorLookupMock) Lookup(ctx context.Context, ids []string) (map[string]domauth.Summary, error) {
	return m.lookupFn(ctx, ids)
}

type observerMock struct {
	scopes []string
	counts []int
}

func (m *observerMock) ObserveCandidates(scope string, count int) {
	m.scopes = append(m.scopes, scope)
	m.counts = append(m.counts, count)
}

// reconstructedAuthors resolves every id to a real summary with a
// predictable username.
func reconstructedAuthors(ctx context.Context, ids []string) (map[string]domauth.Summary, error) {
	out := make(map[string]domauth.Summary, len(ids))
	for _, id := range ids {
		out[id] = domauth.Reconstruct(id, "user-"+id, "", "")
	}
	return out, nil
}
