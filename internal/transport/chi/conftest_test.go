package chi

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	chirouter "github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/cliphaven/clipdex/internal/domain"
	domauth "github.com/cliphaven/clipdex/internal/domain/author"
	domcom "github.com/cliphaven/clipdex/internal/domain/comment"
	"github.com/cliphaven/clipdex/internal/domain/listing/predicate"
	"github.com/cliphaven/clipdex/internal/domain/listing/token"
	domvid "github.com/cliphaven/clipdex/internal/domain/video"
	commentuc "github.com/cliphaven/clipdex/internal/usecase/comment"
	healthuc "github.com/cliphaven/clipdex/internal/usecase/health"
	listinguc "github.com/cliphaven/clipdex/internal/usecase/listing"
	videouc "github.com/cliphaven/clipdex/internal/usecase/video"
)

// fakeStore is a map-backed stand-in for the repository layer, shared by
// every store interface the services consume.
type fakeStore struct {
	videos   map[string]domvid.Video
	comments map[string]domcom.Comment
	pingErr  error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		videos:   make(map[string]domvid.Video),
		comments: make(map[string]domcom.Comment),
	}
}

func (f *fakeStore) Ping(context.Context) error { return f.pingErr }

func (f *fakeStore) Upsert(_ context.Context, v *domvid.Video) error {
	f.videos[v.ID()] = *v
	return nil
}

func (f *fakeStore) Get(_ context.Context, id string) (domvid.Video, error) {
	v, ok := f.videos[id]
	if !ok {
		return domvid.Video{}, domain.ErrNotFound
	}
	return v, nil
}

func (f *fakeStore) Delete(_ context.Context, id string) error {
	if _, ok := f.videos[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.videos, id)
	return nil
}

func (f *fakeStore) IncrementViews(_ context.Context, id string) (int64, error) {
	v, ok := f.videos[id]
	if !ok {
		return 0, domain.ErrNotFound
	}
	updated := domvid.Reconstruct(
		v.ID(), v.OwnerID(), v.Title(), v.Description(), v.VideoURL(), v.ThumbnailURL(),
		v.Duration(), v.Views()+1, v.IsPublished(), v.CreatedAt(),
	)
	f.videos[id] = updated
	return updated.Views(), nil
}

func (f *fakeStore) FindByPredicate(_ context.Context, p predicate.Predicate) ([]*domvid.Video, error) {
	var out []*domvid.Video
	for _, v := range f.videos {
		if matchVideo(&v, p) {
			c := v
			out = append(out, &c)
		}
	}
	return out, nil
}

func matchVideo(v *domvid.Video, p predicate.Predicate) bool {
	for _, c := range p.Clauses() {
		switch c.Field() {
		case predicate.FieldPublished:
			if v.IsPublished() != (c.Value() == "1") {
				return false
			}
		case predicate.FieldOwner:
			if v.OwnerID() != c.Value() {
				return false
			}
		}
	}
	return true
}

// commentStore adapts fakeStore to the comment repositories.
type commentStore struct{ f *fakeStore }

func (s commentStore) Upsert(_ context.Context, c *domcom.Comment) error {
	s.f.comments[c.ID()] = *c
	return nil
}

func (s commentStore) Get(_ context.Context, id string) (domcom.Comment, error) {
	c, ok := s.f.comments[id]
	if !ok {
		return domcom.Comment{}, domain.ErrNotFound
	}
	return c, nil
}

func (s commentStore) Delete(_ context.Context, id string) error {
	if _, ok := s.f.comments[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.f.comments, id)
	return nil
}

func (s commentStore) FindByPredicate(_ context.Context, p predicate.Predicate) ([]*domcom.Comment, error) {
	var out []*domcom.Comment
	for _, c := range s.f.comments {
		if matchComment(&c, p) {
			cc := c
			out = append(out, &cc)
		}
	}
	return out, nil
}

func matchComment(c *domcom.Comment, p predicate.Predicate) bool {
	for _, cl := range p.Clauses() {
		switch cl.Field() {
		case predicate.FieldParent:
			if c.VideoID() != cl.Value() {
				return false
			}
		case predicate.FieldOwner:
			if c.OwnerID() != cl.Value() {
				return false
			}
		}
	}
	return true
}

// fakeAuthors resolves every id to a summary, or the deleted placeholder
// for ids in the gone set.
type fakeAuthors struct {
	gone map[string]bool
}

func (f *fakeAuthors) Lookup(_ context.Context, ids []string) (map[string]domauth.Summary, error) {
	out := make(map[string]domauth.Summary, len(ids))
	for _, id := range ids {
		if f.gone[id] {
			out[id] = domauth.Deleted(id)
			continue
		}
		out[id] = domauth.Reconstruct(id, "user-"+id, "", "")
	}
	return out, nil
}

// testRouter wires the full service stack over the fake store and returns
// the mounted router.
func testRouter(t *testing.T, f *fakeStore) http.Handler {
	t.Helper()

	authors := &fakeAuthors{}
	tok := token.NewTokenizer(token.NewSet(token.DefaultStopWords()))

	listings := listinguc.New(f, commentStore{f}, authors, tok, nil)
	videos := videouc.New(f, authors)
	comments := commentuc.New(commentStore{f}, f)
	health := healthuc.New(f)

	srv := NewServer(listings, videos, comments, health, zap.NewNop())

	r := chirouter.NewRouter()
	srv.Routes(r)
	return r
}

func seedVideos(f *fakeStore, n int) {
	for i := 1; i <= n; i++ {
		id := fmt.Sprintf("vid-%02d", i)
		f.videos[id] = domvid.Reconstruct(
			id, "owner-1", fmt.Sprintf("clip %d", i), "", "https://cdn/"+id+".mp4", "",
			10, 0, true, int64(1000+i),
		)
	}
}
