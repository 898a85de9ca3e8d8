package listing

import (
	"context"

	"github.com/cliphaven/clipdex/internal/domain"
	domauth "github.com/cliphaven/clipdex/internal/domain/author"
	domcom "github.com/cliphaven/clipdex/internal/domain/comment"
	"github.com/cliphaven/clipdex/internal/domain/listing"
	"github.com/cliphaven/clipdex/internal/domain/listing/order"
	"github.com/cliphaven/clipdex/internal/domain/listing/page"
	"github.com/cliphaven/clipdex/internal/domain/listing/predicate"
	"github.com/cliphaven/clipdex/internal/domain/listing/query"
	"github.com/cliphaven/clipdex/internal/domain/listing/relevance"
	"github.com/cliphaven/clipdex/internal/domain/listing/token"
	domvid "github.com/cliphaven/clipdex/internal/domain/video"
)

// Item is one listing row: the document plus its denormalized author.
type Item[T listing.Candidate] struct {
	Doc    T
	Author domauth.Summary
}

// Service runs the listing pipeline: predicate fetch, tokenize, score,
// sort, paginate, author join. Scoring and sorting happen in memory over
// the full filtered set, which caps the practical corpus size; the
// predicate keeps that set small.
type Service struct {
	videos    VideoSource
	comments  CommentSource
	authors   AuthorLookup
	tokenizer *token.Tokenizer
	observer  Observer
}

// New creates a listing service. observer may be nil.
func New(videos VideoSource, comments CommentSource, authors AuthorLookup, tok *token.Tokenizer, obs Observer) *Service {
	return &Service{videos: videos, comments: comments, authors: authors, tokenizer: tok, observer: obs}
}

// ListVideos returns one page of published videos matching the request.
func (s *Service) ListVideos(ctx context.Context, req *query.Request) (page.Page[Item[*domvid.Video]], error) {
	rows, err := s.videos.FindByPredicate(ctx, predicate.Build(req))
	if err != nil {
		return page.Page[Item[*domvid.Video]]{}, domain.NewUpstream("video fetch", err)
	}
	s.observe(req, len(rows))
	return assemble(ctx, s, rows, req)
}

// ListComments returns one page of comments under the request's parent video.
func (s *Service) ListComments(ctx context.Context, req *query.Request) (page.Page[Item[*domcom.Comment]], error) {
	rows, err := s.comments.FindByPredicate(ctx, predicate.Build(req))
	if err != nil {
		return page.Page[Item[*domcom.Comment]]{}, domain.NewUpstream("comment fetch", err)
	}
	s.observe(req, len(rows))
	return assemble(ctx, s, rows, req)
}

func (s *Service) observe(req *query.Request, count int) {
	if s.observer != nil {
		s.observer.ObserveCandidates(string(req.Scope()), count)
	}
}

// assemble runs the in-memory stages and joins authors for the page slice
// only. A missing author record yields a placeholder, never a dropped row.
func assemble[T listing.Candidate](ctx context.Context, s *Service, rows []T, req *query.Request) (page.Page[Item[T]], error) {
	terms := s.tokenizer.Tokenize(req.FreeText())
	scored := relevance.Score(rows, terms)
	order.Sort(scored, req)

	docs := make([]T, len(scored))
	for i, sc := range scored {
		docs[i] = sc.Doc
	}
	pg := page.Build(docs, req.Page(), req.Limit())

	authors, err := lookupAuthors(ctx, s.authors, pg.Items)
	if err != nil {
		return page.Page[Item[T]]{}, domain.NewUpstream("author lookup", err)
	}

	items := make([]Item[T], len(pg.Items))
	for i, doc := range pg.Items {
		items[i] = Item[T]{Doc: doc, Author: authors[doc.OwnerID()]}
	}

	return page.Page[Item[T]]{
		Items:         items,
		TotalDocs:     pg.TotalDocs,
		Limit:         pg.Limit,
		Page:          pg.Page,
		TotalPages:    pg.TotalPages,
		PagingCounter: pg.PagingCounter,
		HasPrevPage:   pg.HasPrevPage,
		HasNextPage:   pg.HasNextPage,
		PrevPage:      pg.PrevPage,
		NextPage:      pg.NextPage,
	}, nil
}

func lookupAuthors[T listing.Candidate](ctx context.Context, authors AuthorLookup, docs []T) (map[string]domauth.Summary, error) {
	if len(docs) == 0 {
		return map[string]domauth.Summary{}, nil
	}

	seen := make(map[string]bool, len(docs))
	ids := make([]string, 0, len(docs))
	for _, doc := range docs {
		if id := doc.OwnerID(); !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}

	return authors.Lookup(ctx, ids)
}
