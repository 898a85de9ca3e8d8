package video

import (
	"context"
	"errors"
	"fmt"

	"github.com/cliphaven/clipdex/internal/db"
	"github.com/cliphaven/clipdex/internal/domain"
	"github.com/cliphaven/clipdex/internal/domain/listing/predicate"
	domvid "github.com/cliphaven/clipdex/internal/domain/video"
)

// store is the consumer interface for video records (ISP).
type store interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	HIncrBy(ctx context.Context, key, field string, delta int64) (int64, error)
	Del(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	CreateIndex(ctx context.Context, def *db.IndexDefinition) error
	SearchList(ctx context.Context, index string, p predicate.Predicate, offset, limit int, fields []string) (*db.SearchResult, error)
	SearchCount(ctx context.Context, index string, p predicate.Predicate) (int, error)
}

// Repo implements the video stores consumed by the usecase layer.
type Repo struct {
	store store
}

// New creates a video repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// EnsureIndex creates the video FT index if it does not exist yet.
func (r *Repo) EnsureIndex(ctx context.Context) error {
	def := db.NewIndex(indexName()).
		Prefix(keyPrefix()).
		Tag(predicate.FieldOwner).
		Tag(predicate.FieldPublished).
		Numeric("created_at").
		Numeric("views").
		Numeric("duration").
		MustBuild()

	if err := r.store.CreateIndex(ctx, def); err != nil {
		if errors.Is(err, db.ErrIndexExists) {
			return nil
		}
		return fmt.Errorf("create video index: %w", err)
	}
	return nil
}

// Upsert stores a video record.
func (r *Repo) Upsert(ctx context.Context, v *domvid.Video) error {
	key := videoKey(v.ID())
	if err := r.store.HSet(ctx, key, fieldsFromVideo(v)); err != nil {
		return fmt.Errorf("hset %s: %w", key, err)
	}
	return nil
}

// Get returns a video by ID.
func (r *Repo) Get(ctx context.Context, id string) (domvid.Video, error) {
	key := videoKey(id)
	fields, err := r.store.HGetAll(ctx, key)
	if err != nil {
		return domvid.Video{}, fmt.Errorf("hgetall %s: %w", key, err)
	}
	// HGETALL yields an empty map for a missing key.
	if len(fields) == 0 {
		return domvid.Video{}, domain.ErrNotFound
	}
	return videoFromFields(id, fields), nil
}

// Delete removes a video record.
func (r *Repo) Delete(ctx context.Context, id string) error {
	key := videoKey(id)

	exists, err := r.store.Exists(ctx, key)
	if err != nil {
		return fmt.Errorf("check exists %s: %w", key, err)
	}
	if !exists {
		return domain.ErrNotFound
	}

	if err := r.store.Del(ctx, key); err != nil {
		return fmt.Errorf("del %s: %w", key, err)
	}
	return nil
}

// IncrementViews bumps the view counter and returns the new value.
func (r *Repo) IncrementViews(ctx context.Context, id string) (int64, error) {
	key := videoKey(id)

	exists, err := r.store.Exists(ctx, key)
	if err != nil {
		return 0, fmt.Errorf("check exists %s: %w", key, err)
	}
	if !exists {
		return 0, domain.ErrNotFound
	}

	n, err := r.store.HIncrBy(ctx, key, "views", 1)
	if err != nil {
		return 0, fmt.Errorf("hincrby %s: %w", key, err)
	}
	return n, nil
}

// FindByPredicate returns every video matching the predicate. Relevance
// scoring and ordering happen in the usecase layer over the full set, so
// the fetch is count-then-list rather than paginated.
func (r *Repo) FindByPredicate(ctx context.Context, p predicate.Predicate) ([]*domvid.Video, error) {
	count, err := r.store.SearchCount(ctx, indexName(), p)
	if err != nil {
		return nil, fmt.Errorf("search count videos: %w", err)
	}
	if count == 0 {
		return nil, nil
	}

	result, err := r.store.SearchList(ctx, indexName(), p, 0, count, nil)
	if err != nil {
		return nil, fmt.Errorf("search list videos: %w", err)
	}
	if result == nil {
		return nil, nil
	}

	videos := make([]*domvid.Video, 0, len(result.Entries))
	for _, entry := range result.Entries {
		v := videoFromFields(idFromKey(entry.Key), entry.Fields)
		videos = append(videos, &v)
	}
	return videos, nil
}
