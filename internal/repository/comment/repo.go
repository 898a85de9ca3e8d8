package comment

import (
	"context"
	"errors"
	"fmt"

	"github.com/cliphaven/clipdex/internal/db"
	"github.com/cliphaven/clipdex/internal/domain"
	domcom "github.com/cliphaven/clipdex/internal/domain/comment"
	"github.com/cliphaven/clipdex/internal/domain/listing/predicate"
)

// store is the consumer interface for comment records (ISP).
type store interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	Del(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	CreateIndex(ctx context.Context, def *db.IndexDefinition) error
	SearchList(ctx context.Context, index string, p predicate.Predicate, offset, limit int, fields []string) (*db.SearchResult, error)
	SearchCount(ctx context.Context, index string, p predicate.Predicate) (int, error)
}

// Repo implements the comment stores consumed by the usecase layer.
type Repo struct {
	store store
}

// New creates a comment repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// EnsureIndex creates the comment FT index if it does not exist yet.
func (r *Repo) EnsureIndex(ctx context.Context) error {
	def := db.NewIndex(indexName()).
		Prefix(keyPrefix()).
		Tag(predicate.FieldOwner).
		Tag(predicate.FieldParent).
		Numeric("created_at").
		MustBuild()

	if err := r.store.CreateIndex(ctx, def); err != nil {
		if errors.Is(err, db.ErrIndexExists) {
			return nil
		}
		return fmt.Errorf("create comment index: %w", err)
	}
	return nil
}

// Upsert stores a comment record.
func (r *Repo) Upsert(ctx context.Context, c *domcom.Comment) error {
	key := commentKey(c.ID())
	if err := r.store.HSet(ctx, key, fieldsFromComment(c)); err != nil {
		return fmt.Errorf("hset %s: %w", key, err)
	}
	return nil
}

// Get returns a comment by ID.
func (r *Repo) Get(ctx context.Context, id string) (domcom.Comment, error) {
	key := commentKey(id)
	fields, err := r.store.HGetAll(ctx, key)
	if err != nil {
		return domcom.Comment{}, fmt.Errorf("hgetall %s: %w", key, err)
	}
	if len(fields) == 0 {
		return domcom.Comment{}, domain.ErrNotFound
	}
	return commentFromFields(id, fields), nil
}

// Delete removes a comment record.
func (r *Repo) Delete(ctx context.Context, id string) error {
	key := commentKey(id)

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

// FindByPredicate returns every comment matching the predicate. Scoring
// and ordering happen in the usecase layer over the full set.
func (r *Repo) FindByPredicate(ctx context.Context, p predicate.Predicate) ([]*domcom.Comment, error) {
	count, err := r.store.SearchCount(ctx, indexName(), p)
	if err != nil {
		return nil, fmt.Errorf("search count comments: %w", err)
	}
	if count == 0 {
		return nil, nil
	}

	result, err := r.store.SearchList(ctx, indexName(), p, 0, count, nil)
	if err != nil {
		return nil, fmt.Errorf("search list comments: %w", err)
	}
	if result == nil {
		return nil, nil
	}

	comments := make([]*domcom.Comment, 0, len(result.Entries))
	for _, entry := range result.Entries {
		c := commentFromFields(idFromKey(entry.Key), entry.Fields)
		comments = append(comments, &c)
	}
	return comments, nil
}
