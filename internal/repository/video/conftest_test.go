package video

import (
	"context"

	"github.com/cliphaven/clipdex/internal/db"
	"github.com/cliphaven/clipdex/internal/domain/listing/predicate"
)

type mockStore struct {
	hsetFn        func(ctx context.Context, key string, fields map[string]string) error
	hgetallFn     func(ctx context.Context, key string) (map[string]string, error)
	hincrbyFn     func(ctx context.Context, key, field string, delta int64) (int64, error)
	delFn         func(ctx context.Context, key string) error
	existsFn      func(ctx context.Context, key string) (bool, error)
	createIndexFn func(ctx context.Context, def *db.IndexDefinition) error
	searchListFn  func(ctx context.Context, index string, p predicate.Predicate, offset, limit int, fields []string) (*db.SearchResult, error)
	searchCountFn func(ctx context.Context, index string, p predicate.Predicate) (int, error)
}

func (m *mockStore) HSet(ctx context.Context, key string, fields map[string]string) error {
	return m.hsetFn(ctx, key, fields)
}

func (m *mockStore) HGetAll(ctx context.Context, key string) (map[string]string, error) {
	return m.hgetallFn(ctx, key)
}

func (m *mockStore) HIncrBy(ctx context.Context, key, field string, delta int64) (int64, error) {
	return m.hincrbyFn(ctx, key, field, delta)
}

func (m *mockStore) Del(ctx context.Context, key string) error {
	return m.delFn(ctx, key)
}

func (m *mockStore) Exists(ctx context.Context, key string) (bool, error) {
	return m.existsFn(ctx, key)
}

func (m *mockStore) CreateIndex(ctx context.Context, def *db.IndexDefinition) error {
	return m.createIndexFn(ctx, def)
}

func (m *mockStore) SearchList(ctx context.Context, index string, p predicate.Predicate, offset, limit int, fields []string) (*db.SearchResult, error) {
	return m.searchListFn(ctx, index, p, offset, limit, fields)
}

func (m *mockStore) SearchCount(ctx context.Context, index string, p predicate.Predicate) (int, error) {
	return m.searchCountFn(ctx, index, p)
}
