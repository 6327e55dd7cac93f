package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"book-catalog/internal/domains/book/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCache struct {
	GetFn    func(ctx context.Context, key string, dest interface{}) (bool, error)
	SetFn    func(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	setCalls int
}

func (f *fakeCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	if f.GetFn == nil {
		return false, nil
	}
	return f.GetFn(ctx, key, dest)
}

func (f *fakeCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	f.setCalls++
	if f.SetFn == nil {
		return nil
	}
	return f.SetFn(ctx, key, value, ttl)
}

func (f *fakeCache) Delete(ctx context.Context, keys ...string) error { return nil }

func (f *fakeCache) Ping(ctx context.Context) error { return nil }

func TestGetSnapshot_NoCache(t *testing.T) {
	svc := NewService(newTestCatalog(3, 12), nil, time.Hour)

	snap, err := svc.GetSnapshot(context.Background())

	require.NoError(t, err)
	assert.Len(t, snap.Books, 3)
	assert.Equal(t, 12, snap.PageSize)
}

func TestGetSnapshot_MissPopulatesCache(t *testing.T) {
	catalog := newTestCatalog(3, 12)
	var storedKey string
	var storedTTL time.Duration
	fc := &fakeCache{
		SetFn: func(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
			storedKey, storedTTL = key, ttl
			return nil
		},
	}
	svc := NewService(catalog, fc, time.Hour)

	snap, err := svc.GetSnapshot(context.Background())

	require.NoError(t, err)
	assert.Len(t, snap.Books, 3)
	assert.Equal(t, 1, fc.setCalls)
	assert.Equal(t, SnapshotCacheKey(catalog), storedKey)
	assert.Equal(t, time.Hour, storedTTL)
}

func TestGetSnapshot_HitSkipsCatalog(t *testing.T) {
	cached := model.CatalogSnapshot{PageSize: 99}
	fc := &fakeCache{
		GetFn: func(ctx context.Context, key string, dest interface{}) (bool, error) {
			data, _ := json.Marshal(cached)
			return true, json.Unmarshal(data, dest)
		},
	}
	svc := NewService(newTestCatalog(3, 12), fc, time.Hour)

	snap, err := svc.GetSnapshot(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 99, snap.PageSize)
	assert.Zero(t, fc.setCalls)
}

func TestGetSnapshot_CacheErrorFallsBack(t *testing.T) {
	fc := &fakeCache{
		GetFn: func(ctx context.Context, key string, dest interface{}) (bool, error) {
			return false, errors.New("connection refused")
		},
		SetFn: func(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
			return errors.New("connection refused")
		},
	}
	svc := NewService(newTestCatalog(3, 12), fc, time.Hour)

	snap, err := svc.GetSnapshot(context.Background())

	require.NoError(t, err)
	assert.Len(t, snap.Books, 3)
}

func TestSnapshotCacheKey_ChangesWithDataset(t *testing.T) {
	a := SnapshotCacheKey(newTestCatalog(3, 12))
	b := SnapshotCacheKey(newTestCatalog(4, 12))

	assert.Contains(t, a, SnapshotCacheKeyPrefix+":")
	assert.NotEqual(t, a, b)
	assert.Equal(t, a, SnapshotCacheKey(newTestCatalog(3, 12)))
}

func TestGetBookDetail(t *testing.T) {
	svc := NewService(newTestCatalog(3, 12), nil, 0)

	d, err := svc.GetBookDetail(context.Background(), "b2")
	require.NoError(t, err)
	assert.Equal(t, "Ursula K. Le Guin (1992)", d.Subtitle)

	_, err = svc.GetBookDetail(context.Background(), "nope")
	assert.ErrorIs(t, err, model.ErrBookNotFound)
}

func TestListOptions(t *testing.T) {
	svc := NewService(newTestCatalog(1, 12), nil, 0)

	authors := svc.ListAuthors(context.Background())
	require.Len(t, authors, 3)
	assert.Equal(t, model.Option{Value: model.AnyOption, Label: "All Authors"}, authors[0])
	assert.Equal(t, "Frank Herbert", authors[1].Label)

	genres := svc.ListGenres(context.Background())
	assert.Equal(t, []string{"All Genres", "Fantasy", "Poetry", "Science Fiction"}, []string{genres[0].Label, genres[1].Label, genres[2].Label, genres[3].Label})
}
