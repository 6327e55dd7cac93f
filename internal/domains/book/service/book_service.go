package service

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"time"

	"book-catalog/internal/domains/book/model"
	"book-catalog/internal/shared/metrics"
	"book-catalog/pkg/cache"

	"github.com/rs/zerolog/log"
)

// SnapshotCacheKeyPrefix prefixes the snapshot cache key; the suffix is a
// fingerprint of the dataset so a changed catalog never reads a stale entry.
const SnapshotCacheKeyPrefix = "catalog:snapshot"

// BookService - Implements ServiceInterface over a preloaded catalog
type BookService struct {
	catalog  *model.Catalog
	cache    cache.Cache
	cacheTTL time.Duration
	cacheKey string
}

// NewService - Constructor with DI. cache may be nil.
func NewService(catalog *model.Catalog, cache cache.Cache, cacheTTL time.Duration) ServiceInterface {
	return &BookService{
		catalog:  catalog,
		cache:    cache,
		cacheTTL: cacheTTL,
		cacheKey: SnapshotCacheKey(catalog),
	}
}

// SnapshotCacheKey derives the cache key for catalog.
func SnapshotCacheKey(catalog *model.Catalog) string {
	h := fnv.New64a()
	data, err := json.Marshal(catalog.Snapshot())
	if err != nil {
		return SnapshotCacheKeyPrefix
	}
	h.Write(data)
	return fmt.Sprintf("%s:%x", SnapshotCacheKeyPrefix, h.Sum64())
}

func (s *BookService) Catalog() *model.Catalog {
	return s.catalog
}

// NewSession starts an independent browse session over the shared catalog.
func (s *BookService) NewSession() *Session {
	return NewSession(s.catalog)
}

// GetSnapshot returns the serialised dataset, served from cache when possible.
// Cache failures are logged and never fail the call.
func (s *BookService) GetSnapshot(ctx context.Context) (*model.CatalogSnapshot, error) {
	if s.cache != nil {
		var cached model.CatalogSnapshot
		found, err := s.cache.Get(ctx, s.cacheKey, &cached)
		switch {
		case err != nil:
			metrics.SnapshotCacheLookups.WithLabelValues("error").Inc()
			log.Warn().Err(err).Str("key", s.cacheKey).Msg("cache GET failed")
		case found:
			metrics.SnapshotCacheLookups.WithLabelValues("hit").Inc()
			return &cached, nil
		default:
			metrics.SnapshotCacheLookups.WithLabelValues("miss").Inc()
			log.Debug().Str("key", s.cacheKey).Msg("cache MISS")
		}
	}

	snapshot := s.catalog.Snapshot()

	if s.cache != nil {
		if err := s.cache.Set(ctx, s.cacheKey, snapshot, s.cacheTTL); err != nil {
			log.Warn().Err(err).Str("key", s.cacheKey).Msg("cache SET failed")
		}
	}

	return snapshot, nil
}

func (s *BookService) GetBookDetail(ctx context.Context, id string) (*model.Detail, error) {
	b, ok := s.catalog.FindBook(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", model.ErrBookNotFound, id)
	}
	detail := b.ToDetail(s.catalog.AuthorName(b.AuthorID))
	return &detail, nil
}

func (s *BookService) ListAuthors(ctx context.Context) []model.Option {
	return s.catalog.AuthorOptions()
}

func (s *BookService) ListGenres(ctx context.Context) []model.Option {
	return s.catalog.GenreOptions()
}
