package container

import (
	"context"
	"fmt"
	"time"

	"book-catalog/internal/config"
	bookHandler "book-catalog/internal/domains/book/handler"
	"book-catalog/internal/domains/book/model"
	bookRepo "book-catalog/internal/domains/book/repository"
	bookService "book-catalog/internal/domains/book/service"
	infraCache "book-catalog/internal/infrastructure/cache"
	"book-catalog/internal/infrastructure/database"
	"book-catalog/internal/shared/metrics"
	"book-catalog/pkg/cache"

	"github.com/rs/zerolog/log"
)

// Options selects which infrastructure a front-end needs.
type Options struct {
	// WithCache connects Redis (when REDIS_ENABLED) for the snapshot cache.
	WithCache bool
	// PageSize overrides CATALOG_PAGE_SIZE when > 0.
	PageSize int
	// Source/Path/URL override the CATALOG_* settings when non-empty.
	Source string
	Path   string
	URL    string
}

// Container holds every dependency of the application.
// Order of construction: config -> infrastructure -> source/catalog -> service -> handler.
type Container struct {
	Config *config.Config

	DB    *database.PostgresDB // only for the postgres source
	Cache cache.Cache          // nil when Redis is disabled

	Source  bookRepo.Source
	Catalog *model.Catalog

	BookService bookService.ServiceInterface
	BookHandler *bookHandler.Handler
}

// NewContainer builds the dependency graph and loads the catalog once.
func NewContainer(ctx context.Context, opts Options) (*Container, error) {
	log.Debug().Msg("Initializing container")

	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	applyOverrides(cfg, opts)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog options: %w", err)
	}
	c.Config = cfg

	if opts.WithCache {
		c.initCache(ctx)
	}

	source, err := c.buildSource(ctx)
	if err != nil {
		c.Cleanup()
		return nil, err
	}
	c.Source = source

	loadCtx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	catalog, err := source.Load(loadCtx)
	if err != nil {
		c.Cleanup()
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	if len(catalog.Books) == 0 {
		log.Warn().Str("source", cfg.Catalog.Source).Msg("catalog is empty")
	}
	c.Catalog = catalog
	metrics.CatalogBooks.Set(float64(len(catalog.Books)))

	c.BookService = bookService.NewService(catalog, c.Cache, cfg.Catalog.CacheTTL)
	c.BookHandler = bookHandler.NewHandler(c.BookService)

	log.Info().
		Str("source", cfg.Catalog.Source).
		Int("books", len(catalog.Books)).
		Int("page_size", catalog.PageSize).
		Msg("Container ready")

	return c, nil
}

func applyOverrides(cfg *config.Config, opts Options) {
	if opts.Source != "" {
		cfg.Catalog.Source = opts.Source
	}
	if opts.Path != "" {
		cfg.Catalog.Path = opts.Path
	}
	if opts.URL != "" {
		cfg.Catalog.URL = opts.URL
	}
	if opts.PageSize > 0 {
		cfg.Catalog.PageSize = opts.PageSize
	}
}

// initCache connects Redis. Failure is not fatal: the service runs uncached.
func (c *Container) initCache(ctx context.Context) {
	if !c.Config.Redis.Enabled {
		log.Info().Msg("Redis disabled, snapshot cache off")
		return
	}

	redisCache := infraCache.NewRedisCache(c.Config.Redis.Host, c.Config.Redis.Password, c.Config.Redis.DB)
	if rc, ok := redisCache.(*infraCache.RedisCache); ok {
		if err := rc.Connect(ctx); err != nil {
			log.Warn().Err(err).Msg("Redis connection failed (non-critical), snapshot cache off")
			_ = rc.Close()
			return
		}
	}
	c.Cache = redisCache
}

func (c *Container) buildSource(ctx context.Context) (bookRepo.Source, error) {
	cat := c.Config.Catalog

	switch cat.Source {
	case bookRepo.SourceJSON:
		return bookRepo.NewJSONSource(cat.Path, cat.PageSize), nil
	case bookRepo.SourceYAML:
		return bookRepo.NewYAMLSource(cat.Path, cat.PageSize), nil
	case bookRepo.SourceXLSX:
		return bookRepo.NewXLSXSource(cat.Path, cat.PageSize), nil
	case bookRepo.SourceHTTP:
		return bookRepo.NewHTTPSource(cat.URL, cat.PageSize), nil
	case bookRepo.SourcePostgres:
		dbConfig, err := config.LoadDatabaseConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to load database config: %w", err)
		}
		db := database.NewPostgresDB(dbConfig)
		if err := db.Connect(ctx); err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		c.DB = db
		return bookRepo.NewPostgresSource(db.Pool, cat.PageSize), nil
	}

	return nil, fmt.Errorf("%w: %q", bookRepo.ErrUnsupportedSource, cat.Source)
}

// Cleanup releases infrastructure connections.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
		log.Debug().Msg("Database connections closed")
	}

	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close Redis")
		}
	}
}
