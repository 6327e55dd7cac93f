package repository

import (
	"context"
	"fmt"
	"time"

	"book-catalog/internal/domains/book/model"
	"book-catalog/pkg/database"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

// Expected schema:
//
//	authors(id text primary key, name text)
//	genres(id text primary key, name text)
//	books(id text primary key, title text, author_id text, genre_ids text[],
//	      description text, published_at timestamptz, image text, position int)
//
// Books are returned in position order; that order is the dataset order.
const (
	queryAuthors = `SELECT id, name FROM authors`
	queryGenres  = `SELECT id, name FROM genres`
	queryBooks   = `
		SELECT id, title, author_id, COALESCE(genre_ids, '{}'), COALESCE(description, ''),
		       published_at, COALESCE(image, '')
		FROM books
		ORDER BY position, id`
)

// PostgresSource reads the dataset from PostgreSQL in one pass at startup.
type PostgresSource struct {
	pool     *pgxpool.Pool
	pageSize int
}

func NewPostgresSource(pool *pgxpool.Pool, pageSize int) *PostgresSource {
	return &PostgresSource{pool: pool, pageSize: pageSize}
}

// Load reads the three tables inside one snapshot transaction so books never
// reference an author or genre committed after the lookup was read.
func (r *PostgresSource) Load(ctx context.Context) (*model.Catalog, error) {
	catalog, err := database.WithReadSnapshot(ctx, r.pool, func(tx pgx.Tx) (*model.Catalog, error) {
		authors, err := loadLookup(ctx, tx, queryAuthors)
		if err != nil {
			return nil, fmt.Errorf("load authors: %w", err)
		}

		genres, err := loadLookup(ctx, tx, queryGenres)
		if err != nil {
			return nil, fmt.Errorf("load genres: %w", err)
		}

		books, err := loadBooks(ctx, tx)
		if err != nil {
			return nil, fmt.Errorf("load books: %w", err)
		}

		return model.NewCatalog(books, authors, genres, r.pageSize), nil
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("origin", "postgres").
		Int("books", len(catalog.Books)).
		Int("authors", len(catalog.Authors)).
		Int("genres", len(catalog.Genres)).
		Msg("catalog loaded")

	return catalog, nil
}

func loadLookup(ctx context.Context, tx pgx.Tx, query string) (map[string]string, error) {
	rows, err := tx.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]string)
	for rows.Next() {
		var id, name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, err
		}
		out[id] = name
	}
	return out, rows.Err()
}

func loadBooks(ctx context.Context, tx pgx.Tx) ([]model.Book, error) {
	rows, err := tx.Query(ctx, queryBooks)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var books []model.Book
	for rows.Next() {
		var (
			b         model.Book
			published *time.Time
		)
		if err := rows.Scan(
			&b.ID,
			&b.Title,
			&b.AuthorID,
			&b.GenreIDs,
			&b.Description,
			&published,
			&b.Image,
		); err != nil {
			return nil, err
		}
		if published != nil {
			b.Published = published.UTC()
		}
		books = append(books, b)
	}
	return books, rows.Err()
}
