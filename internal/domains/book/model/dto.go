package model

import (
	"fmt"
	"strings"
	"time"
)

// BookRecord is the on-disk / on-wire shape of a book. Dates travel as
// strings so every source (JSON, YAML, XLSX, HTTP) parses them the same way.
type BookRecord struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Author      string   `json:"author" yaml:"author"`
	Genres      []string `json:"genres" yaml:"genres"`
	Description string   `json:"description" yaml:"description"`
	Published   string   `json:"published" yaml:"published"`
	Image       string   `json:"image" yaml:"image"`
}

// CatalogSnapshot is the serialised dataset: what a data file contains and
// what GET /api/v1/catalog returns.
type CatalogSnapshot struct {
	PageSize int               `json:"page_size" yaml:"page_size"`
	Authors  map[string]string `json:"authors" yaml:"authors"`
	Genres   map[string]string `json:"genres" yaml:"genres"`
	Books    []BookRecord      `json:"books" yaml:"books"`
}

// accepted date layouts, most specific first
var publishedLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"2006",
}

// ParsePublished parses a publication date in any of the accepted layouts.
func ParsePublished(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	for _, layout := range publishedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidPublishedDate, s)
}

// ToBook converts BookRecord to Book
func (r BookRecord) ToBook() (Book, error) {
	published, err := ParsePublished(r.Published)
	if err != nil {
		return Book{}, fmt.Errorf("book %s: %w", r.ID, err)
	}
	genres := make([]string, len(r.Genres))
	copy(genres, r.Genres)
	return Book{
		ID:          r.ID,
		Title:       r.Title,
		AuthorID:    r.Author,
		GenreIDs:    genres,
		Description: r.Description,
		Published:   published,
		Image:       r.Image,
	}, nil
}

// ToRecord converts Book to BookRecord
func (b *Book) ToRecord() BookRecord {
	rec := BookRecord{
		ID:          b.ID,
		Title:       b.Title,
		Author:      b.AuthorID,
		Genres:      append([]string{}, b.GenreIDs...),
		Description: b.Description,
		Image:       b.Image,
	}
	if !b.Published.IsZero() {
		rec.Published = b.Published.UTC().Format(time.RFC3339)
	}
	return rec
}

// ToCatalog builds a Catalog from a snapshot. pageSizeOverride wins over the
// snapshot's own page size when positive.
func (s *CatalogSnapshot) ToCatalog(pageSizeOverride int) (*Catalog, error) {
	books := make([]Book, 0, len(s.Books))
	for _, rec := range s.Books {
		b, err := rec.ToBook()
		if err != nil {
			return nil, err
		}
		books = append(books, b)
	}

	pageSize := s.PageSize
	if pageSizeOverride > 0 {
		pageSize = pageSizeOverride
	}
	return NewCatalog(books, s.Authors, s.Genres, pageSize), nil
}

// Snapshot serialises the catalog.
func (c *Catalog) Snapshot() *CatalogSnapshot {
	records := make([]BookRecord, len(c.Books))
	for i := range c.Books {
		records[i] = c.Books[i].ToRecord()
	}
	return &CatalogSnapshot{
		PageSize: c.PageSize,
		Authors:  c.Authors,
		Genres:   c.Genres,
		Books:    records,
	}
}
