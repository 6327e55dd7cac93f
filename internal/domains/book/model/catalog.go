package model

import (
	"fmt"
	"sort"
)

// DefaultPageSize is used when the data source does not carry a page size.
const DefaultPageSize = 36

// Catalog is the preloaded, read-only dataset: books in display order plus
// the author and genre lookup maps. It is safe to share between sessions.
type Catalog struct {
	Books    []Book
	Authors  map[string]string
	Genres   map[string]string
	PageSize int

	index map[string]int
}

// Option is one entry of an author or genre picker.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// NewCatalog builds a Catalog and indexes books by id. A non-positive page
// size falls back to DefaultPageSize.
func NewCatalog(books []Book, authors, genres map[string]string, pageSize int) *Catalog {
	if authors == nil {
		authors = map[string]string{}
	}
	if genres == nil {
		genres = map[string]string{}
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	index := make(map[string]int, len(books))
	for i, b := range books {
		if _, dup := index[b.ID]; !dup {
			index[b.ID] = i
		}
	}

	return &Catalog{
		Books:    books,
		Authors:  authors,
		Genres:   genres,
		PageSize: pageSize,
		index:    index,
	}
}

// AuthorName returns the display name for an author id, or the id itself
// when the map has no entry.
func (c *Catalog) AuthorName(id string) string {
	if name, ok := c.Authors[id]; ok {
		return name
	}
	return id
}

// GenreName returns the display name for a genre id, or the id itself.
func (c *Catalog) GenreName(id string) string {
	if name, ok := c.Genres[id]; ok {
		return name
	}
	return id
}

// FindBook looks a book up by id across the whole dataset.
func (c *Catalog) FindBook(id string) (Book, bool) {
	i, ok := c.index[id]
	if !ok {
		return Book{}, false
	}
	return c.Books[i], true
}

// Preview renders a book as a list card.
func (c *Catalog) Preview(b Book) Preview {
	return b.ToPreview(c.AuthorName(b.AuthorID))
}

// Previews maps a slice of books to cards, keeping order.
func (c *Catalog) Previews(books []Book) []Preview {
	out := make([]Preview, len(books))
	for i := range books {
		out[i] = c.Preview(books[i])
	}
	return out
}

// AuthorOptions lists "All Authors" followed by every author sorted by name.
func (c *Catalog) AuthorOptions() []Option {
	return buildOptions(c.Authors, "All Authors")
}

// GenreOptions lists "All Genres" followed by every genre sorted by name.
func (c *Catalog) GenreOptions() []Option {
	return buildOptions(c.Genres, "All Genres")
}

func buildOptions(entries map[string]string, anyLabel string) []Option {
	opts := make([]Option, 0, len(entries))
	for id, name := range entries {
		opts = append(opts, Option{Value: id, Label: name})
	}
	sort.Slice(opts, func(i, j int) bool {
		if opts[i].Label == opts[j].Label {
			return opts[i].Value < opts[j].Value
		}
		return opts[i].Label < opts[j].Label
	})
	return append([]Option{{Value: AnyOption, Label: anyLabel}}, opts...)
}

// CheckCriteria reports author or genre ids the catalog does not know. The
// filter itself accepts them and simply matches nothing; front-ends that take
// typed ids use this to reject typos.
func (c *Catalog) CheckCriteria(criteria FilterCriteria) error {
	if !criteria.AnyAuthor() {
		if _, ok := c.Authors[criteria.AuthorID]; !ok {
			return fmt.Errorf("%w: %s", ErrAuthorNotFound, criteria.AuthorID)
		}
	}
	if !criteria.AnyGenre() {
		if _, ok := c.Genres[criteria.GenreID]; !ok {
			return fmt.Errorf("%w: %s", ErrGenreNotFound, criteria.GenreID)
		}
	}
	return nil
}
