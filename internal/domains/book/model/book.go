package model

import (
	"fmt"
	"time"
)

// Book is a single catalog entry. Books are immutable once loaded.
type Book struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	AuthorID    string    `json:"author"`
	GenreIDs    []string  `json:"genres"`
	Description string    `json:"description"`
	Published   time.Time `json:"published"`
	Image       string    `json:"image"`
}

// HasGenre reports whether the book is tagged with genreID.
func (b *Book) HasGenre(genreID string) bool {
	for _, g := range b.GenreIDs {
		if g == genreID {
			return true
		}
	}
	return false
}

// Preview is what a list card needs to draw one book.
type Preview struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	AuthorName string `json:"author_name"`
	Image      string `json:"image"`
}

// Detail backs the detail overlay opened from a preview card.
type Detail struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	Description string `json:"description"`
	Image       string `json:"image"`
	AuthorName  string `json:"author_name"`
	Year        int    `json:"year"`
}

// ToPreview converts Book to Preview
func (b *Book) ToPreview(authorName string) Preview {
	return Preview{
		ID:         b.ID,
		Title:      b.Title,
		AuthorName: authorName,
		Image:      b.Image,
	}
}

// ToDetail converts Book to Detail. The subtitle reads "Author (year)".
func (b *Book) ToDetail(authorName string) Detail {
	year := b.Published.Year()
	return Detail{
		ID:          b.ID,
		Title:       b.Title,
		Subtitle:    fmt.Sprintf("%s (%d)", authorName, year),
		Description: b.Description,
		Image:       b.Image,
		AuthorName:  authorName,
		Year:        year,
	}
}
