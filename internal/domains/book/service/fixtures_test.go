package service

import (
	"fmt"
	"time"

	"book-catalog/internal/domains/book/model"
)

// newTestCatalog builds n books b0..b(n-1), alternating between two authors,
// all tagged g1, with page size pageSize.
func newTestCatalog(n, pageSize int) *model.Catalog {
	books := make([]model.Book, n)
	for i := range books {
		author := "a1"
		if i%2 == 1 {
			author = "a2"
		}
		books[i] = model.Book{
			ID:          fmt.Sprintf("b%d", i),
			Title:       fmt.Sprintf("Book %d", i),
			AuthorID:    author,
			GenreIDs:    []string{"g1"},
			Description: "Description",
			Published:   time.Date(1990+i, time.March, 1, 0, 0, 0, 0, time.UTC),
			Image:       fmt.Sprintf("https://img.example/%d.jpg", i),
		}
	}
	return model.NewCatalog(books,
		map[string]string{"a1": "Ursula K. Le Guin", "a2": "Frank Herbert"},
		map[string]string{"g1": "Science Fiction", "g2": "Fantasy", "g7": "Poetry"},
		pageSize,
	)
}

func bookIDs(books []model.Book) []string {
	ids := make([]string, len(books))
	for i, b := range books {
		ids[i] = b.ID
	}
	return ids
}

func previewIDs(previews []model.Preview) []string {
	ids := make([]string, len(previews))
	for i, p := range previews {
		ids[i] = p.ID
	}
	return ids
}
