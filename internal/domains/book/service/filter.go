package service

import (
	"strings"

	"book-catalog/internal/domains/book/model"

	"golang.org/x/text/cases"
)

// Filter returns the books matching every active predicate of criteria, in
// dataset order. It never fails: no match yields an empty, non-nil slice.
//
// Title matching folds case on both sides and looks for the raw query as a
// substring; the query is trimmed only to decide whether it is empty.
func Filter(books []model.Book, criteria model.FilterCriteria) []model.Book {
	result := make([]model.Book, 0, len(books))

	anyTitle := criteria.AnyTitle()
	anyAuthor := criteria.AnyAuthor()
	anyGenre := criteria.AnyGenre()

	folder := cases.Fold()
	query := folder.String(criteria.Title)

	for i := range books {
		b := &books[i]

		if !anyGenre && !b.HasGenre(criteria.GenreID) {
			continue
		}
		if !anyTitle && !strings.Contains(folder.String(b.Title), query) {
			continue
		}
		if !anyAuthor && b.AuthorID != criteria.AuthorID {
			continue
		}
		result = append(result, *b)
	}

	return result
}
