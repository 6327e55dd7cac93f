package main

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"book-catalog/internal/domains/book/model"
	"book-catalog/internal/domains/book/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSession(n, pageSize int) *service.Session {
	books := make([]model.Book, n)
	for i := range books {
		books[i] = model.Book{
			ID:        fmt.Sprintf("b%d", i),
			Title:     fmt.Sprintf("Book %d", i),
			AuthorID:  "a1",
			GenreIDs:  []string{"g1"},
			Published: time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
		}
	}
	catalog := model.NewCatalog(books, map[string]string{"a1": "Frank Herbert"}, map[string]string{"g1": "SF"}, pageSize)
	return service.NewSession(catalog)
}

func TestSearchPages_StopsWhenExhausted(t *testing.T) {
	pages := searchPages(testSession(25, 12), model.AnyCriteria(), 10)

	require.Len(t, pages, 3)
	assert.Len(t, pages[0].Previews, 12)
	assert.Len(t, pages[2].Previews, 1)
	assert.False(t, pages[2].HasMore)
}

func TestSearchPages_OnePage(t *testing.T) {
	pages := searchPages(testSession(25, 12), model.AnyCriteria(), 1)

	require.Len(t, pages, 1)
	assert.True(t, pages[0].HasMore)
}

func TestRenderFooter(t *testing.T) {
	var buf bytes.Buffer

	renderFooter(&buf, service.Page{Total: 25, Remaining: 13, HasMore: true})
	assert.Contains(t, buf.String(), "Show more (13)")

	buf.Reset()
	renderFooter(&buf, service.Page{NoResults: true})
	assert.Contains(t, buf.String(), noResultsMessage)

	buf.Reset()
	renderFooter(&buf, service.Page{Total: 3})
	assert.Contains(t, buf.String(), "3 book(s)")
}

func TestRenderPageAndDetail(t *testing.T) {
	session := testSession(2, 12)
	var buf bytes.Buffer

	renderPage(&buf, session.ApplyFilter(model.AnyCriteria()))
	assert.Contains(t, buf.String(), "Book 1 · Frank Herbert")

	d, err := session.Detail("b0")
	require.NoError(t, err)
	buf.Reset()
	renderDetail(&buf, d)
	assert.Contains(t, buf.String(), "Frank Herbert (2000)")
}
