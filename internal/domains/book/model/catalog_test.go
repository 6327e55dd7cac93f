package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCatalog_Defaults(t *testing.T) {
	c := NewCatalog(nil, nil, nil, 0)

	assert.Equal(t, DefaultPageSize, c.PageSize)
	assert.NotNil(t, c.Authors)
	assert.NotNil(t, c.Genres)
	assert.Equal(t, []Option{{Value: AnyOption, Label: "All Authors"}}, c.AuthorOptions())
}

func TestCatalog_Lookups(t *testing.T) {
	books := []Book{
		{ID: "1", Title: "Dune", AuthorID: "a1"},
		{ID: "2", Title: "Orphan", AuthorID: "ghost"},
	}
	c := NewCatalog(books, map[string]string{"a1": "Frank Herbert"}, map[string]string{"g1": "SF"}, 12)

	b, ok := c.FindBook("2")
	require.True(t, ok)
	assert.Equal(t, "Orphan", b.Title)

	_, ok = c.FindBook("3")
	assert.False(t, ok)

	assert.Equal(t, "Frank Herbert", c.AuthorName("a1"))
	assert.Equal(t, "ghost", c.AuthorName("ghost"))
	assert.Equal(t, "SF", c.GenreName("g1"))

	assert.Equal(t, []Preview{
		{ID: "1", Title: "Dune", AuthorName: "Frank Herbert"},
		{ID: "2", Title: "Orphan", AuthorName: "ghost"},
	}, c.Previews(books))
}

func TestCatalog_OptionsSortedByLabel(t *testing.T) {
	c := NewCatalog(nil, nil, map[string]string{
		"g3": "Poetry",
		"g1": "Fantasy",
		"g2": "Biography",
	}, 0)

	assert.Equal(t, []Option{
		{Value: AnyOption, Label: "All Genres"},
		{Value: "g2", Label: "Biography"},
		{Value: "g1", Label: "Fantasy"},
		{Value: "g3", Label: "Poetry"},
	}, c.GenreOptions())
}

func TestBook_ToDetail(t *testing.T) {
	b := Book{
		ID:        "1",
		Title:     "Dune",
		Published: time.Date(1965, time.August, 1, 0, 0, 0, 0, time.UTC),
	}

	d := b.ToDetail("Frank Herbert")

	assert.Equal(t, "Frank Herbert (1965)", d.Subtitle)
	assert.Equal(t, 1965, d.Year)
}

func TestCatalog_CheckCriteria(t *testing.T) {
	c := NewCatalog(nil, map[string]string{"a1": "Frank Herbert"}, map[string]string{"g1": "SF"}, 0)

	assert.NoError(t, c.CheckCriteria(AnyCriteria()))
	assert.NoError(t, c.CheckCriteria(FilterCriteria{AuthorID: "a1", GenreID: "g1"}))
	assert.ErrorIs(t, c.CheckCriteria(FilterCriteria{AuthorID: "a9"}), ErrAuthorNotFound)
	assert.ErrorIs(t, c.CheckCriteria(FilterCriteria{GenreID: "g7"}), ErrGenreNotFound)
}
