package model

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCriteriaFromForm(t *testing.T) {
	form := url.Values{}
	form.Set("title", " Dune")
	form.Set("author", "a2")

	c := CriteriaFromForm(form)

	assert.Equal(t, " Dune", c.Title)
	assert.Equal(t, "a2", c.AuthorID)
	assert.True(t, c.AnyGenre())
	assert.False(t, c.AnyAuthor())
	assert.False(t, c.IsEmpty())
}

func TestFilterCriteria_IsEmpty(t *testing.T) {
	assert.True(t, AnyCriteria().IsEmpty())
	assert.True(t, FilterCriteria{}.IsEmpty())
	assert.True(t, FilterCriteria{Title: " \t"}.IsEmpty())
	assert.False(t, FilterCriteria{GenreID: "g1"}.IsEmpty())
}

func TestFilterCriteria_Normalize(t *testing.T) {
	c := FilterCriteria{Title: "x", GenreID: "g1"}.Normalize()

	assert.Equal(t, FilterCriteria{Title: "x", AuthorID: AnyOption, GenreID: "g1"}, c)
}
