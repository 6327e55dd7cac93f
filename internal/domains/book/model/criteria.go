package model

import (
	"net/url"
	"strings"
)

// AnyOption disables the author or genre predicate.
const AnyOption = "any"

// FilterCriteria is one search submission. It is transient: a new value is
// built for every submit.
type FilterCriteria struct {
	Title    string `json:"title" form:"title"`
	AuthorID string `json:"author" form:"author"`
	GenreID  string `json:"genre" form:"genre"`
}

// AnyCriteria matches every book.
func AnyCriteria() FilterCriteria {
	return FilterCriteria{AuthorID: AnyOption, GenreID: AnyOption}
}

// CriteriaFromForm reads a raw key-value form submission (title, author, genre).
func CriteriaFromForm(form url.Values) FilterCriteria {
	return FilterCriteria{
		Title:    form.Get("title"),
		AuthorID: form.Get("author"),
		GenreID:  form.Get("genre"),
	}
}

// AnyAuthor reports whether the author predicate is off. A missing field
// counts as "any".
func (c FilterCriteria) AnyAuthor() bool {
	return c.AuthorID == "" || c.AuthorID == AnyOption
}

// AnyGenre reports whether the genre predicate is off.
func (c FilterCriteria) AnyGenre() bool {
	return c.GenreID == "" || c.GenreID == AnyOption
}

// AnyTitle reports whether the title query is empty or whitespace only.
func (c FilterCriteria) AnyTitle() bool {
	return strings.TrimSpace(c.Title) == ""
}

// IsEmpty reports whether the criteria match the whole dataset.
func (c FilterCriteria) IsEmpty() bool {
	return c.AnyAuthor() && c.AnyGenre() && c.AnyTitle()
}

// Normalize replaces missing author/genre with AnyOption.
func (c FilterCriteria) Normalize() FilterCriteria {
	if c.AnyAuthor() {
		c.AuthorID = AnyOption
	}
	if c.AnyGenre() {
		c.GenreID = AnyOption
	}
	return c
}
