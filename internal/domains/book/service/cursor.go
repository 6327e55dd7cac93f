package service

import "book-catalog/internal/domains/book/model"

// Window is a half-open range [Start, End) into a match-set.
type Window struct {
	Start int
	End   int
}

// Len returns the number of elements in the window.
func (w Window) Len() int {
	return w.End - w.Start
}

// Slice returns items[w.Start:w.End].
func Slice[T any](items []T, w Window) []T {
	if w.Len() <= 0 {
		return []T{}
	}
	return items[w.Start:w.End]
}

// Cursor counts how many fixed-size pages of the current match-set have been
// revealed. Page numbers are 1-based; a fresh cursor sits on page 1.
type Cursor struct {
	size int
	page int
}

// NewCursor creates a cursor with page size size. A non-positive size falls
// back to model.DefaultPageSize.
func NewCursor(size int) *Cursor {
	if size <= 0 {
		size = model.DefaultPageSize
	}
	return &Cursor{size: size, page: 1}
}

// Size returns the page size P.
func (c *Cursor) Size() int { return c.size }

// Page returns the number of pages revealed so far.
func (c *Cursor) Page() int { return c.page }

// Reset goes back to page 1. Call it whenever the match-set changes.
func (c *Cursor) Reset() {
	c.page = 1
}

// First returns the window drawn right after Reset: [0, min(P, total)).
func (c *Cursor) First(total int) Window {
	return Window{Start: 0, End: min(c.size, total)}
}

// Advance reveals the next page when one exists and reports whether more
// pages remain after it. Once the match-set is exhausted it returns an empty
// window and false without moving.
func (c *Cursor) Advance(total int) (Window, bool) {
	start := c.page * c.size
	if start >= total {
		return Window{Start: total, End: total}, false
	}

	w := Window{Start: start, End: min(start+c.size, total)}
	c.page++
	return w, c.HasMore(total)
}

// Remaining returns how many matches are still hidden: max(0, total - page*P).
// It feeds the "Show more (N)" label only.
func (c *Cursor) Remaining(total int) int {
	return max(0, total-c.page*c.size)
}

// HasMore reports whether another Advance would reveal anything.
func (c *Cursor) HasMore(total int) bool {
	return c.page*c.size < total
}
