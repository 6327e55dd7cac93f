package service

import (
	"testing"

	"book-catalog/internal/domains/book/model"

	"github.com/stretchr/testify/assert"
)

func TestCursor_TwentyFiveBooksPageTwelve(t *testing.T) {
	c := NewCursor(12)
	total := 25

	assert.Equal(t, Window{Start: 0, End: 12}, c.First(total))
	assert.Equal(t, 13, c.Remaining(total))
	assert.True(t, c.HasMore(total))

	w, more := c.Advance(total)
	assert.Equal(t, Window{Start: 12, End: 24}, w)
	assert.Equal(t, 1, c.Remaining(total))
	assert.True(t, more)

	w, more = c.Advance(total)
	assert.Equal(t, Window{Start: 24, End: 25}, w)
	assert.Equal(t, 0, c.Remaining(total))
	assert.False(t, more)

	w, more = c.Advance(total)
	assert.Zero(t, w.Len())
	assert.False(t, more)
}

func TestCursor_ExactMultiple(t *testing.T) {
	c := NewCursor(12)
	total := 24

	assert.True(t, c.HasMore(total))

	w, more := c.Advance(total)
	assert.Equal(t, Window{Start: 12, End: 24}, w)
	assert.False(t, more)
	assert.Equal(t, 0, c.Remaining(total))

	w, more = c.Advance(total)
	assert.Zero(t, w.Len())
	assert.False(t, more)
}

func TestCursor_EmptyMatchSet(t *testing.T) {
	c := NewCursor(12)

	assert.Zero(t, c.First(0).Len())
	assert.Equal(t, 0, c.Remaining(0))
	assert.False(t, c.HasMore(0))

	w, more := c.Advance(0)
	assert.Zero(t, w.Len())
	assert.False(t, more)
}

func TestCursor_SmallerThanOnePage(t *testing.T) {
	c := NewCursor(12)

	assert.Equal(t, Window{Start: 0, End: 5}, c.First(5))
	assert.False(t, c.HasMore(5))
}

func TestCursor_ExhaustsAndStaysExhausted(t *testing.T) {
	c := NewCursor(7)
	total := 50
	seen := c.First(total).Len()

	more := c.HasMore(total)
	for more {
		var w Window
		w, more = c.Advance(total)
		assert.Positive(t, w.Len())
		seen += w.Len()
	}
	assert.Equal(t, total, seen)

	for i := 0; i < 3; i++ {
		w, more := c.Advance(total)
		assert.Zero(t, w.Len())
		assert.False(t, more)
	}
}

func TestCursor_ResetGoesBackToFirstPage(t *testing.T) {
	c := NewCursor(10)
	c.Advance(100)
	c.Advance(100)
	assert.Equal(t, 3, c.Page())

	c.Reset()

	assert.Equal(t, 1, c.Page())
	assert.Equal(t, 90, c.Remaining(100))
}

func TestNewCursor_DefaultSize(t *testing.T) {
	assert.Equal(t, model.DefaultPageSize, NewCursor(0).Size())
	assert.Equal(t, model.DefaultPageSize, NewCursor(-3).Size())
}

func TestSlice_EmptyWindow(t *testing.T) {
	got := Slice([]int{1, 2, 3}, Window{Start: 3, End: 3})

	assert.NotNil(t, got)
	assert.Empty(t, got)
}
