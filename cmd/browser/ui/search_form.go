package ui

import (
	"book-catalog/internal/domains/book/model"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	fieldTitle = iota
	fieldGenre
	fieldAuthor
	fieldCount
)

// searchForm is the search overlay: a title input plus genre and author
// pickers that start on "any".
type searchForm struct {
	title   textinput.Model
	genres  []model.Option
	authors []model.Option
	genre   int
	author  int
	focus   int
}

func newSearchForm(catalog *model.Catalog) searchForm {
	ti := textinput.New()
	ti.Placeholder = "Title"
	ti.Prompt = ""
	ti.CharLimit = 120

	return searchForm{
		title:   ti,
		genres:  catalog.GenreOptions(),
		authors: catalog.AuthorOptions(),
	}
}

// open focuses the title field.
func (f *searchForm) open() tea.Cmd {
	f.focus = fieldTitle
	return f.title.Focus()
}

func (f *searchForm) close() {
	f.title.Blur()
}

// Criteria turns the form state into a submission.
func (f *searchForm) Criteria() model.FilterCriteria {
	return model.FilterCriteria{
		Title:    f.title.Value(),
		GenreID:  f.genres[f.genre].Value,
		AuthorID: f.authors[f.author].Value,
	}
}

func (f *searchForm) nextField(delta int) tea.Cmd {
	f.focus = (f.focus + delta + fieldCount) % fieldCount
	if f.focus == fieldTitle {
		return f.title.Focus()
	}
	f.title.Blur()
	return nil
}

func (f *searchForm) cycle(delta int) {
	switch f.focus {
	case fieldGenre:
		f.genre = (f.genre + delta + len(f.genres)) % len(f.genres)
	case fieldAuthor:
		f.author = (f.author + delta + len(f.authors)) % len(f.authors)
	}
}

// update handles keys while the form is open. submitted/cancelled tell the
// parent model to close the overlay.
func (f *searchForm) update(msg tea.KeyMsg) (cmd tea.Cmd, submitted, cancelled bool) {
	switch msg.String() {
	case "enter":
		return nil, true, false
	case "esc":
		return nil, false, true
	case "tab", "down":
		return f.nextField(1), false, false
	case "shift+tab", "up":
		return f.nextField(-1), false, false
	case "left":
		if f.focus != fieldTitle {
			f.cycle(-1)
			return nil, false, false
		}
	case "right":
		if f.focus != fieldTitle {
			f.cycle(1)
			return nil, false, false
		}
	}

	if f.focus == fieldTitle {
		f.title, cmd = f.title.Update(msg)
	}
	return cmd, false, false
}
