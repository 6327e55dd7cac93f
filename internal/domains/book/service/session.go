package service

import (
	"fmt"

	"book-catalog/internal/domains/book/model"
)

// Page is what the view layer draws after an entry point runs. Previews holds
// only the newly revealed cards; Reset tells the view to clear the list first.
type Page struct {
	Previews  []model.Preview `json:"previews"`
	Reset     bool            `json:"reset"`
	Total     int             `json:"total"`
	Remaining int             `json:"remaining"`
	HasMore   bool            `json:"has_more"`
	NoResults bool            `json:"no_results"`
	Number    int             `json:"page"`
}

// ShowMoreLabel renders the show-more button text.
func (p Page) ShowMoreLabel() string {
	return fmt.Sprintf("Show more (%d)", p.Remaining)
}

// Session owns the browse state of one front-end: the last criteria, the
// match-set they produced and the pagination cursor over it. A Session is not
// safe for concurrent use.
type Session struct {
	catalog  *model.Catalog
	criteria model.FilterCriteria
	matches  []model.Book
	cursor   *Cursor
}

// NewSession starts a session showing the whole catalog.
func NewSession(catalog *model.Catalog) *Session {
	s := &Session{
		catalog: catalog,
		cursor:  NewCursor(catalog.PageSize),
	}
	s.ApplyFilter(model.AnyCriteria())
	return s
}

// ApplyFilter recomputes the match-set for criteria, resets the cursor and
// returns the first page.
func (s *Session) ApplyFilter(criteria model.FilterCriteria) Page {
	s.criteria = criteria.Normalize()
	s.matches = Filter(s.catalog.Books, s.criteria)
	s.cursor.Reset()

	total := len(s.matches)
	return Page{
		Previews:  s.catalog.Previews(Slice(s.matches, s.cursor.First(total))),
		Reset:     true,
		Total:     total,
		Remaining: s.cursor.Remaining(total),
		HasMore:   s.cursor.HasMore(total),
		NoResults: total == 0,
		Number:    s.cursor.Page(),
	}
}

// LoadNextPage reveals the next slice of the current match-set. When nothing
// is left it returns an empty page with HasMore false.
func (s *Session) LoadNextPage() Page {
	total := len(s.matches)
	w, hasMore := s.cursor.Advance(total)

	return Page{
		Previews:  s.catalog.Previews(Slice(s.matches, w)),
		Total:     total,
		Remaining: s.cursor.Remaining(total),
		HasMore:   hasMore,
		NoResults: total == 0,
		Number:    s.cursor.Page(),
	}
}

// Detail resolves a preview card click. The lookup spans the whole dataset,
// not just the current match-set.
func (s *Session) Detail(id string) (model.Detail, error) {
	b, ok := s.catalog.FindBook(id)
	if !ok {
		return model.Detail{}, fmt.Errorf("%w: %s", model.ErrBookNotFound, id)
	}
	return b.ToDetail(s.catalog.AuthorName(b.AuthorID)), nil
}

// Catalog returns the dataset the session browses.
func (s *Session) Catalog() *model.Catalog { return s.catalog }

// Criteria returns the criteria of the current match-set.
func (s *Session) Criteria() model.FilterCriteria { return s.criteria }

// Matches returns the full current match-set.
func (s *Session) Matches() []model.Book { return s.matches }

// Revealed returns every card revealed so far for the current match-set.
func (s *Session) Revealed() []model.Preview {
	end := min(s.cursor.Page()*s.cursor.Size(), len(s.matches))
	return s.catalog.Previews(s.matches[:end])
}
