package ui

import (
	"book-catalog/internal/domains/book/model"
	"book-catalog/internal/domains/book/service"

	tea "github.com/charmbracelet/bubbletea"
)

type mode int

const (
	modeList mode = iota
	modeSearch
	modeDetail
)

// Model is the bubbletea model of the browser. It renders what the Session
// returns and forwards key presses to the two entry points.
type Model struct {
	session *service.Session
	cards   []model.Preview
	last    service.Page

	mode     mode
	form     searchForm
	detail   model.Detail
	selected int
	offset   int

	theme  ThemeName
	styles Styles
	width  int
	height int
	err    error
}

// NewModel starts on the unfiltered first page.
func NewModel(session *service.Session, theme ThemeName) Model {
	m := Model{
		session: session,
		form:    newSearchForm(session.Catalog()),
		theme:   theme,
		styles:  NewStyles(theme),
		width:   80,
		height:  24,
	}
	m.showPage(session.ApplyFilter(session.Criteria()))
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

// showPage applies a Page: a reset page replaces the cards and scrolls to the
// top, a follow-up page appends.
func (m *Model) showPage(p service.Page) {
	if p.Reset {
		m.cards = append([]model.Preview{}, p.Previews...)
		m.selected = 0
		m.offset = 0
	} else {
		m.cards = append(m.cards, p.Previews...)
	}
	m.last = p
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.form.title.Width = max(msg.Width-16, 10)
		m.clampScroll()
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.mode {
		case modeSearch:
			return m.updateSearch(msg)
		case modeDetail:
			return m.updateDetail(msg)
		default:
			return m.updateList(msg)
		}
	}
	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.err = nil

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if m.selected < len(m.cards)-1 {
			m.selected++
		} else if m.last.HasMore {
			m.showPage(m.session.LoadNextPage())
			m.selected++
		}
	case "m", " ":
		if m.last.HasMore {
			m.showPage(m.session.LoadNextPage())
		}
	case "/", "s":
		m.mode = modeSearch
		cmd := m.form.open()
		return m, cmd
	case "t":
		m.theme = m.theme.Toggle()
		m.styles = NewStyles(m.theme)
	case "enter":
		if len(m.cards) == 0 {
			return m, nil
		}
		detail, err := m.session.Detail(m.cards[m.selected].ID)
		if err != nil {
			m.err = err
			return m, nil
		}
		m.detail = detail
		m.mode = modeDetail
	}

	m.clampScroll()
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cmd, submitted, cancelled := m.form.update(msg)

	switch {
	case submitted:
		m.form.close()
		m.mode = modeList
		m.showPage(m.session.ApplyFilter(m.form.Criteria()))
	case cancelled:
		m.form.close()
		m.mode = modeList
	}
	return m, cmd
}

func (m Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter", "q", "backspace":
		m.mode = modeList
	}
	return m, nil
}

// visibleRows is how many cards fit between header and footer; a card takes
// two lines.
func (m *Model) visibleRows() int {
	return max((m.height-6)/2, 1)
}

func (m *Model) clampScroll() {
	rows := m.visibleRows()
	if m.selected < m.offset {
		m.offset = m.selected
	}
	if m.selected >= m.offset+rows {
		m.offset = m.selected - rows + 1
	}
}

// Cards returns the cards currently on screen, for tests.
func (m Model) Cards() []model.Preview { return m.cards }

// Theme returns the active theme.
func (m Model) Theme() ThemeName { return m.theme }
