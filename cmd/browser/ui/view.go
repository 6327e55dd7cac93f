package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const noResultsMessage = "No results found. Your filters might be too narrow."

func (m Model) View() string {
	switch m.mode {
	case modeSearch:
		return m.viewSearch()
	case modeDetail:
		return m.viewDetail()
	}
	return m.viewList()
}

func (m Model) viewList() string {
	var sb strings.Builder

	header := fmt.Sprintf("Book Catalog · %d match(es)", m.last.Total)
	if c := m.session.Criteria(); !c.IsEmpty() {
		header += " · filtered"
	}
	sb.WriteString(m.styles.Header.Render(header))
	sb.WriteString("\n\n")

	if m.last.NoResults {
		sb.WriteString(m.styles.Message.Render(noResultsMessage))
		sb.WriteString("\n")
	}

	end := min(m.offset+m.visibleRows(), len(m.cards))
	for i := m.offset; i < end; i++ {
		card := m.cards[i]
		if i == m.selected {
			sb.WriteString(m.styles.Selected.Render("▸ " + card.Title))
		} else {
			sb.WriteString(m.styles.Card.Render(card.Title))
		}
		sb.WriteString("\n")
		sb.WriteString(m.styles.Author.Render(card.AuthorName))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	button := m.styles.Disabled
	if m.last.HasMore {
		button = m.styles.Button
	}
	sb.WriteString(button.Render(m.last.ShowMoreLabel()))
	sb.WriteString("\n")

	if m.err != nil {
		sb.WriteString(m.styles.Message.Render(m.err.Error()))
		sb.WriteString("\n")
	}

	sb.WriteString(m.styles.Help.Render("↑/↓ move · enter details · m show more · / search · t theme · q quit"))
	return sb.String()
}

func (m Model) viewSearch() string {
	f := &m.form
	rows := []string{
		m.field(fieldTitle, "Title", f.title.View()),
		m.field(fieldGenre, "Genre", "‹ "+f.genres[f.genre].Label+" ›"),
		m.field(fieldAuthor, "Author", "‹ "+f.authors[f.author].Label+" ›"),
		"",
		m.styles.Help.Render("tab next field · ←/→ change · enter search · esc cancel"),
	}
	return m.styles.Overlay.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m Model) field(idx int, label, value string) string {
	l := m.styles.Label.Render(label)
	if m.form.focus == idx {
		l = m.styles.Label.Foreground(colorAccent).Render(label)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, l, " ", value)
}

func (m Model) viewDetail() string {
	d := m.detail
	width := max(m.width-8, 20)

	body := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Header.Render(d.Title),
		m.styles.Author.PaddingLeft(1).Render(d.Subtitle),
		"",
		m.styles.Base.Width(width).Render(d.Description),
		"",
		m.styles.Help.Render(d.Image),
		m.styles.Help.Render("esc close"),
	)
	return m.styles.Overlay.Render(body)
}
