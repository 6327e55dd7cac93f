// Package ui is the interactive terminal front-end of the catalog browser.
package ui

import "github.com/charmbracelet/lipgloss"

// ThemeName selects the day or night palette.
type ThemeName string

const (
	ThemeDay   ThemeName = "day"
	ThemeNight ThemeName = "night"
)

// Palette: dark is rgb(10,10,20), light is rgb(255,255,255); night swaps them.
var (
	colorDark   = lipgloss.Color("#0a0a14")
	colorLight  = lipgloss.Color("#ffffff")
	colorAccent = lipgloss.Color("#00967a")
	colorMuted  = lipgloss.Color("#6b6b7b")
	colorAlert  = lipgloss.Color("#e53935")
)

// Styles holds every style the views use for one theme.
type Styles struct {
	Name     ThemeName
	Base     lipgloss.Style
	Header   lipgloss.Style
	Card     lipgloss.Style
	Selected lipgloss.Style
	Author   lipgloss.Style
	Button   lipgloss.Style
	Disabled lipgloss.Style
	Message  lipgloss.Style
	Overlay  lipgloss.Style
	Label    lipgloss.Style
	Help     lipgloss.Style
}

// NewStyles builds the styles for theme.
func NewStyles(theme ThemeName) Styles {
	fg, bg := colorDark, colorLight
	if theme == ThemeNight {
		fg, bg = colorLight, colorDark
	}

	base := lipgloss.NewStyle().Foreground(fg).Background(bg)
	return Styles{
		Name:     theme,
		Base:     base,
		Header:   base.Bold(true).Padding(0, 1),
		Card:     base.PaddingLeft(2),
		Selected: base.Bold(true).Foreground(colorAccent),
		Author:   base.Foreground(colorMuted).PaddingLeft(4),
		Button:   base.Bold(true).Foreground(colorAccent).Padding(0, 1),
		Disabled: base.Foreground(colorMuted).Padding(0, 1),
		Message:  base.Foreground(colorAlert).Padding(1, 2),
		Overlay: base.
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(1, 2),
		Label: base.Bold(true).Width(8),
		Help:  base.Foreground(colorMuted).Padding(0, 1),
	}
}

// PreferredTheme mirrors the terminal's own background.
func PreferredTheme() ThemeName {
	if lipgloss.HasDarkBackground() {
		return ThemeNight
	}
	return ThemeDay
}

// Toggle returns the other theme.
func (t ThemeName) Toggle() ThemeName {
	if t == ThemeNight {
		return ThemeDay
	}
	return ThemeNight
}
