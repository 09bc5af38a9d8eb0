package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/1broseidon/termdialog/internal/config"
)

// theme holds the styles derived from the appearance config.
type theme struct {
	titleBar lipgloss.Style
	button   lipgloss.Style
	gap      lipgloss.Style
	border   lipgloss.Style
	backdrop lipgloss.Style
	trigger  lipgloss.Style
	help     lipgloss.Style
	notice   lipgloss.Style

	backdropChar string
	showBackdrop bool
}

func newTheme(a config.AppearanceConfig) theme {
	accent := lipgloss.Color(a.AccentColor)
	if strings.TrimSpace(a.AccentColor) == "" {
		accent = lipgloss.Color("62")
	}

	ch := a.BackdropChar
	if ch == "" {
		ch = " "
	}

	return theme{
		titleBar: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(accent),
		button: lipgloss.NewStyle().
			Foreground(lipgloss.Color("250")).
			Background(lipgloss.Color("236")),
		gap: lipgloss.NewStyle().
			Background(accent),
		border: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true, true, true).
			BorderForeground(accent),
		backdrop: lipgloss.NewStyle().
			Foreground(lipgloss.Color("238")),
		trigger: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 2),
		help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Padding(0, 1),
		notice: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),

		backdropChar: ch,
		showBackdrop: a.Backdrop,
	}
}

// blankCanvas returns height rows of width spaces.
func blankCanvas(width, height int) string {
	if width < 0 {
		width = 0
	}
	rows := make([]string, height)
	for i := range rows {
		rows[i] = strings.Repeat(" ", width)
	}
	return strings.Join(rows, "\n")
}
