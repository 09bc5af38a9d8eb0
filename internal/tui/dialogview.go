package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/1broseidon/termdialog/internal/config"
	"github.com/1broseidon/termdialog/internal/dialog"
)

// toolbarButton identifies a title-bar button.
type toolbarButton int

const (
	buttonMinimize toolbarButton = iota
	buttonMaximize
	buttonNormal
	buttonClose
	buttonCount // sentinel for iteration
)

func (b toolbarButton) String() string {
	switch b {
	case buttonMinimize:
		return "min"
	case buttonMaximize:
		return "MAX"
	case buttonNormal:
		return "normal"
	case buttonClose:
		return "X"
	default:
		return "?"
	}
}

func (b toolbarButton) width() int {
	return runewidth.StringWidth(b.String()) + 2
}

// buttonZone is the column span of a button, relative to the dialog's left
// edge. End is exclusive.
type buttonZone struct {
	button     toolbarButton
	start, end int
}

// toolbarWidth is the width of all buttons plus the one-cell gaps between
// them.
func toolbarWidth() int {
	w := int(buttonCount) - 1
	for b := toolbarButton(0); b < buttonCount; b++ {
		w += b.width()
	}
	return w
}

// toolbarZones returns the visible button spans for a title bar of the given
// width. Buttons are right-aligned; a narrow bar clips them from the left.
func toolbarZones(width int) []buttonZone {
	zones := make([]buttonZone, 0, buttonCount)
	col := width - toolbarWidth()
	for b := toolbarButton(0); b < buttonCount; b++ {
		start, end := col, col+b.width()
		col = end + 1
		if start < 0 {
			start = 0
		}
		if end > width {
			end = width
		}
		if start >= end {
			continue
		}
		zones = append(zones, buttonZone{button: b, start: start, end: end})
	}
	return zones
}

// buttonAt returns the button under column col, if any.
func buttonAt(width, col int) (toolbarButton, bool) {
	for _, z := range toolbarZones(width) {
		if col >= z.start && col < z.end {
			return z.button, true
		}
	}
	return 0, false
}

// fitTitle folds title onto one row, pads it by one leading space and
// truncates it to width cells.
func fitTitle(title string, width int) string {
	if width < 2 {
		return ""
	}
	return " " + runewidth.Truncate(config.NormalizeTitle(title), width-1, "…")
}

func renderToolbar(th theme) string {
	parts := make([]string, 0, 2*int(buttonCount))
	for b := toolbarButton(0); b < buttonCount; b++ {
		if b > 0 {
			parts = append(parts, th.gap.Render(" "))
		}
		parts = append(parts, th.button.Render(" "+b.String()+" "))
	}
	return strings.Join(parts, "")
}

// renderTitlebar renders the single title row: title on the left, buttons on
// the right.
func renderTitlebar(title string, width int, th theme) string {
	if width <= 0 {
		return ""
	}
	start := width - toolbarWidth()

	var b strings.Builder
	if start > 0 {
		b.WriteString(th.titleBar.Width(start).Render(fitTitle(title, start)))
	}
	buttons := renderToolbar(th)
	if start < 0 {
		buttons = ansi.TruncateLeft(buttons, -start, "")
	}
	b.WriteString(buttons)
	return ansi.Truncate(b.String(), width, "")
}

// measureTitlebar returns the rendered height of the title row.
func measureTitlebar(th theme) int {
	return lipgloss.Height(renderTitlebar(" ", toolbarWidth()+2, th))
}

// bodySize returns the inner size of the body area for a layout.
func bodySize(l dialog.Layout, titlebarHeight int) (int, int) {
	if !l.ContentVisible {
		return 0, 0
	}
	w := l.Rect.Width - 2
	h := l.Rect.Height - titlebarHeight - 1
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return w, h
}

// renderDialog renders the dialog box at the size given by the layout. body
// is the already sized inner body content.
func renderDialog(l dialog.Layout, titlebarHeight int, title, body string, th theme) string {
	r := l.Rect
	if r.Width <= 0 || r.Height <= 0 {
		return ""
	}

	rows := make([]string, 0, r.Height)
	rows = append(rows, renderTitlebar(title, r.Width, th))
	for i := 1; i < titlebarHeight && len(rows) < r.Height; i++ {
		rows = append(rows, th.titleBar.Width(r.Width).Render(""))
	}

	if l.ContentVisible {
		if h := r.Height - len(rows); h > 0 {
			rows = append(rows, renderBody(body, r.Width, h, th))
		}
	}
	return strings.Join(rows, "\n")
}

func renderBody(body string, width, height int, th theme) string {
	if width < 2 || height < 2 {
		return blankCanvas(width, height)
	}
	return th.border.
		Width(width - 2).
		Height(height - 1).
		MaxWidth(width).
		MaxHeight(height).
		Render(body)
}
