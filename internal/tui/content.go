package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/1broseidon/termdialog/internal/config"
)

const placeholderContent = "Dialog Content"

// bodyContent renders the dialog body for a given inner size. Markdown is
// rendered with glamour and cached per wrap width.
type bodyContent struct {
	markdown string
	style    string

	cachedWidth int
	cached      string
}

// loadContent reads the configured markdown file. An empty path yields the
// built-in placeholder.
func loadContent(c config.ContentConfig) (*bodyContent, error) {
	bc := &bodyContent{style: c.Style}
	if strings.TrimSpace(c.File) == "" {
		return bc, nil
	}
	data, err := os.ReadFile(c.File)
	if err != nil {
		return bc, fmt.Errorf("failed to read content file: %w", err)
	}
	bc.markdown = string(data)
	return bc, nil
}

// render returns the body text for an inner area of width x height.
func (c *bodyContent) render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if c.markdown == "" {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, placeholderContent)
	}
	if c.cachedWidth == width && c.cached != "" {
		return c.cached
	}

	out := c.markdown
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(c.style),
		glamour.WithWordWrap(width),
	)
	if err == nil {
		if rendered, err := r.Render(c.markdown); err == nil {
			out = strings.TrimRight(rendered, "\n ")
		}
	}
	out = clipLines(out, width)

	c.cachedWidth = width
	c.cached = out
	return out
}

// clipLines truncates every line of s to width cells so the viewport never
// wraps.
func clipLines(s string, width int) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = ansi.Truncate(l, width, "")
	}
	return strings.Join(lines, "\n")
}
