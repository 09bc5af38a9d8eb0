package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

const sgrReset = "\x1b[0m"

// overlay splices fg over bg with fg's top-left cell at (x, y). bg is padded
// or trimmed to width x height; the parts of fg outside that canvas are
// clipped, so x and y may be negative.
func overlay(bg, fg string, x, y, width, height int) string {
	bgLines := strings.Split(bg, "\n")
	for len(bgLines) < height {
		bgLines = append(bgLines, "")
	}
	if len(bgLines) > height {
		bgLines = bgLines[:height]
	}

	for i, line := range strings.Split(fg, "\n") {
		row := y + i
		if row < 0 {
			continue
		}
		if row >= height {
			break
		}

		col := x
		if col < 0 {
			line = ansi.TruncateLeft(line, -col, "")
			col = 0
		}
		if col >= width {
			continue
		}
		line = ansi.Truncate(line, width-col, "")
		w := ansi.StringWidth(line)
		if w == 0 {
			continue
		}

		base := bgLines[row]
		if bw := ansi.StringWidth(base); bw < width {
			base += strings.Repeat(" ", width-bw)
		}
		// A wide glyph cut by either splice edge is replaced with spaces.
		prefix := ansi.Truncate(base, col, "")
		if pw := ansi.StringWidth(prefix); pw < col {
			prefix += strings.Repeat(" ", col-pw)
		}
		suffix := fitLeft(ansi.TruncateLeft(base, col+w, ""), width-col-w)
		bgLines[row] = prefix + sgrReset + line + sgrReset + suffix
	}

	return strings.Join(bgLines, "\n")
}

// fitLeft trims or left-pads s to exactly n cells, keeping its right end.
func fitLeft(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if w := ansi.StringWidth(s); w > n {
		s = ansi.TruncateLeft(s, w-n, "")
	}
	if w := ansi.StringWidth(s); w < n {
		s = strings.Repeat(" ", n-w) + s
	}
	return s
}
