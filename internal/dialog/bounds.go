package dialog

import "github.com/1broseidon/termdialog/internal/geometry"

// Correct returns the resting origin for a box released at box.X/box.Y so
// that it stays reachable inside viewport. Each axis is clamped on its own:
//
//   - the title bar may not sit above the top edge
//   - the title bar must stay visible at the bottom edge
//   - at least minVisibleStrip columns stay grabbable on the left and right
//
// A non-positive viewport dimension resolves that axis to 0.
func Correct(box geometry.Rect, viewport geometry.Size, titlebarHeight, minVisibleStrip int) geometry.Point {
	return geometry.Point{
		X: correctX(box.X, box.Width, viewport.Width, minVisibleStrip),
		Y: correctY(box.Y, viewport.Height, titlebarHeight),
	}
}

func correctY(top, viewportHeight, titlebarHeight int) int {
	if viewportHeight <= 0 {
		return 0
	}
	bottom := viewportHeight - titlebarHeight
	if bottom < 0 {
		bottom = 0
	}
	if top < 0 {
		return 0
	}
	if top > bottom {
		return bottom
	}
	return top
}

func correctX(left, width, viewportWidth, minVisibleStrip int) int {
	if viewportWidth <= 0 {
		return 0
	}
	minLeft := -width + minVisibleStrip
	maxLeft := viewportWidth - minVisibleStrip
	if left < minLeft {
		return minLeft
	}
	if left > maxLeft {
		return maxLeft
	}
	return left
}
