package dialog

import (
	"testing"

	"github.com/1broseidon/termdialog/internal/geometry"
)

func newTestDialog(t *testing.T) (*Dialog, *Document) {
	t.Helper()
	doc := NewDocument()
	d := New(Options{
		Width:           600,
		Height:          400,
		TitlebarHeight:  40,
		MinVisibleStrip: 8,
		DockMargin:      8,
	}, doc)
	d.SetViewport(1000, 800)
	return d, doc
}

func pt(x, y int) geometry.Point {
	return geometry.Point{X: x, Y: y}
}

func TestOpenCentersInViewport(t *testing.T) {
	d, _ := newTestDialog(t)
	d.SetOpen(true)

	if got := d.Position(); got != pt(200, 200) {
		t.Fatalf("initial position = %+v, want {200 200}", got)
	}
	if d.State() != StateNormal {
		t.Fatalf("state = %v, want normal", d.State())
	}
}

func TestOpenBeforeViewportDefersCentering(t *testing.T) {
	d := New(Options{Width: 600, Height: 400}, nil)
	d.SetOpen(true)

	if got := d.Position(); got != pt(0, 0) {
		t.Fatalf("position before mount = %+v, want origin", got)
	}

	d.SetViewport(1000, 800)
	if got := d.Position(); got != pt(200, 200) {
		t.Fatalf("position after mount = %+v, want {200 200}", got)
	}

	// Later resizes do not recenter.
	d.SetViewport(2000, 2000)
	if got := d.Position(); got != pt(200, 200) {
		t.Fatalf("position after resize = %+v, want {200 200}", got)
	}
}

func TestDisplayStateFollowsLastAction(t *testing.T) {
	d, _ := newTestDialog(t)
	d.SetOpen(true)

	actions := []struct {
		apply func()
		want  DisplayState
	}{
		{d.Minimize, StateMinimized},
		{d.Maximize, StateMaximized},
		{d.Maximize, StateMaximized},
		{d.Restore, StateNormal},
		{d.Maximize, StateMaximized},
		{d.Minimize, StateMinimized},
		{d.Restore, StateNormal},
		{d.Restore, StateNormal},
	}
	for i, a := range actions {
		a.apply()
		if got := d.State(); got != a.want {
			t.Fatalf("after action %d: state = %v, want %v", i, got, a.want)
		}
	}
}

func TestStateActionsIgnoredWhileClosed(t *testing.T) {
	d, _ := newTestDialog(t)
	d.Maximize()
	if d.State() != StateNormal {
		t.Fatalf("closed dialog changed state to %v", d.State())
	}
}

func TestCloseThenReopenResetsState(t *testing.T) {
	for _, before := range []func(*Dialog){(*Dialog).Minimize, (*Dialog).Maximize, (*Dialog).Restore} {
		d, _ := newTestDialog(t)
		d.SetOpen(true)
		before(d)

		d.SetOpen(false)
		if d.State() != StateNormal {
			t.Fatalf("state after close = %v, want normal", d.State())
		}
		d.SetOpen(true)
		if d.State() != StateNormal {
			t.Fatalf("state after reopen = %v, want normal", d.State())
		}
	}
}

func TestReopenRecentersAfterDrag(t *testing.T) {
	d, doc := newTestDialog(t)
	d.SetOpen(true)
	d.StartDrag(pt(250, 250))
	doc.Move(pt(300, 260))
	doc.Up(pt(300, 260))

	d.SetOpen(false)
	d.SetOpen(true)
	if got := d.Position(); got != pt(200, 200) {
		t.Fatalf("reopen position = %+v, want {200 200}", got)
	}
}

func TestDragTranslatesFromAnchor(t *testing.T) {
	d, doc := newTestDialog(t)
	d.SetOpen(true)

	anchor := pt(210, 215)
	if !d.StartDrag(anchor) {
		t.Fatalf("StartDrag refused in normal state")
	}

	deltas := []geometry.Point{{X: 3, Y: -1}, {X: 7, Y: 4}, {X: -2, Y: 9}, {X: 11, Y: 0}}
	pointer := anchor
	sum := geometry.Point{}
	for _, delta := range deltas {
		pointer = pt(pointer.X+delta.X, pointer.Y+delta.Y)
		sum = pt(sum.X+delta.X, sum.Y+delta.Y)
		doc.Move(pointer)
	}

	want := pt(200+sum.X, 200+sum.Y)
	if got := d.Position(); got != want {
		t.Fatalf("position after moves = %+v, want %+v", got, want)
	}
}

func TestMissedMovesDoNotDrift(t *testing.T) {
	d, doc := newTestDialog(t)
	d.SetOpen(true)
	d.StartDrag(pt(250, 250))

	// Only the final move is delivered; position depends only on it.
	doc.Move(pt(400, 330))
	if got := d.Position(); got != pt(350, 280) {
		t.Fatalf("position = %+v, want {350 280}", got)
	}
}

func TestDragAboveTopSnapsToZero(t *testing.T) {
	d, doc := newTestDialog(t)
	d.SetOpen(true)

	d.StartDrag(pt(250, 250))
	doc.Move(pt(250, -50))
	if got := d.Position(); got != pt(200, -100) {
		t.Fatalf("mid-drag position = %+v, want {200 -100}", got)
	}
	doc.Up(pt(250, -50))

	if got := d.Position(); got != pt(200, 0) {
		t.Fatalf("corrected position = %+v, want {200 0}", got)
	}
	if d.Dragging() {
		t.Fatalf("session still active after release")
	}
}

func TestDragFarLeftKeepsStrip(t *testing.T) {
	d, doc := newTestDialog(t)
	d.SetOpen(true)

	d.StartDrag(pt(250, 250))
	doc.Move(pt(-900, 250))
	doc.Up(pt(-900, 250))

	if got := d.Position().X; got != -600+8 {
		t.Fatalf("corrected x = %d, want %d", got, -600+8)
	}
}

func TestMidDragMayLeaveViewport(t *testing.T) {
	d, doc := newTestDialog(t)
	d.SetOpen(true)
	d.StartDrag(pt(250, 250))
	doc.Move(pt(5000, 5000))

	if got := d.Position(); got != pt(4950, 4950) {
		t.Fatalf("mid-drag position clamped early: %+v", got)
	}
}

func TestMaximizeThenRestoreReturnsToPosition(t *testing.T) {
	d, doc := newTestDialog(t)
	d.SetOpen(true)
	d.StartDrag(pt(250, 250))
	doc.Move(pt(320, 300))
	doc.Up(pt(320, 300))
	before := d.Position()

	d.Maximize()
	layout := d.Layout()
	if layout.Rect != (geometry.Rect{X: 0, Y: 0, Width: 1000, Height: 800}) {
		t.Fatalf("maximized rect = %+v", layout.Rect)
	}
	if !layout.Docked || !layout.ContentVisible {
		t.Fatalf("maximized layout flags = %+v", layout)
	}

	d.Restore()
	if got := d.Position(); got != before {
		t.Fatalf("restored position = %+v, want %+v", got, before)
	}
	if got := d.Layout().Rect.Origin(); got != before {
		t.Fatalf("restored layout origin = %+v, want %+v", got, before)
	}
}

func TestDragIgnoredOutsideNormalState(t *testing.T) {
	for _, apply := range []func(*Dialog){(*Dialog).Minimize, (*Dialog).Maximize} {
		d, doc := newTestDialog(t)
		d.SetOpen(true)
		apply(d)
		before := d.Position()

		if d.StartDrag(pt(210, 210)) {
			t.Fatalf("StartDrag accepted in state %v", d.State())
		}
		doc.Move(pt(500, 500))
		doc.Up(pt(500, 500))

		if got := d.Position(); got != before {
			t.Fatalf("position changed in state %v: %+v", d.State(), got)
		}
		if doc.Listeners() != 0 {
			t.Fatalf("listeners attached in state %v", d.State())
		}
	}
}

func TestSecondPressWhileDraggingIgnored(t *testing.T) {
	d, doc := newTestDialog(t)
	d.SetOpen(true)
	d.StartDrag(pt(250, 250))

	if d.StartDrag(pt(300, 300)) {
		t.Fatalf("re-entrant StartDrag accepted")
	}
	if doc.Listeners() != 1 {
		t.Fatalf("Listeners() = %d, want 1", doc.Listeners())
	}
	doc.Move(pt(260, 250))
	if got := d.Position(); got != pt(210, 200) {
		t.Fatalf("position = %+v, want original anchor to hold", got)
	}
}

func TestListenersOnlyDuringSession(t *testing.T) {
	d, doc := newTestDialog(t)
	d.SetOpen(true)

	if doc.Listeners() != 0 {
		t.Fatalf("listeners before drag: %d", doc.Listeners())
	}
	d.StartDrag(pt(250, 250))
	if doc.Listeners() != 1 {
		t.Fatalf("listeners during drag: %d", doc.Listeners())
	}
	doc.Up(pt(250, 250))
	if doc.Listeners() != 0 {
		t.Fatalf("listeners after drag: %d", doc.Listeners())
	}

	for i := 0; i < 5; i++ {
		d.StartDrag(pt(250, 250))
		doc.Up(pt(250, 250))
	}
	if doc.Listeners() != 0 {
		t.Fatalf("listeners accumulated: %d", doc.Listeners())
	}
}

func TestUnmountReleasesListeners(t *testing.T) {
	d, doc := newTestDialog(t)
	d.SetOpen(true)
	d.StartDrag(pt(250, 250))

	d.Unmount()
	if doc.Listeners() != 0 {
		t.Fatalf("listeners after unmount: %d", doc.Listeners())
	}
	if d.Dragging() {
		t.Fatalf("still dragging after unmount")
	}
	doc.Move(pt(900, 900))
	if got := d.Position(); got != pt(200, 200) {
		t.Fatalf("ghost drag moved dialog to %+v", got)
	}
}

func TestCloseDuringDragReleasesListeners(t *testing.T) {
	d, doc := newTestDialog(t)
	d.SetOpen(true)
	d.StartDrag(pt(250, 250))
	d.SetOpen(false)

	if doc.Listeners() != 0 || d.Dragging() {
		t.Fatalf("drag session survived close")
	}
}

func TestMinimizeDuringDragEndsSession(t *testing.T) {
	d, doc := newTestDialog(t)
	d.SetOpen(true)
	d.StartDrag(pt(250, 250))
	doc.Move(pt(260, 260))

	d.Minimize()
	if d.Dragging() || doc.Listeners() != 0 {
		t.Fatalf("drag session survived minimize")
	}
	if got := d.Position(); got != pt(210, 210) {
		t.Fatalf("stored position = %+v, want {210 210}", got)
	}
}

func TestMinimizedLayoutDocksBottomRight(t *testing.T) {
	d, _ := newTestDialog(t)
	d.SetOpen(true)
	d.Minimize()

	layout := d.Layout()
	want := geometry.Rect{X: 400, Y: 800 - 8 - 40, Width: 600, Height: 40}
	if layout.Rect != want {
		t.Fatalf("minimized rect = %+v, want %+v", layout.Rect, want)
	}
	if layout.ContentVisible {
		t.Fatalf("content visible while minimized")
	}
	if !layout.Docked {
		t.Fatalf("minimized layout should be docked")
	}
}

func TestEndDragBeforeMountSkipsCorrection(t *testing.T) {
	d := New(Options{Width: 600, Height: 400, TitlebarHeight: 40, MinVisibleStrip: 8}, nil)
	d.SetOpen(true)
	d.StartDrag(pt(0, 0))
	d.UpdateDrag(pt(-50, -50))
	d.EndDrag()

	if got := d.Position(); got != pt(-50, -50) {
		t.Fatalf("position = %+v, want uncorrected {-50 -50}", got)
	}
}

func TestZeroViewportCorrectsToOrigin(t *testing.T) {
	d := New(Options{Width: 600, Height: 400, TitlebarHeight: 40, MinVisibleStrip: 8}, nil)
	d.SetViewport(0, 0)
	d.SetOpen(true)
	d.StartDrag(pt(5, 5))
	d.UpdateDrag(pt(-70, 90))
	d.EndDrag()

	if got := d.Position(); got != pt(0, 0) {
		t.Fatalf("position = %+v, want origin", got)
	}
}

func TestTitlebarRect(t *testing.T) {
	d, _ := newTestDialog(t)
	d.SetOpen(true)

	want := geometry.Rect{X: 200, Y: 200, Width: 600, Height: 40}
	if got := d.TitlebarRect(); got != want {
		t.Fatalf("TitlebarRect() = %+v, want %+v", got, want)
	}
}

func TestMoveToSkipsCorrection(t *testing.T) {
	d, _ := newTestDialog(t)
	d.SetOpen(true)
	d.MoveTo(pt(-900, 700))

	if got := d.Position(); got != pt(-900, 700) {
		t.Fatalf("position = %+v, want {-900 700}", got)
	}
	if got := d.Layout().Rect; got.X != -900 || got.Y != 700 {
		t.Fatalf("layout rect = %+v, want origin {-900 700}", got)
	}
}
