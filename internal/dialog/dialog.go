package dialog

import (
	"log/slog"

	"github.com/1broseidon/termdialog/internal/geometry"
)

// Defaults for a dialog sized in terminal cells.
const (
	DefaultWidth           = 60
	DefaultHeight          = 18
	DefaultTitlebarHeight  = 1
	DefaultMinVisibleStrip = 8
	DefaultDockMargin      = 1
)

// Options sizes the dialog and its edge constraints.
type Options struct {
	// Width and Height are the box size in the normal state.
	Width  int
	Height int
	// TitlebarHeight is the height of the drag handle; it is also the strip
	// height while minimized.
	TitlebarHeight int
	// MinVisibleStrip is how many columns must remain on screen after a drag.
	MinVisibleStrip int
	// DockMargin is the gap between the minimized strip and the bottom edge.
	DockMargin int

	Logger *slog.Logger
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}
	if o.TitlebarHeight <= 0 {
		o.TitlebarHeight = DefaultTitlebarHeight
	}
	if o.MinVisibleStrip < 0 {
		o.MinVisibleStrip = 0
	}
	if o.DockMargin < 0 {
		o.DockMargin = 0
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}
	return o
}

// Layout is the geometry the view should apply for the current state.
type Layout struct {
	State DisplayState
	Rect  geometry.Rect
	// Docked is true when the rect comes from fixed edge offsets rather than
	// the stored position.
	Docked bool
	// ContentVisible is false while minimized.
	ContentVisible bool
}

// dragSession exists only between a title-bar press and the matching release.
type dragSession struct {
	anchor  geometry.Point // pointer minus dialog origin at drag start
	release func()
}

// Dialog holds the interactive state of one floating dialog: its display
// state, its stored position and the active drag session, if any.
//
// Dialog is driven from a single UI goroutine and is not safe for
// concurrent use.
type Dialog struct {
	opts Options
	doc  *Document
	log  *slog.Logger

	open     bool
	state    DisplayState
	position geometry.Point
	session  *dragSession

	viewport geometry.Size
	mounted  bool
	// pendingCenter is set when the dialog opened before a viewport was known.
	pendingCenter bool
}

// New creates a closed dialog. Pointer listeners for drag sessions are
// attached to doc; a nil doc gets a private document.
func New(opts Options, doc *Document) *Dialog {
	if doc == nil {
		doc = NewDocument()
	}
	opts = opts.withDefaults()
	return &Dialog{
		opts:  opts,
		doc:   doc,
		log:   opts.Logger,
		state: StateNormal,
	}
}

// Options returns the effective options.
func (d *Dialog) Options() Options {
	return d.opts
}

// SetOptions replaces the sizing options. The stored position is kept.
func (d *Dialog) SetOptions(opts Options) {
	if opts.Logger == nil {
		opts.Logger = d.log
	}
	d.opts = opts.withDefaults()
	d.log = d.opts.Logger
}

// Doc returns the pointer hub the dialog attaches drag listeners to.
func (d *Dialog) Doc() *Document {
	return d.doc
}

// IsOpen reports whether the dialog is visible.
func (d *Dialog) IsOpen() bool {
	return d.open
}

// State returns the active display state.
func (d *Dialog) State() DisplayState {
	return d.state
}

// Position returns the stored normal-state origin.
func (d *Dialog) Position() geometry.Point {
	return d.position
}

// Dragging reports whether a drag session is active.
func (d *Dialog) Dragging() bool {
	return d.session != nil
}

// Viewport returns the last viewport size and whether one has been set.
func (d *Dialog) Viewport() (geometry.Size, bool) {
	return d.viewport, d.mounted
}

// SetOpen applies the host's visibility flag. Opening resets the display
// state and centers the dialog; closing resets the display state so it does
// not leak into the next open.
func (d *Dialog) SetOpen(open bool) {
	if open == d.open {
		return
	}
	d.open = open

	if open {
		d.state = StateNormal
		d.pendingCenter = true
		d.center()
		d.log.Debug("dialog opened", "x", d.position.X, "y", d.position.Y, "mounted", d.mounted)
		return
	}

	d.dropSession()
	d.state = StateNormal
	d.pendingCenter = false
	d.log.Debug("dialog closed")
}

// SetViewport records the current viewport size. A dialog that opened before
// any viewport was known is centered now.
func (d *Dialog) SetViewport(width, height int) {
	d.viewport = geometry.Size{Width: width, Height: height}
	d.mounted = true
	if d.open && d.pendingCenter {
		d.center()
	}
}

// center moves the dialog to the middle of the viewport. It is a no-op until
// a viewport is known.
func (d *Dialog) center() {
	if !d.mounted {
		return
	}
	d.position = geometry.CenterIn(d.viewport, d.size())
	d.pendingCenter = false
}

func (d *Dialog) size() geometry.Size {
	return geometry.Size{Width: d.opts.Width, Height: d.opts.Height}
}

// Minimize docks the dialog as a title strip.
func (d *Dialog) Minimize() {
	d.setState(StateMinimized)
}

// Maximize expands the dialog to the full viewport.
func (d *Dialog) Maximize() {
	d.setState(StateMaximized)
}

// Restore returns the dialog to its stored floating position.
func (d *Dialog) Restore() {
	d.setState(StateNormal)
}

func (d *Dialog) setState(next DisplayState) {
	if !d.open {
		return
	}
	if next != StateNormal {
		// A toolbar action cannot coexist with a drag; the session is dropped
		// without moving the stored position.
		d.dropSession()
	}
	if d.state == next {
		return
	}
	d.log.Debug("display state changed", "from", d.state.String(), "to", next.String())
	d.state = next
}

// MoveTo places the dialog at p without boundary correction. An active drag
// session keeps its anchor.
func (d *Dialog) MoveTo(p geometry.Point) {
	d.position = p
	d.pendingCenter = false
}

// StartDrag begins a drag session at pointer p. It is ignored unless the
// dialog is open, in the normal state, and not already dragging.
func (d *Dialog) StartDrag(p geometry.Point) bool {
	if !d.open || d.state != StateNormal || d.session != nil {
		return false
	}
	s := &dragSession{anchor: p.Sub(d.position)}
	s.release = d.doc.Listen(PointerFuncs{
		Move: d.UpdateDrag,
		Up:   func(geometry.Point) { d.EndDrag() },
	})
	d.session = s
	d.log.Debug("drag started", "pointer_x", p.X, "pointer_y", p.Y, "anchor_x", s.anchor.X, "anchor_y", s.anchor.Y)
	return true
}

// UpdateDrag moves the dialog so the anchor stays under pointer p.
func (d *Dialog) UpdateDrag(p geometry.Point) {
	if d.session == nil {
		return
	}
	d.position = p.Sub(d.session.anchor)
}

// EndDrag finishes the active session and snaps the dialog back inside the
// viewport.
func (d *Dialog) EndDrag() {
	if d.session == nil {
		return
	}
	d.dropSession()
	d.correct()
}

// dropSession clears the session and detaches its pointer listeners.
func (d *Dialog) dropSession() {
	if d.session == nil {
		return
	}
	s := d.session
	d.session = nil
	if s.release != nil {
		s.release()
	}
}

// correct applies the boundary clamps. It is a no-op before a viewport is
// known.
func (d *Dialog) correct() {
	if !d.mounted {
		return
	}
	box := geometry.RectAt(d.position, d.size())
	next := Correct(box, d.viewport, d.opts.TitlebarHeight, d.opts.MinVisibleStrip)
	if next != d.position {
		d.log.Debug("drag ended outside bounds",
			"x", d.position.X, "y", d.position.Y,
			"corrected_x", next.X, "corrected_y", next.Y,
		)
	} else {
		d.log.Debug("drag ended", "x", next.X, "y", next.Y)
	}
	d.position = next
}

// Unmount releases any pointer listeners still held by a drag session.
func (d *Dialog) Unmount() {
	d.dropSession()
}

// Layout returns the rect the dialog occupies in its current state.
func (d *Dialog) Layout() Layout {
	switch d.state {
	case StateMinimized:
		w := d.opts.Width
		h := d.opts.TitlebarHeight
		x := d.viewport.Width - w
		if x < 0 {
			x = 0
		}
		y := d.viewport.Height - d.opts.DockMargin - h
		if y < 0 {
			y = 0
		}
		return Layout{
			State:  StateMinimized,
			Rect:   geometry.Rect{X: x, Y: y, Width: w, Height: h},
			Docked: true,
		}
	case StateMaximized:
		return Layout{
			State:          StateMaximized,
			Rect:           geometry.Rect{X: 0, Y: 0, Width: d.viewport.Width, Height: d.viewport.Height},
			Docked:         true,
			ContentVisible: true,
		}
	default:
		return Layout{
			State:          StateNormal,
			Rect:           geometry.RectAt(d.position, d.size()),
			ContentVisible: true,
		}
	}
}

// TitlebarRect returns the drag handle area for the current layout.
func (d *Dialog) TitlebarRect() geometry.Rect {
	r := d.Layout().Rect
	h := d.opts.TitlebarHeight
	if h > r.Height {
		h = r.Height
	}
	return geometry.Rect{X: r.X, Y: r.Y, Width: r.Width, Height: h}
}
