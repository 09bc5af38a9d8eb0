package dialog

import "github.com/1broseidon/termdialog/internal/geometry"

// PointerHandler receives program-wide pointer events while attached to a
// Document.
type PointerHandler interface {
	PointerMove(p geometry.Point)
	PointerUp(p geometry.Point)
}

// PointerFuncs adapts a pair of functions to PointerHandler.
type PointerFuncs struct {
	Move func(p geometry.Point)
	Up   func(p geometry.Point)
}

func (f PointerFuncs) PointerMove(p geometry.Point) {
	if f.Move != nil {
		f.Move(p)
	}
}

func (f PointerFuncs) PointerUp(p geometry.Point) {
	if f.Up != nil {
		f.Up(p)
	}
}

// Document is the top-level pointer event hub. The host feeds every mouse
// motion and release into it regardless of where the pointer is, so a
// listener keeps receiving events after the pointer leaves the dialog.
//
// Document is not safe for concurrent use; it lives on the UI goroutine.
type Document struct {
	listeners map[int]PointerHandler
	order     []int
	nextID    int
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	return &Document{listeners: make(map[int]PointerHandler)}
}

// Listen attaches h and returns the function that detaches it. The returned
// release func is idempotent.
func (d *Document) Listen(h PointerHandler) (release func()) {
	id := d.nextID
	d.nextID++
	d.listeners[id] = h
	d.order = append(d.order, id)

	released := false
	return func() {
		if released {
			return
		}
		released = true
		d.remove(id)
	}
}

func (d *Document) remove(id int) {
	delete(d.listeners, id)
	for i, existing := range d.order {
		if existing == id {
			d.order = append(d.order[:i], d.order[i+1:]...)
			break
		}
	}
}

// Listeners returns the number of attached handlers.
func (d *Document) Listeners() int {
	return len(d.listeners)
}

// Move dispatches a pointer-move event. It reports whether any listener was
// attached.
func (d *Document) Move(p geometry.Point) bool {
	handlers := d.snapshot()
	for _, h := range handlers {
		h.PointerMove(p)
	}
	return len(handlers) > 0
}

// Up dispatches a pointer-up event. It reports whether any listener was
// attached.
func (d *Document) Up(p geometry.Point) bool {
	handlers := d.snapshot()
	for _, h := range handlers {
		h.PointerUp(p)
	}
	return len(handlers) > 0
}

// snapshot copies the listeners in attach order; handlers may release
// themselves while being dispatched.
func (d *Document) snapshot() []PointerHandler {
	if len(d.order) == 0 {
		return nil
	}
	out := make([]PointerHandler, 0, len(d.order))
	for _, id := range d.order {
		out = append(out, d.listeners[id])
	}
	return out
}
