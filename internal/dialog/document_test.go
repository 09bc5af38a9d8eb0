package dialog

import (
	"testing"

	"github.com/1broseidon/termdialog/internal/geometry"
)

func TestDocumentListenAndRelease(t *testing.T) {
	doc := NewDocument()
	var moves, ups int
	release := doc.Listen(PointerFuncs{
		Move: func(geometry.Point) { moves++ },
		Up:   func(geometry.Point) { ups++ },
	})

	if doc.Listeners() != 1 {
		t.Fatalf("Listeners() = %d, want 1", doc.Listeners())
	}
	if !doc.Move(geometry.Point{X: 1, Y: 1}) {
		t.Fatalf("Move should report an attached listener")
	}
	doc.Up(geometry.Point{X: 1, Y: 1})

	release()
	release()
	if doc.Listeners() != 0 {
		t.Fatalf("Listeners() after release = %d, want 0", doc.Listeners())
	}
	if doc.Move(geometry.Point{}) {
		t.Fatalf("Move should report no listeners after release")
	}
	if moves != 1 || ups != 1 {
		t.Fatalf("moves=%d ups=%d, want 1 and 1", moves, ups)
	}
}

func TestDocumentHandlerMayReleaseDuringDispatch(t *testing.T) {
	doc := NewDocument()
	var release func()
	calls := 0
	release = doc.Listen(PointerFuncs{
		Up: func(geometry.Point) {
			calls++
			release()
		},
	})
	second := 0
	doc.Listen(PointerFuncs{Up: func(geometry.Point) { second++ }})

	doc.Up(geometry.Point{})
	doc.Up(geometry.Point{})

	if calls != 1 {
		t.Fatalf("self-releasing handler called %d times, want 1", calls)
	}
	if second != 2 {
		t.Fatalf("second handler called %d times, want 2", second)
	}
	if doc.Listeners() != 1 {
		t.Fatalf("Listeners() = %d, want 1", doc.Listeners())
	}
}
