package geometry

// Point is a cell coordinate relative to the viewport origin.
type Point struct {
	X int
	Y int
}

// Sub returns the offset from q to p.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Size is a width/height pair in cells.
type Size struct {
	Width  int
	Height int
}

// Empty reports whether either dimension is non-positive.
func (s Size) Empty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Rect represents a box position and size
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// RectAt builds a rect from an origin and a size.
func RectAt(origin Point, size Size) Rect {
	return Rect{X: origin.X, Y: origin.Y, Width: size.Width, Height: size.Height}
}

// Origin returns the top-left corner.
func (r Rect) Origin() Point {
	return Point{X: r.X, Y: r.Y}
}

// Contains reports whether p lies inside r. The right and bottom edges are exclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width &&
		p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Intersects reports whether two rects overlap.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.Width &&
		r.X+r.Width > o.X &&
		r.Y < o.Y+o.Height &&
		r.Y+r.Height > o.Y
}

// CenterIn returns the origin that centers a box of the given size inside
// viewport. Boxes larger than the viewport are pinned to the origin on that
// axis so the top-left corner stays on screen.
func CenterIn(viewport Size, box Size) Point {
	x := (viewport.Width - box.Width) / 2
	y := (viewport.Height - box.Height) / 2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return Point{X: x, Y: y}
}
