package geometry

import "testing"

func TestCenterIn(t *testing.T) {
	tests := []struct {
		name     string
		viewport Size
		box      Size
		want     Point
	}{
		{"fits", Size{1000, 800}, Size{600, 400}, Point{200, 200}},
		{"odd remainder rounds down", Size{81, 25}, Size{60, 18}, Point{10, 3}},
		{"box wider than viewport", Size{40, 30}, Size{60, 10}, Point{0, 10}},
		{"zero viewport", Size{}, Size{60, 18}, Point{0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CenterIn(tt.viewport, tt.box)
			if got != tt.want {
				t.Errorf("CenterIn(%+v, %+v) = %+v, want %+v", tt.viewport, tt.box, got, tt.want)
			}
		})
	}
}

func TestRectContainsExcludesFarEdges(t *testing.T) {
	r := Rect{X: 10, Y: 5, Width: 4, Height: 2}

	if !r.Contains(Point{X: 10, Y: 5}) {
		t.Fatalf("expected origin to be inside %+v", r)
	}
	if !r.Contains(Point{X: 13, Y: 6}) {
		t.Fatalf("expected last cell to be inside %+v", r)
	}
	if r.Contains(Point{X: 14, Y: 5}) {
		t.Fatalf("right edge should be exclusive for %+v", r)
	}
	if r.Contains(Point{X: 10, Y: 7}) {
		t.Fatalf("bottom edge should be exclusive for %+v", r)
	}
}

func TestSizeEmpty(t *testing.T) {
	tests := []struct {
		size Size
		want bool
	}{
		{Size{Width: 10, Height: 5}, false},
		{Size{Width: 0, Height: 5}, true},
		{Size{Width: 10, Height: -1}, true},
		{Size{}, true},
	}
	for _, tt := range tests {
		if got := tt.size.Empty(); got != tt.want {
			t.Errorf("%+v.Empty() = %v, want %v", tt.size, got, tt.want)
		}
	}
}

func TestRectIntersects(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	if !a.Intersects(Rect{X: 9, Y: 9, Width: 5, Height: 5}) {
		t.Fatalf("expected overlap at corner")
	}
	if a.Intersects(Rect{X: 10, Y: 0, Width: 5, Height: 5}) {
		t.Fatalf("touching edges should not intersect")
	}
}

func TestPointArithmetic(t *testing.T) {
	p := Point{X: 250, Y: 250}
	origin := Point{X: 200, Y: 200}

	anchor := p.Sub(origin)
	if anchor != (Point{X: 50, Y: 50}) {
		t.Fatalf("Sub = %+v, want {50 50}", anchor)
	}
}
