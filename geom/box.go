package geom

import "math"

// Box is an axis-aligned bounding box.
// The zero Box is not empty; use EmptyBox to start an accumulation.
type Box struct {
	Min, Max Point
}

// EmptyBox returns a box that contains nothing. Extending it with any
// point yields a degenerate box around that point.
func EmptyBox() Box {
	return Box{
		Min: Point{X: math.Inf(1), Y: math.Inf(1)},
		Max: Point{X: math.Inf(-1), Y: math.Inf(-1)},
	}
}

// IsEmpty reports whether the box contains no point at all.
func (b Box) IsEmpty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y
}

// Width returns the horizontal extent, or 0 for an empty box.
func (b Box) Width() float64 {
	if b.IsEmpty() {
		return 0
	}
	return b.Max.X - b.Min.X
}

// Height returns the vertical extent, or 0 for an empty box.
func (b Box) Height() float64 {
	if b.IsEmpty() {
		return 0
	}
	return b.Max.Y - b.Min.Y
}

// Extend returns the smallest box containing b and p.
func (b Box) Extend(p Point) Box {
	return Box{
		Min: Point{X: math.Min(b.Min.X, p.X), Y: math.Min(b.Min.Y, p.Y)},
		Max: Point{X: math.Max(b.Max.X, p.X), Y: math.Max(b.Max.Y, p.Y)},
	}
}

// Union returns the smallest box containing both boxes.
func (b Box) Union(o Box) Box {
	if o.IsEmpty() {
		return b
	}
	if b.IsEmpty() {
		return o
	}
	return b.Extend(o.Min).Extend(o.Max)
}

// Translate returns the box moved by (dx, dy). Empty boxes stay empty.
func (b Box) Translate(dx, dy float64) Box {
	if b.IsEmpty() {
		return b
	}
	return Box{Min: b.Min.Translate(dx, dy), Max: b.Max.Translate(dx, dy)}
}

// BoundingBox computes the box of a point set.
// An empty slice yields EmptyBox.
func BoundingBox(points []Point) Box {
	b := EmptyBox()
	for _, p := range points {
		b = b.Extend(p)
	}
	return b
}
