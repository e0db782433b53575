package geom

// Contour is a closed polyline. The closing edge from the last point back to
// the first is implicit; the first point is never repeated at the end.
type Contour []Point

// SignedArea returns the shoelace area of the contour.
// Positive means counter-clockwise in a Y-up frame.
func (c Contour) SignedArea() float64 {
	n := len(c)
	if n < 3 {
		return 0
	}
	var sum float64
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		sum += c[j].X*c[i].Y - c[i].X*c[j].Y
	}
	return sum / 2
}

// IsClockwise reports whether the contour winds clockwise (Y-up).
func (c Contour) IsClockwise() bool {
	return c.SignedArea() < 0
}

// Reversed returns a copy of the contour with the opposite winding.
func (c Contour) Reversed() Contour {
	out := make(Contour, len(c))
	for i, p := range c {
		out[len(c)-1-i] = p
	}
	return out
}

// Oriented returns the contour wound counter-clockwise when ccw is true,
// clockwise otherwise. The receiver is returned as is when already oriented.
func (c Contour) Oriented(ccw bool) Contour {
	if (c.SignedArea() > 0) == ccw {
		return c
	}
	return c.Reversed()
}

// Contains reports whether p lies inside the contour using the even-odd rule.
// Points exactly on an edge may report either result.
func (c Contour) Contains(p Point) bool {
	inside := false
	n := len(c)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := c[i], c[j]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			x := (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y) + a.X
			if p.X < x {
				inside = !inside
			}
		}
	}
	return inside
}

// ContainsContour reports whether every vertex of o lies inside c.
func (c Contour) ContainsContour(o Contour) bool {
	if len(o) == 0 {
		return false
	}
	for _, p := range o {
		if !c.Contains(p) {
			return false
		}
	}
	return true
}

// Bounds returns the bounding box of the contour.
func (c Contour) Bounds() Box {
	return BoundingBox(c)
}

// Translate returns a copy of the contour moved by (dx, dy).
func (c Contour) Translate(dx, dy float64) Contour {
	out := make(Contour, len(c))
	for i, p := range c {
		out[i] = p.Translate(dx, dy)
	}
	return out
}

// Closed returns the points of the contour with the first point appended,
// suitable for drawing as a line strip.
func (c Contour) Closed() []Point {
	if len(c) == 0 {
		return nil
	}
	out := make([]Point, 0, len(c)+1)
	out = append(out, c...)
	return append(out, c[0])
}

// Dedup returns the contour without consecutive duplicate points,
// including a trailing point equal to the first.
func (c Contour) Dedup(eps float64) Contour {
	if len(c) == 0 {
		return c
	}
	out := make(Contour, 0, len(c))
	for _, p := range c {
		if len(out) > 0 && out[len(out)-1].Equal(p, eps) {
			continue
		}
		out = append(out, p)
	}
	for len(out) > 1 && out[len(out)-1].Equal(out[0], eps) {
		out = out[:len(out)-1]
	}
	return out
}
