package geom

// DefaultDivisions is the number of straight segments a curve is split into
// when no other value is configured.
const DefaultDivisions = 12

// QuadTo appends the points of a quadratic Bezier from p0 through control c
// to p1, split into n uniform steps. p0 itself is not appended.
func QuadTo(dst []Point, p0, c, p1 Point, n int) []Point {
	if n < 1 {
		n = 1
	}
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		dst = append(dst, p0.Lerp(c, t).Lerp(c.Lerp(p1, t), t))
	}
	return dst
}

// CubicTo appends the points of a cubic Bezier from p0 via c1 and c2 to p1,
// split into n uniform steps. p0 itself is not appended.
func CubicTo(dst []Point, p0, c1, c2, p1 Point, n int) []Point {
	if n < 1 {
		n = 1
	}
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		a, b, c := p0.Lerp(c1, t), c1.Lerp(c2, t), c2.Lerp(p1, t)
		ab, bc := a.Lerp(b, t), b.Lerp(c, t)
		dst = append(dst, ab.Lerp(bc, t))
	}
	return dst
}
