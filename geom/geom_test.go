package geom

import (
	"math"
	"testing"
)

func square(x0, y0, x1, y1 float64) Contour {
	return Contour{Pt(x0, y0), Pt(x1, y0), Pt(x1, y1), Pt(x0, y1)}
}

func TestSignedArea(t *testing.T) {
	tests := []struct {
		name string
		c    Contour
		want float64
	}{
		{"ccw unit square", square(0, 0, 1, 1), 1},
		{"cw unit square", square(0, 0, 1, 1).Reversed(), -1},
		{"triangle", Contour{Pt(0, 0), Pt(4, 0), Pt(0, 3)}, 6},
		{"degenerate", Contour{Pt(0, 0), Pt(1, 1)}, 0},
		{"empty", nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.SignedArea(); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("SignedArea() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOriented(t *testing.T) {
	cw := square(0, 0, 2, 2).Reversed()
	if !cw.IsClockwise() {
		t.Fatal("reversed square should be clockwise")
	}
	if cw.Oriented(true).IsClockwise() {
		t.Error("Oriented(true) should be counter-clockwise")
	}
	if !cw.Oriented(false).IsClockwise() {
		t.Error("Oriented(false) should keep clockwise winding")
	}
}

func TestContains(t *testing.T) {
	outer := square(0, 0, 10, 10)
	inner := square(2, 2, 4, 4)
	tests := []struct {
		p    Point
		want bool
	}{
		{Pt(5, 5), true},
		{Pt(-1, 5), false},
		{Pt(5, 11), false},
		{Pt(9.9, 0.1), true},
	}
	for _, tt := range tests {
		if got := outer.Contains(tt.p); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
	if !outer.ContainsContour(inner) {
		t.Error("outer should contain inner")
	}
	if inner.ContainsContour(outer) {
		t.Error("inner should not contain outer")
	}
}

func TestBox(t *testing.T) {
	b := EmptyBox()
	if !b.IsEmpty() || b.Width() != 0 {
		t.Fatalf("EmptyBox() = %+v, want empty with zero width", b)
	}
	b = BoundingBox([]Point{Pt(1, 2), Pt(-3, 5), Pt(4, -1)})
	if b.Min != Pt(-3, -1) || b.Max != Pt(4, 5) {
		t.Errorf("BoundingBox = %+v", b)
	}
	if b.Width() != 7 || b.Height() != 6 {
		t.Errorf("Width/Height = %v/%v, want 7/6", b.Width(), b.Height())
	}
	moved := b.Translate(1, 1)
	if moved.Min != Pt(-2, 0) {
		t.Errorf("Translate min = %v", moved.Min)
	}
	if u := EmptyBox().Union(b); u != b {
		t.Errorf("Union with empty = %+v, want %+v", u, b)
	}
}

func TestCurveSubdivision(t *testing.T) {
	p0, c, p1 := Pt(0, 0), Pt(1, 2), Pt(2, 0)
	pts := QuadTo(nil, p0, c, p1, 4)
	if len(pts) != 4 {
		t.Fatalf("QuadTo produced %d points, want 4", len(pts))
	}
	if !pts[len(pts)-1].Equal(p1, 1e-12) {
		t.Errorf("last point = %v, want %v", pts[len(pts)-1], p1)
	}
	if !pts[1].Equal(Pt(1, 1), 1e-12) {
		t.Errorf("midpoint = %v, want (1,1)", pts[1])
	}

	cub := CubicTo(nil, p0, Pt(0, 1), Pt(2, 1), p1, DefaultDivisions)
	if len(cub) != DefaultDivisions {
		t.Fatalf("CubicTo produced %d points, want %d", len(cub), DefaultDivisions)
	}
	if !cub[5].Equal(Pt(1, 0.75), 1e-12) {
		t.Errorf("cubic midpoint = %v, want (1,0.75)", cub[5])
	}
}

func TestCurveMatchesBernstein(t *testing.T) {
	p0, c1, c2, p1 := Pt(-1, 3), Pt(0.5, -2), Pt(4, 7), Pt(6, 1)
	tests := []struct {
		name string
		n    int
	}{
		{"one", 1},
		{"three", 3},
		{"default", DefaultDivisions},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quad := QuadTo(nil, p0, c1, p1, tt.n)
			cub := CubicTo(nil, p0, c1, c2, p1, tt.n)
			for i := 1; i <= tt.n; i++ {
				s := float64(i) / float64(tt.n)
				m := 1 - s
				wantQ := Pt(
					m*m*p0.X+2*m*s*c1.X+s*s*p1.X,
					m*m*p0.Y+2*m*s*c1.Y+s*s*p1.Y,
				)
				wantC := Pt(
					m*m*m*p0.X+3*m*m*s*c1.X+3*m*s*s*c2.X+s*s*s*p1.X,
					m*m*m*p0.Y+3*m*m*s*c1.Y+3*m*s*s*c2.Y+s*s*s*p1.Y,
				)
				if !quad[i-1].Equal(wantQ, 1e-9) {
					t.Errorf("quad[%d] = %v, want %v", i-1, quad[i-1], wantQ)
				}
				if !cub[i-1].Equal(wantC, 1e-9) {
					t.Errorf("cubic[%d] = %v, want %v", i-1, cub[i-1], wantC)
				}
			}
		})
	}
}

func TestDedupAndClosed(t *testing.T) {
	c := Contour{Pt(0, 0), Pt(0, 0), Pt(1, 0), Pt(1, 1), Pt(0, 0)}
	d := c.Dedup(1e-9)
	if len(d) != 3 {
		t.Fatalf("Dedup len = %d, want 3 (%v)", len(d), d)
	}
	closed := d.Closed()
	if len(closed) != 4 || closed[0] != closed[3] {
		t.Errorf("Closed() = %v", closed)
	}
}
