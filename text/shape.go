package text

import (
	"math"

	"github.com/gogpu/textmesh/geom"
)

// Shape is one solid region of a glyph: an outer contour wound
// counter-clockwise and the holes cut out of it, wound clockwise.
type Shape struct {
	// Glyph is the index of the glyph, in layout order, that produced the shape.
	Glyph int

	Outer geom.Contour
	Holes []geom.Contour
}

// Bounds returns the bounding box of the outer contour.
func (s Shape) Bounds() geom.Box {
	return s.Outer.Bounds()
}

// ShapesBounds returns the union bounding box of all shapes.
func ShapesBounds(shapes []Shape) geom.Box {
	b := geom.EmptyBox()
	for _, s := range shapes {
		b = b.Union(s.Bounds())
	}
	return b
}

// GroupContours sorts the contours of one glyph into shapes.
//
// The contour with the largest area sets the solid winding; contours wound
// the other way are holes. Each hole goes to the smallest solid containing
// it. A hole no solid contains is promoted to a solid of its own, so no
// contour is ever lost or emitted twice.
func GroupContours(glyph int, contours []geom.Contour) []Shape {
	if len(contours) == 0 {
		return nil
	}

	var (
		largest   int
		largestAb float64
	)
	for i, c := range contours {
		if a := math.Abs(c.SignedArea()); a > largestAb {
			largest, largestAb = i, a
		}
	}
	solidCCW := contours[largest].SignedArea() > 0

	var (
		shapes []Shape
		areas  []float64
		holes  []geom.Contour
	)
	for _, c := range contours {
		if (c.SignedArea() > 0) == solidCCW {
			shapes = append(shapes, Shape{Glyph: glyph, Outer: c.Oriented(true)})
			areas = append(areas, math.Abs(c.SignedArea()))
		} else {
			holes = append(holes, c)
		}
	}

	for _, h := range holes {
		parent := -1
		for i, s := range shapes {
			if !s.Outer.ContainsContour(h) {
				continue
			}
			if parent < 0 || areas[i] < areas[parent] {
				parent = i
			}
		}
		if parent < 0 {
			shapes = append(shapes, Shape{Glyph: glyph, Outer: h.Oriented(true)})
			areas = append(areas, math.Abs(h.SignedArea()))
			continue
		}
		shapes[parent].Holes = append(shapes[parent].Holes, h.Oriented(false))
	}
	return shapes
}
