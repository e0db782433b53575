package mesh

import (
	"github.com/gogpu/textmesh/geom"
	"github.com/gogpu/textmesh/scene"
	"github.com/gogpu/textmesh/text"
)

// Line is one closed contour drawn as a line strip: the first point is
// repeated at the end.
type Line struct {
	Points []geom.Point
	Hole   bool
	Glyph  int
}

// NewLine closes contour c and translates it by offset along X.
func NewLine(c geom.Contour, offset float64, hole bool, glyph int) Line {
	return Line{
		Points: c.Translate(offset, 0).Closed(),
		Hole:   hole,
		Glyph:  glyph,
	}
}

// Outline groups the line loops of every contour under one material.
type Outline struct {
	Lines    []Line
	Bounds   geom.Box
	Material Material
}

// ObjectKind implements scene.Object.
func (o *Outline) ObjectKind() scene.Kind { return scene.KindLines }

// PointCount returns the total number of points over all lines.
func (o *Outline) PointCount() int {
	n := 0
	for _, l := range o.Lines {
		n += len(l.Points)
	}
	return n
}

// BuildOutline emits one line per outer contour, in shape order, followed by
// one line per hole, in shape order and then hole order. Every line is
// translated by offset along X.
func BuildOutline(shapes []text.Shape, offset float64, mat Material) *Outline {
	o := &Outline{Material: mat, Bounds: geom.EmptyBox()}
	add := func(l Line) {
		o.Lines = append(o.Lines, l)
		o.Bounds = o.Bounds.Union(geom.BoundingBox(l.Points))
	}
	for _, s := range shapes {
		add(NewLine(s.Outer, offset, false, s.Glyph))
	}
	for _, s := range shapes {
		for _, h := range s.Holes {
			add(NewLine(h, offset, true, s.Glyph))
		}
	}
	return o
}
