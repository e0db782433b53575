package text

import "github.com/gogpu/textmesh/geom"

// OutlineOp is the type of path operation.
type OutlineOp uint8

const (
	// OutlineOpMoveTo starts a new contour.
	OutlineOpMoveTo OutlineOp = iota

	// OutlineOpLineTo draws a line to the target point.
	OutlineOpLineTo

	// OutlineOpQuadTo draws a quadratic bezier curve.
	OutlineOpQuadTo

	// OutlineOpCubicTo draws a cubic bezier curve.
	OutlineOpCubicTo
)

// String returns a string representation of the operation.
func (op OutlineOp) String() string {
	switch op {
	case OutlineOpMoveTo:
		return "MoveTo"
	case OutlineOpLineTo:
		return "LineTo"
	case OutlineOpQuadTo:
		return "QuadTo"
	case OutlineOpCubicTo:
		return "CubicTo"
	default:
		return "Unknown"
	}
}

// OutlineSegment represents a segment of a glyph outline.
type OutlineSegment struct {
	// Op is the segment operation type.
	Op OutlineOp

	// Points contains the control and end points for this segment.
	// - MoveTo: Points[0] is the target point
	// - LineTo: Points[0] is the target point
	// - QuadTo: Points[0] is control, Points[1] is target
	// - CubicTo: Points[0], Points[1] are controls, Points[2] is target
	Points [3]geom.Point
}

// GlyphOutline is the vector outline of a glyph scaled to the requested em
// size, Y up, with the pen origin at (0, 0).
type GlyphOutline struct {
	Segments []OutlineSegment

	// Advance is the horizontal distance to the next pen position.
	Advance float64
}

// IsEmpty returns true if the outline has no segments.
func (o GlyphOutline) IsEmpty() bool {
	return len(o.Segments) == 0
}

// Contours flattens the outline into closed polylines. Every curve is split
// into divisions straight segments. The result is translated by origin.
// Contours shorter than three distinct points are dropped.
func (o GlyphOutline) Contours(divisions int, origin geom.Point) []geom.Contour {
	var (
		out     []geom.Contour
		current []geom.Point
		pen     geom.Point
	)
	flush := func() {
		c := geom.Contour(current).Dedup(1e-9)
		if len(c) >= 3 && c.SignedArea() != 0 {
			out = append(out, c)
		}
		current = nil
	}
	for _, seg := range o.Segments {
		switch seg.Op {
		case OutlineOpMoveTo:
			flush()
			pen = seg.Points[0].Add(origin)
			current = append(current, pen)
		case OutlineOpLineTo:
			pen = seg.Points[0].Add(origin)
			current = append(current, pen)
		case OutlineOpQuadTo:
			end := seg.Points[1].Add(origin)
			current = geom.QuadTo(current, pen, seg.Points[0].Add(origin), end, divisions)
			pen = end
		case OutlineOpCubicTo:
			end := seg.Points[2].Add(origin)
			current = geom.CubicTo(current, pen, seg.Points[0].Add(origin), seg.Points[1].Add(origin), end, divisions)
			pen = end
		}
	}
	flush()
	return out
}

// outlineBuilder accumulates segments, scaling coordinates as it goes.
type outlineBuilder struct {
	scale float64
	segs  []OutlineSegment
}

func (b *outlineBuilder) pt(x, y float64) geom.Point {
	return geom.Pt(x*b.scale, y*b.scale)
}

func (b *outlineBuilder) moveTo(x, y float64) {
	b.segs = append(b.segs, OutlineSegment{Op: OutlineOpMoveTo, Points: [3]geom.Point{b.pt(x, y)}})
}

func (b *outlineBuilder) lineTo(x, y float64) {
	b.segs = append(b.segs, OutlineSegment{Op: OutlineOpLineTo, Points: [3]geom.Point{b.pt(x, y)}})
}

func (b *outlineBuilder) quadTo(cx, cy, x, y float64) {
	b.segs = append(b.segs, OutlineSegment{Op: OutlineOpQuadTo, Points: [3]geom.Point{b.pt(cx, cy), b.pt(x, y)}})
}

func (b *outlineBuilder) cubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	b.segs = append(b.segs, OutlineSegment{
		Op:     OutlineOpCubicTo,
		Points: [3]geom.Point{b.pt(c1x, c1y), b.pt(c2x, c2y), b.pt(x, y)},
	})
}
