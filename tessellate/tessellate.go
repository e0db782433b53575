package tessellate

import (
	"errors"
	"math"

	"github.com/gogpu/textmesh/geom"
)

var (
	// ErrNonFinite is returned when a vertex has a NaN or infinite coordinate.
	ErrNonFinite = errors.New("tessellate: non-finite vertex")

	// ErrHolesUnsupported is returned by triangulators that cannot cut holes.
	ErrHolesUnsupported = errors.New("tessellate: holes not supported")
)

// Polygon is an outer contour with zero or more holes.
type Polygon struct {
	Outer geom.Contour
	Holes []geom.Contour
}

// Vertices returns the outer contour followed by each hole, flattened into
// one slice. Triangle indices refer to positions in this slice.
func (p Polygon) Vertices() []geom.Point {
	n := len(p.Outer)
	for _, h := range p.Holes {
		n += len(h)
	}
	out := make([]geom.Point, 0, n)
	out = append(out, p.Outer...)
	for _, h := range p.Holes {
		out = append(out, h...)
	}
	return out
}

func (p Polygon) validate() error {
	check := func(c geom.Contour) error {
		for _, v := range c {
			if math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsInf(v.X, 0) || math.IsInf(v.Y, 0) {
				return ErrNonFinite
			}
		}
		return nil
	}
	if err := check(p.Outer); err != nil {
		return err
	}
	for _, h := range p.Holes {
		if err := check(h); err != nil {
			return err
		}
	}
	return nil
}

// Triangulator splits a polygon into triangles.
//
// The returned slice holds three indices per triangle into p.Vertices().
// Degenerate input (fewer than three distinct points) yields no triangles
// and no error.
type Triangulator interface {
	Triangulate(p Polygon) ([]uint32, error)
}

// Fan triangulates a convex outer contour by fanning from its first vertex.
type Fan struct{}

// Triangulate implements Triangulator.
func (Fan) Triangulate(p Polygon) ([]uint32, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	if len(p.Holes) > 0 {
		return nil, ErrHolesUnsupported
	}
	n := len(p.Outer)
	if n < 3 {
		return nil, nil
	}
	ccw := p.Outer.SignedArea() >= 0
	indices := make([]uint32, 0, (n-2)*3)
	for i := 1; i < n-1; i++ {
		if ccw {
			indices = append(indices, 0, uint32(i), uint32(i+1))
		} else {
			indices = append(indices, 0, uint32(i+1), uint32(i))
		}
	}
	return indices, nil
}
