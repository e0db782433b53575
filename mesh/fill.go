package mesh

import (
	"fmt"

	"github.com/gogpu/textmesh/geom"
	"github.com/gogpu/textmesh/scene"
	"github.com/gogpu/textmesh/tessellate"
	"github.com/gogpu/textmesh/text"
)

// Group is the index range of one shape inside a Fill.
type Group struct {
	Start int // first index
	Count int // number of indices
	Glyph int
}

// Fill is a triangulated glyph surface in the z = 0 plane facing +z.
type Fill struct {
	// Positions holds translated vertex positions.
	Positions []geom.Point

	// UVs holds the untranslated positions, one per vertex.
	UVs []geom.Point

	// Indices lists counter-clockwise triangles, three per triangle.
	Indices []uint32

	// Groups holds one entry per shape with at least one triangle.
	Groups []Group

	// Bounds is the translated bounding box of Positions.
	Bounds geom.Box

	Material Material
}

// ObjectKind implements scene.Object.
func (f *Fill) ObjectKind() scene.Kind { return scene.KindMesh }

// VertexCount returns the number of vertices.
func (f *Fill) VertexCount() int { return len(f.Positions) }

// TriangleCount returns the number of triangles.
func (f *Fill) TriangleCount() int { return len(f.Indices) / 3 }

// FillVertexStride is the size in bytes of one interleaved fill vertex:
// position xyz, normal xyz, uv.
const FillVertexStride = 8 * 4

// Interleaved returns the vertices as position(3) normal(3) uv(2) floats.
func (f *Fill) Interleaved() []float32 {
	out := make([]float32, 0, len(f.Positions)*8)
	for i, p := range f.Positions {
		uv := f.UVs[i]
		out = append(out,
			float32(p.X), float32(p.Y), 0,
			0, 0, 1,
			float32(uv.X), float32(uv.Y),
		)
	}
	return out
}

// BuildFill triangulates every shape, holes subtracted, into one geometry
// translated by offset along X. A nil triangulator selects tessellate.Earcut.
// The first triangulation failure is returned and no geometry is produced.
func BuildFill(shapes []text.Shape, offset float64, mat Material, tri tessellate.Triangulator) (*Fill, error) {
	if tri == nil {
		tri = tessellate.Earcut{}
	}
	f := &Fill{Material: mat}
	bounds := geom.EmptyBox()

	for _, s := range shapes {
		poly := tessellate.Polygon{Outer: s.Outer, Holes: s.Holes}
		indices, err := tri.Triangulate(poly)
		if err != nil {
			return nil, fmt.Errorf("mesh: triangulate glyph %d: %w", s.Glyph, err)
		}
		if len(indices) == 0 {
			continue
		}

		verts := poly.Vertices()
		base := uint32(len(f.Positions))
		start := len(f.Indices)
		for i := 0; i+2 < len(indices); i += 3 {
			a, b, c := indices[i], indices[i+1], indices[i+2]
			if (geom.Contour{verts[a], verts[b], verts[c]}).IsClockwise() {
				b, c = c, b
			}
			f.Indices = append(f.Indices, base+a, base+b, base+c)
		}
		for _, v := range verts {
			bounds = bounds.Extend(v)
			f.UVs = append(f.UVs, v)
			f.Positions = append(f.Positions, v.Translate(offset, 0))
		}
		f.Groups = append(f.Groups, Group{Start: start, Count: len(f.Indices) - start, Glyph: s.Glyph})
	}

	f.Bounds = bounds.Translate(offset, 0)
	return f, nil
}
