package textmesh

import (
	"context"

	"github.com/gogpu/textmesh/mesh"
	"github.com/gogpu/textmesh/tessellate"
	"github.com/gogpu/textmesh/text"
)

// Pair is the fill and outline built from one configuration. Both were
// translated by the same Offset.
type Pair struct {
	Fill    *mesh.Fill
	Outline *mesh.Outline
	Offset  float64
	Shapes  []text.Shape
}

// Build computes the alignment offset once and builds both halves of the
// pair from shapes. A nil triangulator selects tessellate.Earcut.
func Build(shapes []text.Shape, cfg Config, tri tessellate.Triangulator) (*Pair, error) {
	offset := mesh.AlignOffset(text.ShapesBounds(shapes), cfg.AlignMode())

	fill, err := mesh.BuildFill(shapes, offset, cfg.FillMaterial(), tri)
	if err != nil {
		return nil, err
	}
	return &Pair{
		Fill:    fill,
		Outline: mesh.BuildOutline(shapes, offset, cfg.OutlineMaterial()),
		Offset:  offset,
		Shapes:  shapes,
	}, nil
}

// Generate extracts the shapes of cfg.Value with ex and builds the pair.
// It is the synchronous form of one Component cycle without publication.
func Generate(ctx context.Context, ex *text.Extractor, cfg Config, tri tessellate.Triangulator) (*Pair, error) {
	shapes, err := ex.Extract(ctx, cfg.Locator(), cfg.Value, cfg.EmSize())
	if err != nil {
		return nil, err
	}
	return Build(shapes, cfg, tri)
}
