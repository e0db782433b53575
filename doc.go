// Package textmesh turns a string into a pair of renderable objects: a
// filled triangle mesh of the glyphs and an outline made of one closed line
// per glyph contour.
//
// # Overview
//
// A render cycle resolves the configured font, fetches and parses it, lays
// the value out at the configured em size, groups each glyph's contours
// into shapes with holes, and builds both objects with a single horizontal
// alignment offset so the fill and the outline always coincide.
//
// The pipeline is split across packages:
//
//   - [github.com/gogpu/textmesh/text]: font locators, fetching, parsing
//     (typeface JSON, TrueType and OpenType) and glyph shapes
//   - [github.com/gogpu/textmesh/tessellate]: polygon-with-holes triangulation
//   - [github.com/gogpu/textmesh/mesh]: fill and outline geometry, alignment
//     and materials
//   - [github.com/gogpu/textmesh/scene]: the node abstraction objects are
//     attached to
//   - [github.com/gogpu/textmesh/gpu]: a scene node that uploads objects to
//     a wgpu HAL device
//   - [github.com/gogpu/textmesh/preview]: software rasterization to PNG
//
// # Quick Start
//
//	node := scene.NewGroup()
//	c := textmesh.New(node)
//	c.Init(textmesh.ParseAttributes("value: Hello; color: #f00; align: center"))
//	if err := c.Wait(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// For one-shot use without a node, call [Generate].
//
// # Cycles
//
// A [Component] starts a new cycle on Init and on every Update with a
// changed configuration. Starting a cycle cancels the previous load and
// detaches the previously published pair. A load that finishes after it
// was superseded is discarded, so at most one generation is ever attached.
//
// # Logging
//
// textmesh is silent by default. See [SetLogger].
package textmesh
