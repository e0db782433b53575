// Package mesh builds the two renderable halves of a text pair from glyph
// shapes: a triangulated fill and a set of closed outline loops.
//
// Both builders take the same alignment offset, computed once by AlignOffset
// from the union bounds of the shapes, so fill and outline always line up.
package mesh
