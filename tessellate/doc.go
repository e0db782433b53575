// Package tessellate converts polygons with holes into indexed triangle
// lists.
//
// Two triangulators are provided. Earcut handles arbitrary simple polygons
// with holes and is what glyph fills use. Fan handles convex outlines only
// and is kept for callers that know their input is convex.
//
// Output triangles index into Polygon.Vertices: the outer contour first,
// followed by every hole in order. Triangles are wound counter-clockwise
// in a Y-up frame.
package tessellate
