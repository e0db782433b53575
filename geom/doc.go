// Package geom provides the planar geometry shared by the text mesh pipeline:
// points, axis-aligned boxes, closed contours and curve subdivision.
//
// All coordinates use a Y-up convention, matching font outlines and the
// 3D scene the meshes are published into. A contour with a positive signed
// area is counter-clockwise.
package geom
