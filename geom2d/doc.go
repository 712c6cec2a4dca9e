// Package geom2d provides the small set of 2D primitives the bearing
// generator computes with: points, closed polygonal outlines (profiles)
// and rigid placements.
//
// What:
//
//   - Point — a position in a 2D cross-section plane.
//   - Profile — an ordered, implicitly closed polygon describing a solid
//     outline (race cross-section, roller half-section). Pure data: no
//     modeling-kernel calls, so every consumer stays testable offline.
//   - Rect — convenience constructor for axis-aligned rectangles.
//   - Placement — a (rotation, translation) pair positioning a revolved
//     profile in 3D; consumed by an external geometry kernel.
//
// Why polygons only:
//
//	Every cut the generator performs — the 45° channel, edge chamfers,
//	the relief band — produces straight flats, so arc segments are never
//	needed and outlines stay exact under float64.
//
// Errors:
//
//   - ErrDegenerateProfile: fewer than three vertices, or two equal
//     consecutive vertices.
//
// Complexity: all Profile methods are O(n) in the vertex count.
package geom2d
