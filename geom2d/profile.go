package geom2d

import (
	"errors"
	"math"
)

// ErrDegenerateProfile indicates an outline that cannot bound a solid:
// fewer than three vertices, or two equal consecutive vertices.
var ErrDegenerateProfile = errors.New("geom2d: degenerate profile")

// coincidentEps is the vertex-coincidence tolerance used by Validate.
// Outline coordinates are plain millimetre values, so 1e-9 is far below
// any manufacturable feature.
const coincidentEps = 1e-9

// Profile is an ordered, implicitly closed polygon: the edge from the
// last vertex back to the first is implied. A Profile is pure data and
// is never mutated by its methods; transforms return fresh copies.
type Profile []Point

// Rect returns the axis-aligned rectangle spanned by min and max,
// ordered counterclockwise starting at min.
func Rect(min, max Point) Profile {
	return Profile{
		min,
		{X: max.X, Y: min.Y},
		max,
		{X: min.X, Y: max.Y},
	}
}

// Len returns the number of vertices.
func (pr Profile) Len() int { return len(pr) }

// Validate reports ErrDegenerateProfile for outlines that cannot bound a
// solid. Complexity: O(n).
func (pr Profile) Validate() error {
	if len(pr) < 3 {
		return ErrDegenerateProfile
	}
	for i, p := range pr {
		next := pr[(i+1)%len(pr)]
		if p.Eq(next, coincidentEps) {
			return ErrDegenerateProfile
		}
	}
	return nil
}

// BoundingBox returns the min and max corners of the outline.
// Calling it on an empty profile returns two zero points.
func (pr Profile) BoundingBox() (min, max Point) {
	if len(pr) == 0 {
		return Point{}, Point{}
	}
	min, max = pr[0], pr[0]
	for _, p := range pr[1:] {
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		max.X = math.Max(max.X, p.X)
		max.Y = math.Max(max.Y, p.Y)
	}
	return min, max
}

// Translate returns a copy of the outline shifted by (dx, dy).
func (pr Profile) Translate(dx, dy float64) Profile {
	out := make(Profile, len(pr))
	for i, p := range pr {
		out[i] = p.Add(dx, dy)
	}
	return out
}

// MirrorX returns a copy of the outline reflected about the vertical
// line x = axis. Vertex order is preserved, so the winding direction
// flips; Area changes sign accordingly.
func (pr Profile) MirrorX(axis float64) Profile {
	out := make(Profile, len(pr))
	for i, p := range pr {
		out[i] = Point{X: 2*axis - p.X, Y: p.Y}
	}
	return out
}

// Area returns the signed area of the polygon (shoelace formula):
// positive for counterclockwise winding, negative for clockwise.
// Complexity: O(n).
func (pr Profile) Area() float64 {
	if len(pr) < 3 {
		return 0
	}
	var sum float64
	for i, p := range pr {
		next := pr[(i+1)%len(pr)]
		sum += p.X*next.Y - next.X*p.Y
	}
	return sum / 2
}
