package geo

import "math"

// Box3 is an axis-aligned bounding box defined by its minimum and maximum
// corners.
type Box3 struct {
	Min, Max Vector3
}

// NewBox3 builds a Box3 from two corners, regardless of which corner holds
// the larger coordinates on each axis.
func NewBox3(a, b Vector3) Box3 {
	return Box3{
		Min: Vec3(math.Min(a.X, b.X), math.Min(a.Y, b.Y), math.Min(a.Z, b.Z)),
		Max: Vec3(math.Max(a.X, b.X), math.Max(a.Y, b.Y), math.Max(a.Z, b.Z)),
	}
}

// CubeAround builds a symmetric cube of the given half-extent centered on
// the origin, the default shape of the editor's world bounds.
func CubeAround(halfExtent float64) Box3 {
	return Box3{
		Min: Vec3(-halfExtent, -halfExtent, -halfExtent),
		Max: Vec3(halfExtent, halfExtent, halfExtent),
	}
}

// Empty returns an inverted box suitable as the identity element for
// repeated ExpandByPoint calls.
func Empty() Box3 {
	inf := math.Inf(1)
	return Box3{Min: Vec3(inf, inf, inf), Max: Vec3(-inf, -inf, -inf)}
}

// ExpandByPoint grows b to include p, returning the updated box.
func (b Box3) ExpandByPoint(p Vector3) Box3 {
	return Box3{
		Min: Vec3(math.Min(b.Min.X, p.X), math.Min(b.Min.Y, p.Y), math.Min(b.Min.Z, p.Z)),
		Max: Vec3(math.Max(b.Max.X, p.X), math.Max(b.Max.Y, p.Y), math.Max(b.Max.Z, p.Z)),
	}
}

// BoxFromPoints computes the bounding box of points.
func BoxFromPoints(points []Vector3) Box3 {
	b := Empty()
	for _, p := range points {
		b = b.ExpandByPoint(p)
	}
	return b
}

// Center returns the box's center point.
func (b Box3) Center() Vector3 {
	return b.Min.Add(b.Max).MultiplyScalar(0.5)
}

// Size returns the extent of the box along each axis.
func (b Box3) Size() Vector3 {
	return b.Max.Sub(b.Min)
}

// Grow returns b expanded outward by margin on every face.
func (b Box3) Grow(margin float64) Box3 {
	m := Vec3(margin, margin, margin)
	return Box3{Min: b.Min.Sub(m), Max: b.Max.Add(m)}
}

// ContainsPoint reports whether p lies within b, within PositionEpsilon.
func (b Box3) ContainsPoint(p Vector3) bool {
	return p.X >= b.Min.X-PositionEpsilon && p.X <= b.Max.X+PositionEpsilon &&
		p.Y >= b.Min.Y-PositionEpsilon && p.Y <= b.Max.Y+PositionEpsilon &&
		p.Z >= b.Min.Z-PositionEpsilon && p.Z <= b.Max.Z+PositionEpsilon
}

// Intersects reports whether b and other overlap (including touching).
func (b Box3) Intersects(other Box3) bool {
	return b.Min.X <= other.Max.X+PositionEpsilon && b.Max.X >= other.Min.X-PositionEpsilon &&
		b.Min.Y <= other.Max.Y+PositionEpsilon && b.Max.Y >= other.Min.Y-PositionEpsilon &&
		b.Min.Z <= other.Max.Z+PositionEpsilon && b.Max.Z >= other.Min.Z-PositionEpsilon
}

// Equals reports whether b and other describe the same box within
// PositionEpsilon.
func (b Box3) Equals(other Box3) bool {
	return b.Min.Equals(other.Min) && b.Max.Equals(other.Max)
}

// Planes returns the six inward-facing half-spaces whose intersection is
// exactly b — used by the convex builder to produce the canonical cube.
func (b Box3) Planes() [6]Plane {
	return [6]Plane{
		{Normal: Vec3(1, 0, 0), D: b.Max.X},
		{Normal: Vec3(-1, 0, 0), D: -b.Min.X},
		{Normal: Vec3(0, 1, 0), D: b.Max.Y},
		{Normal: Vec3(0, -1, 0), D: -b.Min.Y},
		{Normal: Vec3(0, 0, 1), D: b.Max.Z},
		{Normal: Vec3(0, 0, -1), D: -b.Min.Z},
	}
}

// Corners returns the 8 corners of b in a fixed order matched to
// build.Cube's vertex layout: for bit i (0=X,1=Y,2=Z), bit set means Max,
// clear means Min.
func (b Box3) Corners() [8]Vector3 {
	var c [8]Vector3
	for i := 0; i < 8; i++ {
		x := b.Min.X
		if i&1 != 0 {
			x = b.Max.X
		}
		y := b.Min.Y
		if i&2 != 0 {
			y = b.Max.Y
		}
		z := b.Min.Z
		if i&4 != 0 {
			z = b.Max.Z
		}
		c[i] = Vec3(x, y, z)
	}
	return c
}
