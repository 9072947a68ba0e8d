package geo

import "math"

// Ray is a half-line starting at Origin and extending in Direction, which
// need not be unit length.
type Ray struct {
	Origin    Vector3
	Direction Vector3
}

// NewRay builds a ray from origin and direction.
func NewRay(origin, direction Vector3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// PointAt returns the point origin + direction*t.
func (r Ray) PointAt(t float64) Vector3 {
	return r.Origin.Add(r.Direction.MultiplyScalar(t))
}

// IntersectPlane intersects r with pl, returning the ray parameter t. ok is
// false if r is parallel to pl or the intersection lies behind the origin.
func (r Ray) IntersectPlane(pl Plane) (t float64, ok bool) {
	t, ok = pl.IntersectLine(r.Origin, r.Direction)
	if !ok || t < 0 {
		return 0, false
	}
	return t, true
}

// IntersectBox3 intersects r with the surface of b, returning the smallest
// non-negative hit parameter. ok is false if the ray misses b.
func (r Ray) IntersectBox3(b Box3) (t float64, ok bool) {
	tMin, tMax := 0.0, math.Inf(1)
	for axis := 0; axis < 3; axis++ {
		o := r.Origin.Component(axis)
		d := r.Direction.Component(axis)
		lo, hi := b.Min.Component(axis), b.Max.Component(axis)
		if d == 0 {
			if o < lo || o > hi {
				return 0, false
			}
			continue
		}
		t1, t2 := (lo-o)/d, (hi-o)/d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tMin {
			tMin = t1
		}
		if t2 < tMax {
			tMax = t2
		}
		if tMin > tMax {
			return 0, false
		}
	}
	return tMin, true
}
