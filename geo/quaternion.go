package geo

import "github.com/go-gl/mathgl/mgl64"

// Quaternion represents a rigid rotation. It is a thin wrapper over
// mgl64.Quat: the brush engine needs exactly one operation, "rotate a
// point about an axis through an angle", and mgl64 already implements the
// numerically fiddly part (building a unit quaternion from an axis-angle
// pair and applying it to a vector) correctly, so there is no reason to
// re-derive it by hand.
type Quaternion struct {
	q mgl64.Quat
}

// QuaternionFromAxisAngle builds the rotation of angle radians about axis
// (which need not be unit length).
func QuaternionFromAxisAngle(axis Vector3, angle float64) Quaternion {
	a := axis.Normalize()
	return Quaternion{q: mgl64.QuatRotate(angle, mgl64.Vec3{a.X, a.Y, a.Z})}
}

// Rotate applies the rotation to p.
func (q Quaternion) Rotate(p Vector3) Vector3 {
	r := q.q.Rotate(mgl64.Vec3{p.X, p.Y, p.Z})
	return Vec3(r[0], r[1], r[2])
}

// RotateAbout rotates p about center by q.
func (q Quaternion) RotateAbout(p, center Vector3) Vector3 {
	return center.Add(q.Rotate(p.Sub(center)))
}
