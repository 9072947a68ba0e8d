package edit

import (
	"math"

	"github.com/TrenchBroom/TrenchBroom-sub038/annotation"
	"github.com/TrenchBroom/TrenchBroom-sub038/geo"
	"github.com/TrenchBroom/TrenchBroom-sub038/mesh"
)

// identityQuaternion is the zero-angle rotation, used to fill
// annotation.RigidMotion.Rotation for transforms that carry no rotation
// component (Translate; Flip builds its own zero-angle rotation about the
// mirror axis).
var identityQuaternion = geo.QuaternionFromAxisAngle(geo.Vec3(1, 0, 0), 0)

func adapterOrIdentity(a annotation.Adapter) annotation.Adapter {
	if a == nil {
		return annotation.IdentityAdapter{}
	}
	return a
}

func transformAnnotations(b *mesh.Brush, adapter annotation.Adapter, motion annotation.RigidMotion) {
	for _, fid := range b.Faces() {
		face := b.Face(fid)
		face.Annotation = adapter.Transform(face.Annotation, motion)
		b.SetFace(fid, face)
	}
}

// Translate moves every vertex of b by delta and updates every face's
// plane offset and annotation to match.
func Translate(b *mesh.Brush, delta geo.Vector3, adapter annotation.Adapter) {
	adapter = adapterOrIdentity(adapter)

	for _, vid := range b.Vertices() {
		b.SetVertexPosition(vid, b.Vertex(vid).Position.Add(delta))
	}
	for _, fid := range b.Faces() {
		face := b.Face(fid)
		face.Plane.D += face.Plane.Normal.Dot(delta)
		b.SetFace(fid, face)
	}

	transformAnnotations(b, adapter, annotation.RigidMotion{Translation: delta, Rotation: identityQuaternion})
	b.SettleAll()
	b.RecomputeBounds()
}

// Rotate90 rotates b by steps*90 degrees about center, around the given
// axis (0 = X, 1 = Y, 2 = Z). Negative steps rotate the other way.
func Rotate90(b *mesh.Brush, axis int, center geo.Vector3, steps int, adapter annotation.Adapter) {
	angle := float64(steps) * math.Pi / 2
	q := geo.QuaternionFromAxisAngle(axisVector(axis), angle)
	Rotate(b, q, center, adapter)
}

// Rotate rotates b by q about center.
func Rotate(b *mesh.Brush, q geo.Quaternion, center geo.Vector3, adapter annotation.Adapter) {
	adapter = adapterOrIdentity(adapter)

	for _, vid := range b.Vertices() {
		b.SetVertexPosition(vid, q.RotateAbout(b.Vertex(vid).Position, center))
	}
	for _, fid := range b.Faces() {
		face := b.Face(fid)
		newNormal := q.Rotate(face.Plane.Normal)
		newD := face.Plane.D - face.Plane.Normal.Dot(center) + newNormal.Dot(center)
		face.Plane = geo.Plane{Normal: newNormal, D: newD}
		b.SetFace(fid, face)
	}

	transformAnnotations(b, adapter, annotation.RigidMotion{Rotation: q, Center: center})
	b.SettleAll()
	b.RecomputeBounds()
}

// Flip mirrors b across the plane through center perpendicular to axis (0 =
// X, 1 = Y, 2 = Z). A mirror reverses handedness, so every face's vertex
// and edge cycle is reversed (mesh.Brush.FlipFace) to keep normals pointing
// outward.
func Flip(b *mesh.Brush, axis int, center geo.Vector3, adapter annotation.Adapter) {
	adapter = adapterOrIdentity(adapter)

	reflectPoint := func(p geo.Vector3) geo.Vector3 {
		return reflectAbout(p, axis, center)
	}
	reflectDir := func(v geo.Vector3) geo.Vector3 {
		return reflectLinear(v, axis)
	}

	for _, vid := range b.Vertices() {
		b.SetVertexPosition(vid, reflectPoint(b.Vertex(vid).Position))
	}
	for _, fid := range b.Faces() {
		face := b.Face(fid)
		newNormal := reflectDir(face.Plane.Normal)
		newD := face.Plane.D - face.Plane.Normal.Dot(center) + newNormal.Dot(center)
		// FlipFace below flips the stored plane along with the cycle, so
		// the mirrored plane is stored pre-flipped to come out outward.
		face.Plane = geo.Plane{Normal: newNormal, D: newD}.Flip()
		b.SetFace(fid, face)
	}
	for _, fid := range b.Faces() {
		b.FlipFace(fid)
	}
	// FlipFace swaps an edge's sides once for each face it reverses, so
	// every edge has been swapped twice by the loop above; swap each once
	// more so every edge ends up with its Left and Right exchanged.
	for _, eid := range b.Edges() {
		b.FlipEdge(eid)
	}

	q := geo.QuaternionFromAxisAngle(axisVector(axis), 0)
	motion := annotation.RigidMotion{Rotation: q, Center: center, Reflected: true}
	transformAnnotations(b, adapter, motion)
	b.SettleAll()
	b.RecomputeBounds()
}

func axisVector(axis int) geo.Vector3 {
	switch axis {
	case 0:
		return geo.Vec3(1, 0, 0)
	case 1:
		return geo.Vec3(0, 1, 0)
	case 2:
		return geo.Vec3(0, 0, 1)
	default:
		panic("edit: axis must be 0 (X), 1 (Y) or 2 (Z)")
	}
}

func reflectAbout(p geo.Vector3, axis int, center geo.Vector3) geo.Vector3 {
	v := reflectLinear(p.Sub(center), axis)
	return center.Add(v)
}

func reflectLinear(v geo.Vector3, axis int) geo.Vector3 {
	switch axis {
	case 0:
		return geo.Vec3(-v.X, v.Y, v.Z)
	case 1:
		return geo.Vec3(v.X, -v.Y, v.Z)
	case 2:
		return geo.Vec3(v.X, v.Y, -v.Z)
	default:
		panic("edit: axis must be 0 (X), 1 (Y) or 2 (Z)")
	}
}
