// Package annotation defines the opaque per-face metadata the brush
// geometry engine carries but never interprets: a material name plus
// texture-projection parameters. The engine calls back into a
// caller-supplied Adapter to transform or default this metadata whenever a
// geometric operation needs to produce it; it never reads into the
// projection math itself.
package annotation

import "github.com/TrenchBroom/TrenchBroom-sub038/geo"

// FaceAnnotation is the material name plus texture-projection parameters
// attached to a face. Geometric operations (clip, move, subtract, snap)
// clone, default or transform annotations via Adapter; they never look
// inside one.
type FaceAnnotation struct {
	Material string

	// UAxis, VAxis are the texture-projection axes.
	UAxis, VAxis geo.Vector3

	// XOffset, YOffset are texture offsets in texture space.
	XOffset, YOffset float64

	// Rotation is the texture rotation angle in radians.
	Rotation float64

	// XScale, YScale are texture scale factors; 0 is never valid and
	// callers should treat it as 1.
	XScale, YScale float64
}

// Default returns the zero-value annotation with unit texture scale, the
// safest default for a material-less face (used when the caller does not
// supply an Adapter).
func Default() FaceAnnotation {
	return FaceAnnotation{
		Material: "",
		UAxis:    geo.Vec3(1, 0, 0),
		VAxis:    geo.Vec3(0, 1, 0),
		XScale:   1,
		YScale:   1,
	}
}

// Clone returns a copy of a. FaceAnnotation has no reference fields so this
// is a plain value copy, but it is spelled out as a method because every
// other engine entity (Vertex, Edge, Face) has a matching Clone and callers
// should not need to know which ones are trivial.
func (a FaceAnnotation) Clone() FaceAnnotation {
	return a
}

// RigidMotion describes the translate/rotate/flip a transform applies to a
// brush, passed to Adapter.Transform so host texture-lock logic can keep a
// material's projection visually stable under the motion.
type RigidMotion struct {
	// Translation is the translation component, applied after rotation.
	Translation geo.Vector3

	// Rotation is the rotation component (identity rotation for a pure
	// translate or a flip).
	Rotation geo.Quaternion

	// Reflected is true for a mirror/flip transform, which reverses face
	// winding in addition to whatever Rotation encodes.
	Reflected bool

	// Center is the pivot point for Rotation and for the reflection plane
	// implied by Reflected.
	Center geo.Vector3
}

// Adapter is the capability interface the core consumes from its host for
// everything it cannot decide about a FaceAnnotation on its own: how one
// changes under a rigid motion, and what a brand new face (with no better
// source) should carry. An Adapter must be a pure function of its
// arguments — the engine may call it from deep inside a speculative,
// rolled-back operation, so any hidden state it kept would see edits that
// never actually committed.
type Adapter interface {
	// Transform returns ann as it should look after motion is applied to
	// the face it is attached to.
	Transform(ann FaceAnnotation, motion RigidMotion) FaceAnnotation

	// DefaultFor returns the annotation to give a newly created face lying
	// on plane, when no better source (an inherited or transformed
	// annotation) is available.
	DefaultFor(plane geo.Plane) FaceAnnotation
}

// IdentityAdapter is a minimal Adapter: Transform returns ann unchanged
// (no texture lock) and DefaultFor always returns Default(). It exists so
// callers that do not care about texture-lock behavior (most tests, and
// any host that defers texture alignment to a later pass) are not forced
// to write their own Adapter.
type IdentityAdapter struct{}

func (IdentityAdapter) Transform(ann FaceAnnotation, _ RigidMotion) FaceAnnotation {
	return ann
}

func (IdentityAdapter) DefaultFor(_ geo.Plane) FaceAnnotation {
	return Default()
}
