// Package brush is the public facade of the geometry engine: a Brush pairs
// a polyhedral mesh with the annotation.Adapter its host supplies, and
// exposes every public operation — construction, read-only queries, direct
// editing, rigid transforms, CSG subtraction and grid snapping — as plain
// methods. Internally it delegates to mesh for storage and invariants, clip
// and build for construction, edit for direct editing and transforms, csg
// for subtraction and snap for grid snapping; this package adds no
// geometry of its own.
package brush

import (
	"github.com/TrenchBroom/TrenchBroom-sub038/annotation"
	"github.com/TrenchBroom/TrenchBroom-sub038/build"
	"github.com/TrenchBroom/TrenchBroom-sub038/clip"
	"github.com/TrenchBroom/TrenchBroom-sub038/csg"
	"github.com/TrenchBroom/TrenchBroom-sub038/edit"
	"github.com/TrenchBroom/TrenchBroom-sub038/geo"
	"github.com/TrenchBroom/TrenchBroom-sub038/mesh"
	"github.com/TrenchBroom/TrenchBroom-sub038/snap"
)

// Brush is a convex polyhedron plus the adapter used to default and
// transform its faces' annotations. The zero value is not usable; build
// one with Cube or FromHalfSpaces.
type Brush struct {
	mesh    *mesh.Brush
	adapter annotation.Adapter
}

func wrap(m *mesh.Brush, adapter annotation.Adapter) *Brush {
	if adapter == nil {
		adapter = annotation.IdentityAdapter{}
	}
	return &Brush{mesh: m, adapter: adapter}
}

// Cube returns a new Brush occupying exactly bounds.
func Cube(bounds geo.Box3, adapter annotation.Adapter) *Brush {
	return wrap(build.Cube(bounds), adapter)
}

// FromHalfSpaces builds a Brush as the intersection of planes, each with
// the matching entry from anns (missing entries default via the adapter's
// DefaultFor).
func FromHalfSpaces(planes []geo.Plane, anns []annotation.FaceAnnotation, worldBounds geo.Box3, adapter annotation.Adapter) (*Brush, error) {
	if adapter == nil {
		adapter = annotation.IdentityAdapter{}
	}
	filled := make([]annotation.FaceAnnotation, len(planes))
	for i, p := range planes {
		if i < len(anns) {
			filled[i] = anns[i]
		} else {
			filled[i] = adapter.DefaultFor(p)
		}
	}
	m, err := build.FromHalfSpaces(planes, filled, worldBounds)
	if err != nil {
		return nil, err
	}
	return wrap(m, adapter), nil
}

// Clone returns an independent copy of b.
func (b *Brush) Clone() *Brush {
	return wrap(b.mesh.Clone(), b.adapter)
}

// Vertices, Edges and Faces return the live handles of b.
func (b *Brush) Vertices() []mesh.VertexId { return b.mesh.Vertices() }
func (b *Brush) Edges() []mesh.EdgeId      { return b.mesh.Edges() }
func (b *Brush) Faces() []mesh.FaceId      { return b.mesh.Faces() }

// VertexPosition returns the position of v.
func (b *Brush) VertexPosition(v mesh.VertexId) geo.Vector3 {
	return b.mesh.Vertex(v).Position
}

// FaceAnnotation returns f's current annotation.
func (b *Brush) FaceAnnotation(f mesh.FaceId) annotation.FaceAnnotation {
	return b.mesh.Face(f).Annotation
}

// FacePlane returns f's supporting plane.
func (b *Brush) FacePlane(f mesh.FaceId) geo.Plane {
	return b.mesh.Face(f).Plane
}

// Bounds returns b's axis-aligned bounding box.
func (b *Brush) Bounds() geo.Box3 { return b.mesh.Bounds() }

// Closed reports whether every edge has exactly two distinct live faces.
func (b *Brush) Closed() bool { return b.mesh.Closed() }

// ContainsPoint reports whether p lies inside or on the boundary of b.
func (b *Brush) ContainsPoint(p geo.Vector3) bool { return b.mesh.ContainsPoint(p) }

// Intersects reports whether b and other share any volume.
func (b *Brush) Intersects(other *Brush) bool { return b.mesh.Intersects(other.mesh) }

// Pick returns the nearest face ray hits, if any.
func (b *Brush) Pick(ray geo.Ray) (mesh.FaceId, float64, bool) { return b.mesh.Pick(ray) }

// AddHalfSpace clips b against plane, sealing the cut with a new face
// carrying ann. The clip runs against a clone and replaces b's mesh only
// when it succeeds, so a numerically degenerate cut leaves b untouched.
func (b *Brush) AddHalfSpace(plane geo.Plane, ann annotation.FaceAnnotation) (clip.Result, error) {
	work := b.mesh.Clone()
	result, _, _, err := clip.Clip(work, plane, ann)
	if err != nil {
		return result, err
	}
	if result == clip.Split {
		b.mesh.Assign(work)
	}
	return result, nil
}

// MoveVertex, MoveEdge and MoveFace perform the direct mesh edits.
func (b *Brush) MoveVertex(v mesh.VertexId, delta geo.Vector3, mergeOnCollision bool) (bool, mesh.VertexId, error) {
	return edit.MoveVertex(b.mesh, v, delta, mergeOnCollision)
}

func (b *Brush) CanMoveVertex(v mesh.VertexId, delta geo.Vector3, mergeOnCollision bool) bool {
	return edit.CanMoveVertex(b.mesh, v, delta, mergeOnCollision)
}

func (b *Brush) MoveEdge(e mesh.EdgeId, delta geo.Vector3) (bool, error) {
	return edit.MoveEdge(b.mesh, e, delta)
}

func (b *Brush) CanMoveEdge(e mesh.EdgeId, delta geo.Vector3) bool {
	return edit.CanMoveEdge(b.mesh, e, delta)
}

func (b *Brush) MoveFace(f mesh.FaceId, delta geo.Vector3) (bool, error) {
	return edit.MoveFace(b.mesh, f, delta)
}

func (b *Brush) CanMoveFace(f mesh.FaceId, delta geo.Vector3) bool {
	return edit.CanMoveFace(b.mesh, f, delta)
}

// SplitAndMoveEdge and SplitAndMoveFace add a new vertex and immediately
// move it, the editor's "drag a new handle out of an edge/face" gesture.
func (b *Brush) SplitAndMoveEdge(e mesh.EdgeId, delta geo.Vector3) (bool, mesh.VertexId, error) {
	return edit.SplitAndMoveEdge(b.mesh, e, delta)
}

func (b *Brush) SplitAndMoveFace(f mesh.FaceId, delta geo.Vector3) (bool, mesh.VertexId, error) {
	return edit.SplitAndMoveFace(b.mesh, f, delta)
}

// Translate, Rotate90, Rotate and Flip apply a rigid whole-brush transform,
// using b's adapter to keep face annotations consistent.
func (b *Brush) Translate(delta geo.Vector3) {
	edit.Translate(b.mesh, delta, b.adapter)
}

func (b *Brush) Rotate90(axis int, center geo.Vector3, steps int) {
	edit.Rotate90(b.mesh, axis, center, steps, b.adapter)
}

func (b *Brush) Rotate(q geo.Quaternion, center geo.Vector3) {
	edit.Rotate(b.mesh, q, center, b.adapter)
}

func (b *Brush) Flip(axis int, center geo.Vector3) {
	edit.Flip(b.mesh, axis, center, b.adapter)
}

// SnapVertices moves every vertex onto the grid lattice, rolling back if
// the result would break a mesh invariant.
func (b *Brush) SnapVertices(grid int) bool {
	return snap.SnapVertices(b.mesh, grid)
}

func (b *Brush) CanSnapVertices(grid int) bool {
	return snap.CanSnapVertices(b.mesh, grid)
}

// Subtract returns the convex brushes covering b \ other, each inheriting
// b's adapter.
func (b *Brush) Subtract(other *Brush, defaultAnn annotation.FaceAnnotation) ([]*Brush, error) {
	fragments, err := csg.Subtract(b.mesh, other.mesh, defaultAnn)
	if err != nil {
		return nil, err
	}
	out := make([]*Brush, len(fragments))
	for i, frag := range fragments {
		out[i] = wrap(frag, b.adapter)
	}
	return out, nil
}
