// Package mesh implements the polyhedral vertex/edge/face graph a Brush is
// built from: arena-owned storage addressed by stable integer handles, the
// topology-only operations callers outside this package compose into
// clipping, direct editing, CSG and snapping, and the invariant checks a
// valid polyhedron must satisfy.
//
// Vertex, Edge and Face data lives in three growable slices owned
// exclusively by a Brush; VertexId/EdgeId/FaceId are indices into those
// slices, giving the arena-plus-handle design recorded in DESIGN.md: no
// cyclic ownership, no pool size caps, and a brush can be deep-copied by
// copying three slices.
package mesh

// VertexId, EdgeId and FaceId are handles into a Brush's arenas. They are
// only unique and dereferenceable for the Brush that produced them, and
// only until that brush's next mutating operation: a handle returned by
// one call (e.g. the new seam vertex from a clip) must not be retained
// across a later call, because a successful clip compacts the arenas and
// may renumber everything. Operations that hand back a fresh handle for the
// caller to use immediately (the new handle from edit.MoveVertex, the new
// face from clip.Clip) do so precisely because of this rule.
type (
	VertexId int32
	EdgeId   int32
	FaceId   int32
)

// InvalidVertex, InvalidEdge and InvalidFace are the handles denoting "no
// such entity" — the zero value of each id type is a valid index (0), so
// the invalid sentinel must be negative.
const (
	InvalidVertex VertexId = -1
	InvalidEdge   EdgeId   = -1
	InvalidFace   FaceId   = -1
)
