package edit

import (
	"sort"

	"github.com/TrenchBroom/TrenchBroom-sub038/geo"
	"github.com/TrenchBroom/TrenchBroom-sub038/geoerr"
	"github.com/TrenchBroom/TrenchBroom-sub038/internal/telemetry"
	"github.com/TrenchBroom/TrenchBroom-sub038/mesh"
)

// maxMoveSteps bounds the partial-move loop: each step either finishes the
// move or is blocked by some non-incident face's plane, and a well-formed
// convex brush blocks a single vertex drag against only a handful of planes
// before either completing or running out of room entirely.
const maxMoveSteps = 64

// MoveVertex attempts to translate v by delta. The move may complete
// partially: if some other face's plane blocks further motion, the brush is
// left at the furthest point the drag could safely reach and moved reports
// true as long as any progress was made. If mergeOnCollision is true and the
// final position coincides with another vertex, the two are folded
// together via mergeVertices; otherwise landing exactly on another vertex
// invalidates the step (non-degeneracy) and that
// increment rolls back.
func MoveVertex(b *mesh.Brush, v mesh.VertexId, delta geo.Vector3, mergeOnCollision bool) (moved bool, newHandle mesh.VertexId, err error) {
	if !b.VertexAlive(v) {
		return false, v, geoerr.New("edit.MoveVertex", geoerr.InvalidInput)
	}
	if delta.Length() < geo.PositionEpsilon {
		return false, v, nil
	}

	work := b.Clone()
	moved, err = moveVertex(work, v, delta, mergeOnCollision)
	if err != nil {
		return false, v, err
	}
	if !moved {
		return false, v, nil
	}
	b.Assign(work)
	telemetry.Default.Debug("edit.MoveVertex: moved vertex %d", v)
	return true, v, nil
}

// moveVertex is MoveVertex's unexported core: it mutates b directly and
// does not clone or commit, so MoveEdge/MoveFace can compose several of
// these against one shared clone before deciding whether to commit.
func moveVertex(b *mesh.Brush, v mesh.VertexId, delta geo.Vector3, mergeOnCollision bool) (bool, error) {
	if delta.Length() < geo.PositionEpsilon {
		return false, nil
	}

	remaining := delta
	moved := false

	for step := 0; step < maxMoveSteps && remaining.Length() > geo.PositionEpsilon; step++ {
		checkpoint := b.Clone()

		touched := splitFacesAroundVertex(b, v, remaining)
		incident := b.IncidentFaces(v)

		t := tMaxForStep(b, v, remaining, incident)
		if t <= 0 {
			b.Assign(checkpoint)
			break
		}

		b.SetVertexPosition(v, b.Vertex(v).Position.Add(remaining.MultiplyScalar(t)))
		b.SettleVertex(v)

		// Landing exactly on another vertex either folds the two together
		// or invalidates the step, depending on the caller's policy. The
		// merge must run before plane recomputation: it deletes the
		// zero-area triangles whose planes could no longer be derived.
		if other, ok := findCoincidentVertex(b, v); ok {
			if !mergeOnCollision {
				b.Assign(checkpoint)
				break
			}
			if err := mergeVertices(b, v, other); err != nil {
				b.Assign(checkpoint)
				break
			}
		}

		incident = b.IncidentFaces(v)
		if err := recomputeFacePlanes(b, incident); err != nil {
			b.Assign(checkpoint)
			break
		}

		candidates := mergeCoplanarFaces(b, append(touched, incident...))
		if fixConcaveCreases(b) {
			mergeCoplanarFaces(b, candidates)
		}
		mergeCollinearEdges(b, v)
		b.SettleAll()
		b.RecomputeBounds()

		if err := b.Validate(); err != nil {
			b.Assign(checkpoint)
			break
		}

		moved = true
		remaining = remaining.MultiplyScalar(1 - t)
	}

	return moved, nil
}

// recomputeFacePlanes rebuilds each face's stored plane from its current
// vertex positions. Face.Plane is not derived automatically from the
// vertex cycle, so any operation that moves a vertex must refresh the
// plane of every face incident to it before the result can be validated or
// checked for coplanar merges.
func recomputeFacePlanes(b *mesh.Brush, faces []mesh.FaceId) error {
	for _, fid := range faces {
		if !b.FaceAlive(fid) {
			continue
		}
		face := b.Face(fid)
		p0 := b.Vertex(face.Vertices[0]).Position
		p1 := b.Vertex(face.Vertices[1]).Position
		p2 := b.Vertex(face.Vertices[2]).Position
		plane, err := geo.PlaneFromPoints(p0, p1, p2)
		if err != nil {
			return geoerr.Wrap("edit.recomputeFacePlanes", geoerr.DegenerateResult, err)
		}
		face.Plane = plane
		b.SetFace(fid, face)
	}
	return nil
}

// tMaxForStep returns the largest t in [0, 1] such that moving v by t*delta
// keeps v behind every face not incident to v (global convexity). Faces
// incident to v are excluded since their planes move with v by
// construction; only the fixed, non-incident planes can block the drag.
func tMaxForStep(b *mesh.Brush, v mesh.VertexId, delta geo.Vector3, incident []mesh.FaceId) float64 {
	skip := make(map[mesh.FaceId]bool, len(incident))
	for _, f := range incident {
		skip[f] = true
	}

	start := b.Vertex(v).Position
	tMax := 1.0
	for _, fid := range b.Faces() {
		if skip[fid] {
			continue
		}
		face := b.Face(fid)
		denom := face.Plane.Normal.Dot(delta)
		if denom <= geo.PositionEpsilon {
			continue
		}
		d0 := face.Plane.SignedDistance(start)
		t := -d0 / denom
		if t < tMax {
			tMax = t
		}
	}
	if tMax < 0 {
		tMax = 0
	}
	return tMax
}

// CanMoveVertex reports whether MoveVertex(b, v, delta, mergeOnCollision)
// would move v at all, without mutating b.
func CanMoveVertex(b *mesh.Brush, v mesh.VertexId, delta geo.Vector3, mergeOnCollision bool) bool {
	clone := b.Clone()
	moved, _, err := MoveVertex(clone, v, delta, mergeOnCollision)
	return err == nil && moved
}

// MoveEdge moves both of e's endpoints by delta as a single atomic
// operation: if either vertex's move fails to validate, the whole edge move
// is rolled back.
func MoveEdge(b *mesh.Brush, e mesh.EdgeId, delta geo.Vector3) (bool, error) {
	if !b.EdgeAlive(e) {
		return false, geoerr.New("edit.MoveEdge", geoerr.InvalidInput)
	}
	edge := b.Edge(e)

	work := b.Clone()
	m1, err1 := moveVertex(work, edge.A, delta, false)
	if err1 != nil {
		return false, geoerr.Wrap("edit.MoveEdge", geoerr.DegenerateResult, err1)
	}
	m2, err2 := moveVertex(work, edge.B, delta, false)
	if err2 != nil {
		return false, geoerr.Wrap("edit.MoveEdge", geoerr.DegenerateResult, err2)
	}

	if err := work.Validate(); err != nil {
		return false, geoerr.Wrap("edit.MoveEdge", geoerr.DegenerateResult, err)
	}
	if !m1 || !m2 {
		return false, nil
	}
	b.Assign(work)
	return true, nil
}

// CanMoveEdge reports whether MoveEdge(b, e, delta) would move e at all.
func CanMoveEdge(b *mesh.Brush, e mesh.EdgeId, delta geo.Vector3) bool {
	clone := b.Clone()
	moved, err := MoveEdge(clone, e, delta)
	return err == nil && moved
}

// MoveFace moves every vertex of f by delta, leading vertices first (those
// furthest along delta from f's center), so a leading vertex never gets
// trapped behind a trailing one that has not moved yet. Rolled back on any
// failure, same as MoveEdge.
func MoveFace(b *mesh.Brush, f mesh.FaceId, delta geo.Vector3) (bool, error) {
	if !b.FaceAlive(f) {
		return false, geoerr.New("edit.MoveFace", geoerr.InvalidInput)
	}
	face := b.Face(f)

	var center geo.Vector3
	for _, vid := range face.Vertices {
		center = center.Add(b.Vertex(vid).Position)
	}
	center = center.MultiplyScalar(1 / float64(len(face.Vertices)))

	order := append([]mesh.VertexId(nil), face.Vertices...)
	sort.Slice(order, func(i, j int) bool {
		di := b.Vertex(order[i]).Position.Sub(center).Dot(delta)
		dj := b.Vertex(order[j]).Position.Sub(center).Dot(delta)
		return di > dj
	})

	work := b.Clone()
	allMoved := true
	for _, vid := range order {
		m, err := moveVertex(work, vid, delta, false)
		if err != nil {
			return false, geoerr.Wrap("edit.MoveFace", geoerr.DegenerateResult, err)
		}
		allMoved = allMoved && m
	}

	if err := work.Validate(); err != nil {
		return false, geoerr.Wrap("edit.MoveFace", geoerr.DegenerateResult, err)
	}
	if !allMoved {
		return false, nil
	}
	b.Assign(work)
	return true, nil
}

// CanMoveFace reports whether MoveFace(b, f, delta) would move f at all.
func CanMoveFace(b *mesh.Brush, f mesh.FaceId, delta geo.Vector3) bool {
	clone := b.Clone()
	moved, err := MoveFace(clone, f, delta)
	return err == nil && moved
}

// SplitAndMoveEdge splits e at its midpoint, adding one vertex and
// replacing e with two edges, then moves that new vertex by delta.
func SplitAndMoveEdge(b *mesh.Brush, e mesh.EdgeId, delta geo.Vector3) (moved bool, newVertex mesh.VertexId, err error) {
	if !b.EdgeAlive(e) {
		return false, mesh.InvalidVertex, geoerr.New("edit.SplitAndMoveEdge", geoerr.InvalidInput)
	}

	work := b.Clone()
	mid, err := splitEdge(work, e)
	if err != nil {
		return false, mesh.InvalidVertex, geoerr.Wrap("edit.SplitAndMoveEdge", geoerr.DegenerateResult, err)
	}

	m, err := moveVertex(work, mid, delta, false)
	if err != nil {
		return false, mesh.InvalidVertex, err
	}
	if err := work.Validate(); err != nil {
		return false, mesh.InvalidVertex, geoerr.Wrap("edit.SplitAndMoveEdge", geoerr.DegenerateResult, err)
	}
	if !m {
		return false, mesh.InvalidVertex, nil
	}
	b.Assign(work)
	return true, mid, nil
}

// SplitAndMoveFace splits f by adding its centroid as a new vertex and
// fanning f into triangles around it, then moves the centroid by delta.
// The delta must have a strictly positive dot product with f's normal
// (otherwise the face would indent rather than extrude); this is
// pre-checked and rejected before any mutation.
func SplitAndMoveFace(b *mesh.Brush, f mesh.FaceId, delta geo.Vector3) (moved bool, newVertex mesh.VertexId, err error) {
	if !b.FaceAlive(f) {
		return false, mesh.InvalidVertex, geoerr.New("edit.SplitAndMoveFace", geoerr.InvalidInput)
	}
	face := b.Face(f)
	if face.Plane.Normal.Dot(delta) <= geo.PositionEpsilon {
		return false, mesh.InvalidVertex, geoerr.New("edit.SplitAndMoveFace", geoerr.InvalidInput)
	}

	work := b.Clone()
	centroid, err := splitFaceAtCentroid(work, f)
	if err != nil {
		return false, mesh.InvalidVertex, geoerr.Wrap("edit.SplitAndMoveFace", geoerr.DegenerateResult, err)
	}

	m, err := moveVertex(work, centroid, delta, false)
	if err != nil {
		return false, mesh.InvalidVertex, err
	}
	if err := work.Validate(); err != nil {
		return false, mesh.InvalidVertex, geoerr.Wrap("edit.SplitAndMoveFace", geoerr.DegenerateResult, err)
	}
	if !m {
		return false, mesh.InvalidVertex, nil
	}
	b.Assign(work)
	return true, centroid, nil
}

// splitEdge replaces e with two edges meeting at a new vertex at e's
// midpoint, fixing up both incident faces' cycles.
func splitEdge(b *mesh.Brush, e mesh.EdgeId) (mesh.VertexId, error) {
	edge := b.Edge(e)
	mid := b.Vertex(edge.A).Position.Lerp(b.Vertex(edge.B).Position, 0.5)
	midID := b.AddVertex(mid)

	e1 := b.AddEdge(edge.A, midID, edge.Left, edge.Right)
	e2 := b.AddEdge(midID, edge.B, edge.Left, edge.Right)

	for _, fid := range []mesh.FaceId{edge.Left, edge.Right} {
		face := b.Face(fid)
		i := face.IndexOfEdge(e)
		if i < 0 {
			return mesh.InvalidVertex, geoerr.New("edit.splitEdge", geoerr.DegenerateResult)
		}
		n := len(face.Vertices)
		var ordered []mesh.EdgeId
		if face.Vertices[i] == edge.A {
			ordered = []mesh.EdgeId{e1, e2}
		} else {
			ordered = []mesh.EdgeId{e2, e1}
		}
		b.ReplaceFaceSpan(fid, i, (i+1)%n, []mesh.VertexId{midID}, ordered)
	}

	b.RemoveEdge(e)
	return midID, nil
}

// splitFaceAtCentroid adds f's centroid as a new vertex and fans f into
// triangles around it.
func splitFaceAtCentroid(b *mesh.Brush, f mesh.FaceId) (mesh.VertexId, error) {
	face := b.Face(f)
	if len(face.Vertices) < 3 {
		return mesh.InvalidVertex, geoerr.New("edit.splitFaceAtCentroid", geoerr.DegenerateResult)
	}

	var centroid geo.Vector3
	for _, vid := range face.Vertices {
		centroid = centroid.Add(b.Vertex(vid).Position)
	}
	centroid = centroid.MultiplyScalar(1 / float64(len(face.Vertices)))
	centroidID := b.AddVertex(centroid)

	n := len(face.Vertices)
	rim := append([]mesh.VertexId(nil), face.Vertices...)
	rimEdges := append([]mesh.EdgeId(nil), face.Edges...)

	spokes := make([]mesh.EdgeId, n)
	triangles := make([]mesh.FaceId, n)
	triangles[0] = f
	for i := 1; i < n; i++ {
		triangles[i] = b.AddFace(mesh.Face{Plane: face.Plane, Annotation: face.Annotation})
	}
	for i := 0; i < n; i++ {
		left := triangles[(i-1+n)%n]
		right := triangles[i]
		spokes[i] = b.AddEdge(centroidID, rim[i], left, right)
	}

	for i := 0; i < n; i++ {
		tri := triangles[i]
		rimEdge := rimEdges[i]
		e := b.Edge(rimEdge)
		if e.Left == f {
			e.Left = tri
		}
		if e.Right == f {
			e.Right = tri
		}
		b.SetEdge(rimEdge, e)

		b.SetFace(tri, mesh.Face{
			Vertices:   []mesh.VertexId{centroidID, rim[i], rim[(i+1)%n]},
			Edges:      []mesh.EdgeId{spokes[i], rimEdge, spokes[(i+1)%n]},
			Plane:      face.Plane,
			Annotation: face.Annotation,
		})
	}

	return centroidID, nil
}
