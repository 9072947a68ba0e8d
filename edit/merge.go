package edit

import (
	"github.com/TrenchBroom/TrenchBroom-sub038/geo"
	"github.com/TrenchBroom/TrenchBroom-sub038/geoerr"
	"github.com/TrenchBroom/TrenchBroom-sub038/mesh"
)

// mergeCoplanarFaces repeatedly merges any two candidate faces that share an
// edge and lie on equal planes, the "merge sides" half of a move's cleanup. It
// returns the surviving subset of candidates (merging never creates a face
// that was not already in the candidate set, since only faces touched by
// the preceding triangulation are ever coplanar with each other post-move).
func mergeCoplanarFaces(b *mesh.Brush, candidates []mesh.FaceId) []mesh.FaceId {
	alive := make(map[mesh.FaceId]bool, len(candidates))
	for _, f := range candidates {
		if b.FaceAlive(f) {
			alive[f] = true
		}
	}

	for {
		merged := false
		for f := range alive {
			if !b.FaceAlive(f) {
				delete(alive, f)
				continue
			}
			if mergeOneCoplanarEdge(b, f, alive) {
				merged = true
				break
			}
		}
		if !merged {
			break
		}
	}

	out := make([]mesh.FaceId, 0, len(alive))
	for f := range alive {
		out = append(out, f)
	}
	return out
}

func mergeOneCoplanarEdge(b *mesh.Brush, f mesh.FaceId, alive map[mesh.FaceId]bool) bool {
	face := b.Face(f)
	for _, e := range face.Edges {
		edge := b.Edge(e)
		other := edge.OtherFace(f)
		if !mergeAcrossEdge(b, e) {
			continue
		}
		if b.FaceAlive(f) {
			delete(alive, other)
		} else {
			delete(alive, f)
			alive[other] = true
		}
		return true
	}
	return false
}

// mergeAcrossEdge merges the two faces incident to e into one, if and only
// if they lie on equal planes. On success it keeps e.Left's handle, splices
// e.Right's other vertices/edges into it in place of e, and removes e.Right
// and e. Reports whether a merge happened.
func mergeAcrossEdge(b *mesh.Brush, e mesh.EdgeId) bool {
	if !b.EdgeAlive(e) {
		return false
	}
	edge := b.Edge(e)
	if edge.Left == mesh.InvalidFace || edge.Right == mesh.InvalidFace || edge.Left == edge.Right {
		return false
	}
	if !b.FaceAlive(edge.Left) || !b.FaceAlive(edge.Right) {
		return false
	}
	fLid, fRid := edge.Left, edge.Right
	fL, fR := b.Face(fLid), b.Face(fRid)
	if !fL.Plane.Equals(fR.Plane) {
		return false
	}

	iL := fL.IndexOfEdge(e)
	iR := fR.IndexOfEdge(e)
	nL, nR := len(fL.Vertices), len(fR.Vertices)
	if iL < 0 || iR < 0 {
		return false
	}

	newVerts := make([]mesh.VertexId, 0, nR-2)
	for step := 1; step < nR-1; step++ {
		idx := (iR + 1 + step) % nR
		newVerts = append(newVerts, fR.Vertices[idx])
	}
	newEdges := make([]mesh.EdgeId, 0, nR-1)
	for step := 0; step < nR-1; step++ {
		idx := (iR + 1 + step) % nR
		newEdges = append(newEdges, fR.Edges[idx])
	}

	for _, eid := range newEdges {
		e2 := b.Edge(eid)
		if e2.Left == fRid {
			e2.Left = fLid
		}
		if e2.Right == fRid {
			e2.Right = fLid
		}
		b.SetEdge(eid, e2)
	}

	b.ReplaceFaceSpan(fLid, iL, (iL+1)%nL, newVerts, newEdges)
	b.RemoveFace(fRid)
	b.RemoveEdge(e)
	return true
}

// findCoincidentVertex returns a live vertex other than v whose position
// coincides with v's current position, if any.
func findCoincidentVertex(b *mesh.Brush, v mesh.VertexId) (mesh.VertexId, bool) {
	pos := b.Vertex(v).Position
	for _, other := range b.Vertices() {
		if other == v {
			continue
		}
		if b.Vertex(other).Position.Equals(pos) {
			return other, true
		}
	}
	return mesh.InvalidVertex, false
}

// mergeVertices folds drop into keep, used when a vertex move lands keep
// exactly on drop's position. It handles the two shapes this can take:
// drop and keep already joined by an edge (the edge collapses to zero
// length, each incident face either shrinks by one vertex or — if it was a
// triangle — disappears onto its far neighbour), or drop and keep
// unrelated (every reference to drop is simply renamed to keep).
func mergeVertices(b *mesh.Brush, keep, drop mesh.VertexId) error {
	if keep == drop {
		return nil
	}

	var collapsing mesh.EdgeId = mesh.InvalidEdge
	for _, eid := range b.Edges() {
		e := b.Edge(eid)
		if (e.A == keep && e.B == drop) || (e.A == drop && e.B == keep) {
			collapsing = eid
			break
		}
	}

	if collapsing == mesh.InvalidEdge {
		return mergeUnconnectedVertices(b, keep, drop)
	}
	return mergeAdjacentVertices(b, keep, drop, collapsing)
}

func mergeUnconnectedVertices(b *mesh.Brush, keep, drop mesh.VertexId) error {
	for _, fid := range b.Faces() {
		face := b.Face(fid)
		seen := false
		for _, vid := range face.Vertices {
			if vid == keep || vid == drop {
				if seen {
					return geoerr.New("edit.mergeVertices", geoerr.DegenerateResult)
				}
				seen = true
			}
		}
	}

	for _, eid := range b.Edges() {
		e := b.Edge(eid)
		changed := false
		if e.A == drop {
			e.A = keep
			changed = true
		}
		if e.B == drop {
			e.B = keep
			changed = true
		}
		if changed {
			b.SetEdge(eid, e)
		}
	}
	for _, fid := range b.Faces() {
		face := b.Face(fid)
		changed := false
		for i, vid := range face.Vertices {
			if vid == drop {
				face.Vertices[i] = keep
				changed = true
			}
		}
		if changed {
			b.SetFace(fid, face)
		}
	}

	b.RemoveVertex(drop)
	return nil
}

func mergeAdjacentVertices(b *mesh.Brush, keep, drop mesh.VertexId, collapsing mesh.EdgeId) error {
	edge := b.Edge(collapsing)
	sides := []mesh.FaceId{edge.Left, edge.Right}

	// A triangle on either side of the collapsing edge disappears entirely,
	// fusing its other two edges across its far neighbour. Refuse the pinch
	// configuration where that neighbour is itself the other collapsing
	// face: the solid would flatten to zero thickness there.
	for _, fid := range sides {
		face := b.Face(fid)
		if len(face.Vertices) != 3 {
			continue
		}
		i := face.IndexOfEdge(collapsing)
		if i < 0 {
			return geoerr.New("edit.mergeVertices", geoerr.DegenerateResult)
		}
		dropEdge := face.Edges[(i+2)%3]
		neighbour := b.Edge(dropEdge).OtherFace(fid)
		if neighbour == edge.Left || neighbour == edge.Right {
			return geoerr.New("edit.mergeVertices", geoerr.DegenerateResult)
		}
	}

	// Rename drop to keep everywhere except on the collapsing edge itself
	// and in the two side faces' cycles, which are rebuilt below.
	for _, eid := range b.Edges() {
		if eid == collapsing {
			continue
		}
		e := b.Edge(eid)
		changed := false
		if e.A == drop {
			e.A = keep
			changed = true
		}
		if e.B == drop {
			e.B = keep
			changed = true
		}
		if changed {
			b.SetEdge(eid, e)
		}
	}
	for _, fid := range b.Faces() {
		if fid == edge.Left || fid == edge.Right {
			continue
		}
		face := b.Face(fid)
		changed := false
		for i, vid := range face.Vertices {
			if vid == drop {
				face.Vertices[i] = keep
				changed = true
			}
		}
		if changed {
			b.SetFace(fid, face)
		}
	}

	for _, fid := range sides {
		face := b.Face(fid)
		if len(face.Vertices) == 3 {
			b.DeleteDegenerateTriangle(fid, collapsing)
			continue
		}
		n := len(face.Vertices)
		i := face.IndexOfEdge(collapsing)
		// Positions i and i+1 hold keep and drop in whichever order this
		// face's cycle visits them; both are replaced by a single vertex,
		// bridged by the two flanking edges (already retargeted above).
		before := (i - 1 + n) % n
		after := (i + 2) % n
		entering := face.Edges[before]
		leaving := face.Edges[(i+1)%n]
		b.ReplaceFaceSpan(fid, before, after, []mesh.VertexId{keep}, []mesh.EdgeId{entering, leaving})
	}

	if b.EdgeAlive(collapsing) {
		b.RemoveEdge(collapsing)
	}
	b.RemoveVertex(drop)
	return nil
}

// fixConcaveCreases repairs the triangulated neighbourhood a vertex move
// leaves behind: where two triangles meet at a reflex crease (one
// triangle's far vertex lies outside the other's plane), the shared
// diagonal is flipped to the quad's other diagonal. Reports whether any
// flip happened so the caller can re-run the coplanar merge — a flip can
// land two triangles on one plane.
func fixConcaveCreases(b *mesh.Brush) bool {
	flipped := false
	for pass := 0; pass < len(b.Edges()); pass++ {
		again := false
		for _, eid := range b.Edges() {
			if flipDiagonal(b, eid) {
				again = true
				flipped = true
			}
		}
		if !again {
			break
		}
	}
	return flipped
}

// flipDiagonal flips e, the diagonal between two triangles, if and only if
// the crease along it is reflex and the quad's other diagonal yields two
// convex, non-degenerate triangles. Reports whether it flipped.
func flipDiagonal(b *mesh.Brush, eid mesh.EdgeId) bool {
	if !b.EdgeAlive(eid) {
		return false
	}
	e := b.Edge(eid)
	if !b.FaceAlive(e.Left) || !b.FaceAlive(e.Right) {
		return false
	}
	fR, fL := b.Face(e.Right), b.Face(e.Left)
	if len(fR.Vertices) != 3 || len(fL.Vertices) != 3 {
		return false
	}

	var c, d mesh.VertexId = mesh.InvalidVertex, mesh.InvalidVertex
	for _, vid := range fR.Vertices {
		if vid != e.A && vid != e.B {
			c = vid
		}
	}
	for _, vid := range fL.Vertices {
		if vid != e.A && vid != e.B {
			d = vid
		}
	}
	if c == mesh.InvalidVertex || d == mesh.InvalidVertex || c == d {
		return false
	}

	p := func(v mesh.VertexId) geo.Vector3 { return b.Vertex(v).Position }
	if fR.Plane.SignedDistance(p(d)) <= geo.PositionEpsilon {
		return false // crease is already convex
	}

	// The flipped triangles are (a d c) and (b c d), covering the same
	// quad a->d->b->c along its other diagonal.
	a, bb := e.A, e.B
	plane1, err1 := geo.PlaneFromPoints(p(a), p(d), p(c))
	plane2, err2 := geo.PlaneFromPoints(p(bb), p(c), p(d))
	if err1 != nil || err2 != nil {
		return false
	}
	if plane1.SignedDistance(p(bb)) > geo.PositionEpsilon ||
		plane2.SignedDistance(p(a)) > geo.PositionEpsilon {
		return false
	}

	b.RotateCycle(e.Right, fR.IndexOfEdge(eid))
	b.RotateCycle(e.Left, fL.IndexOfEdge(eid))
	fR, fL = b.Face(e.Right), b.Face(e.Left)
	// fR now reads (a b c) with eid first, fL reads (b a d).
	eBC, eCA := fR.Edges[1], fR.Edges[2]
	eAD, eDB := fL.Edges[1], fL.Edges[2]

	f1, f2 := e.Right, e.Left
	diag := b.AddEdge(d, c, f2, f1)

	retarget := func(edgeID mesh.EdgeId, from, to mesh.FaceId) {
		rec := b.Edge(edgeID)
		if rec.Left == from {
			rec.Left = to
		} else if rec.Right == from {
			rec.Right = to
		}
		b.SetEdge(edgeID, rec)
	}
	retarget(eAD, f2, f1)
	retarget(eBC, f1, f2)

	b.SetFace(f1, mesh.Face{
		Vertices:   []mesh.VertexId{a, d, c},
		Edges:      []mesh.EdgeId{eAD, diag, eCA},
		Plane:      plane1,
		Annotation: fR.Annotation,
	})
	b.SetFace(f2, mesh.Face{
		Vertices:   []mesh.VertexId{bb, c, d},
		Edges:      []mesh.EdgeId{eBC, diag, eDB},
		Plane:      plane2,
		Annotation: fL.Annotation,
	})
	b.RemoveEdge(eid)
	return true
}

// mergeCollinearEdges removes every vertex left with only two incident
// edges after the face merges above — the "merge edges" half of a move's
// cleanup: such a vertex lies on the straight line between its two
// neighbours and its two edges fuse into one. except is spared: the vertex
// currently being dragged must survive even when momentarily collinear.
func mergeCollinearEdges(b *mesh.Brush, except mesh.VertexId) {
	for _, vid := range b.Vertices() {
		if vid == except {
			continue
		}
		var incident []mesh.EdgeId
		for _, eid := range b.Edges() {
			e := b.Edge(eid)
			if e.A == vid || e.B == vid {
				incident = append(incident, eid)
			}
		}
		if len(incident) != 2 {
			continue
		}
		e1, e2 := incident[0], incident[1]
		rec1, rec2 := b.Edge(e1), b.Edge(e2)
		if len(b.Face(rec1.Left).Vertices) <= 3 || len(b.Face(rec1.Right).Vertices) <= 3 {
			continue
		}

		far := rec2.A
		if far == vid {
			far = rec2.B
		}
		if rec1.A == vid {
			rec1.A = far
		} else {
			rec1.B = far
		}
		b.SetEdge(e1, rec1)

		for _, fid := range []mesh.FaceId{rec1.Left, rec1.Right} {
			face := b.Face(fid)
			i := face.IndexOfVertex(vid)
			if i < 0 {
				continue
			}
			n := len(face.Vertices)
			b.ReplaceFaceSpan(fid, (i-1+n)%n, (i+1)%n, nil, []mesh.EdgeId{e1})
		}
		b.RemoveEdge(e2)
		b.RemoveVertex(vid)
	}
}
