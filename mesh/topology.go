package mesh

// FlipEdge swaps e's Left and Right faces in place. It is a primitive for
// callers that already know both incident faces' vertex/edge cycles agree
// with the new orientation; FlipFace does its own swapping and does not
// call it.
func (b *Brush) FlipEdge(id EdgeId) {
	e := b.edges[id]
	e.Left, e.Right = e.Right, e.Left
	b.edges[id] = e
}

// FlipFace reverses f's vertex and edge cycle (undoing its winding) and,
// for every edge on the cycle, swaps which side is Left and which is Right
// so the edges stay consistent with the new direction f walks them in.
// Used to restore outward-pointing normals after a mirror/flip transform.
func (b *Brush) FlipFace(id FaceId) {
	face := b.faces[id]
	n := len(face.Vertices)
	if n == 0 {
		return
	}
	newV := make([]VertexId, n)
	newE := make([]EdgeId, n)
	for i := 0; i < n; i++ {
		newV[i] = face.Vertices[n-1-i]
	}
	for i := 0; i < n; i++ {
		newE[i] = face.Edges[((n-2-i)%n+n)%n]
	}
	face.Vertices = newV
	face.Edges = newE
	face.Plane = face.Plane.Flip()
	b.faces[id] = face

	for _, eid := range newE {
		e := b.edges[eid]
		if e.Left == id || e.Right == id {
			e.Left, e.Right = e.Right, e.Left
			b.edges[eid] = e
		}
	}
}

// RotateCycle shifts f's Vertices and Edges arrays by k (modulo their
// length) so that the entry currently at index k lands at index 0. A pure
// O(n) re-indexing; it does not touch any edge's Left/Right.
func (b *Brush) RotateCycle(id FaceId, k int) {
	face := b.faces[id]
	n := len(face.Vertices)
	if n == 0 {
		return
	}
	k = ((k % n) + n) % n
	if k == 0 {
		return
	}
	face.Vertices = rotateSlice(face.Vertices, k)
	face.Edges = rotateSlice(face.Edges, k)
	b.faces[id] = face
}

func rotateSlice[T any](s []T, k int) []T {
	out := make([]T, len(s))
	for i := range s {
		out[i] = s[(i+k)%len(s)]
	}
	return out
}

// IndexOfVertex returns the index of v in f's vertex cycle, or -1.
func (f Face) IndexOfVertex(v VertexId) int {
	for i, id := range f.Vertices {
		if id == v {
			return i
		}
	}
	return -1
}

// IndexOfEdge returns the index of e in f's edge cycle, or -1.
func (f Face) IndexOfEdge(e EdgeId) int {
	for i, id := range f.Edges {
		if id == e {
			return i
		}
	}
	return -1
}

// ReplaceFaceSpan replaces the cyclic run of f's vertices strictly between
// index i1 and index i2, together with the edges i1 through i2-1 that
// connect them, with newVerts/newEdges, wrapping around the end of the
// cycle if i2 < i1. This is the "replace edge range" splicing primitive,
// used by the half-space clipper to splice a seam edge into a partially
// cut face and by edge-merge logic to collapse a run of collinear edges
// into one.
//
// newVerts/newEdges describe only the replacement segment; f.Vertices[i1]
// and f.Vertices[i2] (the two boundary vertices that are kept) are not
// repeated in newVerts.
func (b *Brush) ReplaceFaceSpan(id FaceId, i1, i2 int, newVerts []VertexId, newEdges []EdgeId) {
	face := b.faces[id]
	n := len(face.Vertices)

	var keptVerts []VertexId
	var keptEdges []EdgeId

	// Walk from i2 forward (wrapping) back to i1 inclusive, i.e. the part
	// of the cycle NOT being replaced.
	for i := i2; ; i = (i + 1) % n {
		keptVerts = append(keptVerts, face.Vertices[i])
		if i == i1 {
			break
		}
		keptEdges = append(keptEdges, face.Edges[i])
	}
	// keptEdges currently holds edges[i2..i1-1]; the edge leaving i1
	// (face.Edges[i1]) belongs to the replaced span and is dropped, and
	// the edge arriving at i2 (face.Edges[i2-1]) also belongs to the
	// replaced span.

	newFaceVerts := append(append([]VertexId{}, keptVerts...), newVerts...)
	newFaceEdges := append(append([]EdgeId{}, keptEdges...), newEdges...)

	face.Vertices = newFaceVerts
	face.Edges = newFaceEdges
	b.faces[id] = face
}

// DeleteDegenerateTriangle removes the triangular face side together with
// its edge e, which has collapsed to zero length (the caller has already
// renamed e's two endpoints to a single vertex everywhere else). The
// triangle's remaining two edges now connect the same pair of vertices;
// one of them survives and is handed to the face on the far side of the
// other, collapsing side onto that neighbour. This is the "delete
// degenerate triangle" primitive, used when a vertex move drags two
// adjacent faces into each other.
//
// side must be a triangle and e one of its edges; the neighbour absorbing
// the surviving edge must not itself be collapsing (the caller checks).
// After the call side, e and one of side's other edges no longer exist.
func (b *Brush) DeleteDegenerateTriangle(side FaceId, e EdgeId) {
	face := b.faces[side]
	if len(face.Edges) != 3 {
		panic("mesh: DeleteDegenerateTriangle requires a triangular face")
	}
	i := face.IndexOfEdge(e)
	if i < 0 {
		panic("mesh: edge not incident to face")
	}
	b.RotateCycle(side, i)
	face = b.faces[side]

	keepEdge := face.Edges[1]
	dropEdge := face.Edges[2]
	neighbour := b.edges[dropEdge].OtherFace(side)

	// The surviving edge takes side's slot as seen by the neighbour: side
	// walked keepEdge in the direction the neighbour needs, since both
	// oppose the third face across keepEdge.
	ke := b.edges[keepEdge]
	if ke.Left == side {
		ke.Left = neighbour
	} else {
		ke.Right = neighbour
	}
	b.edges[keepEdge] = ke

	nf := b.faces[neighbour]
	di := nf.IndexOfEdge(dropEdge)
	if di < 0 {
		panic("mesh: collapsing triangle's neighbour does not share its edge")
	}
	nf.Edges[di] = keepEdge
	b.faces[neighbour] = nf

	b.RemoveFace(side)
	b.RemoveEdge(dropEdge)
	b.RemoveEdge(e)
}

// IncidentEdges walks the ring of edges around vertex v in clockwise order
// (as seen from outside the solid), by repeatedly stepping to the opposite
// side of the previous edge. Requires the mesh to be closed; panics
// otherwise since the walk cannot terminate on an open mesh.
func (b *Brush) IncidentEdges(v VertexId) []EdgeId {
	faces := b.incidentFacesAndEdges(v)
	out := make([]EdgeId, len(faces))
	for i, fe := range faces {
		out[i] = fe.edge
	}
	return out
}

// IncidentFaces walks the ring of faces around vertex v in the same
// clockwise order as IncidentEdges.
func (b *Brush) IncidentFaces(v VertexId) []FaceId {
	faces := b.incidentFacesAndEdges(v)
	out := make([]FaceId, len(faces))
	for i, fe := range faces {
		out[i] = fe.face
	}
	return out
}

type faceEdge struct {
	face FaceId
	edge EdgeId
}

func (b *Brush) incidentFacesAndEdges(v VertexId) []faceEdge {
	var start EdgeId = InvalidEdge
	for _, eid := range b.Edges() {
		e := b.edges[eid]
		if e.A == v || e.B == v {
			start = eid
			break
		}
	}
	if start == InvalidEdge {
		panic("mesh: vertex has no incident edges")
	}

	if !b.Closed() {
		panic("mesh: incident-vertex walk requires a closed mesh")
	}

	edge := start
	e := b.edges[edge]
	var face FaceId
	if e.A == v {
		face = e.Right
	} else {
		face = e.Left
	}

	var result []faceEdge
	for {
		result = append(result, faceEdge{face: face, edge: edge})
		fc := b.faces[face]
		i := fc.IndexOfEdge(edge)
		prev := (i - 1 + len(fc.Edges)) % len(fc.Edges)
		edge = fc.Edges[prev]
		e = b.edges[edge]
		if e.A == v {
			face = e.Right
		} else {
			face = e.Left
		}
		if len(result) > 0 && face == result[0].face {
			break
		}
		if len(result) > b.NumFaces()+1 {
			panic("mesh: incident-vertex walk did not close")
		}
	}
	return result
}

// SettleVertex rounds v's position componentwise to the nearest integer
// wherever it is within PositionEpsilon of one, cleaning up floating point
// noise left behind by plane-intersection arithmetic. This runs after every
// clip and every move commit and is distinct from the caller-invoked grid
// snap.
func (b *Brush) SettleVertex(v VertexId) {
	b.vertices[v].Position = b.vertices[v].Position.Settle()
}

// SettleAll settles every live vertex.
func (b *Brush) SettleAll() {
	for i := range b.vertices {
		if b.vertices[i].alive {
			b.vertices[i].Position = b.vertices[i].Position.Settle()
		}
	}
}
