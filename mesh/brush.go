package mesh

import "github.com/TrenchBroom/TrenchBroom-sub038/geo"

// Brush owns three arenas — vertices, edges, faces — and the cached
// bounding box of its vertex positions. It is the polyhedral mesh every
// package above mesh (clip, build, edit, csg, snap) operates on through the
// accessors and topology primitives this file and topology.go expose.
type Brush struct {
	vertices []Vertex
	edges    []Edge
	faces    []Face
	bounds   geo.Box3
}

// New returns an empty brush (no vertices, edges or faces). Callers
// normally reach a populated Brush through build.Cube or
// build.FromHalfSpaces rather than this constructor directly.
func New() *Brush {
	return &Brush{bounds: geo.Empty()}
}

// AddVertex appends a new live vertex at pos and returns its handle.
func (b *Brush) AddVertex(pos geo.Vector3) VertexId {
	b.vertices = append(b.vertices, Vertex{Position: pos, alive: true})
	return VertexId(len(b.vertices) - 1)
}

// AddEdge appends a new live edge and returns its handle.
func (b *Brush) AddEdge(a, bb VertexId, left, right FaceId) EdgeId {
	b.edges = append(b.edges, Edge{A: a, B: bb, Left: left, Right: right, alive: true})
	return EdgeId(len(b.edges) - 1)
}

// AddFace appends a new live face and returns its handle.
func (b *Brush) AddFace(f Face) FaceId {
	f.alive = true
	b.faces = append(b.faces, f)
	return FaceId(len(b.faces) - 1)
}

// RemoveVertex, RemoveEdge and RemoveFace tombstone the given handle. The
// slot is not reused until the next Compact.
func (b *Brush) RemoveVertex(id VertexId) { b.vertices[id].alive = false }
func (b *Brush) RemoveEdge(id EdgeId)     { b.edges[id].alive = false }
func (b *Brush) RemoveFace(id FaceId)     { b.faces[id].alive = false }

// VertexAlive, EdgeAlive and FaceAlive report whether id currently refers
// to a live entity.
func (b *Brush) VertexAlive(id VertexId) bool {
	return id >= 0 && int(id) < len(b.vertices) && b.vertices[id].alive
}
func (b *Brush) EdgeAlive(id EdgeId) bool {
	return id >= 0 && int(id) < len(b.edges) && b.edges[id].alive
}
func (b *Brush) FaceAlive(id FaceId) bool {
	return id >= 0 && int(id) < len(b.faces) && b.faces[id].alive
}

// Vertex, Edge and Face dereference a handle. Callers must only pass
// handles known to be alive (VertexAlive etc., or handles freshly returned
// by this brush's own methods).
func (b *Brush) Vertex(id VertexId) Vertex { return b.vertices[id] }
func (b *Brush) Edge(id EdgeId) Edge       { return b.edges[id] }
func (b *Brush) Face(id FaceId) Face       { return b.faces[id] }

// SetVertexPosition updates a vertex's position in place.
func (b *Brush) SetVertexPosition(id VertexId, pos geo.Vector3) {
	b.vertices[id].Position = pos
}

// SetFace replaces the stored Face at id wholesale (used by topology
// operations that rebuild a face's cycle or plane).
func (b *Brush) SetFace(id FaceId, f Face) {
	f.alive = true
	b.faces[id] = f
}

// SetEdge replaces the stored Edge at id wholesale.
func (b *Brush) SetEdge(id EdgeId, e Edge) {
	e.alive = true
	b.edges[id] = e
}

// Vertices, Edges and Faces return the handles of every live entity, in
// arena order. The order is stable across calls as long as nothing has
// been added, removed or compacted in between.
func (b *Brush) Vertices() []VertexId {
	out := make([]VertexId, 0, len(b.vertices))
	for i, v := range b.vertices {
		if v.alive {
			out = append(out, VertexId(i))
		}
	}
	return out
}

func (b *Brush) Edges() []EdgeId {
	out := make([]EdgeId, 0, len(b.edges))
	for i, e := range b.edges {
		if e.alive {
			out = append(out, EdgeId(i))
		}
	}
	return out
}

func (b *Brush) Faces() []FaceId {
	out := make([]FaceId, 0, len(b.faces))
	for i, f := range b.faces {
		if f.alive {
			out = append(out, FaceId(i))
		}
	}
	return out
}

// NumVertices, NumEdges and NumFaces count live entities.
func (b *Brush) NumVertices() int { return len(b.Vertices()) }
func (b *Brush) NumEdges() int    { return len(b.Edges()) }
func (b *Brush) NumFaces() int    { return len(b.Faces()) }

// Bounds returns the cached axis-aligned bounding box.
func (b *Brush) Bounds() geo.Box3 { return b.bounds }

// RecomputeBounds rebuilds the cached bounding box from every live
// vertex's current position. Every operation that moves a vertex must call
// this before returning.
func (b *Brush) RecomputeBounds() {
	box := geo.Empty()
	for _, v := range b.vertices {
		if v.alive {
			box = box.ExpandByPoint(v.Position)
		}
	}
	b.bounds = box
}

// Assign replaces b's entire contents with other's. Every package above
// mesh uses this to implement the clone-attempt-commit pattern: clone b,
// attempt a mutation on the clone, and Assign the clone back
// into b only once the attempt has validated successfully.
func (b *Brush) Assign(other *Brush) {
	*b = *other
}

// Closed reports whether the closedness invariant holds: every live edge has
// exactly two distinct incident faces.
func (b *Brush) Closed() bool {
	for _, e := range b.edges {
		if !e.alive {
			continue
		}
		if e.Left == e.Right || e.Left == InvalidFace || e.Right == InvalidFace {
			return false
		}
		if !b.FaceAlive(e.Left) || !b.FaceAlive(e.Right) {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of b. Handles are preserved exactly (including
// tombstoned slots) so a cloned brush's handles remain valid against the
// original and vice versa, which is what lets cloning commute with every
// mutation.
func (b *Brush) Clone() *Brush {
	c := &Brush{
		vertices: append([]Vertex(nil), b.vertices...),
		edges:    append([]Edge(nil), b.edges...),
		faces:    make([]Face, len(b.faces)),
		bounds:   b.bounds,
	}
	for i, f := range b.faces {
		c.faces[i] = f.Clone()
	}
	return c
}

// Compact drops every tombstoned entity and renumbers the remaining ones
// densely from 0, fixing up every cross-reference (edge endpoints and
// incident faces, face vertex/edge cycles). It returns the three
// old-handle-to-new-handle maps, which a caller mid-algorithm (the
// clipper's garbage-collection step) can use to translate any handles it
// is still holding. Most callers simply call Compact and then re-query
// Vertices/Edges/Faces for fresh handles.
func (b *Brush) Compact() (vmap map[VertexId]VertexId, emap map[EdgeId]EdgeId, fmap map[FaceId]FaceId) {
	vmap = make(map[VertexId]VertexId)
	emap = make(map[EdgeId]EdgeId)
	fmap = make(map[FaceId]FaceId)

	newVertices := make([]Vertex, 0, len(b.vertices))
	for i, v := range b.vertices {
		if !v.alive {
			continue
		}
		vmap[VertexId(i)] = VertexId(len(newVertices))
		newVertices = append(newVertices, v)
	}

	newEdges := make([]Edge, 0, len(b.edges))
	for i, e := range b.edges {
		if !e.alive {
			continue
		}
		emap[EdgeId(i)] = EdgeId(len(newEdges))
		newEdges = append(newEdges, e)
	}

	newFaces := make([]Face, 0, len(b.faces))
	for i, f := range b.faces {
		if !f.alive {
			continue
		}
		fmap[FaceId(i)] = FaceId(len(newFaces))
		newFaces = append(newFaces, f)
	}

	for i := range newEdges {
		newEdges[i].A = vmap[newEdges[i].A]
		newEdges[i].B = vmap[newEdges[i].B]
		newEdges[i].Left = fmap[newEdges[i].Left]
		newEdges[i].Right = fmap[newEdges[i].Right]
	}
	for i := range newFaces {
		for j, vid := range newFaces[i].Vertices {
			newFaces[i].Vertices[j] = vmap[vid]
		}
		for j, eid := range newFaces[i].Edges {
			newFaces[i].Edges[j] = emap[eid]
		}
	}

	b.vertices = newVertices
	b.edges = newEdges
	b.faces = newFaces
	return vmap, emap, fmap
}
