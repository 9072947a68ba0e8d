package mesh

// VertexMark, EdgeMark and FaceMark classify an entity's relationship to a
// cutting plane for the duration of a single clip pass. These are transient
// marks: they live in pass-local maps rather than on the entity itself, so
// a failed operation can never leave stale marks behind for the next one to
// trip over — Marks is exactly that pass-local store, reset (by simply
// being discarded) at the end of every clip attempt. The move and snap
// passes do not use marks.
type VertexMark int

const (
	VertexUnknown VertexMark = iota
	VertexKeep
	VertexDrop
	VertexUndecided
	VertexNew
)

type EdgeMark int

const (
	EdgeUnknown EdgeMark = iota
	EdgeKeep
	EdgeDrop
	EdgeSplit
	EdgeUndecided
	EdgeNew
)

type FaceMark int

const (
	FaceUnknown FaceMark = iota
	FaceKeep
	FaceDrop
	FaceSplit
	FaceNew
)

// Marks is a pass-local set of mark maps, empty when created and filled in
// as the pass marks handles. It is always built fresh (NewMarks) for a
// single clip pass and discarded afterward.
type Marks struct {
	vertex map[VertexId]VertexMark
	edge   map[EdgeId]EdgeMark
	face   map[FaceId]FaceMark
}

// NewMarks returns an empty mark set; unmentioned handles read back as the
// Unknown mark.
func NewMarks() *Marks {
	return &Marks{
		vertex: make(map[VertexId]VertexMark),
		edge:   make(map[EdgeId]EdgeMark),
		face:   make(map[FaceId]FaceMark),
	}
}

func (m *Marks) Vertex(id VertexId) VertexMark { return m.vertex[id] }
func (m *Marks) Edge(id EdgeId) EdgeMark       { return m.edge[id] }
func (m *Marks) Face(id FaceId) FaceMark       { return m.face[id] }

func (m *Marks) SetVertex(id VertexId, mark VertexMark) { m.vertex[id] = mark }
func (m *Marks) SetEdge(id EdgeId, mark EdgeMark)       { m.edge[id] = mark }
func (m *Marks) SetFace(id FaceId, mark FaceMark)       { m.face[id] = mark }
