package mesh

import (
	"github.com/TrenchBroom/TrenchBroom-sub038/annotation"
	"github.com/TrenchBroom/TrenchBroom-sub038/geo"
)

// Vertex is a single position in the brush's arena.
type Vertex struct {
	Position geo.Vector3
	alive    bool
}

// Edge is an ordered pair of vertex handles together with the two
// incident face handles. Left and Right are never equal once the brush is
// valid (closedness): Right is the face that walks this edge
// A -> B in its own cycle, Left is the face that walks it B -> A — i.e.
// Left sees the edge from end to start. StartFor and EndFor below pick A
// or B depending on which side is asking.
type Edge struct {
	A, B        VertexId
	Left, Right FaceId
	alive       bool
}

// OtherFace returns the face opposite f across e. Panics if f is not
// incident to e — callers are expected to already know f is one of e's two
// faces.
func (e Edge) OtherFace(f FaceId) FaceId {
	switch f {
	case e.Left:
		return e.Right
	case e.Right:
		return e.Left
	default:
		panic("mesh: face is not incident to edge")
	}
}

// StartFor returns the vertex this edge starts from as seen by face f
// walking its own cycle forward (Right sees A->B, Left sees B->A).
func (e Edge) StartFor(f FaceId) VertexId {
	if f == e.Right {
		return e.A
	}
	return e.B
}

// EndFor returns the vertex this edge ends at as seen by face f.
func (e Edge) EndFor(f FaceId) VertexId {
	if f == e.Right {
		return e.B
	}
	return e.A
}

// Face is a convex polygon: a cyclic sequence of vertices (clockwise as
// seen from outside the solid) and the parallel cyclic sequence of edges
// connecting them, lying on Plane and carrying an opaque annotation.
type Face struct {
	Vertices   []VertexId
	Edges      []EdgeId
	Plane      geo.Plane
	Annotation annotation.FaceAnnotation
	alive      bool
}

// Clone returns a deep copy of f (its slices are copied, not shared).
func (f Face) Clone() Face {
	c := f
	c.Vertices = append([]VertexId(nil), f.Vertices...)
	c.Edges = append([]EdgeId(nil), f.Edges...)
	return c
}
