// Package edit implements direct mesh editing: moving a vertex, edge or
// face by a delta with full convexity checking, and the rigid whole-brush
// transforms (translate, rotate, flip). Every mutating entry point follows
// the clone-attempt-commit pattern: work happens on a throwaway mesh.Brush
// clone, and only replaces the caller's brush once the result has passed
// mesh.Brush.Validate.
package edit

import (
	"github.com/TrenchBroom/TrenchBroom-sub038/geo"
	"github.com/TrenchBroom/TrenchBroom-sub038/mesh"
)

// fanTriangulate splits fid, a face with more than 3 vertices, into a fan of
// triangles centered on apex (one of fid's own vertices). It reuses fid's
// handle for the first triangle and allocates n-3 new faces and n-3 new
// diagonal edges for the rest, preserving every original edge's handle. If
// fid is already a triangle this is a no-op and returns []FaceId{fid}.
func fanTriangulate(b *mesh.Brush, fid mesh.FaceId, apex mesh.VertexId) []mesh.FaceId {
	face := b.Face(fid)
	n := len(face.Vertices)
	if n <= 3 {
		return []mesh.FaceId{fid}
	}

	k := face.IndexOfVertex(apex)
	if k < 0 {
		panic("edit: apex is not a vertex of the face being triangulated")
	}
	b.RotateCycle(fid, k)
	face = b.Face(fid)

	triCount := n - 2
	result := make([]mesh.FaceId, triCount)
	result[0] = fid
	for t := 1; t < triCount; t++ {
		result[t] = b.AddFace(mesh.Face{Plane: face.Plane, Annotation: face.Annotation})
	}

	retarget := func(eid mesh.EdgeId, triID mesh.FaceId) {
		e := b.Edge(eid)
		if e.Left == fid {
			e.Left = triID
		}
		if e.Right == fid {
			e.Right = triID
		}
		b.SetEdge(eid, e)
	}

	diag := make(map[int]mesh.EdgeId, triCount)

	for t := 0; t < triCount; t++ {
		i1, i2 := t+1, t+2
		v0 := face.Vertices[0]
		v1 := face.Vertices[i1]
		v2 := face.Vertices[i2]
		triID := result[t]

		var eA mesh.EdgeId
		if t == 0 {
			eA = face.Edges[0]
			retarget(eA, triID)
		} else {
			eA = diag[i1]
		}

		eB := face.Edges[i1]
		retarget(eB, triID)

		var eC mesh.EdgeId
		if t == triCount-1 {
			eC = face.Edges[n-1]
			retarget(eC, triID)
		} else {
			eC = b.AddEdge(v0, v2, triID, result[t+1])
			diag[i2] = eC
		}

		b.SetFace(triID, mesh.Face{
			Vertices:   []mesh.VertexId{v0, v1, v2},
			Edges:      []mesh.EdgeId{eA, eB, eC},
			Plane:      face.Plane,
			Annotation: face.Annotation,
		})
	}

	return result
}

// earSplit cuts the single triangle (prev, v, next) off fid along the
// diagonal between v's two cycle neighbours. The remainder polygon keeps
// fid's handle, plane and annotation and is left otherwise untouched; the
// ear is a new face carrying a copy of the annotation. If fid is already a
// triangle this is a no-op and returns []FaceId{fid}.
func earSplit(b *mesh.Brush, fid mesh.FaceId, v mesh.VertexId) []mesh.FaceId {
	face := b.Face(fid)
	n := len(face.Vertices)
	if n <= 3 {
		return []mesh.FaceId{fid}
	}
	i := face.IndexOfVertex(v)
	if i < 0 {
		panic("edit: vertex is not on the face being split")
	}
	prevI, nextI := (i-1+n)%n, (i+1)%n
	prev, next := face.Vertices[prevI], face.Vertices[nextI]
	eIn := face.Edges[prevI]
	eOut := face.Edges[i]

	ear := b.AddFace(mesh.Face{Plane: face.Plane, Annotation: face.Annotation})
	// The remainder walks the new diagonal prev->next; the ear walks it
	// backward.
	diag := b.AddEdge(prev, next, ear, fid)

	for _, eid := range []mesh.EdgeId{eIn, eOut} {
		e := b.Edge(eid)
		if e.Left == fid {
			e.Left = ear
		} else {
			e.Right = ear
		}
		b.SetEdge(eid, e)
	}
	b.SetFace(ear, mesh.Face{
		Vertices:   []mesh.VertexId{prev, v, next},
		Edges:      []mesh.EdgeId{eIn, eOut, diag},
		Plane:      face.Plane,
		Annotation: face.Annotation,
	})
	b.ReplaceFaceSpan(fid, prevI, nextI, nil, []mesh.EdgeId{diag})
	return []mesh.FaceId{fid, ear}
}

// splitFacesAroundVertex prepares every n-gon incident to v for the drag
// and returns every face the pass touched or created. A face the drag
// stretches (delta has a component along its outward normal) or slides
// within is fan-triangulated around v: every point of it becomes visible
// from v as v rises off the plane, so every piece must hinge on v and tilt
// together. A face the drag folds (v retreating from its plane) only needs
// v cut free: a single earSplit leaves the remainder polygon planar on its
// original plane while the ear dips inward with v — fanning here would
// fragment the remainder permanently, since its pieces end up on the one
// plane v has left and hinge on the wrong vertex.
// mergeCoplanarFaces reassembles whichever pieces are still coplanar once
// v has moved.
func splitFacesAroundVertex(b *mesh.Brush, v mesh.VertexId, delta geo.Vector3) []mesh.FaceId {
	var out []mesh.FaceId
	for _, fid := range b.IncidentFaces(v) {
		face := b.Face(fid)
		if len(face.Vertices) > 3 && face.Plane.Normal.Dot(delta) < -geo.PositionEpsilon {
			out = append(out, earSplit(b, fid, v)...)
		} else {
			out = append(out, fanTriangulate(b, fid, v)...)
		}
	}
	return out
}
