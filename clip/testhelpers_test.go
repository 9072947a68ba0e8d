package clip

import (
	"github.com/TrenchBroom/TrenchBroom-sub038/geo"
	"github.com/TrenchBroom/TrenchBroom-sub038/mesh"
)

// testCube builds the same canonical 8-vertex cube topology as
// mesh's own test helper and build.Cube, using only mesh's exported API, so
// these tests exercise Clip exactly the way build.FromHalfSpaces will.
func testCube(bounds geo.Box3) (*mesh.Brush, error) {
	b := mesh.New()
	corners := bounds.Corners()
	var v [8]mesh.VertexId
	for i, c := range corners {
		v[i] = b.AddVertex(c)
	}

	planes := bounds.Planes() // order: +X,-X,+Y,-Y,+Z,-Z
	faceOrder := []struct {
		plane geo.Plane
		verts [4]mesh.VertexId
	}{
		{planes[1], [4]mesh.VertexId{v[0], v[2], v[6], v[4]}}, // -X
		{planes[0], [4]mesh.VertexId{v[1], v[5], v[7], v[3]}}, // +X
		{planes[3], [4]mesh.VertexId{v[0], v[4], v[5], v[1]}}, // -Y
		{planes[2], [4]mesh.VertexId{v[2], v[3], v[7], v[6]}}, // +Y
		{planes[5], [4]mesh.VertexId{v[0], v[1], v[3], v[2]}}, // -Z
		{planes[4], [4]mesh.VertexId{v[4], v[6], v[7], v[5]}}, // +Z
	}
	var f [6]mesh.FaceId
	for i, fo := range faceOrder {
		f[i] = b.AddFace(mesh.Face{Plane: fo.plane})
	}
	fNX, fPX, fNY, fPY, fNZ, fPZ := f[0], f[1], f[2], f[3], f[4], f[5]

	e1 := b.AddEdge(v[0], v[2], fNZ, fNX)
	e2 := b.AddEdge(v[2], v[6], fPY, fNX)
	e3 := b.AddEdge(v[6], v[4], fPZ, fNX)
	e4 := b.AddEdge(v[4], v[0], fNY, fNX)
	e5 := b.AddEdge(v[1], v[5], fNY, fPX)
	e6 := b.AddEdge(v[5], v[7], fPZ, fPX)
	e7 := b.AddEdge(v[7], v[3], fPY, fPX)
	e8 := b.AddEdge(v[3], v[1], fNZ, fPX)
	e9 := b.AddEdge(v[4], v[5], fPZ, fNY)
	e10 := b.AddEdge(v[1], v[0], fNZ, fNY)
	e11 := b.AddEdge(v[2], v[3], fNZ, fPY)
	e12 := b.AddEdge(v[7], v[6], fPZ, fPY)

	setFace := func(id mesh.FaceId, verts [4]mesh.VertexId, edges [4]mesh.EdgeId, plane geo.Plane) {
		b.SetFace(id, mesh.Face{Vertices: verts[:], Edges: edges[:], Plane: plane})
	}
	setFace(fNX, faceOrder[0].verts, [4]mesh.EdgeId{e1, e2, e3, e4}, faceOrder[0].plane)
	setFace(fPX, faceOrder[1].verts, [4]mesh.EdgeId{e5, e6, e7, e8}, faceOrder[1].plane)
	setFace(fNY, faceOrder[2].verts, [4]mesh.EdgeId{e4, e9, e5, e10}, faceOrder[2].plane)
	setFace(fPY, faceOrder[3].verts, [4]mesh.EdgeId{e11, e7, e12, e2}, faceOrder[3].plane)
	setFace(fNZ, faceOrder[4].verts, [4]mesh.EdgeId{e10, e8, e11, e1}, faceOrder[4].plane)
	setFace(fPZ, faceOrder[5].verts, [4]mesh.EdgeId{e3, e12, e6, e9}, faceOrder[5].plane)

	b.RecomputeBounds()
	return b, b.Validate()
}
