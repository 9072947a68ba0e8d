// Package build constructs brushes from scratch: the canonical cube used
// by every other package's tests and the default starting shape for new
// geometry, and the general half-space constructor that derives an
// arbitrary convex brush from a set of bounding planes.
package build

import (
	"github.com/TrenchBroom/TrenchBroom-sub038/annotation"
	"github.com/TrenchBroom/TrenchBroom-sub038/clip"
	"github.com/TrenchBroom/TrenchBroom-sub038/geo"
	"github.com/TrenchBroom/TrenchBroom-sub038/geoerr"
	"github.com/TrenchBroom/TrenchBroom-sub038/internal/telemetry"
	"github.com/TrenchBroom/TrenchBroom-sub038/mesh"
)

// worldMargin grows the seed cube beyond the caller's declared world
// bounds before any half-space is applied, so a half-space plane that
// passes exactly through a corner of the nominal world bounds still
// leaves enough geometry to clip cleanly.
const worldMargin = 1.0

// Cube returns a new brush occupying exactly bounds: 8 vertices, 12 edges
// and 6 faces, each face's annotation defaulted via annotation.Default.
// The vertex/edge winding is fixed and is also what FromHalfSpaces starts
// from internally, so two brushes built to the same bounds are always
// handle-for-handle identical.
func Cube(bounds geo.Box3) *mesh.Brush {
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
		f[i] = b.AddFace(mesh.Face{Plane: fo.plane, Annotation: annotation.Default()})
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
		b.SetFace(id, mesh.Face{Vertices: verts[:], Edges: edges[:], Plane: plane, Annotation: annotation.Default()})
	}
	setFace(fNX, faceOrder[0].verts, [4]mesh.EdgeId{e1, e2, e3, e4}, faceOrder[0].plane)
	setFace(fPX, faceOrder[1].verts, [4]mesh.EdgeId{e5, e6, e7, e8}, faceOrder[1].plane)
	setFace(fNY, faceOrder[2].verts, [4]mesh.EdgeId{e4, e9, e5, e10}, faceOrder[2].plane)
	setFace(fPY, faceOrder[3].verts, [4]mesh.EdgeId{e11, e7, e12, e2}, faceOrder[3].plane)
	setFace(fNZ, faceOrder[4].verts, [4]mesh.EdgeId{e10, e8, e11, e1}, faceOrder[4].plane)
	setFace(fPZ, faceOrder[5].verts, [4]mesh.EdgeId{e3, e12, e6, e9}, faceOrder[5].plane)

	b.RecomputeBounds()
	return b
}

// FromHalfSpaces builds a brush as the intersection of the negative side
// of every plane in planes, each carrying the matching entry from anns
// (anns may be shorter than planes; missing entries default via
// annotation.Default). worldBounds must contain the intended result; the
// construction starts from a cube grown around worldBounds by worldMargin
// and clips it down with one plane at a time, in the order given.
//
// Returns geoerr with Kind Empty if the half-spaces have no common
// interior, and Kind InvalidInput if planes is empty.
func FromHalfSpaces(planes []geo.Plane, anns []annotation.FaceAnnotation, worldBounds geo.Box3) (*mesh.Brush, error) {
	if len(planes) == 0 {
		return nil, geoerr.New("build.FromHalfSpaces", geoerr.InvalidInput)
	}

	b := Cube(worldBounds.Grow(worldMargin))

	for i, p := range planes {
		ann := annotation.Default()
		if i < len(anns) {
			ann = anns[i]
		}
		result, _, _, err := clip.Clip(b, p, ann)
		if err != nil {
			return nil, geoerr.Wrap("build.FromHalfSpaces", geoerr.DegenerateResult, err)
		}
		if result == clip.Empty {
			telemetry.Default.Debug("build.FromHalfSpaces: half-space %d emptied the brush", i)
			return nil, geoerr.New("build.FromHalfSpaces", geoerr.Empty)
		}
	}

	telemetry.Default.Info("build.FromHalfSpaces: built brush from %d half-spaces", len(planes))
	return b, nil
}
