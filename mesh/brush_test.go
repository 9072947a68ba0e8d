package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TrenchBroom/TrenchBroom-sub038/geo"
)

func cubeBounds() geo.Box3 {
	return geo.CubeAround(32)
}

func TestCube_Topology(t *testing.T) {
	b := newCubeForTest(cubeBounds())

	assert.Equal(t, 8, b.NumVertices())
	assert.Equal(t, 12, b.NumEdges())
	assert.Equal(t, 6, b.NumFaces())
	assert.True(t, b.Bounds().Equals(cubeBounds()))
}

func TestCube_Valid(t *testing.T) {
	b := newCubeForTest(cubeBounds())
	require.NoError(t, b.Validate())
}

func TestCube_Clone(t *testing.T) {
	b := newCubeForTest(cubeBounds())
	c := b.Clone()

	assert.Equal(t, b.NumVertices(), c.NumVertices())
	c.SetVertexPosition(VertexId(0), geo.Vec3(0, 0, 0))
	assert.NotEqual(t, b.Vertex(VertexId(0)).Position, c.Vertex(VertexId(0)).Position)
}

func TestCube_Compact(t *testing.T) {
	b := newCubeForTest(cubeBounds())
	b.RemoveVertex(VertexId(0))
	vmap, _, _ := b.Compact()
	assert.Equal(t, 7, len(vmap))
	assert.Equal(t, 7, b.NumVertices())
}

func TestBrush_IncidentEdgesAndFaces(t *testing.T) {
	b := newCubeForTest(cubeBounds())
	edges := b.IncidentEdges(VertexId(0))
	faces := b.IncidentFaces(VertexId(0))
	assert.Len(t, edges, 3)
	assert.Len(t, faces, 3)
}

func TestBrush_FlipFace(t *testing.T) {
	b := newCubeForTest(cubeBounds())
	face := b.Face(FaceId(0))
	b.FlipFace(FaceId(0))
	flipped := b.Face(FaceId(0))
	assert.Equal(t, len(face.Vertices), len(flipped.Vertices))
	assert.NotEqual(t, face.Plane.Normal, flipped.Plane.Normal)

	b.FlipFace(FaceId(0))
	back := b.Face(FaceId(0))
	assertSameTopology(t, face, back)
	assert.Equal(t, face.Plane, back.Plane)
}

func TestBrush_RotateCycle(t *testing.T) {
	b := newCubeForTest(cubeBounds())
	face := b.Face(FaceId(0))
	b.RotateCycle(FaceId(0), 2)
	rotated := b.Face(FaceId(0))
	assert.Equal(t, face.Vertices[2], rotated.Vertices[0])
	assert.Equal(t, face.Edges[2], rotated.Edges[0])
}
