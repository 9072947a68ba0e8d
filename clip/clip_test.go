package clip

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TrenchBroom/TrenchBroom-sub038/annotation"
	"github.com/TrenchBroom/TrenchBroom-sub038/geo"
	"github.com/TrenchBroom/TrenchBroom-sub038/mesh"
)

func cube(t *testing.T) *mesh.Brush {
	t.Helper()
	b, err := testCube(geo.CubeAround(32))
	require.NoError(t, err)
	return b
}

func TestClip_Redundant(t *testing.T) {
	b := cube(t)
	plane, err := geo.NewPlane(geo.Vec3(1, 0, 0), 1000)
	require.NoError(t, err)

	result, _, _, err := Clip(b, plane, annotation.Default())
	require.NoError(t, err)
	assert.Equal(t, Redundant, result)
	assert.Equal(t, 8, b.NumVertices())
}

func TestClip_TangentPlaneIsRedundant(t *testing.T) {
	b := cube(t)
	plane, err := geo.NewPlane(geo.Vec3(1, 0, 0), 32)
	require.NoError(t, err)

	result, _, _, err := Clip(b, plane, annotation.Default())
	require.NoError(t, err)
	assert.Equal(t, Redundant, result)
	assert.Equal(t, 8, b.NumVertices())
}

func TestClip_Empty(t *testing.T) {
	b := cube(t)
	plane, err := geo.NewPlane(geo.Vec3(1, 0, 0), -1000)
	require.NoError(t, err)

	result, _, _, err := Clip(b, plane, annotation.Default())
	require.NoError(t, err)
	assert.Equal(t, Empty, result)
}

func TestClip_GrazingPlaneIsEmpty(t *testing.T) {
	// Keeping only x >= 32 leaves a zero-volume slice: every vertex is on
	// or above the plane, so the whole mesh goes.
	b := cube(t)
	plane, err := geo.NewPlane(geo.Vec3(-1, 0, 0), -32)
	require.NoError(t, err)

	result, _, _, err := Clip(b, plane, annotation.Default())
	require.NoError(t, err)
	assert.Equal(t, Empty, result)
}

func TestClip_DiagonalSplit(t *testing.T) {
	b := cube(t)
	plane, err := geo.NewPlane(geo.Vec3(1, 1, 1).Normalize(), 0)
	require.NoError(t, err)

	result, newFace, _, err := Clip(b, plane, annotation.Default())
	require.NoError(t, err)
	assert.Equal(t, Split, result)
	assert.NotEqual(t, mesh.InvalidFace, newFace)
	require.NoError(t, b.Validate())

	// 4 corners survive, 6 edges are split, the cap is a hexagon.
	assert.Equal(t, 10, b.NumVertices())
	assert.Equal(t, 15, b.NumEdges())
	assert.Equal(t, 7, b.NumFaces())
	assert.Len(t, b.Face(newFace).Vertices, 6)
}

func TestClip_AxisAlignedSplitKeepsBoxShape(t *testing.T) {
	b := cube(t)
	plane, err := geo.NewPlane(geo.Vec3(1, 0, 0), 0)
	require.NoError(t, err)

	result, _, dropped, err := Clip(b, plane, annotation.Default())
	require.NoError(t, err)
	assert.Equal(t, Split, result)
	require.NoError(t, b.Validate())
	assert.Equal(t, 8, b.NumVertices())
	assert.Equal(t, 12, b.NumEdges())
	assert.Equal(t, 6, b.NumFaces())
	// The +X face is entirely removed and its annotation handed back.
	assert.Len(t, dropped, 1)
}

func TestClip_ThroughCornersYieldsPrism(t *testing.T) {
	// A diagonal plane through four of the cube's corners: the +X and +Y
	// faces degenerate to lines and are dropped, their on-plane boundary
	// edges are adopted into the sealing face, and the result is a
	// triangular prism with no duplicate vertices.
	b := cube(t)
	plane, err := geo.NewPlane(geo.Vec3(1, 1, 0), 0)
	require.NoError(t, err)

	result, newFace, dropped, err := Clip(b, plane, annotation.Default())
	require.NoError(t, err)
	assert.Equal(t, Split, result)
	require.NoError(t, b.Validate())

	assert.Equal(t, 6, b.NumVertices())
	assert.Equal(t, 9, b.NumEdges())
	assert.Equal(t, 5, b.NumFaces())
	assert.Len(t, b.Face(newFace).Vertices, 4)
	assert.Len(t, dropped, 2)
}

func TestClip_ResultStaysWithinBounds(t *testing.T) {
	b := cube(t)
	plane, err := geo.NewPlane(geo.Vec3(0, 0, 1), 10)
	require.NoError(t, err)

	result, _, _, err := Clip(b, plane, annotation.Default())
	require.NoError(t, err)
	require.Equal(t, Split, result)
	require.NoError(t, b.Validate())

	want := geo.NewBox3(geo.Vec3(-32, -32, -32), geo.Vec3(32, 32, 10))
	assert.True(t, b.Bounds().Equals(want))
}
