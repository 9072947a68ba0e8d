package snap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TrenchBroom/TrenchBroom-sub038/build"
	"github.com/TrenchBroom/TrenchBroom-sub038/geo"
)

func TestSnapVertices_AlreadyIntegerIsNoOp(t *testing.T) {
	b := build.Cube(geo.CubeAround(32))
	before := b.Clone()

	ok := SnapVertices(b, 1)
	require.True(t, ok)
	require.NoError(t, b.Validate())
	for _, vid := range b.Vertices() {
		assert.True(t, b.Vertex(vid).Position.Equals(before.Vertex(vid).Position))
	}
}

func TestSnapVertices_IsIdempotent(t *testing.T) {
	b := build.Cube(geo.NewBox3(geo.Vec3(-31.7, -32.2, -32), geo.Vec3(32.4, 31.8, 32)))

	require.True(t, SnapVertices(b, 1))
	once := b.Clone()
	require.True(t, SnapVertices(b, 1))

	for _, vid := range b.Vertices() {
		assert.True(t, b.Vertex(vid).Position.Equals(once.Vertex(vid).Position))
	}
}

func TestSnapVertices_RejectsThinSlab(t *testing.T) {
	// A slab thinner than half a grid unit collapses under snapping: its
	// top and bottom land on the same lattice plane and the volume goes to
	// zero, so the snap must refuse and leave the brush untouched.
	top, err := geo.NewPlane(geo.Vec3(0, 0, 1), 0.3)
	require.NoError(t, err)
	bottom, err := geo.NewPlane(geo.Vec3(0, 0, -1), 0.1)
	require.NoError(t, err)

	b, err := build.FromHalfSpaces([]geo.Plane{top, bottom}, nil, geo.CubeAround(8))
	require.NoError(t, err)
	require.NoError(t, b.Validate())
	before := b.Clone()

	assert.False(t, CanSnapVertices(b, 1))
	assert.False(t, SnapVertices(b, 1))
	for _, vid := range b.Vertices() {
		assert.True(t, b.Vertex(vid).Position.Equals(before.Vertex(vid).Position))
	}
}

func TestCanSnapVertices_DoesNotMutate(t *testing.T) {
	b := build.Cube(geo.CubeAround(32))
	before := b.Clone()

	_ = CanSnapVertices(b, 1)

	for _, vid := range b.Vertices() {
		assert.True(t, b.Vertex(vid).Position.Equals(before.Vertex(vid).Position))
	}
}
