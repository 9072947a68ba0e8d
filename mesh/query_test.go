package mesh_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TrenchBroom/TrenchBroom-sub038/build"
	"github.com/TrenchBroom/TrenchBroom-sub038/geo"
)

func TestBrush_ContainsPoint(t *testing.T) {
	b := build.Cube(geo.CubeAround(32))

	assert.True(t, b.ContainsPoint(geo.Vec3(0, 0, 0)))
	assert.True(t, b.ContainsPoint(geo.Vec3(32, 32, 32)))
	assert.False(t, b.ContainsPoint(geo.Vec3(33, 0, 0)))
	assert.False(t, b.ContainsPoint(geo.Vec3(100, 100, 100)))
}

func TestBrush_Intersects(t *testing.T) {
	a := build.Cube(geo.CubeAround(32))
	overlapping := build.Cube(geo.NewBox3(geo.Vec3(16, 16, 16), geo.Vec3(48, 48, 48)))
	disjoint := build.Cube(geo.NewBox3(geo.Vec3(100, 100, 100), geo.Vec3(116, 116, 116)))

	assert.True(t, a.Intersects(overlapping))
	assert.False(t, a.Intersects(disjoint))
}

func TestBrush_Pick(t *testing.T) {
	b := build.Cube(geo.CubeAround(32))

	ray := geo.NewRay(geo.Vec3(0, 0, 100), geo.Vec3(0, 0, -1))
	fid, dist, ok := b.Pick(ray)
	require.True(t, ok)
	assert.InDelta(t, 68.0, dist, 1e-6)
	hitFace := b.Face(fid)
	assert.True(t, hitFace.Plane.Normal.Equals(geo.Vec3(0, 0, 1)))
}

func TestBrush_Pick_Miss(t *testing.T) {
	b := build.Cube(geo.CubeAround(32))

	ray := geo.NewRay(geo.Vec3(0, 0, 100), geo.Vec3(1, 0, 0))
	_, _, ok := b.Pick(ray)
	assert.False(t, ok)
}
