package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBox3_CubeAround(t *testing.T) {
	b := CubeAround(32)
	assert.Equal(t, Vec3(-32, -32, -32), b.Min)
	assert.Equal(t, Vec3(32, 32, 32), b.Max)
}

func TestBox3_Corners(t *testing.T) {
	b := NewBox3(Vec3(-1, -1, -1), Vec3(1, 1, 1))
	corners := b.Corners()
	assert.Len(t, corners, 8)
	assert.Equal(t, Vec3(-1, -1, -1), corners[0])
	assert.Equal(t, Vec3(1, 1, 1), corners[7])
}

func TestBox3_ContainsPoint(t *testing.T) {
	b := CubeAround(32)
	assert.True(t, b.ContainsPoint(Vec3(0, 0, 0)))
	assert.True(t, b.ContainsPoint(Vec3(32, 32, 32)))
	assert.False(t, b.ContainsPoint(Vec3(33, 0, 0)))
}

func TestBox3_Intersects(t *testing.T) {
	a := NewBox3(Vec3(0, 0, 0), Vec3(10, 10, 10))
	b := NewBox3(Vec3(5, 5, 5), Vec3(15, 15, 15))
	c := NewBox3(Vec3(20, 20, 20), Vec3(30, 30, 30))
	assert.True(t, a.Intersects(b))
	assert.False(t, a.Intersects(c))
}

func TestBox3_Planes(t *testing.T) {
	b := CubeAround(32)
	planes := b.Planes()
	for _, c := range b.Corners() {
		for _, pl := range planes {
			assert.LessOrEqual(t, pl.SignedDistance(c), PositionEpsilon)
		}
	}
}
