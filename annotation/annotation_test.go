package annotation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/TrenchBroom/TrenchBroom-sub038/geo"
)

func TestDefault(t *testing.T) {
	d := Default()
	assert.Equal(t, 1.0, d.XScale)
	assert.Equal(t, 1.0, d.YScale)
	assert.Equal(t, geo.Vec3(1, 0, 0), d.UAxis)
}

func TestIdentityAdapter(t *testing.T) {
	var a IdentityAdapter
	ann := FaceAnnotation{Material: "rock"}
	assert.Equal(t, ann, a.Transform(ann, RigidMotion{}))
	assert.Equal(t, Default(), a.DefaultFor(geo.Plane{}))
}

func TestClone(t *testing.T) {
	ann := FaceAnnotation{Material: "rock", XScale: 2}
	clone := ann.Clone()
	clone.Material = "metal"
	assert.Equal(t, "rock", ann.Material)
	assert.Equal(t, "metal", clone.Material)
}
