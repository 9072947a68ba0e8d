package csg

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TrenchBroom/TrenchBroom-sub038/annotation"
	"github.com/TrenchBroom/TrenchBroom-sub038/build"
	"github.com/TrenchBroom/TrenchBroom-sub038/geo"
)

// sampleLattice reports, for the center of every unit lattice cell within
// bounds, whether it lies inside b. Subtract's fragments are checked for
// union correctness by sampling rather than by exact polyhedral
// comparison; cell centers keep every sample strictly off the cut planes,
// where closed-set point containment cannot distinguish the two sides.
func sampleLattice(bounds geo.Box3, contains func(p geo.Vector3) bool) map[[3]int]bool {
	out := make(map[[3]int]bool)
	minX, maxX := int(math.Round(bounds.Min.X)), int(math.Round(bounds.Max.X))
	minY, maxY := int(math.Round(bounds.Min.Y)), int(math.Round(bounds.Max.Y))
	minZ, maxZ := int(math.Round(bounds.Min.Z)), int(math.Round(bounds.Max.Z))
	for x := minX; x < maxX; x++ {
		for y := minY; y < maxY; y++ {
			for z := minZ; z < maxZ; z++ {
				p := geo.Vec3(float64(x)+0.5, float64(y)+0.5, float64(z)+0.5)
				out[[3]int{x, y, z}] = contains(p)
			}
		}
	}
	return out
}

func TestSubtract_UnionMatchesSetDifferenceOnLattice(t *testing.T) {
	a := build.Cube(geo.NewBox3(geo.Vec3(-32, -16, -32), geo.Vec3(32, 16, 32)))
	b := build.Cube(geo.NewBox3(geo.Vec3(-16, -32, -64), geo.Vec3(16, 32, 0)))

	fragments, err := Subtract(a, b, annotation.Default())
	require.NoError(t, err)
	assert.Len(t, fragments, 3)

	expected := sampleLattice(a.Bounds(), func(p geo.Vector3) bool {
		return a.ContainsPoint(p) && !b.ContainsPoint(p)
	})
	actual := sampleLattice(a.Bounds(), func(p geo.Vector3) bool {
		for _, frag := range fragments {
			if frag.ContainsPoint(p) {
				return true
			}
		}
		return false
	})

	for key, want := range expected {
		assert.Equalf(t, want, actual[key], "lattice point %v", key)
	}
}

func TestSubtract_SeamFacesCarryDefaultAnnotation(t *testing.T) {
	a := build.Cube(geo.NewBox3(geo.Vec3(-32, -16, -32), geo.Vec3(32, 16, 32)))
	b := build.Cube(geo.NewBox3(geo.Vec3(-16, -32, -64), geo.Vec3(16, 32, 0)))

	defaultAnn := annotation.FaceAnnotation{Material: "seam", XScale: 1, YScale: 1}
	fragments, err := Subtract(a, b, defaultAnn)
	require.NoError(t, err)
	require.NotEmpty(t, fragments)

	sawDefault := false
	for _, frag := range fragments {
		for _, fid := range frag.Faces() {
			if frag.Face(fid).Annotation.Material == "seam" {
				sawDefault = true
			}
		}
	}
	assert.True(t, sawDefault, "expected at least one internal seam face to carry the default annotation")
}

func TestSubtract_DisjointBrushesYieldWholeA(t *testing.T) {
	a := build.Cube(geo.CubeAround(8))
	b := build.Cube(geo.NewBox3(geo.Vec3(100, 100, 100), geo.Vec3(116, 116, 116)))

	fragments, err := Subtract(a, b, annotation.Default())
	require.NoError(t, err)
	require.NotEmpty(t, fragments)

	for _, frag := range fragments {
		require.NoError(t, frag.Validate())
	}
	require.Len(t, fragments, 1)
	assert.True(t, fragments[0].Bounds().Equals(a.Bounds()))
}

func TestSubtract_NoFragmentsWhenBSwallowsA(t *testing.T) {
	a := build.Cube(geo.CubeAround(8))
	b := build.Cube(geo.CubeAround(64))

	fragments, err := Subtract(a, b, annotation.Default())
	require.NoError(t, err)
	assert.Empty(t, fragments)
}
