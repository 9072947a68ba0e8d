// Package csg implements brush-minus-brush subtraction: producing a
// set of convex fragment brushes whose union equals the set difference of
// two convex brushes.
package csg

import (
	"github.com/TrenchBroom/TrenchBroom-sub038/annotation"
	"github.com/TrenchBroom/TrenchBroom-sub038/clip"
	"github.com/TrenchBroom/TrenchBroom-sub038/geo"
	"github.com/TrenchBroom/TrenchBroom-sub038/geoerr"
	"github.com/TrenchBroom/TrenchBroom-sub038/internal/telemetry"
	"github.com/TrenchBroom/TrenchBroom-sub038/mesh"
)

// Subtract returns a list of convex brushes whose union is |a| \ |b|.
//
// For each face of b, in face order, a fragment is built by clipping a
// copy of a against that face's plane flipped (keeping the part of a
// outside b along that face) and then, to avoid re-covering ground already
// assigned to an earlier face's fragment, clipping again against every
// earlier face's own plane (keeping only the part still inside b along
// those faces). A fragment that collapses to nothing is simply dropped.
//
// The seam face produced by a fragment's own defining cut (the flipped
// face of b) carries that face's annotation, since it is genuinely b's
// boundary seen from the other side. Seam faces produced by the
// overlap-avoidance cuts against earlier planes are new internal faces
// with no material source in either input, so they get defaultAnn.
func Subtract(a, b *mesh.Brush, defaultAnn annotation.FaceAnnotation) ([]*mesh.Brush, error) {
	bFaces := b.Faces()
	planes := make([]geo.Plane, len(bFaces))
	anns := make([]annotation.FaceAnnotation, len(bFaces))
	for i, fid := range bFaces {
		face := b.Face(fid)
		planes[i] = face.Plane
		anns[i] = face.Annotation
	}

	var fragments []*mesh.Brush
	for i, p := range planes {
		frag := a.Clone()

		result, _, _, err := clip.Clip(frag, p.Flip(), anns[i])
		if err != nil {
			return nil, geoerr.Wrap("csg.Subtract", geoerr.DegenerateResult, err)
		}
		if result == clip.Empty {
			continue
		}

		dropped := false
		for j := 0; j < i; j++ {
			r2, _, _, err2 := clip.Clip(frag, planes[j], defaultAnn)
			if err2 != nil {
				return nil, geoerr.Wrap("csg.Subtract", geoerr.DegenerateResult, err2)
			}
			if r2 == clip.Empty {
				dropped = true
				break
			}
		}
		if dropped {
			continue
		}

		if err := frag.Validate(); err != nil {
			telemetry.Default.Debug("csg.Subtract: face %d produced a degenerate fragment, dropping", i)
			continue
		}

		fragments = append(fragments, frag)
	}

	telemetry.Default.Info("csg.Subtract: produced %d fragments", len(fragments))
	return fragments, nil
}
