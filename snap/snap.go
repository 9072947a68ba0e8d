// Package snap implements grid snapping: moving every vertex of a brush onto the
// integer grid in one pass, verifying the result and rolling back if the
// snap would break convexity.
package snap

import (
	"github.com/TrenchBroom/TrenchBroom-sub038/geo"
	"github.com/TrenchBroom/TrenchBroom-sub038/internal/telemetry"
	"github.com/TrenchBroom/TrenchBroom-sub038/mesh"
)

// SnapVertices moves every vertex of b to the nearest multiple of grid and
// recomputes every face's plane to match. If the result violates a mesh invariant the
// snap is rejected, b is left unchanged, and SnapVertices returns false.
func SnapVertices(b *mesh.Brush, grid int) bool {
	work := b.Clone()

	for _, vid := range work.Vertices() {
		work.SetVertexPosition(vid, work.Vertex(vid).Position.SnapToGrid(grid))
	}
	for _, fid := range work.Faces() {
		face := work.Face(fid)
		p0 := work.Vertex(face.Vertices[0]).Position
		p1 := work.Vertex(face.Vertices[1]).Position
		p2 := work.Vertex(face.Vertices[2]).Position
		plane, err := geo.PlaneFromPoints(p0, p1, p2)
		if err != nil {
			telemetry.Default.Debug("snap.SnapVertices: face %d collapsed under snap", fid)
			return false
		}
		face.Plane = plane
		work.SetFace(fid, face)
	}
	work.RecomputeBounds()

	if err := work.Validate(); err != nil {
		telemetry.Default.Debug("snap.SnapVertices: rejected, %v", err)
		return false
	}

	b.Assign(work)
	telemetry.Default.Info("snap.SnapVertices: snapped to grid %d", grid)
	return true
}

// CanSnapVertices reports whether SnapVertices(b, grid) would succeed,
// without mutating b.
func CanSnapVertices(b *mesh.Brush, grid int) bool {
	return SnapVertices(b.Clone(), grid)
}
