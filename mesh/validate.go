package mesh

import (
	"fmt"

	"github.com/TrenchBroom/TrenchBroom-sub038/geo"
)

// Validate checks every structural invariant of the mesh and returns the first violation
// found, or nil if b is a valid polyhedron. Clip, the vertex/edge/face
// moves, snap and subtraction validate their result before committing and
// roll back instead of returning an invalid brush; the rigid transforms in
// package edit (Translate, Rotate, Rotate90, Flip) do not call Validate.
func (b *Brush) Validate() error {
	if err := b.validateClosedness(); err != nil {
		return err
	}
	if err := b.validateFaceConsistency(); err != nil {
		return err
	}
	if err := b.validateGlobalConvexity(); err != nil {
		return err
	}
	if err := b.validateNonDegeneracy(); err != nil {
		return err
	}
	if err := b.validateEuler(); err != nil {
		return err
	}
	return nil
}

func (b *Brush) validateClosedness() error {
	if !b.Closed() {
		return fmt.Errorf("mesh: invariant 1 (closedness) violated: an edge has fewer than two distinct incident faces")
	}
	return nil
}

func (b *Brush) validateFaceConsistency() error {
	for _, fid := range b.Faces() {
		f := b.faces[fid]
		n := len(f.Vertices)
		if n != len(f.Edges) || n < 3 {
			return fmt.Errorf("mesh: invariant 2 (face consistency) violated: face %d has %d vertices and %d edges", fid, n, len(f.Edges))
		}
		for i := 0; i < n; i++ {
			e := b.edges[f.Edges[i]]
			if e.StartFor(fid) != f.Vertices[i] {
				return fmt.Errorf("mesh: invariant 2 (face consistency) violated: face %d edge %d does not start at vertices[%d]", fid, i, i)
			}
			if e.EndFor(fid) != f.Vertices[(i+1)%n] {
				return fmt.Errorf("mesh: invariant 2 (face consistency) violated: face %d edge %d does not end at vertices[%d]", fid, i, (i+1)%n)
			}
		}
		if !f.isPlanar(b, geo.PositionEpsilon) {
			return fmt.Errorf("mesh: invariant 2 (face consistency) violated: face %d is not planar", fid)
		}
		if !f.isConvex2D(b) {
			return fmt.Errorf("mesh: invariant 2 (face consistency) violated: face %d is not convex", fid)
		}
	}
	return nil
}

func (b *Brush) validateGlobalConvexity() error {
	for _, fid := range b.Faces() {
		f := b.faces[fid]
		onFace := make(map[VertexId]bool, len(f.Vertices))
		for _, v := range f.Vertices {
			onFace[v] = true
		}
		for _, vid := range b.Vertices() {
			if onFace[vid] {
				continue
			}
			d := f.Plane.SignedDistance(b.vertices[vid].Position)
			if d > geo.PositionEpsilon {
				return fmt.Errorf("mesh: invariant 3 (global convexity) violated: vertex %d lies outside face %d's plane", vid, fid)
			}
		}
	}
	return nil
}

func (b *Brush) validateNonDegeneracy() error {
	verts := b.Vertices()
	for i := 0; i < len(verts); i++ {
		for j := i + 1; j < len(verts); j++ {
			if b.vertices[verts[i]].Position.Equals(b.vertices[verts[j]].Position) {
				return fmt.Errorf("mesh: invariant 4 (non-degeneracy) violated: vertices %d and %d coincide", verts[i], verts[j])
			}
		}
	}
	for _, fid := range b.Faces() {
		if b.faceArea(b.faces[fid]) < geo.PositionEpsilon*geo.PositionEpsilon {
			return fmt.Errorf("mesh: invariant 4 (non-degeneracy) violated: face %d is degenerate", fid)
		}
	}
	if b.volume() < geo.PositionEpsilon {
		return fmt.Errorf("mesh: invariant 4 (non-degeneracy) violated: brush has zero volume")
	}
	return nil
}

func (b *Brush) validateEuler() error {
	v, e, f := b.NumVertices(), b.NumEdges(), b.NumFaces()
	if v-e+f != 2 {
		return fmt.Errorf("mesh: invariant 5 (Euler) violated: V(%d) - E(%d) + F(%d) = %d, want 2", v, e, f, v-e+f)
	}
	for _, fid := range b.Faces() {
		if len(b.faces[fid].Edges) < 3 {
			return fmt.Errorf("mesh: invariant 5 (Euler) violated: face %d has fewer than 3 sides", fid)
		}
	}
	return nil
}

// FaceIsConvexAndPlanar reports whether f satisfies invariant 2's shape
// checks in isolation (planarity and 2-D convexity), without checking its
// relationship to the rest of the mesh. No package in this module calls it;
// the edit passes validate the whole brush instead.
func (b *Brush) FaceIsConvexAndPlanar(id FaceId) bool {
	f := b.faces[id]
	return f.isPlanar(b, geo.PositionEpsilon) && f.isConvex2D(b)
}

// isPlanar reports whether every vertex of f lies within eps of f's plane.
func (f Face) isPlanar(b *Brush, eps float64) bool {
	for _, vid := range f.Vertices {
		d := f.Plane.SignedDistance(b.vertices[vid].Position)
		if d > eps || d < -eps {
			return false
		}
	}
	return true
}

// isConvex2D reports whether f's vertex cycle is strictly convex when
// projected onto its own plane (walked clockwise as seen from outside, so
// every turn cross product should point along -f.Plane.Normal).
func (f Face) isConvex2D(b *Brush) bool {
	n := len(f.Vertices)
	if n < 3 {
		return false
	}
	for i := 0; i < n; i++ {
		prev := b.vertices[f.Vertices[(i-1+n)%n]].Position
		cur := b.vertices[f.Vertices[i]].Position
		next := b.vertices[f.Vertices[(i+1)%n]].Position
		turn := cur.Sub(prev).Cross(next.Sub(cur))
		if turn.Dot(f.Plane.Normal) > geo.PositionEpsilon {
			return false
		}
	}
	return true
}

// faceArea returns the polygon's area via a fan triangulation, used only
// as a degeneracy threshold.
func (b *Brush) faceArea(f Face) float64 {
	if len(f.Vertices) < 3 {
		return 0
	}
	origin := b.vertices[f.Vertices[0]].Position
	var sum geo.Vector3
	for i := 1; i+1 < len(f.Vertices); i++ {
		a := b.vertices[f.Vertices[i]].Position.Sub(origin)
		c := b.vertices[f.Vertices[i+1]].Position.Sub(origin)
		sum = sum.Add(a.Cross(c))
	}
	return sum.Length() / 2
}

// volume returns the polyhedron's volume via the divergence-theorem sum
// over triangulated faces, used only against the non-degeneracy threshold.
// Face cycles wind clockwise as seen from outside, so each fan term is
// negative and the raw sum is negated.
func (b *Brush) volume() float64 {
	var vol float64
	for _, fid := range b.Faces() {
		f := b.faces[fid]
		if len(f.Vertices) < 3 {
			continue
		}
		origin := b.vertices[f.Vertices[0]].Position
		for i := 1; i+1 < len(f.Vertices); i++ {
			a := b.vertices[f.Vertices[i]].Position
			c := b.vertices[f.Vertices[i+1]].Position
			vol += origin.Dot(a.Cross(c))
		}
	}
	return -vol / 6
}
