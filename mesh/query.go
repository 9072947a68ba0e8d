package mesh

import "github.com/TrenchBroom/TrenchBroom-sub038/geo"

// ContainsPoint reports whether p lies inside or on the boundary of b, a
// convex polyhedron represented as the intersection of its faces'
// half-spaces: p qualifies as long as it is not strictly above any face's
// plane.
func (b *Brush) ContainsPoint(p geo.Vector3) bool {
	for _, fid := range b.Faces() {
		if b.faces[fid].Plane.SignedDistance(p) > geo.PositionEpsilon {
			return false
		}
	}
	return true
}

// Intersects reports whether b and other, both convex, share any volume.
// Two convex polyhedra bounded by planes fail to intersect only if one of
// them has a face whose plane has every vertex of the other strictly on
// its outward side, the separating-axis test specialized to face normals.
func (b *Brush) Intersects(other *Brush) bool {
	if separated(b, other) || separated(other, b) {
		return false
	}
	return true
}

func separated(a, other *Brush) bool {
	for _, fid := range a.Faces() {
		plane := a.faces[fid].Plane
		allOutside := true
		for _, vid := range other.Vertices() {
			if plane.SignedDistance(other.vertices[vid].Position) <= geo.PositionEpsilon {
				allOutside = false
				break
			}
		}
		if allOutside {
			return true
		}
	}
	return false
}

// Pick intersects ray with every face of b and returns the handle and
// distance of the nearest hit, used to implement viewport face picking.
// ok is false if the ray misses b entirely.
func (b *Brush) Pick(ray geo.Ray) (id FaceId, distance float64, ok bool) {
	best := FaceId(-1)
	bestT := 0.0
	found := false

	for _, fid := range b.Faces() {
		f := b.faces[fid]
		t, hit := ray.IntersectPlane(f.Plane)
		if !hit {
			continue
		}
		p := ray.PointAt(t)
		if !f.containsPoint(b, p) {
			continue
		}
		if !found || t < bestT {
			found = true
			bestT = t
			best = fid
		}
	}

	if !found {
		return InvalidFace, 0, false
	}
	return best, bestT, true
}

// containsPoint reports whether p, assumed to already lie on f's plane,
// falls within f's polygon. The test projects onto the two axes
// orthogonal to the plane's dominant normal component and walks the
// projected cycle, matching isConvex2D's winding convention: p is inside
// as long as it never falls strictly outside (on the +normal side) of any
// edge's 2-D half-plane.
func (f Face) containsPoint(b *Brush, p geo.Vector3) bool {
	drop := f.Plane.Normal.DominantAxis()
	u, v := axesExcluding(drop)

	px, py := p.Component(u), p.Component(v)
	n := len(f.Vertices)
	for i := 0; i < n; i++ {
		cur := b.vertices[f.Vertices[i]].Position
		next := b.vertices[f.Vertices[(i+1)%n]].Position
		ex, ey := next.Component(u)-cur.Component(u), next.Component(v)-cur.Component(v)
		wx, wy := px-cur.Component(u), py-cur.Component(v)
		cross := ex*wy - ey*wx
		side := f.Plane.Normal.Component(drop)
		if side > 0 {
			if cross > geo.PositionEpsilon {
				return false
			}
		} else {
			if cross < -geo.PositionEpsilon {
				return false
			}
		}
	}
	return true
}

func axesExcluding(drop int) (int, int) {
	switch drop {
	case 0:
		return 1, 2
	case 1:
		return 0, 2
	default:
		return 0, 1
	}
}
