// Package clip implements half-space clipping: cutting a
// polyhedral mesh with a single plane, dropping the geometry on the
// positive side, and sealing the cut with a new face.
package clip

import (
	"github.com/TrenchBroom/TrenchBroom-sub038/annotation"
	"github.com/TrenchBroom/TrenchBroom-sub038/geo"
	"github.com/TrenchBroom/TrenchBroom-sub038/geoerr"
	"github.com/TrenchBroom/TrenchBroom-sub038/internal/telemetry"
	"github.com/TrenchBroom/TrenchBroom-sub038/mesh"
)

// Result is the outcome of clipping a mesh against a plane.
type Result int

const (
	// Redundant means the plane does not cut the mesh; nothing changed.
	Redundant Result = iota
	// Empty means the plane removes the entire mesh.
	Empty
	// Split means the mesh was reduced to its intersection with the
	// plane's negative half-space, with a new face sealing the cut.
	Split
)

func (r Result) String() string {
	switch r {
	case Redundant:
		return "Redundant"
	case Empty:
		return "Empty"
	case Split:
		return "Split"
	default:
		return "Unknown"
	}
}

// Clip cuts b against plane in place. On Split, ann becomes the annotation
// of the new sealing face and newFace is its handle; droppedAnnotations
// carries the annotation of every face that was entirely removed. On
// Redundant or Empty, b is left untouched and newFace is mesh.InvalidFace.
//
// Vertices on the plane itself (within geo.PositionEpsilon) are kept and
// serve directly as seam endpoints: no split vertex is allocated for an
// edge that merely touches the plane, and an edge lying entirely on the
// plane whose far side is removed is adopted into the sealing face's cycle
// instead of being bridged by a duplicate.
func Clip(b *mesh.Brush, plane geo.Plane, ann annotation.FaceAnnotation) (result Result, newFace mesh.FaceId, droppedAnnotations []annotation.FaceAnnotation, err error) {
	marks := mesh.NewMarks()

	anyAbove, anyBelow := false, false
	for _, v := range b.Vertices() {
		switch plane.ClassifyPoint(b.Vertex(v).Position) {
		case geo.Above:
			marks.SetVertex(v, mesh.VertexDrop)
			anyAbove = true
		case geo.Below:
			marks.SetVertex(v, mesh.VertexKeep)
			anyBelow = true
		default:
			marks.SetVertex(v, mesh.VertexUndecided)
		}
	}
	if !anyAbove {
		telemetry.Default.Debug("clip: plane is redundant, no change")
		return Redundant, mesh.InvalidFace, nil, nil
	}
	if !anyBelow {
		telemetry.Default.Debug("clip: plane removes the entire mesh")
		return Empty, mesh.InvalidFace, nil, nil
	}

	kept := func(id mesh.VertexId) bool { return marks.Vertex(id) != mesh.VertexDrop }

	// Reduce the endpoint marks onto each edge. An edge from
	// an on-plane vertex to a dropped one needs no split vertex: it leaves
	// the kept region exactly at its on-plane endpoint, so it is dropped
	// whole. An edge lying on the plane is undecided until the face pass
	// settles whether either of its sides survives.
	for _, eid := range b.Edges() {
		e := b.Edge(eid)
		ma, mb := marks.Vertex(e.A), marks.Vertex(e.B)
		switch {
		case ma == mesh.VertexKeep && mb == mesh.VertexKeep:
			marks.SetEdge(eid, mesh.EdgeKeep)
		case ma == mesh.VertexDrop && mb == mesh.VertexDrop:
			marks.SetEdge(eid, mesh.EdgeDrop)
		case (ma == mesh.VertexKeep && mb == mesh.VertexDrop) ||
			(ma == mesh.VertexDrop && mb == mesh.VertexKeep):
			marks.SetEdge(eid, mesh.EdgeSplit)
		case ma == mesh.VertexUndecided && mb == mesh.VertexUndecided:
			marks.SetEdge(eid, mesh.EdgeUndecided)
		case ma == mesh.VertexDrop || mb == mesh.VertexDrop:
			marks.SetEdge(eid, mesh.EdgeDrop)
		default:
			marks.SetEdge(eid, mesh.EdgeKeep)
		}
	}

	splitVertexByEdge := make(map[mesh.EdgeId]mesh.VertexId)
	getOrCreateSplitVertex := func(edgeID mesh.EdgeId) mesh.VertexId {
		if sv, ok := splitVertexByEdge[edgeID]; ok {
			return sv
		}
		e := b.Edge(edgeID)
		posA := b.Vertex(e.A).Position
		posB := b.Vertex(e.B).Position
		ip, ok := plane.IntersectSegment(posA, posB)
		if !ok {
			ip = posA.Lerp(posB, 0.5)
		}
		ip = ip.Settle()
		sv := b.AddVertex(ip)
		marks.SetVertex(sv, mesh.VertexNew)
		splitVertexByEdge[edgeID] = sv

		if marks.Vertex(e.A) == mesh.VertexDrop {
			e.A = sv
		} else {
			e.B = sv
		}
		b.SetEdge(edgeID, e)
		return sv
	}

	var seamEdges []mesh.EdgeId
	capSideLeft := make(map[mesh.EdgeId]bool)

	for _, fid := range b.Faces() {
		face := b.Face(fid)
		n := len(face.Vertices)

		anyDrop, anyKept := false, false
		for _, v := range face.Vertices {
			if kept(v) {
				anyKept = true
			} else {
				anyDrop = true
			}
		}
		if !anyDrop {
			marks.SetFace(fid, mesh.FaceKeep)
			continue
		}
		if !anyKept {
			marks.SetFace(fid, mesh.FaceDrop)
			droppedAnnotations = append(droppedAnnotations, face.Annotation)
			b.RemoveFace(fid)
			continue
		}

		// Start the walk at a kept vertex whose predecessor is dropped, so
		// the single out-run of a convex face never wraps past the start
		// and the exit point is always seen before the entry point.
		start := 0
		for i := 0; i < n; i++ {
			if kept(face.Vertices[i]) && !kept(face.Vertices[(i-1+n)%n]) {
				start = i
				break
			}
		}

		var outV []mesh.VertexId
		var outE []mesh.EdgeId
		exit := mesh.InvalidVertex
		entry := mesh.InvalidVertex
		seamSlot := -1

		for k := 0; k < n; k++ {
			i := (start + k) % n
			cur := face.Vertices[i]
			next := face.Vertices[(i+1)%n]
			edgeID := face.Edges[i]

			if kept(cur) {
				outV = append(outV, cur)
				switch marks.Edge(edgeID) {
				case mesh.EdgeKeep, mesh.EdgeUndecided:
					outE = append(outE, edgeID)
				case mesh.EdgeSplit:
					sv := getOrCreateSplitVertex(edgeID)
					outV = append(outV, sv)
					outE = append(outE, edgeID)
					exit = sv
				case mesh.EdgeDrop:
					// cur is on the plane; the edge leaves the kept region
					// right here and is dropped whole.
					exit = cur
				}
				continue
			}

			// cur is dropped; watch for the transition back in.
			if !kept(next) {
				continue
			}
			switch marks.Edge(edgeID) {
			case mesh.EdgeSplit:
				sv := getOrCreateSplitVertex(edgeID)
				entry = sv
				seamSlot = len(outE)
				outE = append(outE, mesh.InvalidEdge)
				outV = append(outV, sv)
				outE = append(outE, edgeID)
			default:
				// next is on the plane and becomes the entry point itself;
				// the seam edge lands just before next's own append.
				entry = next
				seamSlot = len(outE)
				outE = append(outE, mesh.InvalidEdge)
			}
		}

		if len(outV) < 3 {
			// The kept region degenerated to an edge or a point: the plane
			// grazes this face. The face is dropped; any on-plane edges it
			// leaves behind are adopted by the sealing face below.
			marks.SetFace(fid, mesh.FaceDrop)
			droppedAnnotations = append(droppedAnnotations, face.Annotation)
			b.RemoveFace(fid)
			continue
		}

		if seamSlot >= 0 {
			if exit == mesh.InvalidVertex || entry == mesh.InvalidVertex {
				return Redundant, mesh.InvalidFace, nil, geoerr.New("clip.Clip", geoerr.NumericFailure)
			}
			seam := b.AddEdge(exit, entry, mesh.InvalidFace, fid)
			marks.SetEdge(seam, mesh.EdgeNew)
			outE[seamSlot] = seam
			seamEdges = append(seamEdges, seam)
			capSideLeft[seam] = true
		}

		marks.SetFace(fid, mesh.FaceSplit)
		face.Vertices = outV
		face.Edges = outE
		b.SetFace(fid, face)
	}

	// Edges lying on the cut plane whose far face was dropped become part
	// of the sealing face's boundary (seam candidates).
	for _, eid := range b.Edges() {
		if marks.Edge(eid) != mesh.EdgeUndecided {
			continue
		}
		e := b.Edge(eid)
		leftAlive, rightAlive := b.FaceAlive(e.Left), b.FaceAlive(e.Right)
		if leftAlive == rightAlive {
			continue
		}
		seamEdges = append(seamEdges, eid)
		capSideLeft[eid] = !leftAlive
	}

	if len(seamEdges) < 3 {
		return Redundant, mesh.InvalidFace, nil, geoerr.New("clip.Clip", geoerr.NumericFailure)
	}

	order, err := assembleSeamCycle(b, seamEdges, capSideLeft)
	if err != nil {
		return Redundant, mesh.InvalidFace, nil, err
	}

	capStart := func(eid mesh.EdgeId) mesh.VertexId {
		if capSideLeft[eid] {
			return b.Edge(eid).B
		}
		return b.Edge(eid).A
	}
	newVerts := make([]mesh.VertexId, len(order))
	for i, eid := range order {
		newVerts[i] = capStart(eid)
	}
	capFace := b.AddFace(mesh.Face{
		Vertices:   newVerts,
		Edges:      order,
		Plane:      plane,
		Annotation: ann,
	})
	marks.SetFace(capFace, mesh.FaceNew)
	for _, eid := range order {
		e := b.Edge(eid)
		if capSideLeft[eid] {
			e.Left = capFace
		} else {
			e.Right = capFace
		}
		b.SetEdge(eid, e)
	}

	garbageCollect(b)
	b.SettleAll()
	b.RecomputeBounds()
	_, _, fmap := b.Compact()
	capFace = fmap[capFace]

	if err := b.Validate(); err != nil {
		telemetry.Default.Debug("clip: result failed validation: %v", err)
		return Redundant, mesh.InvalidFace, nil, geoerr.Wrap("clip.Clip", geoerr.DegenerateResult, err)
	}

	telemetry.Default.Info("clip: split mesh, new face %d with %d dropped annotations", capFace, len(droppedAnnotations))
	return Split, capFace, droppedAnnotations, nil
}

// assembleSeamCycle sorts the seam edges produced while clipping every
// split face — plus any adopted on-plane edges — into a single cycle by
// matching each edge's end, as the cap face will walk it, to the start of
// its successor. O(n^2): a well-formed polyhedron cut by a
// plane produces at most a dozen seam edges.
func assembleSeamCycle(b *mesh.Brush, seamEdges []mesh.EdgeId, capSideLeft map[mesh.EdgeId]bool) ([]mesh.EdgeId, error) {
	capStart := func(eid mesh.EdgeId) mesh.VertexId {
		if capSideLeft[eid] {
			return b.Edge(eid).B
		}
		return b.Edge(eid).A
	}
	capEnd := func(eid mesh.EdgeId) mesh.VertexId {
		if capSideLeft[eid] {
			return b.Edge(eid).A
		}
		return b.Edge(eid).B
	}

	order := []mesh.EdgeId{seamEdges[0]}
	used := map[mesh.EdgeId]bool{seamEdges[0]: true}
	for len(order) < len(seamEdges) {
		last := order[len(order)-1]
		found := false
		for _, candidate := range seamEdges {
			if used[candidate] {
				continue
			}
			if capStart(candidate) == capEnd(last) {
				order = append(order, candidate)
				used[candidate] = true
				found = true
				break
			}
		}
		if !found {
			return nil, geoerr.New("clip.assembleSeamCycle", geoerr.NumericFailure)
		}
	}
	if capStart(order[0]) != capEnd(order[len(order)-1]) {
		return nil, geoerr.New("clip.assembleSeamCycle", geoerr.NumericFailure)
	}
	return order, nil
}

// garbageCollect drops every vertex and edge not reachable from a live
// face's own Vertices/Edges arrays.
func garbageCollect(b *mesh.Brush) {
	usedVerts := make(map[mesh.VertexId]bool)
	usedEdges := make(map[mesh.EdgeId]bool)
	for _, fid := range b.Faces() {
		f := b.Face(fid)
		for _, v := range f.Vertices {
			usedVerts[v] = true
		}
		for _, e := range f.Edges {
			usedEdges[e] = true
		}
	}
	for _, v := range b.Vertices() {
		if !usedVerts[v] {
			b.RemoveVertex(v)
		}
	}
	for _, e := range b.Edges() {
		if !usedEdges[e] {
			b.RemoveEdge(e)
		}
	}
}
