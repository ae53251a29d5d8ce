// Copyright (c) 2024 lishulincug
// SPDX-License-Identifier: MIT

package halfedge

// AddFace adds a face over the given vertices with zero payloads.
// See AddFaceData.
func (m *Mesh[V, HE, E, F]) AddFace(vertices []VertexIndex) FaceIndex {
	var faceData F
	var edgeData E
	var halfEdgeData HE
	return m.AddFaceData(vertices, faceData, edgeData, halfEdgeData)
}

// AddFaceData adds a face over the given vertices, the last vertex
// connects back to the first. faceData is stored for the face, edgeData
// for every added edge and halfEdgeData for every added half-edge, on
// the kinds that carry payloads.
//
// The vertices must be valid and pairwise distinct, and the insertion
// must keep the mesh's topological invariant. On any violation AddFace
// returns InvalidFace and leaves the mesh untouched:
//
//   - a vertex count the face shape does not allow (fewer than three
//     for Polygon, other than three for Triangle or four for Quad)
//   - an out-of-range or duplicated vertex
//   - a non-isolated vertex with no boundary slot left to attach to
//   - manifold mesh: two new edges meeting at a connected vertex
//     (the vertex would become a pinch point)
//   - non-manifold mesh: an existing half-edge between consecutive
//     vertices, in the face's direction, that already carries a face;
//     a manifold mesh looks up only the boundary outgoing half-edge and
//     does not detect such an edge
//   - non-manifold mesh: a needed fan re-threading would detach the
//     fans around a vertex from each other
func (m *Mesh[V, HE, E, F]) AddFaceData(vertices []VertexIndex, faceData F, edgeData E, halfEdgeData HE) FaceIndex {
	n := len(vertices)
	if !m.shape.allows(n) {
		return InvalidFace
	}

	// screen the input: valid, unique, and all-isolated detection
	m.seen.ClearAll()
	allIsolated := true
	for _, v := range vertices {
		if !m.IsValidVertex(v) || m.seen.Test(uint(v)) {
			return InvalidFace
		}
		m.seen.Set(uint(v))
		if allIsolated && !m.IsIsolated(v) {
			allIsolated = false
		}
	}

	inner := make([]HalfEdgeIndex, n)

	// fast path, nothing to validate or repair
	if allIsolated {
		for i, v := range vertices {
			inner[i] = m.allocEdge(v, vertices[(i+1)%n], halfEdgeData, edgeData)
		}
		for i := range vertices {
			m.stitchNewNew(inner[i], inner[(i+1)%n], vertices[(i+1)%n])
		}
		return m.attachFace(inner, faceData)
	}

	isNew := make([]bool, n)
	makeAdj := make([]bool, n)
	freeHE := make([]HalfEdgeIndex, n)

	for i, v := range vertices {
		he, fresh, ok := m.classifyEdge(v, vertices[(i+1)%n])
		if !ok {
			return InvalidFace
		}
		inner[i], isNew[i] = he, fresh
	}
	for i := range vertices {
		j := (i + 1) % n
		adj, free, ok := m.planAdjacency(inner[i], inner[j], isNew[i], isNew[j], m.IsIsolated(vertices[j]))
		if !ok {
			return InvalidFace
		}
		makeAdj[i], freeHE[i] = adj, free
	}

	// from here on the insertion cannot fail anymore

	if !m.manifold {
		for i := range vertices {
			if makeAdj[i] {
				m.spliceAdjacent(inner[i], inner[(i+1)%n], freeHE[i])
			}
		}
	}

	for i, v := range vertices {
		if isNew[i] {
			inner[i] = m.allocEdge(v, vertices[(i+1)%n], halfEdgeData, edgeData)
		}
	}

	for i := range vertices {
		j := (i + 1) % n
		switch {
		case isNew[i] && isNew[j]:
			m.stitchNewNew(inner[i], inner[j], vertices[j])
		case isNew[i] && !isNew[j]:
			m.stitchNewOld(inner[i], inner[j], vertices[j])
		case !isNew[i] && isNew[j]:
			m.stitchOldNew(inner[i], inner[j], vertices[j])
		default:
			m.stitchOldOld(inner[i], inner[j], vertices[j])
		}
	}

	return m.attachFace(inner, faceData)
}

// allocEdge appends the half-edge pair a->b, b->a and the payload slots
// and returns the index of a->b. The pair is unlinked, stitching is the
// caller's business.
func (m *Mesh[V, HE, E, F]) allocEdge(a, b VertexIndex, halfEdgeData HE, edgeData E) HalfEdgeIndex {
	m.halfEdges = append(m.halfEdges, newHalfEdge(b), newHalfEdge(a))
	if m.hasHalfEdgeData {
		m.halfEdgeData = append(m.halfEdgeData, halfEdgeData, halfEdgeData)
	}
	if m.hasEdgeData {
		m.edgeData = append(m.edgeData, edgeData)
	}
	return HalfEdgeIndex(len(m.halfEdges) - 2)
}

// classifyEdge decides whether the half-edge a->b already exists.
// It returns the existing half-edge (invalid if new) and ok=false if no
// face may be attached along a->b at all: a has no boundary slot, or
// the edge exists and already carries a face.
func (m *Mesh[V, HE, E, F]) classifyEdge(a, b VertexIndex) (he HalfEdgeIndex, isNew, ok bool) {
	if m.IsIsolated(a) {
		return InvalidHalfEdge, true, true
	}

	out := m.OutgoingHalfEdge(a)

	// outgoing rests on the boundary whenever a boundary exists, a
	// non-boundary outgoing means the vertex is fully surrounded
	if !m.IsBoundaryHalfEdge(out) {
		return InvalidHalfEdge, false, false
	}

	if m.manifold {
		// single fan, one lookup suffices
		if m.TerminatingVertex(out) == b {
			return out, false, true
		}
		return InvalidHalfEdge, true, true
	}

	// non-manifold: a->b may hide anywhere in the one-ring of a
	circ := m.VertexAroundVertexCirculatorFromHalfEdge(out)
	end := circ
	for {
		if circ.TargetIndex() == b {
			he = circ.CurrentHalfEdge()
			if !m.IsBoundaryHalfEdge(he) {
				return InvalidHalfEdge, false, false
			}
			return he, false, true
		}
		circ.Next()
		if circ == end {
			return InvalidHalfEdge, true, true
		}
	}
}

// planAdjacency checks whether the two half-edges meeting at their
// shared vertex b can be made consecutive. In a manifold mesh two new
// edges at a connected vertex would pinch it, ok=false. In a
// non-manifold mesh two pre-existing half-edges that are not yet
// consecutive need a fan re-threading: makeAdj is set and free names
// the boundary half-edge that re-hosts the displaced fan segment;
// ok=false if the search for a free slot wraps around to ab itself,
// the fans at b would detach.
func (m *Mesh[V, HE, E, F]) planAdjacency(ab, bc HalfEdgeIndex, isNewAB, isNewBC, isolatedB bool) (makeAdj bool, free HalfEdgeIndex, ok bool) {
	if m.manifold {
		if isNewAB && isNewBC && !isolatedB {
			return false, InvalidHalfEdge, false
		}
		return false, InvalidHalfEdge, true
	}

	// re-threading is only ever needed between two old half-edges
	if isNewAB || isNewBC {
		return false, InvalidHalfEdge, true
	}
	if m.Next(ab) == bc {
		return false, InvalidHalfEdge, true
	}

	// rotate the incoming half-edges at b until a boundary one turns
	// up, that is the free slot; the search stays inside the ring and
	// terminates at ab at the latest, ab is boundary
	circ := m.IncomingHalfEdgeAroundVertexCirculatorFromHalfEdge(bc.Opposite())
	for {
		circ.Next()
		if m.IsBoundaryHalfEdge(circ.TargetIndex()) {
			break
		}
	}
	free = circ.TargetIndex()
	if free == ab {
		return true, free, false
	}
	return true, free, true
}

// spliceAdjacent re-threads the cycles at the shared vertex of ab and
// bc so that bc follows ab, using the free boundary half-edge to
// re-host the fan segment displaced between them. All faces survive,
// only boundary linkage moves.
func (m *Mesh[V, HE, E, F]) spliceAdjacent(ab, bc, free HalfEdgeIndex) {
	abNext := m.Next(ab)
	bcPrev := m.Prev(bc)
	freeNext := m.Next(free)

	m.link(ab, bc)
	m.link(free, abNext)
	m.link(bcPrev, freeNext)
}

// ########## the four stitchers ##########
//
// Stitching links the inner side (ab->bc) and repairs the boundary side
// around the shared vertex b. Which pointers move depends on which of
// the two half-edges was just allocated.

// stitchNewNew, both half-edges are new.
func (m *Mesh[V, HE, E, F]) stitchNewNew(ab, bc HalfEdgeIndex, b VertexIndex) {
	ba := ab.Opposite()
	cb := bc.Opposite()

	if m.manifold || m.IsIsolated(b) {
		m.link(ab, bc)
		m.link(cb, ba)
		m.setOutgoing(b, ba)
		return
	}

	// splice the new boundary segment into the existing boundary
	// cycle at b
	bOut := m.OutgoingHalfEdge(b)
	bOutPrev := m.Prev(bOut)

	m.link(ab, bc)
	m.link(cb, bOut)
	m.link(bOutPrev, ba)
}

// stitchNewOld, ab is new, bc exists.
func (m *Mesh[V, HE, E, F]) stitchNewOld(ab, bc HalfEdgeIndex, b VertexIndex) {
	ba := ab.Opposite()
	bcPrev := m.Prev(bc)

	m.link(ab, bc)
	m.link(bcPrev, ba)

	m.setOutgoing(b, ba)
}

// stitchOldNew, ab exists, bc is new.
func (m *Mesh[V, HE, E, F]) stitchOldNew(ab, bc HalfEdgeIndex, b VertexIndex) {
	cb := bc.Opposite()
	abNext := m.Next(ab)

	m.link(ab, bc)
	m.link(cb, abNext)

	m.setOutgoing(b, abNext)
}

// stitchOldOld, both half-edges exist. In a manifold mesh they are
// already consecutive and nothing moves. In a non-manifold mesh the
// outgoing slot of b is re-hosted on another boundary half-edge if bc
// held it, bc becomes interior now; with no boundary left at b the
// slot keeps its value.
func (m *Mesh[V, HE, E, F]) stitchOldOld(_, bc HalfEdgeIndex, b VertexIndex) {
	if m.manifold {
		return
	}
	if m.OutgoingHalfEdge(b) != bc {
		return
	}

	circ := m.OutgoingHalfEdgeAroundVertexCirculatorFromHalfEdge(bc)
	end := circ
	for {
		circ.Next()
		if circ == end {
			return
		}
		if m.IsBoundaryHalfEdge(circ.TargetIndex()) {
			m.setOutgoing(b, circ.TargetIndex())
			return
		}
	}
}

// attachFace appends the face record, stamps the inner half-edges and
// appends the face payload.
func (m *Mesh[V, HE, E, F]) attachFace(inner []HalfEdgeIndex, faceData F) FaceIndex {
	m.faces = append(m.faces, newFace(inner[len(inner)-1]))
	if m.hasFaceData {
		m.faceData = append(m.faceData, faceData)
	}

	f := FaceIndex(len(m.faces) - 1)
	for _, h := range inner {
		m.he(h).face = f
	}
	return f
}
