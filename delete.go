// Copyright (c) 2024 lishulincug
// SPDX-License-Identifier: MIT

package halfedge

// DeleteVertex tombstones the vertex and every incident face and edge.
// A no-op on an already deleted vertex, an isolated vertex is
// tombstoned directly. Call CleanUp to reclaim the storage.
func (m *Mesh[V, HE, E, F]) DeleteVertex(v VertexIndex) {
	if m.IsDeletedVertex(v) {
		return
	}
	if m.IsIsolated(v) {
		m.markVertexDeleted(v)
		return
	}

	// collect first, the deletions rewire the ring under the cursor
	var faces []FaceIndex
	circ := m.FaceAroundVertexCirculator(v)
	end := circ
	for {
		if f := circ.TargetIndex(); f.IsValid() {
			faces = append(faces, f)
		}
		circ.Next()
		if circ == end {
			break
		}
	}

	for _, f := range faces {
		m.DeleteFace(f)
	}
}

// DeleteEdge tombstones both half-edges of e and deletes the incident
// faces. A no-op on an already deleted edge.
func (m *Mesh[V, HE, E, F]) DeleteEdge(e EdgeIndex) {
	if m.IsDeletedEdge(e) {
		return
	}
	m.DeleteEdgeByHalfEdge(e.HalfEdge(false))
}

// DeleteEdgeByHalfEdge deletes the undirected edge h belongs to, see
// DeleteEdge.
func (m *Mesh[V, HE, E, F]) DeleteEdgeByHalfEdge(h HalfEdgeIndex) {
	if m.IsDeletedHalfEdge(h) {
		return
	}
	o := h.Opposite()

	if m.IsBoundaryHalfEdge(h) {
		m.markHalfEdgeDeleted(h)
	} else {
		m.DeleteFace(m.Face(h))
	}
	if m.IsBoundaryHalfEdge(o) {
		m.markHalfEdgeDeleted(o)
	} else {
		m.DeleteFace(m.Face(o))
	}
}

// DeleteFace tombstones the face and repairs the half-edge cycles
// around it. Edges that lose both faces vanish, vertices that lose
// their last edge vanish with them.
//
// In a manifold mesh the deletion cascades: if removing the face would
// pinch a vertex, the neighboring faces are deleted as well until
// every vertex is back to a single fan.
func (m *Mesh[V, HE, E, F]) DeleteFace(f FaceIndex) {
	if m.IsDeletedFace(f) {
		return
	}

	if !m.manifold {
		m.deleteFaceOne(f, nil)
		return
	}

	stack := []FaceIndex{f}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		stack = m.deleteFaceOne(top, stack)
	}
}

// deleteFaceOne unlinks a single face and returns the cascade stack,
// possibly grown by neighbor faces that must go as well.
func (m *Mesh[V, HE, E, F]) deleteFaceOne(f FaceIndex, stack []FaceIndex) []FaceIndex {
	if m.IsDeletedFace(f) {
		return stack
	}

	// snapshot the inner cycle, the boundary-ness of the outer side
	// and of the corner vertices before any pointer moves; the
	// unstitching below invalidates face fields as it goes and would
	// otherwise mistake its own surgery for a pre-existing hole
	var inner []HalfEdgeIndex
	var outerBoundary []bool
	var cornerBoundary []bool
	circ := m.InnerHalfEdgeAroundFaceCirculator(f)
	end := circ
	for {
		h := circ.TargetIndex()
		inner = append(inner, h)
		outerBoundary = append(outerBoundary, m.IsBoundaryHalfEdge(h.Opposite()))
		cornerBoundary = append(cornerBoundary, m.IsBoundaryVertex(m.TerminatingVertex(h)))
		circ.Next()
		if circ == end {
			break
		}
	}
	if len(inner) < 3 {
		panic("halfedge: face cycle shorter than a triangle, the mesh is corrupt")
	}

	n := len(inner)
	for i := range inner {
		j := (i + 1) % n
		stack = m.unstitch(inner[i], inner[j], outerBoundary[i], outerBoundary[j], cornerBoundary[i], stack)
		m.he(inner[i]).face = InvalidFace
	}
	m.markFaceDeleted(f)

	return stack
}

// unstitch repairs the cycles at the shared vertex b of the two inner
// half-edges ab and bc whose face is going away. baBoundary,
// cbBoundary and bBoundary carry the boundary-ness of the opposite
// half-edges and of b as snapshotted before the deletion started.
func (m *Mesh[V, HE, E, F]) unstitch(ab, bc HalfEdgeIndex, baBoundary, cbBoundary, bBoundary bool, stack []FaceIndex) []FaceIndex {
	ba := ab.Opposite()
	cb := bc.Opposite()
	b := m.TerminatingVertex(ab)

	switch {
	case baBoundary && cbBoundary:
		// ab loses its last face, the edge vanishes
		cbNext := m.Next(cb)
		if cbNext == ba {
			// that was the last edge at b
			m.markVertexDeleted(b)
		} else {
			m.link(m.Prev(ba), cbNext)
			m.setOutgoing(b, cbNext)
		}
		m.markHalfEdgeDeleted(ab)
		m.markHalfEdgeDeleted(ba)

	case baBoundary && !cbBoundary:
		m.link(m.Prev(ba), bc)
		m.setOutgoing(b, bc)
		m.markHalfEdgeDeleted(ab)
		m.markHalfEdgeDeleted(ba)

	case !baBoundary && cbBoundary:
		cbNext := m.Next(cb)
		m.link(ab, cbNext)
		m.setOutgoing(b, cbNext)

	default:
		stack = m.unstitchInterior(bc, cb, b, bBoundary, stack)
	}

	return stack
}

// unstitchInterior handles the case of both edges keeping their other
// face. This is where a manifold mesh detects a pinch: b already
// touched the boundary before this deletion, so opening a second hole
// at b is forbidden and the faces between cb and the existing hole go
// onto the cascade stack. A non-manifold mesh just gains another hole
// at b.
func (m *Mesh[V, HE, E, F]) unstitchInterior(bc, cb HalfEdgeIndex, b VertexIndex, bBoundary bool, stack []FaceIndex) []FaceIndex {
	if !m.manifold {
		if !bBoundary {
			m.setOutgoing(b, bc)
		}
		return stack
	}

	if bBoundary {
		circ := m.IncomingHalfEdgeAroundVertexCirculatorFromHalfEdge(cb)
		for !m.IsBoundaryHalfEdge(circ.TargetIndex()) {
			stack = append(stack, m.Face(circ.TargetIndex()))
			circ.Next()
		}
		return stack
	}

	m.setOutgoing(b, bc)
	return stack
}
