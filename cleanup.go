// Copyright (c) 2024 lishulincug
// SPDX-License-Identifier: MIT

package halfedge

// CleanUp removes all tombstoned elements and their payloads, isolated
// vertices included, and rewrites every cross-reference. One linear
// pass per arena.
//
// All indices handed out before the call are stale afterwards.
// Capacity is retained, only the lengths shrink.
func (m *Mesh[V, HE, E, F]) CleanUp() {
	vertexMap := compact(&m.vertices, m.vertexData, m.hasVertexData,
		func(v *vertex) bool { return !v.outgoing.IsValid() }, InvalidVertex)
	halfEdgeMap := compact(&m.halfEdges, m.halfEdgeData, m.hasHalfEdgeData,
		func(h *halfEdge) bool { return !h.terminating.IsValid() }, InvalidHalfEdge)
	faceMap := compact(&m.faces, m.faceData, m.hasFaceData,
		func(f *face) bool { return !f.inner.IsValid() }, InvalidFace)

	if m.hasVertexData {
		m.vertexData = shrink(m.vertexData, len(m.vertices))
	}
	if m.hasHalfEdgeData {
		m.halfEdgeData = shrink(m.halfEdgeData, len(m.halfEdges))
	}
	if m.hasFaceData {
		m.faceData = shrink(m.faceData, len(m.faces))
	}

	// the edge payload follows the half-edge map in pairs, an edge
	// survives iff the first half-edge of its pair does
	if m.hasEdgeData {
		w := 0
		for i := 0; i < len(halfEdgeMap); i += 2 {
			if halfEdgeMap[i].IsValid() {
				m.edgeData[w] = m.edgeData[i/2]
				w++
			}
		}
		m.edgeData = shrink(m.edgeData, w)
	}

	// rewrite the surviving cross-references through the old->new maps
	for i := range m.vertices {
		v := &m.vertices[i]
		if v.outgoing.IsValid() {
			v.outgoing = halfEdgeMap[v.outgoing]
		}
	}
	for i := range m.halfEdges {
		h := &m.halfEdges[i]
		h.terminating = vertexMap[h.terminating]
		h.next = halfEdgeMap[h.next]
		h.prev = halfEdgeMap[h.prev]
		if h.face.IsValid() {
			h.face = faceMap[h.face]
		}
	}
	for i := range m.faces {
		m.faces[i].inner = halfEdgeMap[m.faces[i].inner]
	}
}

// compact moves the live elements of the arena to the front, in order,
// and truncates it. The returned map holds the new index at each old
// position, invalid at tombstones. The payload buffer is compacted in
// lock-step when present.
func compact[Elem, Data any, Idx ~int32](elems *[]Elem, data []Data, hasData bool, deleted func(*Elem) bool, invalid Idx) []Idx {
	arena := *elems
	remap := make([]Idx, len(arena))

	w := 0
	for i := range arena {
		if deleted(&arena[i]) {
			remap[i] = invalid
			continue
		}
		remap[i] = Idx(w)
		arena[w] = arena[i]
		if hasData {
			data[w] = data[i]
		}
		w++
	}

	clear(arena[w:])
	*elems = arena[:w]
	return remap
}

// shrink truncates s to n, zeroing the dropped tail so payloads do not
// pin garbage.
func shrink[T any](s []T, n int) []T {
	clear(s[n:])
	return s[:n]
}
