// Copyright (c) 2024 lishulincug
// SPDX-License-Identifier: MIT

package halfedge

import "iter"

// Range-over-func adapters. The arena iterators skip tombstones, the
// neighborhood iterators wrap the circulators and skip the invalid
// hole/boundary slots. Like the circulators they must not overlap a
// mutating operation.

// Vertices returns an iterator over all live vertex indices.
func (m *Mesh[V, HE, E, F]) Vertices() iter.Seq[VertexIndex] {
	return func(yield func(VertexIndex) bool) {
		for i := range m.vertices {
			v := VertexIndex(i)
			if m.IsDeletedVertex(v) {
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

// HalfEdges returns an iterator over all live half-edge indices.
func (m *Mesh[V, HE, E, F]) HalfEdges() iter.Seq[HalfEdgeIndex] {
	return func(yield func(HalfEdgeIndex) bool) {
		for i := range m.halfEdges {
			h := HalfEdgeIndex(i)
			if m.IsDeletedHalfEdge(h) {
				continue
			}
			if !yield(h) {
				return
			}
		}
	}
}

// Edges returns an iterator over all live edge indices.
func (m *Mesh[V, HE, E, F]) Edges() iter.Seq[EdgeIndex] {
	return func(yield func(EdgeIndex) bool) {
		for i := 0; i < len(m.halfEdges); i += 2 {
			e := HalfEdgeIndex(i).Edge()
			if m.IsDeletedEdge(e) {
				continue
			}
			if !yield(e) {
				return
			}
		}
	}
}

// Faces returns an iterator over all live face indices.
func (m *Mesh[V, HE, E, F]) Faces() iter.Seq[FaceIndex] {
	return func(yield func(FaceIndex) bool) {
		for i := range m.faces {
			f := FaceIndex(i)
			if m.IsDeletedFace(f) {
				continue
			}
			if !yield(f) {
				return
			}
		}
	}
}

// VerticesAroundVertex returns an iterator over the one-ring neighbor
// vertices of v. Empty for an isolated vertex.
func (m *Mesh[V, HE, E, F]) VerticesAroundVertex(v VertexIndex) iter.Seq[VertexIndex] {
	return func(yield func(VertexIndex) bool) {
		if m.IsIsolated(v) {
			return
		}
		circ := m.VertexAroundVertexCirculator(v)
		end := circ
		for {
			if !yield(circ.TargetIndex()) {
				return
			}
			circ.Next()
			if circ == end {
				return
			}
		}
	}
}

// OutgoingHalfEdgesAroundVertex returns an iterator over the outgoing
// half-edges of v. Empty for an isolated vertex.
func (m *Mesh[V, HE, E, F]) OutgoingHalfEdgesAroundVertex(v VertexIndex) iter.Seq[HalfEdgeIndex] {
	return func(yield func(HalfEdgeIndex) bool) {
		if m.IsIsolated(v) {
			return
		}
		circ := m.OutgoingHalfEdgeAroundVertexCirculator(v)
		end := circ
		for {
			if !yield(circ.TargetIndex()) {
				return
			}
			circ.Next()
			if circ == end {
				return
			}
		}
	}
}

// IncomingHalfEdgesAroundVertex returns an iterator over the incoming
// half-edges of v. Empty for an isolated vertex.
func (m *Mesh[V, HE, E, F]) IncomingHalfEdgesAroundVertex(v VertexIndex) iter.Seq[HalfEdgeIndex] {
	return func(yield func(HalfEdgeIndex) bool) {
		if m.IsIsolated(v) {
			return
		}
		circ := m.IncomingHalfEdgeAroundVertexCirculator(v)
		end := circ
		for {
			if !yield(circ.TargetIndex()) {
				return
			}
			circ.Next()
			if circ == end {
				return
			}
		}
	}
}

// FacesAroundVertex returns an iterator over the faces incident to v,
// holes skipped. Empty for an isolated vertex.
func (m *Mesh[V, HE, E, F]) FacesAroundVertex(v VertexIndex) iter.Seq[FaceIndex] {
	return func(yield func(FaceIndex) bool) {
		if m.IsIsolated(v) {
			return
		}
		circ := m.FaceAroundVertexCirculator(v)
		end := circ
		for {
			if f := circ.TargetIndex(); f.IsValid() {
				if !yield(f) {
					return
				}
			}
			circ.Next()
			if circ == end {
				return
			}
		}
	}
}

// VerticesAroundFace returns an iterator over the vertices of f.
func (m *Mesh[V, HE, E, F]) VerticesAroundFace(f FaceIndex) iter.Seq[VertexIndex] {
	return func(yield func(VertexIndex) bool) {
		circ := m.VertexAroundFaceCirculator(f)
		end := circ
		for {
			if !yield(circ.TargetIndex()) {
				return
			}
			circ.Next()
			if circ == end {
				return
			}
		}
	}
}

// InnerHalfEdgesAroundFace returns an iterator over the inner
// half-edges of f.
func (m *Mesh[V, HE, E, F]) InnerHalfEdgesAroundFace(f FaceIndex) iter.Seq[HalfEdgeIndex] {
	return func(yield func(HalfEdgeIndex) bool) {
		circ := m.InnerHalfEdgeAroundFaceCirculator(f)
		end := circ
		for {
			if !yield(circ.TargetIndex()) {
				return
			}
			circ.Next()
			if circ == end {
				return
			}
		}
	}
}

// OuterHalfEdgesAroundFace returns an iterator over the outer
// half-edges of f.
func (m *Mesh[V, HE, E, F]) OuterHalfEdgesAroundFace(f FaceIndex) iter.Seq[HalfEdgeIndex] {
	return func(yield func(HalfEdgeIndex) bool) {
		circ := m.OuterHalfEdgeAroundFaceCirculator(f)
		end := circ
		for {
			if !yield(circ.TargetIndex()) {
				return
			}
			circ.Next()
			if circ == end {
				return
			}
		}
	}
}

// FacesAroundFace returns an iterator over the faces sharing an edge
// with f, boundary edges skipped.
func (m *Mesh[V, HE, E, F]) FacesAroundFace(f FaceIndex) iter.Seq[FaceIndex] {
	return func(yield func(FaceIndex) bool) {
		circ := m.FaceAroundFaceCirculator(f)
		end := circ
		for {
			if g := circ.TargetIndex(); g.IsValid() {
				if !yield(g) {
					return
				}
			}
			circ.Next()
			if circ == end {
				return
			}
		}
	}
}
