// Copyright (c) 2024 lishulincug
// SPDX-License-Identifier: MIT

package halfedge

import "testing"

type nd = NoData

func newMesh(manifold bool) *Mesh[nd, nd, nd, nd] {
	return NewPolygonMesh[nd, nd, nd, nd](manifold)
}

func addVertices(m *Mesh[nd, nd, nd, nd], n int) []VertexIndex {
	vs := make([]VertexIndex, n)
	for i := range vs {
		vs[i] = m.AddVertex(nd{})
	}
	return vs
}

func mustAddFace(t *testing.T, m *Mesh[nd, nd, nd, nd], vs ...VertexIndex) FaceIndex {
	t.Helper()
	f := m.AddFace(vs)
	if !f.IsValid() {
		t.Fatalf("AddFace(%v) rejected\n%s", vs, m.DumpString())
	}
	requireConsistent(t, m)
	return f
}

func requireConsistent(t *testing.T, m *Mesh[nd, nd, nd, nd]) {
	t.Helper()
	if err := m.checkConsistency(); err != nil {
		t.Fatalf("mesh inconsistent: %v\n%s", err, m.DumpString())
	}
}

func countLiveVertices(m *Mesh[nd, nd, nd, nd]) int {
	n := 0
	for range m.Vertices() {
		n++
	}
	return n
}

func countLiveEdges(m *Mesh[nd, nd, nd, nd]) int {
	n := 0
	for range m.Edges() {
		n++
	}
	return n
}

func countLiveFaces(m *Mesh[nd, nd, nd, nd]) int {
	n := 0
	for range m.Faces() {
		n++
	}
	return n
}

func vertexDegree(m *Mesh[nd, nd, nd, nd], v VertexIndex) int {
	n := 0
	for range m.VerticesAroundVertex(v) {
		n++
	}
	return n
}

func TestEmptyMesh(t *testing.T) {
	t.Parallel()
	m := newMesh(true)

	if !m.Empty() || !m.EmptyVertices() || !m.EmptyEdges() || !m.EmptyFaces() {
		t.Error("new mesh not empty")
	}
	if m.SizeVertices() != 0 || m.SizeHalfEdges() != 0 || m.SizeEdges() != 0 || m.SizeFaces() != 0 {
		t.Error("new mesh has non-zero sizes")
	}
	requireConsistent(t, m)
}

func TestAddVertex(t *testing.T) {
	t.Parallel()
	m := newMesh(true)

	for i := range 5 {
		v := m.AddVertex(nd{})
		if v != VertexIndex(i) {
			t.Errorf("AddVertex = %s, want V%d", v, i)
		}
		if !m.IsValidVertex(v) {
			t.Errorf("fresh vertex %s invalid", v)
		}
		if !m.IsIsolated(v) {
			t.Errorf("fresh vertex %s not isolated", v)
		}
	}

	if m.SizeVertices() != 5 {
		t.Errorf("SizeVertices = %d, want 5", m.SizeVertices())
	}
	if m.Empty() {
		t.Error("mesh with vertices reports empty")
	}
	requireConsistent(t, m)
}

func TestIsValidBounds(t *testing.T) {
	t.Parallel()
	m := newMesh(false)
	vs := addVertices(m, 3)
	mustAddFace(t, m, vs...)

	if m.IsValidVertex(InvalidVertex) || m.IsValidVertex(3) {
		t.Error("vertex bounds check broken")
	}
	if m.IsValidHalfEdge(InvalidHalfEdge) || m.IsValidHalfEdge(6) {
		t.Error("half-edge bounds check broken")
	}
	if m.IsValidEdge(InvalidEdge) || m.IsValidEdge(3) {
		t.Error("edge bounds check broken")
	}
	if m.IsValidFace(InvalidFace) || m.IsValidFace(1) {
		t.Error("face bounds check broken")
	}
}

func TestReserve(t *testing.T) {
	t.Parallel()
	m := newMesh(true)
	m.ReserveVertices(100)
	m.ReserveEdges(300)
	m.ReserveFaces(200)

	if m.SizeVertices() != 0 || m.SizeEdges() != 0 || m.SizeFaces() != 0 {
		t.Error("reserve changed the lengths")
	}

	vs := addVertices(m, 3)
	mustAddFace(t, m, vs...)
}

func TestResize(t *testing.T) {
	t.Parallel()
	m := newMesh(false)

	m.ResizeVertices(4, nd{})
	if m.SizeVertices() != 4 {
		t.Fatalf("SizeVertices = %d, want 4", m.SizeVertices())
	}
	for i := range 4 {
		if !m.IsIsolated(VertexIndex(i)) {
			t.Errorf("resized vertex V%d not isolated", i)
		}
	}

	m.ResizeEdges(3, nd{}, nd{})
	if m.SizeHalfEdges() != 6 || m.SizeEdges() != 3 {
		t.Fatalf("SizeHalfEdges = %d, SizeEdges = %d, want 6, 3", m.SizeHalfEdges(), m.SizeEdges())
	}
	for i := range 6 {
		if !m.IsDeletedHalfEdge(HalfEdgeIndex(i)) {
			t.Errorf("resized half-edge H%d not tombstoned", i)
		}
	}

	m.ResizeFaces(2, nd{})
	if m.SizeFaces() != 2 {
		t.Fatalf("SizeFaces = %d, want 2", m.SizeFaces())
	}
	for i := range 2 {
		if !m.IsDeletedFace(FaceIndex(i)) {
			t.Errorf("resized face F%d not tombstoned", i)
		}
	}

	requireConsistent(t, m)

	// resized filler is dropped by compaction
	m.CleanUp()
	if !m.Empty() {
		t.Errorf("mesh not empty after CleanUp:\n%s", m.DumpString())
	}

	// shrinking truncates
	m.ResizeVertices(4, nd{})
	m.ResizeVertices(1, nd{})
	if m.SizeVertices() != 1 {
		t.Errorf("SizeVertices = %d, want 1", m.SizeVertices())
	}
}

func TestClear(t *testing.T) {
	t.Parallel()
	m := newMesh(true)
	vs := addVertices(m, 4)
	mustAddFace(t, m, vs[0], vs[1], vs[2])

	m.Clear()
	if !m.Empty() {
		t.Error("mesh not empty after Clear")
	}
	requireConsistent(t, m)

	// the mesh stays usable
	vs = addVertices(m, 3)
	mustAddFace(t, m, vs...)
}

func TestConnectivityQueries(t *testing.T) {
	t.Parallel()
	m := newMesh(true)
	vs := addVertices(m, 3)
	f := mustAddFace(t, m, vs...)

	inner := m.InnerHalfEdge(f)
	if m.Face(inner) != f {
		t.Errorf("Face(InnerHalfEdge(%s)) = %s", f, m.Face(inner))
	}
	if outer := m.OuterHalfEdge(f); outer != inner.Opposite() {
		t.Errorf("OuterHalfEdge = %s, want %s", outer, inner.Opposite())
	}
	if m.OppositeFace(m.OuterHalfEdge(f)) != f {
		t.Error("OppositeFace(outer) != face")
	}

	for _, v := range vs {
		out := m.OutgoingHalfEdge(v)
		if m.OriginatingVertex(out) != v {
			t.Errorf("outgoing of %s originates at %s", v, m.OriginatingVertex(out))
		}
		if m.IncomingHalfEdge(v) != out.Opposite() {
			t.Errorf("IncomingHalfEdge(%s) != Opposite(outgoing)", v)
		}
		if m.TerminatingVertex(m.IncomingHalfEdge(v)) != v {
			t.Errorf("incoming of %s terminates at %s", v, m.TerminatingVertex(m.IncomingHalfEdge(v)))
		}
	}

	// next/prev are inverse around the face
	h := inner
	for range 3 {
		if m.Prev(m.Next(h)) != h {
			t.Errorf("prev(next(%s)) = %s", h, m.Prev(m.Next(h)))
		}
		h = m.Next(h)
	}
	if h != inner {
		t.Errorf("triangle cycle does not close after 3 steps")
	}
}
