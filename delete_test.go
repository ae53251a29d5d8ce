// Copyright (c) 2024 lishulincug
// SPDX-License-Identifier: MIT

package halfedge

import "testing"

// buildFan adds v0..v4 and three triangles around v0.
func buildFan(t *testing.T, m *Mesh[nd, nd, nd, nd]) ([]VertexIndex, []FaceIndex) {
	t.Helper()
	vs := addVertices(m, 5)
	fs := []FaceIndex{
		mustAddFace(t, m, vs[0], vs[1], vs[2]),
		mustAddFace(t, m, vs[0], vs[2], vs[3]),
		mustAddFace(t, m, vs[0], vs[3], vs[4]),
	}
	return vs, fs
}

// buildTetrahedron adds four vertices and the four faces of a closed
// tetrahedron.
func buildTetrahedron(t *testing.T, m *Mesh[nd, nd, nd, nd]) ([]VertexIndex, []FaceIndex) {
	t.Helper()
	vs := addVertices(m, 4)
	fs := []FaceIndex{
		mustAddFace(t, m, vs[0], vs[1], vs[2]),
		mustAddFace(t, m, vs[1], vs[0], vs[3]),
		mustAddFace(t, m, vs[2], vs[1], vs[3]),
		mustAddFace(t, m, vs[0], vs[2], vs[3]),
	}
	return vs, fs
}

func TestDeleteFaceFanNonManifold(t *testing.T) {
	t.Parallel()

	m := newMesh(false)
	vs, fs := buildFan(t, m)

	// the middle face goes alone, v0 gains a second hole
	m.DeleteFace(fs[1])
	requireConsistent(t, m)

	if !m.IsDeletedFace(fs[1]) {
		t.Error("middle face not tombstoned")
	}
	if countLiveFaces(m) != 2 {
		t.Fatalf("live faces = %d, want 2", countLiveFaces(m))
	}
	if countLiveEdges(m) != 6 {
		t.Errorf("live edges = %d, want 6", countLiveEdges(m))
	}
	if !m.IsBoundaryVertex(vs[0]) {
		t.Error("fan center not boundary anymore")
	}
	if m.IsManifoldVertex(vs[0]) {
		t.Error("center with two holes reports manifold")
	}
}

func TestDeleteFaceFanManifoldCascade(t *testing.T) {
	t.Parallel()

	m := newMesh(true)
	vs, fs := buildFan(t, m)

	// deleting the middle face would pinch v0, the cascade takes a
	// neighboring face with it until one fan remains
	m.DeleteFace(fs[1])
	requireConsistent(t, m)

	if countLiveFaces(m) != 1 {
		t.Fatalf("live faces = %d, want 1\n%s", countLiveFaces(m), m.DumpString())
	}
	if !m.IsDeletedFace(fs[1]) || !m.IsDeletedFace(fs[0]) {
		t.Error("cascade did not take the first wing")
	}
	if m.IsDeletedFace(fs[2]) {
		t.Error("cascade took the last wing as well")
	}
	if !m.IsBoundaryVertex(vs[0]) {
		t.Error("center not boundary")
	}

	// v1 and v2 lost their last edge
	if !m.IsDeletedVertex(vs[1]) || !m.IsDeletedVertex(vs[2]) {
		t.Error("orphaned wing vertices not tombstoned")
	}
}

func TestDeleteFaceTetrahedron(t *testing.T) {
	t.Parallel()

	m := newMesh(true)
	vs, fs := buildTetrahedron(t, m)

	// opening a closed surface never cascades
	m.DeleteFace(fs[0])
	requireConsistent(t, m)

	if countLiveFaces(m) != 3 {
		t.Fatalf("live faces = %d, want 3", countLiveFaces(m))
	}
	if countLiveEdges(m) != 6 {
		t.Errorf("live edges = %d, want 6", countLiveEdges(m))
	}

	boundaryEdges := 0
	for e := range m.Edges() {
		if m.IsBoundaryEdge(e) {
			boundaryEdges++
		}
	}
	if boundaryEdges != 3 {
		t.Errorf("boundary edges = %d, want 3", boundaryEdges)
	}

	// the face vertices open up, the apex keeps its full fan
	for _, v := range vs[:3] {
		if !m.IsBoundaryVertex(v) {
			t.Errorf("%s not boundary after opening the surface", v)
		}
	}
	if m.IsBoundaryVertex(vs[3]) {
		t.Error("apex boundary despite its closed fan")
	}

	// a second face: still no cascade, two triangles with one shared
	// edge remain
	m.DeleteFace(fs[2])
	requireConsistent(t, m)

	if countLiveFaces(m) != 2 {
		t.Fatalf("live faces = %d, want 2\n%s", countLiveFaces(m), m.DumpString())
	}
	if countLiveEdges(m) != 5 {
		t.Errorf("live edges = %d, want 5", countLiveEdges(m))
	}

	interior := 0
	for e := range m.Edges() {
		if !m.IsBoundaryEdge(e) {
			interior++
		}
	}
	if interior != 1 {
		t.Errorf("interior edges = %d, want 1", interior)
	}

	m.CleanUp()
	requireConsistent(t, m)
	if m.SizeVertices() != 4 || m.SizeEdges() != 5 || m.SizeHalfEdges() != 10 || m.SizeFaces() != 2 {
		t.Errorf("sizes after CleanUp V=%d E=%d H=%d F=%d, want 4/5/10/2",
			m.SizeVertices(), m.SizeEdges(), m.SizeHalfEdges(), m.SizeFaces())
	}
}

func TestDeleteFaceIdempotent(t *testing.T) {
	t.Parallel()

	m := newMesh(true)
	vs := addVertices(m, 3)
	f := mustAddFace(t, m, vs...)

	m.DeleteFace(f)
	requireConsistent(t, m)
	before := m.DumpString()

	m.DeleteFace(f)
	if after := m.DumpString(); after != before {
		t.Error("second DeleteFace changed the mesh")
	}
}

func TestDeleteLastFaceClearsEverything(t *testing.T) {
	t.Parallel()

	for _, manifold := range []bool{true, false} {
		m := newMesh(manifold)
		vs := addVertices(m, 3)
		f := mustAddFace(t, m, vs...)

		m.DeleteFace(f)
		requireConsistent(t, m)

		// all edges lost their only face, all vertices their edges
		if n := countLiveEdges(m); n != 0 {
			t.Errorf("manifold=%t: live edges = %d, want 0", manifold, n)
		}
		if n := countLiveVertices(m); n != 0 {
			t.Errorf("manifold=%t: live vertices = %d, want 0", manifold, n)
		}

		m.CleanUp()
		if !m.Empty() {
			t.Errorf("manifold=%t: mesh not empty after CleanUp:\n%s", manifold, m.DumpString())
		}
	}
}

func TestDeleteEdgeInterior(t *testing.T) {
	t.Parallel()

	m := newMesh(true)
	vs := addVertices(m, 4)
	mustAddFace(t, m, vs[0], vs[1], vs[2])
	mustAddFace(t, m, vs[2], vs[1], vs[3])

	shared := InvalidEdge
	for e := range m.Edges() {
		if !m.IsBoundaryEdge(e) {
			shared = e
		}
	}
	if !shared.IsValid() {
		t.Fatal("no interior edge in the strip")
	}

	// both faces hang on the shared edge, everything goes
	m.DeleteEdge(shared)
	requireConsistent(t, m)

	if n := countLiveFaces(m); n != 0 {
		t.Errorf("live faces = %d, want 0", n)
	}
	if n := countLiveEdges(m); n != 0 {
		t.Errorf("live edges = %d, want 0", n)
	}

	m.CleanUp()
	if !m.Empty() {
		t.Errorf("mesh not empty after CleanUp:\n%s", m.DumpString())
	}
}

func TestDeleteEdgeByHalfEdge(t *testing.T) {
	t.Parallel()

	m := newMesh(true)
	vs, fs := buildTetrahedron(t, m)
	_ = vs

	h := m.InnerHalfEdge(fs[0])
	m.DeleteEdgeByHalfEdge(h)
	requireConsistent(t, m)

	// the edge carried two faces, both are gone
	if n := countLiveFaces(m); n != 2 {
		t.Errorf("live faces = %d, want 2", n)
	}
	if !m.IsDeletedHalfEdge(h) || !m.IsDeletedHalfEdge(h.Opposite()) {
		t.Error("deleted edge half-edges still live")
	}

	// no-op on the tombstone
	before := m.DumpString()
	m.DeleteEdgeByHalfEdge(h)
	if m.DumpString() != before {
		t.Error("second delete changed the mesh")
	}
}

func TestDeleteVertexIsolated(t *testing.T) {
	t.Parallel()

	m := newMesh(true)
	v := m.AddVertex(nd{})

	m.DeleteVertex(v)
	if !m.IsDeletedVertex(v) {
		t.Error("isolated vertex not tombstoned")
	}
	requireConsistent(t, m)

	// no-op the second time
	m.DeleteVertex(v)
	if m.SizeVertices() != 1 {
		t.Errorf("SizeVertices = %d, want 1", m.SizeVertices())
	}
}

func TestDeleteVertexConnected(t *testing.T) {
	t.Parallel()

	for _, manifold := range []bool{true, false} {
		m := newMesh(manifold)
		vs, _ := buildFan(t, m)

		// the center takes the whole fan with it
		m.DeleteVertex(vs[0])
		requireConsistent(t, m)

		if !m.IsDeletedVertex(vs[0]) {
			t.Errorf("manifold=%t: center not tombstoned", manifold)
		}
		if n := countLiveFaces(m); n != 0 {
			t.Errorf("manifold=%t: live faces = %d, want 0", manifold, n)
		}
		if n := countLiveEdges(m); n != 0 {
			t.Errorf("manifold=%t: live edges = %d, want 0", manifold, n)
		}
	}
}

func TestDeleteVertexCorner(t *testing.T) {
	t.Parallel()

	m := newMesh(true)
	vs := addVertices(m, 4)
	mustAddFace(t, m, vs[0], vs[1], vs[2])
	mustAddFace(t, m, vs[2], vs[1], vs[3])

	// v0 sits on one face only
	m.DeleteVertex(vs[0])
	requireConsistent(t, m)

	if n := countLiveFaces(m); n != 1 {
		t.Fatalf("live faces = %d, want 1", n)
	}
	if m.IsDeletedVertex(vs[1]) || m.IsDeletedVertex(vs[2]) || m.IsDeletedVertex(vs[3]) {
		t.Error("surviving face lost a vertex")
	}

	m.CleanUp()
	requireConsistent(t, m)
	if m.SizeVertices() != 3 || m.SizeEdges() != 3 || m.SizeFaces() != 1 {
		t.Errorf("sizes V=%d E=%d F=%d, want 3/3/1",
			m.SizeVertices(), m.SizeEdges(), m.SizeFaces())
	}
}
