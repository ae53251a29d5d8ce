// Copyright (c) 2024 lishulincug
// SPDX-License-Identifier: MIT

package halfedge

import (
	"reflect"

	"github.com/bits-and-blooms/bitset"
)

// NoData is the payload type for element kinds that carry no user data.
// A mesh instantiated with NoData for a kind keeps no buffer for it and
// all payload operations on that kind are no-ops.
type NoData = struct{}

// Options configure a mesh at construction time.
// The zero value is a non-manifold polygon mesh.
type Options struct {
	// Manifold selects the topological invariant the mesh maintains:
	// with Manifold set, every vertex has at most one boundary fan and
	// mutations preserve that; otherwise vertices may touch any number
	// of holes. Immutable once chosen.
	Manifold bool

	// Shape restricts the vertex count AddFace accepts, see Shape.
	Shape Shape
}

// Mesh is a half-edge mesh with per-element payloads V (vertex),
// HE (half-edge), E (edge) and F (face). Use NoData for kinds without
// payload.
//
// The mesh is a single-threaded mutable structure: at most one mutating
// operation at a time, reads may run concurrently only while no
// mutation runs. Mutations may invalidate outstanding circulators and,
// after CleanUp, all outstanding indices.
type Mesh[V, HE, E, F any] struct {
	manifold bool
	shape    Shape

	hasVertexData   bool
	hasHalfEdgeData bool
	hasEdgeData     bool
	hasFaceData     bool

	vertices  []vertex
	halfEdges []halfEdge
	faces     []face

	vertexData   []V
	halfEdgeData []HE
	edgeData     []E
	faceData     []F

	// scratch for the duplicate-vertex screening in AddFace,
	// reused across calls
	seen *bitset.BitSet
}

// New returns an empty mesh. Payload presence per element kind is
// derived from the type parameters: a kind instantiated with NoData
// stores nothing.
func New[V, HE, E, F any](opts Options) *Mesh[V, HE, E, F] {
	noData := reflect.TypeFor[NoData]()
	return &Mesh[V, HE, E, F]{
		manifold:        opts.Manifold,
		shape:           opts.Shape,
		hasVertexData:   reflect.TypeFor[V]() != noData,
		hasHalfEdgeData: reflect.TypeFor[HE]() != noData,
		hasEdgeData:     reflect.TypeFor[E]() != noData,
		hasFaceData:     reflect.TypeFor[F]() != noData,
		seen:            bitset.New(0),
	}
}

// IsManifoldMesh reports whether the mesh was constructed with the
// manifold invariant.
func (m *Mesh[V, HE, E, F]) IsManifoldMesh() bool { return m.manifold }

// AddVertex appends a new isolated vertex and returns its index.
func (m *Mesh[V, HE, E, F]) AddVertex(data V) VertexIndex {
	m.vertices = append(m.vertices, newVertex())
	if m.hasVertexData {
		m.vertexData = append(m.vertexData, data)
	}
	return VertexIndex(len(m.vertices) - 1)
}

// ########## internal record access ##########

// The accessors below index the arenas directly. An out-of-range or
// invalid index is a programmer error and panics.

func (m *Mesh[V, HE, E, F]) vert(v VertexIndex) *vertex      { return &m.vertices[v] }
func (m *Mesh[V, HE, E, F]) he(h HalfEdgeIndex) *halfEdge    { return &m.halfEdges[h] }
func (m *Mesh[V, HE, E, F]) faceRec(f FaceIndex) *face       { return &m.faces[f] }
func (m *Mesh[V, HE, E, F]) setOutgoing(v VertexIndex, h HalfEdgeIndex) { m.vert(v).outgoing = h }

// link makes b the next half-edge of a and a the previous of b.
func (m *Mesh[V, HE, E, F]) link(a, b HalfEdgeIndex) {
	m.he(a).next = b
	m.he(b).prev = a
}

// ########## tombstoning ##########

func (m *Mesh[V, HE, E, F]) markVertexDeleted(v VertexIndex) {
	m.vert(v).outgoing = InvalidHalfEdge
}

func (m *Mesh[V, HE, E, F]) markHalfEdgeDeleted(h HalfEdgeIndex) {
	m.he(h).terminating = InvalidVertex
}

func (m *Mesh[V, HE, E, F]) markFaceDeleted(f FaceIndex) {
	m.faceRec(f).inner = InvalidHalfEdge
}

// ########## connectivity queries ##########

// OutgoingHalfEdge returns the outgoing half-edge of v, invalid for an
// isolated or deleted vertex. In a non-manifold mesh the slot points to
// a boundary half-edge as long as the vertex touches the boundary; once
// the last hole at the vertex closes it may keep pointing at a half-edge
// that became interior.
func (m *Mesh[V, HE, E, F]) OutgoingHalfEdge(v VertexIndex) HalfEdgeIndex {
	return m.vert(v).outgoing
}

// IncomingHalfEdge returns the opposite of the outgoing half-edge of v.
func (m *Mesh[V, HE, E, F]) IncomingHalfEdge(v VertexIndex) HalfEdgeIndex {
	return m.OutgoingHalfEdge(v).Opposite()
}

// TerminatingVertex returns the vertex the half-edge points to.
func (m *Mesh[V, HE, E, F]) TerminatingVertex(h HalfEdgeIndex) VertexIndex {
	return m.he(h).terminating
}

// OriginatingVertex returns the vertex the half-edge starts from.
func (m *Mesh[V, HE, E, F]) OriginatingVertex(h HalfEdgeIndex) VertexIndex {
	return m.TerminatingVertex(h.Opposite())
}

// Next returns the successor of h around its face or boundary cycle.
func (m *Mesh[V, HE, E, F]) Next(h HalfEdgeIndex) HalfEdgeIndex {
	return m.he(h).next
}

// Prev returns the predecessor of h around its face or boundary cycle.
func (m *Mesh[V, HE, E, F]) Prev(h HalfEdgeIndex) HalfEdgeIndex {
	return m.he(h).prev
}

// Face returns the face of h, invalid for a boundary half-edge.
func (m *Mesh[V, HE, E, F]) Face(h HalfEdgeIndex) FaceIndex {
	return m.he(h).face
}

// OppositeFace returns the face on the other side of h's edge.
func (m *Mesh[V, HE, E, F]) OppositeFace(h HalfEdgeIndex) FaceIndex {
	return m.Face(h.Opposite())
}

// InnerHalfEdge returns a half-edge on the boundary cycle of f,
// invalid for a deleted face.
func (m *Mesh[V, HE, E, F]) InnerHalfEdge(f FaceIndex) HalfEdgeIndex {
	return m.faceRec(f).inner
}

// OuterHalfEdge returns the opposite of the inner half-edge of f.
func (m *Mesh[V, HE, E, F]) OuterHalfEdge(f FaceIndex) HalfEdgeIndex {
	return m.InnerHalfEdge(f).Opposite()
}

// ########## isValid ##########

// IsValidVertex reports whether v indexes into the vertex arena.
func (m *Mesh[V, HE, E, F]) IsValidVertex(v VertexIndex) bool {
	return v >= 0 && int(v) < len(m.vertices)
}

// IsValidHalfEdge reports whether h indexes into the half-edge arena.
func (m *Mesh[V, HE, E, F]) IsValidHalfEdge(h HalfEdgeIndex) bool {
	return h >= 0 && int(h) < len(m.halfEdges)
}

// IsValidEdge reports whether e indexes into the half-edge arena pairs.
func (m *Mesh[V, HE, E, F]) IsValidEdge(e EdgeIndex) bool {
	return e >= 0 && int(e) < len(m.halfEdges)/2
}

// IsValidFace reports whether f indexes into the face arena.
func (m *Mesh[V, HE, E, F]) IsValidFace(f FaceIndex) bool {
	return f >= 0 && int(f) < len(m.faces)
}

// ########## isDeleted ##########

// IsDeletedVertex reports whether v is tombstoned. Before CleanUp this
// cannot be told apart from an isolated vertex, see IsIsolated.
func (m *Mesh[V, HE, E, F]) IsDeletedVertex(v VertexIndex) bool {
	return !m.OutgoingHalfEdge(v).IsValid()
}

// IsDeletedHalfEdge reports whether h is tombstoned.
func (m *Mesh[V, HE, E, F]) IsDeletedHalfEdge(h HalfEdgeIndex) bool {
	return !m.TerminatingVertex(h).IsValid()
}

// IsDeletedEdge reports whether any of the two half-edges of e is
// tombstoned.
func (m *Mesh[V, HE, E, F]) IsDeletedEdge(e EdgeIndex) bool {
	return m.IsDeletedHalfEdge(e.HalfEdge(false)) ||
		m.IsDeletedHalfEdge(e.HalfEdge(true))
}

// IsDeletedFace reports whether f is tombstoned.
func (m *Mesh[V, HE, E, F]) IsDeletedFace(f FaceIndex) bool {
	return !m.InnerHalfEdge(f).IsValid()
}

// ########## isIsolated / isBoundary ##########

// IsIsolated reports whether v has no incident edge.
func (m *Mesh[V, HE, E, F]) IsIsolated(v VertexIndex) bool {
	return !m.OutgoingHalfEdge(v).IsValid()
}

// IsBoundaryVertex reports whether v lies on the boundary. The vertex
// must not be isolated or deleted.
func (m *Mesh[V, HE, E, F]) IsBoundaryVertex(v VertexIndex) bool {
	return m.IsBoundaryHalfEdge(m.OutgoingHalfEdge(v))
}

// IsBoundaryHalfEdge reports whether h has no face.
func (m *Mesh[V, HE, E, F]) IsBoundaryHalfEdge(h HalfEdgeIndex) bool {
	return !m.Face(h).IsValid()
}

// IsBoundaryEdge reports whether any of the two half-edges of e lies on
// the boundary.
func (m *Mesh[V, HE, E, F]) IsBoundaryEdge(e EdgeIndex) bool {
	return m.IsBoundaryHalfEdge(e.HalfEdge(false)) ||
		m.IsBoundaryHalfEdge(e.HalfEdge(true))
}

// IsBoundaryFace reports whether f touches the boundary. With
// checkVertices it checks the face's vertices, otherwise its edges (a
// face can touch a boundary vertex through a fan without having a
// boundary edge itself).
func (m *Mesh[V, HE, E, F]) IsBoundaryFace(f FaceIndex, checkVertices bool) bool {
	if checkVertices {
		circ := m.VertexAroundFaceCirculator(f)
		end := circ
		for {
			if m.IsBoundaryVertex(circ.TargetIndex()) {
				return true
			}
			circ.Next()
			if circ == end {
				return false
			}
		}
	}

	circ := m.OuterHalfEdgeAroundFaceCirculator(f)
	end := circ
	for {
		if m.IsBoundaryHalfEdge(circ.TargetIndex()) {
			return true
		}
		circ.Next()
		if circ == end {
			return false
		}
	}
}

// ########## isManifold ##########

// IsManifoldVertex reports whether the one-ring of v forms a single
// fan, i.e. at most one outgoing half-edge in the ring is boundary.
// Always true in a manifold mesh. The vertex must not be isolated or
// deleted.
func (m *Mesh[V, HE, E, F]) IsManifoldVertex(v VertexIndex) bool {
	if m.manifold {
		return true
	}

	circ := m.OutgoingHalfEdgeAroundVertexCirculator(v)
	end := circ

	// outgoing points to a boundary half-edge whenever one exists,
	// so a non-boundary start means a closed fan
	if !m.IsBoundaryHalfEdge(circ.TargetIndex()) {
		return true
	}
	for {
		circ.Next()
		if circ == end {
			return true
		}
		if m.IsBoundaryHalfEdge(circ.TargetIndex()) {
			return false
		}
	}
}

// IsManifold reports whether every connected, live vertex is manifold.
func (m *Mesh[V, HE, E, F]) IsManifold() bool {
	if m.manifold {
		return true
	}
	for v := range m.vertices {
		vi := VertexIndex(v)
		if m.IsIsolated(vi) {
			continue
		}
		if !m.IsManifoldVertex(vi) {
			return false
		}
	}
	return true
}

// ########## size / empty ##########

// SizeVertices returns the vertex arena length, tombstones included.
func (m *Mesh[V, HE, E, F]) SizeVertices() int { return len(m.vertices) }

// SizeHalfEdges returns the half-edge arena length, tombstones included.
func (m *Mesh[V, HE, E, F]) SizeHalfEdges() int {
	if len(m.halfEdges)%2 != 0 {
		panic("halfedge: odd half-edge count, the mesh is corrupt")
	}
	return len(m.halfEdges)
}

// SizeEdges returns half the half-edge arena length.
func (m *Mesh[V, HE, E, F]) SizeEdges() int { return m.SizeHalfEdges() / 2 }

// SizeFaces returns the face arena length, tombstones included.
func (m *Mesh[V, HE, E, F]) SizeFaces() int { return len(m.faces) }

// Empty reports whether the mesh has no elements at all.
func (m *Mesh[V, HE, E, F]) Empty() bool {
	return m.EmptyVertices() && m.EmptyEdges() && m.EmptyFaces()
}

// EmptyVertices reports whether the vertex arena is empty.
func (m *Mesh[V, HE, E, F]) EmptyVertices() bool { return len(m.vertices) == 0 }

// EmptyEdges reports whether the half-edge arena is empty.
func (m *Mesh[V, HE, E, F]) EmptyEdges() bool { return len(m.halfEdges) == 0 }

// EmptyFaces reports whether the face arena is empty.
func (m *Mesh[V, HE, E, F]) EmptyFaces() bool { return len(m.faces) == 0 }

// ########## reserve / resize / clear ##########

// ReserveVertices grows the vertex arena capacity to at least n.
func (m *Mesh[V, HE, E, F]) ReserveVertices(n int) {
	m.vertices = reserve(m.vertices, n)
	if m.hasVertexData {
		m.vertexData = reserve(m.vertexData, n)
	}
}

// ReserveEdges grows the edge capacity to at least n edges
// (2n half-edges).
func (m *Mesh[V, HE, E, F]) ReserveEdges(n int) {
	m.halfEdges = reserve(m.halfEdges, 2*n)
	if m.hasHalfEdgeData {
		m.halfEdgeData = reserve(m.halfEdgeData, 2*n)
	}
	if m.hasEdgeData {
		m.edgeData = reserve(m.edgeData, n)
	}
}

// ReserveFaces grows the face arena capacity to at least n.
func (m *Mesh[V, HE, E, F]) ReserveFaces(n int) {
	m.faces = reserve(m.faces, n)
	if m.hasFaceData {
		m.faceData = reserve(m.faceData, n)
	}
}

// ResizeVertices resizes the vertex arena to n elements. New vertices
// are isolated and carry data as payload.
func (m *Mesh[V, HE, E, F]) ResizeVertices(n int, data V) {
	m.vertices = resize(m.vertices, n, newVertex())
	if m.hasVertexData {
		m.vertexData = resize(m.vertexData, n, data)
	}
}

// ResizeEdges resizes to n edges (2n half-edges). New half-edges are
// created tombstoned, CleanUp drops them again.
func (m *Mesh[V, HE, E, F]) ResizeEdges(n int, edgeData E, halfEdgeData HE) {
	m.halfEdges = resize(m.halfEdges, 2*n, newHalfEdge(InvalidVertex))
	if m.hasHalfEdgeData {
		m.halfEdgeData = resize(m.halfEdgeData, 2*n, halfEdgeData)
	}
	if m.hasEdgeData {
		m.edgeData = resize(m.edgeData, n, edgeData)
	}
}

// ResizeFaces resizes the face arena to n elements. New faces are
// created tombstoned, CleanUp drops them again.
func (m *Mesh[V, HE, E, F]) ResizeFaces(n int, data F) {
	m.faces = resize(m.faces, n, newFace(InvalidHalfEdge))
	if m.hasFaceData {
		m.faceData = resize(m.faceData, n, data)
	}
}

// Clear removes all elements and payloads. Capacity is retained.
func (m *Mesh[V, HE, E, F]) Clear() {
	clear(m.vertices)
	clear(m.halfEdges)
	clear(m.faces)
	m.vertices = m.vertices[:0]
	m.halfEdges = m.halfEdges[:0]
	m.faces = m.faces[:0]

	clear(m.vertexData)
	clear(m.halfEdgeData)
	clear(m.edgeData)
	clear(m.faceData)
	m.vertexData = m.vertexData[:0]
	m.halfEdgeData = m.halfEdgeData[:0]
	m.edgeData = m.edgeData[:0]
	m.faceData = m.faceData[:0]
}

// reserve grows s to capacity of at least n without changing its length.
func reserve[T any](s []T, n int) []T {
	if cap(s) >= n {
		return s
	}
	grown := make([]T, len(s), n)
	copy(grown, s)
	return grown
}

// resize sets the length of s to n, filling new slots with fill.
func resize[T any](s []T, n int, fill T) []T {
	if n <= len(s) {
		clear(s[n:])
		return s[:n]
	}
	s = reserve(s, n)
	for len(s) < n {
		s = append(s, fill)
	}
	return s
}
