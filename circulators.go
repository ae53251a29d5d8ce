// Copyright (c) 2024 lishulincug
// SPDX-License-Identifier: MIT

package halfedge

// Circulators walk local neighborhoods by half-edge hops. They are
// value types holding a read-only borrow on the mesh: copy one to
// remember the start, compare with == to detect the wrap-around and
// drive them with the do-while idiom:
//
//	circ := m.VertexAroundVertexCirculator(v)
//	end := circ
//	for {
//		use(circ.TargetIndex())
//		circ.Next()
//		if circ == end {
//			break
//		}
//	}
//
// The circulators around a vertex step current = opposite(next(current))
// over the incoming half-edges (equivalently next(opposite) over the
// outgoing ones), the circulators around a face step current =
// next(current). Prev reverses the step. A circulator is valid while no
// mutating operation runs; see also the iter.Seq adapters in iter.go.

// VertexAroundVertexCirculator enumerates the one-ring neighbor
// vertices of a vertex.
type VertexAroundVertexCirculator[V, HE, E, F any] struct {
	m   *Mesh[V, HE, E, F]
	cur HalfEdgeIndex // outgoing at the pivot
}

// VertexAroundVertexCirculator returns a circulator pivoting around v.
// The vertex must not be isolated or deleted.
func (m *Mesh[V, HE, E, F]) VertexAroundVertexCirculator(v VertexIndex) VertexAroundVertexCirculator[V, HE, E, F] {
	return m.VertexAroundVertexCirculatorFromHalfEdge(m.OutgoingHalfEdge(v))
}

// VertexAroundVertexCirculatorFromHalfEdge returns a circulator
// starting at the given outgoing half-edge of the pivot.
func (m *Mesh[V, HE, E, F]) VertexAroundVertexCirculatorFromHalfEdge(outgoing HalfEdgeIndex) VertexAroundVertexCirculator[V, HE, E, F] {
	return VertexAroundVertexCirculator[V, HE, E, F]{m: m, cur: outgoing}
}

// Valid reports whether the circulator holds a half-edge.
func (c *VertexAroundVertexCirculator[V, HE, E, F]) Valid() bool { return c.cur.IsValid() }

// Next rotates to the following neighbor.
func (c *VertexAroundVertexCirculator[V, HE, E, F]) Next() {
	c.cur = c.m.Next(c.cur.Opposite())
}

// Prev rotates to the preceding neighbor.
func (c *VertexAroundVertexCirculator[V, HE, E, F]) Prev() {
	c.cur = c.m.Prev(c.cur).Opposite()
}

// TargetIndex returns the current neighbor vertex.
func (c *VertexAroundVertexCirculator[V, HE, E, F]) TargetIndex() VertexIndex {
	return c.m.TerminatingVertex(c.cur)
}

// CurrentHalfEdge returns the current outgoing half-edge at the pivot.
func (c *VertexAroundVertexCirculator[V, HE, E, F]) CurrentHalfEdge() HalfEdgeIndex {
	return c.cur
}

// OutgoingHalfEdgeAroundVertexCirculator enumerates the outgoing
// half-edges of a vertex.
type OutgoingHalfEdgeAroundVertexCirculator[V, HE, E, F any] struct {
	m   *Mesh[V, HE, E, F]
	cur HalfEdgeIndex // outgoing at the pivot
}

// OutgoingHalfEdgeAroundVertexCirculator returns a circulator pivoting
// around v. The vertex must not be isolated or deleted.
func (m *Mesh[V, HE, E, F]) OutgoingHalfEdgeAroundVertexCirculator(v VertexIndex) OutgoingHalfEdgeAroundVertexCirculator[V, HE, E, F] {
	return m.OutgoingHalfEdgeAroundVertexCirculatorFromHalfEdge(m.OutgoingHalfEdge(v))
}

// OutgoingHalfEdgeAroundVertexCirculatorFromHalfEdge returns a
// circulator starting at the given outgoing half-edge of the pivot.
func (m *Mesh[V, HE, E, F]) OutgoingHalfEdgeAroundVertexCirculatorFromHalfEdge(outgoing HalfEdgeIndex) OutgoingHalfEdgeAroundVertexCirculator[V, HE, E, F] {
	return OutgoingHalfEdgeAroundVertexCirculator[V, HE, E, F]{m: m, cur: outgoing}
}

// Valid reports whether the circulator holds a half-edge.
func (c *OutgoingHalfEdgeAroundVertexCirculator[V, HE, E, F]) Valid() bool { return c.cur.IsValid() }

// Next rotates to the following outgoing half-edge.
func (c *OutgoingHalfEdgeAroundVertexCirculator[V, HE, E, F]) Next() {
	c.cur = c.m.Next(c.cur.Opposite())
}

// Prev rotates to the preceding outgoing half-edge.
func (c *OutgoingHalfEdgeAroundVertexCirculator[V, HE, E, F]) Prev() {
	c.cur = c.m.Prev(c.cur).Opposite()
}

// TargetIndex returns the current outgoing half-edge.
func (c *OutgoingHalfEdgeAroundVertexCirculator[V, HE, E, F]) TargetIndex() HalfEdgeIndex {
	return c.cur
}

// IncomingHalfEdgeAroundVertexCirculator enumerates the incoming
// half-edges of a vertex.
type IncomingHalfEdgeAroundVertexCirculator[V, HE, E, F any] struct {
	m   *Mesh[V, HE, E, F]
	cur HalfEdgeIndex // incoming at the pivot
}

// IncomingHalfEdgeAroundVertexCirculator returns a circulator pivoting
// around v. The vertex must not be isolated or deleted.
func (m *Mesh[V, HE, E, F]) IncomingHalfEdgeAroundVertexCirculator(v VertexIndex) IncomingHalfEdgeAroundVertexCirculator[V, HE, E, F] {
	return m.IncomingHalfEdgeAroundVertexCirculatorFromHalfEdge(m.IncomingHalfEdge(v))
}

// IncomingHalfEdgeAroundVertexCirculatorFromHalfEdge returns a
// circulator starting at the given incoming half-edge of the pivot.
func (m *Mesh[V, HE, E, F]) IncomingHalfEdgeAroundVertexCirculatorFromHalfEdge(incoming HalfEdgeIndex) IncomingHalfEdgeAroundVertexCirculator[V, HE, E, F] {
	return IncomingHalfEdgeAroundVertexCirculator[V, HE, E, F]{m: m, cur: incoming}
}

// Valid reports whether the circulator holds a half-edge.
func (c *IncomingHalfEdgeAroundVertexCirculator[V, HE, E, F]) Valid() bool { return c.cur.IsValid() }

// Next rotates to the following incoming half-edge.
func (c *IncomingHalfEdgeAroundVertexCirculator[V, HE, E, F]) Next() {
	c.cur = c.m.Next(c.cur).Opposite()
}

// Prev rotates to the preceding incoming half-edge.
func (c *IncomingHalfEdgeAroundVertexCirculator[V, HE, E, F]) Prev() {
	c.cur = c.m.Prev(c.cur.Opposite())
}

// TargetIndex returns the current incoming half-edge.
func (c *IncomingHalfEdgeAroundVertexCirculator[V, HE, E, F]) TargetIndex() HalfEdgeIndex {
	return c.cur
}

// FaceAroundVertexCirculator enumerates the faces around a vertex. The
// target is invalid once per hole touching the vertex.
type FaceAroundVertexCirculator[V, HE, E, F any] struct {
	m   *Mesh[V, HE, E, F]
	cur HalfEdgeIndex // outgoing at the pivot
}

// FaceAroundVertexCirculator returns a circulator pivoting around v.
// The vertex must not be isolated or deleted.
func (m *Mesh[V, HE, E, F]) FaceAroundVertexCirculator(v VertexIndex) FaceAroundVertexCirculator[V, HE, E, F] {
	return m.FaceAroundVertexCirculatorFromHalfEdge(m.OutgoingHalfEdge(v))
}

// FaceAroundVertexCirculatorFromHalfEdge returns a circulator starting
// at the given outgoing half-edge of the pivot.
func (m *Mesh[V, HE, E, F]) FaceAroundVertexCirculatorFromHalfEdge(outgoing HalfEdgeIndex) FaceAroundVertexCirculator[V, HE, E, F] {
	return FaceAroundVertexCirculator[V, HE, E, F]{m: m, cur: outgoing}
}

// Valid reports whether the circulator holds a half-edge.
func (c *FaceAroundVertexCirculator[V, HE, E, F]) Valid() bool { return c.cur.IsValid() }

// Next rotates to the following face slot.
func (c *FaceAroundVertexCirculator[V, HE, E, F]) Next() {
	c.cur = c.m.Next(c.cur.Opposite())
}

// Prev rotates to the preceding face slot.
func (c *FaceAroundVertexCirculator[V, HE, E, F]) Prev() {
	c.cur = c.m.Prev(c.cur).Opposite()
}

// TargetIndex returns the current face, invalid for a hole.
func (c *FaceAroundVertexCirculator[V, HE, E, F]) TargetIndex() FaceIndex {
	return c.m.Face(c.cur)
}

// CurrentHalfEdge returns the current outgoing half-edge at the pivot.
func (c *FaceAroundVertexCirculator[V, HE, E, F]) CurrentHalfEdge() HalfEdgeIndex {
	return c.cur
}

// VertexAroundFaceCirculator enumerates the vertices of a face.
type VertexAroundFaceCirculator[V, HE, E, F any] struct {
	m   *Mesh[V, HE, E, F]
	cur HalfEdgeIndex // inner half-edge of the face
}

// VertexAroundFaceCirculator returns a circulator over f. The face
// must not be deleted.
func (m *Mesh[V, HE, E, F]) VertexAroundFaceCirculator(f FaceIndex) VertexAroundFaceCirculator[V, HE, E, F] {
	return m.VertexAroundFaceCirculatorFromHalfEdge(m.InnerHalfEdge(f))
}

// VertexAroundFaceCirculatorFromHalfEdge returns a circulator starting
// at the given inner half-edge.
func (m *Mesh[V, HE, E, F]) VertexAroundFaceCirculatorFromHalfEdge(inner HalfEdgeIndex) VertexAroundFaceCirculator[V, HE, E, F] {
	return VertexAroundFaceCirculator[V, HE, E, F]{m: m, cur: inner}
}

// Valid reports whether the circulator holds a half-edge.
func (c *VertexAroundFaceCirculator[V, HE, E, F]) Valid() bool { return c.cur.IsValid() }

// Next steps to the following vertex.
func (c *VertexAroundFaceCirculator[V, HE, E, F]) Next() {
	c.cur = c.m.Next(c.cur)
}

// Prev steps to the preceding vertex.
func (c *VertexAroundFaceCirculator[V, HE, E, F]) Prev() {
	c.cur = c.m.Prev(c.cur)
}

// TargetIndex returns the current vertex.
func (c *VertexAroundFaceCirculator[V, HE, E, F]) TargetIndex() VertexIndex {
	return c.m.TerminatingVertex(c.cur)
}

// InnerHalfEdgeAroundFaceCirculator enumerates the inner half-edges of
// a face.
type InnerHalfEdgeAroundFaceCirculator[V, HE, E, F any] struct {
	m   *Mesh[V, HE, E, F]
	cur HalfEdgeIndex // inner half-edge of the face
}

// InnerHalfEdgeAroundFaceCirculator returns a circulator over f. The
// face must not be deleted.
func (m *Mesh[V, HE, E, F]) InnerHalfEdgeAroundFaceCirculator(f FaceIndex) InnerHalfEdgeAroundFaceCirculator[V, HE, E, F] {
	return m.InnerHalfEdgeAroundFaceCirculatorFromHalfEdge(m.InnerHalfEdge(f))
}

// InnerHalfEdgeAroundFaceCirculatorFromHalfEdge returns a circulator
// starting at the given inner half-edge.
func (m *Mesh[V, HE, E, F]) InnerHalfEdgeAroundFaceCirculatorFromHalfEdge(inner HalfEdgeIndex) InnerHalfEdgeAroundFaceCirculator[V, HE, E, F] {
	return InnerHalfEdgeAroundFaceCirculator[V, HE, E, F]{m: m, cur: inner}
}

// Valid reports whether the circulator holds a half-edge.
func (c *InnerHalfEdgeAroundFaceCirculator[V, HE, E, F]) Valid() bool { return c.cur.IsValid() }

// Next steps to the following inner half-edge.
func (c *InnerHalfEdgeAroundFaceCirculator[V, HE, E, F]) Next() {
	c.cur = c.m.Next(c.cur)
}

// Prev steps to the preceding inner half-edge.
func (c *InnerHalfEdgeAroundFaceCirculator[V, HE, E, F]) Prev() {
	c.cur = c.m.Prev(c.cur)
}

// TargetIndex returns the current inner half-edge.
func (c *InnerHalfEdgeAroundFaceCirculator[V, HE, E, F]) TargetIndex() HalfEdgeIndex {
	return c.cur
}

// OuterHalfEdgeAroundFaceCirculator enumerates the outer half-edges of
// a face, the opposites of its inner cycle.
type OuterHalfEdgeAroundFaceCirculator[V, HE, E, F any] struct {
	m   *Mesh[V, HE, E, F]
	cur HalfEdgeIndex // inner half-edge of the face
}

// OuterHalfEdgeAroundFaceCirculator returns a circulator over f. The
// face must not be deleted.
func (m *Mesh[V, HE, E, F]) OuterHalfEdgeAroundFaceCirculator(f FaceIndex) OuterHalfEdgeAroundFaceCirculator[V, HE, E, F] {
	return m.OuterHalfEdgeAroundFaceCirculatorFromHalfEdge(m.InnerHalfEdge(f))
}

// OuterHalfEdgeAroundFaceCirculatorFromHalfEdge returns a circulator
// starting at the given inner half-edge.
func (m *Mesh[V, HE, E, F]) OuterHalfEdgeAroundFaceCirculatorFromHalfEdge(inner HalfEdgeIndex) OuterHalfEdgeAroundFaceCirculator[V, HE, E, F] {
	return OuterHalfEdgeAroundFaceCirculator[V, HE, E, F]{m: m, cur: inner}
}

// Valid reports whether the circulator holds a half-edge.
func (c *OuterHalfEdgeAroundFaceCirculator[V, HE, E, F]) Valid() bool { return c.cur.IsValid() }

// Next steps to the following outer half-edge.
func (c *OuterHalfEdgeAroundFaceCirculator[V, HE, E, F]) Next() {
	c.cur = c.m.Next(c.cur)
}

// Prev steps to the preceding outer half-edge.
func (c *OuterHalfEdgeAroundFaceCirculator[V, HE, E, F]) Prev() {
	c.cur = c.m.Prev(c.cur)
}

// TargetIndex returns the current outer half-edge.
func (c *OuterHalfEdgeAroundFaceCirculator[V, HE, E, F]) TargetIndex() HalfEdgeIndex {
	return c.cur.Opposite()
}

// FaceAroundFaceCirculator enumerates the faces sharing an edge with a
// face. The target is invalid once per boundary edge of the face.
type FaceAroundFaceCirculator[V, HE, E, F any] struct {
	m   *Mesh[V, HE, E, F]
	cur HalfEdgeIndex // inner half-edge of the face
}

// FaceAroundFaceCirculator returns a circulator over f. The face must
// not be deleted.
func (m *Mesh[V, HE, E, F]) FaceAroundFaceCirculator(f FaceIndex) FaceAroundFaceCirculator[V, HE, E, F] {
	return m.FaceAroundFaceCirculatorFromHalfEdge(m.InnerHalfEdge(f))
}

// FaceAroundFaceCirculatorFromHalfEdge returns a circulator starting
// at the given inner half-edge.
func (m *Mesh[V, HE, E, F]) FaceAroundFaceCirculatorFromHalfEdge(inner HalfEdgeIndex) FaceAroundFaceCirculator[V, HE, E, F] {
	return FaceAroundFaceCirculator[V, HE, E, F]{m: m, cur: inner}
}

// Valid reports whether the circulator holds a half-edge.
func (c *FaceAroundFaceCirculator[V, HE, E, F]) Valid() bool { return c.cur.IsValid() }

// Next steps to the following neighbor face slot.
func (c *FaceAroundFaceCirculator[V, HE, E, F]) Next() {
	c.cur = c.m.Next(c.cur)
}

// Prev steps to the preceding neighbor face slot.
func (c *FaceAroundFaceCirculator[V, HE, E, F]) Prev() {
	c.cur = c.m.Prev(c.cur)
}

// TargetIndex returns the current neighbor face, invalid across a
// boundary edge.
func (c *FaceAroundFaceCirculator[V, HE, E, F]) TargetIndex() FaceIndex {
	return c.m.Face(c.cur.Opposite())
}
