// Copyright (c) 2024 lishulincug
// SPDX-License-Identifier: MIT

package halfedge

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// checkConsistency verifies the structural invariants of the mesh and
// returns the first violation found. It is the reference oracle for the
// tests and runs in O(V + H + F).
//
// Checked, for every non-tombstoned element:
//
//   - even half-edge arena, half-edges deleted in opposite pairs
//   - next/prev are inverse cycles
//   - terminating(opposite(h)) == originating(h) by construction,
//     both ends of a live half-edge are live vertices
//   - every face cycle closes on itself and carries the face's index,
//     face cycles are disjoint
//   - outgoing(v) originates at v
//   - manifold mesh: at most one boundary outgoing half-edge per
//     vertex, and outgoing(v) is boundary whenever one exists
//   - payload buffer lengths match the element counts
func (m *Mesh[V, HE, E, F]) checkConsistency() error {
	if len(m.halfEdges)%2 != 0 {
		return fmt.Errorf("odd half-edge count %d", len(m.halfEdges))
	}

	if err := m.checkPayloadSizes(); err != nil {
		return err
	}

	for i := range m.halfEdges {
		h := HalfEdgeIndex(i)
		o := h.Opposite()
		if m.IsDeletedHalfEdge(h) {
			if !m.IsDeletedHalfEdge(o) {
				return fmt.Errorf("%s deleted but opposite %s is live", h, o)
			}
			continue
		}

		if next := m.Next(h); !m.IsValidHalfEdge(next) || m.Prev(next) != h {
			return fmt.Errorf("%s: prev(next) != self (next=%s)", h, next)
		}
		if prev := m.Prev(h); !m.IsValidHalfEdge(prev) || m.Next(prev) != h {
			return fmt.Errorf("%s: next(prev) != self (prev=%s)", h, prev)
		}

		term := m.TerminatingVertex(h)
		if !m.IsValidVertex(term) || m.IsDeletedVertex(term) {
			return fmt.Errorf("%s terminates at dead vertex %s", h, term)
		}
	}

	// face cycles: close after their degree, stamp their own face,
	// and never share a half-edge
	visited := bitset.New(uint(len(m.halfEdges)))
	for i := range m.faces {
		f := FaceIndex(i)
		if m.IsDeletedFace(f) {
			continue
		}

		start := m.InnerHalfEdge(f)
		h := start
		for steps := 0; ; steps++ {
			if steps > len(m.halfEdges) {
				return fmt.Errorf("%s: inner cycle does not close", f)
			}
			if m.Face(h) != f {
				return fmt.Errorf("%s: inner cycle visits %s with face %s", f, h, m.Face(h))
			}
			if visited.Test(uint(h)) {
				return fmt.Errorf("%s: half-edge %s on two face cycles", f, h)
			}
			visited.Set(uint(h))

			h = m.Next(h)
			if h == start {
				break
			}
		}
	}

	for i := range m.vertices {
		v := VertexIndex(i)
		if m.IsIsolated(v) {
			continue
		}

		out := m.OutgoingHalfEdge(v)
		if !m.IsValidHalfEdge(out) || m.IsDeletedHalfEdge(out) {
			return fmt.Errorf("%s: outgoing %s is dead", v, out)
		}
		if m.OriginatingVertex(out) != v {
			return fmt.Errorf("%s: outgoing %s originates at %s", v, out, m.OriginatingVertex(out))
		}

		if m.manifold {
			if err := m.checkSingleFan(v); err != nil {
				return err
			}
		}
	}

	return nil
}

// checkSingleFan verifies the manifold invariant at v: at most one
// boundary outgoing half-edge in the ring, and outgoing(v) is the
// boundary one when it exists.
func (m *Mesh[V, HE, E, F]) checkSingleFan(v VertexIndex) error {
	boundary := 0
	circ := m.OutgoingHalfEdgeAroundVertexCirculator(v)
	end := circ
	for steps := 0; ; steps++ {
		if steps > len(m.halfEdges) {
			return fmt.Errorf("%s: one-ring does not close", v)
		}
		if m.IsBoundaryHalfEdge(circ.TargetIndex()) {
			boundary++
		}
		circ.Next()
		if circ == end {
			break
		}
	}

	if boundary > 1 {
		return fmt.Errorf("%s: %d boundary fans", v, boundary)
	}
	if boundary == 1 && !m.IsBoundaryHalfEdge(m.OutgoingHalfEdge(v)) {
		return fmt.Errorf("%s: outgoing misses the boundary fan", v)
	}
	return nil
}

func (m *Mesh[V, HE, E, F]) checkPayloadSizes() error {
	check := func(kind string, has bool, length, want int) error {
		if has && length != want {
			return fmt.Errorf("%s payload length %d, want %d", kind, length, want)
		}
		if !has && length != 0 {
			return fmt.Errorf("%s payload present on a dataless kind", kind)
		}
		return nil
	}

	if err := check("vertex", m.hasVertexData, len(m.vertexData), len(m.vertices)); err != nil {
		return err
	}
	if err := check("half-edge", m.hasHalfEdgeData, len(m.halfEdgeData), len(m.halfEdges)); err != nil {
		return err
	}
	if err := check("edge", m.hasEdgeData, len(m.edgeData), len(m.halfEdges)/2); err != nil {
		return err
	}
	return check("face", m.hasFaceData, len(m.faceData), len(m.faces))
}
