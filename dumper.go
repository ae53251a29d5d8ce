// Copyright (c) 2024 lishulincug
// SPDX-License-Identifier: MIT

package halfedge

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes a line-per-record view of the three arenas to w,
// tombstones included. For debugging and test diagnostics.
func (m *Mesh[V, HE, E, F]) Dump(w io.Writer) {
	fmt.Fprintf(w, "halfedge mesh: manifold=%t shape=%s V=%d H=%d E=%d F=%d\n",
		m.manifold, m.shape, len(m.vertices), len(m.halfEdges), len(m.halfEdges)/2, len(m.faces))

	for i := range m.vertices {
		v := &m.vertices[i]
		fmt.Fprintf(w, "%s: outgoing=%s%s\n",
			VertexIndex(i), v.outgoing, tombstone(!v.outgoing.IsValid()))
	}
	for i := range m.halfEdges {
		h := &m.halfEdges[i]
		fmt.Fprintf(w, "%s: term=%s face=%s next=%s prev=%s%s\n",
			HalfEdgeIndex(i), h.terminating, h.face, h.next, h.prev,
			tombstone(!h.terminating.IsValid()))
	}
	for i := range m.faces {
		f := &m.faces[i]
		fmt.Fprintf(w, "%s: inner=%s%s\n",
			FaceIndex(i), f.inner, tombstone(!f.inner.IsValid()))
	}
}

// DumpString returns the Dump output as a string.
func (m *Mesh[V, HE, E, F]) DumpString() string {
	var sb strings.Builder
	m.Dump(&sb)
	return sb.String()
}

func tombstone(deleted bool) string {
	if deleted {
		return " (deleted)"
	}
	return ""
}
