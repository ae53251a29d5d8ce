// Copyright (c) 2024 lishulincug
// SPDX-License-Identifier: MIT

// Package halfedge provides a half-edge mesh, a topological container
// for polygonal surfaces.
//
// Every undirected edge is stored as two oppositely oriented half-edges
// at consecutive even/odd indices. Each half-edge knows its terminating
// vertex, its face and its next and previous half-edge around that face,
// which makes local neighborhood walks cheap and allocation-free.
//
// The mesh comes in two flavors, selected at construction:
//
//   - Manifold:     every vertex keeps a single boundary fan; AddFace
//     rejects insertions that would pinch a vertex, and DeleteFace
//     cascades to neighboring faces until the mesh is manifold again
//   - Non-manifold: vertices may touch any number of holes; AddFace
//     re-threads the half-edge cycles around shared vertices so the new
//     face can be stitched in
//
// Elements are addressed by typed indices into append-only arenas.
// Deletion tombstones records in place; CleanUp compacts the arenas and
// rewrites all cross-references, invalidating outstanding indices.
//
// Per-element user payloads (vertex, half-edge, edge, face) are carried
// in parallel buffers, switched on or off per kind by the mesh's type
// parameters when the mesh is constructed: a kind with payload type
// NoData stores nothing.
//
// The mesh consults no coordinates. It is pure topology; geometric
// predicates, I/O and visualization live elsewhere.
package halfedge
